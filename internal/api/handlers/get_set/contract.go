package get_set

import "github.com/m04kA/SMC-CateringService/internal/service/catalog/models"

type CatalogService interface {
	GetSet(name string, guests int) (*models.SetResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
