package catalog

import (
	"github.com/m04kA/SMC-CateringService/internal/domain"
	"github.com/m04kA/SMC-CateringService/internal/pricing"
)

// PricingEngine интерфейс расчета стоимости
type PricingEngine interface {
	Catalog() *domain.Catalog
	Breakdown(selection domain.Selection, guests int) pricing.Breakdown
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
