package compute_price

import (
	"github.com/m04kA/SMC-CateringService/internal/domain"
	"github.com/m04kA/SMC-CateringService/internal/service/bookings/models"
)

type BookingService interface {
	ComputeLivePrice(draft *domain.Draft) *models.LivePriceResponse
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
