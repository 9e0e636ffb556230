package edit_booking

import (
	"context"

	"github.com/m04kA/SMC-CateringService/internal/domain"
	"github.com/m04kA/SMC-CateringService/internal/service/bookings/models"
)

type BookingService interface {
	Edit(ctx context.Context, ref domain.BookingRef) (*models.EditResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
