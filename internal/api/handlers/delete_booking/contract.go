package delete_booking

import (
	"context"

	"github.com/m04kA/SMC-CateringService/internal/domain"
	"github.com/m04kA/SMC-CateringService/internal/service/bookings"
	"github.com/m04kA/SMC-CateringService/internal/service/bookings/models"
)

type BookingService interface {
	Delete(ctx context.Context, ref domain.BookingRef, confirmer bookings.Confirmer) (*models.DeleteResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
