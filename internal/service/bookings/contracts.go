package bookings

import (
	"context"

	"github.com/m04kA/SMC-CateringService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CateringService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-CateringService/internal/pricing"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ListAll(ctx context.Context) ([]*domain.Booking, error)
	Search(ctx context.Context, query string) ([]bookingRepo.Entry, error)
	GetAt(ctx context.Context, position int) (*domain.Booking, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, int, error)
	RemoveAt(ctx context.Context, position int) (*domain.Booking, error)
	RemoveByID(ctx context.Context, id string) (*domain.Booking, error)
}

// PricingEngine интерфейс расчета стоимости
type PricingEngine interface {
	Breakdown(selection domain.Selection, guests int) pricing.Breakdown
}

// Confirmer синхронный запрос подтверждения да/нет
type Confirmer interface {
	Confirm(message string) bool
}

// Metrics интерфейс метрик бронирований
type Metrics interface {
	BookingDeleted()
	BookingEdited(mode string)
	ConfirmationDeclined(operation string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
