package submit_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CateringService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Append(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	ReplaceByID(ctx context.Context, id string, booking *domain.Booking) (*domain.Booking, error)
}

// PricingEngine интерфейс расчета стоимости
type PricingEngine interface {
	Compute(selection domain.Selection, guests int) int
	Catalog() *domain.Catalog
}

// Confirmer синхронный запрос подтверждения да/нет
type Confirmer interface {
	Confirm(message string) bool
}

// Notifier информационное сообщение пользователю (fire-and-forget)
type Notifier interface {
	Notify(message string)
}

// Metrics интерфейс метрик бронирований
type Metrics interface {
	BookingSaved(total int)
	ValidationFailed(field string)
	ConfirmationDeclined(operation string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
