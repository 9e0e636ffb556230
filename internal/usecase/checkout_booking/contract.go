package checkout_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CateringService/internal/domain"
	"github.com/m04kA/SMC-CateringService/internal/pricing"
)

// BookingRepository интерфейс репозитория бронирований (только чтение)
type BookingRepository interface {
	GetAt(ctx context.Context, position int) (*domain.Booking, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, int, error)
}

// PricingEngine интерфейс расчета стоимости
type PricingEngine interface {
	Breakdown(selection domain.Selection, guests int) pricing.Breakdown
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
