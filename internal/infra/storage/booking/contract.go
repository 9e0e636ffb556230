package booking

import (
	"context"

	"github.com/m04kA/SMC-CateringService/internal/domain"
)

// DocumentStore интерфейс долговременного key-value хранилища JSON документов
type DocumentStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Metrics интерфейс для учёта повреждённых документов
type Metrics interface {
	StoreCorrupted()
}

// Entry бронирование вместе с его позицией в полной последовательности
type Entry struct {
	Position int
	Booking  *domain.Booking
}
