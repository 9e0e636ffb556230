package auth

import "context"

// DocumentStore интерфейс долговременного key-value хранилища JSON документов
type DocumentStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
}

// Confirmer синхронный запрос подтверждения да/нет
type Confirmer interface {
	Confirm(message string) bool
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
