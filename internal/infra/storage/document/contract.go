package document

import (
	"context"
	"database/sql"
)

// Store is a durable key-value store of serialized JSON documents
type Store interface {
	// Load возвращает ErrDocumentNotFound, если ключа нет
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
}

// DBExecutor интерфейс для выполнения запросов
// Поддерживает *sql.DB и *sql.Tx
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}
