package document

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.Load(ctx, "bookings")
	assert.True(t, errors.Is(err, ErrDocumentNotFound))

	value := []byte(`[{"name":"Ann"}]`)
	require.NoError(t, s.Save(ctx, "bookings", value))

	value[0] = 'X'
	got, err := s.Load(ctx, "bookings")
	require.NoError(t, err)
	assert.Equal(t, `[{"name":"Ann"}]`, string(got), "stored value must not alias the caller's slice")
}

func TestFileStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data", "store.json")
	s := NewFileStore(path)

	_, err := s.Load(ctx, "bookings")
	assert.True(t, errors.Is(err, ErrDocumentNotFound))

	require.NoError(t, s.Save(ctx, "bookings", []byte(`[]`)))
	require.NoError(t, s.Save(ctx, "loggedIn", []byte(`true`)))

	reopened := NewFileStore(path)
	got, err := reopened.Load(ctx, "bookings")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))

	got, err = reopened.Load(ctx, "loggedIn")
	require.NoError(t, err)
	assert.Equal(t, `true`, string(got))
}

func TestFileStore_KeepsCorruptValueVerbatim(t *testing.T) {
	ctx := context.Background()
	s := NewFileStore(filepath.Join(t.TempDir(), "store.json"))

	require.NoError(t, s.Save(ctx, "bookings", []byte(`{not json`)))

	got, err := s.Load(ctx, "bookings")
	require.NoError(t, err)
	assert.Equal(t, `{not json`, string(got))
}

func TestFileStore_CorruptedFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "store.json")
	require.NoError(t, os.WriteFile(path, []byte("garbage"), 0o644))

	s := NewFileStore(path)
	_, err := s.Load(ctx, "bookings")
	assert.True(t, errors.Is(err, ErrCorrupted))

	require.NoError(t, s.Save(ctx, "bookings", []byte(`[]`)))
	got, err := s.Load(ctx, "bookings")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))
}

func TestPostgresStore_Load(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	s := NewPostgresStore(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM documents WHERE key = $1")).
		WithArgs("bookings").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(`[{"name":"Ann"}]`))

	got, err := s.Load(context.Background(), "bookings")
	require.NoError(t, err)
	assert.Equal(t, `[{"name":"Ann"}]`, string(got))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_LoadNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT value FROM documents").
		WithArgs("loggedIn").
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	_, err = NewPostgresStore(db).Load(context.Background(), "loggedIn")
	assert.True(t, errors.Is(err, ErrDocumentNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_LoadError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT value FROM documents").
		WillReturnError(errors.New("connection reset"))

	_, err = NewPostgresStore(db).Load(context.Background(), "bookings")
	assert.True(t, errors.Is(err, ErrScanRow))
}

func TestPostgresStore_SaveUpserts(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO documents (key,value,updated_at) VALUES ($1,$2,NOW()) ON CONFLICT (key) DO UPDATE")).
		WithArgs("bookings", `[]`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, NewPostgresStore(db).Save(context.Background(), "bookings", []byte(`[]`)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_EnsureSchema(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS documents").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, NewPostgresStore(db).EnsureSchema(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
