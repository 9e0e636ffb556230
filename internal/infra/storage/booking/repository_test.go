package booking

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CateringService/internal/domain"
	"github.com/m04kA/SMC-CateringService/internal/infra/storage/document"
	"github.com/m04kA/SMC-CateringService/pkg/logger"
)

type corruptionCounter struct {
	count int
}

func (c *corruptionCounter) StoreCorrupted() { c.count++ }

type failingStore struct {
	err error
}

func (s *failingStore) Load(context.Context, string) ([]byte, error) { return nil, s.err }
func (s *failingStore) Save(context.Context, string, []byte) error   { return s.err }

func newTestRepo(t *testing.T) (*Repository, *document.MemoryStore, *corruptionCounter) {
	t.Helper()
	store := document.NewMemoryStore()
	counter := &corruptionCounter{}
	repo := NewRepository(store, logger.NewNop(), counter)
	seq := 0
	repo.newID = func() string {
		seq++
		return "id-" + string(rune('0'+seq))
	}
	return repo, store, counter
}

func seed(t *testing.T, repo *Repository, names ...string) {
	t.Helper()
	for _, name := range names {
		_, err := repo.Append(context.Background(), &domain.Booking{Name: name, Guests: 1})
		require.NoError(t, err)
	}
}

func names(bookings []*domain.Booking) []string {
	out := make([]string, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, b.Name)
	}
	return out
}

func TestListAll_EmptyWhenAbsent(t *testing.T) {
	repo, _, counter := newTestRepo(t)

	bookings, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, bookings)
	assert.NotNil(t, bookings)
	assert.Equal(t, 0, counter.count)
}

func TestListAll_CorruptedDocumentIsEmpty(t *testing.T) {
	repo, store, counter := newTestRepo(t)
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, domain.BookingsKey, []byte(`{"not":"a list"`)))

	bookings, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, bookings)
	assert.Equal(t, 1, counter.count)

	// the next write starts a fresh sequence
	_, err = repo.Append(ctx, &domain.Booking{Name: "Ann"})
	require.NoError(t, err)
	bookings, err = repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Ann"}, names(bookings))
}

func TestListAll_StoreErrorPropagates(t *testing.T) {
	repo := NewRepository(&failingStore{err: errors.New("disk gone")}, logger.NewNop(), &corruptionCounter{})

	_, err := repo.ListAll(context.Background())
	assert.True(t, errors.Is(err, ErrLoad))
}

func TestAppend_AssignsIDAndPersists(t *testing.T) {
	repo, store, _ := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.Append(ctx, &domain.Booking{Name: "Ann", Guests: 10, Total: 8500})
	require.NoError(t, err)
	assert.Equal(t, "id-1", created.ID)

	raw, err := store.Load(ctx, domain.BookingsKey)
	require.NoError(t, err)
	var stored []map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &stored))
	require.Len(t, stored, 1)
	assert.Equal(t, "Ann", stored[0]["name"])
	assert.Equal(t, "id-1", stored[0]["id"])
	assert.EqualValues(t, 8500, stored[0]["total"])
}

func TestSearch(t *testing.T) {
	repo, _, _ := newTestRepo(t)
	ctx := context.Background()
	seed(t, repo, "Joanne", "Bob", "ANNA", "Carl")

	all, err := repo.Search(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 4)

	found, err := repo.Search(ctx, "ann")
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "Joanne", found[0].Booking.Name)
	assert.Equal(t, 0, found[0].Position)
	assert.Equal(t, "ANNA", found[1].Booking.Name)
	assert.Equal(t, 2, found[1].Position)

	none, err := repo.Search(ctx, "zed")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestRemoveAt_ShiftsPositions(t *testing.T) {
	repo, _, _ := newTestRepo(t)
	ctx := context.Background()
	seed(t, repo, "A", "B", "C")

	removed, err := repo.RemoveAt(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, "A", removed.Name)

	bookings, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C"}, names(bookings))

	b, err := repo.GetAt(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, "B", b.Name)
}

func TestRemoveAt_OutOfRange(t *testing.T) {
	repo, _, _ := newTestRepo(t)
	ctx := context.Background()
	seed(t, repo, "A")

	for _, pos := range []int{-1, 1, 5} {
		_, err := repo.RemoveAt(ctx, pos)
		assert.True(t, errors.Is(err, ErrOutOfRange), "position %d", pos)
	}

	bookings, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, bookings, 1)
}

func TestGetAt_NotFound(t *testing.T) {
	repo, _, _ := newTestRepo(t)

	_, err := repo.GetAt(context.Background(), 0)
	assert.True(t, errors.Is(err, ErrBookingNotFound))
}

func TestIDOperations(t *testing.T) {
	repo, _, _ := newTestRepo(t)
	ctx := context.Background()
	seed(t, repo, "A", "B", "C")

	b, pos, err := repo.GetByID(ctx, "id-2")
	require.NoError(t, err)
	assert.Equal(t, "B", b.Name)
	assert.Equal(t, 1, pos)

	replaced, err := repo.ReplaceByID(ctx, "id-2", &domain.Booking{Name: "B2"})
	require.NoError(t, err)
	assert.Equal(t, "id-2", replaced.ID)

	pos, err = repo.PositionOf(ctx, "id-2")
	require.NoError(t, err)
	assert.Equal(t, 1, pos)

	_, err = repo.RemoveByID(ctx, "id-1")
	require.NoError(t, err)

	// ids survive deletes of other bookings
	pos, err = repo.PositionOf(ctx, "id-2")
	require.NoError(t, err)
	assert.Equal(t, 0, pos)

	bookings, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"B2", "C"}, names(bookings))

	_, _, err = repo.GetByID(ctx, "missing")
	assert.True(t, errors.Is(err, ErrBookingNotFound))
	_, err = repo.RemoveByID(ctx, "missing")
	assert.True(t, errors.Is(err, ErrBookingNotFound))
	_, err = repo.ReplaceByID(ctx, "", &domain.Booking{})
	assert.True(t, errors.Is(err, ErrBookingNotFound))
}

func TestLoad_BackfillsLegacyIDs(t *testing.T) {
	repo, store, _ := newTestRepo(t)
	ctx := context.Background()
	legacy := `[{"name":"Old","guests":5,"total":3750},null,{"id":"keep","name":"New","guests":1}]`
	require.NoError(t, store.Save(ctx, domain.BookingsKey, []byte(legacy)))

	bookings, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, "id-1", bookings[0].ID)
	assert.Equal(t, "keep", bookings[1].ID)

	raw, err := store.Load(ctx, domain.BookingsKey)
	require.NoError(t, err)
	var stored []domain.Booking
	require.NoError(t, json.Unmarshal(raw, &stored))
	require.Len(t, stored, 2)
	assert.Equal(t, "id-1", stored[0].ID)
	assert.Equal(t, 3750, stored[0].Total)
}
