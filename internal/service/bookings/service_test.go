package bookings

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CateringService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CateringService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-CateringService/internal/infra/storage/document"
	"github.com/m04kA/SMC-CateringService/internal/pricing"
	"github.com/m04kA/SMC-CateringService/internal/service/bookings/models"
	"github.com/m04kA/SMC-CateringService/pkg/logger"
	"github.com/m04kA/SMC-CateringService/pkg/metrics"
)

type stubConfirmer struct {
	answer  bool
	prompts []string
}

func (c *stubConfirmer) Confirm(message string) bool {
	c.prompts = append(c.prompts, message)
	return c.answer
}

func newService(t *testing.T, atomicEdit bool, names ...string) (*Service, *bookingRepo.Repository) {
	t.Helper()
	log := logger.NewNop()
	repo := bookingRepo.NewRepository(document.NewMemoryStore(), log, metrics.Nop{})
	for _, name := range names {
		_, err := repo.Append(context.Background(), &domain.Booking{Name: name, Guests: 2, Style: "Standard"})
		require.NoError(t, err)
	}
	svc := NewService(repo, pricing.NewEngine(domain.DefaultCatalog()), metrics.Nop{}, atomicEdit, log)
	return svc, repo
}

func bookingNames(t *testing.T, repo *bookingRepo.Repository) []string {
	t.Helper()
	all, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	out := make([]string, 0, len(all))
	for _, b := range all {
		out = append(out, b.Name)
	}
	return out
}

func TestList(t *testing.T) {
	svc, _ := newService(t, false, "A", "B")

	resp, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, 1, resp.Bookings[1].Position)
	assert.Equal(t, "B", resp.Bookings[1].Booking.Name)
}

func TestSearch(t *testing.T) {
	svc, _ := newService(t, false, "Bob", "Joanne", "Annabel")
	ctx := context.Background()

	all, err := svc.Search(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 3, all.Total)

	found, err := svc.Search(ctx, "ann")
	require.NoError(t, err)
	require.Equal(t, 2, found.Total)
	assert.Equal(t, "Joanne", found.Bookings[0].Booking.Name)
	assert.Equal(t, 1, found.Bookings[0].Position)
	assert.Equal(t, 2, found.Bookings[1].Position)
}

func TestEdit_AbandonedDraftLosesBooking(t *testing.T) {
	svc, repo := newService(t, false, "A", "B", "C")

	resp, err := svc.Edit(context.Background(), domain.AtPosition(1))
	require.NoError(t, err)

	assert.True(t, resp.Removed)
	assert.Equal(t, models.EditModeRedraft, resp.Mode)
	assert.Equal(t, "B", resp.Draft.Name)
	assert.Equal(t, "2", resp.Draft.Guests)
	assert.Equal(t, domain.DraftDrafting, resp.Draft.State)
	assert.Empty(t, resp.Draft.OriginID)

	// the draft is never submitted
	assert.Equal(t, []string{"A", "C"}, bookingNames(t, repo))
}

func TestEdit_Atomic(t *testing.T) {
	svc, repo := newService(t, true, "A", "B")
	ctx := context.Background()
	b, err := repo.GetAt(ctx, 1)
	require.NoError(t, err)

	resp, err := svc.Edit(ctx, domain.WithID(b.ID))
	require.NoError(t, err)

	assert.False(t, resp.Removed)
	assert.Equal(t, models.EditModeAtomic, resp.Mode)
	assert.Equal(t, b.ID, resp.Draft.OriginID)
	assert.Equal(t, []string{"A", "B"}, bookingNames(t, repo))
}

func TestEdit_NotFound(t *testing.T) {
	for _, atomic := range []bool{false, true} {
		svc, _ := newService(t, atomic, "A")
		ctx := context.Background()

		_, err := svc.Edit(ctx, domain.AtPosition(3))
		assert.True(t, errors.Is(err, ErrBookingNotFound), "atomic=%t", atomic)

		_, err = svc.Edit(ctx, domain.WithID("missing"))
		assert.True(t, errors.Is(err, ErrBookingNotFound), "atomic=%t", atomic)
	}
}

func TestDelete_ShiftsPositions(t *testing.T) {
	svc, repo := newService(t, false, "A", "B", "C")
	confirmer := &stubConfirmer{answer: true}

	resp, err := svc.Delete(context.Background(), domain.AtPosition(0), confirmer)
	require.NoError(t, err)

	assert.True(t, resp.Deleted)
	assert.Equal(t, "A", resp.Booking.Name)
	assert.Equal(t, []string{domain.PromptDelete}, confirmer.prompts)
	assert.Equal(t, []string{"B", "C"}, bookingNames(t, repo))
}

func TestDelete_DeclinedIsNoop(t *testing.T) {
	svc, repo := newService(t, false, "A", "B")

	resp, err := svc.Delete(context.Background(), domain.AtPosition(0), &stubConfirmer{answer: false})
	require.NoError(t, err)

	assert.False(t, resp.Deleted)
	assert.Equal(t, []string{"A", "B"}, bookingNames(t, repo))
}

func TestDelete_Errors(t *testing.T) {
	svc, repo := newService(t, false, "A")
	ctx := context.Background()
	yes := domain.Answer(true)

	_, err := svc.Delete(ctx, domain.AtPosition(1), yes)
	assert.True(t, errors.Is(err, ErrOutOfRange))

	_, err = svc.Delete(ctx, domain.WithID("missing"), yes)
	assert.True(t, errors.Is(err, ErrBookingNotFound))

	_, err = svc.Delete(ctx, domain.AtPosition(0), nil)
	assert.True(t, errors.Is(err, ErrInvalidInput))

	assert.Equal(t, []string{"A"}, bookingNames(t, repo))
}

func TestDelete_ByIDSurvivesOtherDeletes(t *testing.T) {
	svc, repo := newService(t, false, "A", "B", "C")
	ctx := context.Background()
	c, err := repo.GetAt(ctx, 2)
	require.NoError(t, err)

	_, err = svc.Delete(ctx, domain.AtPosition(0), domain.Answer(true))
	require.NoError(t, err)

	resp, err := svc.Delete(ctx, domain.WithID(c.ID), domain.Answer(true))
	require.NoError(t, err)
	assert.Equal(t, "C", resp.Booking.Name)
	assert.Equal(t, []string{"B"}, bookingNames(t, repo))
}

func TestComputeLivePrice(t *testing.T) {
	svc, _ := newService(t, false)

	draft := &domain.Draft{
		Guests: "10",
		Selection: domain.Selection{
			MainDishes: []string{"Adobo"},
			SideDishes: []string{"Rice"},
			Desserts:   []string{"Ice Cream"},
			Drinks:     []string{"Water"},
		},
	}
	assert.Equal(t, 8500, svc.ComputeLivePrice(draft).Total)

	draft.Guests = "abc"
	resp := svc.ComputeLivePrice(draft)
	assert.Equal(t, 0, resp.Guests)
	assert.Equal(t, 7000, resp.Total)

	assert.Equal(t, domain.DefaultStyleFee, svc.ComputeLivePrice(&domain.Draft{}).Total)
}
