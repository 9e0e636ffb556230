package receipt

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CateringService/internal/domain"
	"github.com/m04kA/SMC-CateringService/internal/pricing"
)

func TestRender(t *testing.T) {
	booking := &domain.Booking{
		Name:      "Ann Reyes",
		EventDate: "2026-12-01",
		Guests:    10,
		Style:     "Garden",
		Selection: domain.Selection{MainDishes: []string{"Adobo"}, Desserts: []string{"Ice Cream"}},
		Total:     6000,
	}
	engine := pricing.NewEngine(domain.DefaultCatalog())

	data, filename, err := NewPDFRenderer().Render(Data{
		Booking:     booking,
		Breakdown:   engine.Breakdown(booking.Selection, booking.Guests),
		StoredTotal: booking.Total,
		IssuedAt:    time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
	assert.Equal(t, "RECEIPT_2026-12-01_Ann_Reyes.pdf", filename)
}

func TestRender_NoBooking(t *testing.T) {
	_, _, err := NewPDFRenderer().Render(Data{})
	assert.True(t, errors.Is(err, ErrRender))
}

func TestFormatMoney(t *testing.T) {
	tests := map[int]string{
		0:       "PHP 0",
		600:     "PHP 600",
		8500:    "PHP 8,500",
		1234567: "PHP 1,234,567",
		-1500:   "PHP -1,500",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatMoney(in))
	}
}
