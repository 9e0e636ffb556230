package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/m04kA/SMC-CateringService/internal/domain"
)

func TestExport(t *testing.T) {
	bookings := []*domain.Booking{
		{
			ID:        "b-1",
			Name:      "Ann",
			Email:     "ann@example.com",
			Contact:   "09171234567",
			EventDate: "2026-12-01",
			Venue:     "Hall",
			Guests:    10,
			Style:     "Garden",
			Selection: domain.Selection{MainDishes: []string{"Adobo", "Menudo"}, Drinks: []string{"Water"}},
			Total:     8500,
		},
		{ID: "b-2", Name: "Bob", Guests: 1},
	}

	data, err := NewXLSXExporter().Export(bookings)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, headers, rows[0])
	assert.Equal(t, "0", rows[1][0])
	assert.Equal(t, "b-1", rows[1][1])
	assert.Equal(t, "Adobo, Menudo", rows[1][9])
	assert.Equal(t, "Water", rows[1][12])
	assert.Equal(t, "8500", rows[1][13])
	assert.Equal(t, "1", rows[2][0])
	assert.Equal(t, "Bob", rows[2][2])
}

func TestExport_Empty(t *testing.T) {
	data, err := NewXLSXExporter().Export(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
