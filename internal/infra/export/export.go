// Package export writes bookings to spreadsheet files.
package export

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/m04kA/SMC-CateringService/internal/domain"
)

// SheetName is the worksheet holding the bookings table
const SheetName = "Bookings"

// ErrExport is returned when the workbook cannot be produced
var ErrExport = errors.New("export: failed to build workbook")

var headers = []string{
	"Position", "ID", "Name", "Email", "Contact", "EventDate", "Venue", "Guests", "Style",
	"MainDishes", "SideDishes", "Desserts", "Drinks", "Total",
}

// XLSXExporter writes bookings as an Excel workbook
type XLSXExporter struct{}

// NewXLSXExporter creates a bookings exporter
func NewXLSXExporter() *XLSXExporter {
	return &XLSXExporter{}
}

// Export builds a workbook with one row per booking, in storage order
func (e *XLSXExporter) Export(bookings []*domain.Booking) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExport, err)
	}

	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(SheetName, cell, header); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrExport, err)
		}
	}

	for i, b := range bookings {
		row := []interface{}{
			i, b.ID, b.Name, b.Email, b.Contact, b.EventDate, b.Venue, b.Guests, b.Style,
			strings.Join(b.MainDishes, ", "),
			strings.Join(b.SideDishes, ", "),
			strings.Join(b.Desserts, ", "),
			strings.Join(b.Drinks, ", "),
			b.Total,
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrExport, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExport, err)
	}
	return buf.Bytes(), nil
}
