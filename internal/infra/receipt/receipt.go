// Package receipt renders checkout receipts as PDF documents.
package receipt

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/m04kA/SMC-CateringService/internal/domain"
	"github.com/m04kA/SMC-CateringService/internal/pricing"
)

// ErrRender is returned when the PDF cannot be produced
var ErrRender = errors.New("receipt: failed to render pdf")

// Data is everything printed on a receipt
type Data struct {
	Booking     *domain.Booking
	Breakdown   pricing.Breakdown
	StoredTotal int
	IssuedAt    time.Time
}

// PDFRenderer renders receipts with the core Helvetica font
type PDFRenderer struct{}

// NewPDFRenderer creates a receipt renderer
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render returns the PDF bytes and a download filename
func (r *PDFRenderer) Render(d Data) ([]byte, string, error) {
	if d.Booking == nil {
		return nil, "", fmt.Errorf("%w: booking is required", ErrRender)
	}
	b := d.Booking

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Receipt", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "RECEIPT")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, "Issued: "+d.IssuedAt.Format("2006-01-02 15:04"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Name       : %s", safe(b.Name, "-")),
		fmt.Sprintf("Email      : %s", safe(b.Email, "-")),
		fmt.Sprintf("Contact    : %s", safe(b.Contact, "-")),
		fmt.Sprintf("Event Date : %s", safe(b.EventDate, "-")),
		fmt.Sprintf("Venue      : %s", safe(b.Venue, "-")),
		fmt.Sprintf("Guests     : %d", b.Guests),
		fmt.Sprintf("Style      : %s", safe(b.Style, "-")),
	}
	for _, s := range lines {
		pdf.Cell(0, 7, tr(s))
		pdf.Ln(7)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Items")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	for _, line := range d.Breakdown.Items {
		pdf.CellFormat(130, 6, tr(line.Item), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, FormatMoney(line.UnitPrice), "", 1, "R", false, 0, "")
	}
	perHead := fmt.Sprintf("Per Head (%d x %s)", d.Breakdown.Guests, FormatMoney(d.Breakdown.PerHead))
	pdf.CellFormat(130, 6, perHead, "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 6, FormatMoney(d.Breakdown.PerHeadTotal), "", 1, "R", false, 0, "")
	pdf.CellFormat(130, 6, "Style Fee", "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 6, FormatMoney(d.Breakdown.StyleFee), "", 1, "R", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(130, 8, "Total", "T", 0, "L", false, 0, "")
	pdf.CellFormat(0, 8, FormatMoney(d.Breakdown.Total), "T", 1, "R", false, 0, "")

	if d.StoredTotal != d.Breakdown.Total {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(0, 6, fmt.Sprintf("Price at booking time: %s. Prices have changed since.",
			FormatMoney(d.StoredTotal)), "", "", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrRender, err)
	}

	filename := fmt.Sprintf("RECEIPT_%s_%s.pdf", safeFilenamePart(b.EventDate), safeFilenamePart(b.Name))
	return buf.Bytes(), filename, nil
}

// FormatMoney formats whole pesos as "PHP 12,345"
func FormatMoney(amount int) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	digits := strconv.Itoa(amount)
	var sb strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(r)
	}
	return "PHP " + sign + sb.String()
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}
