package checkout_booking

import (
	"time"

	"github.com/m04kA/SMC-CateringService/internal/domain"
	"github.com/m04kA/SMC-CateringService/internal/pricing"
	checkoutBooking "github.com/m04kA/SMC-CateringService/internal/usecase/checkout_booking"
)

// ReceiptResponse HTTP response model
type ReceiptResponse struct {
	Position    int               `json:"position"`
	Booking     *domain.Booking   `json:"booking"`
	Breakdown   pricing.Breakdown `json:"breakdown"`
	Total       int               `json:"total"`
	StoredTotal int               `json:"storedTotal"`
	IssuedAt    string            `json:"issuedAt"`
}

// FromUseCaseResponse конвертирует чек use case в HTTP response
func FromUseCaseResponse(r *checkoutBooking.Receipt) *ReceiptResponse {
	return &ReceiptResponse{
		Position:    r.Position,
		Booking:     r.Booking,
		Breakdown:   r.Breakdown,
		Total:       r.Total,
		StoredTotal: r.StoredTotal,
		IssuedAt:    r.IssuedAt.Format(time.RFC3339),
	}
}
