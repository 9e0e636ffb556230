package get_receipt

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CateringService/internal/api/handlers"
	"github.com/m04kA/SMC-CateringService/internal/infra/receipt"
	checkoutBooking "github.com/m04kA/SMC-CateringService/internal/usecase/checkout_booking"
)

const (
	msgInvalidRef = "некорректная позиция или ID бронирования"
	msgNotFound   = "Booking not found"
)

type Handler struct {
	useCase  CheckoutUseCase
	renderer ReceiptRenderer
	logger   Logger
}

func NewHandler(useCase CheckoutUseCase, renderer ReceiptRenderer, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		renderer: renderer,
		logger:   logger,
	}
}

// Handle GET /api/v1/bookings/{ref}/receipt.pdf
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ref, err := handlers.BookingRef(r)
	if err != nil {
		h.logger.Warn("GET /bookings/{ref}/receipt.pdf - Invalid ref: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRef)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &checkoutBooking.Request{Ref: ref})
	if err != nil {
		switch {
		case errors.Is(err, checkoutBooking.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{ref}/receipt.pdf - Booking not found: %s", ref)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /bookings/{ref}/receipt.pdf - Failed to build receipt: %s, error=%v", ref, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	data, filename, err := h.renderer.Render(receipt.Data{
		Booking:     result.Booking,
		Breakdown:   result.Breakdown,
		StoredTotal: result.StoredTotal,
		IssuedAt:    result.IssuedAt,
	})
	if err != nil {
		h.logger.Error("GET /bookings/{ref}/receipt.pdf - Failed to render pdf: %s, error=%v", ref, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /bookings/{ref}/receipt.pdf - Rendered %s (%d bytes)", filename, len(data))
	handlers.RespondFile(w, "application/pdf", filename, data)
}
