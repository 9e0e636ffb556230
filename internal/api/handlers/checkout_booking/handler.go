package checkout_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CateringService/internal/api/handlers"
	checkoutBooking "github.com/m04kA/SMC-CateringService/internal/usecase/checkout_booking"
)

const (
	msgInvalidRef = "некорректная позиция или ID бронирования"
	msgNotFound   = "Booking not found"
)

type Handler struct {
	useCase CheckoutUseCase
	logger  Logger
}

func NewHandler(useCase CheckoutUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/{ref}/checkout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ref, err := handlers.BookingRef(r)
	if err != nil {
		h.logger.Warn("GET /bookings/{ref}/checkout - Invalid ref: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRef)
		return
	}

	receipt, err := h.useCase.Execute(r.Context(), &checkoutBooking.Request{Ref: ref})
	if err != nil {
		switch {
		case errors.Is(err, checkoutBooking.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{ref}/checkout - Booking not found: %s", ref)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /bookings/{ref}/checkout - Failed to build receipt: %s, error=%v", ref, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/{ref}/checkout - Receipt built: %s, total=%d", ref, receipt.Total)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(receipt))
}
