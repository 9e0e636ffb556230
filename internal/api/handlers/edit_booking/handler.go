package edit_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CateringService/internal/api/handlers"
	"github.com/m04kA/SMC-CateringService/internal/service/bookings"
)

const (
	msgInvalidRef = "некорректная позиция или ID бронирования"
	msgNotFound   = "Booking not found"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{ref}/edit
// В режиме по умолчанию бронирование удаляется сразу; черновик нужно отправить заново через POST /bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ref, err := handlers.BookingRef(r)
	if err != nil {
		h.logger.Warn("POST /bookings/{ref}/edit - Invalid ref: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRef)
		return
	}

	result, err := h.service.Edit(r.Context(), ref)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{ref}/edit - Booking not found: %s", ref)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("POST /bookings/{ref}/edit - Failed to open booking: %s, error=%v", ref, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{ref}/edit - Draft opened: %s, mode=%s", ref, result.Mode)
	handlers.RespondJSON(w, http.StatusOK, result)
}
