package delete_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CateringService/internal/api/handlers"
	"github.com/m04kA/SMC-CateringService/internal/domain"
	"github.com/m04kA/SMC-CateringService/internal/service/bookings"
)

const (
	msgInvalidRef       = "некорректная позиция или ID бронирования"
	msgInvalidConfirmed = "некорректное значение confirmed"
	msgNotFound         = "Booking not found"
	msgOutOfRange       = "позиция вне списка бронирований"
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

// Handle DELETE /api/v1/bookings/{ref}?confirmed=true
// Без confirmed=true удаление не выполняется
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ref, err := handlers.BookingRef(r)
	if err != nil {
		h.logger.Warn("DELETE /bookings/{ref} - Invalid ref: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRef)
		return
	}

	confirmed, err := handlers.Confirmed(r)
	if err != nil {
		h.logger.Warn("DELETE /bookings/{ref} - Invalid confirmed flag: %v", err)
		handlers.RespondBadRequest(w, msgInvalidConfirmed)
		return
	}

	result, err := h.service.Delete(r.Context(), ref, domain.Answer(confirmed))
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrOutOfRange):
			h.logger.Warn("DELETE /bookings/{ref} - Out of range: %s", ref)
			handlers.RespondNotFound(w, msgOutOfRange)

		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("DELETE /bookings/{ref} - Booking not found: %s", ref)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /bookings/{ref} - Failed to delete booking: %s, error=%v", ref, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /bookings/{ref} - %s, deleted=%t", ref, result.Deleted)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
