package submit_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CateringService/internal/api/handlers"
	submitBooking "github.com/m04kA/SMC-CateringService/internal/usecase/submit_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDraft       = "черновик нельзя отправить в текущем состоянии"
)

type Handler struct {
	useCase SubmitBookingUseCase
	logger  Logger
}

func NewHandler(useCase SubmitBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SubmitBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		var verr *submitBooking.ValidationError
		switch {
		case errors.As(err, &verr):
			h.logger.Warn("POST /bookings - Validation failed: field=%s", verr.Field)
			handlers.RespondValidationError(w, verr.Field, verr.Reason)

		case errors.Is(err, submitBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDraft)

		default:
			h.logger.Error("POST /bookings - Failed to save booking: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	if !result.Saved {
		h.logger.Info("POST /bookings - Not confirmed, draft returned")
		handlers.RespondJSON(w, http.StatusOK, response)
		return
	}

	h.logger.Info("POST /bookings - Booking saved successfully: booking_id=%s, total=%d",
		result.Booking.ID, result.Booking.Total)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
