package list_bookings

import (
	"net/http"
	"strings"

	"github.com/m04kA/SMC-CateringService/internal/api/handlers"
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

// Handle GET /api/v1/bookings?search=ann
// Пустой search возвращает все бронирования; position - позиция в полном списке
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("search"))

	result, err := h.service.Search(r.Context(), query)
	if err != nil {
		h.logger.Error("GET /bookings - Failed to list bookings: search=%q, error=%v", query, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /bookings - Found %d bookings: search=%q", result.Total, query)
	handlers.RespondJSON(w, http.StatusOK, result)
}
