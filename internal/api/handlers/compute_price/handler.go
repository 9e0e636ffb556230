package compute_price

import (
	"net/http"

	"github.com/m04kA/SMC-CateringService/internal/api/handlers"
)

const msgInvalidRequestBody = "некорректное тело запроса"

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

// Handle POST /api/v1/price
// Пересчет стоимости при каждом изменении формы, ничего не сохраняет
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req handlers.DraftRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /price - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, h.service.ComputeLivePrice(req.ToDomain()))
}
