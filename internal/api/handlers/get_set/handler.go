package get_set

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CateringService/internal/api/handlers"
	"github.com/m04kA/SMC-CateringService/internal/service/catalog"
)

const (
	msgInvalidGuests = "некорректное количество гостей"
	msgSetNotFound   = "набор не найден"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/catalog/sets/{set}?guests=10
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["set"]

	guests, err := handlers.GuestsParam(r.URL.Query().Get("guests"))
	if err != nil {
		h.logger.Warn("GET /catalog/sets/{set} - Invalid guests: %v", err)
		handlers.RespondBadRequest(w, msgInvalidGuests)
		return
	}

	result, err := h.service.GetSet(name, guests)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrSetNotFound):
			h.logger.Warn("GET /catalog/sets/{set} - Set not found: %q", name)
			handlers.RespondNotFound(w, msgSetNotFound)

		default:
			h.logger.Error("GET /catalog/sets/{set} - Failed to get set %q: %v", name, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
