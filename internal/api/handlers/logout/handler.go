package logout

import (
	"net/http"

	"github.com/m04kA/SMC-CateringService/internal/api/handlers"
	"github.com/m04kA/SMC-CateringService/internal/domain"
	"github.com/m04kA/SMC-CateringService/internal/service/auth"
)

const msgInvalidConfirmed = "некорректное значение confirmed"

type Handler struct {
	service AuthService
	logger  Logger
}

func NewHandler(service AuthService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/auth/logout?confirmed=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	confirmed, err := handlers.Confirmed(r)
	if err != nil {
		h.logger.Warn("POST /auth/logout - Invalid confirmed flag: %v", err)
		handlers.RespondBadRequest(w, msgInvalidConfirmed)
		return
	}

	loggedOut, err := h.service.Logout(r.Context(), domain.Answer(confirmed))
	if err != nil {
		h.logger.Error("POST /auth/logout - Failed to log out: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	if !loggedOut {
		handlers.RespondJSON(w, http.StatusOK, LogoutResponse{Prompt: domain.PromptLogout})
		return
	}

	h.logger.Info("POST /auth/logout - Logged out")
	handlers.RespondJSON(w, http.StatusOK, LogoutResponse{LoggedOut: true, Message: auth.MessageLoggedOut})
}
