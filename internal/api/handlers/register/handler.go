package register

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CateringService/internal/api/handlers"
	"github.com/m04kA/SMC-CateringService/internal/service/auth"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgEmptyCredentials   = "Please enter username and password"
	msgUserExists         = "Username already exists"
)

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

// Handle POST /api/v1/auth/register
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/register - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.Register(r.Context(), req.Username, req.Password); err != nil {
		switch {
		case errors.Is(err, auth.ErrEmptyCredentials):
			handlers.RespondBadRequest(w, msgEmptyCredentials)

		case errors.Is(err, auth.ErrUserExists):
			h.logger.Warn("POST /auth/register - Username taken: %q", req.Username)
			handlers.RespondConflict(w, msgUserExists)

		default:
			h.logger.Error("POST /auth/register - Failed to register: username=%q, error=%v", req.Username, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/register - Registered: username=%q", req.Username)
	handlers.RespondJSON(w, http.StatusCreated, RegisterResponse{Message: auth.MessageRegistered})
}
