package middleware

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-CateringService/internal/api/handlers"
)

// AuthChecker проверка глобального флага входа
type AuthChecker interface {
	IsAuthenticated(ctx context.Context) bool
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RequireLogin пропускает запрос только при выставленном флаге loggedIn
// Сами операции с бронированиями флаг не проверяют
func RequireLogin(checker AuthChecker, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !checker.IsAuthenticated(r.Context()) {
				logger.Warn("%s %s - not logged in", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
