package logout

import (
	"context"

	"github.com/m04kA/SMC-CateringService/internal/service/auth"
)

type AuthService interface {
	Logout(ctx context.Context, confirmer auth.Confirmer) (bool, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
