package get_auth_status

import "context"

type AuthService interface {
	IsAuthenticated(ctx context.Context) bool
}
