package ports

import (
	"context"

	"github.com/unifit/unifit-api/internal/core/domain"
)

// LoginResult is returned on a successful login.
type LoginResult struct {
	Token     string
	Principal domain.Principal
	Email     string
}

type AuthService interface {
	LoginUser(ctx context.Context, email, password, ip string) (*LoginResult, error)
	LoginAdmin(ctx context.Context, email, password, ip string) (*LoginResult, error)
	Logout(ctx context.Context, session domain.Session, ip string)
}

// AdminService groups administrative actions on user accounts.
type AdminService interface {
	SetUserStatus(ctx context.Context, actor domain.Principal, userID int64, active bool, ip string) error
}
