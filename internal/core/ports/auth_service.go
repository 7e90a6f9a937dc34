package ports

import (
	"context"

	"github.com/photoalbums/studio-api/internal/core/domain"
)

// RegisterInput carries the self-service registration form.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
	Phone    string
	Telegram string
}

// AuthService defines the session operations. Login accepts any password
// for a known email (demo directory, no stored credentials).
type AuthService interface {
	Login(ctx context.Context, email, password string) (*domain.User, error)
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Logout(ctx context.Context)
	Current(ctx context.Context) (*domain.User, bool)
}
