package ports

import (
	"context"

	"github.com/userhub/users-api/internal/core/domain"
)

// RegisterInput carries the pre-validated registration payload.
type RegisterInput struct {
	Email    string
	Username string
	Password string
}

// AuthService defines the session use-cases. Register and Login return the
// signed session token alongside the account; the transport layer owns the
// cookie. Logout needs no service call: clearing the cookie is the whole
// operation for a stateless session.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	Verify(ctx context.Context, token string) (*domain.User, error)
}
