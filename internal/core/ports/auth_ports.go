package ports

import (
	"context"

	"github.com/anuragjais-11/UserService/internal/core/domain"
)

type AuthService interface {
	SignUp(ctx context.Context, name, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.Token, error)
	// ValidateToken returns (nil, nil) for a missing, expired or revoked
	// token. An invalid token is an expected outcome, not an error.
	ValidateToken(ctx context.Context, value string) (*domain.User, error)
	Logout(ctx context.Context, value string) error
}

// PasswordHasher is the adaptive one-way hash used for credentials. The
// algorithm embeds a per-call random salt in the hash it produces.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}
