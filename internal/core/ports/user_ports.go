package ports

import (
	"context"

	"github.com/anuragjais-11/UserService/internal/core/domain"
)

type UserRepository interface {
	// GetByEmail returns (nil, nil) when no user has the given email.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
}
