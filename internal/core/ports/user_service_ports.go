package ports

import (
	"context"

	"github.com/anuragjais-11/UserService/internal/core/domain"
	"github.com/google/uuid"
)

type UserService interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}
