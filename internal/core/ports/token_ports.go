package ports

import (
	"context"
	"time"

	"github.com/anuragjais-11/UserService/internal/core/domain"
)

type TokenRepository interface {
	// GetLive returns the token matching value that is neither soft-deleted
	// nor expired at the given instant, or (nil, nil). Liveness must be
	// evaluated inside the store in a single query, not filtered afterwards.
	GetLive(ctx context.Context, value string, now time.Time) (*domain.Token, error)
	Create(ctx context.Context, token *domain.Token) error
	Revoke(ctx context.Context, id string) error
}
