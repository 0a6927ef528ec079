package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/anuragjais-11/UserService/internal/core/domain"
	"github.com/anuragjais-11/UserService/internal/core/ports"
)

type TokenRepository struct {
	db *sql.DB
}

func NewTokenRepository(db *sql.DB) ports.TokenRepository {
	return &TokenRepository{db: db}
}

func (r *TokenRepository) Create(ctx context.Context, token *domain.Token) error {
	query := `
		INSERT INTO tokens (user_id, value, expires_at, deleted)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	return r.db.QueryRowContext(ctx, query, token.UserID, token.Value, token.ExpiresAt, token.Deleted).
		Scan(&token.ID, &token.CreatedAt)
}

// GetLive evaluates the whole liveness predicate in one query so there is no
// window between reading expires_at/deleted and acting on them.
func (r *TokenRepository) GetLive(ctx context.Context, value string, now time.Time) (*domain.Token, error) {
	query := `
		SELECT id, user_id, value, expires_at, deleted, created_at
		FROM tokens
		WHERE value = $1 AND deleted = false AND expires_at > $2
	`
	token := &domain.Token{}
	err := r.db.QueryRowContext(ctx, query, value, now).Scan(
		&token.ID,
		&token.UserID,
		&token.Value,
		&token.ExpiresAt,
		&token.Deleted,
		&token.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return token, nil
}

func (r *TokenRepository) Revoke(ctx context.Context, id string) error {
	query := `UPDATE tokens SET deleted = true WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}
