package domain

import (
	"time"

	"github.com/google/uuid"
)

// Token is an opaque session credential. A token is live when it has not
// been soft-deleted and its expiry is still in the future; revocation flips
// Deleted instead of removing the row.
type Token struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Value     string    `json:"-"`
	ExpiresAt time.Time `json:"expires_at"`
	Deleted   bool      `json:"deleted"`
	CreatedAt time.Time `json:"created_at"`
}

// Live reports whether the token authenticates at the given instant.
func (t *Token) Live(now time.Time) bool {
	return !t.Deleted && t.ExpiresAt.After(now)
}
