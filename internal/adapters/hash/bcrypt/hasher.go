// Package bcrypt adapts golang.org/x/crypto/bcrypt to the core's
// PasswordHasher port. bcrypt embeds a per-call random salt in its output
// and its cost parameter keeps the hash deliberately slow.
package bcrypt

import (
	"github.com/anuragjais-11/UserService/internal/core/ports"
	"golang.org/x/crypto/bcrypt"
)

type Hasher struct {
	cost int
}

func NewHasher(cost int) ports.PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

func (h *Hasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (h *Hasher) Compare(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
