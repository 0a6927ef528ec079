package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"
	"strings"
	"time"

	"github.com/anuragjais-11/UserService/internal/core/domain"
	"github.com/anuragjais-11/UserService/internal/core/ports"
)

const tokenAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

type AuthService struct {
	userRepo    ports.UserRepository
	tokenRepo   ports.TokenRepository
	hasher      ports.PasswordHasher
	logger      *slog.Logger
	tokenTTL    time.Duration
	tokenLength int
}

func NewAuthService(userRepo ports.UserRepository, tokenRepo ports.TokenRepository, hasher ports.PasswordHasher, logger *slog.Logger, tokenTTL time.Duration, tokenLength int) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		tokenRepo:   tokenRepo,
		hasher:      hasher,
		logger:      logger,
		tokenTTL:    tokenTTL,
		tokenLength: tokenLength,
	}
}

func (s *AuthService) SignUp(ctx context.Context, name, email, password string) (*domain.User, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, domain.ErrInvalidInput
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}

	// Email uniqueness is enforced by the store's constraint; a violation
	// surfaces as domain.ErrEmailAlreadyRegistered, unmasked.
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.Token, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, domain.ErrInvalidInput
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		// Internally distinct from a password mismatch, externally the same.
		s.logger.Info("login rejected", "email", email, "reason", "user not found")
		return nil, domain.ErrAuthenticationFailed
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		s.logger.Info("login rejected", "email", email, "reason", "credentials do not match")
		return nil, domain.ErrAuthenticationFailed
	}

	value, err := randomAlphanumeric(s.tokenLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token value: %w", err)
	}

	token := &domain.Token{
		UserID:    user.ID,
		Value:     value,
		ExpiresAt: time.Now().Add(s.tokenTTL),
		Deleted:   false,
	}

	if err := s.tokenRepo.Create(ctx, token); err != nil {
		return nil, fmt.Errorf("failed to store token: %w", err)
	}

	return token, nil
}

func (s *AuthService) ValidateToken(ctx context.Context, value string) (*domain.User, error) {
	if value == "" {
		return nil, nil
	}

	// One atomic liveness query; expiry and the deleted flag are checked
	// inside the store at the same instant.
	token, err := s.tokenRepo.GetLive(ctx, value, time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to get token: %w", err)
	}
	if token == nil {
		return nil, nil
	}

	user, err := s.userRepo.GetByID(ctx, token.UserID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

func (s *AuthService) Logout(ctx context.Context, value string) error {
	token, err := s.tokenRepo.GetLive(ctx, value, time.Now())
	if err != nil {
		return fmt.Errorf("failed to get token: %w", err)
	}
	if token == nil {
		// Already dead or never existed, nothing to revoke.
		return nil
	}

	return s.tokenRepo.Revoke(ctx, token.ID.String())
}

// normalizeEmail lowercases the login handle so lookups are
// case-insensitive at the boundary.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func randomAlphanumeric(length int) (string, error) {
	b := make([]byte, length)
	for i := range b {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(tokenAlphabet))))
		if err != nil {
			return "", err
		}
		b[i] = tokenAlphabet[n.Int64()]
	}
	return string(b), nil
}
