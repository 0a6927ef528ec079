package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/anuragjais-11/UserService/internal/core/domain"
	"github.com/anuragjais-11/UserService/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

type signUpRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type validateRequest struct {
	Token string `json:"token"`
}

type validateResponse struct {
	Valid bool          `json:"valid"`
	User  *userResponse `json:"user,omitempty"`
}

// SignUp godoc
// @Summary      Registers a new user
// @Description  Creates a user account. The password is stored only as an adaptive hash.
// @Tags         users
// @Accept       json
// @Success      201  {object}  userResponse
// @Failure      400
// @Failure      409
// @Router       /api/users/signup [post]
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	user, err := h.authService.SignUp(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if errors.Is(err, domain.ErrEmailAlreadyRegistered) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		http.Error(w, "failed to sign up", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(newUserResponse(user)); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

// Login godoc
// @Summary      Authenticates a user
// @Description  Verifies credentials and returns a bearer token with its expiry. Unknown email and wrong password are indistinguishable in the response.
// @Tags         users
// @Accept       json
// @Success      200  {object}  loginResponse
// @Failure      400
// @Failure      401
// @Router       /api/users/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	token, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if errors.Is(err, domain.ErrAuthenticationFailed) {
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}
		http.Error(w, "failed to log in", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(loginResponse{Token: token.Value, ExpiresAt: token.ExpiresAt}); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

// Validate godoc
// @Summary      Validates a bearer token
// @Description  Returns the owning user for a live token. Missing, expired and revoked tokens all yield 401.
// @Tags         users
// @Accept       json
// @Success      200  {object}  validateResponse
// @Failure      401  {object}  validateResponse
// @Router       /api/users/validate [post]
func (h *AuthHandler) Validate(w http.ResponseWriter, r *http.Request) {
	var req validateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	user, err := h.authService.ValidateToken(r.Context(), req.Token)
	if err != nil {
		http.Error(w, "failed to validate token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if user == nil {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(validateResponse{Valid: false})
		return
	}

	resp := newUserResponse(user)
	json.NewEncoder(w).Encode(validateResponse{Valid: true, User: &resp})
}

// Logout godoc
// @Summary      Logs the authenticated user out
// @Description  Soft-deletes the presented token. Revoking an already dead token is a no-op.
// @Tags         users
// @Success      200
// @Router       /api/users/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token := extractBearerToken(r)
	if token != "" {
		if err := h.authService.Logout(r.Context(), token); err != nil {
			http.Error(w, "failed to log out", http.StatusInternalServerError)
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func extractBearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return parts[1]
	}
	return ""
}
