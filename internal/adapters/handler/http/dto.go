package http

import "github.com/anuragjais-11/UserService/internal/core/domain"

// userResponse is the single boundary projection of a user. The password
// hash and token internals never leave through it.
type userResponse struct {
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Roles []string `json:"roles"`
}

func newUserResponse(user *domain.User) userResponse {
	roles := user.Roles
	if roles == nil {
		roles = []string{}
	}
	return userResponse{
		Name:  user.Name,
		Email: user.Email,
		Roles: roles,
	}
}
