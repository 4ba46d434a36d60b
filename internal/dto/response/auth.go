package response

import (
	"time"

	"game-ghor/internal/data/entity"
)

// AuthResponse is the client-held session snapshot: opaque token plus a
// public profile projection. The cached role is advisory only; every
// privileged operation re-checks the role server-side.
type AuthResponse struct {
	AccessToken string          `json:"access_token"`
	ExpiresAt   time.Time       `json:"expires_at"`
	Email       string          `json:"email"`
	Role        entity.UserRole `json:"role"`
	Name        string          `json:"name"`
}

func AuthToResponse(user *entity.User, session *entity.Session) *AuthResponse {
	resp := &AuthResponse{
		Email: user.Email,
		Role:  user.Role,
		Name:  user.Name,
	}

	if session != nil {
		resp.AccessToken = session.Token.String()
		resp.ExpiresAt = session.ExpiresAt
	}

	return resp
}

// ForgotPasswordResponse is intentionally the same whether or not the
// email exists. DebugCode is only populated in debug mode.
type ForgotPasswordResponse struct {
	Message   string `json:"message"`
	DebugCode string `json:"debug_code,omitempty"`
}
