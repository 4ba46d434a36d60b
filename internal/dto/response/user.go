package response

import (
	"time"

	"game-ghor/internal/data/entity"
)

type UserResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Role      entity.UserRole `json:"role"`
	IsActive  bool            `json:"is_active"`
	CreatedAt time.Time       `json:"created_at"`
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
	}
}

func UsersToResponse(users []*entity.User) []UserResponse {
	out := make([]UserResponse, len(users))
	for i, u := range users {
		out[i] = UserToResponse(u)
	}
	return out
}
