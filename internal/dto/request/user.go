package request

// UpdateUserRequest patches role and/or activation; nil fields are
// left untouched.
type UpdateUserRequest struct {
	Role     *string `json:"role,omitempty" validate:"omitempty,oneof=user admin"`
	IsActive *bool   `json:"is_active,omitempty"`
}
