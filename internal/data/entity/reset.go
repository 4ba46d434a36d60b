package entity

import (
	"time"

	"github.com/google/uuid"
)

// PasswordReset is a single-slot reset code: one live code per email.
// Issuing a new code overwrites the row, so the previous code stops
// working immediately.
type PasswordReset struct {
	Email     string    `db:"email"`
	UserID    uuid.UUID `db:"user_id"`
	Code      string    `db:"code"`
	ExpiresAt time.Time `db:"expires_at"`
	Used      bool      `db:"used"`
	CreatedAt time.Time `db:"created_at"`
}
