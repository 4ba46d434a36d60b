package repository

import (
	"context"
	"fmt"

	"game-ghor/internal/data/entity"
	"game-ghor/pkg/database"

	"go.uber.org/zap"
)

type PasswordResetRepository interface {
	Replace(ctx context.Context, reset *entity.PasswordReset) error
	Consume(ctx context.Context, email, code string) (bool, error)
}

type passwordResetRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPasswordResetRepository(db database.PgxIface, log *zap.Logger) PasswordResetRepository {
	return &passwordResetRepository{
		db:  db,
		log: log.With(zap.String("repository", "password_reset")),
	}
}

// Replace upserts the single reset slot for an email. Any previously
// issued code for that identity stops working the moment this commits.
func (r *passwordResetRepository) Replace(ctx context.Context, reset *entity.PasswordReset) error {
	query := `
		INSERT INTO password_resets (email, user_id, code, expires_at, used, created_at)
		VALUES ($1, $2, $3, $4, false, $5)
		ON CONFLICT (email) DO UPDATE
		SET user_id = EXCLUDED.user_id,
		    code = EXCLUDED.code,
		    expires_at = EXCLUDED.expires_at,
		    used = false,
		    created_at = EXCLUDED.created_at
	`

	_, err := r.db.Exec(ctx, query,
		reset.Email,
		reset.UserID,
		reset.Code,
		reset.ExpiresAt,
		reset.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to store reset code",
			zap.Error(err),
			zap.String("email", reset.Email),
		)
		return fmt.Errorf("store reset code for %s: %w", reset.Email, err)
	}

	return nil
}

// Consume marks the code used if and only if it matches, is unused and
// has not expired. Compare-and-clear in one statement, so a replayed
// code fails deterministically.
func (r *passwordResetRepository) Consume(ctx context.Context, email, code string) (bool, error) {
	query := `
		UPDATE password_resets
		SET used = true
		WHERE email = $1
		  AND code = $2
		  AND used = false
		  AND expires_at > NOW()
	`

	result, err := r.db.Exec(ctx, query, email, code)
	if err != nil {
		r.log.Error("Failed to consume reset code",
			zap.Error(err),
			zap.String("email", email),
		)
		return false, fmt.Errorf("consume reset code for %s: %w", email, err)
	}

	return result.RowsAffected() > 0, nil
}
