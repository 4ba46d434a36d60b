package repository

import (
	"context"
	"fmt"

	"game-ghor/internal/data/entity"
	"game-ghor/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.User, error)
	CountActiveAdmins(ctx context.Context) (int64, error)
	Update(ctx context.Context, user *entity.User) error
}

type userRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUserRepository(db database.PgxIface, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log.With(zap.String("repository", "user")),
	}
}

func (ur *userRepository) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (id, name, email, password, role, is_active,
		                   created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := ur.db.Exec(ctx, query,
		user.ID,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.Role,
		user.IsActive,
		user.CreatedAt,
		user.UpdatedAt,
	)

	if err != nil {
		ur.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("email", user.Email),
		)
		return fmt.Errorf("create user %s: %w", user.Email, err)
	}

	return nil
}

func (ur *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	query := `
		SELECT id, name, email, password, role, is_active,
		       created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var user entity.User
	err := ur.db.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.IsActive,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find user by ID",
			zap.Error(err),
			zap.String("user_id", id.String()),
		)
		return nil, fmt.Errorf("find user by ID %s: %w", id.String(), err)
	}

	return &user, nil
}

func (ur *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `
		SELECT id, name, email, password, role, is_active,
		       created_at, updated_at
		FROM users
		WHERE email = $1
	`

	var user entity.User
	err := ur.db.QueryRow(ctx, query, email).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.IsActive,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find user by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find user by email %s: %w", email, err)
	}

	return &user, nil
}

func (ur *userRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	query := `
		SELECT id, name, email, password, role, is_active,
		       created_at, updated_at
		FROM users
		ORDER BY created_at ASC
		LIMIT $1 OFFSET $2
	`

	rows, err := ur.db.Query(ctx, query, limit, offset)
	if err != nil {
		ur.log.Error("Failed to get all users",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find all users limit %d offset %d: %w", limit, offset, err)
	}
	defer rows.Close()

	var users []*entity.User
	for rows.Next() {
		var user entity.User
		err := rows.Scan(
			&user.ID,
			&user.Name,
			&user.Email,
			&user.PasswordHash,
			&user.Role,
			&user.IsActive,
			&user.CreatedAt,
			&user.UpdatedAt,
		)
		if err != nil {
			ur.log.Error("Failed to scan user row", zap.Error(err))
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		users = append(users, &user)
	}

	if err := rows.Err(); err != nil {
		ur.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate users rows: %w", err)
	}

	return users, nil
}

func (ur *userRepository) CountActiveAdmins(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM users WHERE role = 'admin' AND is_active = true`

	var count int64
	err := ur.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		ur.log.Error("Failed to count active admins", zap.Error(err))
		return 0, fmt.Errorf("count active admins: %w", err)
	}

	return count, nil
}

func (ur *userRepository) Update(ctx context.Context, user *entity.User) error {
	query := `
		UPDATE users
		SET name = $2, email = $3, password = $4, role = $5,
		    is_active = $6, updated_at = $7
		WHERE id = $1
	`

	result, err := ur.db.Exec(ctx, query,
		user.ID,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.Role,
		user.IsActive,
		user.UpdatedAt,
	)

	if err != nil {
		ur.log.Error("Failed to update user",
			zap.Error(err),
			zap.String("user_id", user.ID.String()),
		)
		return fmt.Errorf("update user %s: %w", user.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %s not found", user.ID.String())
	}

	return nil
}
