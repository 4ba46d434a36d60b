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

// GameFilter narrows a catalog listing. Text matches case-insensitively
// over title and description; Platform requires exact membership in the
// platforms set; ActiveOnly hides inactive entries from buyers.
type GameFilter struct {
	Text       string
	Platform   string
	ActiveOnly bool
}

type GameRepository interface {
	Create(ctx context.Context, game *entity.Game) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Game, error)
	FindAll(ctx context.Context, filter GameFilter) ([]*entity.Game, error)
	Update(ctx context.Context, game *entity.Game) error
	ToggleActive(ctx context.Context, id uuid.UUID) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type gameRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewGameRepository(db database.PgxIface, log *zap.Logger) GameRepository {
	return &gameRepository{
		db:  db,
		log: log.With(zap.String("repository", "game")),
	}
}

func methodStrings(methods []entity.PaymentMethod) []string {
	out := make([]string, len(methods))
	for i, m := range methods {
		out[i] = string(m)
	}
	return out
}

func modeStrings(modes []entity.PaymentMode) []string {
	out := make([]string, len(modes))
	for i, m := range modes {
		out[i] = string(m)
	}
	return out
}

func (gr *gameRepository) Create(ctx context.Context, game *entity.Game) error {
	query := `
		INSERT INTO games (id, title, description, platforms, categories,
		                   price, image_url, is_active, payment_methods,
		                   payment_modes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := gr.db.Exec(ctx, query,
		game.ID,
		game.Title,
		game.Description,
		game.Platforms,
		game.Categories,
		game.Price,
		game.ImageURL,
		game.IsActive,
		methodStrings(game.PaymentMethods),
		modeStrings(game.PaymentModes),
		game.CreatedAt,
		game.UpdatedAt,
	)

	if err != nil {
		gr.log.Error("Failed to create game",
			zap.Error(err),
			zap.String("title", game.Title),
		)
		return fmt.Errorf("create game %s: %w", game.Title, err)
	}

	return nil
}

func (gr *gameRepository) scanGame(row pgx.Row) (*entity.Game, error) {
	var game entity.Game
	var methods, modes []string

	err := row.Scan(
		&game.ID,
		&game.Title,
		&game.Description,
		&game.Platforms,
		&game.Categories,
		&game.Price,
		&game.ImageURL,
		&game.IsActive,
		&methods,
		&modes,
		&game.CreatedAt,
		&game.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	game.PaymentMethods = make([]entity.PaymentMethod, len(methods))
	for i, m := range methods {
		game.PaymentMethods[i] = entity.PaymentMethod(m)
	}
	game.PaymentModes = make([]entity.PaymentMode, len(modes))
	for i, m := range modes {
		game.PaymentModes[i] = entity.PaymentMode(m)
	}

	return &game, nil
}

func (gr *gameRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Game, error) {
	query := `
		SELECT id, title, description, platforms, categories, price,
		       image_url, is_active, payment_methods, payment_modes,
		       created_at, updated_at
		FROM games
		WHERE id = $1
	`

	game, err := gr.scanGame(gr.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		gr.log.Error("Failed to find game by ID",
			zap.Error(err),
			zap.String("game_id", id.String()),
		)
		return nil, fmt.Errorf("find game by ID %s: %w", id.String(), err)
	}

	return game, nil
}

// FindAll lists catalog entries in creation order.
func (gr *gameRepository) FindAll(ctx context.Context, filter GameFilter) ([]*entity.Game, error) {
	query := `
		SELECT id, title, description, platforms, categories, price,
		       image_url, is_active, payment_methods, payment_modes,
		       created_at, updated_at
		FROM games
		WHERE ($1 = '' OR title ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%')
		  AND ($2 = '' OR $2 = ANY(platforms))
		  AND ($3 = false OR is_active = true)
		ORDER BY created_at ASC
	`

	rows, err := gr.db.Query(ctx, query, filter.Text, filter.Platform, filter.ActiveOnly)
	if err != nil {
		gr.log.Error("Failed to list games",
			zap.Error(err),
			zap.String("text", filter.Text),
			zap.String("platform", filter.Platform),
		)
		return nil, fmt.Errorf("list games: %w", err)
	}
	defer rows.Close()

	var games []*entity.Game
	for rows.Next() {
		game, err := gr.scanGame(rows)
		if err != nil {
			gr.log.Error("Failed to scan game row", zap.Error(err))
			return nil, fmt.Errorf("scan game row: %w", err)
		}
		games = append(games, game)
	}

	if err := rows.Err(); err != nil {
		gr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate games rows: %w", err)
	}

	return games, nil
}

func (gr *gameRepository) Update(ctx context.Context, game *entity.Game) error {
	query := `
		UPDATE games
		SET title = $2, description = $3, platforms = $4, categories = $5,
		    price = $6, image_url = $7, is_active = $8,
		    payment_methods = $9, payment_modes = $10, updated_at = $11
		WHERE id = $1
	`

	result, err := gr.db.Exec(ctx, query,
		game.ID,
		game.Title,
		game.Description,
		game.Platforms,
		game.Categories,
		game.Price,
		game.ImageURL,
		game.IsActive,
		methodStrings(game.PaymentMethods),
		modeStrings(game.PaymentModes),
		game.UpdatedAt,
	)

	if err != nil {
		gr.log.Error("Failed to update game",
			zap.Error(err),
			zap.String("game_id", game.ID.String()),
		)
		return fmt.Errorf("update game %s: %w", game.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("game %s not found", game.ID.String())
	}

	return nil
}

// ToggleActive flips the active flag only and returns the new value.
func (gr *gameRepository) ToggleActive(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
		UPDATE games
		SET is_active = NOT is_active, updated_at = NOW()
		WHERE id = $1
		RETURNING is_active
	`

	var active bool
	err := gr.db.QueryRow(ctx, query, id).Scan(&active)
	if err == pgx.ErrNoRows {
		return false, fmt.Errorf("game %s not found", id.String())
	}
	if err != nil {
		gr.log.Error("Failed to toggle game",
			zap.Error(err),
			zap.String("game_id", id.String()),
		)
		return false, fmt.Errorf("toggle game %s: %w", id.String(), err)
	}

	return active, nil
}

func (gr *gameRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM games WHERE id = $1`

	result, err := gr.db.Exec(ctx, query, id)
	if err != nil {
		gr.log.Error("Failed to delete game",
			zap.Error(err),
			zap.String("game_id", id.String()),
		)
		return fmt.Errorf("delete game %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("game %s not found", id.String())
	}

	gr.log.Info("Game deleted", zap.String("game_id", id.String()))
	return nil
}
