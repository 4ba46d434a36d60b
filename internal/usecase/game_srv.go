package usecase

import (
	"context"
	"time"

	"game-ghor/internal/data/entity"
	"game-ghor/internal/data/repository"
	"game-ghor/internal/dto/request"
	"game-ghor/internal/dto/response"
	"game-ghor/pkg/apperr"
	"game-ghor/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type GameService interface {
	// Buyer-facing: active entries only.
	ListGames(ctx context.Context, query request.GameQuery) ([]response.GameResponse, error)

	// Operator: all entries, plus catalog mutation.
	ListAllGames(ctx context.Context, query request.GameQuery) ([]response.GameResponse, error)
	CreateGame(ctx context.Context, req *request.GameRequest) (*response.GameResponse, error)
	UpdateGame(ctx context.Context, gameID string, req *request.GameRequest) (*response.GameResponse, error)
	DeleteGame(ctx context.Context, gameID string) error
	ToggleGame(ctx context.Context, gameID string) (*response.GameResponse, error)
}

type gameService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewGameService(repo *repository.Repository, log *zap.Logger) GameService {
	return &gameService{
		repo: repo,
		log:  log.With(zap.String("service", "game")),
	}
}

func (s *gameService) ListGames(ctx context.Context, query request.GameQuery) ([]response.GameResponse, error) {
	return s.list(ctx, query, true)
}

func (s *gameService) ListAllGames(ctx context.Context, query request.GameQuery) ([]response.GameResponse, error) {
	return s.list(ctx, query, false)
}

func (s *gameService) list(ctx context.Context, query request.GameQuery, activeOnly bool) ([]response.GameResponse, error) {
	games, err := s.repo.Game.FindAll(ctx, repository.GameFilter{
		Text:       query.Text,
		Platform:   query.Platform,
		ActiveOnly: activeOnly,
	})
	if err != nil {
		s.log.Error("Failed to list games",
			zap.Error(err),
			zap.String("text", query.Text),
			zap.String("platform", query.Platform),
		)
		return nil, apperr.Upstream("failed to list games", err)
	}

	return response.GamesToResponse(games), nil
}

// validatePayments converts the submitted allow-lists and enforces the
// closed enumerations. Both lists must be non-empty for an entry that
// can accept orders.
func validatePayments(methods, modes []string) ([]entity.PaymentMethod, []entity.PaymentMode, error) {
	if len(methods) == 0 {
		return nil, nil, apperr.Validation("payment_methods must not be empty")
	}
	if len(modes) == 0 {
		return nil, nil, apperr.Validation("payment_modes must not be empty")
	}

	outMethods := make([]entity.PaymentMethod, len(methods))
	for i, m := range methods {
		method := entity.PaymentMethod(m)
		if !method.Valid() {
			return nil, nil, apperr.Validation("unknown payment method: %s", m)
		}
		outMethods[i] = method
	}

	outModes := make([]entity.PaymentMode, len(modes))
	for i, m := range modes {
		mode := entity.PaymentMode(m)
		if !mode.Valid() {
			return nil, nil, apperr.Validation("unknown payment mode: %s", m)
		}
		outModes[i] = mode
	}

	return outMethods, outModes, nil
}

func (s *gameService) CreateGame(ctx context.Context, req *request.GameRequest) (*response.GameResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create game validation failed", zap.Any("errors", errs))
		return nil, apperr.Validation("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	methods, modes, err := validatePayments(req.PaymentMethods, req.PaymentModes)
	if err != nil {
		return nil, err
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	now := time.Now()
	game := &entity.Game{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:          req.Title,
		Description:    req.Description,
		Platforms:      req.Platforms,
		Categories:     req.Categories,
		Price:          req.Price,
		ImageURL:       req.ImageURL,
		IsActive:       active,
		PaymentMethods: methods,
		PaymentModes:   modes,
	}

	if err := s.repo.Game.Create(ctx, game); err != nil {
		s.log.Error("Failed to create game", zap.Error(err), zap.String("title", req.Title))
		return nil, apperr.Upstream("failed to create game", err)
	}

	s.log.Info("Game created",
		zap.String("game_id", game.ID.String()),
		zap.String("title", game.Title),
		zap.Float64("price", game.Price),
	)

	resp := response.GameToResponse(game)
	return &resp, nil
}

func (s *gameService) UpdateGame(ctx context.Context, gameID string, req *request.GameRequest) (*response.GameResponse, error) {
	id, err := uuid.Parse(gameID)
	if err != nil {
		return nil, apperr.Validation("invalid game id")
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update game validation failed", zap.Any("errors", errs))
		return nil, apperr.Validation("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	methods, modes, err := validatePayments(req.PaymentMethods, req.PaymentModes)
	if err != nil {
		return nil, err
	}

	game, err := s.repo.Game.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find game", zap.Error(err), zap.String("game_id", gameID))
		return nil, apperr.Upstream("failed to find game", err)
	}
	if game == nil {
		return nil, apperr.NotFound("game not found")
	}

	game.Title = req.Title
	game.Description = req.Description
	game.Platforms = req.Platforms
	game.Categories = req.Categories
	game.Price = req.Price
	game.ImageURL = req.ImageURL
	game.PaymentMethods = methods
	game.PaymentModes = modes
	if req.IsActive != nil {
		game.IsActive = *req.IsActive
	}
	game.UpdatedAt = time.Now()

	if err := s.repo.Game.Update(ctx, game); err != nil {
		s.log.Error("Failed to update game", zap.Error(err), zap.String("game_id", gameID))
		return nil, apperr.Upstream("failed to update game", err)
	}

	s.log.Info("Game updated",
		zap.String("game_id", game.ID.String()),
		zap.String("title", game.Title),
	)

	resp := response.GameToResponse(game)
	return &resp, nil
}

// DeleteGame removes the catalog entry outright. Orders keep their
// value snapshot, so existing records are unaffected.
func (s *gameService) DeleteGame(ctx context.Context, gameID string) error {
	id, err := uuid.Parse(gameID)
	if err != nil {
		return apperr.Validation("invalid game id")
	}

	game, err := s.repo.Game.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find game", zap.Error(err), zap.String("game_id", gameID))
		return apperr.Upstream("failed to find game", err)
	}
	if game == nil {
		return apperr.NotFound("game not found")
	}

	if err := s.repo.Game.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete game", zap.Error(err), zap.String("game_id", gameID))
		return apperr.Upstream("failed to delete game", err)
	}

	return nil
}

func (s *gameService) ToggleGame(ctx context.Context, gameID string) (*response.GameResponse, error) {
	id, err := uuid.Parse(gameID)
	if err != nil {
		return nil, apperr.Validation("invalid game id")
	}

	game, err := s.repo.Game.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find game", zap.Error(err), zap.String("game_id", gameID))
		return nil, apperr.Upstream("failed to find game", err)
	}
	if game == nil {
		return nil, apperr.NotFound("game not found")
	}

	active, err := s.repo.Game.ToggleActive(ctx, id)
	if err != nil {
		s.log.Error("Failed to toggle game", zap.Error(err), zap.String("game_id", gameID))
		return nil, apperr.Upstream("failed to toggle game", err)
	}

	game.IsActive = active

	s.log.Info("Game toggled",
		zap.String("game_id", gameID),
		zap.Bool("is_active", active),
	)

	resp := response.GameToResponse(game)
	return &resp, nil
}
