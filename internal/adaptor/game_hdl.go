package adaptor

import (
	"encoding/json"
	"net/http"

	"game-ghor/internal/dto/request"
	"game-ghor/internal/usecase"
	"game-ghor/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type GameHandler struct {
	service usecase.GameService
	log     *zap.Logger
}

func NewGameHandler(service usecase.GameService, log *zap.Logger) *GameHandler {
	return &GameHandler{
		service: service,
		log:     log.With(zap.String("handler", "game")),
	}
}

func gameQuery(r *http.Request) request.GameQuery {
	query := r.URL.Query()
	return request.GameQuery{
		Text:     query.Get("q"),
		Platform: query.Get("platform"),
	}
}

// GetGames handles GET /games (public, active entries only)
func (h *GameHandler) GetGames(w http.ResponseWriter, r *http.Request) {
	games, err := h.service.ListGames(r.Context(), gameQuery(r))
	if err != nil {
		handleServiceError(w, h.log, err, "list games")
		return
	}

	utils.ResponseSuccess(w, "Games retrieved", games)
}

// GetAllGames handles GET /admin/games (includes inactive)
func (h *GameHandler) GetAllGames(w http.ResponseWriter, r *http.Request) {
	games, err := h.service.ListAllGames(r.Context(), gameQuery(r))
	if err != nil {
		handleServiceError(w, h.log, err, "list all games")
		return
	}

	utils.ResponseSuccess(w, "Games retrieved", games)
}

// CreateGame handles POST /admin/games
func (h *GameHandler) CreateGame(w http.ResponseWriter, r *http.Request) {
	var req request.GameRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	game, err := h.service.CreateGame(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create game")
		return
	}

	utils.ResponseCreated(w, "Game created", game)
}

// UpdateGame handles PUT /admin/games/{id}
func (h *GameHandler) UpdateGame(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "id")
	if gameID == "" {
		utils.ResponseBadRequest(w, "Game ID is required", nil)
		return
	}

	var req request.GameRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	game, err := h.service.UpdateGame(r.Context(), gameID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update game")
		return
	}

	utils.ResponseSuccess(w, "Game updated", game)
}

// DeleteGame handles DELETE /admin/games/{id}
func (h *GameHandler) DeleteGame(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "id")
	if gameID == "" {
		utils.ResponseBadRequest(w, "Game ID is required", nil)
		return
	}

	if err := h.service.DeleteGame(r.Context(), gameID); err != nil {
		handleServiceError(w, h.log, err, "delete game")
		return
	}

	utils.ResponseSuccess(w, "Game deleted", nil)
}

// ToggleGame handles PATCH /admin/games/{id}/toggle
func (h *GameHandler) ToggleGame(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "id")
	if gameID == "" {
		utils.ResponseBadRequest(w, "Game ID is required", nil)
		return
	}

	game, err := h.service.ToggleGame(r.Context(), gameID)
	if err != nil {
		handleServiceError(w, h.log, err, "toggle game")
		return
	}

	utils.ResponseSuccess(w, "Game toggled", game)
}
