package wire

import (
	"game-ghor/internal/adaptor"
	"game-ghor/internal/data/repository"
	"game-ghor/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireGame(
	r chi.Router,
	gameHandler *adaptor.GameHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /games - buyer-facing catalog, active entries only
	r.Get("/games", gameHandler.GetGames)

	// ==================== ADMIN ROUTES ====================
	r.Route("/admin/games", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Admin(repo.User, log))

		r.Get("/", gameHandler.GetAllGames)            // includes inactive
		r.Post("/", gameHandler.CreateGame)            // POST /admin/games
		r.Put("/{id}", gameHandler.UpdateGame)         // PUT /admin/games/{id}
		r.Delete("/{id}", gameHandler.DeleteGame)      // DELETE /admin/games/{id}
		r.Patch("/{id}/toggle", gameHandler.ToggleGame) // flip active flag
	})
}
