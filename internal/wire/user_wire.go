package wire

import (
	"game-ghor/internal/adaptor"
	"game-ghor/internal/data/repository"
	"game-ghor/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireUser configures the admin user directory
func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	r.With(
		middleware.AuthSession(repo.Session, log), // valid session
		middleware.Admin(repo.User, log),          // admin role, re-checked server-side
	).Route("/admin/users", func(r chi.Router) {
		r.Get("/", userHandler.GetAllUsers)      // GET /admin/users
		r.Patch("/{id}", userHandler.UpdateUser) // PATCH /admin/users/{id}
	})
}
