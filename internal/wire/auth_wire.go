package wire

import (
	"game-ghor/internal/adaptor"
	"game-ghor/internal/data/repository"
	"game-ghor/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Post("/auth/register", authHandler.Register)
	r.Post("/auth/login", authHandler.Login)
	r.Post("/auth/forgot-password", authHandler.ForgotPassword)
	r.Post("/auth/reset-password", authHandler.ResetPassword)

	// ==================== PROTECTED ROUTES ====================
	r.With(middleware.AuthSession(repo.Session, log)).Post("/auth/logout", authHandler.Logout)
}
