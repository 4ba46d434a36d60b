package wire

import (
	"game-ghor/internal/adaptor"
	"game-ghor/internal/data/repository"
	"game-ghor/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUpload(
	r chi.Router,
	uploadHandler *adaptor.UploadHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	r.With(
		middleware.AuthSession(repo.Session, log),
		middleware.Admin(repo.User, log),
	).Post("/admin/upload-image", uploadHandler.UploadImage)
}
