package usecase

import (
	"game-ghor/internal/data/repository"
	"game-ghor/internal/mailer"
	"game-ghor/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth   AuthService
	Game   GameService
	Order  OrderService
	User   UserService
	Upload UploadService
}

func NewService(repo *repository.Repository, config *utils.Config, mail mailer.Mailer, log *zap.Logger) *Service {
	return &Service{
		Auth:   NewAuthService(repo, config, mail, log),
		Game:   NewGameService(repo, log),
		Order:  NewOrderService(repo, mail, log),
		User:   NewUserService(repo.User, log),
		Upload: NewUploadService(config.Upload, log),
	}
}
