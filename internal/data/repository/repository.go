package repository

import (
	"game-ghor/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User          UserRepository
	Session       SessionRepository
	PasswordReset PasswordResetRepository
	Game          GameRepository
	Order         OrderRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:          NewUserRepository(db, log),
		Session:       NewSessionRepository(db, log),
		PasswordReset: NewPasswordResetRepository(db, log),
		Game:          NewGameRepository(db, log),
		Order:         NewOrderRepository(db, log),
	}
}
