package mailer

import (
	"context"
	"time"

	"game-ghor/internal/data/entity"
	"game-ghor/pkg/utils"

	"go.uber.org/zap"
)

// Mailer is the outbound email collaborator. Delivery is external to
// the core; callers treat failures as best effort.
type Mailer interface {
	SendResetCode(ctx context.Context, email, code string, expiresAt time.Time) error
	SendOrderConfirmation(ctx context.Context, order *entity.Order) error
}

// LogMailer writes the mail that would be sent to the log. It is the
// default until SMTP credentials are configured.
type LogMailer struct {
	config utils.EmailConfig
	log    *zap.Logger
}

func NewLogMailer(config utils.EmailConfig, log *zap.Logger) *LogMailer {
	return &LogMailer{
		config: config,
		log:    log.With(zap.String("mailer", "log")),
	}
}

func (m *LogMailer) SendResetCode(ctx context.Context, email, code string, expiresAt time.Time) error {
	m.log.Info("Password reset code issued",
		zap.String("to", email),
		zap.String("from", m.config.From),
		zap.String("code", code),
		zap.Time("expires_at", expiresAt),
	)
	return nil
}

func (m *LogMailer) SendOrderConfirmation(ctx context.Context, order *entity.Order) error {
	m.log.Info("Order confirmation",
		zap.String("to", order.DeliveryEmail),
		zap.String("from", m.config.From),
		zap.String("order_id", order.ID.String()),
		zap.String("game_title", order.GameTitle),
		zap.Float64("amount", order.Amount),
	)
	return nil
}
