package adaptor

import (
	"net/http"

	"game-ghor/internal/usecase"
	"game-ghor/pkg/apperr"
	"game-ghor/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth   *AuthHandler
	Game   *GameHandler
	Order  *OrderHandler
	User   *UserHandler
	Upload *UploadHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:   NewAuthHandler(service.Auth, log),
		Game:   NewGameHandler(service.Game, log),
		Order:  NewOrderHandler(service.Order, log),
		User:   NewUserHandler(service.User, log),
		Upload: NewUploadHandler(service.Upload, log),
	}
}

// handleServiceError maps the error kind to an HTTP status. Validation
// and conflict details are surfaced verbatim; upstream causes are not.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	msg := apperr.MessageOf(err)

	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		log.Warn(operation+" failed - validation", zap.Error(err))
		utils.ResponseBadRequest(w, msg, nil)

	case apperr.KindAuth:
		log.Warn(operation+" failed - auth", zap.Error(err))
		utils.ResponseUnauthorized(w, msg)

	case apperr.KindForbidden:
		log.Warn(operation+" failed - forbidden", zap.Error(err))
		utils.ResponseForbidden(w, msg)

	case apperr.KindNotFound:
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, msg)

	case apperr.KindConflict:
		log.Warn(operation+" failed - conflict", zap.Error(err))
		utils.ResponseConflict(w, msg)

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
