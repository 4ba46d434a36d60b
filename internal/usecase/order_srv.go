package usecase

import (
	"context"
	"time"

	"game-ghor/internal/data/entity"
	"game-ghor/internal/data/repository"
	"game-ghor/internal/dto/request"
	"game-ghor/internal/dto/response"
	"game-ghor/internal/mailer"
	"game-ghor/pkg/apperr"
	"game-ghor/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrderService interface {
	// Buyer-facing
	CreateOrder(ctx context.Context, userID string, req *request.CreateOrderRequest) (*response.OrderResponse, error)
	GetUserOrders(ctx context.Context, userID string) ([]response.OrderResponse, error)

	// Operator
	ListOrders(ctx context.Context, status, text string) ([]response.OrderResponse, error)
	SetOrderStatus(ctx context.Context, orderID string, req *request.OrderStatusRequest) (*response.OrderResponse, error)
}

type orderService struct {
	repo *repository.Repository
	mail mailer.Mailer
	log  *zap.Logger
}

func NewOrderService(repo *repository.Repository, mail mailer.Mailer, log *zap.Logger) OrderService {
	return &orderService{
		repo: repo,
		mail: mail,
		log:  log.With(zap.String("service", "order")),
	}
}

// CreateOrder validates the submission against the game's configuration
// and captures the catalog price at this instant. The client-supplied
// amount is ignored; later price edits never touch the record.
func (s *orderService) CreateOrder(ctx context.Context, userID string, req *request.CreateOrderRequest) (*response.OrderResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create order validation failed", zap.Any("errors", errs))
		return nil, apperr.Validation("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, apperr.Validation("invalid user id")
	}

	gameID, err := uuid.Parse(req.GameID)
	if err != nil {
		return nil, apperr.Validation("invalid game id")
	}

	game, err := s.repo.Game.FindByID(ctx, gameID)
	if err != nil {
		s.log.Error("Failed to find game", zap.Error(err), zap.String("game_id", req.GameID))
		return nil, apperr.Upstream("failed to find game", err)
	}
	if game == nil || !game.IsActive {
		return nil, apperr.NotFound("game not found")
	}

	if !game.HasPlatform(req.Platform) {
		return nil, apperr.Validation("platform %s is not offered for this game", req.Platform)
	}

	method, mode, err := resolvePayment(game, req.PaymentMethod, req.PaymentMode)
	if err != nil {
		return nil, err
	}

	order := &entity.Order{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		GameID:        game.ID,
		UserID:        userUUID,
		GameTitle:     game.Title,
		Platform:      req.Platform,
		Amount:        game.Price, // price snapshot
		TransactionID: req.TransactionID,
		DeliveryEmail: req.DeliveryEmail,
		PaymentMethod: method,
		PaymentMode:   mode,
		Status:        entity.OrderStatusPending,
	}

	if err := s.repo.Order.Create(ctx, order); err != nil {
		s.log.Error("Failed to create order",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.String("game_id", req.GameID),
		)
		return nil, apperr.Upstream("failed to create order", err)
	}

	if err := s.mail.SendOrderConfirmation(ctx, order); err != nil {
		s.log.Warn("Failed to send order confirmation",
			zap.Error(err), zap.String("order_id", order.ID.String()))
	}

	s.log.Info("Order created",
		zap.String("order_id", order.ID.String()),
		zap.String("user_id", userID),
		zap.String("game_title", order.GameTitle),
		zap.Float64("amount", order.Amount),
		zap.String("payment_method", string(method)),
	)

	resp := response.OrderToResponse(order)
	return &resp, nil
}

// resolvePayment checks the submission against the game's allow-lists.
// An omitted selection defaults to the first element of the respective
// list.
func resolvePayment(game *entity.Game, methodStr, modeStr string) (entity.PaymentMethod, entity.PaymentMode, error) {
	if len(game.PaymentMethods) == 0 || len(game.PaymentModes) == 0 {
		// Catalog writes reject empty allow-lists, so this means a
		// corrupted entry.
		return "", "", apperr.Validation("game does not accept orders")
	}

	method := game.PaymentMethods[0]
	if methodStr != "" {
		method = entity.PaymentMethod(methodStr)
		if !game.AcceptsMethod(method) {
			return "", "", apperr.Validation("payment method %s is not accepted for this game", methodStr)
		}
	}

	mode := game.PaymentModes[0]
	if modeStr != "" {
		mode = entity.PaymentMode(modeStr)
		if !game.AcceptsMode(mode) {
			return "", "", apperr.Validation("payment mode %s is not accepted for this game", modeStr)
		}
	}

	return method, mode, nil
}

func (s *orderService) GetUserOrders(ctx context.Context, userID string) ([]response.OrderResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, apperr.Validation("invalid user id")
	}

	orders, err := s.repo.Order.FindByUserID(ctx, userUUID)
	if err != nil {
		s.log.Error("Failed to get user orders", zap.Error(err), zap.String("user_id", userID))
		return nil, apperr.Upstream("failed to get orders", err)
	}

	return response.OrdersToResponse(orders), nil
}

func (s *orderService) ListOrders(ctx context.Context, status, text string) ([]response.OrderResponse, error) {
	filter := repository.OrderFilter{Text: text}
	if status != "" {
		st := entity.OrderStatus(status)
		switch st {
		case entity.OrderStatusPending, entity.OrderStatusCompleted, entity.OrderStatusCancelled:
			filter.Status = st
		default:
			return nil, apperr.Validation("unknown order status: %s", status)
		}
	}

	orders, err := s.repo.Order.FindAll(ctx, filter)
	if err != nil {
		s.log.Error("Failed to list orders", zap.Error(err), zap.String("status", status))
		return nil, apperr.Upstream("failed to list orders", err)
	}

	return response.OrdersToResponse(orders), nil
}

// SetOrderStatus drives the pending → completed | cancelled machine.
// Terminal states never transition again; re-applying the same target
// is a conflict too.
func (s *orderService) SetOrderStatus(ctx context.Context, orderID string, req *request.OrderStatusRequest) (*response.OrderResponse, error) {
	id, err := uuid.Parse(orderID)
	if err != nil {
		return nil, apperr.Validation("invalid order id")
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Set order status validation failed", zap.Any("errors", errs))
		return nil, apperr.Validation("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	target := entity.OrderStatus(req.Status)

	order, err := s.repo.Order.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find order", zap.Error(err), zap.String("order_id", orderID))
		return nil, apperr.Upstream("failed to find order", err)
	}
	if order == nil {
		return nil, apperr.NotFound("order not found")
	}

	applied, err := s.repo.Order.UpdateStatusIfPending(ctx, id, target)
	if err != nil {
		s.log.Error("Failed to update order status",
			zap.Error(err),
			zap.String("order_id", orderID),
			zap.String("status", req.Status),
		)
		return nil, apperr.Upstream("failed to update order", err)
	}
	if !applied {
		// Lost the race or the order was already finalized.
		return nil, apperr.Conflict("order already finalized")
	}

	order.Status = target

	s.log.Info("Order status updated",
		zap.String("order_id", orderID),
		zap.String("status", req.Status),
	)

	resp := response.OrderToResponse(order)
	return &resp, nil
}
