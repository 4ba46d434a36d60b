package usecase

import (
	"context"
	"testing"

	"game-ghor/internal/dto/request"
	"game-ghor/internal/dto/response"
	"game-ghor/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedBuyer(t *testing.T, env *testEnv, email string) *response.AuthResponse {
	t.Helper()
	resp, err := env.service.Auth.Register(context.Background(), &request.RegisterRequest{
		Name:     "Buyer",
		Email:    email,
		Password: "hunter22",
	})
	require.NoError(t, err)
	return resp
}

func buyerID(t *testing.T, env *testEnv, email string) string {
	t.Helper()
	user, err := env.repo.User.FindByEmail(context.Background(), email)
	require.NoError(t, err)
	require.NotNil(t, user)
	return user.ID.String()
}

func checkout(gameID string) *request.CreateOrderRequest {
	return &request.CreateOrderRequest{
		GameID:        gameID,
		Platform:      "PC",
		TransactionID: "TXN-001",
		DeliveryEmail: "bob@example.com",
		PaymentMethod: "Nagad",
		PaymentMode:   "Send Money",
	}
}

func TestCreateOrderSnapshotsPrice(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	game := seedGame(t, env, elderScrolls())
	seedBuyer(t, env, "bob@example.com")
	userID := buyerID(t, env, "bob@example.com")

	req := checkout(game.ID)
	req.Amount = 1 // client-supplied amount is ignored

	order, err := env.service.Order.CreateOrder(ctx, userID, req)
	require.NoError(t, err)
	assert.Equal(t, float64(350), order.Amount)
	assert.Equal(t, "pending", order.Status)
	assert.Equal(t, "Elder Scrolls VI", order.GameTitle)
	assert.Len(t, env.mail.confirmations, 1)

	// A later price edit never touches the record.
	update := elderScrolls()
	update.Price = 999
	_, err = env.service.Game.UpdateGame(ctx, game.ID, update)
	require.NoError(t, err)

	orders, err := env.service.Order.GetUserOrders(ctx, userID)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, float64(350), orders[0].Amount)
}

func TestCreateOrderPaymentDefaults(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	game := seedGame(t, env, elderScrolls())
	seedBuyer(t, env, "bob@example.com")
	userID := buyerID(t, env, "bob@example.com")

	req := checkout(game.ID)
	req.PaymentMethod = ""
	req.PaymentMode = ""

	order, err := env.service.Order.CreateOrder(ctx, userID, req)
	require.NoError(t, err)
	assert.Equal(t, "Nagad", order.PaymentMethod)
	assert.Equal(t, "Send Money", order.PaymentMode)
}

func TestCreateOrderRejectsDisallowedPayment(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	nagadOnly := elderScrolls()
	nagadOnly.PaymentMethods = []string{"Nagad"}
	nagadOnly.PaymentModes = []string{"Send Money"}
	game := seedGame(t, env, nagadOnly)

	seedBuyer(t, env, "bob@example.com")
	userID := buyerID(t, env, "bob@example.com")

	req := checkout(game.ID)
	req.PaymentMethod = "bKash"
	_, err := env.service.Order.CreateOrder(ctx, userID, req)
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	req = checkout(game.ID)
	req.PaymentMode = "Cash Out"
	_, err = env.service.Order.CreateOrder(ctx, userID, req)
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestCreateOrderPlatformNotOffered(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	game := seedGame(t, env, elderScrolls())
	seedBuyer(t, env, "bob@example.com")
	userID := buyerID(t, env, "bob@example.com")

	req := checkout(game.ID)
	req.Platform = "PlayStation"
	_, err := env.service.Order.CreateOrder(ctx, userID, req)
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestCreateOrderInactiveGame(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	game := seedGame(t, env, elderScrolls())
	_, err := env.service.Game.ToggleGame(ctx, game.ID)
	require.NoError(t, err)

	seedBuyer(t, env, "bob@example.com")
	userID := buyerID(t, env, "bob@example.com")

	// Deactivated entries look exactly like missing ones to buyers.
	_, err = env.service.Order.CreateOrder(ctx, userID, checkout(game.ID))
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	_, err = env.service.Order.CreateOrder(ctx, userID, checkout("0e8dcf0e-44a5-4c5e-9a3d-111111111111"))
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestOrderSurvivesCatalogDeletion(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	game := seedGame(t, env, elderScrolls())
	seedBuyer(t, env, "bob@example.com")
	userID := buyerID(t, env, "bob@example.com")

	_, err := env.service.Order.CreateOrder(ctx, userID, checkout(game.ID))
	require.NoError(t, err)

	require.NoError(t, env.service.Game.DeleteGame(ctx, game.ID))

	orders, err := env.service.Order.GetUserOrders(ctx, userID)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "Elder Scrolls VI", orders[0].GameTitle)
	assert.Equal(t, float64(350), orders[0].Amount)
}

func TestSetOrderStatusTerminal(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	game := seedGame(t, env, elderScrolls())
	seedBuyer(t, env, "bob@example.com")
	userID := buyerID(t, env, "bob@example.com")

	order, err := env.service.Order.CreateOrder(ctx, userID, checkout(game.ID))
	require.NoError(t, err)

	done, err := env.service.Order.SetOrderStatus(ctx, order.ID, &request.OrderStatusRequest{Status: "completed"})
	require.NoError(t, err)
	assert.Equal(t, "completed", done.Status)

	// Any second transition is a conflict, even to the same target.
	_, err = env.service.Order.SetOrderStatus(ctx, order.ID, &request.OrderStatusRequest{Status: "completed"})
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))

	_, err = env.service.Order.SetOrderStatus(ctx, order.ID, &request.OrderStatusRequest{Status: "cancelled"})
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))

	// The stored status is unchanged.
	orders, err := env.service.Order.GetUserOrders(ctx, userID)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "completed", orders[0].Status)
}

func TestSetOrderStatusValidation(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	game := seedGame(t, env, elderScrolls())
	seedBuyer(t, env, "bob@example.com")
	userID := buyerID(t, env, "bob@example.com")

	order, err := env.service.Order.CreateOrder(ctx, userID, checkout(game.ID))
	require.NoError(t, err)

	// "pending" is not a valid target; the machine only moves forward.
	_, err = env.service.Order.SetOrderStatus(ctx, order.ID, &request.OrderStatusRequest{Status: "pending"})
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	_, err = env.service.Order.SetOrderStatus(ctx, "0e8dcf0e-44a5-4c5e-9a3d-111111111111", &request.OrderStatusRequest{Status: "completed"})
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestListOrdersFilter(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	game := seedGame(t, env, elderScrolls())
	seedBuyer(t, env, "bob@example.com")
	userID := buyerID(t, env, "bob@example.com")

	first, err := env.service.Order.CreateOrder(ctx, userID, checkout(game.ID))
	require.NoError(t, err)

	second := checkout(game.ID)
	second.TransactionID = "TXN-002"
	second.DeliveryEmail = "alice@example.com"
	_, err = env.service.Order.CreateOrder(ctx, userID, second)
	require.NoError(t, err)

	_, err = env.service.Order.SetOrderStatus(ctx, first.ID, &request.OrderStatusRequest{Status: "completed"})
	require.NoError(t, err)

	pending, err := env.service.Order.ListOrders(ctx, "pending", "")
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "TXN-002", pending[0].TransactionID)

	byEmail, err := env.service.Order.ListOrders(ctx, "", "alice@example.com")
	require.NoError(t, err)
	require.Len(t, byEmail, 1)

	_, err = env.service.Order.ListOrders(ctx, "shipped", "")
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}
