package response

import (
	"time"

	"game-ghor/internal/data/entity"
)

type OrderResponse struct {
	ID            string    `json:"id"`
	GameID        string    `json:"game_id"`
	GameTitle     string    `json:"game_title"`
	Platform      string    `json:"platform"`
	Amount        float64   `json:"amount"`
	TransactionID string    `json:"transaction_id"`
	DeliveryEmail string    `json:"delivery_email"`
	PaymentMethod string    `json:"payment_method"`
	PaymentMode   string    `json:"payment_mode"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

func OrderToResponse(order *entity.Order) OrderResponse {
	return OrderResponse{
		ID:            order.ID.String(),
		GameID:        order.GameID.String(),
		GameTitle:     order.GameTitle,
		Platform:      order.Platform,
		Amount:        order.Amount,
		TransactionID: order.TransactionID,
		DeliveryEmail: order.DeliveryEmail,
		PaymentMethod: string(order.PaymentMethod),
		PaymentMode:   string(order.PaymentMode),
		Status:        string(order.Status),
		CreatedAt:     order.CreatedAt,
	}
}

func OrdersToResponse(orders []*entity.Order) []OrderResponse {
	out := make([]OrderResponse, len(orders))
	for i, o := range orders {
		out[i] = OrderToResponse(o)
	}
	return out
}
