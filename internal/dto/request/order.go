package request

// CreateOrderRequest carries the buyer's checkout submission. Amount is
// accepted for contract compatibility but ignored; the server snapshots
// the catalog price. Method and mode default to the first element of
// the game's allow-list when omitted.
type CreateOrderRequest struct {
	GameID        string  `json:"game_id" validate:"required,uuid"`
	Platform      string  `json:"platform" validate:"required"`
	Amount        float64 `json:"amount"`
	TransactionID string  `json:"transaction_id" validate:"required"`
	DeliveryEmail string  `json:"delivery_email" validate:"required,email"`
	PaymentMethod string  `json:"payment_method"`
	PaymentMode   string  `json:"payment_mode"`
}

type OrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=completed cancelled"`
}
