package entity

import (
	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Terminal reports whether the status can never change again.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// Order keeps a value snapshot of the game at purchase time: Amount is
// the catalog price at creation and GameID is a plain reference, so
// later price edits or catalog deletions never touch the record.
type Order struct {
	BaseSimple
	GameID        uuid.UUID     `db:"game_id"`
	UserID        uuid.UUID     `db:"user_id"`
	GameTitle     string        `db:"game_title"`
	Platform      string        `db:"platform"`
	Amount        float64       `db:"amount"`
	TransactionID string        `db:"transaction_id"`
	DeliveryEmail string        `db:"delivery_email"`
	PaymentMethod PaymentMethod `db:"payment_method"`
	PaymentMode   PaymentMode   `db:"payment_mode"`
	Status        OrderStatus   `db:"status"`
}
