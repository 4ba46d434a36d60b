package repository

import (
	"context"
	"fmt"

	"game-ghor/internal/data/entity"
	"game-ghor/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// OrderFilter narrows the operator order listing. Status is an exact
// match; Text matches substring over delivery_email or transaction_id.
type OrderFilter struct {
	Status entity.OrderStatus
	Text   string
}

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)
	FindAll(ctx context.Context, filter OrderFilter) ([]*entity.Order, error)
	UpdateStatusIfPending(ctx context.Context, id uuid.UUID, status entity.OrderStatus) (bool, error)
}

type orderRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOrderRepository(db database.PgxIface, log *zap.Logger) OrderRepository {
	return &orderRepository{
		db:  db,
		log: log.With(zap.String("repository", "order")),
	}
}

const orderColumns = `id, game_id, user_id, game_title, platform, amount,
	transaction_id, delivery_email, payment_method, payment_mode,
	status, created_at`

func scanOrder(row pgx.Row) (*entity.Order, error) {
	var order entity.Order
	err := row.Scan(
		&order.ID,
		&order.GameID,
		&order.UserID,
		&order.GameTitle,
		&order.Platform,
		&order.Amount,
		&order.TransactionID,
		&order.DeliveryEmail,
		&order.PaymentMethod,
		&order.PaymentMode,
		&order.Status,
		&order.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (or *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	query := `
		INSERT INTO orders (id, game_id, user_id, game_title, platform,
		                    amount, transaction_id, delivery_email,
		                    payment_method, payment_mode, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := or.db.Exec(ctx, query,
		order.ID,
		order.GameID,
		order.UserID,
		order.GameTitle,
		order.Platform,
		order.Amount,
		order.TransactionID,
		order.DeliveryEmail,
		order.PaymentMethod,
		order.PaymentMode,
		order.Status,
		order.CreatedAt,
	)

	if err != nil {
		or.log.Error("Failed to create order",
			zap.Error(err),
			zap.String("user_id", order.UserID.String()),
			zap.String("game_id", order.GameID.String()),
		)
		return fmt.Errorf("create order: %w", err)
	}

	return nil
}

func (or *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	order, err := scanOrder(or.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		or.log.Error("Failed to find order by ID",
			zap.Error(err),
			zap.String("order_id", id.String()),
		)
		return nil, fmt.Errorf("find order by ID %s: %w", id.String(), err)
	}

	return order, nil
}

func (or *orderRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := or.db.Query(ctx, query, userID)
	if err != nil {
		or.log.Error("Failed to get user orders",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find orders for user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	return collectOrders(rows)
}

func (or *orderRepository) FindAll(ctx context.Context, filter OrderFilter) ([]*entity.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE ($1 = '' OR status = $1)
		  AND ($2 = '' OR delivery_email ILIKE '%' || $2 || '%'
		       OR transaction_id ILIKE '%' || $2 || '%')
		ORDER BY created_at DESC
	`

	rows, err := or.db.Query(ctx, query, string(filter.Status), filter.Text)
	if err != nil {
		or.log.Error("Failed to list orders",
			zap.Error(err),
			zap.String("status", string(filter.Status)),
			zap.String("text", filter.Text),
		)
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	return collectOrders(rows)
}

func collectOrders(rows pgx.Rows) ([]*entity.Order, error) {
	var orders []*entity.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate orders rows: %w", err)
	}

	return orders, nil
}

// UpdateStatusIfPending applies a status transition only when the order
// is still pending. The conditional UPDATE makes the transition
// serializable: with two concurrent finalizations exactly one sees a
// row affected, the other gets false.
func (or *orderRepository) UpdateStatusIfPending(ctx context.Context, id uuid.UUID, status entity.OrderStatus) (bool, error) {
	query := `
		UPDATE orders
		SET status = $2
		WHERE id = $1 AND status = 'pending'
	`

	result, err := or.db.Exec(ctx, query, id, status)
	if err != nil {
		or.log.Error("Failed to update order status",
			zap.Error(err),
			zap.String("order_id", id.String()),
			zap.String("status", string(status)),
		)
		return false, fmt.Errorf("update order %s status: %w", id.String(), err)
	}

	return result.RowsAffected() > 0, nil
}
