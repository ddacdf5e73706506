package postgres

import (
	"context"

	"go-ishop-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type orderRepo struct {
	db *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) domain.OrderRepository {
	return &orderRepo{db: db}
}

func (r *orderRepo) Create(ctx context.Context, order *domain.Order) error {
	query := `INSERT INTO orders (user_id, status, created_at) VALUES ($1, $2, $3) RETURNING id`
	return r.db.QueryRow(ctx, query, order.UserID, order.Status, order.CreatedAt).Scan(&order.ID)
}

func (r *orderRepo) AddItem(ctx context.Context, item *domain.OrderItem) error {
	query := `INSERT INTO order_items (order_id, product_id, quantity) VALUES ($1, $2, $3) RETURNING id`
	return r.db.QueryRow(ctx, query, item.OrderID, item.ProductID, item.Quantity).Scan(&item.ID)
}
