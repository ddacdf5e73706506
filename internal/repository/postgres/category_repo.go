package postgres

import (
	"context"
	"time"

	"go-ishop-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type categoryRepo struct {
	db *pgxpool.Pool
}

func NewCategoryRepository(db *pgxpool.Pool) domain.CategoryRepository {
	return &categoryRepo{db: db}
}

// GetOrCreate resolves a category by its unique name, inserting it when
// absent. The upsert keeps the operation atomic under concurrent saves, so
// repeated calls always land on the same row.
func (r *categoryRepo) GetOrCreate(ctx context.Context, name string) (*domain.Category, error) {
	query := `INSERT INTO categories (name, created_at) VALUES ($1, $2)
              ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
              RETURNING id, name, created_at`
	var cat domain.Category
	err := r.db.QueryRow(ctx, query, name, time.Now()).Scan(&cat.ID, &cat.Name, &cat.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *categoryRepo) Create(ctx context.Context, category *domain.Category) error {
	query := `INSERT INTO categories (name, created_at) VALUES ($1, $2) RETURNING id`
	return r.db.QueryRow(ctx, query, category.Name, category.CreatedAt).Scan(&category.ID)
}
