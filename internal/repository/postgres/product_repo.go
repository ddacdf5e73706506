package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go-ishop-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type productRepo struct {
	db *pgxpool.Pool
}

func NewProductRepository(db *pgxpool.Pool) domain.ProductRepository {
	return &productRepo{db: db}
}

func (r *productRepo) Create(ctx context.Context, product *domain.Product) error {
	query := `INSERT INTO products (category_id, name, description, price, stock, image, created_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	return r.db.QueryRow(ctx, query,
		product.CategoryID, product.Name, product.Description, product.Price,
		product.Stock, product.Image, product.CreatedAt,
	).Scan(&product.ID)
}

func (r *productRepo) GetByID(ctx context.Context, id int64) (*domain.ProductWithCategory, error) {
	query := `
		SELECT p.id, p.category_id, p.name, p.description, p.price, p.stock, p.image, p.created_at,
		       c.name AS category_name
		FROM products p
		JOIN categories c ON p.category_id = c.id
		WHERE p.id = $1`

	var p domain.ProductWithCategory
	err := r.db.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.CategoryID, &p.Name, &p.Description, &p.Price, &p.Stock,
		&p.Image, &p.CreatedAt, &p.CategoryName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// FetchFiltered lists products matching the conjunctive filter predicates:
// case-insensitive name substring, price floor and price ceiling. Rows keep
// the storage's natural id order; the total count covers the same predicate
// for pagination metadata.
func (r *productRepo) FetchFiltered(ctx context.Context, filter domain.ProductFilter, limit, offset int) ([]domain.ProductWithCategory, int64, error) {
	where, args := buildProductFilter(filter)

	query := fmt.Sprintf(`
		SELECT p.id, p.category_id, p.name, p.description, p.price, p.stock, p.image, p.created_at,
		       c.name AS category_name
		FROM products p
		JOIN categories c ON p.category_id = c.id
		%s
		ORDER BY p.id
		LIMIT $%d OFFSET $%d`, where, len(args)+1, len(args)+2)

	rows, err := r.db.Query(ctx, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var products []domain.ProductWithCategory
	for rows.Next() {
		var p domain.ProductWithCategory
		if err := rows.Scan(
			&p.ID, &p.CategoryID, &p.Name, &p.Description, &p.Price, &p.Stock,
			&p.Image, &p.CreatedAt, &p.CategoryName,
		); err != nil {
			return nil, 0, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM products p %s`, where)
	var total int64
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

// buildProductFilter renders the WHERE clause and its arguments for the
// optional catalog predicates.
func buildProductFilter(filter domain.ProductFilter) (string, []any) {
	var conds []string
	var args []any

	if filter.Name != "" {
		args = append(args, filter.Name)
		conds = append(conds, fmt.Sprintf("p.name ILIKE '%%' || $%d || '%%'", len(args)))
	}
	if filter.PriceMin != nil {
		args = append(args, *filter.PriceMin)
		conds = append(conds, fmt.Sprintf("p.price >= $%d", len(args)))
	}
	if filter.PriceMax != nil {
		args = append(args, *filter.PriceMax)
		conds = append(conds, fmt.Sprintf("p.price <= $%d", len(args)))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}
