package postgres

import (
	"context"

	"go-ishop-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type reviewRepo struct {
	db *pgxpool.Pool
}

func NewReviewRepository(db *pgxpool.Pool) domain.ReviewRepository {
	return &reviewRepo{db: db}
}

func (r *reviewRepo) Create(ctx context.Context, review *domain.Review) error {
	query := `INSERT INTO reviews (product_id, user_id, rating, comment, created_at)
              VALUES ($1, $2, $3, $4, $5) RETURNING id`
	return r.db.QueryRow(ctx, query,
		review.ProductID, review.UserID, review.Rating, review.Comment, review.CreatedAt,
	).Scan(&review.ID)
}

func (r *reviewRepo) FetchByProductID(ctx context.Context, productID int64) ([]domain.Review, error) {
	query := `SELECT id, product_id, user_id, rating, comment, created_at
              FROM reviews WHERE product_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []domain.Review
	for rows.Next() {
		var rev domain.Review
		if err := rows.Scan(&rev.ID, &rev.ProductID, &rev.UserID, &rev.Rating, &rev.Comment, &rev.CreatedAt); err != nil {
			return nil, err
		}
		reviews = append(reviews, rev)
	}
	return reviews, rows.Err()
}
