package postgres

import (
	"context"

	"go-ishop-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type couponRepo struct {
	db *pgxpool.Pool
}

func NewCouponRepository(db *pgxpool.Pool) domain.CouponRepository {
	return &couponRepo{db: db}
}

func (r *couponRepo) Create(ctx context.Context, coupon *domain.Coupon) error {
	query := `INSERT INTO coupons (code, discount_percentage, valid_from, valid_to, active)
              VALUES ($1, $2, $3, $4, $5) RETURNING id`
	return r.db.QueryRow(ctx, query,
		coupon.Code, coupon.DiscountPercentage, coupon.ValidFrom, coupon.ValidTo, coupon.Active,
	).Scan(&coupon.ID)
}
