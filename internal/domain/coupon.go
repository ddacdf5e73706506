package domain

import (
	"context"
	"time"
)

type Coupon struct {
	ID                 int64     `json:"id"`
	Code               string    `json:"code"`
	DiscountPercentage float64   `json:"discount_percentage"`
	ValidFrom          time.Time `json:"valid_from"`
	ValidTo            time.Time `json:"valid_to"`
	Active             bool      `json:"active"`
}

type CouponRepository interface {
	Create(ctx context.Context, coupon *Coupon) error
}
