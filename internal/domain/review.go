package domain

import (
	"context"
	"time"
)

type Review struct {
	ID        int64     `json:"id"`
	ProductID int64     `json:"product_id"`
	UserID    int64     `json:"user_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

type ReviewRepository interface {
	Create(ctx context.Context, review *Review) error
	FetchByProductID(ctx context.Context, productID int64) ([]Review, error)
}
