package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// CatalogPageSize is the fixed number of products returned per listing page.
const CatalogPageSize = 10

// DefaultCategoryName is the category every product created through the
// storefront form is attached to, resolved-or-created at save time.
const DefaultCategoryName = "Apple"

// BaseStock is the stock every new product starts with before any extra
// stock from the form is added.
const BaseStock = 10

type Category struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type Product struct {
	ID          int64     `json:"id"`
	CategoryID  int64     `json:"category_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	Image       *string   `json:"image"`
	CreatedAt   time.Time `json:"created_at"`
}

// ProductWithCategory extends Product with its category name for listings
type ProductWithCategory struct {
	Product
	CategoryName string `json:"category_name"`
}

// ProductFilter is the read-side catalog predicate. All fields are optional
// and conjunctive when present.
type ProductFilter struct {
	Name     string
	PriceMin *float64
	PriceMax *float64
}

// ProductDraft is a validated product-creation input. Final price and stock
// are derived from it once, at save time.
type ProductDraft struct {
	Name               string
	Price              float64
	DiscountPercentage float64
	ExtraStock         int
	Image              *string
}

type CategoryRepository interface {
	// GetOrCreate atomically resolves the category by name, creating it when
	// absent. Repeated calls return the same row.
	GetOrCreate(ctx context.Context, name string) (*Category, error)
	Create(ctx context.Context, category *Category) error
}

type ProductRepository interface {
	Create(ctx context.Context, product *Product) error
	GetByID(ctx context.Context, id int64) (*ProductWithCategory, error)
	FetchFiltered(ctx context.Context, filter ProductFilter, limit, offset int) ([]ProductWithCategory, int64, error)
}

type CatalogUsecase interface {
	ListProducts(ctx context.Context, filter ProductFilter, page int) ([]ProductWithCategory, int64, error)
	GetProductDetails(ctx context.Context, id int64) (*ProductWithCategory, []Review, error)
}

type ProductUsecase interface {
	// CreateProduct computes the derived price/stock for the draft, attaches
	// the default category and persists one new catalog row.
	CreateProduct(ctx context.Context, draft *ProductDraft) (*Product, error)
}
