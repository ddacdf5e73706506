package usecase

import (
	"context"
	"time"

	"go-ishop-backend/internal/domain"
)

type productUsecase struct {
	productRepo  domain.ProductRepository
	categoryRepo domain.CategoryRepository
}

func NewProductUsecase(productRepo domain.ProductRepository, categoryRepo domain.CategoryRepository) domain.ProductUsecase {
	return &productUsecase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

// CreateProduct attaches the draft to the fixed storefront category and
// persists it with the derived fields:
//
//	final_price = price * (100 - discount) / 100
//	final_stock = BaseStock + extra_stock
//
// The discount and extra stock default to zero when the form omitted them.
func (u *productUsecase) CreateProduct(ctx context.Context, draft *domain.ProductDraft) (*domain.Product, error) {
	category, err := u.categoryRepo.GetOrCreate(ctx, domain.DefaultCategoryName)
	if err != nil {
		return nil, err
	}

	product := &domain.Product{
		CategoryID: category.ID,
		Name:       draft.Name,
		Price:      draft.Price * (100 - draft.DiscountPercentage) / 100,
		Stock:      domain.BaseStock + draft.ExtraStock,
		Image:      draft.Image,
		CreatedAt:  time.Now(),
	}

	if err := u.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}
