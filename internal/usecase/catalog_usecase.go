package usecase

import (
	"context"

	"go-ishop-backend/internal/domain"
)

type catalogUsecase struct {
	productRepo domain.ProductRepository
	reviewRepo  domain.ReviewRepository
}

func NewCatalogUsecase(productRepo domain.ProductRepository, reviewRepo domain.ReviewRepository) domain.CatalogUsecase {
	return &catalogUsecase{
		productRepo: productRepo,
		reviewRepo:  reviewRepo,
	}
}

// ListProducts returns one fixed-size page of the filtered catalog plus the
// total match count for pagination.
func (u *catalogUsecase) ListProducts(ctx context.Context, filter domain.ProductFilter, page int) ([]domain.ProductWithCategory, int64, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * domain.CatalogPageSize

	return u.productRepo.FetchFiltered(ctx, filter, domain.CatalogPageSize, offset)
}

func (u *catalogUsecase) GetProductDetails(ctx context.Context, id int64) (*domain.ProductWithCategory, []domain.Review, error) {
	product, err := u.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	reviews, err := u.reviewRepo.FetchByProductID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	return product, reviews, nil
}
