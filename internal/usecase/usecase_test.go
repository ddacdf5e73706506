package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-ishop-backend/internal/domain"
	"go-ishop-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock Repositories
type MockProductRepo struct {
	mock.Mock
}

func (m *MockProductRepo) Create(ctx context.Context, product *domain.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *MockProductRepo) GetByID(ctx context.Context, id int64) (*domain.ProductWithCategory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProductWithCategory), args.Error(1)
}

func (m *MockProductRepo) FetchFiltered(ctx context.Context, filter domain.ProductFilter, limit, offset int) ([]domain.ProductWithCategory, int64, error) {
	args := m.Called(ctx, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.ProductWithCategory), args.Get(1).(int64), args.Error(2)
}

type MockCategoryRepo struct {
	mock.Mock
}

func (m *MockCategoryRepo) GetOrCreate(ctx context.Context, name string) (*domain.Category, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepo) Create(ctx context.Context, category *domain.Category) error {
	return m.Called(ctx, category).Error(0)
}

type MockReviewRepo struct {
	mock.Mock
}

func (m *MockReviewRepo) Create(ctx context.Context, review *domain.Review) error {
	return m.Called(ctx, review).Error(0)
}

func (m *MockReviewRepo) FetchByProductID(ctx context.Context, productID int64) ([]domain.Review, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Review), args.Error(1)
}

// memStore is an in-memory MessageStore so the contact usecase is tested
// without touching the filesystem.
type memStore struct {
	records []*domain.MessageRecord
	err     error
}

func (s *memStore) Save(ctx context.Context, record *domain.MessageRecord) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.records = append(s.records, record)
	return "message_0.json", nil
}

func fixedNow() time.Time {
	return time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)
}

func TestCreateProductDerivedFields(t *testing.T) {
	productRepo := new(MockProductRepo)
	categoryRepo := new(MockCategoryRepo)
	uc := usecase.NewProductUsecase(productRepo, categoryRepo)

	categoryRepo.On("GetOrCreate", mock.Anything, "Apple").
		Return(&domain.Category{ID: 7, Name: "Apple"}, nil)
	productRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Product")).Return(nil)

	product, err := uc.CreateProduct(context.Background(), &domain.ProductDraft{
		Name:               "Mac Book",
		Price:              100,
		DiscountPercentage: 20,
		ExtraStock:         5,
	})
	require.NoError(t, err)

	assert.Equal(t, 80.0, product.Price)
	assert.Equal(t, 15, product.Stock)
	assert.Equal(t, int64(7), product.CategoryID)
	assert.Equal(t, "Mac Book", product.Name)
	productRepo.AssertExpectations(t)
	categoryRepo.AssertExpectations(t)
}

func TestCreateProductDefaults(t *testing.T) {
	productRepo := new(MockProductRepo)
	categoryRepo := new(MockCategoryRepo)
	uc := usecase.NewProductUsecase(productRepo, categoryRepo)

	categoryRepo.On("GetOrCreate", mock.Anything, "Apple").
		Return(&domain.Category{ID: 1, Name: "Apple"}, nil)
	productRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Product")).Return(nil)

	product, err := uc.CreateProduct(context.Background(), &domain.ProductDraft{
		Name:  "Mac Book",
		Price: 49.90,
	})
	require.NoError(t, err)

	// No discount and no extra stock: price unchanged, base stock only
	assert.Equal(t, 49.90, product.Price)
	assert.Equal(t, 10, product.Stock)
}

func TestCreateProductCategoryFailure(t *testing.T) {
	productRepo := new(MockProductRepo)
	categoryRepo := new(MockCategoryRepo)
	uc := usecase.NewProductUsecase(productRepo, categoryRepo)

	categoryRepo.On("GetOrCreate", mock.Anything, "Apple").
		Return(nil, errors.New("db down"))

	_, err := uc.CreateProduct(context.Background(), &domain.ProductDraft{Name: "Mac Book", Price: 100})
	assert.Error(t, err)
	productRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSubmitMessageAgeString(t *testing.T) {
	store := &memStore{}
	uc := usecase.NewContactUsecase(store, fixedNow)

	birth := time.Date(1990, time.April, 12, 0, 0, 0, 0, time.UTC)
	err := uc.SubmitMessage(context.Background(), &domain.ContactSubmission{
		FirstName:   "John",
		LastName:    "Doe",
		BirthDate:   &birth,
		Email:       "john@example.com",
		MessageType: "question",
		Subject:     "Delivery question",
		MinWaitDays: 3,
		Message:     "Hello there my good friend John",
	})
	require.NoError(t, err)
	require.Len(t, store.records, 1)

	got := store.records[0]
	// 2026-08-31 minus 1990-04-12: birthday passed, month delta (8-4)=4
	assert.Equal(t, "36 years and 4 months", got.Age)
	assert.Equal(t, "John", got.FirstName)
	assert.Equal(t, 3, got.MinWaitDays)
	assert.Equal(t, "Hello there my good friend John", got.Message)
}

func TestSubmitMessageNoBirthDate(t *testing.T) {
	store := &memStore{}
	uc := usecase.NewContactUsecase(store, fixedNow)

	err := uc.SubmitMessage(context.Background(), &domain.ContactSubmission{
		FirstName: "John",
		Email:     "john@example.com",
		Message:   "Hello there my good friend John",
	})
	require.NoError(t, err)
	require.Len(t, store.records, 1)
	assert.Equal(t, "N/A", store.records[0].Age)
}

func TestSubmitMessageStoreFailure(t *testing.T) {
	store := &memStore{err: errors.New("disk full")}
	uc := usecase.NewContactUsecase(store, fixedNow)

	err := uc.SubmitMessage(context.Background(), &domain.ContactSubmission{FirstName: "John"})
	assert.ErrorContains(t, err, "disk full")
	assert.Empty(t, store.records)
}

func TestListProductsPagination(t *testing.T) {
	productRepo := new(MockProductRepo)
	reviewRepo := new(MockReviewRepo)
	uc := usecase.NewCatalogUsecase(productRepo, reviewRepo)

	filter := domain.ProductFilter{Name: "mac"}

	t.Run("page below 1 clamps to the first page", func(t *testing.T) {
		productRepo.On("FetchFiltered", mock.Anything, filter, 10, 0).
			Return([]domain.ProductWithCategory{}, int64(0), nil).Once()
		_, _, err := uc.ListProducts(context.Background(), filter, 0)
		require.NoError(t, err)
	})

	t.Run("page 3 offsets by two pages", func(t *testing.T) {
		productRepo.On("FetchFiltered", mock.Anything, filter, 10, 20).
			Return([]domain.ProductWithCategory{}, int64(42), nil).Once()
		_, total, err := uc.ListProducts(context.Background(), filter, 3)
		require.NoError(t, err)
		assert.Equal(t, int64(42), total)
	})

	productRepo.AssertExpectations(t)
}

func TestGetProductDetails(t *testing.T) {
	productRepo := new(MockProductRepo)
	reviewRepo := new(MockReviewRepo)
	uc := usecase.NewCatalogUsecase(productRepo, reviewRepo)

	t.Run("returns product with its reviews", func(t *testing.T) {
		productRepo.On("GetByID", mock.Anything, int64(5)).
			Return(&domain.ProductWithCategory{Product: domain.Product{ID: 5, Name: "Mac Book"}}, nil).Once()
		reviewRepo.On("FetchByProductID", mock.Anything, int64(5)).
			Return([]domain.Review{{ID: 1, ProductID: 5, Rating: 4}}, nil).Once()

		product, reviews, err := uc.GetProductDetails(context.Background(), 5)
		require.NoError(t, err)
		assert.Equal(t, "Mac Book", product.Name)
		assert.Len(t, reviews, 1)
	})

	t.Run("missing product", func(t *testing.T) {
		productRepo.On("GetByID", mock.Anything, int64(99)).
			Return(nil, domain.ErrNotFound).Once()

		_, _, err := uc.GetProductDetails(context.Background(), 99)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
