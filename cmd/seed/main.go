// Command seed provisions the iShop schema and fills it with demo data:
// two users, three categories, ten products, a handful of reviews and
// orders, and one active coupon.
package main

import (
	"context"
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"go-ishop-backend/config"
	"go-ishop-backend/internal/domain"
	"go-ishop-backend/internal/repository/postgres"
	"go-ishop-backend/pkg/database"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
    id            BIGSERIAL PRIMARY KEY,
    username      TEXT NOT NULL UNIQUE,
    email         TEXT NOT NULL,
    password_hash TEXT NOT NULL,
    created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS categories (
    id         BIGSERIAL PRIMARY KEY,
    name       TEXT NOT NULL UNIQUE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS products (
    id          BIGSERIAL PRIMARY KEY,
    category_id BIGINT NOT NULL REFERENCES categories(id),
    name        TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    price       NUMERIC(10,2) NOT NULL,
    stock       INTEGER NOT NULL,
    image       TEXT,
    created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS reviews (
    id         BIGSERIAL PRIMARY KEY,
    product_id BIGINT NOT NULL REFERENCES products(id),
    user_id    BIGINT NOT NULL REFERENCES users(id),
    rating     INTEGER NOT NULL,
    comment    TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS orders (
    id         BIGSERIAL PRIMARY KEY,
    user_id    BIGINT NOT NULL REFERENCES users(id),
    status     TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS order_items (
    id         BIGSERIAL PRIMARY KEY,
    order_id   BIGINT NOT NULL REFERENCES orders(id),
    product_id BIGINT NOT NULL REFERENCES products(id),
    quantity   INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS coupons (
    id                  BIGSERIAL PRIMARY KEY,
    code                TEXT NOT NULL UNIQUE,
    discount_percentage NUMERIC(5,2) NOT NULL,
    valid_from          TIMESTAMPTZ NOT NULL,
    valid_to            TIMESTAMPTZ NOT NULL,
    active              BOOLEAN NOT NULL DEFAULT true
);
`

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	ctx := context.Background()
	if err := run(ctx, dbPool); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Database seeded successfully")
}

func run(ctx context.Context, dbPool *pgxpool.Pool) error {
	if _, err := dbPool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	userRepo := postgres.NewUserRepository(dbPool)
	categoryRepo := postgres.NewCategoryRepository(dbPool)
	productRepo := postgres.NewProductRepository(dbPool)
	reviewRepo := postgres.NewReviewRepository(dbPool)
	orderRepo := postgres.NewOrderRepository(dbPool)
	couponRepo := postgres.NewCouponRepository(dbPool)

	now := time.Now()

	// Demo users
	users := []*domain.User{
		{Username: "john", Email: "john@example.com"},
		{Username: "jane", Email: "jane@example.com"},
	}
	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte("password123"), 10)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		u.PasswordHash = string(hash)
		u.CreatedAt = now
		if err := userRepo.Create(ctx, u); err != nil {
			return fmt.Errorf("create user %s: %w", u.Username, err)
		}
	}

	// Categories
	categories := map[string]*domain.Category{}
	for _, name := range []string{"iPhones", "MacBooks", "Accessories"} {
		cat := &domain.Category{Name: name, CreatedAt: now}
		if err := categoryRepo.Create(ctx, cat); err != nil {
			return fmt.Errorf("create category %s: %w", name, err)
		}
		categories[name] = cat
	}

	// Products
	productNames := []struct {
		name     string
		category string
	}{
		{"iPhone 13", "iPhones"},
		{"iPhone 14 Pro", "iPhones"},
		{"MacBook Air", "MacBooks"},
		{"MacBook Pro", "MacBooks"},
		{"Apple Watch", "Accessories"},
		{"AirPods", "Accessories"},
		{"iPad", "iPhones"},
		{"Magic Keyboard", "Accessories"},
		{"iPhone SE", "iPhones"},
		{"Mac Studio", "MacBooks"},
	}

	var products []*domain.Product
	for _, pn := range productNames {
		p := &domain.Product{
			CategoryID:  categories[pn.category].ID,
			Name:        pn.name,
			Description: fmt.Sprintf("Description for %s", pn.name),
			Price:       float64(500 + rand.IntN(2501)),
			Stock:       10 + rand.IntN(91),
			CreatedAt:   now,
		}
		if err := productRepo.Create(ctx, p); err != nil {
			return fmt.Errorf("create product %s: %w", pn.name, err)
		}
		products = append(products, p)
	}

	// Reviews (5 random)
	for i := 0; i < 5; i++ {
		product := products[rand.IntN(len(products))]
		user := users[rand.IntN(len(users))]
		rating := 1 + rand.IntN(5)
		review := &domain.Review{
			ProductID: product.ID,
			UserID:    user.ID,
			Rating:    rating,
			Comment:   fmt.Sprintf("This is a review for %s, rating: %d", product.Name, rating),
			CreatedAt: now,
		}
		if err := reviewRepo.Create(ctx, review); err != nil {
			return fmt.Errorf("create review: %w", err)
		}
	}

	// Orders with 3 random products each
	for i := 0; i < 3; i++ {
		order := &domain.Order{
			UserID:    users[rand.IntN(len(users))].ID,
			Status:    domain.OrderStatusProcessing,
			CreatedAt: now,
		}
		if err := orderRepo.Create(ctx, order); err != nil {
			return fmt.Errorf("create order: %w", err)
		}
		for _, idx := range rand.Perm(len(products))[:3] {
			item := &domain.OrderItem{
				OrderID:   order.ID,
				ProductID: products[idx].ID,
				Quantity:  1 + rand.IntN(5),
			}
			if err := orderRepo.AddItem(ctx, item); err != nil {
				return fmt.Errorf("add order item: %w", err)
			}
		}
	}

	// Coupon
	coupon := &domain.Coupon{
		Code:               "DISCOUNT10",
		DiscountPercentage: 10,
		ValidFrom:          now,
		ValidTo:            now.AddDate(0, 0, 30),
		Active:             true,
	}
	if err := couponRepo.Create(ctx, coupon); err != nil {
		return fmt.Errorf("create coupon: %w", err)
	}

	return nil
}
