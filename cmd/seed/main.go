// Seeds the database with a test user and sample products.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/cetinnyigit/cetinnyigit-wibesoft-ecommerce-api/models"
	"github.com/cetinnyigit/cetinnyigit-wibesoft-ecommerce-api/services"
)

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	db := initDatabase(sugar)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		sugar.Fatalw("AutoMigrate failed", "error", err)
	}

	authService := services.NewAuthService(db, []byte(getEnv("JWT_SECRET", "change-me")), sugar)
	productService := services.NewProductService(db, sugar)

	sugar.Info("starting database seeding")

	if _, err := authService.Register("admin", "password123"); err != nil {
		// Keep going; the user may exist from an earlier run.
		sugar.Warnw("failed to create test user", "error", err)
	} else {
		sugar.Info("test user created: username=admin")
	}

	products := []services.CreateProductInput{
		{
			Name:        "Laptop",
			Description: "High-performance laptop with 16GB RAM",
			Price:       decimal.NewFromFloat(999.99),
			Stock:       10,
			ImageURL:    "https://example.com/laptop.jpg",
		},
		{
			Name:        "Wireless Mouse",
			Description: "Ergonomic wireless mouse",
			Price:       decimal.NewFromFloat(29.99),
			Stock:       50,
			ImageURL:    "https://example.com/mouse.jpg",
		},
		{
			Name:        "Mechanical Keyboard",
			Description: "RGB mechanical keyboard with blue switches",
			Price:       decimal.NewFromFloat(89.99),
			Stock:       25,
			ImageURL:    "https://example.com/keyboard.jpg",
		},
		{
			Name:        "USB-C Hub",
			Description: "7-in-1 USB-C hub with HDMI and ethernet",
			Price:       decimal.NewFromFloat(49.99),
			Stock:       30,
			ImageURL:    "https://example.com/hub.jpg",
		},
		{
			Name:        "Webcam HD",
			Description: "1080p HD webcam with microphone",
			Price:       decimal.NewFromFloat(69.99),
			Stock:       15,
			ImageURL:    "https://example.com/webcam.jpg",
		},
	}

	for _, p := range products {
		if _, err := productService.Create(p); err != nil {
			sugar.Warnw("failed to create product", "name", p.Name, "error", err)
			continue
		}
		sugar.Infow("product created", "name", p.Name)
	}

	sugar.Info("database seeding completed")
}

func initDatabase(sugar *zap.SugaredLogger) *gorm.DB {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
		if err != nil {
			sugar.Fatalw("DB connection failed", "error", err)
		}
		return db
	}

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", "postgres"),
		getEnv("DB_NAME", "ecommerce"),
		getEnv("DB_PORT", "5432"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		sugar.Fatalw("DB connection failed", "error", err)
	}
	return db
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
