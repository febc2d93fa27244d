package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/cetinnyigit/cetinnyigit-wibesoft-ecommerce-api/models"
	"github.com/cetinnyigit/cetinnyigit-wibesoft-ecommerce-api/routes"
	"github.com/cetinnyigit/cetinnyigit-wibesoft-ecommerce-api/services"
)

func main() {
	// Load environment variables
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	// Init DB
	db := initDatabase(sugar)

	// Auto-migrate all tables
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

	// Services
	authService := services.NewAuthService(db, []byte(getEnv("JWT_SECRET", "change-me")), sugar)
	productService := services.NewProductService(db, sugar)
	cartService := services.NewCartService(db, productService, sugar)
	orderService := services.NewOrderService(db, cartService, productService, sugar)

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Cookie session store: carries the opaque cart session id
	store := cookie.NewStore([]byte(getEnv("SESSION_SECRET", "change-me")))
	store.Options(sessions.Options{MaxAge: 24 * 60 * 60, Path: "/"})
	r.Use(sessions.Sessions("shopsess", store))

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })
	r.GET("/api/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Setup routes
	routes.SetupRoutes(r, authService, productService, cartService, orderService)

	// Start server
	port := getEnv("PORT", "8080")
	sugar.Infow("server starting", "port", port)
	if err := r.Run(":" + port); err != nil {
		sugar.Fatalw("failed to start server", "error", err)
	}
}

// initDatabase sets up the GORM DB connection
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
