package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/cetinnyigit/cetinnyigit-wibesoft-ecommerce-api/models"
)

type testEnv struct {
	db       *gorm.DB
	products *ProductService
	cart     *CartService
	orders   *OrderService
	auth     *AuthService
}

// newTestEnv wires the full service graph against a per-test in-memory
// SQLite database.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "failed to connect test database")

	err = db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	)
	require.NoError(t, err, "failed to auto-migrate models")

	logger := zap.NewNop().Sugar()
	products := NewProductService(db, logger)
	cart := NewCartService(db, products, logger)
	orders := NewOrderService(db, cart, products, logger)
	auth := NewAuthService(db, []byte("test-secret"), logger)

	return &testEnv{db: db, products: products, cart: cart, orders: orders, auth: auth}
}

func (e *testEnv) seedProduct(t *testing.T, name string, price float64, stock int) *models.Product {
	t.Helper()

	product, err := e.products.Create(CreateProductInput{
		Name:  name,
		Price: decimal.NewFromFloat(price),
		Stock: stock,
	})
	require.NoError(t, err)
	return product
}
