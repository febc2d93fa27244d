package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cetinnyigit/cetinnyigit-wibesoft-ecommerce-api/models"
)

func TestGetOrCreateCart(t *testing.T) {
	env := newTestEnv(t)

	first, err := env.cart.GetOrCreate("sess-1")
	require.NoError(t, err)
	assert.Greater(t, first.ID, uint(0))
	assert.Empty(t, first.Items)

	second, err := env.cart.GetOrCreate("sess-1")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "one cart per session")

	other, err := env.cart.GetOrCreate("sess-2")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, other.ID)
}

// Scenario: product with stock 5 and price 10.00; adding 3 succeeds with
// total 30.00, adding 3 more is refused (5 available, 6 requested) and the
// quantity stays at 3 in a single row.
func TestAddItemMergesIntoOneRow(t *testing.T) {
	env := newTestEnv(t)
	product := env.seedProduct(t, "Laptop", 10.00, 5)

	cart, err := env.cart.AddItem("sess-1", product.ID, 3)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Quantity)
	assert.Equal(t, "30.00", cart.TotalPrice.StringFixed(2))

	_, err = env.cart.AddItem("sess-1", product.ID, 3)
	var insufficient *InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 5, insufficient.Available)
	assert.Equal(t, 6, insufficient.Requested)

	var count int64
	require.NoError(t, env.db.Model(&models.CartItem{}).Where("product_id = ?", product.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count, "merging must never duplicate the row")

	cartAfter, err := env.cart.GetCart("sess-1")
	require.NoError(t, err)
	require.Len(t, cartAfter.Items, 1)
	assert.Equal(t, 3, cartAfter.Items[0].Quantity)
}

func TestAddItemMergeWithinStock(t *testing.T) {
	env := newTestEnv(t)
	product := env.seedProduct(t, "Mouse", 29.99, 10)

	_, err := env.cart.AddItem("sess-1", product.ID, 2)
	require.NoError(t, err)
	cart, err := env.cart.AddItem("sess-1", product.ID, 3)
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)
}

func TestAddItemUnknownProduct(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.cart.AddItem("sess-1", 9999, 1)

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "product", notFound.Resource)
}

func TestAddItemInsufficientStock(t *testing.T) {
	env := newTestEnv(t)
	product := env.seedProduct(t, "Keyboard", 89.99, 2)

	_, err := env.cart.AddItem("sess-1", product.ID, 3)

	var insufficient *InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 2, insufficient.Available)
	assert.Equal(t, 3, insufficient.Requested)
}

// The total is derived on every read, so catalog price changes show up
// immediately.
func TestGetCartTotalRecomputed(t *testing.T) {
	env := newTestEnv(t)
	product := env.seedProduct(t, "Hub", 10.00, 10)

	_, err := env.cart.AddItem("sess-1", product.ID, 2)
	require.NoError(t, err)

	cart, err := env.cart.GetCart("sess-1")
	require.NoError(t, err)
	assert.Equal(t, "20.00", cart.TotalPrice.StringFixed(2))

	newPrice := decimal.NewFromFloat(12.50)
	_, err = env.products.Update(product.ID, UpdateProductInput{Price: &newPrice})
	require.NoError(t, err)

	cart, err = env.cart.GetCart("sess-1")
	require.NoError(t, err)
	assert.Equal(t, "25.00", cart.TotalPrice.StringFixed(2))
}

func TestGetCartTotalAcrossProducts(t *testing.T) {
	env := newTestEnv(t)
	p1 := env.seedProduct(t, "A", 10.00, 10)
	p2 := env.seedProduct(t, "B", 5.00, 10)

	_, err := env.cart.AddItem("sess-1", p1.ID, 2)
	require.NoError(t, err)
	_, err = env.cart.AddItem("sess-1", p2.ID, 1)
	require.NoError(t, err)

	cart, err := env.cart.GetCart("sess-1")
	require.NoError(t, err)
	assert.Equal(t, "25.00", cart.TotalPrice.StringFixed(2))
}

func TestUpdateItem(t *testing.T) {
	env := newTestEnv(t)
	product := env.seedProduct(t, "Webcam", 69.99, 10)

	_, err := env.cart.AddItem("sess-1", product.ID, 1)
	require.NoError(t, err)

	cart, err := env.cart.UpdateItem("sess-1", product.ID, 4)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 4, cart.Items[0].Quantity)
}

func TestUpdateItemNotInCart(t *testing.T) {
	env := newTestEnv(t)
	product := env.seedProduct(t, "Webcam", 69.99, 10)

	_, err := env.cart.UpdateItem("sess-1", product.ID, 2)

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "cart item", notFound.Resource)
}

func TestUpdateItemInsufficientStock(t *testing.T) {
	env := newTestEnv(t)
	product := env.seedProduct(t, "Webcam", 69.99, 5)

	_, err := env.cart.AddItem("sess-1", product.ID, 2)
	require.NoError(t, err)

	_, err = env.cart.UpdateItem("sess-1", product.ID, 6)

	var insufficient *InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 5, insufficient.Available)
	assert.Equal(t, 6, insufficient.Requested)

	cart, err := env.cart.GetCart("sess-1")
	require.NoError(t, err)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestRemoveItem(t *testing.T) {
	env := newTestEnv(t)
	product := env.seedProduct(t, "Cable", 9.99, 10)

	_, err := env.cart.AddItem("sess-1", product.ID, 1)
	require.NoError(t, err)

	cart, err := env.cart.RemoveItem("sess-1", product.ID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Equal(t, "0.00", cart.TotalPrice.StringFixed(2))

	_, err = env.cart.RemoveItem("sess-1", product.ID)
	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestClearCartIdempotent(t *testing.T) {
	env := newTestEnv(t)
	product := env.seedProduct(t, "Cable", 9.99, 10)

	_, err := env.cart.AddItem("sess-1", product.ID, 2)
	require.NoError(t, err)

	require.NoError(t, env.cart.ClearCart("sess-1"))
	items, err := env.cart.GetCartItems("sess-1")
	require.NoError(t, err)
	assert.Empty(t, items)

	// Second clear is a no-op, not an error.
	require.NoError(t, env.cart.ClearCart("sess-1"))
	items, err = env.cart.GetCartItems("sess-1")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCartsAreSessionScoped(t *testing.T) {
	env := newTestEnv(t)
	product := env.seedProduct(t, "Cable", 9.99, 10)

	_, err := env.cart.AddItem("sess-1", product.ID, 2)
	require.NoError(t, err)

	other, err := env.cart.GetCart("sess-2")
	require.NoError(t, err)
	assert.Empty(t, other.Items)
}
