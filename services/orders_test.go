package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cetinnyigit/cetinnyigit-wibesoft-ecommerce-api/models"
)

func countRows(t *testing.T, env *testEnv, model interface{}) int64 {
	t.Helper()
	var count int64
	require.NoError(t, env.db.Model(model).Count(&count).Error)
	return count
}

// Scenario: cart holds P(qty 2, price 10.00) and Q(qty 1, price 5.00); the
// order totals 25.00, both stocks are debited and the cart empties.
func TestCreateFromCart(t *testing.T) {
	env := newTestEnv(t)
	p := env.seedProduct(t, "P", 10.00, 5)
	q := env.seedProduct(t, "Q", 5.00, 5)

	_, err := env.cart.AddItem("sess-1", p.ID, 2)
	require.NoError(t, err)
	_, err = env.cart.AddItem("sess-1", q.ID, 1)
	require.NoError(t, err)

	order, err := env.orders.CreateFromCart("sess-1", "")
	require.NoError(t, err)

	assert.Equal(t, "sess-1", order.UserID, "session id owns the order when no user id is given")
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, "25.00", order.TotalAmount.StringFixed(2))
	require.Len(t, order.Items, 2)
	for _, item := range order.Items {
		assert.NotZero(t, item.Product.ID, "items are returned with their product loaded")
	}

	pAfter, err := env.products.FindOne(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, pAfter.Stock)
	qAfter, err := env.products.FindOne(q.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, qAfter.Stock)

	cart, err := env.cart.GetCart("sess-1")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

// Scenario: cart requests 10 of a product whose stock dropped to 3 after it
// was added. Checkout fails and nothing changes.
func TestCreateFromCartInsufficientStock(t *testing.T) {
	env := newTestEnv(t)
	p := env.seedProduct(t, "P", 10.00, 10)

	_, err := env.cart.AddItem("sess-1", p.ID, 10)
	require.NoError(t, err)

	// Another shopper drains the stock between add-to-cart and checkout.
	stock := 3
	_, err = env.products.Update(p.ID, UpdateProductInput{Stock: &stock})
	require.NoError(t, err)

	_, err = env.orders.CreateFromCart("sess-1", "")

	var insufficient *InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, "P", insufficient.Product)
	assert.Equal(t, 3, insufficient.Available)
	assert.Equal(t, 10, insufficient.Requested)

	pAfter, err := env.products.FindOne(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, pAfter.Stock, "no partial decrement")

	cart, err := env.cart.GetCart("sess-1")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1, "cart left untouched")
	assert.Equal(t, 10, cart.Items[0].Quantity)

	assert.Zero(t, countRows(t, env, &models.Order{}))
	assert.Zero(t, countRows(t, env, &models.OrderItem{}))
}

// A failure on a later line item must roll back decrements already applied
// to earlier ones.
func TestCreateFromCartRollsBackEarlierDecrements(t *testing.T) {
	env := newTestEnv(t)
	p := env.seedProduct(t, "P", 10.00, 5)
	q := env.seedProduct(t, "Q", 5.00, 2)

	_, err := env.cart.AddItem("sess-1", p.ID, 1)
	require.NoError(t, err)
	_, err = env.cart.AddItem("sess-1", q.ID, 2)
	require.NoError(t, err)

	stock := 1
	_, err = env.products.Update(q.ID, UpdateProductInput{Stock: &stock})
	require.NoError(t, err)

	_, err = env.orders.CreateFromCart("sess-1", "")
	var insufficient *InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, "Q", insufficient.Product)

	pAfter, err := env.products.FindOne(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, pAfter.Stock, "P's decrement must be rolled back")

	assert.Zero(t, countRows(t, env, &models.Order{}))
}

func TestCreateFromCartEmptyCart(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.orders.CreateFromCart("sess-1", "")
	require.ErrorIs(t, err, ErrEmptyCart)

	assert.Zero(t, countRows(t, env, &models.Order{}))
}

func TestCreateFromCartExplicitOwner(t *testing.T) {
	env := newTestEnv(t)
	p := env.seedProduct(t, "P", 10.00, 5)

	_, err := env.cart.AddItem("sess-1", p.ID, 1)
	require.NoError(t, err)

	order, err := env.orders.CreateFromCart("sess-1", "42")
	require.NoError(t, err)
	assert.Equal(t, "42", order.UserID)
}

// PriceAtOrder is a snapshot: later catalog price changes leave the order
// untouched.
func TestPriceAtOrderIsASnapshot(t *testing.T) {
	env := newTestEnv(t)
	p := env.seedProduct(t, "P", 10.00, 5)

	_, err := env.cart.AddItem("sess-1", p.ID, 2)
	require.NoError(t, err)

	order, err := env.orders.CreateFromCart("sess-1", "")
	require.NoError(t, err)

	newPrice := decimal.NewFromFloat(99.99)
	_, err = env.products.Update(p.ID, UpdateProductInput{Price: &newPrice})
	require.NoError(t, err)

	reloaded, err := env.orders.FindOne(order.ID)
	require.NoError(t, err)
	assert.Equal(t, "10.00", reloaded.Items[0].PriceAtOrder.StringFixed(2))
	assert.Equal(t, "20.00", reloaded.TotalAmount.StringFixed(2))
}

func TestFindAllOrdersNewestFirst(t *testing.T) {
	env := newTestEnv(t)
	p := env.seedProduct(t, "P", 10.00, 10)

	_, err := env.cart.AddItem("sess-1", p.ID, 1)
	require.NoError(t, err)
	first, err := env.orders.CreateFromCart("sess-1", "")
	require.NoError(t, err)
	require.NoError(t, env.db.Model(&models.Order{}).Where("id = ?", first.ID).
		Update("created_at", time.Now().Add(-time.Hour)).Error)

	_, err = env.cart.AddItem("sess-1", p.ID, 1)
	require.NoError(t, err)
	second, err := env.orders.CreateFromCart("sess-1", "")
	require.NoError(t, err)

	orders, err := env.orders.FindAll()
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, second.ID, orders[0].ID)
	assert.Equal(t, first.ID, orders[1].ID)
	require.Len(t, orders[0].Items, 1)
	assert.NotZero(t, orders[0].Items[0].Product.ID)
}

func TestFindOneOrderNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.orders.FindOne(4242)

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "order", notFound.Resource)
}
