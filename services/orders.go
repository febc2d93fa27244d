package services

import (
	"errors"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/cetinnyigit/cetinnyigit-wibesoft-ecommerce-api/models"
)

type OrderService struct {
	db       *gorm.DB
	cart     *CartService
	products *ProductService
	logger   *zap.SugaredLogger
}

func NewOrderService(db *gorm.DB, cart *CartService, products *ProductService, logger *zap.SugaredLogger) *OrderService {
	return &OrderService{db: db, cart: cart, products: products, logger: logger}
}

// CreateFromCart converts the session's cart into a pending order. Stock
// decrements, the order row, its items, and the cart clear commit or roll
// back as one unit; on any failure the original error is returned with no
// state change. userID owns the order when set, otherwise the session id
// does.
func (s *OrderService) CreateFromCart(sessionID, userID string) (*models.Order, error) {
	s.logger.Infow("creating order from cart", "session_id", sessionID)

	cart, err := s.cart.GetCart(sessionID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	owner := userID
	if owner == "" {
		owner = sessionID
	}

	var orderID uint
	err = s.db.Transaction(func(tx *gorm.DB) error {
		products := s.products.WithTx(tx)

		total := decimal.Zero
		items := make([]models.OrderItem, 0, len(cart.Items))
		for _, item := range cart.Items {
			// Authoritative stock check: the one at add-to-cart time may be
			// stale by checkout.
			product, err := products.DecreaseStock(item.ProductID, item.Quantity)
			if err != nil {
				return err
			}

			total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
			items = append(items, models.OrderItem{
				ProductID:    item.ProductID,
				Quantity:     item.Quantity,
				PriceAtOrder: product.Price,
			})
		}

		order := models.Order{
			UserID:      owner,
			TotalAmount: total,
			Status:      models.OrderStatusPending,
			Items:       items,
		}
		// Items are created with the order; the catalog rows they point at
		// must never be written from here.
		if err := tx.Omit("Items.Product").Create(&order).Error; err != nil {
			return err
		}

		if err := s.cart.WithTx(tx).ClearCart(sessionID); err != nil {
			return err
		}

		orderID = order.ID
		return nil
	})
	if err != nil {
		s.logger.Errorw("failed to create order", "session_id", sessionID, "error", err)
		return nil, err
	}

	s.logger.Infow("order created", "order_id", orderID, "user_id", owner)
	return s.FindOne(orderID)
}

// FindAll returns every order with items and products, newest first.
func (s *OrderService) FindAll() ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.
		Preload("Items").
		Preload("Items.Product").
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *OrderService) FindOne(id uint) (*models.Order, error) {
	var order models.Order
	if err := s.db.
		Preload("Items").
		Preload("Items.Product").
		First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "order", ID: id}
		}
		return nil, err
	}
	return &order, nil
}
