package services

import (
	"errors"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/cetinnyigit/cetinnyigit-wibesoft-ecommerce-api/models"
)

// CartView is a cart plus its derived total, recomputed on every read and
// never persisted.
type CartView struct {
	models.Cart
	TotalPrice decimal.Decimal `json:"total_price"`
}

type CartService struct {
	db       *gorm.DB
	products *ProductService
	logger   *zap.SugaredLogger
}

func NewCartService(db *gorm.DB, products *ProductService, logger *zap.SugaredLogger) *CartService {
	return &CartService{db: db, products: products, logger: logger}
}

// WithTx returns a copy bound to tx, collaborators included.
func (s *CartService) WithTx(tx *gorm.DB) *CartService {
	return &CartService{db: tx, products: s.products.WithTx(tx), logger: s.logger}
}

// GetOrCreate looks up the session's cart with items and products eagerly
// loaded, creating an empty cart on first access.
func (s *CartService) GetOrCreate(sessionID string) (*models.Cart, error) {
	var cart models.Cart
	err := s.db.Preload("Items").Preload("Items.Product").
		Where("session_id = ?", sessionID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Infow("creating cart", "session_id", sessionID)
		cart = models.Cart{SessionID: sessionID}
		if err := s.db.Create(&cart).Error; err != nil {
			return nil, err
		}
		return &cart, nil
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// AddItem puts quantity units of a product into the session's cart, merging
// into an existing line item instead of duplicating it. The stock check here
// is advisory; the authoritative one runs inside the order transaction.
func (s *CartService) AddItem(sessionID string, productID uint, quantity int) (*CartView, error) {
	s.logger.Infow("adding item to cart", "session_id", sessionID, "product_id", productID, "quantity", quantity)

	product, err := s.products.FindOne(productID)
	if err != nil {
		return nil, err
	}
	if product.Stock < quantity {
		return nil, &InsufficientStockError{
			ProductID: product.ID,
			Product:   product.Name,
			Available: product.Stock,
			Requested: quantity,
		}
	}

	cart, err := s.GetOrCreate(sessionID)
	if err != nil {
		return nil, err
	}

	var item models.CartItem
	err = s.db.Where("cart_id = ? AND product_id = ?", cart.ID, productID).First(&item).Error
	switch {
	case err == nil:
		newQuantity := item.Quantity + quantity
		if product.Stock < newQuantity {
			return nil, &InsufficientStockError{
				ProductID: product.ID,
				Product:   product.Name,
				Available: product.Stock,
				Requested: newQuantity,
			}
		}
		if err := s.db.Model(&item).Update("quantity", newQuantity).Error; err != nil {
			return nil, err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		item = models.CartItem{CartID: cart.ID, ProductID: productID, Quantity: quantity}
		if err := s.db.Omit("Product").Create(&item).Error; err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	return s.GetCart(sessionID)
}

// GetCart returns the cart with TotalPrice = Σ product price × quantity.
func (s *CartService) GetCart(sessionID string) (*CartView, error) {
	cart, err := s.GetOrCreate(sessionID)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	for _, item := range cart.Items {
		total = total.Add(item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	return &CartView{Cart: *cart, TotalPrice: total}, nil
}

func (s *CartService) UpdateItem(sessionID string, productID uint, quantity int) (*CartView, error) {
	s.logger.Infow("updating cart item", "session_id", sessionID, "product_id", productID, "quantity", quantity)

	cart, err := s.GetOrCreate(sessionID)
	if err != nil {
		return nil, err
	}

	var item models.CartItem
	err = s.db.Preload("Product").
		Where("cart_id = ? AND product_id = ?", cart.ID, productID).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Resource: "cart item", ID: productID}
	}
	if err != nil {
		return nil, err
	}

	if item.Product.Stock < quantity {
		return nil, &InsufficientStockError{
			ProductID: item.Product.ID,
			Product:   item.Product.Name,
			Available: item.Product.Stock,
			Requested: quantity,
		}
	}

	if err := s.db.Model(&item).Update("quantity", quantity).Error; err != nil {
		return nil, err
	}
	return s.GetCart(sessionID)
}

func (s *CartService) RemoveItem(sessionID string, productID uint) (*CartView, error) {
	s.logger.Infow("removing cart item", "session_id", sessionID, "product_id", productID)

	cart, err := s.GetOrCreate(sessionID)
	if err != nil {
		return nil, err
	}

	var item models.CartItem
	err = s.db.Where("cart_id = ? AND product_id = ?", cart.ID, productID).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Resource: "cart item", ID: productID}
	}
	if err != nil {
		return nil, err
	}

	if err := s.db.Delete(&item).Error; err != nil {
		return nil, err
	}
	return s.GetCart(sessionID)
}

// ClearCart removes every item under the session's cart. Idempotent.
func (s *CartService) ClearCart(sessionID string) error {
	s.logger.Infow("clearing cart", "session_id", sessionID)

	cart, err := s.GetOrCreate(sessionID)
	if err != nil {
		return err
	}
	return s.db.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error
}

func (s *CartService) GetCartItems(sessionID string) ([]models.CartItem, error) {
	cart, err := s.GetOrCreate(sessionID)
	if err != nil {
		return nil, err
	}
	return cart.Items, nil
}
