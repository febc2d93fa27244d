package services

import (
	"errors"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/cetinnyigit/cetinnyigit-wibesoft-ecommerce-api/models"
)

type CreateProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
	ImageURL    string
}

// UpdateProductInput overlays only the fields that are set.
type UpdateProductInput struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Stock       *int
	ImageURL    *string
}

type ProductService struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

func NewProductService(db *gorm.DB, logger *zap.SugaredLogger) *ProductService {
	return &ProductService{db: db, logger: logger}
}

// WithTx returns a copy bound to tx so the service can take part in a
// surrounding transaction.
func (s *ProductService) WithTx(tx *gorm.DB) *ProductService {
	return &ProductService{db: tx, logger: s.logger}
}

func (s *ProductService) Create(input CreateProductInput) (*models.Product, error) {
	s.logger.Infow("creating product", "name", input.Name)

	product := models.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
		ImageURL:    input.ImageURL,
	}
	if err := s.db.Create(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// FindAll returns every product, newest first, plus the total count.
func (s *ProductService) FindAll() ([]models.Product, int64, error) {
	var products []models.Product
	if err := s.db.Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, 0, err
	}
	return products, int64(len(products)), nil
}

func (s *ProductService) FindOne(id uint) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "product", ID: id}
		}
		return nil, err
	}
	return &product, nil
}

func (s *ProductService) Update(id uint, input UpdateProductInput) (*models.Product, error) {
	s.logger.Infow("updating product", "id", id)

	product, err := s.FindOne(id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}
	if input.ImageURL != nil {
		product.ImageURL = *input.ImageURL
	}

	if err := s.db.Save(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) Remove(id uint) error {
	s.logger.Infow("removing product", "id", id)

	product, err := s.FindOne(id)
	if err != nil {
		return err
	}
	return s.db.Delete(product).Error
}

// DecreaseStock is the only mutation path allowed to lower stock. The
// decrement is a single conditional UPDATE guarded by "stock >= quantity",
// so concurrent checkouts cannot drive stock below zero even without an
// explicit row lock. Returns the product with its refreshed stock; callers
// use its price as the at-order snapshot.
func (s *ProductService) DecreaseStock(id uint, quantity int) (*models.Product, error) {
	product, err := s.FindOne(id)
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

	res := s.db.Model(&models.Product{}).
		Where("id = ? AND stock >= ?", id, quantity).
		Updates(map[string]interface{}{"stock": gorm.Expr("stock - ?", quantity)})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		// Lost the race against a concurrent decrement; report current stock.
		current, err := s.FindOne(id)
		if err != nil {
			return nil, err
		}
		return nil, &InsufficientStockError{
			ProductID: current.ID,
			Product:   current.Name,
			Available: current.Stock,
			Requested: quantity,
		}
	}

	product.Stock -= quantity
	return product, nil
}
