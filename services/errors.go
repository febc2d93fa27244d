package services

import (
	"errors"
	"fmt"
)

// Sentinel errors surfaced to the HTTP layer, which maps them to status codes.
var (
	ErrEmptyCart          = errors.New("cart is empty")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameTaken      = errors.New("username already taken")
)

// NotFoundError reports an id-addressed lookup that matched no row.
type NotFoundError struct {
	Resource string
	ID       uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %d not found", e.Resource, e.ID)
}

// InsufficientStockError carries the available vs. requested counts so the
// client can adjust the cart before retrying.
type InsufficientStockError struct {
	ProductID uint
	Product   string
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %s. Available: %d, Requested: %d",
		e.Product, e.Available, e.Requested)
}
