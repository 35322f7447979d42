package cart

import (
	"errors"
	"fmt"
)

var (
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidQuantity   = errors.New("quantity must be at least 1")
)

// StockError reports a rejected change that would push a line past the
// product's stock. The cart is left unchanged.
type StockError struct {
	ProductID string
	Requested int
	Available int
}

func (e *StockError) Error() string {
	return fmt.Sprintf("Sorry, only %d in stock", e.Available)
}

func (e *StockError) Unwrap() error {
	return ErrInsufficientStock
}
