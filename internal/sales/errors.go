package sales

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientPayment means the amount paid is below the total and no
	// credit path (debtor) was chosen. Nothing is persisted.
	ErrInsufficientPayment = errors.New("amount paid is below the sale total")

	// ErrCartFinished means the sale attempt already reached a terminal
	// state; a fresh cart is required for the next sale.
	ErrCartFinished = errors.New("sale attempt already finished")

	// ErrEmptyCart means checkout was requested with no lines.
	ErrEmptyCart = errors.New("cart has no lines")
)

// StockError names the product whose requested quantity exceeds the
// available stock. The cart is left unchanged so the operator can adjust.
type StockError struct {
	ProductID int
	Name      string
	Requested int
	Available int
}

func (e *StockError) Error() string {
	return fmt.Sprintf("insufficient stock for %q (id %d): requested %d, available %d",
		e.Name, e.ProductID, e.Requested, e.Available)
}
