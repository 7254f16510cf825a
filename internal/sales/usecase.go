package sales

import (
	"context"

	"github.com/lmoreno/tiendapos/internal/model"
	"github.com/lmoreno/tiendapos/internal/sales/dto"
)

type UseCase interface {
	// NewCart starts a sale attempt in the Building state.
	NewCart() *Cart

	// AddLine appends a product+quantity line after checking the summed
	// quantity for that product against current stock. On a *StockError the
	// cart is unchanged.
	AddLine(ctx context.Context, cart *Cart, productID, quantity int) error

	// Checkout validates the cart against current stock and price, computes
	// the total and commits: sale row, items, stock decrements and, when the
	// payment falls short and a debtor is supplied, the debtor and debt. A
	// *StockError leaves the cart in Building so it can be adjusted;
	// ErrInsufficientPayment (short payment, no debtor) persists nothing.
	Checkout(ctx context.Context, cart *Cart, amountPaid int, debtor *dto.DebtorInfo) (*model.Sale, error)

	// Cancel discards a Building cart with no side effects.
	Cancel(cart *Cart) error

	ListSales(ctx context.Context) ([]model.Sale, error)
	GetSale(ctx context.Context, id int) (*model.Sale, error)
	ItemsForSale(ctx context.Context, saleID int) ([]model.SaleItem, error)
}
