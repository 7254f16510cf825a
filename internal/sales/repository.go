package sales

import (
	"context"

	"github.com/lmoreno/tiendapos/internal/model"
	"github.com/lmoreno/tiendapos/internal/sales/dto"
)

type Repository interface {
	// CommitSale persists one sale as a unit of work: the sale row, its
	// items, the stock decrements and, on a credit sale, the debtor and debt
	// rows. Writes are sequential; a partial failure reports which step
	// failed so the operator can reconcile.
	CommitSale(ctx context.Context, input *dto.CommitSaleInput) (*model.Sale, error)

	// FindDebtorByID lets the workflow verify an existing-debtor reference
	// while still validating, before any commit write lands.
	FindDebtorByID(ctx context.Context, id int) (*model.Debtor, error)

	FindAll(ctx context.Context) ([]model.Sale, error)
	FindByID(ctx context.Context, id int) (*model.Sale, error)
	ItemsBySale(ctx context.Context, saleID int) ([]model.SaleItem, error)
}
