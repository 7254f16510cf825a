package repository

import (
	"context"
	"fmt"

	"github.com/lmoreno/tiendapos/internal/model"
	"github.com/lmoreno/tiendapos/internal/sales/dto"
	"github.com/lmoreno/tiendapos/internal/store"
)

// CSVRepository persists sales across the sale, item, product, debtor and
// debt tables. There is no cross-file transaction; CommitSale orders the
// writes and names the failing step on a partial failure.
type CSVRepository struct {
	sales     *store.Table[model.Sale]
	saleItems *store.Table[model.SaleItem]
	products  *store.Table[model.Product]
	debtors   *store.Table[model.Debtor]
	debts     *store.Table[model.Debt]
}

func NewCSVRepository(
	sales *store.Table[model.Sale],
	saleItems *store.Table[model.SaleItem],
	products *store.Table[model.Product],
	debtors *store.Table[model.Debtor],
	debts *store.Table[model.Debt],
) *CSVRepository {
	return &CSVRepository{
		sales:     sales,
		saleItems: saleItems,
		products:  products,
		debtors:   debtors,
		debts:     debts,
	}
}

func (r *CSVRepository) CommitSale(ctx context.Context, input *dto.CommitSaleInput) (*model.Sale, error) {
	profit := input.AmountPaid
	if profit > input.Total {
		profit = input.Total
	}
	sale, err := r.sales.Add(ctx, &model.Sale{
		Date:   input.Date,
		Total:  input.Total,
		Profit: profit,
	})
	if err != nil {
		return nil, fmt.Errorf("commit sale: create sale: %w", err)
	}

	for i := range input.Items {
		item := input.Items[i]
		item.SaleID = sale.ID
		if _, err := r.saleItems.Add(ctx, &item); err != nil {
			return nil, fmt.Errorf("commit sale %d: create item for product %d: %w",
				sale.ID, item.ProductID, err)
		}
	}

	for productID, newStock := range input.StockByProduct {
		_, err := r.products.Update(ctx, productID, func(p *model.Product) {
			p.Stock = newStock
		})
		if err != nil {
			return nil, fmt.Errorf("commit sale %d: update stock of product %d: %w",
				sale.ID, productID, err)
		}
	}

	if input.Debtor != nil {
		debtor, err := r.resolveDebtor(ctx, input.Debtor)
		if err != nil {
			return nil, fmt.Errorf("commit sale %d: resolve debtor: %w", sale.ID, err)
		}
		_, err = r.debts.Add(ctx, &model.Debt{
			SaleID:    sale.ID,
			DebtorID:  debtor.ID,
			Amount:    input.DebtAmount,
			CreatedAt: input.Date,
		})
		if err != nil {
			return nil, fmt.Errorf("commit sale %d: create debt: %w", sale.ID, err)
		}
	}

	return sale, nil
}

func (r *CSVRepository) FindDebtorByID(ctx context.Context, id int) (*model.Debtor, error) {
	return r.debtors.Get(ctx, id)
}

// resolveDebtor reuses an existing debtor or creates one lazily on the
// first credit sale.
func (r *CSVRepository) resolveDebtor(ctx context.Context, info *dto.DebtorInfo) (*model.Debtor, error) {
	if info.Existing() {
		return r.debtors.Get(ctx, info.DebtorID)
	}
	debtor := &model.Debtor{Name: info.Name}
	if info.Phone != "" {
		phone := info.Phone
		debtor.Phone = &phone
	}
	return r.debtors.Add(ctx, debtor)
}

func (r *CSVRepository) FindAll(ctx context.Context) ([]model.Sale, error) {
	return r.sales.List(ctx)
}

func (r *CSVRepository) FindByID(ctx context.Context, id int) (*model.Sale, error) {
	return r.sales.Get(ctx, id)
}

func (r *CSVRepository) ItemsBySale(ctx context.Context, saleID int) ([]model.SaleItem, error) {
	items, err := r.saleItems.List(ctx)
	if err != nil {
		return nil, err
	}
	matched := make([]model.SaleItem, 0, len(items))
	for _, item := range items {
		if item.SaleID == saleID {
			matched = append(matched, item)
		}
	}
	return matched, nil
}
