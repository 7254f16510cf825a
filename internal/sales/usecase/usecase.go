package usecase

import (
	"context"
	"time"

	"github.com/lmoreno/tiendapos/internal/inventory"
	"github.com/lmoreno/tiendapos/internal/model"
	"github.com/lmoreno/tiendapos/internal/sales"
	"github.com/lmoreno/tiendapos/internal/sales/dto"
	"github.com/lmoreno/tiendapos/pkg/validator"
	"go.uber.org/zap"
)

type salesUseCase struct {
	repo      sales.Repository
	inventory inventory.UseCase
	logger    *zap.Logger
}

func NewSalesUseCase(repo sales.Repository, inv inventory.UseCase, log *zap.Logger) sales.UseCase {
	return &salesUseCase{
		repo:      repo,
		inventory: inv,
		logger:    log,
	}
}

func (uc *salesUseCase) NewCart() *sales.Cart {
	return sales.NewCart()
}

func (uc *salesUseCase) AddLine(ctx context.Context, cart *sales.Cart, productID, quantity int) error {
	if cart.State() != sales.StateBuilding {
		return sales.ErrCartFinished
	}
	if quantity <= 0 {
		return validator.Fieldf("Quantity", "gt=0")
	}

	product, err := uc.inventory.GetProduct(ctx, productID)
	if err != nil {
		return err
	}

	// The stock check sums across existing lines for the same product, so
	// duplicate lines cannot oversell together.
	line := sales.Line{ProductID: productID, Quantity: quantity}
	if summed := cart.SumQuantity(productID) + quantity; summed > product.Stock {
		return &sales.StockError{
			ProductID: product.ID,
			Name:      product.Name,
			Requested: summed,
			Available: product.Stock,
		}
	}

	cart.Append(line)
	return nil
}

func (uc *salesUseCase) Checkout(ctx context.Context, cart *sales.Cart, amountPaid int, debtor *dto.DebtorInfo) (*model.Sale, error) {
	if cart.State() != sales.StateBuilding {
		return nil, sales.ErrCartFinished
	}
	lines := cart.Lines()
	if len(lines) == 0 {
		return nil, sales.ErrEmptyCart
	}
	if amountPaid < 0 {
		return nil, validator.Fieldf("AmountPaid", "gte=0")
	}

	log := uc.logger.With(zap.String("attempt_id", cart.ID()))
	cart.SetState(sales.StateValidating)

	// Re-read every product: stock and price may have moved since the lines
	// were added.
	products := make(map[int]*model.Product)
	total := 0
	for _, line := range lines {
		p, ok := products[line.ProductID]
		if !ok {
			var err error
			p, err = uc.inventory.GetProduct(ctx, line.ProductID)
			if err != nil {
				cart.SetState(sales.StateBuilding)
				return nil, err
			}
			products[line.ProductID] = p
		}
		total += line.Quantity * p.Price
	}

	for productID, requested := range cart.QuantityByProduct() {
		p := products[productID]
		if requested > p.Stock {
			cart.SetState(sales.StateBuilding)
			return nil, &sales.StockError{
				ProductID: p.ID,
				Name:      p.Name,
				Requested: requested,
				Available: p.Stock,
			}
		}
	}

	input := &dto.CommitSaleInput{
		Date:           time.Now().UTC(),
		Total:          total,
		AmountPaid:     amountPaid,
		StockByProduct: make(map[int]int, len(products)),
	}
	for productID, requested := range cart.QuantityByProduct() {
		input.StockByProduct[productID] = products[productID].Stock - requested
	}
	for _, line := range lines {
		input.Items = append(input.Items, model.SaleItem{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Date:      input.Date,
		})
	}

	if amountPaid < total {
		if debtor == nil {
			// Short payment with no credit path chosen: persist nothing and
			// keep the cart so the operator can still pick one.
			cart.SetState(sales.StateBuilding)
			return nil, sales.ErrInsufficientPayment
		}
		if err := validator.Struct(debtor); err != nil {
			cart.SetState(sales.StateBuilding)
			return nil, err
		}
		// An existing-debtor reference is checked here, while nothing has
		// been written yet; a stale id must not abort a half-committed sale.
		if debtor.Existing() {
			if _, err := uc.repo.FindDebtorByID(ctx, debtor.DebtorID); err != nil {
				cart.SetState(sales.StateBuilding)
				return nil, err
			}
		}
		cart.SetState(sales.StateAwaitingCredit)
		input.Debtor = debtor
		input.DebtAmount = total - amountPaid
		log.Info("sale on credit",
			zap.Int("total", total),
			zap.Int("amount_paid", amountPaid),
			zap.Int("debt", input.DebtAmount))
	}

	sale, err := uc.repo.CommitSale(ctx, input)
	if err != nil {
		// Writes may have partially landed; the error names the failing
		// step. The attempt is over either way.
		cart.SetState(sales.StateRejected)
		log.Error("sale commit failed", zap.Error(err))
		return nil, err
	}

	cart.SetState(sales.StateCommitted)
	log.Info("sale committed",
		zap.Int("sale_id", sale.ID),
		zap.Int("total", sale.Total),
		zap.Int("profit", sale.Profit),
		zap.Int("lines", len(lines)))
	return sale, nil
}

func (uc *salesUseCase) Cancel(cart *sales.Cart) error {
	if cart.State() != sales.StateBuilding {
		return sales.ErrCartFinished
	}
	cart.SetState(sales.StateRejected)
	return nil
}

func (uc *salesUseCase) ListSales(ctx context.Context) ([]model.Sale, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *salesUseCase) GetSale(ctx context.Context, id int) (*model.Sale, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *salesUseCase) ItemsForSale(ctx context.Context, saleID int) ([]model.SaleItem, error) {
	return uc.repo.ItemsBySale(ctx, saleID)
}
