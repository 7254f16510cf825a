package usecase

import (
	"context"

	"github.com/lmoreno/tiendapos/internal/inventory"
	"github.com/lmoreno/tiendapos/internal/inventory/dto"
	"github.com/lmoreno/tiendapos/internal/model"
	"github.com/lmoreno/tiendapos/pkg/validator"
	"go.uber.org/zap"
)

type inventoryUseCase struct {
	repo   inventory.Repository
	logger *zap.Logger
}

func NewInventoryUseCase(repo inventory.Repository, log *zap.Logger) inventory.UseCase {
	return &inventoryUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *inventoryUseCase) CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error) {
	if err := validateProduct(input.Price, input.Cost, input); err != nil {
		return nil, err
	}

	p := &model.Product{
		Name:      input.Name,
		Price:     input.Price,
		Stock:     input.Stock,
		Cost:      input.Cost,
		ImagePath: optional(input.ImagePath),
	}

	p, err := uc.repo.Create(ctx, p)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("product created",
		zap.Int("product_id", p.ID),
		zap.String("name", p.Name),
		zap.Int("stock", p.Stock))
	return p, nil
}

func (uc *inventoryUseCase) UpdateProduct(ctx context.Context, input *dto.UpdateProductInput) (*model.Product, error) {
	if err := validateProduct(input.Price, input.Cost, input); err != nil {
		return nil, err
	}

	p, err := uc.repo.Update(ctx, input.ID, func(p *model.Product) {
		p.Name = input.Name
		p.Price = input.Price
		p.Stock = input.Stock
		p.Cost = input.Cost
		p.ImagePath = optional(input.ImagePath)
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("product updated", zap.Int("product_id", p.ID))
	return p, nil
}

func (uc *inventoryUseCase) GetProduct(ctx context.Context, id int) (*model.Product, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *inventoryUseCase) ListProducts(ctx context.Context) ([]model.Product, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *inventoryUseCase) ListAvailable(ctx context.Context) ([]model.Product, error) {
	products, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	available := make([]model.Product, 0, len(products))
	for _, p := range products {
		if p.Available() {
			available = append(available, p)
		}
	}
	return available, nil
}

func (uc *inventoryUseCase) DeleteProduct(ctx context.Context, id int) error {
	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if deleted {
		uc.logger.Info("product deleted", zap.Int("product_id", id))
	}
	return nil
}

func (uc *inventoryUseCase) AdjustStock(ctx context.Context, id, newStock int) (*model.Product, error) {
	p, err := uc.repo.Update(ctx, id, func(p *model.Product) {
		p.Stock = newStock
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("stock adjusted",
		zap.Int("product_id", id),
		zap.Int("stock", newStock))
	return p, nil
}

// validateProduct runs the tag-level checks plus the cost/price rule that
// cannot be expressed as a single-field tag.
func validateProduct(price, cost int, input interface{}) error {
	if err := validator.Struct(input); err != nil {
		return err
	}
	if cost >= price {
		return validator.Fieldf("Cost", "ltfield=Price")
	}
	return nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
