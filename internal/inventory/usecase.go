package inventory

import (
	"context"

	"github.com/lmoreno/tiendapos/internal/inventory/dto"
	"github.com/lmoreno/tiendapos/internal/model"
)

type UseCase interface {
	CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error)
	UpdateProduct(ctx context.Context, input *dto.UpdateProductInput) (*model.Product, error)
	GetProduct(ctx context.Context, id int) (*model.Product, error)
	ListProducts(ctx context.Context) ([]model.Product, error)
	ListAvailable(ctx context.Context) ([]model.Product, error)
	DeleteProduct(ctx context.Context, id int) error

	// AdjustStock overwrites a product's stock. It performs no validation of
	// its own; the calling workflow owns the business rules.
	AdjustStock(ctx context.Context, id, newStock int) (*model.Product, error)
}
