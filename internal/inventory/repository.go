package inventory

import (
	"context"

	"github.com/lmoreno/tiendapos/internal/model"
)

type Repository interface {
	Create(ctx context.Context, product *model.Product) (*model.Product, error)
	FindByID(ctx context.Context, id int) (*model.Product, error)
	FindAll(ctx context.Context) ([]model.Product, error)
	Update(ctx context.Context, id int, mutate func(*model.Product)) (*model.Product, error)
	Delete(ctx context.Context, id int) (bool, error)
}
