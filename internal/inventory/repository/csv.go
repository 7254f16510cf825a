package repository

import (
	"context"

	"github.com/lmoreno/tiendapos/internal/model"
	"github.com/lmoreno/tiendapos/internal/store"
)

type CSVRepository struct {
	products *store.Table[model.Product]
}

func NewCSVRepository(products *store.Table[model.Product]) *CSVRepository {
	return &CSVRepository{products: products}
}

func (r *CSVRepository) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	return r.products.Add(ctx, product)
}

func (r *CSVRepository) FindByID(ctx context.Context, id int) (*model.Product, error) {
	return r.products.Get(ctx, id)
}

func (r *CSVRepository) FindAll(ctx context.Context) ([]model.Product, error) {
	return r.products.List(ctx)
}

func (r *CSVRepository) Update(ctx context.Context, id int, mutate func(*model.Product)) (*model.Product, error) {
	return r.products.Update(ctx, id, mutate)
}

func (r *CSVRepository) Delete(ctx context.Context, id int) (bool, error) {
	return r.products.Delete(ctx, id)
}
