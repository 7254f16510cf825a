// Package storage declares the persisted schema of every record type and
// registers the tables on a store. This is the single place where field
// order and column names are fixed; repositories receive the opened tables
// and never touch files themselves.
package storage

import (
	"time"

	"github.com/lmoreno/tiendapos/internal/model"
	"github.com/lmoreno/tiendapos/internal/store"
)

type Tables struct {
	Products  *store.Table[model.Product]
	Sales     *store.Table[model.Sale]
	SaleItems *store.Table[model.SaleItem]
	Debtors   *store.Table[model.Debtor]
	Debts     *store.Table[model.Debt]
	Payments  *store.Table[model.Payment]
}

// Open registers every record type on a store rooted at dir, creating the
// backing files with header rows when absent.
func Open(dir string) (*Tables, error) {
	st, err := store.New(dir)
	if err != nil {
		return nil, err
	}

	products, err := store.Register(st, "products", store.NewSchema(
		func(p *model.Product) *int { return &p.ID },
		store.StringColumn("name", func(p *model.Product) *string { return &p.Name }),
		store.IntColumn("price", func(p *model.Product) *int { return &p.Price }),
		store.IntColumn("stock", func(p *model.Product) *int { return &p.Stock }),
		store.IntColumn("cost", func(p *model.Product) *int { return &p.Cost }),
		store.OptionalStringColumn("image_path", func(p *model.Product) **string { return &p.ImagePath }),
	))
	if err != nil {
		return nil, err
	}

	sales, err := store.Register(st, "sales", store.NewSchema(
		func(s *model.Sale) *int { return &s.ID },
		store.TimeColumn("date", func(s *model.Sale) *time.Time { return &s.Date }),
		store.IntColumn("total", func(s *model.Sale) *int { return &s.Total }),
		store.IntColumn("profit", func(s *model.Sale) *int { return &s.Profit }),
	))
	if err != nil {
		return nil, err
	}

	saleItems, err := store.Register(st, "sale_items", store.NewSchema(
		func(i *model.SaleItem) *int { return &i.ID },
		store.IntColumn("sale_id", func(i *model.SaleItem) *int { return &i.SaleID }),
		store.IntColumn("product_id", func(i *model.SaleItem) *int { return &i.ProductID }),
		store.IntColumn("quantity", func(i *model.SaleItem) *int { return &i.Quantity }),
		store.TimeColumn("date", func(i *model.SaleItem) *time.Time { return &i.Date }),
	))
	if err != nil {
		return nil, err
	}

	debtors, err := store.Register(st, "debtors", store.NewSchema(
		func(d *model.Debtor) *int { return &d.ID },
		store.StringColumn("name", func(d *model.Debtor) *string { return &d.Name }),
		store.OptionalStringColumn("phone", func(d *model.Debtor) **string { return &d.Phone }),
	))
	if err != nil {
		return nil, err
	}

	debts, err := store.Register(st, "debts", store.NewSchema(
		func(d *model.Debt) *int { return &d.ID },
		store.IntColumn("sale_id", func(d *model.Debt) *int { return &d.SaleID }),
		store.IntColumn("debtor_id", func(d *model.Debt) *int { return &d.DebtorID }),
		store.IntColumn("amount", func(d *model.Debt) *int { return &d.Amount }),
		store.TimeColumn("created_at", func(d *model.Debt) *time.Time { return &d.CreatedAt }),
	))
	if err != nil {
		return nil, err
	}

	payments, err := store.Register(st, "payments", store.NewSchema(
		func(p *model.Payment) *int { return &p.ID },
		store.IntColumn("debtor_id", func(p *model.Payment) *int { return &p.DebtorID }),
		store.IntColumn("amount", func(p *model.Payment) *int { return &p.Amount }),
		store.TimeColumn("date", func(p *model.Payment) *time.Time { return &p.Date }),
	))
	if err != nil {
		return nil, err
	}

	return &Tables{
		Products:  products,
		Sales:     sales,
		SaleItems: saleItems,
		Debtors:   debtors,
		Debts:     debts,
		Payments:  payments,
	}, nil
}
