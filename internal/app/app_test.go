package app_test

import (
	"context"
	"testing"

	"github.com/lmoreno/tiendapos/config"
	"github.com/lmoreno/tiendapos/internal/app"
	invdto "github.com/lmoreno/tiendapos/internal/inventory/dto"
	salesdto "github.com/lmoreno/tiendapos/internal/sales/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(t *testing.T, dataDir string) *app.App {
	t.Helper()
	a, err := app.New(&config.Config{
		App:   config.AppConfig{Env: "test"},
		Store: config.StoreConfig{DataDir: dataDir},
		Logger: config.LoggerConfig{
			Level:    "debug",
			Encoding: "console",
		},
	})
	require.NoError(t, err)
	t.Cleanup(a.Close)
	return a
}

// The full credit-sale flow: register a product, sell on credit, pay the
// debt off through the ledger.
func TestCreditSaleFlow(t *testing.T) {
	ctx := context.Background()
	a := newApp(t, t.TempDir())

	p, err := a.Inventory.CreateProduct(ctx, &invdto.CreateProductInput{
		Name:  "Widget",
		Price: 100,
		Stock: 10,
		Cost:  40,
	})
	require.NoError(t, err)
	require.Equal(t, 1, p.ID)

	cart := a.Sales.NewCart()
	require.NoError(t, a.Sales.AddLine(ctx, cart, p.ID, 3))
	sale, err := a.Sales.Checkout(ctx, cart, 200, &salesdto.DebtorInfo{
		Name:  "Ana",
		Phone: "3001234567",
	})
	require.NoError(t, err)
	assert.Equal(t, 300, sale.Total)
	assert.Equal(t, 200, sale.Profit)

	got, err := a.Inventory.GetProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, got.Stock)

	debtors, err := a.Ledger.ListDebtors(ctx)
	require.NoError(t, err)
	require.Len(t, debtors, 1)

	balance, err := a.Ledger.Balance(ctx, debtors[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 100, balance)

	_, err = a.Ledger.RecordPayment(ctx, debtors[0].ID, 100)
	require.NoError(t, err)
	balance, err = a.Ledger.Balance(ctx, debtors[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 0, balance)
}

// Everything lives in the files, so a second app over the same directory
// sees the previous state.
func TestStateSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	a := newApp(t, dir)
	p, err := a.Inventory.CreateProduct(ctx, &invdto.CreateProductInput{
		Name:  "Widget",
		Price: 100,
		Stock: 10,
		Cost:  40,
	})
	require.NoError(t, err)

	cart := a.Sales.NewCart()
	require.NoError(t, a.Sales.AddLine(ctx, cart, p.ID, 2))
	sale, err := a.Sales.Checkout(ctx, cart, 200, nil)
	require.NoError(t, err)

	b := newApp(t, dir)
	got, err := b.Inventory.GetProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 8, got.Stock)

	reread, err := b.Sales.GetSale(ctx, sale.ID)
	require.NoError(t, err)
	assert.Equal(t, sale.Total, reread.Total)
	assert.True(t, sale.Date.Equal(reread.Date))
}
