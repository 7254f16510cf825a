// Package app wires configuration, logging, storage, repositories and
// usecases together. A presentation shell (forms, terminal UI) would hold
// an App and call its usecases; none ships with this module.
package app

import (
	"github.com/lmoreno/tiendapos/config"
	"github.com/lmoreno/tiendapos/internal/inventory"
	invRepoPkg "github.com/lmoreno/tiendapos/internal/inventory/repository"
	invUCPkg "github.com/lmoreno/tiendapos/internal/inventory/usecase"
	"github.com/lmoreno/tiendapos/internal/ledger"
	ledRepoPkg "github.com/lmoreno/tiendapos/internal/ledger/repository"
	ledUCPkg "github.com/lmoreno/tiendapos/internal/ledger/usecase"
	"github.com/lmoreno/tiendapos/internal/sales"
	salesRepoPkg "github.com/lmoreno/tiendapos/internal/sales/repository"
	salesUCPkg "github.com/lmoreno/tiendapos/internal/sales/usecase"
	"github.com/lmoreno/tiendapos/internal/storage"
	"github.com/lmoreno/tiendapos/pkg/logger"
	"go.uber.org/zap"
)

type App struct {
	Config *config.Config
	Log    *zap.Logger
	Tables *storage.Tables

	Inventory inventory.UseCase
	Sales     sales.UseCase
	Ledger    ledger.UseCase
}

// New opens the table files under the configured data directory and builds
// every usecase.
func New(cfg *config.Config) (*App, error) {
	log, err := logger.New(&logger.Config{
		IsDevelopment:     cfg.App.Env == "dev",
		Level:             cfg.Logger.Level,
		Encoding:          cfg.Logger.Encoding,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	})
	if err != nil {
		return nil, err
	}

	tables, err := storage.Open(cfg.Store.DataDir)
	if err != nil {
		return nil, err
	}
	log.Info("record store opened", zap.String("data_dir", cfg.Store.DataDir))

	invRepo := invRepoPkg.NewCSVRepository(tables.Products)
	salesRepo := salesRepoPkg.NewCSVRepository(
		tables.Sales, tables.SaleItems, tables.Products, tables.Debtors, tables.Debts)
	ledRepo := ledRepoPkg.NewCSVRepository(tables.Debtors, tables.Debts, tables.Payments)

	invUC := invUCPkg.NewInventoryUseCase(invRepo, log)
	salesUC := salesUCPkg.NewSalesUseCase(salesRepo, invUC, log)
	ledUC := ledUCPkg.NewLedgerUseCase(ledRepo, log)

	return &App{
		Config:    cfg,
		Log:       log,
		Tables:    tables,
		Inventory: invUC,
		Sales:     salesUC,
		Ledger:    ledUC,
	}, nil
}

// Close flushes the logger. Table files need no teardown; every operation
// opens and closes them itself.
func (a *App) Close() {
	_ = a.Log.Sync()
}
