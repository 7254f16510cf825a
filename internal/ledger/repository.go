package ledger

import (
	"context"

	"github.com/lmoreno/tiendapos/internal/model"
)

type Repository interface {
	CreateDebtor(ctx context.Context, debtor *model.Debtor) (*model.Debtor, error)
	FindDebtorByID(ctx context.Context, id int) (*model.Debtor, error)
	FindAllDebtors(ctx context.Context) ([]model.Debtor, error)

	DebtsByDebtor(ctx context.Context, debtorID int) ([]model.Debt, error)

	CreatePayment(ctx context.Context, payment *model.Payment) (*model.Payment, error)
	PaymentsByDebtor(ctx context.Context, debtorID int) ([]model.Payment, error)
}
