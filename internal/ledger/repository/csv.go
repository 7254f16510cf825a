package repository

import (
	"context"

	"github.com/lmoreno/tiendapos/internal/model"
	"github.com/lmoreno/tiendapos/internal/store"
)

type CSVRepository struct {
	debtors  *store.Table[model.Debtor]
	debts    *store.Table[model.Debt]
	payments *store.Table[model.Payment]
}

func NewCSVRepository(
	debtors *store.Table[model.Debtor],
	debts *store.Table[model.Debt],
	payments *store.Table[model.Payment],
) *CSVRepository {
	return &CSVRepository{
		debtors:  debtors,
		debts:    debts,
		payments: payments,
	}
}

func (r *CSVRepository) CreateDebtor(ctx context.Context, debtor *model.Debtor) (*model.Debtor, error) {
	return r.debtors.Add(ctx, debtor)
}

func (r *CSVRepository) FindDebtorByID(ctx context.Context, id int) (*model.Debtor, error) {
	return r.debtors.Get(ctx, id)
}

func (r *CSVRepository) FindAllDebtors(ctx context.Context) ([]model.Debtor, error) {
	return r.debtors.List(ctx)
}

func (r *CSVRepository) DebtsByDebtor(ctx context.Context, debtorID int) ([]model.Debt, error) {
	debts, err := r.debts.List(ctx)
	if err != nil {
		return nil, err
	}
	matched := make([]model.Debt, 0, len(debts))
	for _, d := range debts {
		if d.DebtorID == debtorID {
			matched = append(matched, d)
		}
	}
	return matched, nil
}

func (r *CSVRepository) CreatePayment(ctx context.Context, payment *model.Payment) (*model.Payment, error) {
	return r.payments.Add(ctx, payment)
}

func (r *CSVRepository) PaymentsByDebtor(ctx context.Context, debtorID int) ([]model.Payment, error) {
	payments, err := r.payments.List(ctx)
	if err != nil {
		return nil, err
	}
	matched := make([]model.Payment, 0, len(payments))
	for _, p := range payments {
		if p.DebtorID == debtorID {
			matched = append(matched, p)
		}
	}
	return matched, nil
}
