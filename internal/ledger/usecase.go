package ledger

import (
	"context"
	"errors"

	"github.com/lmoreno/tiendapos/internal/ledger/dto"
	"github.com/lmoreno/tiendapos/internal/model"
)

// ErrPaymentExceedsBalance rejects a payment larger than the debtor's
// outstanding balance. The policy is reject, not clamp, applied uniformly.
var ErrPaymentExceedsBalance = errors.New("payment exceeds outstanding balance")

type UseCase interface {
	RegisterDebtor(ctx context.Context, input *dto.RegisterDebtorInput) (*model.Debtor, error)
	GetDebtor(ctx context.Context, id int) (*model.Debtor, error)
	ListDebtors(ctx context.Context) ([]model.Debtor, error)

	DebtsFor(ctx context.Context, debtorID int) ([]model.Debt, error)
	PaymentsFor(ctx context.Context, debtorID int) ([]model.Payment, error)

	// Balance is max(sum of debts - sum of payments, 0), floored at query
	// time and never stored.
	Balance(ctx context.Context, debtorID int) (int, error)

	// RecordPayment creates a payment row. The amount must be positive and
	// no larger than the current balance.
	RecordPayment(ctx context.Context, debtorID, amount int) (*model.Payment, error)
}
