package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/lmoreno/tiendapos/internal/ledger"
	"github.com/lmoreno/tiendapos/internal/ledger/dto"
	"github.com/lmoreno/tiendapos/internal/ledger/repository"
	"github.com/lmoreno/tiendapos/internal/ledger/usecase"
	"github.com/lmoreno/tiendapos/internal/model"
	"github.com/lmoreno/tiendapos/internal/storage"
	"github.com/lmoreno/tiendapos/internal/store"
	"github.com/lmoreno/tiendapos/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type fixture struct {
	tables *storage.Tables
	ledger ledger.UseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	tables, err := storage.Open(t.TempDir())
	require.NoError(t, err)
	repo := repository.NewCSVRepository(tables.Debtors, tables.Debts, tables.Payments)
	return &fixture{
		tables: tables,
		ledger: usecase.NewLedgerUseCase(repo, zaptest.NewLogger(t)),
	}
}

func (f *fixture) addDebt(t *testing.T, debtorID, amount int) {
	t.Helper()
	_, err := f.tables.Debts.Add(context.Background(), &model.Debt{
		SaleID:    1,
		DebtorID:  debtorID,
		Amount:    amount,
		CreatedAt: time.Now().UTC(),
	})
	require.NoError(t, err)
}

func TestRegisterDebtor(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	d, err := f.ledger.RegisterDebtor(ctx, &dto.RegisterDebtorInput{Name: "Ana", Phone: "3001234567"})
	require.NoError(t, err)
	assert.Equal(t, 1, d.ID)
	require.NotNil(t, d.Phone)
	assert.Equal(t, "3001234567", *d.Phone)

	// Phone is optional.
	d, err = f.ledger.RegisterDebtor(ctx, &dto.RegisterDebtorInput{Name: "Luis"})
	require.NoError(t, err)
	assert.Equal(t, 2, d.ID)
	assert.Nil(t, d.Phone)
}

func TestRegisterDebtorValidation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	var verr *validator.ValidationError
	_, err := f.ledger.RegisterDebtor(ctx, &dto.RegisterDebtorInput{Phone: "3001234567"})
	assert.ErrorAs(t, err, &verr)

	_, err = f.ledger.RegisterDebtor(ctx, &dto.RegisterDebtorInput{Name: "Ana", Phone: "not-a-phone"})
	assert.ErrorAs(t, err, &verr)
}

func TestBalanceSumsDebtsMinusPayments(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	d, err := f.ledger.RegisterDebtor(ctx, &dto.RegisterDebtorInput{Name: "Ana"})
	require.NoError(t, err)
	f.addDebt(t, d.ID, 100)
	f.addDebt(t, d.ID, 50)

	balance, err := f.ledger.Balance(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, 150, balance)

	_, err = f.ledger.RecordPayment(ctx, d.ID, 60)
	require.NoError(t, err)

	balance, err = f.ledger.Balance(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, 90, balance)
}

func TestBalanceFlooredAtZero(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	d, err := f.ledger.RegisterDebtor(ctx, &dto.RegisterDebtorInput{Name: "Ana"})
	require.NoError(t, err)
	f.addDebt(t, d.ID, 100)

	// Payments recorded outside RecordPayment's guard (legacy data) can
	// exceed the debt; the balance still floors at zero.
	for _, amount := range []int{60, 50} {
		_, err := f.tables.Payments.Add(ctx, &model.Payment{
			DebtorID: d.ID,
			Amount:   amount,
			Date:     time.Now().UTC(),
		})
		require.NoError(t, err)
	}

	balance, err := f.ledger.Balance(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, balance)
}

func TestRecordPaymentRejectsOverpayment(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	d, err := f.ledger.RegisterDebtor(ctx, &dto.RegisterDebtorInput{Name: "Ana"})
	require.NoError(t, err)
	f.addDebt(t, d.ID, 100)

	_, err = f.ledger.RecordPayment(ctx, d.ID, 150)
	assert.ErrorIs(t, err, ledger.ErrPaymentExceedsBalance)

	// Paying the exact balance is fine and zeroes it out.
	_, err = f.ledger.RecordPayment(ctx, d.ID, 100)
	require.NoError(t, err)
	balance, err := f.ledger.Balance(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, balance)

	// With a zero balance any further payment is an overpayment.
	_, err = f.ledger.RecordPayment(ctx, d.ID, 1)
	assert.ErrorIs(t, err, ledger.ErrPaymentExceedsBalance)
}

func TestRecordPaymentValidation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	d, err := f.ledger.RegisterDebtor(ctx, &dto.RegisterDebtorInput{Name: "Ana"})
	require.NoError(t, err)

	var verr *validator.ValidationError
	_, err = f.ledger.RecordPayment(ctx, d.ID, 0)
	assert.ErrorAs(t, err, &verr)
	_, err = f.ledger.RecordPayment(ctx, d.ID, -5)
	assert.ErrorAs(t, err, &verr)

	_, err = f.ledger.RecordPayment(ctx, 99, 10)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestDebtsAndPaymentsFilterByDebtor(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	ana, err := f.ledger.RegisterDebtor(ctx, &dto.RegisterDebtorInput{Name: "Ana"})
	require.NoError(t, err)
	luis, err := f.ledger.RegisterDebtor(ctx, &dto.RegisterDebtorInput{Name: "Luis"})
	require.NoError(t, err)

	f.addDebt(t, ana.ID, 100)
	f.addDebt(t, luis.ID, 70)
	f.addDebt(t, ana.ID, 30)

	debts, err := f.ledger.DebtsFor(ctx, ana.ID)
	require.NoError(t, err)
	assert.Len(t, debts, 2)

	_, err = f.ledger.RecordPayment(ctx, ana.ID, 20)
	require.NoError(t, err)

	payments, err := f.ledger.PaymentsFor(ctx, ana.ID)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, 20, payments[0].Amount)

	payments, err = f.ledger.PaymentsFor(ctx, luis.ID)
	require.NoError(t, err)
	assert.Empty(t, payments)

	debtors, err := f.ledger.ListDebtors(ctx)
	require.NoError(t, err)
	assert.Len(t, debtors, 2)
}
