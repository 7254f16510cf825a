package usecase

import (
	"context"
	"time"

	"github.com/lmoreno/tiendapos/internal/ledger"
	"github.com/lmoreno/tiendapos/internal/ledger/dto"
	"github.com/lmoreno/tiendapos/internal/model"
	"github.com/lmoreno/tiendapos/pkg/validator"
	"go.uber.org/zap"
)

type ledgerUseCase struct {
	repo   ledger.Repository
	logger *zap.Logger
}

func NewLedgerUseCase(repo ledger.Repository, log *zap.Logger) ledger.UseCase {
	return &ledgerUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *ledgerUseCase) RegisterDebtor(ctx context.Context, input *dto.RegisterDebtorInput) (*model.Debtor, error) {
	if err := validator.Struct(input); err != nil {
		return nil, err
	}

	debtor := &model.Debtor{Name: input.Name}
	if input.Phone != "" {
		phone := input.Phone
		debtor.Phone = &phone
	}

	debtor, err := uc.repo.CreateDebtor(ctx, debtor)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("debtor registered",
		zap.Int("debtor_id", debtor.ID),
		zap.String("name", debtor.Name))
	return debtor, nil
}

func (uc *ledgerUseCase) GetDebtor(ctx context.Context, id int) (*model.Debtor, error) {
	return uc.repo.FindDebtorByID(ctx, id)
}

func (uc *ledgerUseCase) ListDebtors(ctx context.Context) ([]model.Debtor, error) {
	return uc.repo.FindAllDebtors(ctx)
}

func (uc *ledgerUseCase) DebtsFor(ctx context.Context, debtorID int) ([]model.Debt, error) {
	return uc.repo.DebtsByDebtor(ctx, debtorID)
}

func (uc *ledgerUseCase) PaymentsFor(ctx context.Context, debtorID int) ([]model.Payment, error) {
	return uc.repo.PaymentsByDebtor(ctx, debtorID)
}

func (uc *ledgerUseCase) Balance(ctx context.Context, debtorID int) (int, error) {
	debts, err := uc.repo.DebtsByDebtor(ctx, debtorID)
	if err != nil {
		return 0, err
	}
	payments, err := uc.repo.PaymentsByDebtor(ctx, debtorID)
	if err != nil {
		return 0, err
	}

	balance := 0
	for _, d := range debts {
		balance += d.Amount
	}
	for _, p := range payments {
		balance -= p.Amount
	}
	if balance < 0 {
		balance = 0
	}
	return balance, nil
}

func (uc *ledgerUseCase) RecordPayment(ctx context.Context, debtorID, amount int) (*model.Payment, error) {
	if amount <= 0 {
		return nil, validator.Fieldf("Amount", "gt=0")
	}

	// The payment must target a registered debtor.
	if _, err := uc.repo.FindDebtorByID(ctx, debtorID); err != nil {
		return nil, err
	}

	balance, err := uc.Balance(ctx, debtorID)
	if err != nil {
		return nil, err
	}
	if amount > balance {
		return nil, ledger.ErrPaymentExceedsBalance
	}

	payment, err := uc.repo.CreatePayment(ctx, &model.Payment{
		DebtorID: debtorID,
		Amount:   amount,
		Date:     time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("payment recorded",
		zap.Int("debtor_id", debtorID),
		zap.Int("amount", amount),
		zap.Int("balance", balance-amount))
	return payment, nil
}
