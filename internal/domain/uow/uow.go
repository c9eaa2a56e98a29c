package uow

import (
	"context"

	"wealthpath-finance/internal/domain/debt"
)

type Repos struct {
	Debts    debt.Repository
	Payments debt.PaymentRepository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// lock the user's debt row first, then pass it in
	WithinDebtTx(ctx context.Context, userID, debtID string, fn func(r Repos, d *debt.Debt) error) error
}
