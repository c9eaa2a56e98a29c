package uowmock

import (
	"context"
	"errors"

	"wealthpath-finance/internal/domain/debt"
	"wealthpath-finance/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need in a test; unfilled ones return errUnimplemented.
type UoW struct {
	WithinTxFn     func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinDebtTxFn func(ctx context.Context, userID, debtID string, fn func(r uow.Repos, d *debt.Debt) error) error
}

// Convenience fluent setters
func New() *UoW { return &UoW{} }
func (m *UoW) WithWithinTx(fn func(context.Context, func(uow.Repos) error) error) *UoW {
	m.WithinTxFn = fn
	return m
}
func (m *UoW) WithWithinDebtTx(fn func(context.Context, string, string, func(uow.Repos, *debt.Debt) error) error) *UoW {
	m.WithinDebtTxFn = fn
	return m
}
func (m *UoW) Reset() { *m = UoW{} }

// Passthrough runs every callback directly against repos, handing the debt
// returned by repos.Debts.GetByDebtIDForUpdate to WithinDebtTx bodies.
func Passthrough(repos uow.Repos) *UoW {
	return &UoW{
		WithinTxFn: func(_ context.Context, fn func(uow.Repos) error) error { return fn(repos) },
		WithinDebtTxFn: func(ctx context.Context, userID, debtID string, fn func(uow.Repos, *debt.Debt) error) error {
			d, err := repos.Debts.GetByDebtIDForUpdate(ctx, userID, debtID)
			if err != nil {
				return err
			}
			return fn(repos, d)
		},
	}
}

// Methods implementing UnitOfWork
func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}
func (m *UoW) WithinDebtTx(ctx context.Context, userID, debtID string, fn func(r uow.Repos, d *debt.Debt) error) error {
	if m.WithinDebtTxFn != nil {
		return m.WithinDebtTxFn(ctx, userID, debtID, fn)
	}
	return errUnimplemented
}
