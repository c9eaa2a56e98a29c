package debtmock

import (
	"context"

	domain "wealthpath-finance/internal/domain/debt"
)

var (
	_ domain.Repository        = (*Repo)(nil)
	_ domain.PaymentRepository = (*PaymentRepo)(nil)
)

// Repo is a function-backed mock that satisfies domain.Repository.
// Unset lookups return domain.ErrNotFound; unset writes succeed.
type Repo struct {
	CreateFn               func(ctx context.Context, d *domain.Debt) error
	SaveFn                 func(ctx context.Context, d *domain.Debt) error
	GetByDebtIDFn          func(ctx context.Context, userID, debtID string) (*domain.Debt, error)
	GetByDebtIDForUpdateFn func(ctx context.Context, userID, debtID string) (*domain.Debt, error)
	ListByUserIDFn         func(ctx context.Context, userID string) ([]domain.Debt, error)
	DeleteFn               func(ctx context.Context, userID, debtID string) error
}

func (m *Repo) Create(ctx context.Context, d *domain.Debt) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, d)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, d *domain.Debt) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, d)
	}
	return nil
}

func (m *Repo) GetByDebtID(ctx context.Context, userID, debtID string) (*domain.Debt, error) {
	if m.GetByDebtIDFn != nil {
		return m.GetByDebtIDFn(ctx, userID, debtID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetByDebtIDForUpdate(ctx context.Context, userID, debtID string) (*domain.Debt, error) {
	if m.GetByDebtIDForUpdateFn != nil {
		return m.GetByDebtIDForUpdateFn(ctx, userID, debtID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) ListByUserID(ctx context.Context, userID string) ([]domain.Debt, error) {
	if m.ListByUserIDFn != nil {
		return m.ListByUserIDFn(ctx, userID)
	}
	return nil, nil
}

func (m *Repo) Delete(ctx context.Context, userID, debtID string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, userID, debtID)
	}
	return nil
}

// PaymentRepo is a function-backed mock that satisfies domain.PaymentRepository.
type PaymentRepo struct {
	CreateFn       func(ctx context.Context, p *domain.Payment) error
	ListByDebtIDFn func(ctx context.Context, debtID uint64) ([]domain.Payment, error)
}

func (m *PaymentRepo) Create(ctx context.Context, p *domain.Payment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}

func (m *PaymentRepo) ListByDebtID(ctx context.Context, debtID uint64) ([]domain.Payment, error) {
	if m.ListByDebtIDFn != nil {
		return m.ListByDebtIDFn(ctx, debtID)
	}
	return nil, nil
}
