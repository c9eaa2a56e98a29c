package debt

import "context"

type Repository interface {
	Create(ctx context.Context, d *Debt) error
	Save(ctx context.Context, d *Debt) error
	// Lookups are always scoped to the owning user.
	GetByDebtID(ctx context.Context, userID, debtID string) (*Debt, error)
	GetByDebtIDForUpdate(ctx context.Context, userID, debtID string) (*Debt, error)
	ListByUserID(ctx context.Context, userID string) ([]Debt, error)
	// Delete soft-deletes the debt; payments are kept.
	Delete(ctx context.Context, userID, debtID string) error
}

type PaymentRepository interface {
	Create(ctx context.Context, p *Payment) error
	// ListByDebtID returns payments newest first, keyed by the numeric debts.id.
	ListByDebtID(ctx context.Context, debtID uint64) ([]Payment, error)
}
