package mysql

import (
	"context"

	debtDomain "wealthpath-finance/internal/domain/debt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DebtRepository struct{ db *gorm.DB }

func NewDebtRepository(db *gorm.DB) *DebtRepository { return &DebtRepository{db: db} }

// Tx runs fn in a db transaction, passing a repo bound to the tx
func (r *DebtRepository) Tx(ctx context.Context, fn func(repo debtDomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&DebtRepository{db: tx})
	})
}

func (r *DebtRepository) Create(ctx context.Context, d *debtDomain.Debt) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *DebtRepository) Save(ctx context.Context, d *debtDomain.Debt) error {
	return r.db.WithContext(ctx).Save(d).Error
}

func (r *DebtRepository) GetByDebtID(ctx context.Context, userID, debtID string) (*debtDomain.Debt, error) {
	var out debtDomain.Debt
	res := r.db.WithContext(ctx).
		Where("debt_id = ? AND user_id = ?", debtID, userID).
		First(&out)
	return &out, res.Error
}

// GetByDebtIDForUpdate takes a row lock (SELECT ... FOR UPDATE) where the
// dialect supports it.
func (r *DebtRepository) GetByDebtIDForUpdate(ctx context.Context, userID, debtID string) (*debtDomain.Debt, error) {
	var out debtDomain.Debt
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("debt_id = ? AND user_id = ?", debtID, userID).
		First(&out)
	return &out, res.Error
}

func (r *DebtRepository) ListByUserID(ctx context.Context, userID string) ([]debtDomain.Debt, error) {
	var out []debtDomain.Debt
	res := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&out)
	return out, res.Error
}

// Delete soft-deletes through gorm's DeletedAt. A missing (or already
// deleted) debt reports gorm.ErrRecordNotFound.
func (r *DebtRepository) Delete(ctx context.Context, userID, debtID string) error {
	res := r.db.WithContext(ctx).
		Where("debt_id = ? AND user_id = ?", debtID, userID).
		Delete(&debtDomain.Debt{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
