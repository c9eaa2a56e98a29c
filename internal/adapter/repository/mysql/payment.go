package mysql

import (
	"context"

	debtDomain "wealthpath-finance/internal/domain/debt"

	"gorm.io/gorm"
)

type PaymentRepository struct{ db *gorm.DB }

func NewPaymentRepository(db *gorm.DB) *PaymentRepository { return &PaymentRepository{db: db} }

func (r *PaymentRepository) Create(ctx context.Context, p *debtDomain.Payment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PaymentRepository) ListByDebtID(ctx context.Context, debtID uint64) ([]debtDomain.Payment, error) {
	var out []debtDomain.Payment
	res := r.db.WithContext(ctx).
		Where("debt_id = ?", debtID).
		Order("date DESC, id DESC").
		Find(&out)
	return out, res.Error
}
