package mysql

import (
	"context"

	"wealthpath-finance/internal/domain/debt"
	"wealthpath-finance/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func (u *GormUoW) repos(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Debts:    &DebtRepository{db: tx},
		Payments: &PaymentRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(u.repos(tx))
	})
}

func (u *GormUoW) WithinDebtTx(ctx context.Context, userID, debtID string, fn func(r uow.Repos, d *debt.Debt) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := u.repos(tx)
		// lock the debt row up-front so concurrent payments serialize
		d, err := r.Debts.GetByDebtIDForUpdate(ctx, userID, debtID)
		if err != nil {
			return err
		}
		return fn(r, d)
	})
}

// AutoMigrate creates or updates the debts and debt_payments tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&debt.Debt{}, &debt.Payment{})
}
