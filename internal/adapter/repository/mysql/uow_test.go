package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	"wealthpath-finance/internal/domain/debt"
	"wealthpath-finance/internal/domain/uow"
	"wealthpath-finance/pkg/id"

	"gorm.io/gorm"
)

func TestGormUoW_WithinDebtTx_Commit(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	guow := NewGormUoW(db)
	debts := NewDebtRepository(db)
	payments := NewPaymentRepository(db)

	debtID, user := id.New(), id.New()
	if err := debts.Create(ctx, makeDebt(debtID, user)); err != nil {
		t.Fatalf("Create err: %v", err)
	}

	err := guow.WithinDebtTx(ctx, user, debtID, func(r uow.Repos, d *debt.Debt) error {
		d.CurrentBalance = 4150.50
		if err := r.Debts.Save(ctx, d); err != nil {
			return err
		}
		return r.Payments.Create(ctx, &debt.Payment{
			PaymentID: id.New(),
			DebtID:    d.ID,
			Amount:    120,
			Principal: 50,
			Interest:  70,
			Date:      time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
		})
	})
	if err != nil {
		t.Fatalf("WithinDebtTx err: %v", err)
	}

	got, err := debts.GetByDebtID(ctx, user, debtID)
	if err != nil {
		t.Fatalf("GetByDebtID err: %v", err)
	}
	if got.CurrentBalance != 4150.50 {
		t.Fatalf("balance = %v, want 4150.50", got.CurrentBalance)
	}
	list, err := payments.ListByDebtID(ctx, got.ID)
	if err != nil {
		t.Fatalf("ListByDebtID err: %v", err)
	}
	if len(list) != 1 || list[0].Amount != 120 || list[0].Principal != 50 {
		t.Fatalf("unexpected payments: %+v", list)
	}
}

func TestGormUoW_WithinDebtTx_Rollback(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	guow := NewGormUoW(db)
	debts := NewDebtRepository(db)
	payments := NewPaymentRepository(db)

	debtID, user := id.New(), id.New()
	if err := debts.Create(ctx, makeDebt(debtID, user)); err != nil {
		t.Fatalf("Create err: %v", err)
	}

	boom := errors.New("boom")
	var numericID uint64
	err := guow.WithinDebtTx(ctx, user, debtID, func(r uow.Repos, d *debt.Debt) error {
		numericID = d.ID
		d.CurrentBalance = 0
		if err := r.Debts.Save(ctx, d); err != nil {
			return err
		}
		if err := r.Payments.Create(ctx, &debt.Payment{PaymentID: id.New(), DebtID: d.ID, Amount: 1, Date: time.Now().UTC()}); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("want boom, got %v", err)
	}

	got, _ := debts.GetByDebtID(ctx, user, debtID)
	if got.CurrentBalance != 4200.50 {
		t.Fatalf("balance changed despite rollback: %v", got.CurrentBalance)
	}
	list, _ := payments.ListByDebtID(ctx, numericID)
	if len(list) != 0 {
		t.Fatalf("payments persisted despite rollback: %+v", list)
	}
}

func TestGormUoW_WithinDebtTx_NotFound(t *testing.T) {
	db := openTestDB(t)
	guow := NewGormUoW(db)

	called := false
	err := guow.WithinDebtTx(context.Background(), id.New(), id.New(), func(r uow.Repos, d *debt.Debt) error {
		called = true
		return nil
	})
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("want ErrRecordNotFound, got %v", err)
	}
	if called {
		t.Fatal("fn must not run when the debt is missing")
	}
}

func TestGormUoW_WithinTx(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	guow := NewGormUoW(db)

	user := id.New()
	err := guow.WithinTx(ctx, func(r uow.Repos) error {
		return r.Debts.Create(ctx, makeDebt(id.New(), user))
	})
	if err != nil {
		t.Fatalf("WithinTx err: %v", err)
	}
	list, err := NewDebtRepository(db).ListByUserID(ctx, user)
	if err != nil || len(list) != 1 {
		t.Fatalf("want 1 debt, got %d (err=%v)", len(list), err)
	}
}
