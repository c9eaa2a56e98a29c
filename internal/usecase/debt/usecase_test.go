package debt

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	domain "wealthpath-finance/internal/domain/debt"
	"wealthpath-finance/internal/domain/finance"
	"wealthpath-finance/internal/domain/uow"
	"wealthpath-finance/internal/testutil/debtmock"
	"wealthpath-finance/internal/testutil/uowmock"
	"wealthpath-finance/internal/usecase/calculator"

	"gorm.io/gorm"
)

const userID = "5b1f4c1e-8f6a-4c55-9a57-3e1c6f0f2a10"

var fixedNow = time.Date(2025, 1, 15, 9, 30, 0, 0, time.UTC)

func newTestUsecase(debts *debtmock.Repo, pays *debtmock.PaymentRepo) *Usecase {
	calc := calculator.NewUsecase(nil, 0, slog.New(slog.NewTextHandler(io.Discard, nil)))
	tx := uowmock.Passthrough(uow.Repos{Debts: debts, Payments: pays})
	uc := NewUsecase(debts, pays, tx, calc)
	uc.now = func() time.Time { return fixedNow }
	return uc
}

func f64(v float64) *float64 { return &v }

func TestCreate_Success_DefaultsAndExpectedPayoff(t *testing.T) {
	var stored *domain.Debt
	uc := newTestUsecase(&debtmock.Repo{
		CreateFn: func(_ context.Context, d *domain.Debt) error {
			stored = d
			return nil
		},
	}, &debtmock.PaymentRepo{})

	dto, err := uc.Create(context.Background(), CreateDebtInput{
		UserID:         userID,
		Name:           " Car loan ",
		OriginalAmount: 1200,
		InterestRate:   0,
		MinimumPayment: 100,
		StartDate:      "2025-01-31",
	})
	if err != nil {
		t.Fatalf("Create err: %v", err)
	}
	if stored == nil || stored.UserID != userID {
		t.Fatalf("repo Create not called with user: %+v", stored)
	}
	if len(dto.DebtID) != 36 {
		t.Fatalf("debt id=%q", dto.DebtID)
	}
	if dto.Name != "Car loan" || dto.Type != "other" || dto.Currency != "USD" {
		t.Fatalf("defaults not applied: %+v", dto)
	}
	if dto.CurrentBalance != 1200 {
		t.Fatalf("currentBalance=%v want originalAmount", dto.CurrentBalance)
	}
	if dto.ExpectedPayoff == nil || *dto.ExpectedPayoff != "2026-01-31" {
		t.Fatalf("expectedPayoff=%v", dto.ExpectedPayoff)
	}
}

func TestCreate_ExplicitBalance(t *testing.T) {
	uc := newTestUsecase(&debtmock.Repo{}, &debtmock.PaymentRepo{})
	dto, err := uc.Create(context.Background(), CreateDebtInput{
		UserID: userID, Name: "Card", Type: "credit_card",
		OriginalAmount: 5000, CurrentBalance: f64(2500), InterestRate: 19.99, MinimumPayment: 75,
	})
	if err != nil {
		t.Fatalf("Create err: %v", err)
	}
	if dto.CurrentBalance != 2500 || dto.StartDate != "2025-01-15" {
		t.Fatalf("dto=%+v", dto)
	}
}

func TestCreate_NeverRetiredHasNoExpectedPayoff(t *testing.T) {
	uc := newTestUsecase(&debtmock.Repo{}, &debtmock.PaymentRepo{})
	// 1% per month on 1000 is exactly the 10 minimum: the balance never drops.
	dto, err := uc.Create(context.Background(), CreateDebtInput{
		UserID: userID, Name: "Store card", OriginalAmount: 1000, InterestRate: 12, MinimumPayment: 10,
	})
	if err != nil {
		t.Fatalf("Create err: %v", err)
	}
	if dto.ExpectedPayoff != nil {
		t.Fatalf("expectedPayoff=%v want nil", *dto.ExpectedPayoff)
	}
}

func TestCreate_MinimumBelowInterestIsStored(t *testing.T) {
	var created *domain.Debt
	uc := newTestUsecase(&debtmock.Repo{
		CreateFn: func(_ context.Context, d *domain.Debt) error { created = d; return nil },
	}, &debtmock.PaymentRepo{})
	dto, err := uc.Create(context.Background(), CreateDebtInput{
		UserID: userID, Name: "Card", OriginalAmount: 10000, InterestRate: 24, MinimumPayment: 100,
	})
	if err != nil {
		t.Fatalf("Create err: %v", err)
	}
	if created == nil || dto.ExpectedPayoff != nil {
		t.Fatalf("created=%v expectedPayoff=%v", created, dto.ExpectedPayoff)
	}
}

func TestCreate_Invalid(t *testing.T) {
	cases := []struct {
		name  string
		in    CreateDebtInput
		field string
	}{
		{"no name", CreateDebtInput{OriginalAmount: 100, MinimumPayment: 10}, "name"},
		{"bad type", CreateDebtInput{Name: "x", Type: "yacht", OriginalAmount: 100, MinimumPayment: 10}, "type"},
		{"zero amount", CreateDebtInput{Name: "x", MinimumPayment: 10}, "originalAmount"},
		{"balance above original", CreateDebtInput{Name: "x", OriginalAmount: 100, CurrentBalance: f64(200), MinimumPayment: 10}, "currentBalance"},
		{"no minimum", CreateDebtInput{Name: "x", OriginalAmount: 100}, "minimumPayment"},
		{"bad date", CreateDebtInput{Name: "x", OriginalAmount: 100, MinimumPayment: 10, StartDate: "15.01.2025"}, "startDate"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := newTestUsecase(&debtmock.Repo{
				CreateFn: func(context.Context, *domain.Debt) error {
					t.Fatalf("Create must not be called for invalid input")
					return nil
				},
			}, &debtmock.PaymentRepo{})
			_, err := uc.Create(context.Background(), tc.in)
			var ie *finance.InvalidInputError
			if !errors.As(err, &ie) {
				t.Fatalf("want InvalidInputError, got %v", err)
			}
			if ie.Field != tc.field {
				t.Fatalf("field=%q want %q", ie.Field, tc.field)
			}
		})
	}
}

func TestGet_TranslatesNotFound(t *testing.T) {
	uc := newTestUsecase(&debtmock.Repo{
		GetByDebtIDFn: func(context.Context, string, string) (*domain.Debt, error) {
			return &domain.Debt{}, gorm.ErrRecordNotFound
		},
	}, &debtmock.PaymentRepo{})
	if _, err := uc.Get(context.Background(), userID, "nope"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestGet_IncludesPayments(t *testing.T) {
	d := &domain.Debt{ID: 4, DebtID: "d-4", UserID: userID, Name: "Card", Type: domain.TypeCreditCard, StartDate: fixedNow}
	uc := newTestUsecase(&debtmock.Repo{
		GetByDebtIDFn: func(_ context.Context, uid, did string) (*domain.Debt, error) {
			if uid != userID || did != "d-4" {
				t.Fatalf("args %s %s", uid, did)
			}
			return d, nil
		},
	}, &debtmock.PaymentRepo{
		ListByDebtIDFn: func(_ context.Context, debtID uint64) ([]domain.Payment, error) {
			if debtID != 4 {
				t.Fatalf("payments looked up by %d", debtID)
			}
			return []domain.Payment{{PaymentID: "p-1", Amount: 50, Principal: 40, Interest: 10, Date: fixedNow}}, nil
		},
	})
	dto, err := uc.Get(context.Background(), userID, "d-4")
	if err != nil {
		t.Fatalf("Get err: %v", err)
	}
	if len(dto.Payments) != 1 || dto.Payments[0].Date != "2025-01-15" {
		t.Fatalf("payments=%+v", dto.Payments)
	}
}

func TestList(t *testing.T) {
	uc := newTestUsecase(&debtmock.Repo{
		ListByUserIDFn: func(context.Context, string) ([]domain.Debt, error) {
			return []domain.Debt{{DebtID: "a"}, {DebtID: "b"}}, nil
		},
	}, &debtmock.PaymentRepo{})
	list, err := uc.List(context.Background(), userID)
	if err != nil || len(list) != 2 || list[1].DebtID != "b" {
		t.Fatalf("list=%+v err=%v", list, err)
	}
}

func stored(balance, rate float64) *domain.Debt {
	return &domain.Debt{
		ID: 9, DebtID: "d-9", UserID: userID, Name: "Card", Type: domain.TypeCreditCard,
		OriginalAmount: 2000, CurrentBalance: balance, InterestRate: rate, MinimumPayment: 50,
		StartDate: fixedNow,
	}
}

func TestMakePayment_SplitsInterestAndPrincipal(t *testing.T) {
	d := stored(1000, 12) // 10.00 interest this month
	var saved *domain.Debt
	var created *domain.Payment
	uc := newTestUsecase(&debtmock.Repo{
		GetByDebtIDForUpdateFn: func(context.Context, string, string) (*domain.Debt, error) { return d, nil },
		SaveFn:                 func(_ context.Context, x *domain.Debt) error { saved = x; return nil },
	}, &debtmock.PaymentRepo{
		CreateFn: func(_ context.Context, p *domain.Payment) error { created = p; return nil },
	})

	res, err := uc.MakePayment(context.Background(), PaymentInput{UserID: userID, DebtID: "d-9", Amount: 110, Date: "2025-02-01"})
	if err != nil {
		t.Fatalf("MakePayment err: %v", err)
	}
	if created == nil || created.DebtID != 9 {
		t.Fatalf("payment not recorded against numeric id: %+v", created)
	}
	if res.Payment.Interest != 10 || res.Payment.Principal != 100 {
		t.Fatalf("split=%+v", res.Payment)
	}
	if saved == nil || saved.CurrentBalance != 900 || res.Debt.CurrentBalance != 900 {
		t.Fatalf("balance not reduced: %+v", saved)
	}
	if res.Debt.ExpectedPayoff == nil {
		t.Fatal("expected payoff should be recomputed")
	}
}

func TestMakePayment_PaysOff(t *testing.T) {
	d := stored(100, 0)
	uc := newTestUsecase(&debtmock.Repo{
		GetByDebtIDForUpdateFn: func(context.Context, string, string) (*domain.Debt, error) { return d, nil },
	}, &debtmock.PaymentRepo{})
	res, err := uc.MakePayment(context.Background(), PaymentInput{UserID: userID, DebtID: "d-9", Amount: 100})
	if err != nil {
		t.Fatalf("MakePayment err: %v", err)
	}
	if res.Debt.CurrentBalance != 0 || res.Debt.ExpectedPayoff == nil || *res.Debt.ExpectedPayoff != "2025-01-15" {
		t.Fatalf("debt=%+v", res.Debt)
	}
}

func TestMakePayment_Errors(t *testing.T) {
	cases := []struct {
		name   string
		debt   *domain.Debt
		lookup error
		amount float64
		want   error
	}{
		{"zero amount", stored(100, 0), nil, 0, domain.ErrInvalidAmount},
		{"exceeds balance", stored(100, 0), nil, 150, domain.ErrPaymentExceedsBalance},
		{"paid off", stored(0, 0), nil, 10, domain.ErrAlreadyPaidOff},
		{"not found", nil, gorm.ErrRecordNotFound, 10, domain.ErrNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := newTestUsecase(&debtmock.Repo{
				GetByDebtIDForUpdateFn: func(context.Context, string, string) (*domain.Debt, error) {
					return tc.debt, tc.lookup
				},
				SaveFn: func(context.Context, *domain.Debt) error {
					t.Fatalf("Save must not be called")
					return nil
				},
			}, &debtmock.PaymentRepo{})
			_, err := uc.MakePayment(context.Background(), PaymentInput{UserID: userID, DebtID: "d-9", Amount: tc.amount})
			if !errors.Is(err, tc.want) {
				t.Fatalf("want %v, got %v", tc.want, err)
			}
		})
	}
}

func TestPayoffPlan_DefaultsToMinimum(t *testing.T) {
	d := stored(500, 0)
	uc := newTestUsecase(&debtmock.Repo{
		GetByDebtIDFn: func(context.Context, string, string) (*domain.Debt, error) { return d, nil },
	}, &debtmock.PaymentRepo{})

	plan, err := uc.PayoffPlan(context.Background(), PayoffPlanInput{UserID: userID, DebtID: "d-9"})
	if err != nil {
		t.Fatalf("PayoffPlan err: %v", err)
	}
	if plan.MonthsToPayoff != 10 || plan.MonthlyPayment != 50 || len(plan.AmortizationPlan) != 10 {
		t.Fatalf("plan=%+v", plan)
	}

	faster, err := uc.PayoffPlan(context.Background(), PayoffPlanInput{UserID: userID, DebtID: "d-9", MonthlyPayment: 250})
	if err != nil {
		t.Fatalf("PayoffPlan err: %v", err)
	}
	if faster.MonthsToPayoff != 2 {
		t.Fatalf("months=%d want 2", faster.MonthsToPayoff)
	}
}

func TestPayoffPlan_PaymentBelowInterest(t *testing.T) {
	d := stored(2000, 60) // 100.00 monthly interest
	uc := newTestUsecase(&debtmock.Repo{
		GetByDebtIDFn: func(context.Context, string, string) (*domain.Debt, error) { return d, nil },
	}, &debtmock.PaymentRepo{})
	_, err := uc.PayoffPlan(context.Background(), PayoffPlanInput{UserID: userID, DebtID: "d-9", MonthlyPayment: 20})
	var he *finance.PayoffHorizonExceededError
	if !errors.As(err, &he) {
		t.Fatalf("want PayoffHorizonExceededError, got %v", err)
	}
}

func TestPlanAll_DefaultsBudgetAndStrategy(t *testing.T) {
	uc := newTestUsecase(&debtmock.Repo{
		ListByUserIDFn: func(context.Context, string) ([]domain.Debt, error) {
			return []domain.Debt{
				{DebtID: "low", Name: "Low", OriginalAmount: 500, CurrentBalance: 500, InterestRate: 5, MinimumPayment: 50},
				{DebtID: "high", Name: "High", OriginalAmount: 500, CurrentBalance: 500, InterestRate: 20, MinimumPayment: 50},
			}, nil
		},
	}, &debtmock.PaymentRepo{})

	dto, err := uc.PlanAll(context.Background(), PlanAllInput{UserID: userID})
	if err != nil {
		t.Fatalf("PlanAll err: %v", err)
	}
	if dto.Strategy != "avalanche" || dto.MonthlyBudget != 100 {
		t.Fatalf("defaults: strategy=%s budget=%v", dto.Strategy, dto.MonthlyBudget)
	}
	if dto.Plans[0].DebtID != "high" {
		t.Fatalf("avalanche should target the 20%% debt first, got %s", dto.Plans[0].DebtID)
	}
	if dto.StartDate != "2025-01-15" {
		t.Fatalf("startDate=%s", dto.StartDate)
	}
}

func TestPlanAll_NoDebts(t *testing.T) {
	uc := newTestUsecase(&debtmock.Repo{}, &debtmock.PaymentRepo{})
	_, err := uc.PlanAll(context.Background(), PlanAllInput{UserID: userID, MonthlyBudget: 100})
	var ie *finance.InvalidInputError
	if !errors.As(err, &ie) || ie.Field != "debts" {
		t.Fatalf("want debts InvalidInputError, got %v", err)
	}
}

func strp(s string) *string { return &s }

func TestUpdate_AppliesFieldsAndRecomputesPayoff(t *testing.T) {
	d := &domain.Debt{
		ID: 9, DebtID: "d-9", UserID: userID, Name: "Card", Type: domain.TypeCreditCard,
		OriginalAmount: 1200, CurrentBalance: 1200, MinimumPayment: 100, Currency: "USD",
		StartDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	var saved *domain.Debt
	uc := newTestUsecase(&debtmock.Repo{
		GetByDebtIDForUpdateFn: func(_ context.Context, uid, did string) (*domain.Debt, error) {
			if uid != userID || did != "d-9" {
				t.Fatalf("args %s %s", uid, did)
			}
			return d, nil
		},
		SaveFn: func(_ context.Context, x *domain.Debt) error { saved = x; return nil },
	}, &debtmock.PaymentRepo{})

	dto, err := uc.Update(context.Background(), UpdateDebtInput{
		UserID: userID, DebtID: "d-9",
		Name:           strp(" Visa "),
		MinimumPayment: f64(200),
		Currency:       strp("eur"),
	})
	if err != nil {
		t.Fatalf("Update err: %v", err)
	}
	if saved == nil || saved.Name != "Visa" || saved.MinimumPayment != 200 || saved.Currency != "EUR" {
		t.Fatalf("saved=%+v", saved)
	}
	if saved.Type != domain.TypeCreditCard || saved.CurrentBalance != 1200 {
		t.Fatalf("untouched fields changed: %+v", saved)
	}
	// 1200 at 0% paying 200 from today (2025-01-15) is six months
	if dto.ExpectedPayoff == nil || *dto.ExpectedPayoff != "2025-07-15" {
		t.Fatalf("expectedPayoff=%v", dto.ExpectedPayoff)
	}
}

func TestUpdate_MinimumBelowInterestClearsPayoff(t *testing.T) {
	payoff := fixedNow
	d := stored(1000, 12)
	d.ExpectedPayoff = &payoff
	uc := newTestUsecase(&debtmock.Repo{
		GetByDebtIDForUpdateFn: func(context.Context, string, string) (*domain.Debt, error) { return d, nil },
	}, &debtmock.PaymentRepo{})
	dto, err := uc.Update(context.Background(), UpdateDebtInput{UserID: userID, DebtID: "d-9", MinimumPayment: f64(5)})
	if err != nil {
		t.Fatalf("Update err: %v", err)
	}
	if dto.ExpectedPayoff != nil {
		t.Fatalf("expectedPayoff=%v want nil", *dto.ExpectedPayoff)
	}
}

func TestUpdate_Invalid(t *testing.T) {
	cases := []struct {
		name  string
		in    UpdateDebtInput
		field string
	}{
		{"blank name", UpdateDebtInput{Name: strp("  ")}, "name"},
		{"bad type", UpdateDebtInput{Type: strp("yacht")}, "type"},
		{"balance above original", UpdateDebtInput{CurrentBalance: f64(5000)}, "currentBalance"},
		{"bad date", UpdateDebtInput{StartDate: strp("2025/01/01")}, "startDate"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := newTestUsecase(&debtmock.Repo{
				GetByDebtIDForUpdateFn: func(context.Context, string, string) (*domain.Debt, error) { return stored(1000, 12), nil },
				SaveFn: func(context.Context, *domain.Debt) error {
					t.Fatalf("Save must not be called for invalid input")
					return nil
				},
			}, &debtmock.PaymentRepo{})
			tc.in.UserID, tc.in.DebtID = userID, "d-9"
			_, err := uc.Update(context.Background(), tc.in)
			var ie *finance.InvalidInputError
			if !errors.As(err, &ie) || ie.Field != tc.field {
				t.Fatalf("want %s InvalidInputError, got %v", tc.field, err)
			}
		})
	}
}

func TestUpdate_NotFound(t *testing.T) {
	uc := newTestUsecase(&debtmock.Repo{
		GetByDebtIDForUpdateFn: func(context.Context, string, string) (*domain.Debt, error) {
			return &domain.Debt{}, gorm.ErrRecordNotFound
		},
	}, &debtmock.PaymentRepo{})
	if _, err := uc.Update(context.Background(), UpdateDebtInput{UserID: userID, DebtID: "nope"}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	var gotUser, gotDebt string
	uc := newTestUsecase(&debtmock.Repo{
		DeleteFn: func(_ context.Context, uid, did string) error {
			gotUser, gotDebt = uid, did
			if did == "gone" {
				return gorm.ErrRecordNotFound
			}
			return nil
		},
	}, &debtmock.PaymentRepo{})
	if err := uc.Delete(context.Background(), userID, "d-9"); err != nil {
		t.Fatalf("Delete err: %v", err)
	}
	if gotUser != userID || gotDebt != "d-9" {
		t.Fatalf("args %s %s", gotUser, gotDebt)
	}
	if err := uc.Delete(context.Background(), userID, "gone"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}
