package debt

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	domain "wealthpath-finance/internal/domain/debt"
	"wealthpath-finance/internal/domain/finance"
	"wealthpath-finance/internal/domain/uow"
	"wealthpath-finance/internal/usecase/calculator"
	"wealthpath-finance/pkg/id"
	"wealthpath-finance/pkg/money"

	"gorm.io/gorm"
)

type Usecase struct {
	debts    domain.Repository
	payments domain.PaymentRepository
	uow      uow.UnitOfWork
	calc     *calculator.Usecase
	now      func() time.Time
}

// NewUsecase: pass both repos, a UoW for payment flows and the calculator used
// for stored-debt plans.
func NewUsecase(debts domain.Repository, payments domain.PaymentRepository, tx uow.UnitOfWork, calc *calculator.Usecase) *Usecase {
	return &Usecase{
		debts:    debts,
		payments: payments,
		uow:      tx,
		calc:     calc,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (u *Usecase) Create(ctx context.Context, in CreateDebtInput) (*DebtDTO, error) {
	start, err := u.parseDate("startDate", in.StartDate)
	if err != nil {
		return nil, err
	}
	typ := domain.Type(in.Type)
	if typ == "" {
		typ = domain.TypeOther
	}
	currency := strings.ToUpper(in.Currency)
	if currency == "" {
		currency = "USD"
	}

	d := &domain.Debt{
		DebtID:         id.New(),
		UserID:         in.UserID,
		Name:           strings.TrimSpace(in.Name),
		Type:           typ,
		OriginalAmount: money.Round2(in.OriginalAmount),
		CurrentBalance: money.Round2(in.OriginalAmount),
		InterestRate:   in.InterestRate,
		MinimumPayment: money.Round2(in.MinimumPayment),
		Currency:       currency,
		DueDay:         in.DueDay,
		StartDate:      start,
	}
	if in.CurrentBalance != nil {
		d.CurrentBalance = money.Round2(*in.CurrentBalance)
	}
	if err := checkDebt(d); err != nil {
		return nil, err
	}

	// Planning the debt on its own both validates it and yields the payoff date.
	payoff, err := expectedPayoff(d, start)
	if err != nil {
		return nil, err
	}
	d.ExpectedPayoff = payoff

	if err := u.debts.Create(ctx, d); err != nil {
		return nil, err
	}
	dto := toDebtDTO(d)
	return &dto, nil
}

// Update applies the fields present in in to a stored debt and recomputes its
// expected payoff from today (or the start date, when that is later).
func (u *Usecase) Update(ctx context.Context, in UpdateDebtInput) (*DebtDTO, error) {
	var out *DebtDTO
	err := u.uow.WithinDebtTx(ctx, in.UserID, in.DebtID, func(r uow.Repos, d *domain.Debt) error {
		if err := u.apply(d, in); err != nil {
			return err
		}
		if err := checkDebt(d); err != nil {
			return err
		}

		from := u.today()
		if d.StartDate.After(from) {
			from = d.StartDate
		}
		// a paid-off debt keeps the date it was retired
		if d.CurrentBalance > 0 {
			payoff, err := expectedPayoff(d, from)
			if err != nil {
				return err
			}
			d.ExpectedPayoff = payoff
		}

		if err := r.Debts.Save(ctx, d); err != nil {
			return err
		}
		dto := toDebtDTO(d)
		out = &dto
		return nil
	})
	if err != nil {
		return nil, notFound(err)
	}
	return out, nil
}

func (u *Usecase) apply(d *domain.Debt, in UpdateDebtInput) error {
	if in.Name != nil {
		d.Name = strings.TrimSpace(*in.Name)
	}
	if in.Type != nil {
		d.Type = domain.Type(*in.Type)
	}
	if in.OriginalAmount != nil {
		d.OriginalAmount = money.Round2(*in.OriginalAmount)
	}
	if in.CurrentBalance != nil {
		d.CurrentBalance = money.Round2(*in.CurrentBalance)
	}
	if in.InterestRate != nil {
		d.InterestRate = *in.InterestRate
	}
	if in.MinimumPayment != nil {
		d.MinimumPayment = money.Round2(*in.MinimumPayment)
	}
	if in.Currency != nil {
		d.Currency = strings.ToUpper(*in.Currency)
	}
	if in.DueDay != nil {
		d.DueDay = *in.DueDay
	}
	if in.StartDate != nil {
		start, err := u.parseDate("startDate", *in.StartDate)
		if err != nil {
			return err
		}
		d.StartDate = start
	}
	return nil
}

// Delete soft-deletes a debt. Its payments stay for history.
func (u *Usecase) Delete(ctx context.Context, userID, debtID string) error {
	return notFound(u.debts.Delete(ctx, userID, debtID))
}

func (u *Usecase) Get(ctx context.Context, userID, debtID string) (*DebtDTO, error) {
	d, err := u.debts.GetByDebtID(ctx, userID, debtID)
	if err != nil {
		return nil, notFound(err)
	}
	pays, err := u.payments.ListByDebtID(ctx, d.ID)
	if err != nil {
		return nil, err
	}
	dto := toDebtDTO(d)
	dto.Payments = make([]PaymentDTO, len(pays))
	for i := range pays {
		dto.Payments[i] = toPaymentDTO(&pays[i])
	}
	return &dto, nil
}

func (u *Usecase) List(ctx context.Context, userID string) ([]DebtDTO, error) {
	list, err := u.debts.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]DebtDTO, len(list))
	for i := range list {
		out[i] = toDebtDTO(&list[i])
	}
	return out, nil
}

// MakePayment records a payment against a stored debt. The payment first
// covers one month of interest on the current balance; the rest reduces the
// balance.
func (u *Usecase) MakePayment(ctx context.Context, in PaymentInput) (*PaymentResultDTO, error) {
	if in.Amount <= 0 || math.IsNaN(in.Amount) || math.IsInf(in.Amount, 0) {
		return nil, domain.ErrInvalidAmount
	}
	date, err := u.parseDate("date", in.Date)
	if err != nil {
		return nil, err
	}

	var out *PaymentResultDTO
	err = u.uow.WithinDebtTx(ctx, in.UserID, in.DebtID, func(r uow.Repos, d *domain.Debt) error {
		if d.CurrentBalance <= 0 {
			return domain.ErrAlreadyPaidOff
		}

		amount := money.Round2(in.Amount)
		_, interest := finance.SplitPayment(d.CurrentBalance, finance.MonthlyRate(d.InterestRate), amount)
		interest = money.Round2(interest)
		principal := money.Round2(amount - interest)
		if principal > d.CurrentBalance {
			return domain.ErrPaymentExceedsBalance
		}

		p := &domain.Payment{
			PaymentID: id.New(),
			DebtID:    d.ID,
			Amount:    amount,
			Principal: principal,
			Interest:  interest,
			Date:      date,
		}
		if err := r.Payments.Create(ctx, p); err != nil {
			return err
		}

		d.CurrentBalance = money.Round2(d.CurrentBalance - principal)
		if d.CurrentBalance <= 0 {
			d.CurrentBalance = 0
			paidOn := date
			d.ExpectedPayoff = &paidOn
		} else {
			// a balance the minimum no longer amortizes keeps the old estimate
			if payoff, err := expectedPayoff(d, date); err == nil {
				d.ExpectedPayoff = payoff
			}
		}
		if err := r.Debts.Save(ctx, d); err != nil {
			return err
		}

		out = &PaymentResultDTO{Payment: toPaymentDTO(p), Debt: toDebtDTO(d)}
		return nil
	})
	if err != nil {
		return nil, notFound(err)
	}
	return out, nil
}

// PayoffPlan projects a single stored debt paid at a fixed monthly amount.
func (u *Usecase) PayoffPlan(ctx context.Context, in PayoffPlanInput) (*calculator.PayoffPlanDTO, error) {
	d, err := u.debts.GetByDebtID(ctx, in.UserID, in.DebtID)
	if err != nil {
		return nil, notFound(err)
	}
	payment := in.MonthlyPayment
	if payment == 0 {
		payment = d.MinimumPayment
	}
	fd := financeDebt(d)
	fd.MinimumPayment = payment
	plans, err := finance.Plan(finance.PlanInput{
		Debts:         []finance.Debt{fd},
		MonthlyBudget: payment,
		Strategy:      finance.Avalanche,
		StartDate:     u.today(),
	})
	if err != nil {
		return nil, unprefix(calculator.RenameField(err, map[string]string{
			"monthlyBudget":           "monthlyPayment",
			"debts[0].minimumPayment": "monthlyPayment",
		}))
	}
	dto := calculator.ToPayoffPlanDTO(plans[0])
	return &dto, nil
}

// PlanAll plans every stored debt of the user under one budget. A zero budget
// means paying exactly the minimums.
func (u *Usecase) PlanAll(ctx context.Context, in PlanAllInput) (*PlanAllDTO, error) {
	list, err := u.debts.ListByUserID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	req := calculator.PayoffRequest{
		Debts:         make([]calculator.DebtRequest, len(list)),
		MonthlyBudget: in.MonthlyBudget,
		Strategy:      in.Strategy,
		StartDate:     u.today().Format(calculator.DateLayout),
	}
	var minimums float64
	for i := range list {
		d := &list[i]
		req.Debts[i] = calculator.DebtRequest{
			ID:             d.DebtID,
			Name:           d.Name,
			OriginalAmount: d.OriginalAmount,
			CurrentBalance: d.CurrentBalance,
			InterestRate:   d.InterestRate,
			MinimumPayment: d.MinimumPayment,
			DueDay:         d.DueDay,
		}
		minimums += d.MinimumPayment
	}
	if req.MonthlyBudget == 0 {
		req.MonthlyBudget = minimums
	}
	if req.Strategy == "" {
		req.Strategy = string(finance.Avalanche)
	}
	return u.calc.Payoff(ctx, req)
}

func (u *Usecase) today() time.Time {
	y, m, d := u.now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (u *Usecase) parseDate(field, s string) (time.Time, error) {
	if s == "" {
		return u.today(), nil
	}
	t, err := time.Parse(calculator.DateLayout, s)
	if err != nil {
		return time.Time{}, &finance.InvalidInputError{Field: field, Reason: "must be a date in YYYY-MM-DD format"}
	}
	return t, nil
}

// checkDebt covers what the planner does not check itself.
func checkDebt(d *domain.Debt) error {
	if d.Name == "" {
		return &finance.InvalidInputError{Field: "name", Reason: "is required"}
	}
	if !d.Type.Valid() {
		return &finance.InvalidInputError{Field: "type", Reason: fmt.Sprintf("must be one of %v", domain.Types)}
	}
	if d.OriginalAmount <= 0 {
		return &finance.InvalidInputError{Field: "originalAmount", Reason: "must be greater than 0"}
	}
	if d.MinimumPayment <= 0 {
		return &finance.InvalidInputError{Field: "minimumPayment", Reason: "must be greater than 0"}
	}
	return nil
}

func financeDebt(d *domain.Debt) finance.Debt {
	return finance.Debt{
		ID:             d.DebtID,
		Name:           d.Name,
		OriginalAmount: d.OriginalAmount,
		CurrentBalance: d.CurrentBalance,
		InterestRate:   d.InterestRate,
		MinimumPayment: d.MinimumPayment,
		DueDay:         d.DueDay,
	}
}

// expectedPayoff plans d alone at its minimum payment from start. A debt the
// minimum never retires gets no date.
func expectedPayoff(d *domain.Debt, start time.Time) (*time.Time, error) {
	plans, err := finance.Plan(finance.PlanInput{
		Debts:         []finance.Debt{financeDebt(d)},
		MonthlyBudget: d.MinimumPayment,
		Strategy:      finance.Avalanche,
		StartDate:     start,
	})
	var he *finance.PayoffHorizonExceededError
	switch {
	case errors.As(err, &he):
		return nil, nil
	case err != nil:
		return nil, unprefix(err)
	}
	payoff := plans[0].PayoffDate
	return &payoff, nil
}

// unprefix strips the list position from field names of single-debt plans.
func unprefix(err error) error {
	var ie *finance.InvalidInputError
	if errors.As(err, &ie) {
		return &finance.InvalidInputError{Field: strings.TrimPrefix(ie.Field, "debts[0]."), Reason: ie.Reason}
	}
	return err
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}

func toDebtDTO(d *domain.Debt) DebtDTO {
	dto := DebtDTO{
		DebtID:         d.DebtID,
		Name:           d.Name,
		Type:           string(d.Type),
		OriginalAmount: money.Round2(d.OriginalAmount),
		CurrentBalance: money.Round2(d.CurrentBalance),
		InterestRate:   d.InterestRate,
		MinimumPayment: money.Round2(d.MinimumPayment),
		Currency:       d.Currency,
		DueDay:         d.DueDay,
		StartDate:      d.StartDate.Format(calculator.DateLayout),
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
	if d.ExpectedPayoff != nil {
		s := d.ExpectedPayoff.Format(calculator.DateLayout)
		dto.ExpectedPayoff = &s
	}
	return dto
}

func toPaymentDTO(p *domain.Payment) PaymentDTO {
	return PaymentDTO{
		PaymentID: p.PaymentID,
		Amount:    money.Round2(p.Amount),
		Principal: money.Round2(p.Principal),
		Interest:  money.Round2(p.Interest),
		Date:      p.Date.Format(calculator.DateLayout),
	}
}
