package calculator

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"wealthpath-finance/internal/domain/finance"
	"wealthpath-finance/pkg/money"

	"golang.org/x/sync/errgroup"
)

const DateLayout = "2006-01-02"

// ResultCache stores encoded calculation results. Misses return ok=false and a
// nil error.
type ResultCache interface {
	Get(ctx context.Context, key string) (val []byte, ok bool, err error)
	Set(ctx context.Context, key string, val []byte, ttl time.Duration) error
}

type Usecase struct {
	cache ResultCache
	ttl   time.Duration
	log   *slog.Logger
	now   func() time.Time
}

// NewUsecase wires the calculator. cache may be nil, which disables caching.
func NewUsecase(cache ResultCache, ttl time.Duration, log *slog.Logger) *Usecase {
	if log == nil {
		log = slog.Default()
	}
	return &Usecase{cache: cache, ttl: ttl, log: log, now: func() time.Time { return time.Now().UTC() }}
}

func (u *Usecase) Loan(ctx context.Context, in LoanRequest) (*LoanDTO, error) {
	var out LoanDTO
	err := u.cached(ctx, "loan", in, &out, func() (any, error) {
		res, err := finance.Amortize(in.input())
		if err != nil {
			return nil, err
		}
		return toLoanDTO(res, in.WithSchedule), nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (u *Usecase) Savings(ctx context.Context, in SavingsRequest) (*SavingsDTO, error) {
	var out SavingsDTO
	err := u.cached(ctx, "savings", in, &out, func() (any, error) {
		res, err := finance.Project(in.input())
		if err != nil {
			return nil, err
		}
		return toSavingsDTO(res), nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (u *Usecase) Payoff(ctx context.Context, in PayoffRequest) (*PayoffDTO, error) {
	pin, err := u.planInput(in)
	if err != nil {
		return nil, err
	}
	var out PayoffDTO
	err = u.cached(ctx, "payoff", pin, &out, func() (any, error) {
		plans, err := finance.Plan(pin)
		if err != nil {
			return nil, err
		}
		return ToPayoffDTO(pin, plans), nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Compare plans the same debts under both strategies concurrently. The
// strategy field of the request is ignored.
func (u *Usecase) Compare(ctx context.Context, in PayoffRequest) (*ComparisonDTO, error) {
	in.Strategy = string(finance.Avalanche)
	base, err := u.planInput(in)
	if err != nil {
		return nil, err
	}

	var avalanche, snowball *PayoffDTO
	g, _ := errgroup.WithContext(ctx)
	run := func(s finance.Strategy, dst **PayoffDTO) func() error {
		return func() error {
			pin := base
			pin.Strategy = s
			plans, err := finance.Plan(pin)
			if err != nil {
				return err
			}
			*dst = ToPayoffDTO(pin, plans)
			return nil
		}
	}
	g.Go(run(finance.Avalanche, &avalanche))
	g.Go(run(finance.Snowball, &snowball))
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := &ComparisonDTO{
		Avalanche:   avalanche,
		Snowball:    snowball,
		Recommended: string(finance.Avalanche),
	}
	diff := snowball.TotalInterest - avalanche.TotalInterest
	if diff < 0 {
		out.Recommended = string(finance.Snowball)
		diff = -diff
	}
	out.InterestSaved = money.Round2(diff)
	out.MonthsSaved = snowball.MonthsToPayoff - avalanche.MonthsToPayoff
	if out.Recommended == string(finance.Snowball) {
		out.MonthsSaved = -out.MonthsSaved
	}
	return out, nil
}

// Calculate runs the component selected by in.Mode.
func (u *Usecase) Calculate(ctx context.Context, in CalculateRequest) (*CalculateDTO, error) {
	req := finance.Request{Mode: finance.Mode(in.Mode)}
	if in.Loan != nil {
		li := in.Loan.input()
		req.Loan = &li
	}
	if in.Savings != nil {
		si := in.Savings.input()
		req.Savings = &si
	}
	if in.Payoff != nil && req.Mode == finance.ModePayoff {
		pin, err := u.planInput(*in.Payoff)
		if err != nil {
			return nil, err
		}
		req.Payoff = &pin
	}

	res, err := finance.Calculate(req)
	if err != nil {
		return nil, err
	}

	out := &CalculateDTO{Mode: string(res.Mode)}
	switch res.Mode {
	case finance.ModeLoan:
		out.Loan = toLoanDTO(*res.Loan, in.Loan.WithSchedule)
	case finance.ModeSavings:
		out.Savings = toSavingsDTO(*res.Savings)
	case finance.ModePayoff:
		out.Payoff = ToPayoffDTO(*req.Payoff, res.Payoff)
	}
	return out, nil
}

// InterestCalculator answers "how long until this balance is gone if I pay
// monthlyPayment every month".
func (u *Usecase) InterestCalculator(ctx context.Context, in InterestCalculatorRequest) (*InterestCalculatorDTO, error) {
	start, err := u.parseDate("startDate", in.StartDate)
	if err != nil {
		return nil, err
	}
	pin := finance.PlanInput{
		Debts: []finance.Debt{{
			ID:             "1",
			OriginalAmount: in.Principal,
			CurrentBalance: in.Principal,
			InterestRate:   in.InterestRate,
			MinimumPayment: in.MonthlyPayment,
		}},
		MonthlyBudget: in.MonthlyPayment,
		Strategy:      finance.Avalanche,
		StartDate:     start,
	}
	plans, err := finance.Plan(pin)
	if err != nil {
		return nil, RenameField(err, map[string]string{
			"monthlyBudget":           "monthlyPayment",
			"debts[0].minimumPayment": "monthlyPayment",
			"debts[0].currentBalance": "principal",
			"debts[0].originalAmount": "principal",
			"debts[0].interestRate":   "interestRate",
		})
	}
	p := plans[0]
	return &InterestCalculatorDTO{
		MonthlyPayment: money.Round2(in.MonthlyPayment),
		MonthsToPayoff: p.MonthsToPayoff,
		TotalInterest:  money.Round2(p.TotalInterest),
		TotalPayment:   money.Round2(p.TotalPayment),
		PayoffDate:     p.PayoffDate.Format(DateLayout),
	}, nil
}

// RenameField rewrites the field of an InvalidInputError through names so
// callers see the names of their own request. Other errors pass through.
func RenameField(err error, names map[string]string) error {
	var ie *finance.InvalidInputError
	if !errors.As(err, &ie) {
		return err
	}
	if name, ok := names[ie.Field]; ok {
		return &finance.InvalidInputError{Field: name, Reason: ie.Reason}
	}
	return err
}

// cached serves key(kind, in) from the cache or computes, stores and decodes
// into out. Cache failures are logged and never fail the request.
func (u *Usecase) cached(ctx context.Context, kind string, in any, out any, compute func() (any, error)) error {
	key, err := cacheKey(kind, in)
	if err != nil {
		return fmt.Errorf("cache key: %w", err)
	}
	if u.cache != nil {
		raw, ok, err := u.cache.Get(ctx, key)
		switch {
		case err != nil:
			u.log.WarnContext(ctx, "result cache get failed", "kind", kind, "err", err)
		case ok:
			if err := json.Unmarshal(raw, out); err == nil {
				return nil
			}
			u.log.WarnContext(ctx, "result cache entry unreadable", "kind", kind, "key", key)
		}
	}

	v, err := compute()
	if err != nil {
		return err
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	if u.cache != nil {
		if err := u.cache.Set(ctx, key, raw, u.ttl); err != nil {
			u.log.WarnContext(ctx, "result cache set failed", "kind", kind, "err", err)
		}
	}
	return json.Unmarshal(raw, out)
}

func cacheKey(kind string, in any) (string, error) {
	raw, err := json.Marshal(in)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(append([]byte(kind+":"), raw...))
	return "calc:" + kind + ":" + hex.EncodeToString(sum[:]), nil
}

func (u *Usecase) planInput(in PayoffRequest) (finance.PlanInput, error) {
	start, err := u.parseDate("startDate", in.StartDate)
	if err != nil {
		return finance.PlanInput{}, err
	}
	debts := make([]finance.Debt, len(in.Debts))
	for i, d := range in.Debts {
		debts[i] = finance.Debt{
			ID:             d.ID,
			Name:           d.Name,
			OriginalAmount: d.OriginalAmount,
			CurrentBalance: d.CurrentBalance,
			InterestRate:   d.InterestRate,
			MinimumPayment: d.MinimumPayment,
			DueDay:         d.DueDay,
		}
		if debts[i].ID == "" {
			debts[i].ID = strconv.Itoa(i + 1)
		}
	}
	return finance.PlanInput{
		Debts:         debts,
		MonthlyBudget: in.MonthlyBudget,
		Strategy:      finance.Strategy(in.Strategy),
		StartDate:     start,
	}, nil
}

// parseDate reads a YYYY-MM-DD date; empty means today in UTC.
func (u *Usecase) parseDate(field, s string) (time.Time, error) {
	if s == "" {
		y, m, d := u.now().Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, &finance.InvalidInputError{Field: field, Reason: "must be a date in YYYY-MM-DD format"}
	}
	return t, nil
}

func (in LoanRequest) input() finance.LoanInput {
	return finance.LoanInput{Principal: in.Principal, AnnualRatePercent: in.AnnualRate, TermMonths: in.TermMonths}
}

func (in SavingsRequest) input() finance.SavingsInput {
	return finance.SavingsInput{
		InitialAmount:       in.InitialAmount,
		MonthlyContribution: in.MonthlyContribution,
		AnnualRatePercent:   in.AnnualRate,
		Years:               in.Years,
	}
}

func toRows(rows []finance.AmortizationRow) []AmortizationRowDTO {
	out := make([]AmortizationRowDTO, len(rows))
	for i, r := range rows {
		out[i] = AmortizationRowDTO{
			Month:            r.Month,
			Payment:          money.Round2(r.Payment),
			Principal:        money.Round2(r.Principal),
			Interest:         money.Round2(r.Interest),
			RemainingBalance: money.Round2(r.RemainingBalance),
		}
	}
	return out
}

func toLoanDTO(res finance.LoanResult, withSchedule bool) *LoanDTO {
	out := &LoanDTO{
		MonthlyPayment: money.Round2(res.MonthlyPayment),
		TotalPayment:   money.Round2(res.TotalPayment),
		TotalInterest:  money.Round2(res.TotalInterest),
		TermMonths:     len(res.Schedule),
	}
	if withSchedule {
		out.Schedule = toRows(res.Schedule)
	}
	return out
}

func toSavingsDTO(res finance.SavingsProjection) *SavingsDTO {
	out := &SavingsDTO{
		FutureValue:        money.Round2(res.FutureValue),
		TotalContributions: money.Round2(res.TotalContributions),
		InterestEarned:     money.Round2(res.InterestEarned),
		Yearly:             make([]SavingsYearDTO, len(res.Yearly)),
	}
	for i, y := range res.Yearly {
		out.Yearly[i] = SavingsYearDTO{
			Year:          y.Year,
			Balance:       money.Round2(y.Balance),
			Contributions: money.Round2(y.Contributions),
			Interest:      money.Round2(y.Interest),
		}
	}
	return out
}

func ToPayoffPlanDTO(p finance.PayoffPlan) PayoffPlanDTO {
	return PayoffPlanDTO{
		DebtID:           p.DebtID,
		Name:             p.Name,
		CurrentBalance:   money.Round2(p.CurrentBalance),
		MonthlyPayment:   money.Round2(p.MonthlyPayment),
		MonthsToPayoff:   p.MonthsToPayoff,
		TotalInterest:    money.Round2(p.TotalInterest),
		TotalPayment:     money.Round2(p.TotalPayment),
		PayoffDate:       p.PayoffDate.Format(DateLayout),
		AmortizationPlan: toRows(p.AmortizationPlan),
	}
}

// ToPayoffDTO rounds plans for output and attaches the aggregate summary.
func ToPayoffDTO(in finance.PlanInput, plans []finance.PayoffPlan) *PayoffDTO {
	sum := finance.Summarize(in.Strategy, in.StartDate, plans)
	out := &PayoffDTO{
		Strategy:       string(in.Strategy),
		StartDate:      in.StartDate.Format(DateLayout),
		MonthlyBudget:  money.Round2(in.MonthlyBudget),
		MonthsToPayoff: sum.MonthsToPayoff,
		TotalInterest:  money.Round2(sum.TotalInterest),
		TotalPayment:   money.Round2(sum.TotalPayment),
		PayoffDate:     sum.PayoffDate.Format(DateLayout),
		Plans:          make([]PayoffPlanDTO, len(plans)),
	}
	for i, p := range plans {
		out.Plans[i] = ToPayoffPlanDTO(p)
	}
	return out
}
