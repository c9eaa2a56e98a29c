package finance

import (
	"fmt"
	"math"
	"time"
)

// debtState is the mutable simulation record of one debt during a planning
// run. It never escapes Plan.
type debtState struct {
	debt     Debt
	balance  float64
	paidOff  bool
	months   int
	interest float64
	paid     float64
	rows     []AmortizationRow
}

func (in PlanInput) validate() error {
	if len(in.Debts) == 0 {
		return invalid("debts", "must contain at least one debt")
	}
	if err := checkPositive("monthlyBudget", in.MonthlyBudget); err != nil {
		return err
	}
	if !in.Strategy.Valid() {
		return invalid("strategy", fmt.Sprintf("must be one of %v", Strategies))
	}
	if in.HorizonMonths < 0 {
		return invalid("horizonMonths", "must not be negative")
	}
	for i, d := range in.Debts {
		if err := d.validate(fmt.Sprintf("debts[%d]", i)); err != nil {
			return err
		}
	}
	return nil
}

func (d Debt) validate(prefix string) error {
	if err := checkNonNegative(prefix+".originalAmount", d.OriginalAmount); err != nil {
		return err
	}
	if err := checkNonNegative(prefix+".currentBalance", d.CurrentBalance); err != nil {
		return err
	}
	if d.OriginalAmount > 0 && d.CurrentBalance > d.OriginalAmount+compareEpsilon {
		return invalid(prefix+".currentBalance", "must not exceed originalAmount")
	}
	if err := checkRate(prefix+".interestRate", d.InterestRate); err != nil {
		return err
	}
	if err := checkPositive(prefix+".minimumPayment", d.MinimumPayment); err != nil {
		return err
	}
	if d.DueDay < 0 || d.DueDay > 31 {
		return invalid(prefix+".dueDay", "must be between 1 and 31")
	}
	return nil
}

func (in PlanInput) horizon() int {
	if in.HorizonMonths > 0 {
		return in.HorizonMonths
	}
	return MaxPayoffMonths
}

// Plan simulates paying down every debt at once with a shared monthly budget.
// Each month every active debt receives its minimum payment; what is left of
// the budget goes to the first unpaid debt in strategy order and cascades to
// the next one once it is retired. Plans are returned in strategy order.
func Plan(in PlanInput) ([]PayoffPlan, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	var required float64
	for _, d := range in.Debts {
		required += d.MinimumPayment
	}
	if in.MonthlyBudget+compareEpsilon < required {
		return nil, &InsufficientBudgetError{Budget: in.MonthlyBudget, Required: required}
	}

	ordered := in.Strategy.Order(in.Debts)
	states := make([]debtState, len(ordered))
	for i, d := range ordered {
		states[i] = debtState{
			debt:    d,
			balance: d.CurrentBalance,
			paidOff: d.CurrentBalance <= 0,
		}
	}

	limit := in.horizon()
	for month := 1; !allPaidOff(states); month++ {
		if month > limit {
			return nil, &PayoffHorizonExceededError{Months: limit}
		}
		tick(states, month, in.MonthlyBudget)
	}

	plans := make([]PayoffPlan, len(states))
	for i := range states {
		s := &states[i]
		p := PayoffPlan{
			DebtID:           s.debt.ID,
			Name:             s.debt.Name,
			CurrentBalance:   s.debt.CurrentBalance,
			MonthsToPayoff:   s.months,
			TotalInterest:    s.interest,
			TotalPayment:     s.paid,
			PayoffDate:       AddMonths(in.StartDate, s.months),
			AmortizationPlan: s.rows,
		}
		if len(s.rows) > 0 {
			p.MonthlyPayment = s.rows[0].Payment
		}
		plans[i] = p
	}
	return plans, nil
}

// tick advances the simulation by one month for every unpaid debt.
func tick(states []debtState, month int, budget float64) {
	interest := make([]float64, len(states))
	payment := make([]float64, len(states))
	available := budget

	for i := range states {
		s := &states[i]
		if s.paidOff {
			continue
		}
		interest[i] = s.balance * MonthlyRate(s.debt.InterestRate)
		s.balance += interest[i]
	}

	for i := range states {
		s := &states[i]
		if s.paidOff {
			continue
		}
		pay := math.Min(s.debt.MinimumPayment, s.balance)
		payment[i] = pay
		s.balance -= pay
		available -= pay
	}

	for i := range states {
		if available <= 0 {
			break
		}
		s := &states[i]
		if s.paidOff || s.balance <= 0 {
			continue
		}
		extra := math.Min(available, s.balance)
		payment[i] += extra
		s.balance -= extra
		available -= extra
	}

	for i := range states {
		s := &states[i]
		if s.paidOff {
			continue
		}
		if s.balance < payoffTolerance {
			payment[i] += s.balance
			s.balance = 0
		}
		s.rows = append(s.rows, AmortizationRow{
			Month:            month,
			Payment:          payment[i],
			Principal:        payment[i] - interest[i],
			Interest:         interest[i],
			RemainingBalance: s.balance,
		})
		s.interest += interest[i]
		s.paid += payment[i]
		if s.balance == 0 {
			s.paidOff = true
			s.months = month
		}
	}
}

func allPaidOff(states []debtState) bool {
	for i := range states {
		if !states[i].paidOff {
			return false
		}
	}
	return true
}

// Summarize aggregates plans produced by one Plan call.
func Summarize(strategy Strategy, start time.Time, plans []PayoffPlan) PlanSummary {
	sum := PlanSummary{Strategy: strategy, PayoffDate: start}
	for _, p := range plans {
		sum.TotalInterest += p.TotalInterest
		sum.TotalPayment += p.TotalPayment
		if p.MonthsToPayoff > sum.MonthsToPayoff {
			sum.MonthsToPayoff = p.MonthsToPayoff
			sum.PayoffDate = p.PayoffDate
		}
	}
	return sum
}
