package finance

import (
	"fmt"
	"slices"
)

// Strategy selects the order in which surplus budget is thrown at debts.
type Strategy string

const (
	// Avalanche targets the highest interest rate first.
	Avalanche Strategy = "avalanche"
	// Snowball targets the smallest balance first.
	Snowball Strategy = "snowball"
)

// Strategies lists every supported strategy.
var Strategies = []Strategy{Avalanche, Snowball}

func ParseStrategy(s string) (Strategy, error) {
	st := Strategy(s)
	if !st.Valid() {
		return "", invalid("strategy", fmt.Sprintf("must be one of %v", Strategies))
	}
	return st, nil
}

func (s Strategy) Valid() bool {
	return s == Avalanche || s == Snowball
}

// compare orders two debts for the strategy. Full ties return 0 so a stable
// sort keeps the caller's order.
func (s Strategy) compare(a, b Debt) int {
	byRateDesc := cmpFloat(b.InterestRate, a.InterestRate)
	byBalanceAsc := cmpFloat(a.CurrentBalance, b.CurrentBalance)
	switch s {
	case Avalanche:
		if byRateDesc != 0 {
			return byRateDesc
		}
		return byBalanceAsc
	case Snowball:
		if byBalanceAsc != 0 {
			return byBalanceAsc
		}
		return byRateDesc
	}
	return 0
}

// Order returns a copy of debts sorted by the strategy's priority.
func (s Strategy) Order(debts []Debt) []Debt {
	out := slices.Clone(debts)
	slices.SortStableFunc(out, s.compare)
	return out
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
