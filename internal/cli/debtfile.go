package cli

import (
	"fmt"
	"sort"
	"strings"

	"wealthpath-finance/internal/usecase/calculator"

	"github.com/BurntSushi/toml"
)

// DebtFile is the TOML document read by `fincalc payoff --file`.
//
//	monthly_budget = 600
//	strategy = "avalanche"
//	start_date = "2025-01-01"
//
//	[[debts]]
//	name = "Visa"
//	current_balance = 2500
//	interest_rate = 19.99
//	minimum_payment = 75
type DebtFile struct {
	MonthlyBudget float64     `toml:"monthly_budget"`
	Strategy      string      `toml:"strategy"`
	StartDate     string      `toml:"start_date"`
	Debts         []DebtEntry `toml:"debts"`
}

type DebtEntry struct {
	ID             string  `toml:"id"`
	Name           string  `toml:"name"`
	OriginalAmount float64 `toml:"original_amount"`
	CurrentBalance float64 `toml:"current_balance"`
	InterestRate   float64 `toml:"interest_rate"`
	MinimumPayment float64 `toml:"minimum_payment"`
	DueDay         int     `toml:"due_day"`
}

// LoadDebtFile decodes path. Unknown keys are rejected so a misspelled field
// does not silently become zero.
func LoadDebtFile(path string) (*DebtFile, error) {
	var f DebtFile
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, fmt.Errorf("reading debt file: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("debt file %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if len(f.Debts) == 0 {
		return nil, fmt.Errorf("debt file %s: no [[debts]] entries", path)
	}
	return &f, nil
}

// Request converts the file into a payoff request. An entry without
// original_amount takes its current balance.
func (f *DebtFile) Request() calculator.PayoffRequest {
	req := calculator.PayoffRequest{
		Debts:         make([]calculator.DebtRequest, len(f.Debts)),
		MonthlyBudget: f.MonthlyBudget,
		Strategy:      strings.ToLower(f.Strategy),
		StartDate:     f.StartDate,
	}
	for i, d := range f.Debts {
		orig := d.OriginalAmount
		if orig == 0 {
			orig = d.CurrentBalance
		}
		req.Debts[i] = calculator.DebtRequest{
			ID:             d.ID,
			Name:           d.Name,
			OriginalAmount: orig,
			CurrentBalance: d.CurrentBalance,
			InterestRate:   d.InterestRate,
			MinimumPayment: d.MinimumPayment,
			DueDay:         d.DueDay,
		}
	}
	return req
}
