package finance

import "fmt"

// Mode selects the calculation performed by Calculate.
type Mode string

const (
	ModeLoan    Mode = "loan"
	ModeSavings Mode = "savings"
	ModePayoff  Mode = "payoff"
)

var Modes = []Mode{ModeLoan, ModeSavings, ModePayoff}

func (m Mode) Valid() bool {
	return m == ModeLoan || m == ModeSavings || m == ModePayoff
}

// Request carries the payload for exactly the component named by Mode.
// Payloads for other modes are ignored.
type Request struct {
	Mode    Mode
	Loan    *LoanInput
	Savings *SavingsInput
	Payoff  *PlanInput
}

// Result holds the output of the component that ran; the other fields are nil.
type Result struct {
	Mode    Mode
	Loan    *LoanResult
	Savings *SavingsProjection
	Payoff  []PayoffPlan
}

// Calculate dispatches req to the Loan Amortizer, Savings Projector or Debt
// Payoff Planner.
func Calculate(req Request) (Result, error) {
	switch req.Mode {
	case ModeLoan:
		if req.Loan == nil {
			return Result{}, invalid("loan", "is required for mode loan")
		}
		res, err := Amortize(*req.Loan)
		if err != nil {
			return Result{}, err
		}
		return Result{Mode: req.Mode, Loan: &res}, nil
	case ModeSavings:
		if req.Savings == nil {
			return Result{}, invalid("savings", "is required for mode savings")
		}
		res, err := Project(*req.Savings)
		if err != nil {
			return Result{}, err
		}
		return Result{Mode: req.Mode, Savings: &res}, nil
	case ModePayoff:
		if req.Payoff == nil {
			return Result{}, invalid("payoff", "is required for mode payoff")
		}
		plans, err := Plan(*req.Payoff)
		if err != nil {
			return Result{}, err
		}
		return Result{Mode: req.Mode, Payoff: plans}, nil
	}
	return Result{}, invalid("mode", fmt.Sprintf("must be one of %v", Modes))
}
