package finance

import "fmt"

// InvalidInputError reports an out-of-range or malformed numeric input. It is
// returned before any simulation starts.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s %s", e.Field, e.Reason)
}

// InsufficientBudgetError reports a monthly budget that cannot cover the sum
// of all minimum payments.
type InsufficientBudgetError struct {
	Budget   float64
	Required float64
}

func (e *InsufficientBudgetError) Error() string {
	return fmt.Sprintf("insufficient budget: %.2f does not cover minimum payments of %.2f", e.Budget, e.Required)
}

// PayoffHorizonExceededError reports a plan that did not retire every debt
// within the simulation ceiling.
type PayoffHorizonExceededError struct {
	Months int
}

func (e *PayoffHorizonExceededError) Error() string {
	return fmt.Sprintf("payoff horizon exceeded: debts not retired within %d months", e.Months)
}

func invalid(field, reason string) error {
	return &InvalidInputError{Field: field, Reason: reason}
}
