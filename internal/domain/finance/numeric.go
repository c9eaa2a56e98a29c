package finance

import (
	"fmt"
	"math"
	"time"
)

const (
	MaxTermMonths   = 1200 // 100 years
	MaxPayoffMonths = 1200
	MaxSavingsYears = 100
	MaxInterestRate = 1000.0 // APR percent

	monthsPerYear = 12

	// Residual balances below half a cent are swept into the current payment.
	payoffTolerance = 0.005
	// Slack when comparing accumulated float sums against user supplied amounts.
	compareEpsilon = 1e-9
)

// MonthlyRate converts an annual percentage rate into a monthly periodic rate.
func MonthlyRate(annualRatePercent float64) float64 {
	return annualRatePercent / 100 / monthsPerYear
}

// AnnuityPayment returns the fixed payment that retires principal over n
// periods at periodic rate r. A zero rate degrades to straight-line repayment.
func AnnuityPayment(principal, r float64, n int) float64 {
	if n <= 0 {
		return 0
	}
	if r == 0 {
		return principal / float64(n)
	}
	return principal * r / (1 - math.Pow(1+r, -float64(n)))
}

// SplitPayment divides a payment made against balance into its interest and
// principal portions for one period at rate r. A payment that does not cover
// the accrued interest is all interest.
func SplitPayment(balance, r, payment float64) (principal, interest float64) {
	interest = balance * r
	if payment <= interest {
		return 0, payment
	}
	return payment - interest, interest
}

// AddMonths moves t forward by n calendar months, clamping the day to the end
// of the target month (Jan 31 + 1 month = Feb 28/29).
func AddMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m+time.Month(n), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	last := first.AddDate(0, 1, -1).Day()
	if d > last {
		d = last
	}
	return first.AddDate(0, 0, d-1)
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

func checkPositive(field string, v float64) error {
	if !finite(v) {
		return invalid(field, "must be a finite number")
	}
	if v <= 0 {
		return invalid(field, "must be greater than 0")
	}
	return nil
}

func checkNonNegative(field string, v float64) error {
	if !finite(v) {
		return invalid(field, "must be a finite number")
	}
	if v < 0 {
		return invalid(field, "must not be negative")
	}
	return nil
}

func checkRate(field string, v float64) error {
	if err := checkNonNegative(field, v); err != nil {
		return err
	}
	if v > MaxInterestRate {
		return invalid(field, fmt.Sprintf("must not exceed %.0f", MaxInterestRate))
	}
	return nil
}
