package finance

import "fmt"

func (in LoanInput) validate() error {
	if err := checkPositive("principal", in.Principal); err != nil {
		return err
	}
	if err := checkRate("annualRatePercent", in.AnnualRatePercent); err != nil {
		return err
	}
	if in.TermMonths <= 0 {
		return invalid("termMonths", "must be greater than 0")
	}
	if in.TermMonths > MaxTermMonths {
		return invalid("termMonths", fmt.Sprintf("must not exceed %d", MaxTermMonths))
	}
	return nil
}

// Amortize builds the fixed-payment schedule for a loan. The final row pays
// off whatever balance is left so the schedule always ends at exactly zero.
func Amortize(in LoanInput) (LoanResult, error) {
	if err := in.validate(); err != nil {
		return LoanResult{}, err
	}

	r := MonthlyRate(in.AnnualRatePercent)
	payment := AnnuityPayment(in.Principal, r, in.TermMonths)

	res := LoanResult{
		MonthlyPayment: payment,
		Schedule:       make([]AmortizationRow, 0, in.TermMonths),
	}
	balance := in.Principal
	for month := 1; month <= in.TermMonths; month++ {
		interest := balance * r
		principal := payment - interest
		rowPayment := payment
		if month == in.TermMonths {
			principal = balance
			rowPayment = principal + interest
		}
		balance -= principal
		if month == in.TermMonths {
			balance = 0
		}

		res.Schedule = append(res.Schedule, AmortizationRow{
			Month:            month,
			Payment:          rowPayment,
			Principal:        principal,
			Interest:         interest,
			RemainingBalance: balance,
		})
		res.TotalPayment += rowPayment
		res.TotalInterest += interest
	}
	return res, nil
}
