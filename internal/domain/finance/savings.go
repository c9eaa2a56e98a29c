package finance

import "fmt"

func (in SavingsInput) validate() error {
	if err := checkNonNegative("initialAmount", in.InitialAmount); err != nil {
		return err
	}
	if err := checkNonNegative("monthlyContribution", in.MonthlyContribution); err != nil {
		return err
	}
	if err := checkRate("annualRatePercent", in.AnnualRatePercent); err != nil {
		return err
	}
	if in.Years <= 0 {
		return invalid("years", "must be greater than 0")
	}
	if in.Years > MaxSavingsYears {
		return invalid("years", fmt.Sprintf("must not exceed %d", MaxSavingsYears))
	}
	return nil
}

// Project simulates monthly compounding with end-of-month contributions.
func Project(in SavingsInput) (SavingsProjection, error) {
	if err := in.validate(); err != nil {
		return SavingsProjection{}, err
	}

	r := MonthlyRate(in.AnnualRatePercent)
	months := in.Years * monthsPerYear

	out := SavingsProjection{Yearly: make([]SavingsYear, 0, in.Years)}
	balance := in.InitialAmount
	contributed := in.InitialAmount
	for month := 1; month <= months; month++ {
		balance = balance*(1+r) + in.MonthlyContribution
		contributed += in.MonthlyContribution
		if month%monthsPerYear == 0 {
			out.Yearly = append(out.Yearly, SavingsYear{
				Year:          month / monthsPerYear,
				Balance:       balance,
				Contributions: contributed,
				Interest:      balance - contributed,
			})
		}
	}

	out.FutureValue = balance
	out.TotalContributions = in.InitialAmount + in.MonthlyContribution*float64(months)
	out.InterestEarned = out.FutureValue - out.TotalContributions
	return out, nil
}
