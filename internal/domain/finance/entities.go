package finance

import "time"

type LoanInput struct {
	Principal         float64
	AnnualRatePercent float64
	TermMonths        int
}

// AmortizationRow is one month of a repayment schedule. Payment always equals
// Principal + Interest.
type AmortizationRow struct {
	Month            int
	Payment          float64
	Principal        float64
	Interest         float64
	RemainingBalance float64
}

type LoanResult struct {
	MonthlyPayment float64
	TotalPayment   float64
	TotalInterest  float64
	Schedule       []AmortizationRow
}

type SavingsInput struct {
	InitialAmount       float64
	MonthlyContribution float64
	AnnualRatePercent   float64
	Years               int
}

// SavingsYear is the state of a projection at the end of a year.
type SavingsYear struct {
	Year          int
	Balance       float64
	Contributions float64
	Interest      float64
}

type SavingsProjection struct {
	FutureValue        float64
	TotalContributions float64
	InterestEarned     float64
	Yearly             []SavingsYear
}

// Debt is a read-only snapshot of a liability. InterestRate is an APR
// expressed as a percentage (19.99 means 19.99%). DueDay 0 means unspecified.
type Debt struct {
	ID             string
	Name           string
	OriginalAmount float64
	CurrentBalance float64
	InterestRate   float64
	MinimumPayment float64
	DueDay         int
}

type PlanInput struct {
	Debts         []Debt
	MonthlyBudget float64
	Strategy      Strategy
	StartDate     time.Time
	// HorizonMonths overrides MaxPayoffMonths when positive.
	HorizonMonths int
}

type PayoffPlan struct {
	DebtID           string
	Name             string
	CurrentBalance   float64
	MonthlyPayment   float64
	MonthsToPayoff   int
	TotalInterest    float64
	TotalPayment     float64
	PayoffDate       time.Time
	AmortizationPlan []AmortizationRow
}

// PlanSummary aggregates the per-debt plans of one planning run.
type PlanSummary struct {
	Strategy       Strategy
	MonthsToPayoff int
	TotalInterest  float64
	TotalPayment   float64
	PayoffDate     time.Time
}
