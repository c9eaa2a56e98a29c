package calculator

// Requests carry the JSON wire names consumers already use. Rates are annual
// percentages (5.5 means 5.5%).

type LoanRequest struct {
	Principal    float64 `json:"principal" validate:"gt=0"`
	AnnualRate   float64 `json:"annualRate" validate:"gte=0,lte=1000"`
	TermMonths   int     `json:"termMonths" validate:"gt=0,lte=1200"`
	WithSchedule bool    `json:"withSchedule"`
}

type SavingsRequest struct {
	InitialAmount       float64 `json:"initialAmount" validate:"gte=0"`
	MonthlyContribution float64 `json:"monthlyContribution" validate:"gte=0"`
	AnnualRate          float64 `json:"annualRate" validate:"gte=0,lte=1000"`
	Years               int     `json:"years" validate:"gt=0,lte=100"`
}

type DebtRequest struct {
	ID             string  `json:"id" validate:"max=64"`
	Name           string  `json:"name" validate:"max=255"`
	OriginalAmount float64 `json:"originalAmount" validate:"gte=0"`
	CurrentBalance float64 `json:"currentBalance" validate:"gte=0"`
	InterestRate   float64 `json:"interestRate" validate:"gte=0,lte=1000"`
	MinimumPayment float64 `json:"minimumPayment" validate:"gt=0"`
	DueDay         int     `json:"dueDay" validate:"gte=0,lte=31"`
}

type PayoffRequest struct {
	Debts         []DebtRequest `json:"debts" validate:"required,min=1,max=100,dive"`
	MonthlyBudget float64       `json:"monthlyBudget" validate:"gt=0"`
	Strategy      string        `json:"strategy" validate:"omitempty,strategy"`
	// StartDate is YYYY-MM-DD; empty means today (UTC).
	StartDate string `json:"startDate,omitempty" validate:"omitempty,isodate"`
}

// CalculateRequest is the dispatcher payload: Mode picks which of the
// embedded requests is used.
type CalculateRequest struct {
	Mode    string          `json:"mode" validate:"required,oneof=loan savings payoff"`
	Loan    *LoanRequest    `json:"loan,omitempty"`
	Savings *SavingsRequest `json:"savings,omitempty"`
	Payoff  *PayoffRequest  `json:"payoff,omitempty"`
}

type InterestCalculatorRequest struct {
	Principal      float64 `json:"principal" query:"principal" validate:"gt=0"`
	InterestRate   float64 `json:"interestRate" query:"interestRate" validate:"gte=0,lte=1000"`
	MonthlyPayment float64 `json:"monthlyPayment" query:"monthlyPayment" validate:"gt=0"`
	StartDate      string  `json:"startDate,omitempty" query:"startDate" validate:"omitempty,isodate"`
}

type AmortizationRowDTO struct {
	Month            int     `json:"month"`
	Payment          float64 `json:"payment"`
	Principal        float64 `json:"principal"`
	Interest         float64 `json:"interest"`
	RemainingBalance float64 `json:"remainingBalance"`
}

type LoanDTO struct {
	MonthlyPayment float64              `json:"monthlyPayment"`
	TotalPayment   float64              `json:"totalPayment"`
	TotalInterest  float64              `json:"totalInterest"`
	TermMonths     int                  `json:"termMonths"`
	Schedule       []AmortizationRowDTO `json:"amortizationPlan,omitempty"`
}

type SavingsYearDTO struct {
	Year          int     `json:"year"`
	Balance       float64 `json:"balance"`
	Contributions float64 `json:"contributions"`
	Interest      float64 `json:"interest"`
}

type SavingsDTO struct {
	FutureValue        float64          `json:"futureValue"`
	TotalContributions float64          `json:"totalContributions"`
	InterestEarned     float64          `json:"interestEarned"`
	Yearly             []SavingsYearDTO `json:"yearly"`
}

type PayoffPlanDTO struct {
	DebtID           string               `json:"debtId"`
	Name             string               `json:"name,omitempty"`
	CurrentBalance   float64              `json:"currentBalance"`
	MonthlyPayment   float64              `json:"monthlyPayment"`
	MonthsToPayoff   int                  `json:"monthsToPayoff"`
	TotalInterest    float64              `json:"totalInterest"`
	TotalPayment     float64              `json:"totalPayment"`
	PayoffDate       string               `json:"payoffDate"`
	AmortizationPlan []AmortizationRowDTO `json:"amortizationPlan"`
}

type PayoffDTO struct {
	Strategy       string          `json:"strategy"`
	StartDate      string          `json:"startDate"`
	MonthlyBudget  float64         `json:"monthlyBudget"`
	MonthsToPayoff int             `json:"monthsToPayoff"`
	TotalInterest  float64         `json:"totalInterest"`
	TotalPayment   float64         `json:"totalPayment"`
	PayoffDate     string          `json:"payoffDate"`
	Plans          []PayoffPlanDTO `json:"plans"`
}

type ComparisonDTO struct {
	Avalanche *PayoffDTO `json:"avalanche"`
	Snowball  *PayoffDTO `json:"snowball"`
	// Recommended is the strategy with the lower total interest; avalanche on ties.
	Recommended   string  `json:"recommended"`
	InterestSaved float64 `json:"interestSaved"`
	MonthsSaved   int     `json:"monthsSaved"`
}

type CalculateDTO struct {
	Mode    string      `json:"mode"`
	Loan    *LoanDTO    `json:"loan,omitempty"`
	Savings *SavingsDTO `json:"savings,omitempty"`
	Payoff  *PayoffDTO  `json:"payoff,omitempty"`
}

type InterestCalculatorDTO struct {
	MonthlyPayment float64 `json:"monthlyPayment"`
	MonthsToPayoff int     `json:"monthsToPayoff"`
	TotalInterest  float64 `json:"totalInterest"`
	TotalPayment   float64 `json:"totalPayment"`
	PayoffDate     string  `json:"payoffDate"`
}
