package debt

import (
	"time"

	"wealthpath-finance/internal/usecase/calculator"
)

type CreateDebtInput struct {
	UserID         string   `json:"-"`
	Name           string   `json:"name" validate:"required,max=255"`
	Type           string   `json:"type" validate:"omitempty,debttype"`
	OriginalAmount float64  `json:"originalAmount" validate:"gt=0,dec2"`
	CurrentBalance *float64 `json:"currentBalance" validate:"omitempty,gte=0,dec2"` // defaults to OriginalAmount
	InterestRate   float64  `json:"interestRate" validate:"gte=0,lte=1000"`
	MinimumPayment float64  `json:"minimumPayment" validate:"gt=0,dec2"`
	Currency       string   `json:"currency" validate:"omitempty,len=3,alpha"`
	DueDay         int      `json:"dueDay" validate:"gte=0,lte=31"`
	StartDate      string   `json:"startDate" validate:"omitempty,isodate"`
}

// UpdateDebtInput is a partial update: nil fields are left unchanged.
type UpdateDebtInput struct {
	UserID         string   `json:"-"`
	DebtID         string   `json:"-"`
	Name           *string  `json:"name" validate:"omitempty,min=1,max=255"`
	Type           *string  `json:"type" validate:"omitempty,debttype"`
	OriginalAmount *float64 `json:"originalAmount" validate:"omitempty,gt=0,dec2"`
	CurrentBalance *float64 `json:"currentBalance" validate:"omitempty,gte=0,dec2"`
	InterestRate   *float64 `json:"interestRate" validate:"omitempty,gte=0,lte=1000"`
	MinimumPayment *float64 `json:"minimumPayment" validate:"omitempty,gt=0,dec2"`
	Currency       *string  `json:"currency" validate:"omitempty,len=3,alpha"`
	DueDay         *int     `json:"dueDay" validate:"omitempty,gte=0,lte=31"`
	StartDate      *string  `json:"startDate" validate:"omitempty,isodate"`
}

type PaymentInput struct {
	UserID string  `json:"-"`
	DebtID string  `json:"-"`
	Amount float64 `json:"amount" validate:"gt=0,dec2"`
	Date   string  `json:"date" validate:"omitempty,isodate"`
}

type PlanAllInput struct {
	UserID        string
	MonthlyBudget float64
	Strategy      string
}

type PayoffPlanInput struct {
	UserID string
	DebtID string
	// MonthlyPayment of 0 falls back to the debt's minimum payment.
	MonthlyPayment float64
}

type DebtDTO struct {
	DebtID         string       `json:"id"`
	Name           string       `json:"name"`
	Type           string       `json:"type"`
	OriginalAmount float64      `json:"originalAmount"`
	CurrentBalance float64      `json:"currentBalance"`
	InterestRate   float64      `json:"interestRate"`
	MinimumPayment float64      `json:"minimumPayment"`
	Currency       string       `json:"currency"`
	DueDay         int          `json:"dueDay"`
	StartDate      string       `json:"startDate"`
	ExpectedPayoff *string      `json:"expectedPayoff"`
	Payments       []PaymentDTO `json:"payments,omitempty"`
	CreatedAt      time.Time    `json:"createdAt"`
	UpdatedAt      time.Time    `json:"updatedAt"`
}

type PaymentDTO struct {
	PaymentID string  `json:"id"`
	Amount    float64 `json:"amount"`
	Principal float64 `json:"principal"`
	Interest  float64 `json:"interest"`
	Date      string  `json:"date"`
}

type PaymentResultDTO struct {
	Payment PaymentDTO `json:"payment"`
	Debt    DebtDTO    `json:"debt"`
}

// PlanAllDTO is the stored-debt payoff plan; it reuses the calculator shape.
type PlanAllDTO = calculator.PayoffDTO
