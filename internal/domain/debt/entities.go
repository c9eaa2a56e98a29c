package debt

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound              = errors.New("debt not found")
	ErrInvalidAmount         = errors.New("payment amount must be greater than 0")
	ErrPaymentExceedsBalance = errors.New("payment exceeds remaining balance and interest")
	ErrAlreadyPaidOff        = errors.New("debt is already paid off")
)

type Type string

const (
	TypeMortgage     Type = "mortgage"
	TypeAutoLoan     Type = "auto_loan"
	TypeStudentLoan  Type = "student_loan"
	TypeCreditCard   Type = "credit_card"
	TypePersonalLoan Type = "personal_loan"
	TypeOther        Type = "other"
)

var Types = []Type{TypeMortgage, TypeAutoLoan, TypeStudentLoan, TypeCreditCard, TypePersonalLoan, TypeOther}

func (t Type) Valid() bool {
	for _, v := range Types {
		if t == v {
			return true
		}
	}
	return false
}

// Table: debts
type Debt struct {
	ID             uint64         `gorm:"column:id;primaryKey;autoIncrement"`
	DebtID         string         `gorm:"column:debt_id;size:36;not null;uniqueIndex:ux_debts_debt_id"`
	UserID         string         `gorm:"column:user_id;size:36;not null;index:idx_debts_user_id"`
	Name           string         `gorm:"column:name;size:255;not null"`
	Type           Type           `gorm:"column:type;size:20;not null;default:'other'"`
	OriginalAmount float64        `gorm:"column:original_amount;type:decimal(15,2);not null"`
	CurrentBalance float64        `gorm:"column:current_balance;type:decimal(15,2);not null"`
	InterestRate   float64        `gorm:"column:interest_rate;type:decimal(7,3);not null"` // APR percent
	MinimumPayment float64        `gorm:"column:minimum_payment;type:decimal(15,2);not null"`
	Currency       string         `gorm:"column:currency;size:3;default:'USD'"`
	DueDay         int            `gorm:"column:due_day"`
	StartDate      time.Time      `gorm:"column:start_date;type:date;not null"`
	ExpectedPayoff *time.Time     `gorm:"column:expected_payoff;type:date"`
	CreatedAt      time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt      gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Debt) TableName() string { return "debts" }

// Table: debt_payments
type Payment struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	PaymentID string    `gorm:"column:payment_id;size:36;not null;uniqueIndex:ux_debt_payments_payment_id"`
	DebtID    uint64    `gorm:"column:debt_id;not null;index:idx_debt_payments_debt_id"` // FK to debts.id
	Amount    float64   `gorm:"column:amount;type:decimal(15,2);not null"`
	Principal float64   `gorm:"column:principal;type:decimal(15,2);not null"`
	Interest  float64   `gorm:"column:interest;type:decimal(15,2);not null"`
	Date      time.Time `gorm:"column:date;type:date;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Payment) TableName() string { return "debt_payments" }
