package loan

import (
	"time"

	"github.com/shopspring/decimal"
)

type ApplyInput struct {
	MemberID              string          `json:"member_id"`
	Principal             decimal.Decimal `json:"principal"`
	Term                  int             `json:"term"`
	Purpose               string          `json:"purpose"`
	GuarantorName         string          `json:"guarantor_name"`
	GuarantorPhone        string          `json:"guarantor_phone"`
	GuarantorRelationship string          `json:"guarantor_relationship"`
}

type PaymentInput struct {
	Amount        decimal.Decimal `json:"amount"`
	PaymentDate   time.Time       `json:"payment_date"`
	PaymentMethod string          `json:"payment_method"`
	RecordedBy    string          `json:"recorded_by"`
}

type LoanDTO struct {
	LoanID          string          `json:"loan_id"`
	MemberID        string          `json:"member_id"`
	Principal       decimal.Decimal `json:"principal"`
	Term            int             `json:"term"`
	RateModel       string          `json:"rate_model"`
	InterestRate    decimal.Decimal `json:"interest_rate"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	AmountPaid      decimal.Decimal `json:"amount_paid"`
	Balance         decimal.Decimal `json:"balance"`
	Status          string          `json:"status"`
	ApplicationDate time.Time       `json:"application_date"`
	ApprovalDate    *time.Time      `json:"approval_date,omitempty"`
	DueDate         *time.Time      `json:"due_date,omitempty"`
	CompletionDate  *time.Time      `json:"completion_date,omitempty"`
	PenaltyDays     int             `json:"penalty_days,omitempty"`
	PenaltyAmount   decimal.Decimal `json:"penalty_amount"`
	Purpose         string          `json:"purpose"`
}

type PaymentDTO struct {
	PaymentID     string          `json:"payment_id"`
	LoanID        string          `json:"loan_id"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentDate   time.Time       `json:"payment_date"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	RecordedBy    string          `json:"recorded_by"`
}

type PaymentResult struct {
	Payment PaymentDTO `json:"payment"`
	Loan    LoanDTO    `json:"loan"`
}

// Eligibility mirrors what the application form shows before a member
// applies.
type Eligibility struct {
	TotalContributions decimal.Decimal `json:"total_contributions"`
	ActiveLoanBalance  decimal.Decimal `json:"active_loan_balance"`
	AvailableLimit     decimal.Decimal `json:"available_limit"`
	MaxLoanAmount      decimal.Decimal `json:"max_loan_amount"`
	CanApply           bool            `json:"can_apply"`
}
