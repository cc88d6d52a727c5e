package loan

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusDefaulted Status = "defaulted"
	StatusRejected  Status = "rejected"
)

var (
	ErrNotFound       = errors.New("loan not found")
	ErrInvalidState   = errors.New("invalid loan state transition")
	ErrIneligible     = errors.New("member not eligible for a loan")
	ErrExceedsLimit   = errors.New("principal exceeds available loan limit")
	ErrExceedsBalance = errors.New("payment exceeds outstanding balance")
)

// penaltyDailyRate is 1% simple interest per day overdue.
var penaltyDailyRate = decimal.RequireFromString("0.01")

type Loan struct {
	ID       uint64 `gorm:"primaryKey;column:id" json:"-"`
	LoanID   string `gorm:"size:32;uniqueIndex:ux_loans_loan_id" json:"loan_id"`
	MemberID string `gorm:"size:32;index:idx_loans_member" json:"member_id"`

	Principal decimal.Decimal `gorm:"type:decimal(15,2)" json:"principal"`
	// Term is in the unit of the rate model the loan was created under
	// (weeks for the weekly table, months for the monthly model). RateModel
	// records which one, so later config changes never re-date it.
	Term         int             `json:"term"`
	RateModel    string          `gorm:"size:10" json:"rate_model"`
	InterestRate decimal.Decimal `gorm:"type:decimal(8,4)" json:"interest_rate"`
	TotalAmount  decimal.Decimal `gorm:"type:decimal(15,2)" json:"total_amount"`
	AmountPaid   decimal.Decimal `gorm:"type:decimal(15,2)" json:"amount_paid"`
	Balance      decimal.Decimal `gorm:"type:decimal(15,2)" json:"balance"`

	Status          Status     `gorm:"type:enum('pending','approved','active','completed','defaulted','rejected');default:'pending'" json:"status"`
	ApplicationDate time.Time  `json:"application_date"`
	ApprovalDate    *time.Time `json:"approval_date,omitempty"`
	DueDate         *time.Time `json:"due_date,omitempty"`
	CompletionDate  *time.Time `json:"completion_date,omitempty"`

	PenaltyDays   int             `json:"penalty_days"`
	PenaltyAmount decimal.Decimal `gorm:"type:decimal(15,2)" json:"penalty_amount"`

	Purpose               string `gorm:"size:500" json:"purpose"`
	GuarantorName         string `gorm:"size:255" json:"guarantor_name"`
	GuarantorPhone        string `gorm:"size:20" json:"guarantor_phone"`
	GuarantorRelationship string `gorm:"size:100" json:"guarantor_relationship"`
	Notes                 string `gorm:"size:500" json:"notes,omitempty"`
	ApprovedBy            string `gorm:"size:32" json:"approved_by,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Loan) TableName() string { return "loans" }

// Approve collapses the legacy pending→approved→active double update into one
// transition, recording approval metadata and the computed due date.
func (l *Loan) Approve(approverID, notes string, at, dueDate time.Time) error {
	if l.Status != StatusPending {
		return ErrInvalidState
	}
	l.Status = StatusActive
	l.ApprovedBy = approverID
	l.Notes = notes
	l.ApprovalDate = &at
	l.DueDate = &dueDate
	return nil
}

func (l *Loan) Reject(approverID, notes string) error {
	if l.Status != StatusPending {
		return ErrInvalidState
	}
	l.Status = StatusRejected
	l.ApprovedBy = approverID
	l.Notes = notes
	return nil
}

// ApplyPayment cascades a payment into the loan: amount_paid accumulates,
// balance is recomputed as total_amount − amount_paid, and a balance of zero
// (or below) completes the loan.
func (l *Loan) ApplyPayment(amount decimal.Decimal, paymentDate time.Time) error {
	if l.Status != StatusActive {
		return ErrInvalidState
	}
	if amount.GreaterThan(l.Balance) {
		return ErrExceedsBalance
	}
	l.AmountPaid = l.AmountPaid.Add(amount)
	l.Balance = l.TotalAmount.Sub(l.AmountPaid)
	if l.Balance.LessThanOrEqual(decimal.Zero) {
		l.Status = StatusCompleted
		l.CompletionDate = &paymentDate
	}
	return nil
}

// OverduePenalty returns whole days past due and the accrued penalty
// (balance × 1% × days) for an active loan at the given instant. Zero for
// anything not active or not yet due.
func (l *Loan) OverduePenalty(asOf time.Time) (int, decimal.Decimal) {
	if l.Status != StatusActive || l.DueDate == nil || !asOf.After(*l.DueDate) {
		return 0, decimal.Zero
	}
	days := int(asOf.Sub(*l.DueDate).Hours() / 24)
	if days <= 0 {
		return 0, decimal.Zero
	}
	penalty := l.Balance.Mul(penaltyDailyRate).Mul(decimal.NewFromInt(int64(days))).Round(2)
	return days, penalty
}

// MarkDefaulted moves an overdue active loan to defaulted, recording the
// penalty computed at sweep time. Already-terminal loans are left alone.
func (l *Loan) MarkDefaulted(days int, penalty decimal.Decimal) error {
	if l.Status != StatusActive {
		return ErrInvalidState
	}
	l.Status = StatusDefaulted
	l.PenaltyDays = days
	l.PenaltyAmount = penalty
	return nil
}

type Payment struct {
	ID            uint64          `gorm:"primaryKey;column:id" json:"-"`
	PaymentID     string          `gorm:"size:32;uniqueIndex:ux_loan_payments_payment_id" json:"payment_id"`
	LoanID        uint64          `gorm:"index:idx_loan_payments_loan" json:"-"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2)" json:"amount"`
	PaymentDate   time.Time       `json:"payment_date"`
	PaymentMethod string          `gorm:"size:100" json:"payment_method,omitempty"`
	RecordedBy    string          `gorm:"size:32" json:"recorded_by"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

func (Payment) TableName() string { return "loan_payments" }
