package member

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Role string

const (
	RoleMember    Role = "member"
	RoleTreasurer Role = "treasurer"
	RoleAdmin     Role = "admin"
)

type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

var (
	ErrNotFound            = errors.New("member not found")
	ErrInvalidState        = errors.New("invalid member state transition")
	ErrInactive            = errors.New("member is not active")
	ErrInsufficientBalance = errors.New("withdrawal exceeds contribution balance")
	ErrEmailTaken          = errors.New("email already registered")
)

type Member struct {
	ID       uint64 `gorm:"primaryKey;column:id" json:"-"`
	MemberID string `gorm:"size:32;uniqueIndex:ux_members_member_id" json:"member_id"`
	Name     string `gorm:"size:255" json:"name"`
	Email    string `gorm:"size:255;uniqueIndex:ux_members_email" json:"email"`
	Role     Role   `gorm:"type:enum('member','treasurer','admin');default:'member'" json:"role"`
	IsActive bool   `gorm:"default:false" json:"is_active"`

	// Onboarding gate: both flags must be set before the member becomes active.
	EmailVerified  bool           `gorm:"default:false" json:"email_verified"`
	AdminApproved  bool           `gorm:"default:false" json:"admin_approved"`
	ApprovalStatus ApprovalStatus `gorm:"type:enum('pending','approved','rejected');default:'pending'" json:"approval_status"`
	ApprovalNotes  string         `gorm:"type:text" json:"approval_notes,omitempty"`

	// Running ledger. AvailableLoanLimit mirrors TotalContributions and is
	// only ever recomputed alongside it, never edited independently.
	TotalContributions decimal.Decimal `gorm:"type:decimal(15,2)" json:"total_contributions"`
	AvailableLoanLimit decimal.Decimal `gorm:"type:decimal(15,2)" json:"available_loan_limit"`

	JoinedAt  time.Time      `gorm:"autoCreateTime" json:"joined_at"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Member) TableName() string { return "members" }

// CreditLedger adds an approved deposit or interest share to the running
// balance. The loan limit moves in lockstep with the balance.
func (m *Member) CreditLedger(amount decimal.Decimal) {
	m.TotalContributions = m.TotalContributions.Add(amount)
	m.AvailableLoanLimit = m.AvailableLoanLimit.Add(amount)
}

// DebitLedger applies an approved withdrawal. A withdrawal that would drive
// the balance negative is refused with ErrInsufficientBalance.
func (m *Member) DebitLedger(amount decimal.Decimal) error {
	if amount.GreaterThan(m.TotalContributions) {
		return ErrInsufficientBalance
	}
	m.TotalContributions = m.TotalContributions.Sub(amount)
	m.AvailableLoanLimit = m.AvailableLoanLimit.Sub(amount)
	return nil
}

// SetLedger overwrites both ledger fields with a recomputed balance.
func (m *Member) SetLedger(balance decimal.Decimal) {
	m.TotalContributions = balance
	m.AvailableLoanLimit = balance
}
