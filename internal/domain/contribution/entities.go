package contribution

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Type string

const (
	TypeDeposit    Type = "deposit"
	TypeWithdrawal Type = "withdrawal"
	// TypeInterest rows are written by the distribution engine only, always
	// pre-approved.
	TypeInterest Type = "interest"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

var (
	ErrNotFound     = errors.New("contribution not found")
	ErrInvalidState = errors.New("contribution is not pending")
)

type Contribution struct {
	ID            uint64          `gorm:"primaryKey;column:id" json:"-"`
	ReferenceCode string          `gorm:"size:32;uniqueIndex:ux_contributions_reference" json:"reference_code"`
	MemberID      string          `gorm:"size:32;index:idx_contributions_member" json:"member_id"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2)" json:"amount"`
	Type          Type            `gorm:"type:enum('deposit','withdrawal','interest')" json:"type"`
	Status        Status          `gorm:"type:enum('pending','approved','rejected');default:'pending'" json:"status"`
	Description   string          `gorm:"size:255" json:"description,omitempty"`

	TransactionDate time.Time  `json:"transaction_date"`
	ApprovedBy      string     `gorm:"size:32" json:"approved_by,omitempty"`
	ApprovedAt      *time.Time `json:"approved_at,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Contribution) TableName() string { return "contributions" }

// Approve marks a pending contribution approved. Terminal rows are immutable.
func (c *Contribution) Approve(approverID string, at time.Time) error {
	if c.Status != StatusPending {
		return ErrInvalidState
	}
	c.Status = StatusApproved
	c.ApprovedBy = approverID
	c.ApprovedAt = &at
	return nil
}

// Reject marks a pending contribution rejected, appending the reason to the
// description when given.
func (c *Contribution) Reject(approverID, reason string, at time.Time) error {
	if c.Status != StatusPending {
		return ErrInvalidState
	}
	c.Status = StatusRejected
	c.ApprovedBy = approverID
	c.ApprovedAt = &at
	if reason != "" {
		if c.Description != "" {
			c.Description += " | rejection reason: " + reason
		} else {
			c.Description = "rejection reason: " + reason
		}
	}
	return nil
}
