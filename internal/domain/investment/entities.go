package investment

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusMatured   Status = "matured"
	StatusWithdrawn Status = "withdrawn"
)

type DistributionStatus string

const (
	DistributionPending     DistributionStatus = "pending"
	DistributionDistributed DistributionStatus = "distributed"
)

var (
	ErrNotFound        = errors.New("investment not found")
	ErrClosed          = errors.New("investment is not active")
	ErrNoActiveMembers = errors.New("no active members for distribution")
)

// DefaultInterestRate is the association's standing money-market rate,
// applied when a new investment is recorded without one.
var DefaultInterestRate = decimal.RequireFromString("9.75")

type Investment struct {
	ID            uint64 `gorm:"primaryKey;column:id" json:"-"`
	ReferenceCode string `gorm:"size:32;uniqueIndex:ux_investments_reference" json:"reference_code"`

	Amount         decimal.Decimal `gorm:"type:decimal(15,2)" json:"amount"`
	InterestRate   decimal.Decimal `gorm:"type:decimal(8,4)" json:"interest_rate"`
	CurrentValue   decimal.Decimal `gorm:"type:decimal(15,2)" json:"current_value"`
	InvestmentDate time.Time       `json:"investment_date"`
	MaturityDate   *time.Time      `json:"maturity_date,omitempty"`
	Status         Status          `gorm:"type:enum('active','matured','withdrawn');default:'active'" json:"status"`
	Notes          string          `gorm:"type:text" json:"notes,omitempty"`
	RecordedBy     string          `gorm:"size:32" json:"recorded_by"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Investment) TableName() string { return "investments" }

// ApplyDistribution credits one distribution's gross interest to the running
// value. Only active investments accept distributions.
func (i *Investment) ApplyDistribution(gross decimal.Decimal) error {
	if i.Status != StatusActive {
		return ErrClosed
	}
	i.CurrentValue = i.CurrentValue.Add(gross)
	return nil
}

// Close terminates the investment (matured or withdrawn).
func (i *Investment) Close(to Status) error {
	if i.Status != StatusActive || (to != StatusMatured && to != StatusWithdrawn) {
		return ErrClosed
	}
	i.Status = to
	return nil
}

// Distribution is one member's share of a monthly interest payout. One row
// per active member, carrying the full fee breakdown and share percentage.
type Distribution struct {
	ID           uint64 `gorm:"primaryKey;column:id" json:"-"`
	InvestmentID uint64 `gorm:"index:idx_distributions_investment" json:"-"`
	MemberID     string `gorm:"size:32;index:idx_distributions_member" json:"member_id"`

	GrossInterest   decimal.Decimal `gorm:"type:decimal(15,2)" json:"gross_interest"`
	ManagementFee   decimal.Decimal `gorm:"type:decimal(15,2)" json:"management_fee"`
	WithholdingTax  decimal.Decimal `gorm:"type:decimal(15,2)" json:"withholding_tax"`
	NetAmount       decimal.Decimal `gorm:"type:decimal(15,2)" json:"net_amount"`
	MemberShare     decimal.Decimal `gorm:"type:decimal(15,2)" json:"member_share"`
	SharePercentage decimal.Decimal `gorm:"type:decimal(8,4)" json:"share_percentage"`

	DistributionDate  time.Time          `json:"distribution_date"`
	DistributionMonth string             `gorm:"size:7;index:idx_distributions_month" json:"distribution_month"`
	Status            DistributionStatus `gorm:"type:enum('pending','distributed');default:'distributed'" json:"status"`
	ProcessedBy       string             `gorm:"size:32" json:"processed_by"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Distribution) TableName() string { return "interest_distributions" }
