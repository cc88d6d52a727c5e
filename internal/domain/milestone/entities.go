package milestone

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusAchieved  Status = "achieved"
	StatusPaused    Status = "paused"
	StatusCancelled Status = "cancelled"
)

type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

var (
	ErrNotFound     = errors.New("milestone not found")
	ErrInvalidState = errors.New("milestone is terminal")
)

type Milestone struct {
	ID           uint64          `gorm:"primaryKey;column:id" json:"-"`
	MilestoneID  string          `gorm:"size:32;uniqueIndex:ux_milestones_milestone_id" json:"milestone_id"`
	Title        string          `gorm:"size:255" json:"title"`
	Description  string          `gorm:"type:text" json:"description"`
	TargetAmount decimal.Decimal `gorm:"type:decimal(15,2)" json:"target_amount"`
	CurrentAmount decimal.Decimal `gorm:"type:decimal(15,2)" json:"current_amount"`
	TargetDate   time.Time       `json:"target_date"`
	AchievedDate *time.Time      `json:"achieved_date,omitempty"`
	Status       Status          `gorm:"type:enum('active','achieved','paused','cancelled');default:'active'" json:"status"`
	Priority     Priority        `gorm:"type:enum('low','medium','high','critical');default:'medium'" json:"priority"`
	CreatedBy    string          `gorm:"size:32" json:"created_by"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Milestone) TableName() string { return "milestones" }

// SetProgress replaces the current amount and marks the milestone achieved
// once the target is reached. Checked on every progress update rather than
// continuously.
func (m *Milestone) SetProgress(amount decimal.Decimal, now time.Time) error {
	if m.Status == StatusAchieved || m.Status == StatusCancelled {
		return ErrInvalidState
	}
	m.CurrentAmount = amount
	m.checkAchieved(now)
	return nil
}

// AddProgress increments the current amount.
func (m *Milestone) AddProgress(amount decimal.Decimal, now time.Time) error {
	if m.Status == StatusAchieved || m.Status == StatusCancelled {
		return ErrInvalidState
	}
	m.CurrentAmount = m.CurrentAmount.Add(amount)
	m.checkAchieved(now)
	return nil
}

func (m *Milestone) checkAchieved(now time.Time) {
	if m.CurrentAmount.GreaterThanOrEqual(m.TargetAmount) {
		m.Status = StatusAchieved
		m.AchievedDate = &now
	}
}

// ProgressPercentage is capped at 100.
func (m *Milestone) ProgressPercentage() decimal.Decimal {
	if m.TargetAmount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	pct := m.CurrentAmount.Div(m.TargetAmount).Mul(decimal.NewFromInt(100)).Round(2)
	full := decimal.NewFromInt(100)
	if pct.GreaterThan(full) {
		return full
	}
	return pct
}

func (m *Milestone) Cancel() error {
	if m.Status == StatusAchieved || m.Status == StatusCancelled {
		return ErrInvalidState
	}
	m.Status = StatusCancelled
	return nil
}
