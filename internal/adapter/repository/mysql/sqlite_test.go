package mysql

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SQLite-friendly shadow schema for tests: same table and column names as the
// domain models, but TEXT columns where MySQL uses ENUM and REAL where it uses
// DECIMAL.

type memberSQLite struct {
	ID                 uint64         `gorm:"primaryKey;column:id"`
	MemberID           string         `gorm:"size:32;column:member_id"`
	Name               string         `gorm:"column:name"`
	Email              string         `gorm:"column:email"`
	Role               string         `gorm:"type:text;column:role"`
	IsActive           bool           `gorm:"column:is_active"`
	EmailVerified      bool           `gorm:"column:email_verified"`
	AdminApproved      bool           `gorm:"column:admin_approved"`
	ApprovalStatus     string         `gorm:"type:text;column:approval_status"`
	ApprovalNotes      string         `gorm:"column:approval_notes"`
	TotalContributions float64        `gorm:"column:total_contributions"`
	AvailableLoanLimit float64        `gorm:"column:available_loan_limit"`
	JoinedAt           time.Time      `gorm:"column:joined_at"`
	CreatedAt          time.Time      `gorm:"column:created_at"`
	UpdatedAt          time.Time      `gorm:"column:updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (memberSQLite) TableName() string { return "members" }

type contributionSQLite struct {
	ID              uint64         `gorm:"primaryKey;column:id"`
	ReferenceCode   string         `gorm:"size:32;column:reference_code"`
	MemberID        string         `gorm:"size:32;column:member_id"`
	Amount          float64        `gorm:"column:amount"`
	Type            string         `gorm:"type:text;column:type"`
	Status          string         `gorm:"type:text;column:status"`
	Description     string         `gorm:"column:description"`
	TransactionDate time.Time      `gorm:"column:transaction_date"`
	ApprovedBy      string         `gorm:"column:approved_by"`
	ApprovedAt      *time.Time     `gorm:"column:approved_at"`
	CreatedAt       time.Time      `gorm:"column:created_at"`
	UpdatedAt       time.Time      `gorm:"column:updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (contributionSQLite) TableName() string { return "contributions" }

type loanSQLite struct {
	ID                    uint64         `gorm:"primaryKey;column:id"`
	LoanID                string         `gorm:"size:32;column:loan_id"`
	MemberID              string         `gorm:"size:32;column:member_id"`
	Principal             float64        `gorm:"column:principal"`
	Term                  int            `gorm:"column:term"`
	RateModel             string         `gorm:"column:rate_model"`
	InterestRate          float64        `gorm:"column:interest_rate"`
	TotalAmount           float64        `gorm:"column:total_amount"`
	AmountPaid            float64        `gorm:"column:amount_paid"`
	Balance               float64        `gorm:"column:balance"`
	Status                string         `gorm:"type:text;column:status"`
	ApplicationDate       time.Time      `gorm:"column:application_date"`
	ApprovalDate          *time.Time     `gorm:"column:approval_date"`
	DueDate               *time.Time     `gorm:"column:due_date"`
	CompletionDate        *time.Time     `gorm:"column:completion_date"`
	PenaltyDays           int            `gorm:"column:penalty_days"`
	PenaltyAmount         float64        `gorm:"column:penalty_amount"`
	Purpose               string         `gorm:"column:purpose"`
	GuarantorName         string         `gorm:"column:guarantor_name"`
	GuarantorPhone        string         `gorm:"column:guarantor_phone"`
	GuarantorRelationship string         `gorm:"column:guarantor_relationship"`
	Notes                 string         `gorm:"column:notes"`
	ApprovedBy            string         `gorm:"column:approved_by"`
	CreatedAt             time.Time      `gorm:"column:created_at"`
	UpdatedAt             time.Time      `gorm:"column:updated_at"`
	DeletedAt             gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (loanSQLite) TableName() string { return "loans" }

type paymentSQLite struct {
	ID            uint64    `gorm:"primaryKey;column:id"`
	PaymentID     string    `gorm:"size:32;column:payment_id"`
	LoanID        uint64    `gorm:"column:loan_id"`
	Amount        float64   `gorm:"column:amount"`
	PaymentDate   time.Time `gorm:"column:payment_date"`
	PaymentMethod string    `gorm:"column:payment_method"`
	RecordedBy    string    `gorm:"column:recorded_by"`
	CreatedAt     time.Time `gorm:"column:created_at"`
}

func (paymentSQLite) TableName() string { return "loan_payments" }

type investmentSQLite struct {
	ID             uint64         `gorm:"primaryKey;column:id"`
	ReferenceCode  string         `gorm:"size:32;column:reference_code"`
	Amount         float64        `gorm:"column:amount"`
	InterestRate   float64        `gorm:"column:interest_rate"`
	CurrentValue   float64        `gorm:"column:current_value"`
	InvestmentDate time.Time      `gorm:"column:investment_date"`
	MaturityDate   *time.Time     `gorm:"column:maturity_date"`
	Status         string         `gorm:"type:text;column:status"`
	Notes          string         `gorm:"column:notes"`
	RecordedBy     string         `gorm:"column:recorded_by"`
	CreatedAt      time.Time      `gorm:"column:created_at"`
	UpdatedAt      time.Time      `gorm:"column:updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (investmentSQLite) TableName() string { return "investments" }

type distributionSQLite struct {
	ID                uint64    `gorm:"primaryKey;column:id"`
	InvestmentID      uint64    `gorm:"column:investment_id"`
	MemberID          string    `gorm:"size:32;column:member_id"`
	GrossInterest     float64   `gorm:"column:gross_interest"`
	ManagementFee     float64   `gorm:"column:management_fee"`
	WithholdingTax    float64   `gorm:"column:withholding_tax"`
	NetAmount         float64   `gorm:"column:net_amount"`
	MemberShare       float64   `gorm:"column:member_share"`
	SharePercentage   float64   `gorm:"column:share_percentage"`
	DistributionDate  time.Time `gorm:"column:distribution_date"`
	DistributionMonth string    `gorm:"column:distribution_month"`
	Status            string    `gorm:"type:text;column:status"`
	ProcessedBy       string    `gorm:"column:processed_by"`
	CreatedAt         time.Time `gorm:"column:created_at"`
}

func (distributionSQLite) TableName() string { return "interest_distributions" }

type milestoneSQLite struct {
	ID            uint64         `gorm:"primaryKey;column:id"`
	MilestoneID   string         `gorm:"size:32;column:milestone_id"`
	Title         string         `gorm:"column:title"`
	Description   string         `gorm:"column:description"`
	TargetAmount  float64        `gorm:"column:target_amount"`
	CurrentAmount float64        `gorm:"column:current_amount"`
	TargetDate    time.Time      `gorm:"column:target_date"`
	AchievedDate  *time.Time     `gorm:"column:achieved_date"`
	Status        string         `gorm:"type:text;column:status"`
	Priority      string         `gorm:"type:text;column:priority"`
	CreatedBy     string         `gorm:"column:created_by"`
	CreatedAt     time.Time      `gorm:"column:created_at"`
	UpdatedAt     time.Time      `gorm:"column:updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (milestoneSQLite) TableName() string { return "milestones" }

// openTestDB creates an in-memory sqlite DB and migrates ONLY the sqlite-safe
// schema, never the MySQL domain models.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&memberSQLite{}, &contributionSQLite{},
		&loanSQLite{}, &paymentSQLite{},
		&investmentSQLite{}, &distributionSQLite{},
		&milestoneSQLite{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}
