package member

import (
	"time"

	"github.com/shopspring/decimal"
)

type RegisterInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type MemberDTO struct {
	MemberID           string          `json:"member_id"`
	Name               string          `json:"name"`
	Email              string          `json:"email"`
	Role               string          `json:"role"`
	IsActive           bool            `json:"is_active"`
	EmailVerified      bool            `json:"email_verified"`
	AdminApproved      bool            `json:"admin_approved"`
	ApprovalStatus     string          `json:"approval_status"`
	TotalContributions decimal.Decimal `json:"total_contributions"`
	AvailableLoanLimit decimal.Decimal `json:"available_loan_limit"`
	JoinedAt           time.Time       `json:"joined_at"`
}
