package contribution

import (
	"time"

	"github.com/shopspring/decimal"
)

type SubmitInput struct {
	MemberID    string          `json:"member_id"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
	Description string          `json:"description"`
}

type ContributionDTO struct {
	ReferenceCode   string          `json:"reference_code"`
	MemberID        string          `json:"member_id"`
	Amount          decimal.Decimal `json:"amount"`
	Type            string          `json:"type"`
	Status          string          `json:"status"`
	Description     string          `json:"description,omitempty"`
	TransactionDate time.Time       `json:"transaction_date"`
	ApprovedBy      string          `json:"approved_by,omitempty"`
	ApprovedAt      *time.Time      `json:"approved_at,omitempty"`
}

// ApprovalResult carries the updated contribution together with the member
// whose ledger it moved.
type ApprovalResult struct {
	Contribution       ContributionDTO `json:"contribution"`
	TotalContributions decimal.Decimal `json:"total_contributions"`
	AvailableLoanLimit decimal.Decimal `json:"available_loan_limit"`
}
