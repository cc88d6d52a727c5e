package investment

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateInput struct {
	Amount         decimal.Decimal `json:"amount"`
	InvestmentDate time.Time       `json:"investment_date"`
	InterestRate   decimal.Decimal `json:"interest_rate"`
	MaturityDate   *time.Time      `json:"maturity_date"`
	Notes          string          `json:"notes"`
	RecordedBy     string          `json:"recorded_by"`
}

type DistributeInput struct {
	GrossInterest    decimal.Decimal `json:"gross_interest"`
	DistributionDate time.Time       `json:"distribution_date"`
	ProcessorID      string          `json:"processor_id"`
}

type InvestmentDTO struct {
	ReferenceCode  string          `json:"reference_code"`
	Amount         decimal.Decimal `json:"amount"`
	InterestRate   decimal.Decimal `json:"interest_rate"`
	CurrentValue   decimal.Decimal `json:"current_value"`
	InvestmentDate time.Time       `json:"investment_date"`
	MaturityDate   *time.Time      `json:"maturity_date,omitempty"`
	Status         string          `json:"status"`
	RecordedBy     string          `json:"recorded_by"`
}

type DistributionDTO struct {
	MemberID        string          `json:"member_id"`
	GrossInterest   decimal.Decimal `json:"gross_interest"`
	ManagementFee   decimal.Decimal `json:"management_fee"`
	WithholdingTax  decimal.Decimal `json:"withholding_tax"`
	NetAmount       decimal.Decimal `json:"net_amount"`
	MemberShare     decimal.Decimal `json:"member_share"`
	SharePercentage decimal.Decimal `json:"share_percentage"`
	Month           string          `json:"distribution_month"`
}

// DistributeResult reports the one-transaction fan-out in full.
type DistributeResult struct {
	Investment     InvestmentDTO     `json:"investment"`
	GrossInterest  decimal.Decimal   `json:"gross_interest"`
	ManagementFee  decimal.Decimal   `json:"management_fee"`
	WithholdingTax decimal.Decimal   `json:"withholding_tax"`
	NetInterest    decimal.Decimal   `json:"net_interest"`
	MemberCount    int               `json:"member_count"`
	Distributions  []DistributionDTO `json:"distributions"`
}
