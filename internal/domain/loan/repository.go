package loan

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// InterestReportRow aggregates interest earned on completed loans per month.
type InterestReportRow struct {
	Year          int             `json:"year"`
	Month         int             `json:"month"`
	TotalInterest decimal.Decimal `json:"total_interest"`
	LoansCount    int64           `json:"loans_count"`
}

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	GetByLoanID(ctx context.Context, loanID string) (*Loan, error)
	GetByLoanIDForUpdate(ctx context.Context, loanID string) (*Loan, error)
	ListByMember(ctx context.Context, memberID string) ([]Loan, error)
	// ListOverdueActiveForUpdate locks every active loan past due for the
	// sweep pass.
	ListOverdueActiveForUpdate(ctx context.Context, asOf time.Time) ([]Loan, error)
	// SumActiveBalanceByMember feeds the eligibility check.
	SumActiveBalanceByMember(ctx context.Context, memberID string) (decimal.Decimal, error)
	Save(ctx context.Context, l *Loan) error

	CreatePayment(ctx context.Context, p *Payment) error
	ListPaymentsByLoan(ctx context.Context, loanNumericID uint64) ([]Payment, error)

	InterestReport(ctx context.Context) ([]InterestReportRow, error)
	CountByStatus(ctx context.Context, st Status) (int64, error)
	SumPrincipalIssued(ctx context.Context) (decimal.Decimal, error)
}
