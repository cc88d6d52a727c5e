package mysql

import (
	"context"
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	loanDomain "welfare-backend/internal/domain/loan"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

func (r *LoanRepository) Create(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LoanRepository) Save(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *LoanRepository) GetByLoanID(ctx context.Context, loanID string) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).Where("loan_id = ?", loanID).First(&out)
	return &out, res.Error
}

func (r *LoanRepository) GetByLoanIDForUpdate(ctx context.Context, loanID string) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("loan_id = ?", loanID).
		First(&out)
	return &out, res.Error
}

func (r *LoanRepository) ListByMember(ctx context.Context, memberID string) ([]loanDomain.Loan, error) {
	var out []loanDomain.Loan
	res := r.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("application_date DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *LoanRepository) ListOverdueActiveForUpdate(ctx context.Context, asOf time.Time) ([]loanDomain.Loan, error) {
	var out []loanDomain.Loan
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("status = ? AND due_date < ?", loanDomain.StatusActive, asOf).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}

func (r *LoanRepository) SumActiveBalanceByMember(ctx context.Context, memberID string) (decimal.Decimal, error) {
	var raw sql.NullString
	res := r.db.WithContext(ctx).
		Model(&loanDomain.Loan{}).
		Select("COALESCE(SUM(balance), 0)").
		Where("member_id = ? AND status = ?", memberID, loanDomain.StatusActive).
		Scan(&raw)
	if res.Error != nil {
		return decimal.Zero, res.Error
	}
	return parseSum(raw)
}

func (r *LoanRepository) CreatePayment(ctx context.Context, p *loanDomain.Payment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *LoanRepository) ListPaymentsByLoan(ctx context.Context, loanNumericID uint64) ([]loanDomain.Payment, error) {
	var out []loanDomain.Payment
	res := r.db.WithContext(ctx).
		Where("loan_id = ?", loanNumericID).
		Order("payment_date ASC, id ASC").
		Find(&out)
	return out, res.Error
}

// InterestReport sums earned interest (total − principal) per completion
// month over completed loans.
func (r *LoanRepository) InterestReport(ctx context.Context) ([]loanDomain.InterestReportRow, error) {
	type row struct {
		Year          int
		Month         int
		TotalInterest sql.NullString
		LoansCount    int64
	}
	var rows []row
	res := r.db.WithContext(ctx).
		Model(&loanDomain.Loan{}).
		Select("YEAR(completion_date) AS year, MONTH(completion_date) AS month, "+
			"SUM(total_amount - principal) AS total_interest, COUNT(*) AS loans_count").
		Where("status = ?", loanDomain.StatusCompleted).
		Group("year, month").
		Order("year DESC, month DESC").
		Scan(&rows)
	if res.Error != nil {
		return nil, res.Error
	}
	out := make([]loanDomain.InterestReportRow, 0, len(rows))
	for _, rw := range rows {
		total, err := parseSum(rw.TotalInterest)
		if err != nil {
			return nil, err
		}
		out = append(out, loanDomain.InterestReportRow{
			Year:          rw.Year,
			Month:         rw.Month,
			TotalInterest: total,
			LoansCount:    rw.LoansCount,
		})
	}
	return out, nil
}

func (r *LoanRepository) CountByStatus(ctx context.Context, st loanDomain.Status) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).Model(&loanDomain.Loan{}).Where("status = ?", st).Count(&n)
	return n, res.Error
}

func (r *LoanRepository) SumPrincipalIssued(ctx context.Context) (decimal.Decimal, error) {
	var raw sql.NullString
	res := r.db.WithContext(ctx).
		Model(&loanDomain.Loan{}).
		Select("COALESCE(SUM(principal), 0)").
		Where("status NOT IN ?", []loanDomain.Status{loanDomain.StatusPending, loanDomain.StatusRejected}).
		Scan(&raw)
	if res.Error != nil {
		return decimal.Zero, res.Error
	}
	return parseSum(raw)
}
