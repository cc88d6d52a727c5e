package loanmock

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	domain "welfare-backend/internal/domain/loan"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock satisfying loan.Repository.
type Repo struct {
	CreateFn                     func(ctx context.Context, l *domain.Loan) error
	GetByLoanIDFn                func(ctx context.Context, loanID string) (*domain.Loan, error)
	GetByLoanIDForUpdateFn       func(ctx context.Context, loanID string) (*domain.Loan, error)
	ListByMemberFn               func(ctx context.Context, memberID string) ([]domain.Loan, error)
	ListOverdueActiveForUpdateFn func(ctx context.Context, asOf time.Time) ([]domain.Loan, error)
	SumActiveBalanceByMemberFn   func(ctx context.Context, memberID string) (decimal.Decimal, error)
	SaveFn                       func(ctx context.Context, l *domain.Loan) error
	CreatePaymentFn              func(ctx context.Context, p *domain.Payment) error
	ListPaymentsByLoanFn         func(ctx context.Context, loanNumericID uint64) ([]domain.Payment, error)
	InterestReportFn             func(ctx context.Context) ([]domain.InterestReportRow, error)
	CountByStatusFn              func(ctx context.Context, st domain.Status) (int64, error)
	SumPrincipalIssuedFn         func(ctx context.Context) (decimal.Decimal, error)
}

func (m *Repo) Create(ctx context.Context, l *domain.Loan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByLoanID(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetByLoanIDFn != nil {
		return m.GetByLoanIDFn(ctx, loanID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByLoanIDForUpdate(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetByLoanIDForUpdateFn != nil {
		return m.GetByLoanIDForUpdateFn(ctx, loanID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByMember(ctx context.Context, memberID string) ([]domain.Loan, error) {
	if m.ListByMemberFn != nil {
		return m.ListByMemberFn(ctx, memberID)
	}
	return nil, nil
}

func (m *Repo) ListOverdueActiveForUpdate(ctx context.Context, asOf time.Time) ([]domain.Loan, error) {
	if m.ListOverdueActiveForUpdateFn != nil {
		return m.ListOverdueActiveForUpdateFn(ctx, asOf)
	}
	return nil, nil
}

func (m *Repo) SumActiveBalanceByMember(ctx context.Context, memberID string) (decimal.Decimal, error) {
	if m.SumActiveBalanceByMemberFn != nil {
		return m.SumActiveBalanceByMemberFn(ctx, memberID)
	}
	return decimal.Zero, nil
}

func (m *Repo) Save(ctx context.Context, l *domain.Loan) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}

func (m *Repo) CreatePayment(ctx context.Context, p *domain.Payment) error {
	if m.CreatePaymentFn != nil {
		return m.CreatePaymentFn(ctx, p)
	}
	return nil
}

func (m *Repo) ListPaymentsByLoan(ctx context.Context, loanNumericID uint64) ([]domain.Payment, error) {
	if m.ListPaymentsByLoanFn != nil {
		return m.ListPaymentsByLoanFn(ctx, loanNumericID)
	}
	return nil, nil
}

func (m *Repo) InterestReport(ctx context.Context) ([]domain.InterestReportRow, error) {
	if m.InterestReportFn != nil {
		return m.InterestReportFn(ctx)
	}
	return nil, nil
}

func (m *Repo) CountByStatus(ctx context.Context, st domain.Status) (int64, error) {
	if m.CountByStatusFn != nil {
		return m.CountByStatusFn(ctx, st)
	}
	return 0, nil
}

func (m *Repo) SumPrincipalIssued(ctx context.Context) (decimal.Decimal, error) {
	if m.SumPrincipalIssuedFn != nil {
		return m.SumPrincipalIssuedFn(ctx)
	}
	return decimal.Zero, nil
}
