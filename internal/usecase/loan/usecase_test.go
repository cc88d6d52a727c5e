package loan

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	domain "welfare-backend/internal/domain/loan"
	memberDomain "welfare-backend/internal/domain/member"
	"welfare-backend/internal/domain/uow"
	"welfare-backend/internal/testutil/loanmock"
	"welfare-backend/internal/testutil/membermock"
	"welfare-backend/internal/testutil/uowmock"
)

const (
	memberID   = "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"
	approverID = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
)

func nopLogger() *zap.SugaredLogger { return zap.NewNop().Sugar() }

func memberWith(balance int64) *membermock.Repo {
	return &membermock.Repo{
		GetByMemberIDFn: func(ctx context.Context, id string) (*memberDomain.Member, error) {
			m := &memberDomain.Member{MemberID: memberID, IsActive: true}
			m.SetLedger(decimal.NewFromInt(balance))
			return m, nil
		},
	}
}

func TestCheckEligibility(t *testing.T) {
	loans := &loanmock.Repo{
		SumActiveBalanceByMemberFn: func(ctx context.Context, id string) (decimal.Decimal, error) {
			return decimal.NewFromInt(2000), nil
		},
	}
	uc := NewUsecase(loans, memberWith(5000), uowmock.New(),
		domain.WeeklyRateModel{}, decimal.NewFromInt(1000), nopLogger())

	elig, err := uc.CheckEligibility(context.Background(), memberID)
	if err != nil {
		t.Fatalf("CheckEligibility err: %v", err)
	}
	if !elig.AvailableLimit.Equal(decimal.NewFromInt(3000)) {
		t.Fatalf("available=%s", elig.AvailableLimit)
	}
	if !elig.CanApply {
		t.Fatal("member with 5000 in contributions should be eligible")
	}
}

func TestCheckEligibility_NegativeClampsToZero(t *testing.T) {
	loans := &loanmock.Repo{
		SumActiveBalanceByMemberFn: func(ctx context.Context, id string) (decimal.Decimal, error) {
			return decimal.NewFromInt(6000), nil
		},
	}
	uc := NewUsecase(loans, memberWith(5000), uowmock.New(),
		domain.WeeklyRateModel{}, decimal.NewFromInt(1000), nopLogger())

	elig, err := uc.CheckEligibility(context.Background(), memberID)
	if err != nil {
		t.Fatalf("CheckEligibility err: %v", err)
	}
	if !elig.AvailableLimit.IsZero() {
		t.Fatalf("available=%s", elig.AvailableLimit)
	}
}

func TestApply_Success(t *testing.T) {
	var created *domain.Loan
	loans := &loanmock.Repo{
		CreateFn: func(ctx context.Context, l *domain.Loan) error {
			created = l
			return nil
		},
	}
	uc := NewUsecase(loans, memberWith(5000), uowmock.New(),
		domain.WeeklyRateModel{}, decimal.NewFromInt(1000), nopLogger())

	dto, err := uc.Apply(context.Background(), ApplyInput{
		MemberID:  memberID,
		Principal: decimal.NewFromInt(1000),
		Term:      1,
		Purpose:   "school fees",
	})
	if err != nil {
		t.Fatalf("Apply err: %v", err)
	}
	if !strings.HasPrefix(dto.LoanID, "LN-") {
		t.Fatalf("loan id=%s", dto.LoanID)
	}
	if !dto.InterestRate.Equal(decimal.NewFromInt(5)) {
		t.Fatalf("rate=%s", dto.InterestRate)
	}
	if !dto.TotalAmount.Equal(decimal.NewFromInt(1050)) {
		t.Fatalf("total=%s", dto.TotalAmount)
	}
	if !dto.Balance.Equal(dto.TotalAmount) {
		t.Fatalf("balance=%s", dto.Balance)
	}
	if created.Status != domain.StatusPending {
		t.Fatalf("status=%s", created.Status)
	}
}

func TestApply_ExceedsLimit(t *testing.T) {
	uc := NewUsecase(&loanmock.Repo{}, memberWith(5000), uowmock.New(),
		domain.WeeklyRateModel{}, decimal.NewFromInt(1000), nopLogger())
	_, err := uc.Apply(context.Background(), ApplyInput{
		MemberID:  memberID,
		Principal: decimal.NewFromInt(6000),
		Term:      2,
	})
	if !errors.Is(err, domain.ErrExceedsLimit) {
		t.Fatalf("want ErrExceedsLimit, got %v", err)
	}
}

func TestApply_IneligibleBelowFloor(t *testing.T) {
	uc := NewUsecase(&loanmock.Repo{}, memberWith(500), uowmock.New(),
		domain.WeeklyRateModel{}, decimal.NewFromInt(1000), nopLogger())
	_, err := uc.Apply(context.Background(), ApplyInput{
		MemberID:  memberID,
		Principal: decimal.NewFromInt(100),
		Term:      1,
	})
	if !errors.Is(err, domain.ErrIneligible) {
		t.Fatalf("want ErrIneligible, got %v", err)
	}
}

func TestApply_InvalidMonthlyTerm(t *testing.T) {
	uc := NewUsecase(&loanmock.Repo{}, memberWith(5000), uowmock.New(),
		domain.MonthlyRateModel{}, decimal.NewFromInt(1000), nopLogger())
	_, err := uc.Apply(context.Background(), ApplyInput{
		MemberID:  memberID,
		Principal: decimal.NewFromInt(100),
		Term:      5,
	})
	if err == nil {
		t.Fatal("term 5 is invalid for the monthly model")
	}
}

func TestApprove_ActivatesAndSetsDueDate(t *testing.T) {
	l := &domain.Loan{
		LoanID:      "LN-A1B2C3D4E5F6",
		MemberID:    memberID,
		Term:        2,
		TotalAmount: decimal.NewFromInt(1100),
		Balance:     decimal.NewFromInt(1100),
		Status:      domain.StatusPending,
	}
	repos := uow.Repos{
		Loans: &loanmock.Repo{
			GetByLoanIDForUpdateFn: func(ctx context.Context, id string) (*domain.Loan, error) {
				return l, nil
			},
		},
	}
	uc := NewUsecase(&loanmock.Repo{}, &membermock.Repo{}, uowmock.Passthrough(repos),
		domain.WeeklyRateModel{}, decimal.NewFromInt(1000), nopLogger())

	dto, err := uc.Approve(context.Background(), l.LoanID, approverID, "ok")
	if err != nil {
		t.Fatalf("Approve err: %v", err)
	}
	if dto.Status != string(domain.StatusActive) {
		t.Fatalf("status=%s", dto.Status)
	}
	if dto.DueDate == nil || dto.ApprovalDate == nil {
		t.Fatal("approval and due dates must be set")
	}
	if got := dto.DueDate.Sub(*dto.ApprovalDate); got != 14*24*time.Hour {
		t.Fatalf("due offset=%v", got)
	}
}

func TestApply_StoresRateModel(t *testing.T) {
	var created *domain.Loan
	loans := &loanmock.Repo{
		CreateFn: func(ctx context.Context, l *domain.Loan) error { created = l; return nil },
	}
	uc := NewUsecase(loans, memberWith(5000), uowmock.New(),
		domain.WeeklyRateModel{}, decimal.NewFromInt(1000), nopLogger())

	dto, err := uc.Apply(context.Background(), ApplyInput{
		MemberID:  memberID,
		Principal: decimal.NewFromInt(1000),
		Term:      1,
	})
	if err != nil {
		t.Fatalf("Apply err: %v", err)
	}
	if created.RateModel != "weekly" || dto.RateModel != "weekly" {
		t.Fatalf("rate model not persisted: created=%q dto=%q", created.RateModel, dto.RateModel)
	}
}

func TestApprove_DueDateFromModelAtApplication(t *testing.T) {
	// Applied under the weekly model; the service has since been switched to
	// monthly. Term 2 must still mean 2 weeks, not 2 months.
	l := &domain.Loan{
		LoanID:      "LN-A1B2C3D4E5F6",
		MemberID:    memberID,
		Term:        2,
		RateModel:   "weekly",
		TotalAmount: decimal.NewFromInt(1100),
		Balance:     decimal.NewFromInt(1100),
		Status:      domain.StatusPending,
	}
	repos := uow.Repos{
		Loans: &loanmock.Repo{
			GetByLoanIDForUpdateFn: func(ctx context.Context, id string) (*domain.Loan, error) {
				return l, nil
			},
		},
	}
	uc := NewUsecase(&loanmock.Repo{}, &membermock.Repo{}, uowmock.Passthrough(repos),
		domain.MonthlyRateModel{}, decimal.NewFromInt(1000), nopLogger())

	dto, err := uc.Approve(context.Background(), l.LoanID, approverID, "ok")
	if err != nil {
		t.Fatalf("Approve err: %v", err)
	}
	if got := dto.DueDate.Sub(*dto.ApprovalDate); got != 14*24*time.Hour {
		t.Fatalf("due offset=%v, want 2 weeks", got)
	}
}

func TestRecordPayment_CompletesLoan(t *testing.T) {
	l := &domain.Loan{
		ID:          7,
		LoanID:      "LN-A1B2C3D4E5F6",
		MemberID:    memberID,
		TotalAmount: decimal.NewFromInt(1050),
		AmountPaid:  decimal.NewFromInt(1000),
		Balance:     decimal.NewFromInt(50),
		Status:      domain.StatusActive,
	}
	var payment *domain.Payment
	repos := uow.Repos{
		Loans: &loanmock.Repo{
			GetByLoanIDForUpdateFn: func(ctx context.Context, id string) (*domain.Loan, error) {
				return l, nil
			},
			CreatePaymentFn: func(ctx context.Context, p *domain.Payment) error {
				payment = p
				return nil
			},
		},
	}
	uc := NewUsecase(&loanmock.Repo{}, &membermock.Repo{}, uowmock.Passthrough(repos),
		domain.WeeklyRateModel{}, decimal.NewFromInt(1000), nopLogger())

	res, err := uc.RecordPayment(context.Background(), l.LoanID, PaymentInput{
		Amount:      decimal.NewFromInt(50),
		PaymentDate: time.Now().UTC(),
		RecordedBy:  approverID,
	})
	if err != nil {
		t.Fatalf("RecordPayment err: %v", err)
	}
	if res.Loan.Status != string(domain.StatusCompleted) {
		t.Fatalf("status=%s", res.Loan.Status)
	}
	if payment == nil || payment.LoanID != l.ID {
		t.Fatalf("payment=%+v", payment)
	}
	if !strings.HasPrefix(res.Payment.PaymentID, "PAY-") {
		t.Fatalf("payment id=%s", res.Payment.PaymentID)
	}
}

func TestRecordPayment_Overpay(t *testing.T) {
	l := &domain.Loan{
		LoanID:      "LN-A1B2C3D4E5F6",
		TotalAmount: decimal.NewFromInt(100),
		Balance:     decimal.NewFromInt(100),
		Status:      domain.StatusActive,
	}
	repos := uow.Repos{
		Loans: &loanmock.Repo{
			GetByLoanIDForUpdateFn: func(ctx context.Context, id string) (*domain.Loan, error) {
				return l, nil
			},
		},
	}
	uc := NewUsecase(&loanmock.Repo{}, &membermock.Repo{}, uowmock.Passthrough(repos),
		domain.WeeklyRateModel{}, decimal.NewFromInt(1000), nopLogger())

	_, err := uc.RecordPayment(context.Background(), l.LoanID, PaymentInput{
		Amount: decimal.NewFromInt(200), PaymentDate: time.Now().UTC(),
	})
	if !errors.Is(err, domain.ErrExceedsBalance) {
		t.Fatalf("want ErrExceedsBalance, got %v", err)
	}
}

func TestSweepOverdue(t *testing.T) {
	now := time.Now().UTC()
	pastDue := now.AddDate(0, 0, -3)
	overdue := domain.Loan{
		LoanID:  "LN-A1B2C3D4E5F6",
		Balance: decimal.NewFromInt(1000),
		Status:  domain.StatusActive,
		DueDate: &pastDue,
	}

	var saved []domain.Loan
	repos := uow.Repos{
		Loans: &loanmock.Repo{
			ListOverdueActiveForUpdateFn: func(ctx context.Context, asOf time.Time) ([]domain.Loan, error) {
				return []domain.Loan{overdue}, nil
			},
			SaveFn: func(ctx context.Context, l *domain.Loan) error {
				saved = append(saved, *l)
				return nil
			},
		},
	}
	uc := NewUsecase(&loanmock.Repo{}, &membermock.Repo{}, uowmock.Passthrough(repos),
		domain.WeeklyRateModel{}, decimal.NewFromInt(1000), nopLogger())

	n, err := uc.SweepOverdue(context.Background())
	if err != nil {
		t.Fatalf("SweepOverdue err: %v", err)
	}
	if n != 1 {
		t.Fatalf("defaulted=%d", n)
	}
	if len(saved) != 1 || saved[0].Status != domain.StatusDefaulted {
		t.Fatalf("saved=%+v", saved)
	}
	// 1000 × 1% × 3 days
	if !saved[0].PenaltyAmount.Equal(decimal.NewFromInt(30)) {
		t.Fatalf("penalty=%s", saved[0].PenaltyAmount)
	}
}

func TestSweepOverdue_NothingToDo(t *testing.T) {
	repos := uow.Repos{
		Loans: &loanmock.Repo{
			ListOverdueActiveForUpdateFn: func(ctx context.Context, asOf time.Time) ([]domain.Loan, error) {
				return nil, nil
			},
			SaveFn: func(ctx context.Context, l *domain.Loan) error {
				t.Fatal("nothing should be saved on an empty sweep")
				return nil
			},
		},
	}
	uc := NewUsecase(&loanmock.Repo{}, &membermock.Repo{}, uowmock.Passthrough(repos),
		domain.WeeklyRateModel{}, decimal.NewFromInt(1000), nopLogger())

	n, err := uc.SweepOverdue(context.Background())
	if err != nil {
		t.Fatalf("SweepOverdue err: %v", err)
	}
	if n != 0 {
		t.Fatalf("defaulted=%d", n)
	}
}
