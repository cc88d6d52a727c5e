package loan

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	domain "welfare-backend/internal/domain/loan"
	memberDomain "welfare-backend/internal/domain/member"
	"welfare-backend/internal/domain/uow"
	"welfare-backend/internal/domain/validation"
	"welfare-backend/pkg/refcode"
)

type Usecase struct {
	loans   domain.Repository
	members memberDomain.Repository
	uow     uow.UnitOfWork
	rates   domain.RateModel
	// minContribution is the single source of truth for the eligibility
	// floor; the legacy code had it duplicated (and drifting) per call site.
	minContribution decimal.Decimal
	log             *zap.SugaredLogger
}

func NewUsecase(loans domain.Repository, members memberDomain.Repository, tx uow.UnitOfWork,
	rates domain.RateModel, minContribution decimal.Decimal, log *zap.SugaredLogger) *Usecase {
	return &Usecase{loans: loans, members: members, uow: tx, rates: rates, minContribution: minContribution, log: log}
}

// CheckEligibility computes available limit as total contributions minus the
// balance outstanding on active loans.
func (u *Usecase) CheckEligibility(ctx context.Context, memberID string) (*Eligibility, error) {
	m, err := u.members.GetByMemberID(ctx, memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, memberDomain.ErrNotFound
		}
		return nil, err
	}
	activeBalance, err := u.loans.SumActiveBalanceByMember(ctx, memberID)
	if err != nil {
		return nil, err
	}
	available := m.TotalContributions.Sub(activeBalance)
	if available.IsNegative() {
		available = decimal.Zero
	}
	return &Eligibility{
		TotalContributions: m.TotalContributions,
		ActiveLoanBalance:  activeBalance,
		AvailableLimit:     available,
		MaxLoanAmount:      available,
		CanApply:           m.IsActive && m.TotalContributions.GreaterThanOrEqual(u.minContribution),
	}, nil
}

// Apply creates a pending loan with interest terms derived once, here, by the
// configured rate model. They are never user-editable afterward.
func (u *Usecase) Apply(ctx context.Context, in ApplyInput) (*LoanDTO, error) {
	if in.Principal.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: principal must be positive", validation.ErrInvalid)
	}
	if !u.rates.ValidTerm(in.Term) {
		return nil, fmt.Errorf("%w: invalid term %d for the %s rate model", validation.ErrInvalid, in.Term, u.rates.Name())
	}

	elig, err := u.CheckEligibility(ctx, in.MemberID)
	if err != nil {
		return nil, err
	}
	if !elig.CanApply {
		return nil, fmt.Errorf("%w: at least %s in contributions required",
			domain.ErrIneligible, u.minContribution.StringFixed(2))
	}
	if in.Principal.GreaterThan(elig.MaxLoanAmount) {
		return nil, fmt.Errorf("%w: maximum eligibility is %s",
			domain.ErrExceedsLimit, elig.MaxLoanAmount.StringFixed(2))
	}

	principal := in.Principal.Round(2)
	rate, interest := u.rates.Compute(principal, in.Term)
	total := principal.Add(interest)

	l := &domain.Loan{
		LoanID:                refcode.New(refcode.PrefixLoan),
		MemberID:              in.MemberID,
		Principal:             principal,
		Term:                  in.Term,
		RateModel:             u.rates.Name(),
		InterestRate:          rate,
		TotalAmount:           total,
		AmountPaid:            decimal.Zero,
		Balance:               total,
		Status:                domain.StatusPending,
		ApplicationDate:       time.Now().UTC(),
		Purpose:               in.Purpose,
		GuarantorName:         in.GuarantorName,
		GuarantorPhone:        in.GuarantorPhone,
		GuarantorRelationship: in.GuarantorRelationship,
	}
	if err := u.loans.Create(ctx, l); err != nil {
		return nil, err
	}
	u.log.Infow("loan application created",
		"loan_id", l.LoanID, "member_id", l.MemberID, "principal", principal, "term", in.Term, "rate", rate)
	return toDTO(l), nil
}

// Approve activates a pending loan and sets its due date from the approval
// instant. One atomic transition; there is no intermediate approved state on
// the wire.
func (u *Usecase) Approve(ctx context.Context, loanID, approverID, notes string) (*LoanDTO, error) {
	var dto *LoanDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		l, err := r.Loans.GetByLoanIDForUpdate(ctx, loanID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}
		now := time.Now().UTC()
		// Term is stored in the unit of the model in force at application
		// time, so the due date must come from that model, not whatever is
		// configured today.
		model := u.rates
		if l.RateModel != "" {
			model = domain.ModelByName(l.RateModel)
		}
		if err := l.Approve(approverID, notes, now, model.DueDate(now, l.Term)); err != nil {
			return err
		}
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		dto = toDTO(l)
		return nil
	})
	if err != nil {
		return nil, err
	}
	u.log.Infow("loan approved", "loan_id", loanID, "approver_id", approverID, "due_date", dto.DueDate)
	return dto, nil
}

func (u *Usecase) Reject(ctx context.Context, loanID, approverID, notes string) (*LoanDTO, error) {
	var dto *LoanDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		l, err := r.Loans.GetByLoanIDForUpdate(ctx, loanID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}
		if err := l.Reject(approverID, notes); err != nil {
			return err
		}
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		dto = toDTO(l)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// RecordPayment inserts the payment and cascades it into the loan's
// amount_paid/balance/status in one transaction.
func (u *Usecase) RecordPayment(ctx context.Context, loanID string, in PaymentInput) (*PaymentResult, error) {
	if in.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: payment amount must be positive", validation.ErrInvalid)
	}
	var out *PaymentResult
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		l, err := r.Loans.GetByLoanIDForUpdate(ctx, loanID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}
		amount := in.Amount.Round(2)
		if err := l.ApplyPayment(amount, in.PaymentDate); err != nil {
			return err
		}
		p := &domain.Payment{
			PaymentID:     refcode.New(refcode.PrefixPayment),
			LoanID:        l.ID,
			Amount:        amount,
			PaymentDate:   in.PaymentDate,
			PaymentMethod: in.PaymentMethod,
			RecordedBy:    in.RecordedBy,
		}
		if err := r.Loans.CreatePayment(ctx, p); err != nil {
			return err
		}
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		out = &PaymentResult{
			Payment: PaymentDTO{
				PaymentID:     p.PaymentID,
				LoanID:        l.LoanID,
				Amount:        p.Amount,
				PaymentDate:   p.PaymentDate,
				PaymentMethod: p.PaymentMethod,
				RecordedBy:    p.RecordedBy,
			},
			Loan: *toDTO(l),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	u.log.Infow("loan payment recorded",
		"loan_id", loanID, "payment_id", out.Payment.PaymentID, "amount", out.Payment.Amount,
		"balance", out.Loan.Balance, "status", out.Loan.Status)
	return out, nil
}

// SweepOverdue defaults every active loan past its due date, recording the
// penalty accrued so far. Idempotent: a second sweep with no newly overdue
// loans changes nothing, because defaulted loans no longer match the scan.
func (u *Usecase) SweepOverdue(ctx context.Context) (int, error) {
	now := time.Now().UTC()
	var defaulted int
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		overdue, err := r.Loans.ListOverdueActiveForUpdate(ctx, now)
		if err != nil {
			return err
		}
		for i := range overdue {
			l := &overdue[i]
			days, penalty := l.OverduePenalty(now)
			if days == 0 {
				continue
			}
			if err := l.MarkDefaulted(days, penalty); err != nil {
				return err
			}
			if err := r.Loans.Save(ctx, l); err != nil {
				return err
			}
			defaulted++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	if defaulted > 0 {
		u.log.Infow("overdue sweep complete", "defaulted", defaulted)
	}
	return defaulted, nil
}

func (u *Usecase) Get(ctx context.Context, loanID string) (*LoanDTO, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return toDTO(l), nil
}

func (u *Usecase) ListByMember(ctx context.Context, memberID string) ([]LoanDTO, error) {
	rows, err := u.loans.ListByMember(ctx, memberID)
	if err != nil {
		return nil, err
	}
	out := make([]LoanDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *toDTO(&rows[i]))
	}
	return out, nil
}

// InterestReport aggregates interest earned per month over completed loans.
func (u *Usecase) InterestReport(ctx context.Context) ([]domain.InterestReportRow, error) {
	return u.loans.InterestReport(ctx)
}

func toDTO(l *domain.Loan) *LoanDTO {
	return &LoanDTO{
		LoanID:          l.LoanID,
		MemberID:        l.MemberID,
		Principal:       l.Principal,
		Term:            l.Term,
		RateModel:       l.RateModel,
		InterestRate:    l.InterestRate,
		TotalAmount:     l.TotalAmount,
		AmountPaid:      l.AmountPaid,
		Balance:         l.Balance,
		Status:          string(l.Status),
		ApplicationDate: l.ApplicationDate,
		ApprovalDate:    l.ApprovalDate,
		DueDate:         l.DueDate,
		CompletionDate:  l.CompletionDate,
		PenaltyDays:     l.PenaltyDays,
		PenaltyAmount:   l.PenaltyAmount,
		Purpose:         l.Purpose,
	}
}
