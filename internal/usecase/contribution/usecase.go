package contribution

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	domain "welfare-backend/internal/domain/contribution"
	memberDomain "welfare-backend/internal/domain/member"
	"welfare-backend/internal/domain/uow"
	"welfare-backend/internal/domain/validation"
	"welfare-backend/pkg/refcode"
)

type Usecase struct {
	contribs  domain.Repository
	members   memberDomain.Repository
	uow       uow.UnitOfWork
	minAmount decimal.Decimal
	log       *zap.SugaredLogger
}

func NewUsecase(contribs domain.Repository, members memberDomain.Repository, tx uow.UnitOfWork, minAmount decimal.Decimal, log *zap.SugaredLogger) *Usecase {
	return &Usecase{contribs: contribs, members: members, uow: tx, minAmount: minAmount, log: log}
}

// Submit creates a pending deposit or withdrawal request. Interest rows are
// never submitted here; the distribution engine writes them directly.
func (u *Usecase) Submit(ctx context.Context, in SubmitInput) (*ContributionDTO, error) {
	typ := domain.Type(in.Type)
	if typ != domain.TypeDeposit && typ != domain.TypeWithdrawal {
		return nil, fmt.Errorf("%w: type must be deposit or withdrawal", validation.ErrInvalid)
	}
	if in.Amount.LessThan(u.minAmount) {
		return nil, fmt.Errorf("%w: amount must be at least %s", validation.ErrInvalid, u.minAmount.StringFixed(2))
	}

	m, err := u.members.GetByMemberID(ctx, in.MemberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, memberDomain.ErrNotFound
		}
		return nil, err
	}
	if !m.IsActive {
		return nil, memberDomain.ErrInactive
	}

	c := &domain.Contribution{
		ReferenceCode:   refcode.New(refcode.PrefixContribution),
		MemberID:        m.MemberID,
		Amount:          in.Amount.Round(2),
		Type:            typ,
		Status:          domain.StatusPending,
		Description:     in.Description,
		TransactionDate: time.Now().UTC(),
	}
	if err := u.contribs.Create(ctx, c); err != nil {
		return nil, err
	}
	u.log.Infow("contribution submitted",
		"reference", c.ReferenceCode, "member_id", c.MemberID, "type", c.Type, "amount", c.Amount)
	return toDTO(c), nil
}

// Approve flips a pending contribution to approved and moves the member's
// ledger in the same transaction. A crash between the two writes must never
// leave the ledger inconsistent, so both happen under one uow tx with the
// member row locked.
func (u *Usecase) Approve(ctx context.Context, referenceCode, approverID string) (*ApprovalResult, error) {
	var out *ApprovalResult
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		c, err := r.Contributions.GetByReferenceForUpdate(ctx, referenceCode)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}
		m, err := r.Members.GetByMemberIDForUpdate(ctx, c.MemberID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return memberDomain.ErrNotFound
			}
			return err
		}

		if err := c.Approve(approverID, time.Now().UTC()); err != nil {
			return err
		}
		switch c.Type {
		case domain.TypeDeposit, domain.TypeInterest:
			m.CreditLedger(c.Amount)
		case domain.TypeWithdrawal:
			if err := m.DebitLedger(c.Amount); err != nil {
				return err
			}
		}

		if err := r.Contributions.Save(ctx, c); err != nil {
			return err
		}
		if err := r.Members.Save(ctx, m); err != nil {
			return err
		}
		out = &ApprovalResult{
			Contribution:       *toDTO(c),
			TotalContributions: m.TotalContributions,
			AvailableLoanLimit: m.AvailableLoanLimit,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	u.log.Infow("contribution approved", "reference", referenceCode, "approver_id", approverID)
	return out, nil
}

// Reject terminates a pending contribution. No ledger effect.
func (u *Usecase) Reject(ctx context.Context, referenceCode, approverID, reason string) (*ContributionDTO, error) {
	var dto *ContributionDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		c, err := r.Contributions.GetByReferenceForUpdate(ctx, referenceCode)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}
		if err := c.Reject(approverID, reason, time.Now().UTC()); err != nil {
			return err
		}
		if err := r.Contributions.Save(ctx, c); err != nil {
			return err
		}
		dto = toDTO(c)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) ListByMember(ctx context.Context, memberID string) ([]ContributionDTO, error) {
	rows, err := u.contribs.ListByMember(ctx, memberID)
	if err != nil {
		return nil, err
	}
	return toDTOs(rows), nil
}

func (u *Usecase) ListPending(ctx context.Context) ([]ContributionDTO, error) {
	rows, err := u.contribs.ListPending(ctx)
	if err != nil {
		return nil, err
	}
	return toDTOs(rows), nil
}

func toDTO(c *domain.Contribution) *ContributionDTO {
	return &ContributionDTO{
		ReferenceCode:   c.ReferenceCode,
		MemberID:        c.MemberID,
		Amount:          c.Amount,
		Type:            string(c.Type),
		Status:          string(c.Status),
		Description:     c.Description,
		TransactionDate: c.TransactionDate,
		ApprovedBy:      c.ApprovedBy,
		ApprovedAt:      c.ApprovedAt,
	}
}

func toDTOs(rows []domain.Contribution) []ContributionDTO {
	out := make([]ContributionDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *toDTO(&rows[i]))
	}
	return out
}
