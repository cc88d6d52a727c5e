package member

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	domain "welfare-backend/internal/domain/member"
	"welfare-backend/internal/domain/uow"
	"welfare-backend/internal/domain/validation"
	"welfare-backend/pkg/id"
)

type Usecase struct {
	repo domain.Repository
	uow  uow.UnitOfWork
	log  *zap.SugaredLogger
}

func NewUsecase(r domain.Repository, tx uow.UnitOfWork, log *zap.SugaredLogger) *Usecase {
	return &Usecase{repo: r, uow: tx, log: log}
}

// Register creates a member in the onboarding queue. The first-ever member
// bootstraps the association: auto-admin, auto-approved, immediately active.
func (u *Usecase) Register(ctx context.Context, in RegisterInput) (*MemberDTO, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if name == "" || email == "" {
		return nil, fmt.Errorf("%w: name and email are required", validation.ErrInvalid)
	}

	if _, err := u.repo.GetByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	count, err := u.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	first := count == 0

	m := &domain.Member{
		MemberID:       id.NewID32(),
		Name:           name,
		Email:          email,
		Role:           domain.RoleMember,
		ApprovalStatus: domain.ApprovalPending,
		JoinedAt:       time.Now().UTC(),
	}
	if first {
		m.Role = domain.RoleAdmin
		m.EmailVerified = true
		m.AdminApproved = true
		m.ApprovalStatus = domain.ApprovalApproved
		m.IsActive = true
	}

	if err := u.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	u.log.Infow("member registered", "member_id", m.MemberID, "bootstrap_admin", first)
	return toDTO(m), nil
}

func (u *Usecase) Get(ctx context.Context, memberID string) (*MemberDTO, error) {
	m, err := u.repo.GetByMemberID(ctx, memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return toDTO(m), nil
}

func (u *Usecase) VerifyEmail(ctx context.Context, memberID string) (*MemberDTO, error) {
	return u.mutate(ctx, memberID, func(m *domain.Member) error {
		m.VerifyEmail()
		return nil
	})
}

func (u *Usecase) Approve(ctx context.Context, memberID, actorID string) (*MemberDTO, error) {
	dto, err := u.mutate(ctx, memberID, func(m *domain.Member) error {
		return m.ApproveOnboarding()
	})
	if err == nil {
		u.log.Infow("member approved", "member_id", memberID, "actor_id", actorID)
	}
	return dto, err
}

func (u *Usecase) Reject(ctx context.Context, memberID, actorID, notes string) (*MemberDTO, error) {
	dto, err := u.mutate(ctx, memberID, func(m *domain.Member) error {
		return m.RejectOnboarding(notes)
	})
	if err == nil {
		u.log.Infow("member rejected", "member_id", memberID, "actor_id", actorID)
	}
	return dto, err
}

func (u *Usecase) Resubmit(ctx context.Context, memberID string) (*MemberDTO, error) {
	return u.mutate(ctx, memberID, func(m *domain.Member) error {
		return m.ResubmitOnboarding()
	})
}

func (u *Usecase) Deactivate(ctx context.Context, memberID string) (*MemberDTO, error) {
	return u.mutate(ctx, memberID, func(m *domain.Member) error {
		m.Deactivate()
		return nil
	})
}

func (u *Usecase) Reactivate(ctx context.Context, memberID string) (*MemberDTO, error) {
	return u.mutate(ctx, memberID, func(m *domain.Member) error {
		m.Reactivate()
		return nil
	})
}

// RecomputeBalance reconciles the running ledger against the sum of approved
// contributions. Idempotent; not needed on the hot path.
func (u *Usecase) RecomputeBalance(ctx context.Context, memberID string) (*MemberDTO, error) {
	var dto *MemberDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		m, err := r.Members.GetByMemberIDForUpdate(ctx, memberID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}
		balance, err := r.Contributions.SumApprovedByMember(ctx, memberID)
		if err != nil {
			return err
		}
		m.SetLedger(balance)
		if err := r.Members.Save(ctx, m); err != nil {
			return err
		}
		dto = toDTO(m)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) mutate(ctx context.Context, memberID string, fn func(*domain.Member) error) (*MemberDTO, error) {
	var dto *MemberDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		m, err := r.Members.GetByMemberIDForUpdate(ctx, memberID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}
		if err := fn(m); err != nil {
			return err
		}
		if err := r.Members.Save(ctx, m); err != nil {
			return err
		}
		dto = toDTO(m)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func toDTO(m *domain.Member) *MemberDTO {
	return &MemberDTO{
		MemberID:           m.MemberID,
		Name:               m.Name,
		Email:              m.Email,
		Role:               string(m.Role),
		IsActive:           m.IsActive,
		EmailVerified:      m.EmailVerified,
		AdminApproved:      m.AdminApproved,
		ApprovalStatus:     string(m.ApprovalStatus),
		TotalContributions: m.TotalContributions,
		AvailableLoanLimit: m.AvailableLoanLimit,
		JoinedAt:           m.JoinedAt,
	}
}
