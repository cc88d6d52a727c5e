package milestone

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	domain "welfare-backend/internal/domain/milestone"
	"welfare-backend/internal/domain/uow"
	"welfare-backend/internal/domain/validation"
	"welfare-backend/pkg/refcode"
)

type CreateInput struct {
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	TargetAmount decimal.Decimal `json:"target_amount"`
	TargetDate   time.Time       `json:"target_date"`
	Priority     string          `json:"priority"`
	CreatedBy    string          `json:"created_by"`
}

type UpdateInput struct {
	Title        *string          `json:"title"`
	Description  *string          `json:"description"`
	TargetAmount *decimal.Decimal `json:"target_amount"`
	TargetDate   *time.Time       `json:"target_date"`
	Priority     *string          `json:"priority"`
	Status       *string          `json:"status"`
}

type MilestoneDTO struct {
	MilestoneID        string          `json:"milestone_id"`
	Title              string          `json:"title"`
	Description        string          `json:"description"`
	TargetAmount       decimal.Decimal `json:"target_amount"`
	CurrentAmount      decimal.Decimal `json:"current_amount"`
	ProgressPercentage decimal.Decimal `json:"progress_percentage"`
	TargetDate         time.Time       `json:"target_date"`
	AchievedDate       *time.Time      `json:"achieved_date,omitempty"`
	Status             string          `json:"status"`
	Priority           string          `json:"priority"`
	CreatedBy          string          `json:"created_by"`
}

var minTarget = decimal.NewFromInt(1000)

type Usecase struct {
	repo domain.Repository
	uow  uow.UnitOfWork
	log  *zap.SugaredLogger
}

func NewUsecase(r domain.Repository, tx uow.UnitOfWork, log *zap.SugaredLogger) *Usecase {
	return &Usecase{repo: r, uow: tx, log: log}
}

func (u *Usecase) Create(ctx context.Context, in CreateInput) (*MilestoneDTO, error) {
	if in.Title == "" {
		return nil, fmt.Errorf("%w: title is required", validation.ErrInvalid)
	}
	if in.TargetAmount.LessThan(minTarget) {
		return nil, fmt.Errorf("%w: target amount must be at least %s", validation.ErrInvalid, minTarget.StringFixed(2))
	}
	prio := domain.Priority(in.Priority)
	switch prio {
	case domain.PriorityLow, domain.PriorityMedium, domain.PriorityHigh, domain.PriorityCritical:
	default:
		return nil, fmt.Errorf("%w: invalid priority %q", validation.ErrInvalid, in.Priority)
	}

	m := &domain.Milestone{
		MilestoneID:   refcode.New(refcode.PrefixMilestone),
		Title:         in.Title,
		Description:   in.Description,
		TargetAmount:  in.TargetAmount.Round(2),
		CurrentAmount: decimal.Zero,
		TargetDate:    in.TargetDate,
		Status:        domain.StatusActive,
		Priority:      prio,
		CreatedBy:     in.CreatedBy,
	}
	if err := u.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	u.log.Infow("milestone created", "milestone_id", m.MilestoneID, "target", m.TargetAmount)
	return toDTO(m), nil
}

func (u *Usecase) Update(ctx context.Context, milestoneID string, in UpdateInput) (*MilestoneDTO, error) {
	return u.mutate(ctx, milestoneID, func(m *domain.Milestone) error {
		if in.Title != nil {
			m.Title = *in.Title
		}
		if in.Description != nil {
			m.Description = *in.Description
		}
		if in.TargetAmount != nil {
			if in.TargetAmount.LessThan(minTarget) {
				return fmt.Errorf("%w: target amount must be at least %s", validation.ErrInvalid, minTarget.StringFixed(2))
			}
			m.TargetAmount = in.TargetAmount.Round(2)
		}
		if in.TargetDate != nil {
			m.TargetDate = *in.TargetDate
		}
		if in.Priority != nil {
			m.Priority = domain.Priority(*in.Priority)
		}
		if in.Status != nil {
			st := domain.Status(*in.Status)
			if st == domain.StatusAchieved && m.AchievedDate == nil {
				now := time.Now().UTC()
				m.AchievedDate = &now
			}
			m.Status = st
		}
		return nil
	})
}

// SetProgress replaces the current amount; reaching the target forces
// achieved status.
func (u *Usecase) SetProgress(ctx context.Context, milestoneID string, amount decimal.Decimal) (*MilestoneDTO, error) {
	if amount.IsNegative() {
		return nil, fmt.Errorf("%w: progress amount must not be negative", validation.ErrInvalid)
	}
	return u.mutate(ctx, milestoneID, func(m *domain.Milestone) error {
		return m.SetProgress(amount.Round(2), time.Now().UTC())
	})
}

func (u *Usecase) AddProgress(ctx context.Context, milestoneID string, amount decimal.Decimal) (*MilestoneDTO, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: progress amount must be positive", validation.ErrInvalid)
	}
	return u.mutate(ctx, milestoneID, func(m *domain.Milestone) error {
		return m.AddProgress(amount.Round(2), time.Now().UTC())
	})
}

func (u *Usecase) Cancel(ctx context.Context, milestoneID string) (*MilestoneDTO, error) {
	return u.mutate(ctx, milestoneID, func(m *domain.Milestone) error {
		return m.Cancel()
	})
}

func (u *Usecase) ListActive(ctx context.Context) ([]MilestoneDTO, error) {
	rows, err := u.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]MilestoneDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *toDTO(&rows[i]))
	}
	return out, nil
}

func (u *Usecase) mutate(ctx context.Context, milestoneID string, fn func(*domain.Milestone) error) (*MilestoneDTO, error) {
	var dto *MilestoneDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		m, err := r.Milestones.GetByMilestoneIDForUpdate(ctx, milestoneID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}
		if err := fn(m); err != nil {
			return err
		}
		if err := r.Milestones.Save(ctx, m); err != nil {
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

func toDTO(m *domain.Milestone) *MilestoneDTO {
	return &MilestoneDTO{
		MilestoneID:        m.MilestoneID,
		Title:              m.Title,
		Description:        m.Description,
		TargetAmount:       m.TargetAmount,
		CurrentAmount:      m.CurrentAmount,
		ProgressPercentage: m.ProgressPercentage(),
		TargetDate:         m.TargetDate,
		AchievedDate:       m.AchievedDate,
		Status:             string(m.Status),
		Priority:           string(m.Priority),
		CreatedBy:          m.CreatedBy,
	}
}
