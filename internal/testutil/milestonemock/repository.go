package milestonemock

import (
	"context"

	domain "welfare-backend/internal/domain/milestone"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock satisfying milestone.Repository.
type Repo struct {
	CreateFn                    func(ctx context.Context, m *domain.Milestone) error
	GetByMilestoneIDFn          func(ctx context.Context, milestoneID string) (*domain.Milestone, error)
	GetByMilestoneIDForUpdateFn func(ctx context.Context, milestoneID string) (*domain.Milestone, error)
	ListActiveFn                func(ctx context.Context) ([]domain.Milestone, error)
	SaveFn                      func(ctx context.Context, m *domain.Milestone) error
}

func (m *Repo) Create(ctx context.Context, mm *domain.Milestone) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, mm)
	}
	return nil
}

func (m *Repo) GetByMilestoneID(ctx context.Context, milestoneID string) (*domain.Milestone, error) {
	if m.GetByMilestoneIDFn != nil {
		return m.GetByMilestoneIDFn(ctx, milestoneID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByMilestoneIDForUpdate(ctx context.Context, milestoneID string) (*domain.Milestone, error) {
	if m.GetByMilestoneIDForUpdateFn != nil {
		return m.GetByMilestoneIDForUpdateFn(ctx, milestoneID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListActive(ctx context.Context) ([]domain.Milestone, error) {
	if m.ListActiveFn != nil {
		return m.ListActiveFn(ctx)
	}
	return nil, nil
}

func (m *Repo) Save(ctx context.Context, mm *domain.Milestone) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, mm)
	}
	return nil
}
