package milestone

import "context"

type Repository interface {
	Create(ctx context.Context, m *Milestone) error
	GetByMilestoneID(ctx context.Context, milestoneID string) (*Milestone, error)
	GetByMilestoneIDForUpdate(ctx context.Context, milestoneID string) (*Milestone, error)
	ListActive(ctx context.Context) ([]Milestone, error)
	Save(ctx context.Context, m *Milestone) error
}
