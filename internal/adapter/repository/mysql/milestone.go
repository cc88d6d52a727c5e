package mysql

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	milestoneDomain "welfare-backend/internal/domain/milestone"
)

type MilestoneRepository struct{ db *gorm.DB }

func NewMilestoneRepository(db *gorm.DB) *MilestoneRepository {
	return &MilestoneRepository{db: db}
}

func (r *MilestoneRepository) Create(ctx context.Context, m *milestoneDomain.Milestone) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *MilestoneRepository) Save(ctx context.Context, m *milestoneDomain.Milestone) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *MilestoneRepository) GetByMilestoneID(ctx context.Context, milestoneID string) (*milestoneDomain.Milestone, error) {
	var out milestoneDomain.Milestone
	res := r.db.WithContext(ctx).Where("milestone_id = ?", milestoneID).First(&out)
	return &out, res.Error
}

func (r *MilestoneRepository) GetByMilestoneIDForUpdate(ctx context.Context, milestoneID string) (*milestoneDomain.Milestone, error) {
	var out milestoneDomain.Milestone
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("milestone_id = ?", milestoneID).
		First(&out)
	return &out, res.Error
}

func (r *MilestoneRepository) ListActive(ctx context.Context) ([]milestoneDomain.Milestone, error) {
	var out []milestoneDomain.Milestone
	res := r.db.WithContext(ctx).
		Where("status = ?", milestoneDomain.StatusActive).
		Order("target_date ASC").
		Find(&out)
	return out, res.Error
}
