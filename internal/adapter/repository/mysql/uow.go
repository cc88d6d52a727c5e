package mysql

import (
	"context"

	"gorm.io/gorm"

	"welfare-backend/internal/domain/uow"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := uow.Repos{
			Members:       &MemberRepository{db: tx},
			Contributions: &ContributionRepository{db: tx},
			Loans:         &LoanRepository{db: tx},
			Investments:   &InvestmentRepository{db: tx},
			Milestones:    &MilestoneRepository{db: tx},
		}
		return fn(r)
	})
}
