package mysql

import (
	"context"
	"database/sql"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	contribDomain "welfare-backend/internal/domain/contribution"
)

type ContributionRepository struct{ db *gorm.DB }

func NewContributionRepository(db *gorm.DB) *ContributionRepository {
	return &ContributionRepository{db: db}
}

func (r *ContributionRepository) Create(ctx context.Context, c *contribDomain.Contribution) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *ContributionRepository) Save(ctx context.Context, c *contribDomain.Contribution) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *ContributionRepository) GetByReference(ctx context.Context, referenceCode string) (*contribDomain.Contribution, error) {
	var out contribDomain.Contribution
	res := r.db.WithContext(ctx).Where("reference_code = ?", referenceCode).First(&out)
	return &out, res.Error
}

func (r *ContributionRepository) GetByReferenceForUpdate(ctx context.Context, referenceCode string) (*contribDomain.Contribution, error) {
	var out contribDomain.Contribution
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("reference_code = ?", referenceCode).
		First(&out)
	return &out, res.Error
}

func (r *ContributionRepository) ListByMember(ctx context.Context, memberID string) ([]contribDomain.Contribution, error) {
	var out []contribDomain.Contribution
	res := r.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("transaction_date DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *ContributionRepository) ListPending(ctx context.Context) ([]contribDomain.Contribution, error) {
	var out []contribDomain.Contribution
	res := r.db.WithContext(ctx).
		Where("status = ?", contribDomain.StatusPending).
		Order("transaction_date ASC, id ASC").
		Find(&out)
	return out, res.Error
}

// SumApprovedByMember counts deposits and interest as credits, withdrawals as
// debits. This is the reconciliation basis for the member ledger.
func (r *ContributionRepository) SumApprovedByMember(ctx context.Context, memberID string) (decimal.Decimal, error) {
	var raw sql.NullString
	res := r.db.WithContext(ctx).
		Model(&contribDomain.Contribution{}).
		Select("COALESCE(SUM(CASE WHEN type = ? THEN -amount ELSE amount END), 0)", contribDomain.TypeWithdrawal).
		Where("member_id = ? AND status = ?", memberID, contribDomain.StatusApproved).
		Scan(&raw)
	if res.Error != nil {
		return decimal.Zero, res.Error
	}
	return parseSum(raw)
}

func (r *ContributionRepository) SumApproved(ctx context.Context) (decimal.Decimal, error) {
	var raw sql.NullString
	res := r.db.WithContext(ctx).
		Model(&contribDomain.Contribution{}).
		Select("COALESCE(SUM(CASE WHEN type = ? THEN -amount ELSE amount END), 0)", contribDomain.TypeWithdrawal).
		Where("status = ?", contribDomain.StatusApproved).
		Scan(&raw)
	if res.Error != nil {
		return decimal.Zero, res.Error
	}
	return parseSum(raw)
}

func parseSum(raw sql.NullString) (decimal.Decimal, error) {
	if !raw.Valid || raw.String == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(raw.String)
}
