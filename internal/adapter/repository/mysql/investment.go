package mysql

import (
	"context"
	"database/sql"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	investDomain "welfare-backend/internal/domain/investment"
)

type InvestmentRepository struct{ db *gorm.DB }

func NewInvestmentRepository(db *gorm.DB) *InvestmentRepository {
	return &InvestmentRepository{db: db}
}

func (r *InvestmentRepository) Create(ctx context.Context, i *investDomain.Investment) error {
	return r.db.WithContext(ctx).Create(i).Error
}

func (r *InvestmentRepository) Save(ctx context.Context, i *investDomain.Investment) error {
	return r.db.WithContext(ctx).Save(i).Error
}

func (r *InvestmentRepository) GetByReference(ctx context.Context, referenceCode string) (*investDomain.Investment, error) {
	var out investDomain.Investment
	res := r.db.WithContext(ctx).Where("reference_code = ?", referenceCode).First(&out)
	return &out, res.Error
}

func (r *InvestmentRepository) GetByReferenceForUpdate(ctx context.Context, referenceCode string) (*investDomain.Investment, error) {
	var out investDomain.Investment
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("reference_code = ?", referenceCode).
		First(&out)
	return &out, res.Error
}

func (r *InvestmentRepository) List(ctx context.Context) ([]investDomain.Investment, error) {
	var out []investDomain.Investment
	res := r.db.WithContext(ctx).Order("investment_date DESC, id DESC").Find(&out)
	return out, res.Error
}

func (r *InvestmentRepository) CreateDistribution(ctx context.Context, d *investDomain.Distribution) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *InvestmentRepository) ListDistributionsByInvestment(ctx context.Context, investmentNumericID uint64) ([]investDomain.Distribution, error) {
	var out []investDomain.Distribution
	res := r.db.WithContext(ctx).
		Where("investment_id = ?", investmentNumericID).
		Order("distribution_date DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *InvestmentRepository) ListDistributionsByMember(ctx context.Context, memberID string) ([]investDomain.Distribution, error) {
	var out []investDomain.Distribution
	res := r.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("distribution_date DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *InvestmentRepository) SumActiveCurrentValue(ctx context.Context) (decimal.Decimal, error) {
	var raw sql.NullString
	res := r.db.WithContext(ctx).
		Model(&investDomain.Investment{}).
		Select("COALESCE(SUM(current_value), 0)").
		Where("status = ?", investDomain.StatusActive).
		Scan(&raw)
	if res.Error != nil {
		return decimal.Zero, res.Error
	}
	return parseSum(raw)
}
