package investmentmock

import (
	"context"

	"github.com/shopspring/decimal"

	domain "welfare-backend/internal/domain/investment"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock satisfying investment.Repository.
type Repo struct {
	CreateFn                        func(ctx context.Context, i *domain.Investment) error
	GetByReferenceFn                func(ctx context.Context, referenceCode string) (*domain.Investment, error)
	GetByReferenceForUpdateFn       func(ctx context.Context, referenceCode string) (*domain.Investment, error)
	ListFn                          func(ctx context.Context) ([]domain.Investment, error)
	SaveFn                          func(ctx context.Context, i *domain.Investment) error
	CreateDistributionFn            func(ctx context.Context, d *domain.Distribution) error
	ListDistributionsByInvestmentFn func(ctx context.Context, investmentNumericID uint64) ([]domain.Distribution, error)
	ListDistributionsByMemberFn     func(ctx context.Context, memberID string) ([]domain.Distribution, error)
	SumActiveCurrentValueFn         func(ctx context.Context) (decimal.Decimal, error)
}

func (m *Repo) Create(ctx context.Context, i *domain.Investment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, i)
	}
	return nil
}

func (m *Repo) GetByReference(ctx context.Context, referenceCode string) (*domain.Investment, error) {
	if m.GetByReferenceFn != nil {
		return m.GetByReferenceFn(ctx, referenceCode)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByReferenceForUpdate(ctx context.Context, referenceCode string) (*domain.Investment, error) {
	if m.GetByReferenceForUpdateFn != nil {
		return m.GetByReferenceForUpdateFn(ctx, referenceCode)
	}
	return nil, context.Canceled
}

func (m *Repo) List(ctx context.Context) ([]domain.Investment, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *Repo) Save(ctx context.Context, i *domain.Investment) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, i)
	}
	return nil
}

func (m *Repo) CreateDistribution(ctx context.Context, d *domain.Distribution) error {
	if m.CreateDistributionFn != nil {
		return m.CreateDistributionFn(ctx, d)
	}
	return nil
}

func (m *Repo) ListDistributionsByInvestment(ctx context.Context, investmentNumericID uint64) ([]domain.Distribution, error) {
	if m.ListDistributionsByInvestmentFn != nil {
		return m.ListDistributionsByInvestmentFn(ctx, investmentNumericID)
	}
	return nil, nil
}

func (m *Repo) ListDistributionsByMember(ctx context.Context, memberID string) ([]domain.Distribution, error) {
	if m.ListDistributionsByMemberFn != nil {
		return m.ListDistributionsByMemberFn(ctx, memberID)
	}
	return nil, nil
}

func (m *Repo) SumActiveCurrentValue(ctx context.Context) (decimal.Decimal, error) {
	if m.SumActiveCurrentValueFn != nil {
		return m.SumActiveCurrentValueFn(ctx)
	}
	return decimal.Zero, nil
}
