package investment

import (
	"context"

	"github.com/shopspring/decimal"
)

type Repository interface {
	Create(ctx context.Context, i *Investment) error
	GetByReference(ctx context.Context, referenceCode string) (*Investment, error)
	GetByReferenceForUpdate(ctx context.Context, referenceCode string) (*Investment, error)
	List(ctx context.Context) ([]Investment, error)
	Save(ctx context.Context, i *Investment) error

	CreateDistribution(ctx context.Context, d *Distribution) error
	ListDistributionsByInvestment(ctx context.Context, investmentNumericID uint64) ([]Distribution, error)
	ListDistributionsByMember(ctx context.Context, memberID string) ([]Distribution, error)

	SumActiveCurrentValue(ctx context.Context) (decimal.Decimal, error)
}
