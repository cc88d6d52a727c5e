package contribution

import (
	"context"

	"github.com/shopspring/decimal"
)

type Repository interface {
	Create(ctx context.Context, c *Contribution) error
	GetByReference(ctx context.Context, referenceCode string) (*Contribution, error)
	GetByReferenceForUpdate(ctx context.Context, referenceCode string) (*Contribution, error)
	ListByMember(ctx context.Context, memberID string) ([]Contribution, error)
	ListPending(ctx context.Context) ([]Contribution, error)
	// SumApprovedByMember returns approved deposits plus interest minus
	// withdrawals for the member; basis for ledger reconciliation.
	SumApprovedByMember(ctx context.Context, memberID string) (decimal.Decimal, error)
	SumApproved(ctx context.Context) (decimal.Decimal, error)
	Save(ctx context.Context, c *Contribution) error
}
