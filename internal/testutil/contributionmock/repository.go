package contributionmock

import (
	"context"

	"github.com/shopspring/decimal"

	domain "welfare-backend/internal/domain/contribution"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock satisfying contribution.Repository.
type Repo struct {
	CreateFn                  func(ctx context.Context, c *domain.Contribution) error
	GetByReferenceFn          func(ctx context.Context, referenceCode string) (*domain.Contribution, error)
	GetByReferenceForUpdateFn func(ctx context.Context, referenceCode string) (*domain.Contribution, error)
	ListByMemberFn            func(ctx context.Context, memberID string) ([]domain.Contribution, error)
	ListPendingFn             func(ctx context.Context) ([]domain.Contribution, error)
	SumApprovedByMemberFn     func(ctx context.Context, memberID string) (decimal.Decimal, error)
	SumApprovedFn             func(ctx context.Context) (decimal.Decimal, error)
	SaveFn                    func(ctx context.Context, c *domain.Contribution) error
}

func (m *Repo) Create(ctx context.Context, c *domain.Contribution) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}

func (m *Repo) GetByReference(ctx context.Context, referenceCode string) (*domain.Contribution, error) {
	if m.GetByReferenceFn != nil {
		return m.GetByReferenceFn(ctx, referenceCode)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByReferenceForUpdate(ctx context.Context, referenceCode string) (*domain.Contribution, error) {
	if m.GetByReferenceForUpdateFn != nil {
		return m.GetByReferenceForUpdateFn(ctx, referenceCode)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByMember(ctx context.Context, memberID string) ([]domain.Contribution, error) {
	if m.ListByMemberFn != nil {
		return m.ListByMemberFn(ctx, memberID)
	}
	return nil, nil
}

func (m *Repo) ListPending(ctx context.Context) ([]domain.Contribution, error) {
	if m.ListPendingFn != nil {
		return m.ListPendingFn(ctx)
	}
	return nil, nil
}

func (m *Repo) SumApprovedByMember(ctx context.Context, memberID string) (decimal.Decimal, error) {
	if m.SumApprovedByMemberFn != nil {
		return m.SumApprovedByMemberFn(ctx, memberID)
	}
	return decimal.Zero, nil
}

func (m *Repo) SumApproved(ctx context.Context) (decimal.Decimal, error) {
	if m.SumApprovedFn != nil {
		return m.SumApprovedFn(ctx)
	}
	return decimal.Zero, nil
}

func (m *Repo) Save(ctx context.Context, c *domain.Contribution) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, c)
	}
	return nil
}
