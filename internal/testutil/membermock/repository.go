package membermock

import (
	"context"

	domain "welfare-backend/internal/domain/member"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock satisfying member.Repository. Fill in the
// fields a test needs; unfilled ones return zero values or context.Canceled.
type Repo struct {
	CreateFn                 func(ctx context.Context, m *domain.Member) error
	GetByMemberIDFn          func(ctx context.Context, memberID string) (*domain.Member, error)
	GetByMemberIDForUpdateFn func(ctx context.Context, memberID string) (*domain.Member, error)
	GetByEmailFn             func(ctx context.Context, email string) (*domain.Member, error)
	ListActiveFn             func(ctx context.Context) ([]domain.Member, error)
	ListActiveForUpdateFn    func(ctx context.Context) ([]domain.Member, error)
	CountFn                  func(ctx context.Context) (int64, error)
	CountActiveFn            func(ctx context.Context) (int64, error)
	SaveFn                   func(ctx context.Context, m *domain.Member) error
}

func (m *Repo) Create(ctx context.Context, mm *domain.Member) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, mm)
	}
	return nil
}

func (m *Repo) GetByMemberID(ctx context.Context, memberID string) (*domain.Member, error) {
	if m.GetByMemberIDFn != nil {
		return m.GetByMemberIDFn(ctx, memberID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByMemberIDForUpdate(ctx context.Context, memberID string) (*domain.Member, error) {
	if m.GetByMemberIDForUpdateFn != nil {
		return m.GetByMemberIDForUpdateFn(ctx, memberID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByEmail(ctx context.Context, email string) (*domain.Member, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return nil, context.Canceled
}

func (m *Repo) ListActive(ctx context.Context) ([]domain.Member, error) {
	if m.ListActiveFn != nil {
		return m.ListActiveFn(ctx)
	}
	return nil, nil
}

func (m *Repo) ListActiveForUpdate(ctx context.Context) ([]domain.Member, error) {
	if m.ListActiveForUpdateFn != nil {
		return m.ListActiveForUpdateFn(ctx)
	}
	return nil, nil
}

func (m *Repo) Count(ctx context.Context) (int64, error) {
	if m.CountFn != nil {
		return m.CountFn(ctx)
	}
	return 0, nil
}

func (m *Repo) CountActive(ctx context.Context) (int64, error) {
	if m.CountActiveFn != nil {
		return m.CountActiveFn(ctx)
	}
	return 0, nil
}

func (m *Repo) Save(ctx context.Context, mm *domain.Member) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, mm)
	}
	return nil
}
