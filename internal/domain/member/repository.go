package member

import "context"

type Repository interface {
	Create(ctx context.Context, m *Member) error
	GetByMemberID(ctx context.Context, memberID string) (*Member, error)
	// GetByMemberIDForUpdate locks the row; use inside a transaction on every
	// ledger write path.
	GetByMemberIDForUpdate(ctx context.Context, memberID string) (*Member, error)
	GetByEmail(ctx context.Context, email string) (*Member, error)
	ListActive(ctx context.Context) ([]Member, error)
	// ListActiveForUpdate locks every active member row for the duration of a
	// distribution fan-out.
	ListActiveForUpdate(ctx context.Context) ([]Member, error)
	Count(ctx context.Context) (int64, error)
	CountActive(ctx context.Context) (int64, error)
	Save(ctx context.Context, m *Member) error
}
