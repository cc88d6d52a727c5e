package uow

import (
	"context"

	"welfare-backend/internal/domain/contribution"
	"welfare-backend/internal/domain/investment"
	"welfare-backend/internal/domain/loan"
	"welfare-backend/internal/domain/member"
	"welfare-backend/internal/domain/milestone"
)

// Repos bundles every repository bound to one transaction.
type Repos struct {
	Members       member.Repository
	Contributions contribution.Repository
	Loans         loan.Repository
	Investments   investment.Repository
	Milestones    milestone.Repository
}

// UnitOfWork serializes a multi-row financial mutation: everything inside fn
// commits together or not at all.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(r Repos) error) error
}
