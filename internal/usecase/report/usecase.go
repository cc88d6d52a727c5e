package report

import (
	"context"

	"github.com/shopspring/decimal"

	"welfare-backend/internal/domain/contribution"
	"welfare-backend/internal/domain/investment"
	"welfare-backend/internal/domain/loan"
	"welfare-backend/internal/domain/member"
)

// DashboardStats are the read-only aggregates shown on the landing page.
type DashboardStats struct {
	ActiveMembers        int64           `json:"active_members"`
	TotalContributions   decimal.Decimal `json:"total_contributions"`
	TotalLoansIssued     decimal.Decimal `json:"total_loans_issued"`
	ActiveLoans          int64           `json:"active_loans"`
	TotalInvestmentValue decimal.Decimal `json:"total_investment_value"`
}

type Usecase struct {
	members  member.Repository
	contribs contribution.Repository
	loans    loan.Repository
	invests  investment.Repository
}

func NewUsecase(members member.Repository, contribs contribution.Repository,
	loans loan.Repository, invests investment.Repository) *Usecase {
	return &Usecase{members: members, contribs: contribs, loans: loans, invests: invests}
}

func (u *Usecase) Dashboard(ctx context.Context) (*DashboardStats, error) {
	activeMembers, err := u.members.CountActive(ctx)
	if err != nil {
		return nil, err
	}
	totalContribs, err := u.contribs.SumApproved(ctx)
	if err != nil {
		return nil, err
	}
	issued, err := u.loans.SumPrincipalIssued(ctx)
	if err != nil {
		return nil, err
	}
	activeLoans, err := u.loans.CountByStatus(ctx, loan.StatusActive)
	if err != nil {
		return nil, err
	}
	investValue, err := u.invests.SumActiveCurrentValue(ctx)
	if err != nil {
		return nil, err
	}
	return &DashboardStats{
		ActiveMembers:        activeMembers,
		TotalContributions:   totalContribs,
		TotalLoansIssued:     issued,
		ActiveLoans:          activeLoans,
		TotalInvestmentValue: investValue,
	}, nil
}
