package investment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"welfare-backend/internal/config"
	contribDomain "welfare-backend/internal/domain/contribution"
	domain "welfare-backend/internal/domain/investment"
	"welfare-backend/internal/domain/uow"
	"welfare-backend/internal/domain/validation"
	"welfare-backend/pkg/refcode"
)

var (
	// Management fee: 2% annual, amortized monthly. Divided by 12 regardless
	// of the actual elapsed period between distributions.
	annualFeeRate = decimal.RequireFromString("0.02")
	twelve        = decimal.NewFromInt(12)
	taxRate       = decimal.RequireFromString("0.15")
	hundred       = decimal.NewFromInt(100)
)

type Usecase struct {
	invests       domain.Repository
	uow           uow.UnitOfWork
	taxBase       config.TaxBase
	minInvestment decimal.Decimal
	log           *zap.SugaredLogger
}

func NewUsecase(invests domain.Repository, tx uow.UnitOfWork, taxBase config.TaxBase,
	minInvestment decimal.Decimal, log *zap.SugaredLogger) *Usecase {
	return &Usecase{invests: invests, uow: tx, taxBase: taxBase, minInvestment: minInvestment, log: log}
}

// Create records a real-world pooled investment. Current value starts at the
// principal; the standing 9.75% rate applies when none is given.
func (u *Usecase) Create(ctx context.Context, in CreateInput) (*InvestmentDTO, error) {
	if in.Amount.LessThan(u.minInvestment) {
		return nil, fmt.Errorf("%w: investment amount must be at least %s", validation.ErrInvalid, u.minInvestment.StringFixed(2))
	}
	rate := in.InterestRate
	if rate.LessThanOrEqual(decimal.Zero) {
		rate = domain.DefaultInterestRate
	}
	if in.MaturityDate != nil && !in.MaturityDate.After(in.InvestmentDate) {
		return nil, fmt.Errorf("%w: maturity date must be after investment date", validation.ErrInvalid)
	}

	inv := &domain.Investment{
		ReferenceCode:  refcode.New(refcode.PrefixInvestment),
		Amount:         in.Amount.Round(2),
		InterestRate:   rate,
		CurrentValue:   in.Amount.Round(2),
		InvestmentDate: in.InvestmentDate,
		MaturityDate:   in.MaturityDate,
		Status:         domain.StatusActive,
		Notes:          in.Notes,
		RecordedBy:     in.RecordedBy,
	}
	if err := u.invests.Create(ctx, inv); err != nil {
		return nil, err
	}
	u.log.Infow("investment recorded", "reference", inv.ReferenceCode, "amount", inv.Amount)
	return toDTO(inv), nil
}

// Distribute converts a reported gross interest figure into per-member net
// payouts. The whole fan-out (N distribution rows, N interest contributions,
// N ledger credits, one investment update) runs in a single transaction with
// the investment and every active member row locked.
func (u *Usecase) Distribute(ctx context.Context, referenceCode string, in DistributeInput) (*DistributeResult, error) {
	if in.GrossInterest.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: gross interest must be positive", validation.ErrInvalid)
	}
	gross := in.GrossInterest.Round(2)

	var out *DistributeResult
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		inv, err := r.Investments.GetByReferenceForUpdate(ctx, referenceCode)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}
		if inv.Status != domain.StatusActive {
			return domain.ErrClosed
		}

		members, err := r.Members.ListActiveForUpdate(ctx)
		if err != nil {
			return err
		}
		if len(members) == 0 {
			return domain.ErrNoActiveMembers
		}
		n := decimal.NewFromInt(int64(len(members)))

		fee := gross.Mul(annualFeeRate).Div(twelve).Round(2)
		var tax decimal.Decimal
		if u.taxBase == config.TaxBaseNetOfFee {
			tax = gross.Sub(fee).Mul(taxRate).Round(2)
		} else {
			tax = gross.Mul(taxRate).Round(2)
		}
		net := gross.Sub(fee).Sub(tax)
		share := net.Div(n).Round(2)
		sharePct := hundred.Div(n).Round(4)
		month := in.DistributionDate.Format("2006-01")

		result := &DistributeResult{
			GrossInterest:  gross,
			ManagementFee:  fee,
			WithholdingTax: tax,
			NetInterest:    net,
			MemberCount:    len(members),
		}

		for i := range members {
			m := &members[i]
			d := &domain.Distribution{
				InvestmentID:      inv.ID,
				MemberID:          m.MemberID,
				GrossInterest:     gross,
				ManagementFee:     fee,
				WithholdingTax:    tax,
				NetAmount:         net,
				MemberShare:       share,
				SharePercentage:   sharePct,
				DistributionDate:  in.DistributionDate,
				DistributionMonth: month,
				Status:            domain.DistributionDistributed,
				ProcessedBy:       in.ProcessorID,
			}
			if err := r.Investments.CreateDistribution(ctx, d); err != nil {
				return err
			}

			now := time.Now().UTC()
			c := &contribDomain.Contribution{
				ReferenceCode:   refcode.New(refcode.PrefixInterest),
				MemberID:        m.MemberID,
				Amount:          share,
				Type:            contribDomain.TypeInterest,
				Status:          contribDomain.StatusApproved,
				Description:     "interest distribution for " + in.DistributionDate.Format("January 2006"),
				TransactionDate: in.DistributionDate,
				ApprovedBy:      in.ProcessorID,
				ApprovedAt:      &now,
			}
			if err := r.Contributions.Create(ctx, c); err != nil {
				return err
			}

			m.CreditLedger(share)
			if err := r.Members.Save(ctx, m); err != nil {
				return err
			}

			result.Distributions = append(result.Distributions, DistributionDTO{
				MemberID:        m.MemberID,
				GrossInterest:   gross,
				ManagementFee:   fee,
				WithholdingTax:  tax,
				NetAmount:       net,
				MemberShare:     share,
				SharePercentage: sharePct,
				Month:           month,
			})
		}

		if err := inv.ApplyDistribution(gross); err != nil {
			return err
		}
		if err := r.Investments.Save(ctx, inv); err != nil {
			return err
		}
		result.Investment = *toDTO(inv)
		out = result
		return nil
	})
	if err != nil {
		return nil, err
	}
	u.log.Infow("interest distributed",
		"reference", referenceCode, "gross", out.GrossInterest, "net", out.NetInterest,
		"members", out.MemberCount, "tax_base", u.taxBase)
	return out, nil
}

// UpdateValue is the explicit manual correction path, the only way the
// current value may move other than a distribution.
func (u *Usecase) UpdateValue(ctx context.Context, referenceCode string, value decimal.Decimal) (*InvestmentDTO, error) {
	if value.IsNegative() {
		return nil, fmt.Errorf("%w: current value must not be negative", validation.ErrInvalid)
	}
	return u.mutate(ctx, referenceCode, func(inv *domain.Investment) error {
		inv.CurrentValue = value.Round(2)
		return nil
	})
}

func (u *Usecase) Mature(ctx context.Context, referenceCode string) (*InvestmentDTO, error) {
	return u.mutate(ctx, referenceCode, func(inv *domain.Investment) error {
		return inv.Close(domain.StatusMatured)
	})
}

func (u *Usecase) Withdraw(ctx context.Context, referenceCode string) (*InvestmentDTO, error) {
	return u.mutate(ctx, referenceCode, func(inv *domain.Investment) error {
		return inv.Close(domain.StatusWithdrawn)
	})
}

func (u *Usecase) Get(ctx context.Context, referenceCode string) (*InvestmentDTO, error) {
	inv, err := u.invests.GetByReference(ctx, referenceCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return toDTO(inv), nil
}

func (u *Usecase) List(ctx context.Context) ([]InvestmentDTO, error) {
	list, err := u.invests.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]InvestmentDTO, 0, len(list))
	for i := range list {
		out = append(out, *toDTO(&list[i]))
	}
	return out, nil
}

// Distributions returns the payout history recorded against one investment.
func (u *Usecase) Distributions(ctx context.Context, referenceCode string) ([]DistributionDTO, error) {
	inv, err := u.invests.GetByReference(ctx, referenceCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	rows, err := u.invests.ListDistributionsByInvestment(ctx, inv.ID)
	if err != nil {
		return nil, err
	}
	out := make([]DistributionDTO, 0, len(rows))
	for i := range rows {
		out = append(out, distributionToDTO(&rows[i]))
	}
	return out, nil
}

func (u *Usecase) DistributionsByMember(ctx context.Context, memberID string) ([]DistributionDTO, error) {
	rows, err := u.invests.ListDistributionsByMember(ctx, memberID)
	if err != nil {
		return nil, err
	}
	out := make([]DistributionDTO, 0, len(rows))
	for i := range rows {
		out = append(out, distributionToDTO(&rows[i]))
	}
	return out, nil
}

func (u *Usecase) mutate(ctx context.Context, referenceCode string, fn func(*domain.Investment) error) (*InvestmentDTO, error) {
	var dto *InvestmentDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		inv, err := r.Investments.GetByReferenceForUpdate(ctx, referenceCode)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}
		if err := fn(inv); err != nil {
			return err
		}
		if err := r.Investments.Save(ctx, inv); err != nil {
			return err
		}
		dto = toDTO(inv)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func distributionToDTO(d *domain.Distribution) DistributionDTO {
	return DistributionDTO{
		MemberID:        d.MemberID,
		GrossInterest:   d.GrossInterest,
		ManagementFee:   d.ManagementFee,
		WithholdingTax:  d.WithholdingTax,
		NetAmount:       d.NetAmount,
		MemberShare:     d.MemberShare,
		SharePercentage: d.SharePercentage,
		Month:           d.DistributionMonth,
	}
}

func toDTO(i *domain.Investment) *InvestmentDTO {
	return &InvestmentDTO{
		ReferenceCode:  i.ReferenceCode,
		Amount:         i.Amount,
		InterestRate:   i.InterestRate,
		CurrentValue:   i.CurrentValue,
		InvestmentDate: i.InvestmentDate,
		MaturityDate:   i.MaturityDate,
		Status:         string(i.Status),
		RecordedBy:     i.RecordedBy,
	}
}
