package investment

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"welfare-backend/internal/config"
	contribDomain "welfare-backend/internal/domain/contribution"
	domain "welfare-backend/internal/domain/investment"
	memberDomain "welfare-backend/internal/domain/member"
	"welfare-backend/internal/domain/uow"
	"welfare-backend/internal/testutil/contributionmock"
	"welfare-backend/internal/testutil/investmentmock"
	"welfare-backend/internal/testutil/membermock"
	"welfare-backend/internal/testutil/uowmock"
)

const processorID = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"

func nopLogger() *zap.SugaredLogger { return zap.NewNop().Sugar() }

func activeInvestment() *domain.Investment {
	return &domain.Investment{
		ID:            3,
		ReferenceCode: "CIC-A1B2C3D4E5F6",
		Amount:        decimal.NewFromInt(100000),
		CurrentValue:  decimal.NewFromInt(100000),
		InterestRate:  domain.DefaultInterestRate,
		Status:        domain.StatusActive,
	}
}

func nActiveMembers(n int) []memberDomain.Member {
	out := make([]memberDomain.Member, n)
	for i := range out {
		out[i] = memberDomain.Member{
			MemberID: strings.Repeat("a", 31) + string(rune('0'+i)),
			IsActive: true,
		}
	}
	return out
}

type distributeFixture struct {
	inv           *domain.Investment
	members       []memberDomain.Member
	distributions []domain.Distribution
	contributions []contribDomain.Contribution
	savedMembers  []memberDomain.Member
}

func (f *distributeFixture) repos() uow.Repos {
	return uow.Repos{
		Investments: &investmentmock.Repo{
			GetByReferenceForUpdateFn: func(ctx context.Context, ref string) (*domain.Investment, error) {
				return f.inv, nil
			},
			CreateDistributionFn: func(ctx context.Context, d *domain.Distribution) error {
				f.distributions = append(f.distributions, *d)
				return nil
			},
		},
		Members: &membermock.Repo{
			ListActiveForUpdateFn: func(ctx context.Context) ([]memberDomain.Member, error) {
				return f.members, nil
			},
			SaveFn: func(ctx context.Context, m *memberDomain.Member) error {
				f.savedMembers = append(f.savedMembers, *m)
				return nil
			},
		},
		Contributions: &contributionmock.Repo{
			CreateFn: func(ctx context.Context, c *contribDomain.Contribution) error {
				f.contributions = append(f.contributions, *c)
				return nil
			},
		},
	}
}

func TestDistribute_GrossTaxBase(t *testing.T) {
	f := &distributeFixture{inv: activeInvestment(), members: nActiveMembers(5)}
	uc := NewUsecase(&investmentmock.Repo{}, uowmock.Passthrough(f.repos()),
		config.TaxBaseGross, decimal.NewFromInt(10000), nopLogger())

	res, err := uc.Distribute(context.Background(), f.inv.ReferenceCode, DistributeInput{
		GrossInterest:    decimal.NewFromInt(10000),
		DistributionDate: time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
		ProcessorID:      processorID,
	})
	if err != nil {
		t.Fatalf("Distribute err: %v", err)
	}

	// fee = 10000 × 0.02 / 12 = 16.67, tax = 10000 × 0.15 = 1500
	if !res.ManagementFee.Equal(decimal.RequireFromString("16.67")) {
		t.Fatalf("fee=%s", res.ManagementFee)
	}
	if !res.WithholdingTax.Equal(decimal.NewFromInt(1500)) {
		t.Fatalf("tax=%s", res.WithholdingTax)
	}
	if !res.NetInterest.Equal(decimal.RequireFromString("8483.33")) {
		t.Fatalf("net=%s", res.NetInterest)
	}
	// gross reconstructs exactly from the rounded components
	sum := res.NetInterest.Add(res.ManagementFee).Add(res.WithholdingTax)
	if !sum.Equal(res.GrossInterest) {
		t.Fatalf("fee+tax+net=%s, gross=%s", sum, res.GrossInterest)
	}

	if len(res.Distributions) != 5 {
		t.Fatalf("distributions=%d", len(res.Distributions))
	}
	share := decimal.RequireFromString("1696.67")
	for _, d := range res.Distributions {
		if !d.MemberShare.Equal(share) {
			t.Fatalf("share=%s", d.MemberShare)
		}
		if !d.SharePercentage.Equal(decimal.NewFromInt(20)) {
			t.Fatalf("pct=%s", d.SharePercentage)
		}
		if d.Month != "2026-08" {
			t.Fatalf("month=%s", d.Month)
		}
	}

	// one pre-approved interest contribution per member, ledger credited
	if len(f.contributions) != 5 {
		t.Fatalf("contributions=%d", len(f.contributions))
	}
	for _, c := range f.contributions {
		if c.Type != contribDomain.TypeInterest || c.Status != contribDomain.StatusApproved {
			t.Fatalf("contribution=%+v", c)
		}
		if !strings.HasPrefix(c.ReferenceCode, "INT-") {
			t.Fatalf("reference=%s", c.ReferenceCode)
		}
	}
	if len(f.savedMembers) != 5 {
		t.Fatalf("saved members=%d", len(f.savedMembers))
	}
	for _, m := range f.savedMembers {
		if !m.TotalContributions.Equal(share) {
			t.Fatalf("ledger=%s", m.TotalContributions)
		}
	}

	// investment value grows by the gross amount
	if !res.Investment.CurrentValue.Equal(decimal.NewFromInt(110000)) {
		t.Fatalf("current value=%s", res.Investment.CurrentValue)
	}
}

func TestDistribute_NetOfFeeTaxBase(t *testing.T) {
	f := &distributeFixture{inv: activeInvestment(), members: nActiveMembers(5)}
	uc := NewUsecase(&investmentmock.Repo{}, uowmock.Passthrough(f.repos()),
		config.TaxBaseNetOfFee, decimal.NewFromInt(10000), nopLogger())

	res, err := uc.Distribute(context.Background(), f.inv.ReferenceCode, DistributeInput{
		GrossInterest:    decimal.NewFromInt(10000),
		DistributionDate: time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
		ProcessorID:      processorID,
	})
	if err != nil {
		t.Fatalf("Distribute err: %v", err)
	}
	// tax = (10000 − 16.67) × 0.15 = 1497.50
	if !res.WithholdingTax.Equal(decimal.RequireFromString("1497.50")) {
		t.Fatalf("tax=%s", res.WithholdingTax)
	}
	if !res.NetInterest.Equal(decimal.RequireFromString("8485.83")) {
		t.Fatalf("net=%s", res.NetInterest)
	}
}

func TestDistribute_NoActiveMembers(t *testing.T) {
	f := &distributeFixture{inv: activeInvestment()}
	uc := NewUsecase(&investmentmock.Repo{}, uowmock.Passthrough(f.repos()),
		config.TaxBaseGross, decimal.NewFromInt(10000), nopLogger())

	_, err := uc.Distribute(context.Background(), f.inv.ReferenceCode, DistributeInput{
		GrossInterest:    decimal.NewFromInt(10000),
		DistributionDate: time.Now().UTC(),
		ProcessorID:      processorID,
	})
	if !errors.Is(err, domain.ErrNoActiveMembers) {
		t.Fatalf("want ErrNoActiveMembers, got %v", err)
	}
}

func TestDistribute_ClosedInvestment(t *testing.T) {
	inv := activeInvestment()
	inv.Status = domain.StatusMatured
	f := &distributeFixture{inv: inv, members: nActiveMembers(2)}
	uc := NewUsecase(&investmentmock.Repo{}, uowmock.Passthrough(f.repos()),
		config.TaxBaseGross, decimal.NewFromInt(10000), nopLogger())

	_, err := uc.Distribute(context.Background(), inv.ReferenceCode, DistributeInput{
		GrossInterest:    decimal.NewFromInt(10000),
		DistributionDate: time.Now().UTC(),
		ProcessorID:      processorID,
	})
	if !errors.Is(err, domain.ErrClosed) {
		t.Fatalf("want ErrClosed, got %v", err)
	}
}

func TestCreate_Defaults(t *testing.T) {
	var created *domain.Investment
	repo := &investmentmock.Repo{
		CreateFn: func(ctx context.Context, i *domain.Investment) error {
			created = i
			return nil
		},
	}
	uc := NewUsecase(repo, uowmock.New(), config.TaxBaseGross,
		decimal.NewFromInt(10000), nopLogger())

	dto, err := uc.Create(context.Background(), CreateInput{
		Amount:         decimal.NewFromInt(50000),
		InvestmentDate: time.Now().UTC(),
		RecordedBy:     processorID,
	})
	if err != nil {
		t.Fatalf("Create err: %v", err)
	}
	if !dto.InterestRate.Equal(domain.DefaultInterestRate) {
		t.Fatalf("rate=%s", dto.InterestRate)
	}
	if !dto.CurrentValue.Equal(dto.Amount) {
		t.Fatalf("current value=%s", dto.CurrentValue)
	}
	if !strings.HasPrefix(created.ReferenceCode, "CIC-") {
		t.Fatalf("reference=%s", created.ReferenceCode)
	}
}

func TestCreate_BelowMinimum(t *testing.T) {
	uc := NewUsecase(&investmentmock.Repo{}, uowmock.New(), config.TaxBaseGross,
		decimal.NewFromInt(10000), nopLogger())
	_, err := uc.Create(context.Background(), CreateInput{
		Amount:         decimal.NewFromInt(9999),
		InvestmentDate: time.Now().UTC(),
		RecordedBy:     processorID,
	})
	if err == nil {
		t.Fatal("want error for amount below minimum")
	}
}

func TestMature_ThenWithdrawRefused(t *testing.T) {
	inv := activeInvestment()
	repos := uow.Repos{
		Investments: &investmentmock.Repo{
			GetByReferenceForUpdateFn: func(ctx context.Context, ref string) (*domain.Investment, error) {
				return inv, nil
			},
		},
	}
	uc := NewUsecase(&investmentmock.Repo{}, uowmock.Passthrough(repos),
		config.TaxBaseGross, decimal.NewFromInt(10000), nopLogger())

	dto, err := uc.Mature(context.Background(), inv.ReferenceCode)
	if err != nil {
		t.Fatalf("Mature err: %v", err)
	}
	if dto.Status != string(domain.StatusMatured) {
		t.Fatalf("status=%s", dto.Status)
	}
	if _, err := uc.Withdraw(context.Background(), inv.ReferenceCode); !errors.Is(err, domain.ErrClosed) {
		t.Fatalf("want ErrClosed, got %v", err)
	}
}
