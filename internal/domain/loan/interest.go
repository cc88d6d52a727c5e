package loan

import (
	"time"

	"github.com/shopspring/decimal"
)

// RateModel derives a loan's interest terms once at creation. Two models
// exist in the association's lineage; the one in force is a deployment-wide
// configuration choice, never a per-loan one.
type RateModel interface {
	Name() string
	// Compute returns the flat interest rate (percent) and the interest
	// amount for the given principal and term.
	Compute(principal decimal.Decimal, term int) (rate, interest decimal.Decimal)
	// DueDate returns when a loan approved at the given time falls due.
	DueDate(approvedAt time.Time, term int) time.Time
	// ValidTerm reports whether the term is accepted by this model.
	ValidTerm(term int) bool
}

var hundred = decimal.NewFromInt(100)

// WeeklyRateModel is the canonical model: a flat rate keyed on duration in
// weeks. Unrecognized durations fall back to the 4-week rate.
type WeeklyRateModel struct{}

var weeklyRates = map[int]decimal.Decimal{
	1: decimal.NewFromInt(5),
	2: decimal.NewFromInt(10),
	3: decimal.NewFromInt(15),
	4: decimal.NewFromInt(20),
}

func (WeeklyRateModel) Name() string { return "weekly" }

func (WeeklyRateModel) Compute(principal decimal.Decimal, term int) (decimal.Decimal, decimal.Decimal) {
	rate, ok := weeklyRates[term]
	if !ok {
		rate = weeklyRates[4]
	}
	interest := principal.Mul(rate).Div(hundred).Round(2)
	return rate, interest
}

func (WeeklyRateModel) DueDate(approvedAt time.Time, term int) time.Time {
	return approvedAt.AddDate(0, 0, 7*term)
}

func (WeeklyRateModel) ValidTerm(term int) bool { return term >= 1 }

// MonthlyRateModel is the alternate model: flat 2% simple interest per month
// of the repayment period.
type MonthlyRateModel struct{}

var monthlyRatePercent = decimal.NewFromInt(2)

func (MonthlyRateModel) Name() string { return "monthly" }

func (MonthlyRateModel) Compute(principal decimal.Decimal, term int) (decimal.Decimal, decimal.Decimal) {
	rate := monthlyRatePercent.Mul(decimal.NewFromInt(int64(term)))
	interest := principal.Mul(rate).Div(hundred).Round(2)
	return rate, interest
}

func (MonthlyRateModel) DueDate(approvedAt time.Time, term int) time.Time {
	return approvedAt.AddDate(0, term, 0)
}

func (MonthlyRateModel) ValidTerm(term int) bool {
	switch term {
	case 3, 6, 12, 18, 24:
		return true
	}
	return false
}

// ModelByName resolves a configured rate model name, defaulting to weekly.
func ModelByName(name string) RateModel {
	if name == "monthly" {
		return MonthlyRateModel{}
	}
	return WeeklyRateModel{}
}
