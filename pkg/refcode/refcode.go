// Package refcode generates the human-readable reference codes printed on
// every financial record (receipts, support lookups).
package refcode

import (
	"strings"

	"github.com/google/uuid"
)

const (
	PrefixContribution = "CONT"
	PrefixLoan         = "LN"
	PrefixPayment      = "PAY"
	PrefixInvestment   = "CIC"
	PrefixInterest     = "INT"
	PrefixMilestone    = "MIL"
)

// New returns codes of the form PREFIX-XXXXXXXXXXXX (12 uppercase hex chars
// of UUID entropy). Uniqueness is still enforced by the database index.
func New(prefix string) string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return prefix + "-" + strings.ToUpper(raw[:12])
}
