package pricing

import (
	"pricewatch/pkg/domain"

	"github.com/shopspring/decimal"
)

// Evaluate compares an observed price against the expected threshold. The
// threshold is inclusive: observed == expected notifies. A currency mismatch
// takes precedence over the price comparison.
func Evaluate(observed, expected decimal.Decimal, currencyMatch bool) domain.Decision {
	if !currencyMatch {
		return domain.DecisionCurrencyMismatch
	}
	if observed.LessThanOrEqual(expected) {
		return domain.DecisionNotify
	}

	return domain.DecisionNoChange
}
