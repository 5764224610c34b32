package pricing_test

import (
	"pricewatch/pkg/domain"
	"pricewatch/pkg/pricing"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	expected := decimal.RequireFromString("25.00")

	tests := []struct {
		name          string
		observed      string
		currencyMatch bool
		want          domain.Decision
	}{
		{name: "below threshold", observed: "24.99", currencyMatch: true, want: domain.DecisionNotify},
		{name: "equal is inclusive", observed: "25", currencyMatch: true, want: domain.DecisionNotify},
		{name: "above threshold", observed: "25.01", currencyMatch: true, want: domain.DecisionNoChange},
		{name: "zero", observed: "0", currencyMatch: true, want: domain.DecisionNotify},
		{name: "mismatch wins over cheap price", observed: "1", currencyMatch: false, want: domain.DecisionCurrencyMismatch},
		{name: "mismatch wins over expensive price", observed: "100", currencyMatch: false, want: domain.DecisionCurrencyMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pricing.Evaluate(decimal.RequireFromString(tt.observed), expected, tt.currencyMatch)
			require.Equal(t, tt.want, got)
		})
	}
}
