package pricing_test

import (
	"pricewatch/pkg/pricing"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr error
	}{
		{name: "us format", raw: "$1,234.56", want: "1234.56"},
		{name: "european format", raw: "1.234,56 €", want: "1234.56"},
		{name: "comma decimal", raw: "29,99 €", want: "29.99"},
		{name: "three digits after dot is grouping", raw: "Price: 1.234", want: "1234"},
		{name: "three digits after comma is grouping", raw: "1,234", want: "1234"},
		{name: "multiple grouping", raw: "1,234,567", want: "1234567"},
		{name: "single fraction digit", raw: "12.5", want: "12.5"},
		{name: "integer", raw: "USD 24", want: "24"},
		{name: "space grouping", raw: "1 234,50 zł", want: "1234.50"},
		{name: "leading decimal", raw: "$.99", want: "0.99"},
		{name: "sentence period", raw: "Now only $24.99.", want: "24.99"},
		{name: "zero", raw: "0,00", want: "0"},
		{name: "empty", raw: "", wantErr: pricing.ErrEmpty},
		{name: "no digits", raw: "no digits here", wantErr: pricing.ErrEmpty},
		{name: "only separators", raw: "..,", wantErr: pricing.ErrEmpty},
		{name: "negative", raw: "-12.00", wantErr: pricing.ErrMalformed},
		{name: "range", raw: "10.00 - 20.00", wantErr: pricing.ErrMalformed},
		{name: "decimal separator repeated", raw: "1.234.56", wantErr: pricing.ErrMalformed},
		{name: "comma repeated before decimal", raw: "1,234,56", wantErr: pricing.ErrMalformed},
		{name: "mixed grouping", raw: "1.234,567", wantErr: pricing.ErrMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pricing.ParsePrice(tt.raw)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s, want %s", got, tt.want)
		})
	}
}

func TestParserPinnedSeparator(t *testing.T) {
	tests := []struct {
		name    string
		sep     rune
		raw     string
		want    string
		wantErr error
	}{
		{name: "comma locale three decimals", sep: ',', raw: "1,234", want: "1.234"},
		{name: "comma locale grouping dot", sep: ',', raw: "1.234", want: "1234"},
		{name: "comma locale full", sep: ',', raw: "12.345,678", want: "12345.678"},
		{name: "dot locale three decimals", sep: '.', raw: "1.234", want: "1.234"},
		{name: "dot locale grouping comma", sep: '.', raw: "1,234.5", want: "1234.5"},
		{name: "dot locale grouping after decimal", sep: '.', raw: "1.234,5", wantErr: pricing.ErrMalformed},
		{name: "dot locale repeated decimal", sep: '.', raw: "1.2.3", wantErr: pricing.ErrMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pricing.Parser{DecimalSeparator: tt.sep}.Parse(tt.raw)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s, want %s", got, tt.want)
		})
	}
}

func TestParserUnsupportedSeparator(t *testing.T) {
	_, err := pricing.Parser{DecimalSeparator: '\''}.Parse("1'234")
	require.Error(t, err)
}
