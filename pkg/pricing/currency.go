package pricing

import (
	"regexp"
	"slices"
	"strings"

	"golang.org/x/text/currency"
)

var dollarCodes = []string{ //nolint: gochecknoglobals
	"USD", "CAD", "AUD", "NZD", "HKD", "SGD", "MXN", "TWD", "ARS", "CLP", "COP",
}

// currencyMarkers are matched in order; prefixed dollar signs come before the
// bare "$" so that "R$" is not read as a dollar.
var currencyMarkers = []struct { //nolint: gochecknoglobals
	marker string
	codes  []string
}{
	{"R$", []string{"BRL"}},
	{"US$", []string{"USD"}},
	{"NZ$", []string{"NZD"}},
	{"HK$", []string{"HKD"}},
	{"MX$", []string{"MXN"}},
	{"C$", []string{"CAD"}},
	{"A$", []string{"AUD"}},
	{"S$", []string{"SGD"}},
	{"$", dollarCodes},
	{"€", []string{"EUR"}},
	{"£", []string{"GBP"}},
	{"¥", []string{"JPY", "CNY"}},
	{"₹", []string{"INR"}},
	{"₩", []string{"KRW"}},
	{"₽", []string{"RUB"}},
	{"₺", []string{"TRY"}},
	{"₴", []string{"UAH"}},
	{"₪", []string{"ILS"}},
	{"₫", []string{"VND"}},
	{"₱", []string{"PHP"}},
	{"฿", []string{"THB"}},
	{"zł", []string{"PLN"}},
	{"Kč", []string{"CZK"}},
}

// isoNextToAmount finds three-letter codes written right before or after a
// number, e.g. "USD 24.99" or "29,99 EUR".
var isoNextToAmount = regexp.MustCompile(`\b([A-Z]{3})\s?\d|\d\s?([A-Z]{3})\b`) //nolint: gochecknoglobals

// DetectCurrencies returns the ISO 4217 codes that the currency markers in raw
// may stand for, in order of appearance of their markers. It returns nil when
// raw carries no recognizable marker.
func DetectCurrencies(raw string) []string {
	var out []string
	add := func(codes ...string) {
		for _, c := range codes {
			if !slices.Contains(out, c) {
				out = append(out, c)
			}
		}
	}

	rest := raw
	for _, m := range currencyMarkers {
		if strings.Contains(rest, m.marker) {
			add(m.codes...)
			rest = strings.ReplaceAll(rest, m.marker, " ")
		}
	}

	for _, groups := range isoNextToAmount.FindAllStringSubmatch(raw, -1) {
		for _, code := range groups[1:] {
			if code == "" {
				continue
			}
			if unit, err := currency.ParseISO(code); err == nil {
				add(unit.String())
			}
		}
	}

	return out
}

// MatchCurrency decides whether the price text raw is denominated in the
// expected currency. Text without any currency marker is assumed to be in the
// expected currency. assumed is the currency attributed to the price.
func MatchCurrency(raw, expected string) (assumed string, ok bool) {
	expected = strings.ToUpper(strings.TrimSpace(expected))

	candidates := DetectCurrencies(raw)
	if len(candidates) == 0 || slices.Contains(candidates, expected) {
		return expected, true
	}

	return candidates[0], false
}
