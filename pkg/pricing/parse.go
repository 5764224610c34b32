// Package pricing turns scraped price text into decimals and decides whether
// an observed price warrants a notification. Everything here is pure.
package pricing

import (
	"fmt"
	"strings"

	"pricewatch/pkg/serrors"

	"github.com/shopspring/decimal"
)

var (
	// ErrEmpty is returned when the text contains no digits at all.
	ErrEmpty = serrors.NewKind("PARSE_EMPTY")
	// ErrMalformed is returned when digits are present but do not form a price.
	ErrMalformed = serrors.NewKind("PARSE_MALFORMED")
)

// Parser converts free-form price text into a decimal.
//
// With a zero DecimalSeparator the separator is inferred: the rightmost ','
// or '.' is the decimal separator when exactly one or two digits follow it,
// otherwise every separator is thousands grouping. Setting DecimalSeparator
// to ',' or '.' pins the decimal separator and treats the other character as
// grouping.
type Parser struct {
	DecimalSeparator rune
}

// ParsePrice parses raw with separator inference.
func ParsePrice(raw string) (decimal.Decimal, error) {
	return Parser{}.Parse(raw)
}

// Parse keeps digits, ',', '.' and '-' from raw and resolves the separators.
func (p Parser) Parse(raw string) (decimal.Decimal, error) {
	var b strings.Builder
	digits := 0
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			digits++
			b.WriteRune(r)
		case r == ',' || r == '.' || r == '-':
			b.WriteRune(r)
		}
	}
	if digits == 0 {
		return decimal.Zero, serrors.With(ErrEmpty, "no digits in %q", raw)
	}

	s := b.String()
	if strings.HasPrefix(s, "-") {
		return decimal.Zero, serrors.With(ErrMalformed, "negative price in %q", raw)
	}
	if strings.Contains(s, "-") {
		return decimal.Zero, serrors.With(ErrMalformed, "stray minus sign in %q", raw)
	}
	// a sentence-final period is punctuation, not a separator
	s = strings.TrimRight(s, ",.")

	var (
		num string
		err error
	)
	switch p.DecimalSeparator {
	case 0:
		num, err = inferSeparators(s)
	case ',', '.':
		num, err = pinnedSeparators(s, byte(p.DecimalSeparator))
	default:
		return decimal.Zero, fmt.Errorf("unsupported decimal separator %q", p.DecimalSeparator)
	}
	if err != nil {
		return decimal.Zero, serrors.Wrap(ErrMalformed, err, "could not parse %q", raw)
	}

	d, err := decimal.NewFromString(num)
	if err != nil {
		return decimal.Zero, serrors.Wrap(ErrMalformed, err, "could not parse %q", raw)
	}

	return d, nil
}

func inferSeparators(s string) (string, error) {
	idx := strings.LastIndexAny(s, ",.")
	if idx >= 0 {
		if frac := s[idx+1:]; len(frac) >= 1 && len(frac) <= 2 {
			return joinParts(s[:idx], frac, s[idx])
		}
	}

	if strings.Contains(s, ",") && strings.Contains(s, ".") {
		return "", fmt.Errorf("mixed grouping separators in %q", s)
	}

	return orZero(stripSeparators(s)), nil
}

func pinnedSeparators(s string, sep byte) (string, error) {
	idx := strings.LastIndexByte(s, sep)
	if idx < 0 {
		return orZero(stripSeparators(s)), nil
	}

	frac := s[idx+1:]
	if strings.ContainsAny(frac, ",.") {
		return "", fmt.Errorf("grouping separator after decimal separator in %q", s)
	}

	return joinParts(s[:idx], frac, sep)
}

// joinParts assembles "<int>.<frac>" after checking that the decimal
// separator does not also appear as grouping in the integer part.
func joinParts(intPart, frac string, sep byte) (string, error) {
	if strings.IndexByte(intPart, sep) >= 0 {
		return "", fmt.Errorf("ambiguous separator %q in %q", sep, intPart+string(sep)+frac)
	}

	return orZero(stripSeparators(intPart)) + "." + frac, nil
}

func stripSeparators(s string) string {
	return strings.NewReplacer(",", "", ".", "").Replace(s)
}

func orZero(s string) string {
	if s == "" {
		return "0"
	}

	return s
}
