package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Decision is the outcome of comparing an observed price with the expected one.
type Decision string

const (
	// DecisionNotify means the observed price is at or below the expected price.
	DecisionNotify Decision = "NOTIFY"
	// DecisionNoChange means the observed price is still above the expected price.
	DecisionNoChange Decision = "NO_CHANGE"
	// DecisionCurrencyMismatch means the page shows a different currency; the
	// product is skipped for this run.
	DecisionCurrencyMismatch Decision = "CURRENCY_MISMATCH"
)

// ErrorKind classifies why checking a product failed.
type ErrorKind string

const (
	ErrorKindNavigation     ErrorKind = "NAVIGATION"
	ErrorKindTimeout        ErrorKind = "TIMEOUT"
	ErrorKindNoMatch        ErrorKind = "NO_MATCH"
	ErrorKindParseEmpty     ErrorKind = "PARSE_EMPTY"
	ErrorKindParseMalformed ErrorKind = "PARSE_MALFORMED"
	ErrorKindNotifyFailed   ErrorKind = "NOTIFY_FAILED"
	ErrorKindInvalidProduct ErrorKind = "INVALID_PRODUCT"
	ErrorKindInternal       ErrorKind = "INTERNAL"
)

// CheckResult is the outcome of checking one product in one run.
type CheckResult struct {
	// RunID is the run that produced this result.
	RunID RunID `json:"runId"`
	// ProductID is the checked product.
	ProductID ProductID `json:"productId"`

	// ObservedPriceRaw is the text of the first element matching the selector.
	ObservedPriceRaw string `json:"observedPriceRaw"`
	// ObservedPrice is the normalized price; nil when parsing failed or never happened.
	ObservedPrice *decimal.Decimal `json:"observedPrice,omitempty"`
	// CurrencyAssumed is the currency attributed to ObservedPrice.
	CurrencyAssumed string `json:"currencyAssumed,omitempty"`
	// ExtraMatches holds the texts of further matching elements, for diagnostics.
	ExtraMatches []string `json:"extraMatches,omitempty"`

	// Decision is empty when the check failed before comparing.
	Decision Decision `json:"decision,omitempty"`
	// Matched reports whether Decision is DecisionNotify.
	Matched bool `json:"matched"`
	// Notified reports whether the notifier accepted the notification.
	Notified bool `json:"notified"`

	// ErrorKind is set when the check failed.
	ErrorKind ErrorKind `json:"errorKind,omitempty"`
	// ErrorMessage describes the failure.
	ErrorMessage string `json:"errorMessage,omitempty"`

	CheckedAt time.Time `json:"timestamp"`
}

// Failed reports whether the check ended with an error.
func (r *CheckResult) Failed() bool { return r.ErrorKind != "" }
