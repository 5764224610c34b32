package domain

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"pricewatch/pkg/serrors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrInvalidProduct marks a stored product that violates the TrackedProduct
// invariants and therefore cannot be checked.
var ErrInvalidProduct = serrors.NewKind("INVALID_PRODUCT")

// ProductID identifies a tracked product. It is opaque outside storage.
type ProductID uuid.UUID

func (id ProductID) String() string { return uuid.UUID(id).String() }

// ParseProductID parses the textual form of a ProductID.
func ParseProductID(s string) (ProductID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return ProductID{}, fmt.Errorf("could not parse product id %q: %w", s, err)
	}

	return ProductID(id), nil
}

func (id ProductID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *ProductID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

// TrackedProduct is a product page whose price is checked on every run.
type TrackedProduct struct {
	// ID is the unique identifier of the product.
	ID ProductID `json:"id"`
	// ProductName is a human-readable label used in notifications.
	ProductName string `json:"productName"`
	// URL is the product page. It must be an absolute http or https URL.
	URL string `json:"url" validate:"required,http_url"`
	// CSSSelector locates the element(s) displaying the price.
	CSSSelector string `json:"cssSelector" validate:"required"`
	// ExpectedPrice is the inclusive threshold at or below which recipients are notified.
	ExpectedPrice decimal.Decimal `json:"expectedPrice"`
	// ExpectedPriceCurrency is the ISO 4217 code of ExpectedPrice.
	ExpectedPriceCurrency string `json:"expectedPriceCurrency" validate:"required,iso4217"`
	// EmailNotification lists recipients in the order they were added.
	EmailNotification []string `json:"emailNotification" validate:"dive,email"`
	// OwningUser is a weak reference to the account that created the product.
	OwningUser string `json:"user,omitempty"`

	CreatedAt time.Time `json:"createdTimestamp"`
	UpdatedAt time.Time `json:"lastUpdated"`
}

var (
	validateOnce sync.Once           //nolint: gochecknoglobals
	validate     *validator.Validate //nolint: gochecknoglobals
)

func productValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})

	return validate
}

// Validate checks the TrackedProduct invariants. The returned error is
// classified as ErrInvalidProduct.
func (p *TrackedProduct) Validate() error {
	if err := productValidator().Struct(p); err != nil {
		return serrors.Wrap(ErrInvalidProduct, err, "product %s is invalid", p.ID)
	}
	if strings.TrimSpace(p.CSSSelector) == "" {
		return serrors.With(ErrInvalidProduct, "product %s has a blank css selector", p.ID)
	}
	if p.ExpectedPrice.IsNegative() {
		return serrors.With(ErrInvalidProduct, "product %s has a negative expected price", p.ID)
	}

	return nil
}

// NormalizeRecipients trims addresses and drops blanks and case-insensitive
// duplicates, keeping the first occurrence of each address.
func NormalizeRecipients(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, addr := range in {
		addr = strings.TrimSpace(addr)
		if addr == "" {
			continue
		}

		k := strings.ToLower(addr)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, addr)
	}

	return out
}

// ValidateURL checks that URL is an absolute http or https URL. The returned
// error is classified as serrors.ErrBadRequest.
func ValidateURL(URL string) error {
	if err := productValidator().Var(URL, "required,http_url"); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid product URL %q", URL)
	}

	return nil
}
