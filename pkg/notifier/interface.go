// Package notifier delivers price drop notifications to the recipients of a
// tracked product.
package notifier

import (
	"context"
	"pricewatch/pkg/domain"

	"github.com/shopspring/decimal"
)

// Notifier sends a single price drop notification.
//
//go:generate mockgen -package mocknotifier -source=interface.go -destination=mock/mocknotifier.go *
type Notifier interface {
	// Notify tells recipients that product is now offered at observed. A
	// returned error means nobody is guaranteed to have been notified.
	Notify(ctx context.Context, recipients []string, product domain.TrackedProduct, observed decimal.Decimal) error
}
