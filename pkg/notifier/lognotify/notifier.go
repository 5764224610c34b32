// Package lognotify provides a notifier.Notifier that writes notifications to
// the application log instead of delivering them. Meant for development.
package lognotify

import (
	"context"
	"pricewatch/pkg/domain"
	"pricewatch/pkg/logger"
	"pricewatch/pkg/notifier"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Notifier struct{}

var _ notifier.Notifier = Notifier{}

func New() Notifier { return Notifier{} }

func (Notifier) Notify(ctx context.Context, recipients []string, product domain.TrackedProduct, observed decimal.Decimal) error {
	msg, err := notifier.Compose(product, observed)
	if err != nil {
		return err
	}

	logger.Info(ctx, msg.Subject,
		zap.Strings("recipients", recipients),
		zap.Stringer("productID", product.ID),
		zap.String("observed", observed.String()),
		zap.String("expected", product.ExpectedPrice.String()),
		zap.String("body", msg.Body),
	)

	return nil
}
