package notifier

import (
	"bytes"
	"fmt"
	"pricewatch/pkg/domain"
	"strings"
	"text/template"

	"github.com/shopspring/decimal"
)

// Message is the rendered notification.
type Message struct {
	Subject string
	Body    string
}

var bodyTemplate = template.Must(template.New("body").Parse(`Good news!

The price of {{.Name}} dropped to {{.Observed}} {{.Currency}}.
You asked to be notified at {{.Expected}} {{.Currency}} or less.

{{.URL}}
`)) //nolint: gochecknoglobals

// Compose renders the notification for product observed at price observed.
func Compose(product domain.TrackedProduct, observed decimal.Decimal) (Message, error) {
	name := strings.TrimSpace(product.ProductName)
	if name == "" {
		name = product.URL
	}

	var body bytes.Buffer
	err := bodyTemplate.Execute(&body, struct {
		Name, URL, Currency string
		Observed, Expected  string
	}{
		Name:     name,
		URL:      product.URL,
		Currency: product.ExpectedPriceCurrency,
		Observed: observed.StringFixed(2),
		Expected: product.ExpectedPrice.StringFixed(2),
	})
	if err != nil {
		return Message{}, fmt.Errorf("could not render notification: %w", err)
	}

	return Message{
		Subject: "Price drop: " + name,
		Body:    body.String(),
	}, nil
}
