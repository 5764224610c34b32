// Package smtpnotify provides a notifier.Notifier that sends plain-text email
// through an SMTP relay.
package smtpnotify

import (
	"context"
	"fmt"
	"pricewatch/pkg/domain"
	"pricewatch/pkg/notifier"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wneessen/go-mail"
)

// Options configure the SMTP relay.
type Options struct {
	Host     string
	Port     int
	Username string
	Password string
	// From is the sender address, e.g. "Pricewatch <alerts@example.com>".
	From string
	// TLSPolicy is one of "mandatory", "opportunistic" or "none".
	TLSPolicy string
	// SSL uses implicit TLS instead of STARTTLS.
	SSL     bool
	Timeout time.Duration
}

// Notifier sends one email per recipient so recipients never see each other.
// It is safe for concurrent use; each Notify opens its own connection.
type Notifier struct {
	opts       Options
	clientOpts []mail.Option
}

var _ notifier.Notifier = (*Notifier)(nil)

// New validates opts and constructs a Notifier.
func New(opts Options) (*Notifier, error) {
	if opts.Host == "" {
		return nil, fmt.Errorf("smtp host is required")
	}
	if opts.From == "" {
		return nil, fmt.Errorf("sender address is required")
	}

	policy, err := parseTLSPolicy(opts.TLSPolicy)
	if err != nil {
		return nil, err
	}

	clientOpts := []mail.Option{mail.WithTLSPolicy(policy)}
	if opts.SSL {
		clientOpts = append(clientOpts, mail.WithSSL())
	}
	if opts.Port > 0 {
		clientOpts = append(clientOpts, mail.WithPort(opts.Port))
	}
	if opts.Timeout > 0 {
		clientOpts = append(clientOpts, mail.WithTimeout(opts.Timeout))
	}
	if opts.Username != "" {
		clientOpts = append(clientOpts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(opts.Username),
			mail.WithPassword(opts.Password),
		)
	}

	return &Notifier{opts: opts, clientOpts: clientOpts}, nil
}

func parseTLSPolicy(s string) (mail.TLSPolicy, error) {
	switch strings.ToLower(s) {
	case "", "opportunistic":
		return mail.TLSOpportunistic, nil
	case "mandatory":
		return mail.TLSMandatory, nil
	case "none":
		return mail.NoTLS, nil
	default:
		return mail.NoTLS, fmt.Errorf("unknown tls policy %q", s)
	}
}

// Notify sends the price drop email to every recipient over a single
// connection. An empty recipient list is a no-op.
func (n *Notifier) Notify(ctx context.Context, recipients []string, product domain.TrackedProduct, observed decimal.Decimal) error {
	if len(recipients) == 0 {
		return nil
	}

	content, err := notifier.Compose(product, observed)
	if err != nil {
		return err
	}

	msgs := make([]*mail.Msg, 0, len(recipients))
	for _, rcpt := range recipients {
		msg, err := n.message(rcpt, content)
		if err != nil {
			return err
		}
		msgs = append(msgs, msg)
	}

	client, err := mail.NewClient(n.opts.Host, n.clientOpts...)
	if err != nil {
		return fmt.Errorf("could not create smtp client: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, msgs...); err != nil {
		return fmt.Errorf("could not send email: %w", err)
	}

	return nil
}

func (n *Notifier) message(recipient string, content notifier.Message) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(n.opts.From); err != nil {
		return nil, fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(recipient); err != nil {
		return nil, fmt.Errorf("invalid recipient address %q: %w", recipient, err)
	}
	msg.Subject(content.Subject)
	msg.SetDate()
	msg.SetMessageID()
	msg.SetBodyString(mail.TypeTextPlain, content.Body)

	return msg, nil
}
