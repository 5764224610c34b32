package smtpnotify_test

import (
	"context"
	"net"
	"net/textproto"
	"pricewatch/pkg/domain"
	"pricewatch/pkg/notifier/smtpnotify"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	from string
	to   []string
	data string
}

// fakeSMTP accepts mail without TLS or auth and hands every envelope to the
// returned channel.
func fakeSMTP(t *testing.T) (string, int, <-chan envelope) {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })

	out := make(chan envelope, 4)
	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			go serveSMTP(conn, out)
		}
	}()

	addr := ln.Addr().(*net.TCPAddr)

	return addr.IP.String(), addr.Port, out
}

func serveSMTP(conn net.Conn, out chan<- envelope) {
	tp := textproto.NewConn(conn)
	defer func() { _ = tp.Close() }()

	var env envelope
	_ = tp.PrintfLine("220 fake ESMTP")
	for {
		line, err := tp.ReadLine()
		if err != nil {
			return
		}
		verb := strings.ToUpper(strings.SplitN(line, " ", 2)[0])
		switch verb {
		case "EHLO", "HELO":
			_ = tp.PrintfLine("250-fake")
			_ = tp.PrintfLine("250 8BITMIME")
		case "MAIL":
			env.from = line
			_ = tp.PrintfLine("250 OK")
		case "RCPT":
			env.to = append(env.to, line)
			_ = tp.PrintfLine("250 OK")
		case "DATA":
			_ = tp.PrintfLine("354 go ahead")
			b, err := tp.ReadDotBytes()
			if err != nil {
				return
			}
			env.data = string(b)
			out <- env
			env = envelope{}
			_ = tp.PrintfLine("250 OK")
		case "QUIT":
			_ = tp.PrintfLine("221 bye")
			return
		default:
			_ = tp.PrintfLine("250 OK")
		}
	}
}

func testProduct() domain.TrackedProduct {
	return domain.TrackedProduct{
		ProductName:           "Espresso Grinder",
		URL:                   "https://shop.test/grinder",
		ExpectedPrice:         decimal.RequireFromString("25"),
		ExpectedPriceCurrency: "USD",
	}
}

func TestNew_validation(t *testing.T) {
	_, err := smtpnotify.New(smtpnotify.Options{From: "a@example.com"})
	require.Error(t, err)

	_, err = smtpnotify.New(smtpnotify.Options{Host: "localhost"})
	require.Error(t, err)

	_, err = smtpnotify.New(smtpnotify.Options{Host: "localhost", From: "a@example.com", TLSPolicy: "sometimes"})
	require.Error(t, err)
}

func TestNotifier_Notify(t *testing.T) {
	host, port, sent := fakeSMTP(t)

	n, err := smtpnotify.New(smtpnotify.Options{
		Host:      host,
		Port:      port,
		From:      "alerts@pricewatch.test",
		TLSPolicy: "none",
		Timeout:   5 * time.Second,
	})
	require.NoError(t, err)

	recipients := []string{"a@example.com", "b@example.com"}
	err = n.Notify(context.Background(), recipients, testProduct(), decimal.RequireFromString("24.99"))
	require.NoError(t, err)

	for i, rcpt := range recipients {
		select {
		case env := <-sent:
			require.Contains(t, env.from, "alerts@pricewatch.test")
			require.Len(t, env.to, 1, "one envelope per recipient")
			require.Contains(t, env.to[0], rcpt)
			require.Contains(t, env.data, "Subject: Price drop: Espresso Grinder")
			require.Contains(t, env.data, "24.99 USD")
			other := recipients[1-i]
			require.NotContains(t, env.data, other, "recipients must not see each other")
		case <-time.After(5 * time.Second):
			t.Fatal("no mail received")
		}
	}
}

func TestNotifier_Notify_noRecipients(t *testing.T) {
	n, err := smtpnotify.New(smtpnotify.Options{Host: "127.0.0.1", Port: 1, From: "alerts@pricewatch.test"})
	require.NoError(t, err)

	require.NoError(t, n.Notify(context.Background(), nil, testProduct(), decimal.Zero))
}

func TestNotifier_Notify_unreachable(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())

	n, err := smtpnotify.New(smtpnotify.Options{
		Host:      "127.0.0.1",
		Port:      port,
		From:      "alerts@pricewatch.test",
		TLSPolicy: "none",
		Timeout:   time.Second,
	})
	require.NoError(t, err)

	err = n.Notify(context.Background(), []string{"a@example.com"}, testProduct(), decimal.Zero)
	require.Error(t, err)
	require.Contains(t, err.Error(), "could not send email")
}

func TestNotifier_Notify_badRecipient(t *testing.T) {
	n, err := smtpnotify.New(smtpnotify.Options{Host: "127.0.0.1", Port: 1, From: "alerts@pricewatch.test"})
	require.NoError(t, err)

	err = n.Notify(context.Background(), []string{"not an address"}, testProduct(), decimal.Zero)
	require.ErrorContains(t, err, "invalid recipient")
}
