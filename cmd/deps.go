package main

import (
	"context"
	"net/http"
	"pricewatch/internal/config"
	"pricewatch/pkg/logger"
	"pricewatch/pkg/notifier"
	"pricewatch/pkg/notifier/lognotify"
	"pricewatch/pkg/notifier/smtpnotify"
	"pricewatch/pkg/pagefetcher"
	"pricewatch/pkg/pagefetcher/chromefetch"
	"pricewatch/pkg/pagefetcher/htmlfetch"
	"pricewatch/pkg/storage/postgres"

	"go.uber.org/zap"
)

// getPostgres creates a PostgreSQL client using configuration values and returns it
// along with a cleanup function to close the connection pool.
func getPostgres(ctx context.Context, cfg *config.Config) (*postgres.PgSQL, func()) {
	pgsql, err := postgres.New(ctx, postgres.Options{
		Username:           cfg.Database.Username,
		Password:           cfg.Database.Password,
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		Database:           cfg.Database.DatabaseName,
		ConnMaxLifetime:    cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime:    cfg.Database.ConnMaxIdleTime,
		MaxOpenConnections: cfg.Database.MaxOpenConnections,
		MaxIdleConnections: cfg.Database.MaxIdleConnections,
		SslMode:            cfg.Database.SslMode,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create postgres storage", zap.Error(err))
	}

	return pgsql, func() {
		logger.Info(ctx, "closing postgres client...")
		if err = pgsql.Close(); err != nil {
			logger.Warn(ctx, "could not close postgres connection", zap.Error(err))
		}
	}
}

// getFetcher returns the page fetcher selected by browser.driver. The chrome
// engine is started here and stopped by the returned cleanup function.
func getFetcher(ctx context.Context, cfg *config.Config) (pagefetcher.Fetcher, func()) {
	opts := pagefetcher.Options{
		Timeout:   cfg.Browser.FetchTimeout,
		UserAgent: cfg.Browser.UserAgent,
	}

	if cfg.Browser.Driver == config.BrowserDriverStatic {
		logger.Info(ctx, "using static html fetcher")

		return htmlfetch.New(&http.Client{}, opts), func() {}
	}

	engine := chromefetch.New(chromefetch.Options{
		Options:   opts,
		ExecPath:  cfg.Browser.ExecPath,
		RemoteURL: cfg.Browser.RemoteURL,
		Headless:  cfg.Browser.Headless,
		NoSandbox: cfg.Browser.NoSandbox,
	})
	if err := engine.Start(ctx); err != nil {
		logger.Fatal(ctx, "could not start browser engine", zap.Error(err))
	}

	return engine, func() {
		logger.Info(ctx, "closing browser engine...")
		if err := engine.Close(); err != nil {
			logger.Warn(ctx, "could not close browser engine", zap.Error(err))
		}
	}
}

// getNotifier returns the notifier selected by notifier.driver.
func getNotifier(ctx context.Context, cfg *config.Config) notifier.Notifier {
	if cfg.Notifier.Driver != config.NotifierDriverSMTP {
		logger.Info(ctx, "notifications are written to the log")

		return lognotify.New()
	}

	smtp := cfg.Notifier.SMTP
	ntf, err := smtpnotify.New(smtpnotify.Options{
		Host:      smtp.Host,
		Port:      smtp.Port,
		Username:  smtp.Username,
		Password:  smtp.Password,
		From:      smtp.From,
		TLSPolicy: smtp.TLSPolicy,
		SSL:       smtp.SSL,
		Timeout:   smtp.Timeout,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create smtp notifier", zap.Error(err))
	}

	return ntf
}
