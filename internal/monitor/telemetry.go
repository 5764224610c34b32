package monitor

import (
	"context"
	"pricewatch/pkg/domain"
	"pricewatch/pkg/metrics"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "pricewatch/internal/monitor"

type telemetry struct {
	tracer        trace.Tracer
	checks        metric.Int64Counter
	notifications metric.Int64Counter
	fetchDuration metric.Float64Histogram
}

// newTelemetry binds instruments to the global providers. Instrument errors
// are reported to the otel error handler and leave a no-op instrument.
func newTelemetry() telemetry {
	meter := otel.Meter(instrumentationName)

	checks, err := meter.Int64Counter("pricewatch_checks",
		metric.WithDescription("Products checked, by decision and error kind."))
	if err != nil {
		otel.Handle(err)
	}
	notifications, err := meter.Int64Counter("pricewatch_notifications",
		metric.WithDescription("Price drop notifications, by outcome."))
	if err != nil {
		otel.Handle(err)
	}
	fetchDuration, err := meter.Float64Histogram("pricewatch_fetch_duration",
		metric.WithDescription("Time spent loading a product page."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...))
	if err != nil {
		otel.Handle(err)
	}

	return telemetry{
		tracer:        otel.Tracer(instrumentationName),
		checks:        checks,
		notifications: notifications,
		fetchDuration: fetchDuration,
	}
}

func (t telemetry) recordCheck(ctx context.Context, result *domain.CheckResult) {
	if t.checks == nil {
		return
	}
	t.checks.Add(ctx, 1, metric.WithAttributes(
		attribute.String("decision", string(result.Decision)),
		attribute.String("error_kind", string(result.ErrorKind)),
	))
}

func (t telemetry) recordNotification(ctx context.Context, err error) {
	if t.notifications == nil {
		return
	}
	outcome := "sent"
	if err != nil {
		outcome = "failed"
	}
	t.notifications.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

func (t telemetry) recordFetch(ctx context.Context, started time.Time, err error) {
	if t.fetchDuration == nil {
		return
	}
	t.fetchDuration.Record(ctx, time.Since(started).Seconds(),
		metric.WithAttributes(attribute.Bool("failed", err != nil)))
}
