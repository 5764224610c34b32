// Package metrics wires OpenTelemetry metrics to the Prometheus registry
// served on the metrics endpoint.
package metrics

import (
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60} //nolint: gochecknoglobals

var (
	setupOnce sync.Once                //nolint: gochecknoglobals
	provider  *sdkmetric.MeterProvider //nolint: gochecknoglobals
	setupErr  error                    //nolint: gochecknoglobals
)

// Setup creates the process-wide meter provider exporting to
// prometheus.DefaultRegisterer and installs it as the global otel provider.
// Subsequent calls return the same provider.
func Setup() (*sdkmetric.MeterProvider, error) {
	setupOnce.Do(func() {
		exp, err := otelprom.New(otelprom.WithRegisterer(prometheus.DefaultRegisterer))
		if err != nil {
			setupErr = fmt.Errorf("could not create otel exporter: %w", err)
			return
		}

		provider = sdkmetric.NewMeterProvider(
			sdkmetric.WithReader(exp),
			sdkmetric.WithView(sdkmetric.NewView(
				sdkmetric.Instrument{Kind: sdkmetric.InstrumentKindHistogram},
				sdkmetric.Stream{Aggregation: sdkmetric.AggregationExplicitBucketHistogram{Boundaries: DefaultBuckets}},
			)),
		)
		otel.SetMeterProvider(provider)
	})

	return provider, setupErr
}
