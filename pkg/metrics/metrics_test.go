package metrics_test

import (
	"context"
	"pricewatch/pkg/metrics"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

func TestSetup(t *testing.T) {
	mp, err := metrics.Setup()
	require.NoError(t, err)
	require.NotNil(t, mp)

	again, err := metrics.Setup()
	require.NoError(t, err)
	require.Same(t, mp, again)

	counter, err := otel.Meter("metrics_test").Int64Counter("pricewatch_test_events")
	require.NoError(t, err)
	counter.Add(context.Background(), 3)

	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)

	found := false
	for _, f := range families {
		if strings.HasPrefix(f.GetName(), "pricewatch_test_events") {
			found = true
			require.InDelta(t, 3, f.GetMetric()[0].GetCounter().GetValue(), 0)
		}
	}
	require.True(t, found, "otel counter should be exported to the prometheus registry")
}
