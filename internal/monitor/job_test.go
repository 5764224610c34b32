package monitor_test

import (
	"pricewatch/internal/monitor"
	"pricewatch/pkg/domain"
	"testing"

	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
)

func TestRunBatchArgs(t *testing.T) {
	args := monitor.NewRunBatchArgs(domain.NewRunID(), domain.RunTriggerOnDemand, 2)
	require.Equal(t, "RunBatchJob", args.Kind())

	opts := args.InsertOpts()
	require.Equal(t, 2, opts.MaxAttempts)
	require.True(t, opts.UniqueOpts.ByArgs)
	require.NotContains(t, opts.UniqueOpts.ByState, rivertype.JobStateCompleted,
		"a finished run must not block the next scheduled one")
}
