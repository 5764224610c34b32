package logger_test

import (
	"context"
	"pricewatch/pkg/logger"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		level       string
		debug       bool
	}{
		{name: "development defaults to debug", environment: logger.DevelopmentEnvironment, debug: true},
		{name: "production defaults to info", environment: logger.ProductionEnvironment, debug: false},
		{name: "level override", environment: logger.ProductionEnvironment, level: "debug", debug: true},
		{name: "bad level ignored", environment: logger.DevelopmentEnvironment, level: "loud", debug: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NotPanics(t, func() {
				logger.Setup(tt.environment, tt.level)
			})

			ctx := context.Background()
			require.NotNil(t, logger.Get(ctx))
			require.Equal(t, tt.debug, logger.IsDebug(ctx))
		})
	}
}

func TestGetAndWithLogger(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)

	ctx := context.Background()
	require.NotNil(t, logger.Get(ctx), "should return default logger when context has no logger")

	custom, _ := zap.NewDevelopment()
	require.Equal(t, custom, logger.Get(logger.WithLogger(ctx, custom)))
}

func TestWithFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	ctx = logger.WithFields(ctx, zap.String("runID", "r-1"), zap.Int("workers", 4))
	logger.Info(ctx, "batch started")

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "batch started", entries[0].Message)
	fields := entries[0].ContextMap()
	require.Equal(t, "r-1", fields["runID"])
	require.EqualValues(t, 4, fields["workers"])
}

func TestLoggingFunctions(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	logger.Debug(ctx, "debug message")
	logger.Info(ctx, "info message")
	logger.Warn(ctx, "warn message")
	logger.Error(ctx, "error message")

	require.Equal(t, 4, logs.Len())
	require.Equal(t, 1, logs.FilterLevelExact(zapcore.ErrorLevel).Len())
}
