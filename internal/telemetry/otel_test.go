package telemetry_test

import (
	"context"
	"testing"

	"github.com/DanielPopoola/redeban-payment-bridge/internal/config"
	"github.com/DanielPopoola/redeban-payment-bridge/internal/telemetry"
	"github.com/stretchr/testify/require"
)

func TestSetup_NoopWhenEndpointEmpty(t *testing.T) {
	shutdown, err := telemetry.Setup(context.Background(), config.TelemetryConfig{
		ServiceName: "test-service",
	}, "development")
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}

func TestSetup_CreatesProviderWhenEndpointSet(t *testing.T) {
	// Non-routable address so nothing is exported.
	shutdown, err := telemetry.Setup(context.Background(), config.TelemetryConfig{
		ServiceName: "test-service",
		Endpoint:    "http://192.0.2.1:4318",
	}, "development")
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}
