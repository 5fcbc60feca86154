package telemetry

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"

	"github.com/linear-cli/linear/internal/config"
)

var otelEnv = []string{
	"LINEAR_OTEL_ENABLED",
	"LINEAR_OTEL_STDOUT",
	"LINEAR_OTEL_ENDPOINT",
	"LINEAR_OTEL_METRICS_ENDPOINT",
	"OTEL_EXPORTER_OTLP_ENDPOINT",
	"OTEL_EXPORTER_OTLP_METRICS_ENDPOINT",
}

// loadConfig initializes internal/config from env alone, on an empty config dir.
func loadConfig(t *testing.T, env map[string]string) {
	t.Helper()
	t.Setenv("LINEAR_CONFIG_DIR", t.TempDir())
	for _, k := range otelEnv {
		t.Setenv(k, env[k])
	}
	require.NoError(t, config.Initialize())
	t.Cleanup(config.ResetForTesting)
}

func TestEnabled(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"true", true},
		{"TRUE", true},
		{"1", true},
		{"", false},
		{"false", false},
		{"yes", false},
	}
	for _, tt := range tests {
		loadConfig(t, map[string]string{"LINEAR_OTEL_ENABLED": tt.value})
		if got := Enabled(); got != tt.want {
			t.Errorf("Enabled() with %q = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestEnabledWithoutConfig(t *testing.T) {
	config.ResetForTesting()
	t.Setenv("LINEAR_OTEL_ENABLED", "true")
	assert.False(t, Enabled())
}

func TestEnabledFromConfigSet(t *testing.T) {
	loadConfig(t, nil)
	assert.False(t, Enabled())
	config.Set("otel-enabled", true)
	assert.True(t, Enabled())
}

func TestLoadSettings(t *testing.T) {
	loadConfig(t, map[string]string{
		"LINEAR_OTEL_ENABLED":         "true",
		"LINEAR_OTEL_STDOUT":          "true",
		"OTEL_EXPORTER_OTLP_ENDPOINT": "collector:4317",
	})
	assert.Equal(t, Settings{
		Enabled:         true,
		Stdout:          true,
		Endpoint:        "collector:4317",
		MetricsEndpoint: "collector:4317",
	}, LoadSettings())

	loadConfig(t, map[string]string{
		"OTEL_EXPORTER_OTLP_ENDPOINT":         "collector:4317",
		"OTEL_EXPORTER_OTLP_METRICS_ENDPOINT": "metrics:4318",
	})
	got := LoadSettings()
	assert.False(t, got.Enabled)
	assert.Equal(t, "metrics:4318", got.MetricsEndpoint)
}

func TestInvocationAttributes(t *testing.T) {
	inv := Invocation{
		ServiceName: "lin",
		Version:     "1.2.3",
		Command:     "lin issue update",
		APIEndpoint: "https://api.linear.app:443/graphql",
	}
	got := map[attribute.Key]string{}
	for _, kv := range inv.attributes() {
		got[kv.Key] = kv.Value.AsString()
	}
	assert.Equal(t, map[attribute.Key]string{
		"service.name":    "lin",
		"service.version": "1.2.3",
		"linear.command":  "lin issue update",
		"server.address":  "api.linear.app",
	}, got)

	assert.Len(t, Invocation{ServiceName: "linear", APIEndpoint: "::bad"}.attributes(), 2)
}

func TestInitDisabledIsNoop(t *testing.T) {
	loadConfig(t, nil)
	if err := Init(context.Background(), Invocation{ServiceName: "linear", Version: "test"}); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if len(shutdownFns) != 0 {
		t.Errorf("shutdownFns = %d, want none", len(shutdownFns))
	}
	// Tracer and Meter still work against the no-op providers.
	_, span := Tracer("").Start(context.Background(), "noop")
	span.End()
	if Meter("") == nil {
		t.Error("Meter() returned nil")
	}
	assert.NoError(t, Shutdown(context.Background()))
}

func TestShutdownRunsRegisteredOnce(t *testing.T) {
	t.Cleanup(func() { shutdownFns = nil })
	boom := errors.New("boom")
	calls := 0
	OnShutdown(func(context.Context) error { calls++; return nil })
	OnShutdown(func(context.Context) error { calls++; return boom })

	err := Shutdown(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 2, calls)

	assert.NoError(t, Shutdown(context.Background()))
	assert.Equal(t, 2, calls)
}

func TestFirstNonEmpty(t *testing.T) {
	if got := firstNonEmpty("", "a", "b"); got != "a" {
		t.Errorf("firstNonEmpty = %q", got)
	}
	if got := firstNonEmpty("", ""); got != "" {
		t.Errorf("firstNonEmpty = %q", got)
	}
}
