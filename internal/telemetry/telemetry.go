// Package telemetry provides OpenTelemetry tracing and metrics for the
// Linear API calls the CLI makes.
//
// Telemetry is disabled by default. Settings come from internal/config, so
// each key can be set in config.yaml or through its environment variable.
//
// # Configuration
//
//	otel-enabled           LINEAR_OTEL_ENABLED          enable telemetry (default: off)
//	otel-stdout            LINEAR_OTEL_STDOUT           write spans/metrics to stderr (dev mode)
//	otel-endpoint          OTEL_EXPORTER_OTLP_ENDPOINT  OTLP endpoint host:port (traces over gRPC)
//	otel-metrics-endpoint  OTEL_EXPORTER_OTLP_METRICS_ENDPOINT
//	                                                    OTLP/HTTP metrics endpoint (defaults to the above)
//
// # Supported exporters
//
//   - stdout exporters, pretty-printed to stderr (otel-stdout)
//   - OTLP: traces over gRPC, metrics over HTTP
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/sdk/resource"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"

	"github.com/linear-cli/linear/internal/config"
)

const instrumentationScope = "github.com/linear-cli/linear"

var shutdownFns []func(context.Context) error

// Settings selects what Init installs.
type Settings struct {
	Enabled         bool
	Stdout          bool
	Endpoint        string
	MetricsEndpoint string
}

// LoadSettings reads the otel-* keys from the CLI configuration.
func LoadSettings() Settings {
	return Settings{
		Enabled:         config.GetBool("otel-enabled"),
		Stdout:          config.GetBool("otel-stdout"),
		Endpoint:        config.GetString("otel-endpoint"),
		MetricsEndpoint: firstNonEmpty(config.GetString("otel-metrics-endpoint"), config.GetString("otel-endpoint")),
	}
}

// Enabled reports whether telemetry is switched on in the configuration.
func Enabled() bool {
	return config.GetBool("otel-enabled")
}

// Invocation describes the running command; it becomes the telemetry resource.
type Invocation struct {
	ServiceName string
	Version     string
	// Command is the full command path, e.g. "linear issue update".
	Command string
	// APIEndpoint is the GraphQL endpoint the command talks to.
	APIEndpoint string
}

func (inv Invocation) attributes() []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		semconv.ServiceNameKey.String(inv.ServiceName),
		semconv.ServiceVersionKey.String(inv.Version),
	}
	if inv.Command != "" {
		attrs = append(attrs, attribute.String("linear.command", inv.Command))
	}
	if u, err := url.Parse(inv.APIEndpoint); err == nil && u.Host != "" {
		attrs = append(attrs, semconv.ServerAddress(u.Hostname()))
	}
	return attrs
}

// Init configures OTel providers from LoadSettings. When telemetry is off
// this installs no-op providers and returns immediately.
func Init(ctx context.Context, inv Invocation) error {
	return InitWith(ctx, inv, LoadSettings())
}

// InitWith is Init with explicit settings.
func InitWith(ctx context.Context, inv Invocation, s Settings) error {
	if !s.Enabled {
		otel.SetTracerProvider(tracenoop.NewTracerProvider())
		otel.SetMeterProvider(metricnoop.NewMeterProvider())
		return nil
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(inv.attributes()...),
		resource.WithHost(),
		resource.WithProcess(),
	)
	if err != nil {
		return fmt.Errorf("telemetry: resource: %w", err)
	}

	tp, err := buildTraceProvider(ctx, res, s)
	if err != nil {
		return fmt.Errorf("telemetry: trace provider: %w", err)
	}
	otel.SetTracerProvider(tp)
	OnShutdown(tp.Shutdown)

	mp, err := buildMetricProvider(ctx, res, s)
	if err != nil {
		return fmt.Errorf("telemetry: metric provider: %w", err)
	}
	otel.SetMeterProvider(mp)
	OnShutdown(mp.Shutdown)

	return nil
}

// OnShutdown registers fn to run on the next Shutdown.
func OnShutdown(fn func(context.Context) error) {
	shutdownFns = append(shutdownFns, fn)
}

func buildTraceProvider(ctx context.Context, res *resource.Resource, s Settings) (*sdktrace.TracerProvider, error) {
	var exporters []sdktrace.SpanExporter

	if s.Stdout {
		exp, err := stdouttrace.New(stdouttrace.WithPrettyPrint(), stdouttrace.WithWriter(os.Stderr))
		if err != nil {
			return nil, err
		}
		exporters = append(exporters, exp)
	}

	if s.Endpoint != "" {
		exp, err := otlptracegrpc.New(ctx,
			otlptracegrpc.WithEndpoint(s.Endpoint),
			otlptracegrpc.WithInsecure(),
		)
		if err != nil {
			return nil, fmt.Errorf("otlp trace exporter: %w", err)
		}
		exporters = append(exporters, exp)
	}

	// Default to stdout when enabled but no exporter is configured.
	if len(exporters) == 0 {
		exp, err := stdouttrace.New(stdouttrace.WithPrettyPrint(), stdouttrace.WithWriter(os.Stderr))
		if err != nil {
			return nil, err
		}
		exporters = append(exporters, exp)
	}

	opts := []sdktrace.TracerProviderOption{
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	}
	for _, exp := range exporters {
		opts = append(opts, sdktrace.WithBatcher(exp))
	}
	return sdktrace.NewTracerProvider(opts...), nil
}

func buildMetricProvider(ctx context.Context, res *resource.Resource, s Settings) (*sdkmetric.MeterProvider, error) {
	opts := []sdkmetric.Option{sdkmetric.WithResource(res)}

	if s.Stdout {
		exp, err := stdoutmetric.New(stdoutmetric.WithWriter(os.Stderr))
		if err != nil {
			return nil, err
		}
		opts = append(opts, sdkmetric.WithReader(
			sdkmetric.NewPeriodicReader(exp, sdkmetric.WithInterval(15*time.Second)),
		))
	}

	if s.MetricsEndpoint != "" {
		exp, err := buildOTLPMetricExporter(ctx, s.MetricsEndpoint)
		if err != nil {
			return nil, fmt.Errorf("otlp metric exporter: %w", err)
		}
		opts = append(opts, sdkmetric.WithReader(
			sdkmetric.NewPeriodicReader(exp, sdkmetric.WithInterval(30*time.Second)),
		))
	}

	return sdkmetric.NewMeterProvider(opts...), nil
}

// Tracer returns a tracer with the given instrumentation name (or the global scope).
func Tracer(name string) trace.Tracer {
	if name == "" {
		name = instrumentationScope
	}
	return otel.Tracer(name)
}

// Meter returns a meter with the given instrumentation name (or the global scope).
func Meter(name string) metric.Meter {
	if name == "" {
		name = instrumentationScope
	}
	return otel.Meter(name)
}

// Shutdown flushes all spans/metrics and shuts down OTel providers.
// Call it with a short-lived context before the process exits. Later calls
// are no-ops until something new is registered.
func Shutdown(ctx context.Context) error {
	fns := shutdownFns
	shutdownFns = nil
	var errs []error
	for _, fn := range fns {
		if err := fn(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
