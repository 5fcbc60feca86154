package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/linear-cli/linear/internal/resolver"
)

const directoryScopeName = "github.com/linear-cli/linear/directory"

// InstrumentedDirectory wraps resolver.Directory with OTel tracing and
// metrics. Every fetch gets a span and is counted in linear.directory.*
// metrics. Use WrapDirectory to create one.
type InstrumentedDirectory struct {
	inner      resolver.Directory
	tracer     trace.Tracer
	fetches    metric.Int64Counter
	dur        metric.Float64Histogram
	errs       metric.Int64Counter
	candidates metric.Int64Histogram
}

// WrapDirectory returns d decorated with OTel instrumentation.
// When telemetry is disabled, d is returned as-is.
func WrapDirectory(d resolver.Directory) resolver.Directory {
	if !Enabled() {
		return d
	}
	m := Meter(directoryScopeName)
	fetches, _ := m.Int64Counter("linear.directory.fetches",
		metric.WithDescription("Total candidate fetches issued by the resolver"),
	)
	dur, _ := m.Float64Histogram("linear.directory.fetch.duration",
		metric.WithDescription("Candidate fetch duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	errs, _ := m.Int64Counter("linear.directory.errors",
		metric.WithDescription("Total failed candidate fetches"),
	)
	candidates, _ := m.Int64Histogram("linear.directory.candidates",
		metric.WithDescription("Candidates returned per fetch"),
	)
	return &InstrumentedDirectory{
		inner:      d,
		tracer:     Tracer(directoryScopeName),
		fetches:    fetches,
		dur:        dur,
		errs:       errs,
		candidates: candidates,
	}
}

// op starts a span and counts the fetch for kind.
func (d *InstrumentedDirectory) op(ctx context.Context, kind resolver.Kind, attrs ...attribute.KeyValue) (context.Context, trace.Span, time.Time, []attribute.KeyValue) {
	all := append([]attribute.KeyValue{attribute.String("linear.kind", string(kind))}, attrs...)
	ctx, span := d.tracer.Start(ctx, "directory."+string(kind),
		trace.WithAttributes(all...),
		trace.WithSpanKind(trace.SpanKindClient),
	)
	d.fetches.Add(ctx, 1, metric.WithAttributes(all...))
	return ctx, span, time.Now(), all
}

// done ends the span, records duration, candidate count and optional error.
func (d *InstrumentedDirectory) done(ctx context.Context, span trace.Span, start time.Time, n int, err error, attrs []attribute.KeyValue) {
	ms := float64(time.Since(start).Milliseconds())
	d.dur.Record(ctx, ms, metric.WithAttributes(attrs...))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		d.errs.Add(ctx, 1, metric.WithAttributes(attrs...))
	} else {
		span.SetAttributes(attribute.Int("linear.candidates", n))
		d.candidates.Record(ctx, int64(n), metric.WithAttributes(attrs...))
	}
	span.End()
}

func (d *InstrumentedDirectory) Teams(ctx context.Context) ([]resolver.Candidate, error) {
	ctx, span, t, attrs := d.op(ctx, resolver.KindTeam)
	out, err := d.inner.Teams(ctx)
	d.done(ctx, span, t, len(out), err, attrs)
	return out, err
}

func (d *InstrumentedDirectory) Users(ctx context.Context, limit int) ([]resolver.Candidate, error) {
	ctx, span, t, attrs := d.op(ctx, resolver.KindUser, attribute.Int("linear.limit", limit))
	out, err := d.inner.Users(ctx, limit)
	d.done(ctx, span, t, len(out), err, attrs)
	return out, err
}

func (d *InstrumentedDirectory) WorkflowStates(ctx context.Context, teamID string) ([]resolver.Candidate, error) {
	ctx, span, t, attrs := d.op(ctx, resolver.KindState, attribute.String("linear.team_id", teamID))
	out, err := d.inner.WorkflowStates(ctx, teamID)
	d.done(ctx, span, t, len(out), err, attrs)
	return out, err
}

func (d *InstrumentedDirectory) Labels(ctx context.Context, limit int) ([]resolver.Candidate, error) {
	ctx, span, t, attrs := d.op(ctx, resolver.KindLabel, attribute.Int("linear.limit", limit))
	out, err := d.inner.Labels(ctx, limit)
	d.done(ctx, span, t, len(out), err, attrs)
	return out, err
}

func (d *InstrumentedDirectory) Viewer(ctx context.Context) (resolver.Candidate, error) {
	ctx, span, t, attrs := d.op(ctx, resolver.KindUser, attribute.Bool("linear.viewer", true))
	out, err := d.inner.Viewer(ctx)
	n := 1
	if err != nil {
		n = 0
	}
	d.done(ctx, span, t, n, err, attrs)
	return out, err
}
