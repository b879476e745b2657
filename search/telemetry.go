package search

import (
	"context"
	"log/slog"
	"reflect"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// instrumentationName scopes the tracer and meter of this package.
const instrumentationName = "github.com/katalvlaran/gridpath/search"

// Operation names used for spans, metrics and logs.
const (
	opShortestDistance = "ShortestDistance"
	opShortestPath     = "ShortestPath"
	opReachableWithin  = "ReachableWithin"
	opExplore          = "Explore"
	opOptimalStates    = "OptimalStates"
)

// instruments are the metrics recorded once per search call.
type instruments struct {
	runs     metric.Int64Counter
	expanded metric.Int64Histogram
	duration metric.Float64Histogram
}

// instrumentCache holds one *instruments per MeterProvider.
var instrumentCache sync.Map

// instrumentsFor returns the instruments of mp, creating them on first use.
// Providers whose dynamic type is not comparable cannot key the cache and
// get fresh instruments per call.
func instrumentsFor(mp metric.MeterProvider) (*instruments, error) {
	if typ := reflect.TypeOf(mp); typ == nil || !typ.Comparable() {
		return newInstruments(mp)
	}
	if v, ok := instrumentCache.Load(mp); ok {
		return v.(*instruments), nil
	}
	inst, err := newInstruments(mp)
	if err != nil {
		return nil, err
	}
	v, _ := instrumentCache.LoadOrStore(mp, inst)
	return v.(*instruments), nil
}

func newInstruments(mp metric.MeterProvider) (*instruments, error) {
	meter := mp.Meter(instrumentationName)

	runs, err := meter.Int64Counter(
		"search_runs_total",
		metric.WithDescription("Total number of search calls"),
	)
	if err != nil {
		return nil, err
	}

	expanded, err := meter.Int64Histogram(
		"search_expanded_states",
		metric.WithDescription("Number of states expanded per search call"),
	)
	if err != nil {
		return nil, err
	}

	duration, err := meter.Float64Histogram(
		"search_duration_seconds",
		metric.WithDescription("Duration of search calls"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	return &instruments{runs: runs, expanded: expanded, duration: duration}, nil
}

// telemetry follows one search call from validation to termination.
type telemetry struct {
	ctx    context.Context
	span   trace.Span
	op     string
	starts int
	cfg    Options
	start  time.Time
	inst   *instruments
}

// startTelemetry opens the span for op and prepares the instruments.
// Instrument creation failures only disable metrics.
func startTelemetry(cfg Options, op string, starts int) *telemetry {
	ctx, span := cfg.TracerProvider.Tracer(instrumentationName).Start(cfg.Ctx, "search."+op,
		trace.WithAttributes(
			attribute.String("search.mode", cfg.Mode.String()),
			attribute.Int("search.starts", starts),
		),
	)
	inst, err := instrumentsFor(cfg.MeterProvider)
	if err != nil {
		cfg.Logger.Debug("search metrics disabled", slog.String("error", err.Error()))
	}

	return &telemetry{ctx: ctx, span: span, op: op, starts: starts, cfg: cfg, start: time.Now(), inst: inst}
}

// finish closes the span, records metrics and emits the debug log record.
func (t *telemetry) finish(stats runStats, found bool, err error) {
	elapsed := time.Since(t.start)

	t.span.SetAttributes(
		attribute.Int("search.expanded", stats.expanded),
		attribute.Int("search.pushed", stats.pushed),
		attribute.Bool("search.found", found),
	)
	if err != nil {
		t.span.RecordError(err)
		t.span.SetStatus(codes.Error, err.Error())
	}
	t.span.End()

	if t.inst != nil {
		attrs := metric.WithAttributes(
			attribute.String("op", t.op),
			attribute.String("mode", t.cfg.Mode.String()),
			attribute.Bool("found", found),
			attribute.Bool("success", err == nil),
		)
		t.inst.runs.Add(t.ctx, 1, attrs)
		t.inst.expanded.Record(t.ctx, int64(stats.expanded), attrs)
		t.inst.duration.Record(t.ctx, elapsed.Seconds(), attrs)
	}

	t.cfg.Logger.Debug("search finished",
		slog.String("op", t.op),
		slog.String("mode", t.cfg.Mode.String()),
		slog.Int("starts", t.starts),
		slog.Int("expanded", stats.expanded),
		slog.Int("pushed", stats.pushed),
		slog.Bool("found", found),
		slog.Duration("duration", elapsed),
		slog.Any("error", err),
	)
}
