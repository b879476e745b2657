// Package search defines core types, options and sentinel errors for the
// implicit-graph search engine.
package search

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/exp/constraints"
)

// Sentinel errors returned by the search operations.
var (
	// ErrNoStarts indicates that the start collection is empty.
	ErrNoStarts = errors.New("search: at least one start state is required")

	// ErrNilNeighbors indicates that no successor function was supplied.
	ErrNilNeighbors = errors.New("search: neighbor function is nil")

	// ErrNilGoal indicates that no goal predicate was supplied.
	ErrNilGoal = errors.New("search: goal predicate is nil")

	// ErrBadMaxCost indicates a negative reachability bound.
	ErrBadMaxCost = errors.New("search: max cost must be non-negative")

	// ErrNegativeCost indicates that the successor function produced an edge
	// with a negative or NaN cost.
	ErrNegativeCost = errors.New("search: negative edge cost encountered")

	// ErrNonUnitCost indicates an edge cost other than 1 in ModeBFS.
	ErrNonUnitCost = errors.New("search: BFS mode requires unit edge costs")

	// ErrNeighbors wraps an error returned by the successor function.
	ErrNeighbors = errors.New("search: neighbor function failed")

	// ErrExpansionLimit indicates that the configured expansion limit was hit.
	ErrExpansionLimit = errors.New("search: expansion limit reached")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrNoPath is returned by Result.PathTo for a state that was not reached.
	ErrNoPath = errors.New("search: state was not reached")
)

// Cost is the set of numeric types an edge cost may take.
type Cost interface {
	constraints.Integer | constraints.Float
}

// Edge is one outgoing transition produced by a NeighborFunc.
type Edge[S comparable, C Cost] struct {
	To   S
	Cost C
}

// NeighborFunc returns the outgoing edges of s. It must be deterministic per
// state; a returned error aborts the search.
type NeighborFunc[S comparable, C Cost] func(s S) ([]Edge[S, C], error)

// GoalFunc reports whether s terminates a shortest-path query.
type GoalFunc[S comparable] func(s S) bool

// Mode selects the frontier discipline.
type Mode int

const (
	// ModeDijkstra handles arbitrary non-negative costs with a binary heap.
	ModeDijkstra Mode = iota

	// ModeBFS requires unit costs and uses a FIFO queue.
	ModeBFS
)

// String returns the lowercase mode name.
func (m Mode) String() string {
	switch m {
	case ModeDijkstra:
		return "dijkstra"
	case ModeBFS:
		return "bfs"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// contextCheckInterval is how many frontier pops happen between context checks.
const contextCheckInterval = 256

// Option configures a search call via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when the
// operation is invoked.
type Option func(*Options)

// Options holds the parameters of one search call.
type Options struct {
	// Ctx is the parent context for telemetry and is polled for cancellation.
	Ctx context.Context

	// Mode selects BFS or Dijkstra.
	Mode Mode

	// ExpansionLimit, if > 0, caps the number of expanded states.
	ExpansionLimit int

	// Logger receives one debug record per finished search.
	Logger *slog.Logger

	// TracerProvider and MeterProvider default to the global otel providers.
	TracerProvider trace.TracerProvider
	MeterProvider  metric.MeterProvider

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - ModeDijkstra
//   - no expansion limit
//   - a logger that discards everything
//   - the global otel tracer and meter providers.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		Mode:           ModeDijkstra,
		ExpansionLimit: 0,
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		TracerProvider: otel.GetTracerProvider(),
		MeterProvider:  otel.GetMeterProvider(),
	}
}

// WithMode selects the frontier discipline. Unknown modes are an
// ErrOptionViolation.
func WithMode(m Mode) Option {
	return func(o *Options) {
		if m != ModeDijkstra && m != ModeBFS {
			o.err = fmt.Errorf("%w: unknown mode %d", ErrOptionViolation, int(m))
			return
		}
		o.Mode = m
	}
}

// WithContext sets the parent context. A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithExpansionLimit aborts the search with ErrExpansionLimit once n states
// have been expanded.
//
//	n > 0:  limit to n expansions
//	n == 0: explicit no limit
//	n < 0:  invalid option → ErrOptionViolation
func WithExpansionLimit(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: expansion limit cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.ExpansionLimit = n
	}
}

// WithLogger sets the structured logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithTracerProvider overrides the tracer provider used for search spans.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *Options) {
		if tp != nil {
			o.TracerProvider = tp
		}
	}
}

// WithMeterProvider overrides the meter provider used for search metrics.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *Options) {
		if mp != nil {
			o.MeterProvider = mp
		}
	}
}
