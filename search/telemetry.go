package search

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/katalvlaran/lvsearch/search"

// instruments holds the run metrics created from one MeterProvider.
type instruments struct {
	runs     metric.Int64Counter
	expanded metric.Int64Histogram
	duration metric.Float64Histogram
}

// byProvider caches instruments per MeterProvider, so a provider installed
// after the first search still receives the metrics of later runs.
var byProvider sync.Map // metric.MeterProvider -> *instruments

// tracer returns a tracer from the current global provider.
func tracer() trace.Tracer {
	return otel.Tracer(instrumentationName)
}

// instrumentsFor creates the run instruments on mp once. Safe to call concurrently.
func instrumentsFor(mp metric.MeterProvider) (*instruments, error) {
	if ins, ok := byProvider.Load(mp); ok {
		return ins.(*instruments), nil
	}

	meter := mp.Meter(instrumentationName)
	runs, err := meter.Int64Counter(
		"search_runs_total",
		metric.WithDescription("Total number of searches by algorithm and outcome"),
	)
	if err != nil {
		return nil, err
	}
	expanded, err := meter.Int64Histogram(
		"search_expanded_states",
		metric.WithDescription("States expanded per search"),
	)
	if err != nil {
		return nil, err
	}
	duration, err := meter.Float64Histogram(
		"search_duration_seconds",
		metric.WithDescription("Wall-clock duration of a search"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	ins, _ := byProvider.LoadOrStore(mp, &instruments{runs: runs, expanded: expanded, duration: duration})
	return ins.(*instruments), nil
}

// outcome labels how a search ended.
func outcome(found bool, err error) string {
	switch {
	case err != nil:
		return "error"
	case found:
		return "found"
	default:
		return "exhausted"
	}
}

// recordRun records the metrics of one finished search.
func recordRun(ctx context.Context, alg Algorithm, d time.Duration, expanded int, found bool, err error) {
	ins, ierr := instrumentsFor(otel.GetMeterProvider())
	if ierr != nil {
		return
	}

	attrs := metric.WithAttributes(
		attribute.String("algorithm", string(alg)),
		attribute.String("outcome", outcome(found, err)),
	)
	ins.runs.Add(ctx, 1, attrs)
	ins.expanded.Record(ctx, int64(expanded), attrs)
	ins.duration.Record(ctx, d.Seconds(), attrs)
}
