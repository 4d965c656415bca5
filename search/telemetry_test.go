package search_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/katalvlaran/lvsearch/search"
)

// TestRun_Telemetry installs recording providers and checks that a run
// produces a span and run metrics.
func TestRun_Telemetry(t *testing.T) {
	spans := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(spans))
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	otel.SetTracerProvider(tp)
	otel.SetMeterProvider(mp)
	t.Cleanup(func() {
		_ = tp.Shutdown(context.Background())
		_ = mp.Shutdown(context.Background())
	})

	res, err := search.Run[string, string](abcd(), search.AlgorithmUCS, nil)
	require.NoError(t, err)
	_, err = search.Run[string, string](abcd(), search.Algorithm("greedy"), nil)
	require.Error(t, err)

	ended := spans.Ended()
	require.Len(t, ended, 2)

	ok := ended[0]
	assert.Equal(t, "search.Run", ok.Name())
	attrs := map[attribute.Key]attribute.Value{}
	for _, kv := range ok.Attributes() {
		attrs[kv.Key] = kv.Value
	}
	assert.Equal(t, "ucs", attrs["search.algorithm"].AsString())
	assert.Equal(t, res.RunID, attrs["search.run_id"].AsString())
	assert.True(t, attrs["search.found"].AsBool())
	assert.EqualValues(t, res.Expanded, attrs["search.expanded"].AsInt64())
	assert.EqualValues(t, 2, attrs["search.path_len"].AsInt64())
	assert.Equal(t, 2.0, attrs["search.cost"].AsFloat64())

	failed := ended[1]
	assert.Equal(t, codes.Error, failed.Status().Code)

	outcomes := runOutcomes(t, reader)
	assert.Equal(t, int64(1), outcomes["found"])
	assert.Equal(t, int64(1), outcomes["error"])
}

// TestRun_TelemetryFollowsGlobalProvider replaces the providers between runs;
// each run reports to the providers installed at the time it starts.
func TestRun_TelemetryFollowsGlobalProvider(t *testing.T) {
	for round := 0; round < 2; round++ {
		spans := tracetest.NewSpanRecorder()
		tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(spans))
		reader := sdkmetric.NewManualReader()
		mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
		otel.SetTracerProvider(tp)
		otel.SetMeterProvider(mp)

		_, err := search.Run[string, string](abcd(), search.AlgorithmBFS, nil)
		require.NoError(t, err)

		assert.Len(t, spans.Ended(), 1, "round %d", round)
		assert.Equal(t, map[string]int64{"found": 1}, runOutcomes(t, reader), "round %d", round)

		require.NoError(t, tp.Shutdown(context.Background()))
		require.NoError(t, mp.Shutdown(context.Background()))
	}
}

// runOutcomes sums search_runs_total by outcome.
func runOutcomes(t *testing.T, reader sdkmetric.Reader) map[string]int64 {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	outcomes := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "search_runs_total" {
				continue
			}
			sum, isSum := m.Data.(metricdata.Sum[int64])
			require.True(t, isSum)
			for _, dp := range sum.DataPoints {
				v, _ := dp.Attributes.Value("outcome")
				outcomes[v.AsString()] += dp.Value
			}
		}
	}
	return outcomes
}
