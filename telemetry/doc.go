// Package telemetry installs the OpenTelemetry providers used by lvsearch.
//
// The search package records one span and three instruments per run through
// the global otel tracer and meter; until Init is called those are no-ops.
//
//	shutdown, err := telemetry.Init(ctx, telemetry.Config{
//		TraceExporter:  telemetry.ExporterStdout,
//		MetricExporter: telemetry.ExporterPrometheus,
//		Registry:       reg,
//	})
//	if err != nil {
//		return err
//	}
//	defer shutdown(context.Background())
//
// Trace exporters: stdout, none. Metric exporters: stdout, prometheus, none.
// The prometheus exporter registers into Config.Registry, so a caller can
// gather search metrics next to its own collectors.
package telemetry
