package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsearch/config"
	"github.com/katalvlaran/lvsearch/diag"
	"github.com/katalvlaran/lvsearch/search"
	"github.com/katalvlaran/lvsearch/telemetry"
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	out, errOut io.Writer

	// persistent flags
	configPath    string
	eventFile     string
	logLevel      string
	maxExpansions int
	timeout       time.Duration
	trace         bool
	metrics       bool

	cfg      config.Config
	logger   *slog.Logger
	registry *prometheus.Registry
	sink     diag.Sink
	shutdown func(context.Context) error
}

// shutdownTimeout bounds the final telemetry flush.
const shutdownTimeout = 5 * time.Second

// run executes the command line args. Telemetry is flushed and the metrics
// dump printed after the subcommand returns, whether it failed or not.
func run(args []string, out, errOut io.Writer) error {
	a := &app{out: out, errOut: errOut}
	root := newRootCmd(a)
	root.SetArgs(args)
	err := root.Execute()
	if ferr := a.finish(); ferr != nil {
		return errors.Join(err, ferr)
	}

	return err
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "lvsearch",
		Short: "Graph and tree search: DFS, BFS, UCS and A*",
		Long: `lvsearch runs depth-first, breadth-first, uniform-cost and A* search on
maze layouts and on explicit graphs described in YAML.

Examples:
  lvsearch maze --layout tinyMaze --algo bfs
  lvsearch maze --layout mediumMaze --algo astar --heuristic manhattan --log-file -
  lvsearch graph testdata/romania.yaml --algo ucs
  lvsearch compare --layout openMaze --metrics`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&a.eventFile, "log-file", "", `diagnostic event log file ("-" for `+diag.DefaultLogFile+`)`)
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.IntVar(&a.maxExpansions, "max-expansions", 0, "abort after this many expansions (0 = unbounded)")
	pf.DurationVar(&a.timeout, "timeout", 0, "abort a search after this long (0 = no limit)")
	pf.BoolVar(&a.trace, "trace", false, "print OpenTelemetry spans to stderr")
	pf.BoolVar(&a.metrics, "metrics", false, "print Prometheus metrics after the run")

	root.AddCommand(
		newMazeCmd(a),
		newGraphCmd(a),
		newCompareCmd(a),
		newLayoutsCmd(a),
	)
	return root
}

// setup resolves configuration and builds the logger, telemetry and sinks.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-file") {
		cfg.Log.EventFile = a.eventFile
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("max-expansions") {
		cfg.Search.MaxExpansions = a.maxExpansions
	}
	if flags.Changed("timeout") {
		cfg.Search.Timeout = a.timeout
	}
	if a.trace {
		cfg.Telemetry.TraceExporter = telemetry.ExporterStdout
	}
	if a.metrics {
		cfg.Telemetry.MetricExporter = telemetry.ExporterPrometheus
	}
	applyCommandFlags(cmd, &cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	lvl, _ := cfg.Log.SlogLevel()
	opts := &slog.HandlerOptions{Level: lvl}
	if cfg.Log.Format == "json" {
		a.logger = slog.New(slog.NewJSONHandler(a.errOut, opts))
	} else {
		a.logger = slog.New(slog.NewTextHandler(a.errOut, opts))
	}

	a.registry = prometheus.NewRegistry()
	a.shutdown, err = telemetry.Init(cmd.Context(), telemetry.Config{
		ServiceName:    cfg.Telemetry.ServiceName,
		ServiceVersion: "dev",
		TraceExporter:  cfg.Telemetry.TraceExporter,
		MetricExporter: cfg.Telemetry.MetricExporter,
		Writer:         a.errOut,
		Registry:       a.registry,
	})
	if err != nil {
		return err
	}

	sinks := []diag.Sink{diag.NewSlogSink(a.logger, slog.LevelDebug)}
	if a.metrics {
		sinks = append(sinks, diag.NewPromSink(a.registry))
	}
	if cfg.Log.EventFile != "" {
		path := cfg.Log.EventFile
		if path == "-" {
			path = ""
		}
		fs := diag.NewFileSink(path)
		a.logger.Info("writing diagnostic events", "file", fs.Path())
		sinks = append(sinks, fs)
	}
	a.sink = diag.Multi(sinks...)

	return nil
}

// finish prints the metrics dump, then flushes and stops telemetry.
// The registry is gathered before shutdown: a stopped MeterProvider no
// longer reports through the Prometheus exporter.
func (a *app) finish() error {
	var errs []error
	if a.metrics && a.registry != nil {
		errs = append(errs, a.dumpMetrics())
	}
	if a.shutdown != nil {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := a.shutdown(ctx); err != nil {
			a.logger.Warn("telemetry shutdown", "err", err)
		}
		a.shutdown = nil
	}

	return errors.Join(errs...)
}

// dumpMetrics writes every registered family in the Prometheus text format.
func (a *app) dumpMetrics() error {
	families, err := a.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	enc := expfmt.NewEncoder(a.out, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("encode metrics: %w", err)
		}
	}
	return nil
}

// searchOptions turns the resolved configuration into engine options.
// The returned cancel must be called when the search is done.
func (a *app) searchOptions(ctx context.Context) ([]search.Option, context.CancelFunc) {
	cancel := context.CancelFunc(func() {})
	if a.cfg.Search.Timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, a.cfg.Search.Timeout)
	}
	return []search.Option{
		search.WithContext(ctx),
		search.WithSink(a.sink),
		search.WithMaxExpansions(a.cfg.Search.MaxExpansions),
	}, cancel
}

// applyCommandFlags copies the subcommand-local flags that were set into cfg.
func applyCommandFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	str := func(name string, dst *string) {
		if f := flags.Lookup(name); f != nil && f.Changed {
			*dst = f.Value.String()
		}
	}
	str("algo", &cfg.Search.Algorithm)
	str("heuristic", &cfg.Search.Heuristic)
	str("layout", &cfg.Maze.Layout)
	str("layout-file", &cfg.Maze.LayoutFile)
	str("cost", &cfg.Maze.Cost)
}
