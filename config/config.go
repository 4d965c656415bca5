// Package config holds the lvsearch command configuration.
//
// Values are resolved with priority flags > environment > file > defaults.
// The command applies flags itself; Load covers the rest.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvsearch/search"
	"github.com/katalvlaran/lvsearch/telemetry"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Heuristic names understood by the maze command.
const (
	HeuristicNull      = "null"
	HeuristicManhattan = "manhattan"
	HeuristicEuclidean = "euclidean"
)

// Cost function names understood by the maze command.
const (
	CostUnit     = "unit"
	CostStayEast = "stayeast"
	CostStayWest = "staywest"
)

// Config is the top-level configuration.
type Config struct {
	// Search selects the strategy and its bounds.
	Search SearchConfig `yaml:"search"`

	// Maze selects the layout for the maze and compare commands.
	Maze MazeConfig `yaml:"maze"`

	// Log configures the process logger and the diagnostic event log.
	Log LogConfig `yaml:"log"`

	// Telemetry configures the OpenTelemetry exporters.
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// SearchConfig contains search settings.
type SearchConfig struct {
	Algorithm     string        `yaml:"algorithm"`
	Heuristic     string        `yaml:"heuristic"`
	MaxExpansions int           `yaml:"max_expansions"`
	Timeout       time.Duration `yaml:"timeout"`
}

// MazeConfig contains maze settings. LayoutFile wins over Layout.
type MazeConfig struct {
	Layout     string `yaml:"layout"`
	LayoutFile string `yaml:"layout_file"`
	Cost       string `yaml:"cost"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Level is debug, info, warn or error.
	Level string `yaml:"level"`

	// Format is text or json.
	Format string `yaml:"format"`

	// EventFile receives the diagnostic event log; empty disables it.
	EventFile string `yaml:"event_file"`
}

// TelemetryConfig contains telemetry settings.
type TelemetryConfig struct {
	ServiceName    string `yaml:"service_name"`
	TraceExporter  string `yaml:"trace_exporter"`
	MetricExporter string `yaml:"metric_exporter"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Search: SearchConfig{
			Algorithm: string(search.AlgorithmAStar),
			Heuristic: HeuristicManhattan,
		},
		Maze: MazeConfig{
			Layout: "tinyMaze",
			Cost:   CostUnit,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Telemetry: TelemetryConfig{
			ServiceName:    "lvsearch",
			TraceExporter:  telemetry.ExporterNone,
			MetricExporter: telemetry.ExporterNone,
		},
	}
}

// Load returns Default overlaid with the YAML file at path (when non-empty)
// and LVSEARCH_* environment variables, then validated. Unknown keys in the
// file are an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("load config file: %w", err)
		}
	}
	loadEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func loadEnv(cfg *Config) {
	if v := os.Getenv("LVSEARCH_ALGORITHM"); v != "" {
		cfg.Search.Algorithm = v
	}
	if v := os.Getenv("LVSEARCH_HEURISTIC"); v != "" {
		cfg.Search.Heuristic = v
	}
	if v := os.Getenv("LVSEARCH_MAX_EXPANSIONS"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.Search.MaxExpansions = i
		}
	}
	if v := os.Getenv("LVSEARCH_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Search.Timeout = d
		}
	}
	if v := os.Getenv("LVSEARCH_LAYOUT"); v != "" {
		cfg.Maze.Layout = v
	}
	if v := os.Getenv("LVSEARCH_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LVSEARCH_EVENT_FILE"); v != "" {
		cfg.Log.EventFile = v
	}
	if v := os.Getenv("OTEL_TRACES_EXPORTER"); v != "" {
		cfg.Telemetry.TraceExporter = v
	}
	if v := os.Getenv("OTEL_METRICS_EXPORTER"); v != "" {
		cfg.Telemetry.MetricExporter = v
	}
}

// Validate checks every field and returns the first problem found.
func (c Config) Validate() error {
	if _, err := search.ParseAlgorithm(c.Search.Algorithm); err != nil {
		return fmt.Errorf("%w: search.algorithm: %v", ErrInvalid, err)
	}
	if !oneOf(c.Search.Heuristic, HeuristicNull, HeuristicManhattan, HeuristicEuclidean) {
		return fmt.Errorf("%w: search.heuristic %q", ErrInvalid, c.Search.Heuristic)
	}
	if c.Search.MaxExpansions < 0 {
		return fmt.Errorf("%w: search.max_expansions must be >= 0", ErrInvalid)
	}
	if c.Search.Timeout < 0 {
		return fmt.Errorf("%w: search.timeout must be >= 0", ErrInvalid)
	}
	if !oneOf(c.Maze.Cost, CostUnit, CostStayEast, CostStayWest) {
		return fmt.Errorf("%w: maze.cost %q", ErrInvalid, c.Maze.Cost)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalid, err)
	}
	if !oneOf(c.Log.Format, "text", "json") {
		return fmt.Errorf("%w: log.format %q", ErrInvalid, c.Log.Format)
	}
	if !oneOf(c.Telemetry.TraceExporter, telemetry.ExporterNone, telemetry.ExporterStdout) {
		return fmt.Errorf("%w: telemetry.trace_exporter %q", ErrInvalid, c.Telemetry.TraceExporter)
	}
	if !oneOf(c.Telemetry.MetricExporter, telemetry.ExporterNone, telemetry.ExporterStdout, telemetry.ExporterPrometheus) {
		return fmt.Errorf("%w: telemetry.metric_exporter %q", ErrInvalid, c.Telemetry.MetricExporter)
	}
	return nil
}

// SlogLevel parses Level.
func (c LogConfig) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	err := lvl.UnmarshalText([]byte(c.Level))
	return lvl, err
}

func oneOf(v string, allowed ...string) bool {
	v = strings.ToLower(v)
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}
