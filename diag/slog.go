package diag

import (
	"context"
	"log/slog"
)

// SlogSink emits every event as a structured log record.
type SlogSink struct {
	logger *slog.Logger
	level  slog.Level
}

// NewSlogSink returns a sink logging through logger at level.
// A nil logger selects slog.Default().
func NewSlogSink(logger *slog.Logger, level slog.Level) *SlogSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogSink{logger: logger, level: level}
}

// Record logs e with one attribute per populated field.
func (s *SlogSink) Record(e Event) {
	ctx := context.Background()
	if !s.logger.Enabled(ctx, s.level) {
		return
	}

	attrs := make([]slog.Attr, 0, 7)
	attrs = append(attrs,
		slog.String("run", e.RunID),
		slog.String("algorithm", e.Algorithm),
		slog.String("event", e.Kind.String()),
		slog.Any("state", e.State),
	)
	if e.HasG {
		attrs = append(attrs, slog.Float64("g", e.G))
	}
	if e.HasH {
		attrs = append(attrs, slog.Float64("h", e.H))
	}
	if e.Kind != Start {
		attrs = append(attrs, slog.Int("path_len", e.PathLen))
	}

	s.logger.LogAttrs(ctx, s.level, "search event", attrs...)
}
