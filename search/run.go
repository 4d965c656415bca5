package search

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/lvsearch/diag"
	"github.com/katalvlaran/lvsearch/problem"
)

// Run executes the strategy alg on p and returns the full Result.
//
// h is consulted only by AlgorithmAStar; nil selects problem.NullHeuristic.
// Returns ErrNilProblem, ErrUnknownAlgorithm or ErrOptionViolation for invalid
// input, ErrExpansionLimit or a context error when a bound is hit, and any
// error of the problem or heuristic unchanged.
func Run[S comparable, A any](
	p problem.Problem[S, A],
	alg Algorithm,
	h problem.Heuristic[S, A],
	opts ...Option,
) (*Result[S, A], error) {
	if p == nil {
		return nil, ErrNilProblem
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	// A custom Option may clear these fields directly.
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.Sink == nil {
		o.Sink = diag.Nop{}
	}
	if h == nil {
		h = problem.NullHeuristic[S, A]
	}

	r := &runner[S, A]{
		p:     p,
		opts:  o,
		alg:   alg,
		runID: uuid.NewString(),
		withG: alg == AlgorithmUCS || alg == AlgorithmAStar,
		withH: alg == AlgorithmAStar,
	}

	ctx, span := tracer().Start(o.Ctx, "search.Run",
		trace.WithAttributes(
			attribute.String("search.algorithm", string(alg)),
			attribute.String("search.run_id", r.runID),
		),
	)
	defer span.End()
	r.opts.Ctx = ctx
	began := time.Now()

	var (
		res *Result[S, A]
		err error
	)
	switch alg {
	case AlgorithmDFS:
		res, err = r.depthFirst()
	case AlgorithmBFS:
		res, err = r.breadthFirst()
	case AlgorithmUCS:
		res, err = r.uniformCost()
	case AlgorithmAStar:
		res, err = r.aStar(h)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownAlgorithm, string(alg))
	}

	found := res != nil && res.Found
	recordRun(ctx, alg, time.Since(began), r.expanded, found, err)
	span.SetAttributes(
		attribute.Int("search.expanded", r.expanded),
		attribute.Bool("search.found", found),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(
		attribute.Int("search.path_len", len(res.Actions)),
		attribute.Float64("search.cost", res.Cost),
	)

	return res, nil
}
