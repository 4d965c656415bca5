package search

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvsearch/diag"
)

// Sentinel errors originated by the search engine itself.
var (
	// ErrNilProblem is returned when a nil problem is passed.
	ErrNilProblem = errors.New("search: problem is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrExpansionLimit is returned when WithMaxExpansions is exceeded.
	ErrExpansionLimit = errors.New("search: expansion limit reached")

	// ErrUnknownAlgorithm is returned by ParseAlgorithm and Run for an unknown name.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")
)

// Algorithm names a search strategy.
type Algorithm string

const (
	// AlgorithmDFS is depth-first search.
	AlgorithmDFS Algorithm = "dfs"
	// AlgorithmBFS is breadth-first search.
	AlgorithmBFS Algorithm = "bfs"
	// AlgorithmUCS is uniform-cost search.
	AlgorithmUCS Algorithm = "ucs"
	// AlgorithmAStar is A* search.
	AlgorithmAStar Algorithm = "astar"
)

// Algorithms lists every strategy in presentation order.
func Algorithms() []Algorithm {
	return []Algorithm{AlgorithmBFS, AlgorithmDFS, AlgorithmUCS, AlgorithmAStar}
}

// Tag returns the short upper-case label used in diagnostic events.
func (a Algorithm) Tag() string {
	switch a {
	case AlgorithmDFS:
		return "DFS"
	case AlgorithmBFS:
		return "BFS"
	case AlgorithmUCS:
		return "UCS"
	case AlgorithmAStar:
		return "A*"
	default:
		return strings.ToUpper(string(a))
	}
}

// Title returns the human-readable strategy name.
func (a Algorithm) Title() string {
	switch a {
	case AlgorithmDFS:
		return "Depth First Search"
	case AlgorithmBFS:
		return "Breadth First Search"
	case AlgorithmUCS:
		return "Uniform Cost Search"
	case AlgorithmAStar:
		return "A Star Search"
	default:
		return string(a)
	}
}

// String implements fmt.Stringer.
func (a Algorithm) String() string { return string(a) }

// ParseAlgorithm accepts short names (dfs, bfs, ucs, astar, a*), full
// function names (depthFirstSearch, uniform-cost-search, ...) and titles
// ("A Star Search"). Matching ignores case, spaces, '-' and '_'.
func ParseAlgorithm(name string) (Algorithm, error) {
	key := strings.ToLower(name)
	key = strings.NewReplacer(" ", "", "-", "", "_", "").Replace(key)
	switch key {
	case "dfs", "depthfirst", "depthfirstsearch":
		return AlgorithmDFS, nil
	case "bfs", "breadthfirst", "breadthfirstsearch":
		return AlgorithmBFS, nil
	case "ucs", "uniformcost", "uniformcostsearch":
		return AlgorithmUCS, nil
	case "astar", "a*", "astarsearch", "a*search":
		return AlgorithmAStar, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Option configures a search via functional arguments. An invalid Option is
// recorded and surfaced as ErrOptionViolation when the search starts.
type Option func(*Options)

// Options holds the parameters of a single search invocation.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per frontier pop.
	Ctx context.Context

	// Sink receives lifecycle events. A nil Sink is replaced by diag.Nop.
	Sink diag.Sink

	// MaxExpansions, if > 0, bounds the number of expanded states.
	// Zero means unbounded.
	MaxExpansions int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns background context, a no-op sink and no expansion bound.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		Sink:          diag.Nop{},
		MaxExpansions: 0,
	}
}

// WithContext sets a context for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithSink routes lifecycle events to sink. A nil sink is ignored.
func WithSink(sink diag.Sink) Option {
	return func(o *Options) {
		if sink != nil {
			o.Sink = sink
		}
	}
}

// WithMaxExpansions bounds the number of expanded states.
//
//	n > 0:  fail with ErrExpansionLimit once n states have been expanded
//	n == 0: explicit no limit
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// Result is the full outcome of one search.
type Result[S comparable, A any] struct {
	// RunID identifies this invocation in diagnostic events.
	RunID string

	// Algorithm is the strategy that produced the result.
	Algorithm Algorithm

	// Actions lead from the start state to Goal. Empty, never nil, when the
	// start is a goal or when no goal was reached.
	Actions []A

	// Cost is the accumulated step cost of Actions.
	Cost float64

	// Expanded counts the states popped and examined.
	Expanded int

	// Found reports whether a goal state was reached.
	Found bool

	// Goal is the goal state reached; zero value when !Found.
	Goal S
}
