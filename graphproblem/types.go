package graphproblem

import (
	"errors"
	"sync"
)

// Sentinel errors for graph construction and action replay.
var (
	// ErrEmptyStart indicates the start state ID is empty.
	ErrEmptyStart = errors.New("graphproblem: start state is empty")

	// ErrNoGoals indicates no goal state was given.
	ErrNoGoals = errors.New("graphproblem: at least one goal state is required")

	// ErrEmptyStateID indicates an edge endpoint or goal with an empty ID.
	ErrEmptyStateID = errors.New("graphproblem: state ID is empty")

	// ErrNegativeCost indicates an edge with a negative or NaN cost.
	ErrNegativeCost = errors.New("graphproblem: edge cost must be non-negative")

	// ErrUnknownAction indicates an action with no matching edge from the current state.
	ErrUnknownAction = errors.New("graphproblem: unknown action")
)

// Edge is a labelled transition From→To.
type Edge struct {
	ID     string  `yaml:"-"`
	From   string  `yaml:"from"`
	To     string  `yaml:"to"`
	Action string  `yaml:"action,omitempty"`
	Cost   float64 `yaml:"cost"`

	mirror bool // added by WithUndirected
}

// Option configures a Graph before any edge is added.
type Option func(g *Graph)

// WithUndirected mirrors every edge: AddEdge(a, b) also adds b→a, labelled
// "b->a" unless an explicit action was given, in which case both directions
// share it.
func WithUndirected() Option {
	return func(g *Graph) { g.undirected = true }
}

// Graph is an explicit search problem.
type Graph struct {
	muEdge sync.RWMutex // guards states, adj, edges, heuristic
	muLog  sync.Mutex   // guards expanded

	undirected bool

	start string
	goals map[string]struct{}

	nextEdgeID uint64
	states     []string // insertion order
	known      map[string]struct{}
	edges      []*Edge
	adj        map[string][]*Edge

	heuristic map[string]float64
	expanded  []string
}
