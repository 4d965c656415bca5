package diag

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultLogFile is the file name FileSink appends to when none is given.
const DefaultLogFile = "search_log.txt"

// Kind classifies a lifecycle event.
type Kind int

const (
	// Start is emitted once, before the first pop.
	Start Kind = iota
	// Expand is emitted for every state popped and examined.
	Expand
	// Goal is emitted when a popped state passes the goal test.
	Goal
)

// String returns the lowercase event name used in log lines.
func (k Kind) String() string {
	switch k {
	case Start:
		return "start"
	case Expand:
		return "expand"
	case Goal:
		return "goal"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Event is one search lifecycle record.
type Event struct {
	// RunID identifies the search invocation that produced the event.
	RunID string

	// Algorithm is the short tag of the strategy: DFS, BFS, UCS or A*.
	Algorithm string

	Kind  Kind
	State any

	// G is the accumulated path cost; meaningful only when HasG.
	G    float64
	HasG bool

	// H is the heuristic estimate; meaningful only when HasH.
	H    float64
	HasH bool

	// PathLen is the number of actions from the start to State.
	PathLen int
}

// String formats e as a single log line without a trailing newline.
func (e Event) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s: %v", e.Algorithm, e.Kind, e.State)
	if e.Kind == Start {
		return b.String()
	}

	switch {
	case e.HasG && e.HasH:
		fmt.Fprintf(&b, " | g=%s h=%s", formatFloat(e.G), formatFloat(e.H))
	case e.HasG:
		fmt.Fprintf(&b, " | g=%s", formatFloat(e.G))
	}
	fmt.Fprintf(&b, " | path_len=%d", e.PathLen)

	return b.String()
}

func formatFloat(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }

// Sink receives lifecycle events. Implementations must not block for long
// and must swallow their own failures.
type Sink interface {
	Record(e Event)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(e Event)

// Record calls f(e).
func (f SinkFunc) Record(e Event) { f(e) }

// Nop discards every event.
type Nop struct{}

// Record does nothing.
func (Nop) Record(Event) {}

// multi fans events out to several sinks in order.
type multi []Sink

func (m multi) Record(e Event) {
	for _, s := range m {
		s.Record(e)
	}
}

// Multi returns a Sink forwarding each event to every non-nil sink given.
// With no usable sinks it returns Nop.
func Multi(sinks ...Sink) Sink {
	out := make(multi, 0, len(sinks))
	for _, s := range sinks {
		if s == nil {
			continue
		}
		if _, ok := s.(Nop); ok {
			continue
		}
		out = append(out, s)
	}
	switch len(out) {
	case 0:
		return Nop{}
	case 1:
		return out[0]
	}

	return out
}
