package problem_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/problem"
)

// line builds the chain 0 -> 1 -> ... -> n with action "+" and step cost 2.
func line(n int) problem.Funcs[int, string] {
	return problem.Funcs[int, string]{
		Start: func() (int, error) { return 0, nil },
		Goal:  func(s int) (bool, error) { return s == n, nil },
		Expand: func(s int) ([]problem.Successor[int, string], error) {
			if s >= n {
				return nil, nil
			}
			return []problem.Successor[int, string]{{State: s + 1, Action: "+", Cost: 2}}, nil
		},
		Cost: func(actions []string) (float64, error) { return float64(2 * len(actions)), nil },
	}
}

func TestFuncs_NotImplemented(t *testing.T) {
	var f problem.Funcs[string, int]

	_, err := f.StartState()
	assert.ErrorIs(t, err, problem.ErrNotImplemented)
	_, err = f.IsGoal("x")
	assert.ErrorIs(t, err, problem.ErrNotImplemented)
	_, err = f.Successors("x")
	assert.ErrorIs(t, err, problem.ErrNotImplemented)
	_, err = f.CostOfActions([]int{1})
	assert.ErrorIs(t, err, problem.ErrNotImplemented)
}

func TestFuncs_Delegates(t *testing.T) {
	p := line(3)

	start, err := p.StartState()
	require.NoError(t, err)
	assert.Equal(t, 0, start)

	ok, err := p.IsGoal(3)
	require.NoError(t, err)
	assert.True(t, ok)

	succs, err := p.Successors(1)
	require.NoError(t, err)
	require.Len(t, succs, 1)
	assert.Equal(t, 2, succs[0].State)

	c, err := p.CostOfActions([]string{"+", "+"})
	require.NoError(t, err)
	assert.Equal(t, 4.0, c)
}

func TestNullHeuristic(t *testing.T) {
	h, err := problem.NullHeuristic[int, string](42, line(1))
	require.NoError(t, err)
	assert.Zero(t, h)
}

func TestReplay(t *testing.T) {
	p := line(3)

	final, cost, err := problem.Replay[int, string](p, []string{"+", "+", "+"})
	require.NoError(t, err)
	assert.Equal(t, 3, final)
	assert.Equal(t, 6.0, cost)

	final, cost, err = problem.Replay[int, string](p, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, final)
	assert.Zero(t, cost)
}

func TestReplay_IllegalAction(t *testing.T) {
	_, _, err := problem.Replay[int, string](line(3), []string{"+", "-"})
	assert.ErrorIs(t, err, problem.ErrIllegalAction)

	// running past the end of the chain offers no successors
	_, _, err = problem.Replay[int, string](line(1), []string{"+", "+"})
	assert.ErrorIs(t, err, problem.ErrIllegalAction)
}

func TestReplay_PropagatesProblemErrors(t *testing.T) {
	boom := errors.New("boom")
	p := line(2)
	p.Expand = func(int) ([]problem.Successor[int, string], error) { return nil, boom }

	_, _, err := problem.Replay[int, string](p, []string{"+"})
	assert.Same(t, boom, err)
}

func TestVerify(t *testing.T) {
	p := line(2)

	assert.NoError(t, problem.Verify[int, string](p, []string{"+", "+"}))
	assert.ErrorIs(t, problem.Verify[int, string](p, []string{"+"}), problem.ErrNotGoal)
	assert.ErrorIs(t, problem.Verify[int, string](p, []string{"x"}), problem.ErrIllegalAction)
}
