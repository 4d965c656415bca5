package frontier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/frontier"
)

// drain pops every entry of f in order.
func drain[T any](f frontier.Frontier[T]) []T {
	var out []T
	for !f.Empty() {
		v, ok := f.Pop()
		if !ok {
			break
		}
		out = append(out, v)
	}
	return out
}

func TestStack_LIFO(t *testing.T) {
	s := frontier.NewStack[string](0)
	_, ok := s.Pop()
	assert.False(t, ok, "pop on empty stack")

	for _, v := range []string{"a", "b", "c"} {
		s.Push(v)
	}
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []string{"c", "b", "a"}, drain[string](s))
	assert.True(t, s.Empty())
}

func TestQueue_FIFO(t *testing.T) {
	q := frontier.NewQueue[int](0)
	_, ok := q.Pop()
	assert.False(t, ok, "pop on empty queue")

	for i := 0; i < 5; i++ {
		q.Push(i)
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4}, drain[int](q))
}

// TestQueue_Compaction interleaves pushes and pops past the compaction
// threshold and checks order and length survive.
func TestQueue_Compaction(t *testing.T) {
	q := frontier.NewQueue[int](4)
	next, want := 0, 0
	for round := 0; round < 50; round++ {
		for i := 0; i < 7; i++ {
			q.Push(next)
			next++
		}
		for i := 0; i < 5; i++ {
			v, ok := q.Pop()
			require.True(t, ok)
			require.Equal(t, want, v)
			want++
		}
	}
	assert.Equal(t, next-want, q.Len())
	for _, v := range drain[int](q) {
		require.Equal(t, want, v)
		want++
	}
	assert.Equal(t, next, want)
}

func TestPriority_Order(t *testing.T) {
	p := frontier.NewPriority[string](0)
	p.PushPriority("five", 5)
	p.PushPriority("one", 1)
	p.PushPriority("three", 3)
	p.PushPriority("zero", 0)

	top, pr, ok := p.Peek()
	require.True(t, ok)
	assert.Equal(t, "zero", top)
	assert.Zero(t, pr)

	var got []string
	var prios []float64
	for !p.Empty() {
		v, pr, ok := p.PopPriority()
		require.True(t, ok)
		got = append(got, v)
		prios = append(prios, pr)
	}
	assert.Equal(t, []string{"zero", "one", "three", "five"}, got)
	assert.Equal(t, []float64{0, 1, 3, 5}, prios)

	_, _, ok = p.Peek()
	assert.False(t, ok)
	_, ok = p.Pop()
	assert.False(t, ok)
}

// TestPriority_StableTies checks that equal priorities pop in push order,
// even when interleaved with other priorities.
func TestPriority_StableTies(t *testing.T) {
	p := frontier.NewPriority[int](0)
	for i := 0; i < 20; i++ {
		p.PushPriority(i, float64(i%2))
	}
	var evens, odds []int
	for !p.Empty() {
		v, pr, _ := p.PopPriority()
		if pr == 0 {
			require.Empty(t, odds, "priority 0 popped after priority 1")
			evens = append(evens, v)
		} else {
			odds = append(odds, v)
		}
	}
	assert.Equal(t, []int{0, 2, 4, 6, 8, 10, 12, 14, 16, 18}, evens)
	assert.Equal(t, []int{1, 3, 5, 7, 9, 11, 13, 15, 17, 19}, odds)
}

func TestPriorityFunc(t *testing.T) {
	type item struct {
		name string
		cost float64
	}
	p := frontier.NewPriorityFunc(0, func(it item) float64 { return it.cost })
	p.Push(item{"b", 2})
	p.Push(item{"a", 1})
	p.Push(item{"a2", 1})
	p.Push(item{"c", 3})

	var names []string
	for _, it := range drain[item](p) {
		names = append(names, it.name)
	}
	assert.Equal(t, []string{"a", "a2", "b", "c"}, names)
}
