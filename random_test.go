package behaviortree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// countingShuffler records shuffle invocations without permuting, so child
// order stays deterministic while the suppression rule is observed.
func countingShuffler(calls *int) func(n int, swap func(i, j int)) {
	return func(int, func(i, j int)) { *calls++ }
}

// reversingShuffler swaps the outermost pairs, reversing the collection.
func reversingShuffler(n int, swap func(i, j int)) {
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		swap(i, j)
	}
}

func TestRandomSelector_NoReshuffleWhileChildRuns(t *testing.T) {
	t.Parallel()

	var calls int
	slow := play(Running, Running, Success)
	s := NewRandomSelector(slow, play(Failure))
	s.shuffler = countingShuffler(&calls)

	require.Equal(t, Running, s.Tick(0))
	require.Equal(t, Running, s.Tick(0))
	require.Equal(t, Success, s.Tick(0))
	require.Equal(t, 1, calls, "shuffling is suppressed while a child is in progress")
	require.Equal(t, 3, slow.ticks, "the same running child is re-evaluated each tick")

	s.Tick(0)
	require.Equal(t, 2, calls, "shuffling resumes once no child is running")
}

func TestRandomSequence_NoReshuffleWhileChildRuns(t *testing.T) {
	t.Parallel()

	var calls int
	slow := play(Running, Success, Running)
	s := NewRandomSequence(slow, play(Success))
	s.shuffler = countingShuffler(&calls)

	require.Equal(t, Running, s.Tick(0))
	require.Equal(t, Success, s.Tick(0))
	require.Equal(t, 1, calls)

	require.Equal(t, Running, s.Tick(0))
	require.Equal(t, 2, calls)
}

func TestRandomSelector_EvaluatesInShuffledOrder(t *testing.T) {
	t.Parallel()

	a := play(Failure)
	b := play(Success)
	s := NewRandomSelector(a, b)
	s.shuffler = reversingShuffler

	require.Equal(t, Success, s.Tick(0))
	require.Equal(t, 0, a.ticks, "b was moved first and its Success stopped traversal")
	require.Equal(t, 1, b.ticks)
}

func TestRandomSelector_SingleChildNeverShuffles(t *testing.T) {
	t.Parallel()

	var calls int
	s := NewRandomSelector(play(Success))
	s.shuffler = countingShuffler(&calls)

	require.Equal(t, Success, s.Tick(0))
	require.Equal(t, 0, calls)
}

func TestRandomComposite_DefaultShuffler(t *testing.T) {
	t.Parallel()

	// No shuffler injected: the rand.Shuffle path must still produce a
	// well-formed result whatever order it picks.
	s := NewRandomSelector(play(Failure), play(Failure), play(Failure))
	require.Equal(t, Failure, s.Tick(0))

	q := NewRandomSequence(play(Success), play(Success))
	require.Equal(t, Success, q.Tick(0))
}
