package behaviortree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSequence_NoChildren(t *testing.T) {
	t.Parallel()

	s := NewSequence()
	require.Equal(t, Error, s.Tick(0))
	require.Equal(t, Error, s.Tick(0), "empty composite must error on every tick")
}

func TestSequence_FirstFailureStops(t *testing.T) {
	t.Parallel()

	ok := play(Success)
	failed := play(Failure)
	untouched := play(Success)
	s := NewSequence(ok, failed, untouched)

	require.Equal(t, Failure, s.Tick(0))
	require.Equal(t, 0, untouched.ticks)

	// No cross-tick memory once terminal: the next evaluation restarts from
	// the first child.
	require.Equal(t, Failure, s.Tick(0))
	require.Equal(t, 2, ok.ticks)
	require.Equal(t, 2, failed.ticks)
}

func TestSequence_AllSucceed(t *testing.T) {
	t.Parallel()

	a, b, c := play(Success), play(Success), play(Success)
	s := NewSequence(a, b, c)

	require.Equal(t, Success, s.Tick(0))
	require.Equal(t, 1, a.ticks)
	require.Equal(t, 1, b.ticks)
	require.Equal(t, 1, c.ticks)
}

func TestSequence_ResumesRunningChild(t *testing.T) {
	t.Parallel()

	first := play(Success)
	slow := play(Running, Running, Success)
	last := play(Success)
	s := NewSequence(first, slow, last)

	require.Equal(t, Running, s.Tick(0))
	require.Equal(t, Running, s.Tick(0))
	require.Equal(t, Success, s.Tick(0))
	require.Equal(t, 1, first.ticks, "already-decided siblings are not restarted")
	require.Equal(t, 3, slow.ticks)
	require.Equal(t, 1, last.ticks, "iteration resumes after the running child once it succeeds")
}

func TestSequence_RunningChildFailureStops(t *testing.T) {
	t.Parallel()

	slow := play(Running, Failure)
	untouched := play(Success)
	s := NewSequence(slow, untouched)

	require.Equal(t, Running, s.Tick(0))
	require.Equal(t, Failure, s.Tick(0))
	require.Equal(t, 0, untouched.ticks)
}

func TestSequence_ErrorIgnoredByDefault(t *testing.T) {
	t.Parallel()

	broken := play(Error)
	last := play(Success)
	s := NewSequence(broken, last)

	require.Equal(t, Success, s.Tick(0), "an ignorable Error is absorbed like Success")
	require.Equal(t, 1, last.ticks)
}

func TestSequence_ErrorPropagatesWhenNotIgnored(t *testing.T) {
	t.Parallel()

	broken := play(Error)
	untouched := play(Success)
	s := NewSequence(broken, untouched)
	s.SetPolicy(Policy{IgnoreError: false})

	require.Equal(t, Error, s.Tick(0))
	require.Equal(t, 0, untouched.ticks)
}

func TestSequence_Reset(t *testing.T) {
	t.Parallel()

	slow := play(Running, Success)
	last := play(Success)
	s := NewSequence(slow, last)

	require.Equal(t, Running, s.Tick(0))
	s.Reset()
	require.Equal(t, 1, slow.resets)
	require.Equal(t, 1, last.resets)

	// The running index is gone and the rewound script replays.
	require.Equal(t, Running, s.Tick(0))
	require.Equal(t, Success, s.Tick(0))
}
