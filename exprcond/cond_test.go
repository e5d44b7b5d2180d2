package exprcond

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mgd-games/behaviortree"
)

var _ behaviortree.Node = (*Cond)(nil)

func TestNew_CompileErrorsAreEager(t *testing.T) {
	t.Parallel()

	bb := new(behaviortree.Blackboard)

	_, err := New("health <", bb)
	require.Error(t, err)

	// AsBool: a well-formed expression of the wrong type is still a
	// compile error, caught at construction.
	_, err = New("1 + 2", bb)
	require.Error(t, err)
}

func TestNew_NilBlackboard(t *testing.T) {
	t.Parallel()

	_, err := New("true", nil)
	require.Error(t, err)
}

func TestCond_EvaluatesAgainstBlackboard(t *testing.T) {
	t.Parallel()

	bb := new(behaviortree.Blackboard)
	bb.Set("health", 12)

	low, err := New("health < 20", bb)
	require.NoError(t, err)

	require.Equal(t, behaviortree.Success, low.Tick(0))

	bb.Set("health", 80)
	require.Equal(t, behaviortree.Failure, low.Tick(0), "the condition re-reads the blackboard every tick")
}

func TestCond_RuntimeErrorIsFailure(t *testing.T) {
	t.Parallel()

	bb := new(behaviortree.Blackboard)

	// "missing" is undefined at runtime; the comparison fails to evaluate.
	// That is a normal unsuccessful outcome, not a structural Error.
	cond, err := New("missing > 5", bb)
	require.NoError(t, err)
	require.Equal(t, behaviortree.Failure, cond.Tick(0))
}

func TestCond_Expression(t *testing.T) {
	t.Parallel()

	bb := new(behaviortree.Blackboard)
	cond, err := New("alert == true", bb)
	require.NoError(t, err)
	require.Equal(t, "alert == true", cond.Expression())
}

func TestCond_Reset(t *testing.T) {
	t.Parallel()

	bb := new(behaviortree.Blackboard)
	bb.Set("ready", true)
	cond, err := New("ready", bb)
	require.NoError(t, err)

	cond.Reset()
	require.Equal(t, behaviortree.Success, cond.Tick(0), "conditions carry no progress; reset is a no-op")
}

func TestCond_InATree(t *testing.T) {
	t.Parallel()

	bb := new(behaviortree.Blackboard)
	bb.Set("ammo", 0)

	hasAmmo, err := New("ammo > 0", bb)
	require.NoError(t, err)

	reloaded := false
	reload := behaviortree.NewAction(func(float64) behaviortree.Status {
		bb.Set("ammo", 6)
		reloaded = true
		return behaviortree.Success
	})

	root := behaviortree.NewSelector(hasAmmo, reload)
	require.Equal(t, behaviortree.Success, root.Tick(0))
	require.True(t, reloaded)
	require.Equal(t, behaviortree.Success, hasAmmo.Tick(0))
}
