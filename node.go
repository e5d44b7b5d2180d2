package behaviortree

// Node is the polymorphic unit of behavior. Composites, decorators, and
// application-supplied leaves all implement it.
//
// Tick evaluates the node once, given the elapsed time since the previous
// tick in application-defined units (the built-in timing decorators only
// accumulate deltas, so any consistent unit works). Tick may mutate
// internal progress state and may invoke leaf-level domain logic, but must
// not block: a node that needs more time returns Running and is re-entered
// on the next tick.
//
// Reset clears any cross-tick progress so the node behaves as if it had
// never been evaluated. It is forwarded recursively to children.
//
// A node is owned by at most one parent for the lifetime of the tree.
// Nodes are not copyable; share them by pointer and never attach the same
// node to two parents.
type Node interface {
	Tick(delta float64) Status
	Reset()
}

// Tick is the signature of a leaf evaluation function.
type Tick func(delta float64) Status

// Action adapts a plain function into a leaf Node. Use it for
// application-supplied behaviors that do not warrant a dedicated type.
type Action struct {
	tick  Tick
	reset func()
}

// NewAction returns a leaf node that delegates Tick to fn. A nil fn yields
// a node that always evaluates to Error.
func NewAction(fn Tick) *Action {
	return &Action{tick: fn}
}

// NewActionWithReset is NewAction with a reset hook, called whenever the
// node (or an ancestor) is reset.
func NewActionWithReset(fn Tick, reset func()) *Action {
	return &Action{tick: fn, reset: reset}
}

// Tick implements Node.
func (a *Action) Tick(delta float64) Status {
	if a.tick == nil {
		return Error
	}
	return a.tick(delta)
}

// Reset implements Node.
func (a *Action) Reset() {
	if a.reset != nil {
		a.reset()
	}
}

// Condition adapts a predicate into a stateless leaf Node that evaluates
// to Success when the predicate holds and Failure otherwise.
type Condition struct {
	pred func() bool
}

// NewCondition returns a leaf node backed by pred. A nil pred yields a node
// that always evaluates to Error.
func NewCondition(pred func() bool) *Condition {
	return &Condition{pred: pred}
}

// Tick implements Node.
func (c *Condition) Tick(float64) Status {
	if c.pred == nil {
		return Error
	}
	if c.pred() {
		return Success
	}
	return Failure
}

// Reset implements Node. It is a no-op; conditions carry no progress.
func (c *Condition) Reset() {}
