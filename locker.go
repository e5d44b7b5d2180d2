package behaviortree

// Locker evaluates its child to a terminal result, then locks that result
// in for a fixed span of time: while the lock holds, the Locker returns
// Running and the child is not re-evaluated. Once the accumulated deltas
// reach the configured duration, the cached result is returned once and
// the Locker resets itself, so the next tick evaluates the child fresh.
//
// A child Error is latched: it is returned on every subsequent tick
// without re-evaluating the child, until Reset is called.
type Locker struct {
	decorator
	duration float64

	elapsed float64
	cached  Status // statusNone while no result is cached
}

// NewLocker constructs a Locker holding its child's result for duration,
// in the same units as the tick delta.
func NewLocker(child Node, duration float64) *Locker {
	n := &Locker{duration: duration}
	n.Attach(child)
	return n
}

// Tick implements Node.
func (n *Locker) Tick(delta float64) Status {
	if n.child == nil {
		return Error
	}
	if n.cached == statusNone || n.cached == Running {
		n.cached = n.child.Tick(delta)
	}
	if n.cached == Running || n.cached == Error {
		return n.cached
	}
	n.elapsed += delta
	if n.elapsed < n.duration {
		return Running
	}
	result := n.cached
	n.cached = statusNone
	n.elapsed = 0
	return result
}

// Reset implements Node.
func (n *Locker) Reset() {
	n.cached = statusNone
	n.elapsed = 0
	n.decorator.Reset()
}
