package behaviortree

// Limiter allows its child to execute at most a fixed number of times over
// the node's lifetime. The counter is monotonic, not per tick: once
// exhausted, every subsequent evaluation short-circuits to Failure without
// touching the child. While the budget lasts, the child's own result is
// returned. Reset restores the full budget.
type Limiter struct {
	decorator
	limit int
	count int
}

// NewLimiter constructs a Limiter with the given lifetime execution
// budget. A limit of 0 or less means the child never runs and the node
// always fails.
func NewLimiter(child Node, limit int) *Limiter {
	n := &Limiter{limit: limit}
	n.Attach(child)
	return n
}

// Tick implements Node.
func (n *Limiter) Tick(delta float64) Status {
	if n.child == nil {
		return Error
	}
	if n.count >= n.limit {
		return Failure
	}
	n.count++
	return n.child.Tick(delta)
}

// Reset implements Node.
func (n *Limiter) Reset() {
	n.count = 0
	n.decorator.Reset()
}
