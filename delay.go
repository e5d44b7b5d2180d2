package behaviortree

// DelayTime gates its child behind an elapsed-time accumulator. While the
// accumulated deltas are below the configured duration, each tick adds the
// delta and returns Running without touching the child. Once the threshold
// is reached, the child is evaluated; while the child itself returns
// Running the decorator does too, without re-accumulating delay. When the
// child produces a terminal result it is returned, and either the gate
// closes again for another full delay (delayOnce false) or the result is
// cached and returned on every future tick without touching the child
// again (delayOnce true).
type DelayTime struct {
	decorator
	duration  float64
	delayOnce bool

	elapsed float64
	open    bool
	cached  Status // statusNone until delayOnce caches a terminal result
}

// NewDelayTime constructs a DelayTime gating child behind duration, in the
// same units as the tick delta.
func NewDelayTime(child Node, duration float64, delayOnce bool) *DelayTime {
	n := &DelayTime{duration: duration, delayOnce: delayOnce}
	n.Attach(child)
	return n
}

// Tick implements Node.
func (n *DelayTime) Tick(delta float64) Status {
	if n.child == nil {
		return Error
	}
	if n.cached != statusNone {
		return n.cached
	}
	if !n.open {
		n.elapsed += delta
		if n.elapsed < n.duration {
			return Running
		}
		n.open = true
	}
	s := n.child.Tick(delta)
	if s == Running {
		return Running
	}
	if n.delayOnce {
		n.cached = s
	} else {
		n.open = false
		n.elapsed = 0
	}
	return s
}

// Reset implements Node.
func (n *DelayTime) Reset() {
	n.elapsed = 0
	n.open = false
	n.cached = statusNone
	n.decorator.Reset()
}

// TimeLimit accumulates elapsed time and evaluates its child only once the
// configured duration has passed, returning Running until then. At the
// threshold the child is evaluated exactly once: a child still Running at
// that point is a timeout and yields Failure, otherwise the child's
// terminal result is returned. Either way the clock resets for the next
// activation.
type TimeLimit struct {
	decorator
	duration float64
	elapsed  float64
}

// NewTimeLimit constructs a TimeLimit with the given duration, in the same
// units as the tick delta.
func NewTimeLimit(child Node, duration float64) *TimeLimit {
	n := &TimeLimit{duration: duration}
	n.Attach(child)
	return n
}

// Tick implements Node.
func (n *TimeLimit) Tick(delta float64) Status {
	if n.child == nil {
		return Error
	}
	n.elapsed += delta
	if n.elapsed < n.duration {
		return Running
	}
	s := n.child.Tick(delta)
	n.elapsed = 0
	if s == Running {
		return Failure
	}
	return s
}

// Reset implements Node.
func (n *TimeLimit) Reset() {
	n.elapsed = 0
	n.decorator.Reset()
}
