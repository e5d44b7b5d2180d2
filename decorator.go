package behaviortree

// decorator is the shared core of the decorator family: ownership of
// exactly zero or one child. A decorator with no child always evaluates to
// Error.
type decorator struct {
	child Node
}

// Attach sets the wrapped child. It is only effective while no child is
// attached and the candidate is non-nil, and reports whether it took
// effect.
func (d *decorator) Attach(child Node) bool {
	if d.child != nil || child == nil {
		return false
	}
	d.child = child
	return true
}

// Child returns the wrapped child, or nil when none is attached.
func (d *decorator) Child() Node {
	return d.child
}

// Reset forwards to the child, when present. Decorators with their own
// cross-tick state override this and clear it first.
func (d *decorator) Reset() {
	if d.child != nil {
		d.child.Reset()
	}
}

// Inverter swaps its child's Success and Failure; Running and Error pass
// through unchanged.
type Inverter struct {
	decorator
}

// NewInverter constructs an Inverter wrapping child. A nil child may be
// attached later; until then the node evaluates to Error.
func NewInverter(child Node) *Inverter {
	n := &Inverter{}
	n.Attach(child)
	return n
}

// Tick implements Node.
func (n *Inverter) Tick(delta float64) Status {
	if n.child == nil {
		return Error
	}
	switch s := n.child.Tick(delta); s {
	case Success:
		return Failure
	case Failure:
		return Success
	default:
		return s
	}
}

// Succeeder evaluates its child, discards the result, and returns Success.
// The discard includes Running: a Succeeder forces a terminal result every
// tick regardless of the child's duration.
type Succeeder struct {
	decorator
}

// NewSucceeder constructs a Succeeder wrapping child.
func NewSucceeder(child Node) *Succeeder {
	n := &Succeeder{}
	n.Attach(child)
	return n
}

// Tick implements Node.
func (n *Succeeder) Tick(delta float64) Status {
	if n.child == nil {
		return Error
	}
	n.child.Tick(delta)
	return Success
}

// Failer evaluates its child, discards the result, and returns Failure.
// Like Succeeder, it forces a terminal result every tick.
type Failer struct {
	decorator
}

// NewFailer constructs a Failer wrapping child.
func NewFailer(child Node) *Failer {
	n := &Failer{}
	n.Attach(child)
	return n
}

// Tick implements Node.
func (n *Failer) Tick(delta float64) Status {
	if n.child == nil {
		return Error
	}
	n.child.Tick(delta)
	return Failure
}
