package behaviortree

// Selector evaluates its children in order until one succeeds. A child
// returning Failure advances to the next child; Success ends the tick
// immediately; Running suspends the selector on that child until it
// produces a terminal result. When every child fails, the selector itself
// fails. A selector with no children evaluates to Error.
type Selector struct {
	composite
}

// NewSelector constructs a Selector owning the given children, in order.
// Nil children are ignored.
func NewSelector(children ...Node) *Selector {
	return &Selector{newComposite(false, children)}
}

// NewRandomSelector constructs a Selector that shuffles its children
// uniformly at random before evaluation, except while a child is running.
// With a single child, shuffling never applies.
func NewRandomSelector(children ...Node) *Selector {
	return &Selector{newComposite(true, children)}
}

// Tick implements Node.
func (s *Selector) Tick(delta float64) Status {
	return s.tick(delta, Success, Failure)
}
