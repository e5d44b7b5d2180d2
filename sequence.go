package behaviortree

// Sequence evaluates its children in order for as long as they succeed. A
// child returning Success advances to the next child; Failure ends the
// tick immediately; Running suspends the sequence on that child until it
// produces a terminal result. When every child succeeds, the sequence
// itself succeeds. A sequence with no children evaluates to Error.
type Sequence struct {
	composite
}

// NewSequence constructs a Sequence owning the given children, in order.
// Nil children are ignored.
func NewSequence(children ...Node) *Sequence {
	return &Sequence{newComposite(false, children)}
}

// NewRandomSequence constructs a Sequence that shuffles its children
// uniformly at random before evaluation, except while a child is running.
// With a single child, shuffling never applies.
func NewRandomSequence(children ...Node) *Sequence {
	return &Sequence{newComposite(true, children)}
}

// Tick implements Node.
func (s *Sequence) Tick(delta float64) Status {
	return s.tick(delta, Failure, Success)
}
