package behaviortree

// InfiniteRepeat makes a RepeatUntil node loop without bound within a
// single tick until its target result occurs. See NewRepeatUntilSuccess
// for the implications.
const InfiniteRepeat = -1

// Repeater evaluates its child up to a fixed number of times within the
// same tick. A child result of Success or Failure continues the loop;
// Running or Error aborts it and is returned as-is. Completing every
// iteration yields Success.
type Repeater struct {
	decorator
	repeat int
}

// NewRepeater constructs a Repeater running child repeat times per tick.
// A repeat count below 1 is invalid configuration and makes the node
// evaluate to Error ("repeat zero times" is not a way to spell "never
// runs"; see Limiter for that).
func NewRepeater(child Node, repeat int) *Repeater {
	n := &Repeater{repeat: repeat}
	n.Attach(child)
	return n
}

// Tick implements Node.
func (n *Repeater) Tick(delta float64) Status {
	if n.child == nil || n.repeat < 1 {
		return Error
	}
	for i := 0; i < n.repeat; i++ {
		if s := n.child.Tick(delta); s != Success && s != Failure {
			return s
		}
	}
	return Success
}

// RepeatUntil evaluates its child repeatedly within the same tick until
// the child's result equals a target status. Construct it via
// NewRepeatUntilSuccess or NewRepeatUntilFail.
type RepeatUntil struct {
	decorator
	repeat int
	target Status
}

// NewRepeatUntilSuccess constructs a node that loops its child up to
// repeat times per tick, returning Success as soon as the child succeeds
// and Failure when the attempts are exhausted.
//
// Pass InfiniteRepeat to loop without bound within the evaluation call
// until the child succeeds. This is a deliberate busy loop inside a single
// tick: any other child result, Running and Error included, keeps the loop
// going, and a child that never reaches the target stalls the calling tick
// indefinitely. Callers needing non-blocking behavior must bound the
// count. A repeat count of 0 (or any negative value other than
// InfiniteRepeat) is invalid configuration and makes the node evaluate to
// Error.
func NewRepeatUntilSuccess(child Node, repeat int) *RepeatUntil {
	n := &RepeatUntil{repeat: repeat, target: Success}
	n.Attach(child)
	return n
}

// NewRepeatUntilFail is NewRepeatUntilSuccess with the target fixed to
// Failure: it returns Success as soon as the child fails.
func NewRepeatUntilFail(child Node, repeat int) *RepeatUntil {
	n := &RepeatUntil{repeat: repeat, target: Failure}
	n.Attach(child)
	return n
}

// Tick implements Node.
func (n *RepeatUntil) Tick(delta float64) Status {
	if n.child == nil {
		return Error
	}
	if n.repeat != InfiniteRepeat && n.repeat < 1 {
		return Error
	}
	for i := 0; n.repeat == InfiniteRepeat || i < n.repeat; i++ {
		if n.child.Tick(delta) == n.target {
			return Success
		}
	}
	return Failure
}
