package behaviortree

// Status is the result of a single node evaluation.
type Status int

const (
	// statusNone is the zero value. It is never returned by Tick; Locker
	// and DelayTime use it internally to mean "no cached result yet",
	// mirroring the distinction between "not evaluated" and any real
	// outcome.
	statusNone Status = iota

	// Running indicates the node has not reached a terminal result yet and
	// must be ticked again next step with its internal progress preserved.
	Running

	// Success indicates the node completed successfully.
	Success

	// Failure indicates the node completed unsuccessfully. This is the
	// normal "did not work out" outcome, distinct from Error.
	Failure

	// Error indicates a structural or configuration fault, such as a
	// composite with no children or a decorator with no child. Composites
	// treat it according to their Policy.
	Error
)

// String returns a lower-case name for the status, suitable for logging.
func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case Success:
		return "success"
	case Failure:
		return "failure"
	case Error:
		return "error"
	default:
		return "none"
	}
}
