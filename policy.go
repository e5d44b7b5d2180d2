package behaviortree

// Policy configures how composites treat a child's Error status. Rather
// than a process-wide mutable flag, it is an explicit value threaded
// through tree construction: every composite holds its own copy, assigned
// at construction or via ApplyPolicy.
//
// A policy must not be changed while a tick is in progress.
type Policy struct {
	// IgnoreError, when true, makes a composite absorb a child's Error
	// exactly as it would absorb the child's natural "continue" result
	// (Failure for Selector, Success for Sequence), letting traversal
	// proceed. When false, any Error anywhere in the subtree aborts the
	// tick immediately and propagates Error to the root.
	IgnoreError bool
}

// DefaultPolicy returns the policy composites are constructed with:
// errors are ignored.
func DefaultPolicy() Policy {
	return Policy{IgnoreError: true}
}

// ChildContainer is implemented by nodes owning an ordered collection of
// children (the composites).
type ChildContainer interface {
	Children() []Node
}

// ChildWrapper is implemented by nodes wrapping a single child (the
// decorators). Child may return nil.
type ChildWrapper interface {
	Child() Node
}

// ApplyPolicy assigns p to every composite reachable from root, so a
// single setting governs the whole tree. Call it after construction and
// before the first tick.
func ApplyPolicy(root Node, p Policy) {
	if root == nil {
		return
	}
	if s, ok := root.(interface{ SetPolicy(Policy) }); ok {
		s.SetPolicy(p)
	}
	if c, ok := root.(ChildContainer); ok {
		for _, child := range c.Children() {
			ApplyPolicy(child, p)
		}
	}
	if w, ok := root.(ChildWrapper); ok {
		ApplyPolicy(w.Child(), p)
	}
}
