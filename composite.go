package behaviortree

import "math/rand/v2"

// InfiniteChildren disables the child count bound of a composite.
const InfiniteChildren = -1

// composite is the shared core of Selector and Sequence: an ordered
// collection of owned children, an optional bound on their count, and the
// index of the child that returned Running on the previous tick. The
// randomized variants are the same machinery with the shuffle flag set.
type composite struct {
	children    []Node
	maxChildren int // InfiniteChildren when unbounded; never 0
	running     int // index of the running child, -1 when none
	policy      Policy
	random      bool
	// shuffler permutes [0,n) via swap. Defaults to rand.Shuffle; tests
	// substitute a deterministic implementation.
	shuffler func(n int, swap func(i, j int))
}

func newComposite(random bool, children []Node) composite {
	c := composite{
		maxChildren: InfiniteChildren,
		running:     -1,
		policy:      DefaultPolicy(),
		random:      random,
	}
	c.Add(children...)
	return c
}

// Add appends the given children in order, ignoring nils. When the child
// count is bounded and adding the non-nil children would exceed the bound,
// no child is added and Add reports false.
func (c *composite) Add(children ...Node) bool {
	adding := 0
	for _, child := range children {
		if child != nil {
			adding++
		}
	}
	if c.maxChildren != InfiniteChildren && len(c.children)+adding > c.maxChildren {
		return false
	}
	for _, child := range children {
		if child != nil {
			c.children = append(c.children, child)
		}
	}
	return true
}

// Remove detaches the first child identical to node and reports whether it
// was found. Removing the running child clears the running index; removing
// an earlier sibling shifts it, keeping the index pointed at the same
// child.
func (c *composite) Remove(node Node) bool {
	for i, child := range c.children {
		if child == node {
			c.children = append(c.children[:i], c.children[i+1:]...)
			switch {
			case c.running == i:
				c.running = -1
			case c.running > i:
				c.running--
			}
			return true
		}
	}
	return false
}

// ClearChildren detaches all children and clears the running index.
func (c *composite) ClearChildren() {
	c.children = nil
	c.running = -1
}

// SetMaxChildren bounds the number of children this composite accepts.
// Pass InfiniteChildren to remove the bound. A bound of 0 is invalid and
// is rejected (reported as false). Shrinking below the current child count
// detaches the children past the bound, clearing the running index if it
// pointed at one of them.
func (c *composite) SetMaxChildren(n int) bool {
	if n == 0 {
		return false
	}
	if n < 0 {
		c.maxChildren = InfiniteChildren
		return true
	}
	c.maxChildren = n
	if len(c.children) > n {
		c.children = c.children[:n:n]
		if c.running >= n {
			c.running = -1
		}
	}
	return true
}

// Children returns a copy of the child collection in evaluation order.
func (c *composite) Children() []Node {
	out := make([]Node, len(c.children))
	copy(out, c.children)
	return out
}

// SetPolicy assigns the error policy read on every subsequent tick. See
// ApplyPolicy for assigning a policy to a whole tree.
func (c *composite) SetPolicy(p Policy) {
	c.policy = p
}

// Reset clears the running index and resets every child. Randomized
// composites do not restore insertion order; the shuffled order simply
// stops being protected by a running child.
func (c *composite) Reset() {
	c.running = -1
	for _, child := range c.children {
		child.Reset()
	}
}

// tick runs the shared resumption algorithm. stop is the result that ends
// traversal immediately (Success for Selector, Failure for Sequence) and
// cont is the result that advances to the next child; exhausting all
// children yields cont as the composite's own result.
func (c *composite) tick(delta float64, stop, cont Status) Status {
	if len(c.children) == 0 {
		return Error
	}

	// Shuffling is suppressed while a child is mid-execution, so the
	// running child's identity and position survive across ticks.
	if c.random && c.running < 0 && len(c.children) > 1 {
		shuffle := c.shuffler
		if shuffle == nil {
			shuffle = rand.Shuffle
		}
		shuffle(len(c.children), func(i, j int) {
			c.children[i], c.children[j] = c.children[j], c.children[i]
		})
	}

	start := 0
	if c.running >= 0 && c.running < len(c.children) {
		switch s := c.children[c.running].Tick(delta); {
		case s == Running:
			// Still in progress; no other child is touched this tick.
			return Running
		case s == stop:
			c.running = -1
			return s
		case s == Error && !c.policy.IgnoreError:
			return Error
		default:
			// The family's continue result, or an ignorable Error:
			// resume iteration after the previously running child.
			start = c.running + 1
			c.running = -1
		}
	} else {
		c.running = -1
	}

	for i := start; i < len(c.children); i++ {
		switch s := c.children[i].Tick(delta); {
		case s == cont:
			continue
		case s == Error && c.policy.IgnoreError:
			continue
		case s == Running:
			c.running = i
			return Running
		default:
			// stop result, or a non-ignorable Error.
			return s
		}
	}
	return cont
}
