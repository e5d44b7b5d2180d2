/*
Package behaviortree implements a tick-driven behavior tree engine: a tree of
nodes that, once per update step, decides what an agent should do next and
reports whether that decision is still in progress, has succeeded, or has
failed.

# Execution model

The host loop calls Tick on the root node once per update step, passing the
elapsed time since the previous step. Evaluation is single-threaded and
synchronous: composites recurse into their children, decorators into their
single child, and leaves terminate the recursion with a concrete Status. A
node suspends only by returning Running, in which case its parent re-enters
it on the next tick without restarting earlier siblings.

	patrol := behaviortree.NewSequence(walkToWaypoint, lookAround)
	root := behaviortree.NewSelector(fleeIfThreatened, patrol)
	for range gameLoop {
		root.Tick(dt)
	}

# Status vocabulary

Every evaluation produces exactly one of Success, Failure, Running, or Error.
Running means "call me again next tick, preserving my progress". Error is
reserved for structural faults (an empty composite, a decorator with no
child, an invalid repeat count) and is never produced by a normal
unsuccessful outcome; that is Failure. A misconfigured tree degrades to
returning Error every tick rather than panicking.

# Composites and decorators

Selector and Sequence evaluate children in order, resuming on the child that
returned Running last tick. NewRandomSelector and NewRandomSequence shuffle
the children uniformly before evaluation, but only while no child is
running, so an in-progress child is never abandoned mid-execution. The
decorator family (Inverter, Succeeder, Failer, Repeater, RepeatUntil,
Limiter, DelayTime, TimeLimit, Locker) wraps exactly one child and
transforms its result or its execution cadence.

# Error policy

Whether a composite absorbs a child's Error as its natural "continue" signal
or propagates it immediately is controlled by Policy. The default ignores
errors. ApplyPolicy assigns one policy to every composite in a tree; the
policy must not change mid-tick.

# Concurrency

A tree must not be evaluated from more than one goroutine without external
synchronization; no node takes locks on the tick path. Ticker and Manager
provide an optional goroutine-backed harness that drives a root node at a
fixed cadence. Blackboard, the shared state store consumed by leaves, is
safe for concurrent use.
*/
package behaviortree
