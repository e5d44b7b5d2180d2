// Package exprcond provides condition leaves compiled from expr-lang
// expressions, evaluated against a Blackboard snapshot. Expressions run
// natively in Go; compiled programs are cached process-wide.
//
// Blackboard keys are the expression environment:
//
//	bb.Set("health", 12)
//	lowHealth, err := exprcond.New("health < 20", bb)
//
// A true result evaluates to Success and anything else to Failure. Runtime
// evaluation errors (as opposed to compile errors, which New reports
// eagerly) are normal unsuccessful outcomes, not structural faults, and
// also evaluate to Failure.
package exprcond

import (
	"errors"
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/mgd-games/behaviortree"
)

// Cond is a stateless condition leaf evaluating a compiled expression
// against a blackboard.
type Cond struct {
	expression string
	program    *vm.Program
	bb         *behaviortree.Blackboard
}

// New compiles expression and returns a condition node evaluating it
// against bb. Compilation failures are reported here rather than as an
// Error status at tick time, so a malformed expression is caught while the
// tree is being built.
func New(expression string, bb *behaviortree.Blackboard) (*Cond, error) {
	if bb == nil {
		return nil, errors.New("exprcond: nil blackboard")
	}
	program, err := compile(expression)
	if err != nil {
		return nil, fmt.Errorf("exprcond: compile %q: %w", expression, err)
	}
	return &Cond{expression: expression, program: program, bb: bb}, nil
}

func compile(expression string) (*vm.Program, error) {
	if program, ok := cache.get(expression); ok {
		return program, nil
	}
	program, err := expr.Compile(expression,
		expr.AsBool(),
		expr.AllowUndefinedVariables(),
	)
	if err != nil {
		return nil, err
	}
	cache.put(expression, program)
	return program, nil
}

// Tick implements behaviortree.Node.
func (c *Cond) Tick(float64) behaviortree.Status {
	out, err := expr.Run(c.program, c.bb.Snapshot())
	if err != nil {
		return behaviortree.Failure
	}
	if b, ok := out.(bool); ok && b {
		return behaviortree.Success
	}
	return behaviortree.Failure
}

// Reset implements behaviortree.Node. It is a no-op; conditions carry no
// progress.
func (c *Cond) Reset() {}

// Expression returns the source expression the condition was compiled
// from.
func (c *Cond) Expression() string {
	return c.expression
}
