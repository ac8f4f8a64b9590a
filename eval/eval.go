// Package eval implements memoized bottom-up evaluation of core expression
// graphs. See doc.go for the numeric policy and memoization contract.
package eval

import (
	"fmt"
	"math"

	"github.com/katurin/graphex/core"
	"github.com/katurin/graphex/inspect"
)

// Evaluate walks the graph reachable from root and returns its value.
// Each reachable node is computed exactly once per call; a node shared by
// multiple paths contributes one computation, not one per path.
// Returns an error only for structural or hook failures, never numeric ones.
func Evaluate(root *core.Node, opts ...Option) (float64, error) {
	res, err := Forward(root, opts...)
	if err != nil {
		return 0, err
	}

	return res.Values[root.ID()], nil
}

// Forward runs one evaluation pass over the graph reachable from root and
// returns the value at every node along a topological order. Gradient code
// consumes the full Result; plain callers usually want Evaluate instead.
//
// Errors:
//   - core.ErrNilNode          if root is nil.
//   - inspect.ErrCycleDetected from the defensive structural check.
//   - core.ErrUnknownOp        if a node carries a kind without a kernel.
//   - ctx.Err()                if the context is cancelled mid-pass.
//   - any error returned by the OnNode hook.
func Forward(root *core.Node, opts ...Option) (*Result, error) {
	// 1. Apply options.
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 2. Order the reachable nodes inputs-first; this also validates root
	//    and runs the defensive cycle check.
	order, err := inspect.Topological(root, inspect.WithCancelContext(o.Ctx))
	if err != nil {
		return nil, fmt.Errorf("eval: %w", err)
	}

	// 3. Compute bottom-up, memoizing each node exactly once.
	values := make(map[uint64]float64, len(order))
	for _, n := range order {
		// 3a. Cancellation check once per node.
		select {
		case <-o.Ctx.Done():
			return nil, fmt.Errorf("eval: %w", o.Ctx.Err())
		default:
		}

		// 3b. An override wins over any stored or computed value.
		if v, ok := o.Overrides[n.ID()]; ok {
			values[n.ID()] = v
			if err = emit(o, n, v); err != nil {
				return nil, err
			}
			continue
		}

		// 3c. Leaves read their stored value; operators apply their kernel
		//     to already-memoized input values.
		var v float64
		if n.IsLeaf() {
			if v, err = n.Value(); err != nil {
				return nil, fmt.Errorf("eval: %w", err)
			}
		} else {
			if v, err = apply(n, values); err != nil {
				return nil, err
			}
		}
		values[n.ID()] = v
		if err = emit(o, n, v); err != nil {
			return nil, err
		}
	}

	return &Result{Order: order, Values: values}, nil
}

// emit invokes the OnNode hook, wrapping any abort error with context.
func emit(o Options, n *core.Node, v float64) error {
	if o.OnNode == nil {
		return nil
	}
	if err := o.OnNode(n, v); err != nil {
		return fmt.Errorf("eval: OnNode(%s): %w", n.Op(), err)
	}

	return nil
}

// apply computes the kernel of operator node n over memoized input values.
// Inputs are guaranteed present: the topological order puts them first.
func apply(n *core.Node, values map[uint64]float64) (float64, error) {
	in := n.Inputs()
	switch n.Op() {
	case core.OpNeg:
		return -values[in[0].ID()], nil
	case core.OpExp:
		return math.Exp(values[in[0].ID()]), nil
	case core.OpLog:
		return math.Log(values[in[0].ID()]), nil
	case core.OpSqrt:
		return math.Sqrt(values[in[0].ID()]), nil
	case core.OpSin:
		return math.Sin(values[in[0].ID()]), nil
	case core.OpCos:
		return math.Cos(values[in[0].ID()]), nil
	case core.OpFloor:
		return math.Floor(values[in[0].ID()]), nil
	case core.OpSign:
		return sign(values[in[0].ID()]), nil
	case core.OpAdd:
		return values[in[0].ID()] + values[in[1].ID()], nil
	case core.OpSub:
		return values[in[0].ID()] - values[in[1].ID()], nil
	case core.OpMul:
		return values[in[0].ID()] * values[in[1].ID()], nil
	case core.OpDiv:
		return values[in[0].ID()] / values[in[1].ID()], nil
	case core.OpPow:
		return math.Pow(values[in[0].ID()], values[in[1].ID()]), nil
	default:
		return 0, fmt.Errorf("eval: no kernel for %s: %w", n.Op(), core.ErrUnknownOp)
	}
}

// sign returns -1, 0 or +1 by the sign of x; NaN propagates.
func sign(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return x
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
