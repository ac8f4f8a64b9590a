// Package grad implements reverse-mode differentiation over eval forward
// results. See doc.go for the rule table and accumulation model.
package grad

import (
	"errors"
	"fmt"

	"github.com/katurin/graphex/core"
	"github.com/katurin/graphex/eval"
)

// ErrNotDifferentiable indicates a gradient was requested through an operator
// kind without a defined partial rule (floor, sign).
var ErrNotDifferentiable = errors.New("grad: operator has no derivative rule")

// Gradient computes ∂root/∂wrt at the variables' current (or overridden)
// values via reverse-mode accumulation. If wrt is not reachable from root,
// the result is 0: independent quantities have zero partial derivative.
//
// The opts are eval options; cancellation and overrides shape the forward
// pass exactly as they do for eval.Evaluate.
//
// Errors:
//   - core.ErrNilNode      if root or wrt is nil.
//   - ErrNotDifferentiable if any reachable operator carries no rule.
//   - anything eval.Forward can return.
func Gradient(root, wrt *core.Node, opts ...eval.Option) (float64, error) {
	// 1. Validate wrt early; root is validated by the forward pass.
	if wrt.IsNil() {
		return 0, fmt.Errorf("grad: Gradient: %w", core.ErrNilNode)
	}

	// 2. One backward sweep yields every adjoint; pick the one asked for.
	adjoints, err := backward(root, opts)
	if err != nil {
		return 0, err
	}

	// 3. Unreachable nodes simply have no accumulated adjoint.
	return adjoints[wrt.ID()], nil
}

// All computes the partial derivative of root with respect to every variable
// leaf reachable from it, in one forward pass and one backward sweep. This is
// the quantity a gradient-based minimizer consumes each iteration.
//
// The returned map is keyed by the variable nodes themselves; variables cut
// off by an override do not appear.
func All(root *core.Node, opts ...eval.Option) (map[*core.Node]float64, error) {
	o := resolve(opts)

	res, err := eval.Forward(root, opts...)
	if err != nil {
		return nil, err
	}

	adjoints, err := sweep(res, o)
	if err != nil {
		return nil, err
	}

	// Collect adjoints at the variable leaves; absent means zero.
	out := make(map[*core.Node]float64)
	for _, n := range res.Order {
		if n.IsVariable() {
			out[n] = adjoints[n.ID()]
		}
	}

	return out, nil
}

// resolve folds eval options into a readable Options value so the backward
// sweep can see which nodes were overridden.
func resolve(opts []eval.Option) eval.Options {
	o := eval.DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// backward runs the forward pass and the adjoint sweep, returning the adjoint
// accumulated at every reachable node ID.
func backward(root *core.Node, opts []eval.Option) (map[uint64]float64, error) {
	res, err := eval.Forward(root, opts...)
	if err != nil {
		return nil, err
	}

	return sweep(res, resolve(opts))
}

// sweep propagates a seed adjoint of 1 at the root backwards through the
// reversed topological order. Contributions at nodes reached via multiple
// paths accumulate additively. Overridden nodes act as constant leaves: no
// propagation enters their subtree.
func sweep(res *eval.Result, o eval.Options) (map[uint64]float64, error) {
	order := res.Order

	// 1. Every reachable operator must carry a rule before any math happens,
	//    so the error does not depend on adjoint magnitudes along the way.
	for _, n := range order {
		if n.IsLeaf() {
			continue
		}
		if _, overridden := o.Overrides[n.ID()]; overridden {
			continue
		}
		if !Differentiable(n.Op()) {
			return nil, fmt.Errorf("grad: through %s: %w", n.Op(), ErrNotDifferentiable)
		}
	}

	// 2. Seed the root and walk outputs-before-inputs.
	adjoints := make(map[uint64]float64, len(order))
	adjoints[order[len(order)-1].ID()] = 1

	for i := len(order) - 1; i >= 0; i-- {
		n := order[i]
		if n.IsLeaf() {
			continue
		}
		if _, overridden := o.Overrides[n.ID()]; overridden {
			continue
		}

		// 2a. The adjoint of n distributes to its inputs through the local rule.
		w := adjoints[n.ID()]
		inputs := n.Inputs()
		inVals := make([]float64, len(inputs))
		for j, in := range inputs {
			inVals[j] = res.Values[in.ID()]
		}
		p, _ := partials(n.Op(), inVals, res.Values[n.ID()])
		for j, in := range inputs {
			adjoints[in.ID()] += w * p[j]
		}
	}

	return adjoints, nil
}
