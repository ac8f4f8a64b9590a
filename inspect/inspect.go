// Package inspect provides pure structural queries on core expression graphs.
//
// Topological computes a linear ordering of the nodes reachable from a root
// such that every node appears after all of its inputs. The ordering is
// deterministic: inputs are explored in declaration order. If the structure
// somehow contains a cycle, ErrCycleDetected is returned.
package inspect

import (
	"fmt"
	"sort"

	"github.com/katurin/graphex/core"
)

// topoWalker encapsulates state during the topological traversal.
type topoWalker struct {
	opts  options        // traversal options (cancellation)
	state map[uint64]int // visitation state: White/Gray/Black
	order []*core.Node   // recorded post-order sequence
}

// Topological computes an inputs-before-outputs ordering of every node
// reachable from root. The root is always the last element.
// You may pass WithCancelContext(ctx) to enable cancellation.
//
// Errors:
//   - core.ErrNilNode   if root is nil.
//   - ErrCycleDetected  if traversal re-enters a node still being explored.
//   - ctx.Err()         if the context is cancelled mid-walk.
func Topological(root *core.Node, opts ...Option) ([]*core.Node, error) {
	// 1. Validate the root pointer.
	if root.IsNil() {
		return nil, fmt.Errorf("inspect: Topological: %w", core.ErrNilNode)
	}

	// 2. Apply optional settings.
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 3. Walk depth-first, recording each node after its inputs.
	w := &topoWalker{opts: o, state: make(map[uint64]int)}
	if err := w.visit(root); err != nil {
		return nil, fmt.Errorf("inspect: Topological: %w", err)
	}

	return w.order, nil
}

// visit explores n post-order, honoring cancellation and the cycle guard.
func (w *topoWalker) visit(n *core.Node) error {
	// 1. Cancellation check once per node.
	select {
	case <-w.opts.ctx.Done():
		return w.opts.ctx.Err()
	default:
	}

	// 2. Three-color bookkeeping: Gray re-entry is a cycle, Black is done.
	switch w.state[n.ID()] {
	case Gray:
		return ErrCycleDetected
	case Black:
		return nil
	}
	w.state[n.ID()] = Gray

	// 3. Inputs first, in declaration order, so consumers come after producers.
	for _, in := range n.Inputs() {
		if err := w.visit(in); err != nil {
			return err
		}
	}

	// 4. Record post-order and close the node.
	w.state[n.ID()] = Black
	w.order = append(w.order, n)

	return nil
}

// DependsOn reports whether candidate is reachable from root by following
// input edges. Reachability is reflexive: every node depends on itself.
// Pure query; nothing is evaluated.
//
// Errors:
//   - core.ErrNilNode if root or candidate is nil.
//
// Complexity: O(V + E) worst case, with early exit on first hit.
func DependsOn(root, candidate *core.Node) (bool, error) {
	// 1. Both endpoints must be real nodes.
	if root.IsNil() || candidate.IsNil() {
		return false, fmt.Errorf("inspect: DependsOn: %w", core.ErrNilNode)
	}

	// 2. Iterative DFS over input edges with an explicit stack.
	seen := map[uint64]struct{}{root.ID(): {}}
	stack := []*core.Node{root}
	var n *core.Node
	for len(stack) > 0 {
		n, stack = stack[len(stack)-1], stack[:len(stack)-1]
		if n.ID() == candidate.ID() {
			return true, nil
		}
		for _, in := range n.Inputs() {
			if _, ok := seen[in.ID()]; !ok {
				seen[in.ID()] = struct{}{}
				stack = append(stack, in)
			}
		}
	}

	return false, nil
}

// Variables returns every variable leaf reachable from root, sorted by name
// and, for duplicate names, by ID. Fitting drivers use this to enumerate the
// free parameters of a model expression.
//
// Errors:
//   - core.ErrNilNode if root is nil.
func Variables(root *core.Node) ([]*core.Node, error) {
	// 1. Reuse the topological walk; it already deduplicates shared nodes.
	order, err := Topological(root)
	if err != nil {
		return nil, err
	}

	// 2. Keep the variable leaves only.
	var vars []*core.Node
	for _, n := range order {
		if n.IsVariable() {
			vars = append(vars, n)
		}
	}

	// 3. Sort for a stable enumeration surface regardless of graph shape.
	sort.Slice(vars, func(i, j int) bool {
		if vars[i].Name() != vars[j].Name() {
			return vars[i].Name() < vars[j].Name()
		}

		return vars[i].ID() < vars[j].ID()
	})

	return vars, nil
}

// Count returns the number of distinct nodes reachable from root,
// root included.
//
// Errors:
//   - core.ErrNilNode if root is nil.
func Count(root *core.Node) (int, error) {
	order, err := Topological(root)
	if err != nil {
		return 0, err
	}

	return len(order), nil
}
