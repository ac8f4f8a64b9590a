// Package eval defines options and the forward-pass result type for
// expression graph materialization.
package eval

import (
	"context"

	"github.com/katurin/graphex/core"
)

// Option configures optional behavior of Evaluate and Forward.
// Use with Evaluate(root, opts...).
type Option func(*Options)

// Options holds configurable parameters for a single evaluation pass.
// Complexity remains O(V+E) when hooks are O(1).
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancelling the context aborts the pass early.
	Ctx context.Context

	// Overrides maps node IDs to values used in place of the variable's
	// current value for this pass only. The variable itself is not mutated,
	// so concurrent passes with different overrides never interfere.
	Overrides map[uint64]float64

	// OnNode, if non-nil, is invoked after each node's value is computed,
	// in topological order. Returning an error aborts the pass with that error.
	OnNode func(n *core.Node, value float64) error
}

// DefaultOptions returns an Options struct with:
//   - Background context
//   - No overrides
//   - No per-node hook
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Overrides: nil,
		OnNode:    nil,
	}
}

// WithCancelContext returns an Option that sets the cancellation context.
// Passing a nil context has no effect (Background is retained).
func WithCancelContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOverride returns an Option that makes this pass read value for node n
// instead of its stored value. Intended for variable leaves: an optimizer can
// probe candidate points without touching shared parameter state. Overriding
// a non-leaf node short-circuits its subtree for this pass.
// A nil node has no effect.
func WithOverride(n *core.Node, value float64) Option {
	return func(o *Options) {
		if n.IsNil() {
			return
		}
		if o.Overrides == nil {
			o.Overrides = make(map[uint64]float64, 1)
		}
		o.Overrides[n.ID()] = value
	}
}

// WithOnNode returns an Option that installs fn as a per-node hook.
// The hook observes every computed value in topological order.
func WithOnNode(fn func(n *core.Node, value float64) error) Option {
	return func(o *Options) {
		o.OnNode = fn
	}
}

// Result is the outcome of a Forward pass: the topological order walked and
// the value computed at every reachable node. Package grad replays Order
// backwards and indexes Values to seed its adjoint accumulation.
type Result struct {
	// Order lists every reachable node, inputs before outputs, root last.
	Order []*core.Node

	// Values maps node ID to the value computed at that node this pass.
	Values map[uint64]float64
}

// Value returns the computed value at n, or (0, false) if n was not part of
// the pass.
func (r *Result) Value(n *core.Node) (float64, bool) {
	if n.IsNil() {
		return 0, false
	}
	v, ok := r.Values[n.ID()]

	return v, ok
}
