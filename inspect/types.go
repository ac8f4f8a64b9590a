// Package inspect defines option types and sentinel errors for structural
// queries over expression graphs.
package inspect

import (
	"context"
	"errors"
)

// Visitation state of a node during depth-first traversal.
const (
	White = iota // White: the node has not been visited yet.
	Gray         // Gray: the node is on the traversal stack (visiting).
	Black        // Black: the node and all its inputs have been fully explored.
)

// ErrCycleDetected indicates that a traversal re-entered a node still being
// explored. Graphs built through core constructors cannot cycle (inputs must
// exist before their consumer), so hitting this error means the graph was
// assembled by other means.
var ErrCycleDetected = errors.New("inspect: cycle detected")

// Option configures optional behavior of Topological.
type Option func(*options)

// options holds settings for Topological, currently only cancellation.
type options struct {
	ctx context.Context // allows cancellation; defaults to Background
}

// defaultOptions returns the default options (Background context).
func defaultOptions() options {
	return options{ctx: context.Background()}
}

// WithCancelContext returns an Option that sets the cancellation context.
// Passing a nil context has no effect.
func WithCancelContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}
