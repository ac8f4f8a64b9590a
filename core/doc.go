// Package core defines the central Node and OpKind types for lazy
// expression graphs, and provides constructors that validate every
// structural invariant at build time.
//
// A Node is either a leaf (an immutable constant or a named, mutable,
// optionally bounded variable) or an operator applied to an ordered list
// of input Nodes. Structure is immutable once built: inputs and operator
// kind never change after construction, so a Node can only ever reference
// Nodes created strictly before it and the reachable set from any root is
// acyclic by construction.
//
// Key features:
//   - Constant(v): immutable scalar leaf, never fails
//   - Variable(name, initial, opts...): mutable leaf with optional [lower, upper] bounds
//   - Combine(op, inputs...): operator node, arity checked against the OpKind table
//   - SetValue / Value: guarded leaf state for optimization loops
//
// Concurrency:
//
// Only a variable's current value is mutable; it is guarded by a per-node
// RWMutex so a concurrent SetValue never tears a read. Mutating a variable
// while an evaluation over a graph containing it is in progress yields an
// unspecified (though memory-safe) result; drive evaluation and mutation
// from one goroutine, or probe alternative values with eval.WithOverride.
//
// Errors:
//
//	ErrNilNode           - nil *Node passed where a node is required.
//	ErrEmptyVariableName - variable name is the empty string.
//	ErrInvalidBounds     - lower bound exceeds upper bound.
//	ErrValueOutOfRange   - value outside the declared [lower, upper] bounds.
//	ErrUnknownOp         - operator kind outside the defined OpKind set.
//	ErrLeafKind          - leaf kind passed to Combine.
//	ErrArityMismatch     - wrong input count for the operator kind.
//	ErrNotVariable       - SetValue on a non-variable node.
//	ErrNotLeaf           - Value on an operator node.
package core
