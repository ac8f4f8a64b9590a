// File: methods.go
// Role: Node accessors and variable leaf state.
//
// Determinism:
//   - Inputs() returns inputs in declaration order; IDs are strictly increasing
//     from inputs to outputs.
//
// Concurrency:
//   - Variable current value protected by muVal; everything else is immutable.
package core

import "fmt"

// IsNil reports whether the receiver should be treated as nil when stored
// inside interfaces. Safe for typed-nil; never dereferences.
func (n *Node) IsNil() bool { return n == nil }

// ID returns the process-unique identity of n.
// IDs increase strictly in construction order, so an input's ID is always
// smaller than its consumer's.
// Complexity: O(1)
func (n *Node) ID() uint64 { return n.id }

// Op returns the operator kind of n.
// Complexity: O(1)
func (n *Node) Op() OpKind { return n.op }

// IsLeaf reports whether n is a leaf (constant or variable).
// Complexity: O(1)
func (n *Node) IsLeaf() bool { return n.op.IsLeaf() }

// IsVariable reports whether n is a variable leaf.
// Complexity: O(1)
func (n *Node) IsVariable() bool { return n.op == OpVariable }

// IsConstant reports whether n is a constant leaf.
// Complexity: O(1)
func (n *Node) IsConstant() bool { return n.op == OpConstant }

// Name returns the variable name, or "" for constants and operators.
// Complexity: O(1)
func (n *Node) Name() string { return n.name }

// Inputs returns a copy of n's ordered input slice; empty for leaves.
// The copy may be modified freely by the caller.
// Complexity: O(arity)
func (n *Node) Inputs() []*Node {
	if len(n.in) == 0 {
		return nil
	}
	out := make([]*Node, len(n.in))
	copy(out, n.in)

	return out
}

// Bounds returns the declared closed bounds of a variable leaf and whether
// any were declared. For unbounded variables, constants and operators,
// bounded is false and the bounds are zero.
// Complexity: O(1)
func (n *Node) Bounds() (lower, upper float64, bounded bool) {
	return n.lower, n.upper, n.bounded
}

// Value returns the stored value of a leaf: the immutable payload of a
// constant, or the current value of a variable (read under lock).
//
// Errors:
//   - ErrNotLeaf if n is an operator node; operator values exist only
//     during evaluation (see package eval).
//
// Complexity: O(1)
func (n *Node) Value() (float64, error) {
	switch n.op {
	case OpConstant:
		return n.constVal, nil
	case OpVariable:
		n.muVal.RLock()
		v := n.curVal
		n.muVal.RUnlock()

		return v, nil
	default:
		return 0, fmt.Errorf("core: Value on %s node: %w", n.op, ErrNotLeaf)
	}
}

// SetValue updates the current value of a variable leaf. Mutation changes
// leaf state only, never graph structure. Do not mutate a variable while an
// evaluation over a graph containing it is in progress; the evaluated result
// would be unspecified.
//
// Errors:
//   - ErrNotVariable     if n is a constant or operator node.
//   - ErrValueOutOfRange if v falls outside the declared bounds.
//
// Complexity: O(1)
func (n *Node) SetValue(v float64) error {
	// 1. Only variables are mutable.
	if n.op != OpVariable {
		return fmt.Errorf("core: SetValue on %s node: %w", n.op, ErrNotVariable)
	}

	// 2. Bounds declared at construction keep holding for every update.
	if n.bounded && (v < n.lower || v > n.upper) {
		return fmt.Errorf("core: SetValue(%q, %v): outside [%v, %v]: %w",
			n.name, v, n.lower, n.upper, ErrValueOutOfRange)
	}

	// 3. Swap under the write lock.
	n.muVal.Lock()
	n.curVal = v
	n.muVal.Unlock()

	return nil
}
