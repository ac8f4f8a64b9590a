// This file declares the three public constructors: Constant, Variable
// and Combine. All structural invariants are enforced here, once, at
// build time; nothing after construction can break them.
package core

import "fmt"

// Constant creates an immutable scalar leaf holding value.
// Always succeeds.
// Complexity: O(1)
func Constant(value float64) *Node {
	return &Node{
		id:       nextNodeID.Add(1),
		op:       OpConstant,
		constVal: value,
	}
}

// Variable creates a named scalar leaf whose current value starts at initial
// and may be mutated later via SetValue.
//
// Options:
//   - WithBounds(lower, upper) constrains the value to [lower, upper].
//
// Errors:
//   - ErrEmptyVariableName if name is "".
//   - ErrInvalidBounds     if a bounds option has lower > upper.
//   - ErrValueOutOfRange   if initial falls outside the declared bounds.
//
// Complexity: O(len(opts))
func Variable(name string, initial float64, opts ...VariableOption) (*Node, error) {
	// 1. Validate the name before allocating an identity.
	if name == "" {
		return nil, ErrEmptyVariableName
	}

	n := &Node{
		id:     nextNodeID.Add(1),
		op:     OpVariable,
		name:   name,
		curVal: initial,
	}

	// 2. Apply options; each may reject its own parameters.
	for _, opt := range opts {
		if err := opt(n); err != nil {
			return nil, fmt.Errorf("core: Variable(%q): %w", name, err)
		}
	}

	// 3. Check the initial value against whatever bounds the options declared.
	if n.bounded && (initial < n.lower || initial > n.upper) {
		return nil, fmt.Errorf("core: Variable(%q): initial %v outside [%v, %v]: %w",
			name, initial, n.lower, n.upper, ErrValueOutOfRange)
	}

	return n, nil
}

// Combine creates an operator node of kind op over the given inputs, in order.
// Inputs must already exist; together with structural immutability this makes
// every reachable set a DAG without any runtime bookkeeping.
//
// Errors:
//   - ErrUnknownOp     if op is not a defined kind.
//   - ErrLeafKind      if op is OpConstant or OpVariable.
//   - ErrArityMismatch if len(inputs) differs from op.Arity().
//   - ErrNilNode       if any input is nil.
//
// Complexity: O(len(inputs))
func Combine(op OpKind, inputs ...*Node) (*Node, error) {
	// 1. The kind itself must be defined and non-leaf.
	if !op.Valid() {
		return nil, fmt.Errorf("core: Combine(%d): %w", op, ErrUnknownOp)
	}
	if op.IsLeaf() {
		return nil, fmt.Errorf("core: Combine(%s): %w", op, ErrLeafKind)
	}

	// 2. Arity is exact: unary takes one input, binary takes two.
	if len(inputs) != op.Arity() {
		return nil, fmt.Errorf("core: Combine(%s): got %d inputs, want %d: %w",
			op, len(inputs), op.Arity(), ErrArityMismatch)
	}

	// 3. Every input must be a real node.
	for i, in := range inputs {
		if in == nil {
			return nil, fmt.Errorf("core: Combine(%s): input %d: %w", op, i, ErrNilNode)
		}
	}

	// 4. Copy the input slice so later caller mutations cannot reshape the graph.
	own := make([]*Node, len(inputs))
	copy(own, inputs)

	return &Node{
		id: nextNodeID.Add(1),
		op: op,
		in: own,
	}, nil
}
