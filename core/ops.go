// This file declares the OpKind enumeration and its arity table.
package core

// OpKind identifies the operation a Node performs. Leaf kinds carry values;
// unary and binary kinds combine the values of their inputs.
type OpKind uint8

const (
	// OpConstant is an immutable scalar leaf.
	OpConstant OpKind = iota

	// OpVariable is a named, mutable, optionally bounded scalar leaf.
	OpVariable

	// OpNeg negates its single input.
	OpNeg

	// OpExp raises e to its single input.
	OpExp

	// OpLog takes the natural logarithm of its single input.
	OpLog

	// OpSqrt takes the square root of its single input.
	OpSqrt

	// OpSin takes the sine of its single input (radians).
	OpSin

	// OpCos takes the cosine of its single input (radians).
	OpCos

	// OpFloor rounds its single input down to the nearest integer.
	// Piecewise constant: carries no derivative rule.
	OpFloor

	// OpSign yields -1, 0 or +1 by the sign of its single input.
	// Piecewise constant: carries no derivative rule.
	OpSign

	// OpAdd sums its two inputs.
	OpAdd

	// OpSub subtracts the second input from the first.
	OpSub

	// OpMul multiplies its two inputs.
	OpMul

	// OpDiv divides the first input by the second (IEEE-754: x/0 is ±Inf or NaN).
	OpDiv

	// OpPow raises the first input to the power of the second.
	OpPow

	// opSentinel marks the end of the defined kinds; keep it last.
	opSentinel
)

// opNames maps each kind to its canonical lower-case name.
var opNames = [...]string{
	OpConstant: "const",
	OpVariable: "var",
	OpNeg:      "neg",
	OpExp:      "exp",
	OpLog:      "log",
	OpSqrt:     "sqrt",
	OpSin:      "sin",
	OpCos:      "cos",
	OpFloor:    "floor",
	OpSign:     "sign",
	OpAdd:      "add",
	OpSub:      "sub",
	OpMul:      "mul",
	OpDiv:      "div",
	OpPow:      "pow",
}

// Valid reports whether k is one of the defined operator kinds.
// Complexity: O(1)
func (k OpKind) Valid() bool { return k < opSentinel }

// IsLeaf reports whether k is a leaf kind (OpConstant or OpVariable).
// Complexity: O(1)
func (k OpKind) IsLeaf() bool { return k == OpConstant || k == OpVariable }

// Arity returns the exact number of inputs nodes of kind k require:
// 0 for leaves, 1 for unary operators, 2 for binary operators.
// Returns -1 for invalid kinds.
// Complexity: O(1)
func (k OpKind) Arity() int {
	switch {
	case !k.Valid():
		return -1
	case k.IsLeaf():
		return 0
	case k >= OpAdd:
		return 2
	default:
		return 1
	}
}

// String returns the canonical name of k, or "invalid" for undefined kinds.
// Complexity: O(1)
func (k OpKind) String() string {
	if !k.Valid() {
		return "invalid"
	}

	return opNames[k]
}
