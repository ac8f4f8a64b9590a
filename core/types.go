// This file declares Node, VariableOption, the node identity counter,
// and the sentinel errors shared by all core operations.
package core

import (
	"errors"
	"sync"
	"sync/atomic"
)

// Sentinel errors for core graph construction and leaf state.
var (
	// ErrNilNode indicates a nil *Node was passed where a node is required.
	ErrNilNode = errors.New("core: node is nil")

	// ErrEmptyVariableName indicates a variable was declared with an empty name.
	ErrEmptyVariableName = errors.New("core: variable name is empty")

	// ErrInvalidBounds indicates WithBounds was given lower > upper.
	ErrInvalidBounds = errors.New("core: lower bound exceeds upper bound")

	// ErrValueOutOfRange indicates a variable value outside its declared bounds.
	ErrValueOutOfRange = errors.New("core: value outside declared bounds")

	// ErrUnknownOp indicates an operator kind outside the defined OpKind set.
	ErrUnknownOp = errors.New("core: unknown operator kind")

	// ErrLeafKind indicates a leaf kind (OpConstant, OpVariable) passed to Combine;
	// leaves are built with Constant and Variable instead.
	ErrLeafKind = errors.New("core: leaf kinds must use Constant or Variable")

	// ErrArityMismatch indicates an input count that does not match the operator's arity.
	ErrArityMismatch = errors.New("core: input count does not match operator arity")

	// ErrNotVariable indicates SetValue was called on a constant or operator node.
	ErrNotVariable = errors.New("core: node is not a variable")

	// ErrNotLeaf indicates Value was called on an operator node; operator values
	// exist only during evaluation.
	ErrNotLeaf = errors.New("core: node is not a leaf")
)

// nextNodeID is the process-wide monotonic identity source. Monotonicity is
// what makes acyclicity structural: a node's inputs always carry smaller IDs.
var nextNodeID atomic.Uint64

// Node is a single entry in an expression graph: a constant leaf, a variable
// leaf, or an operator over an ordered, immutable list of input Nodes.
//
// Structure (op, in, name, bounds) never changes after construction. The only
// mutable field is a variable's current value, guarded by muVal.
type Node struct {
	// id uniquely identifies this node; strictly increasing across the process.
	id uint64

	// op is the operator kind; OpConstant or OpVariable for leaves.
	op OpKind

	// in holds the ordered inputs; nil for leaves.
	in []*Node

	// name is the variable name; empty for constants and operators.
	name string

	// constVal is the immutable payload of a constant leaf.
	constVal float64

	muVal  sync.RWMutex // guards curVal
	curVal float64      // current value of a variable leaf

	// Optional closed bounds for a variable leaf.
	lower, upper float64
	bounded      bool
}

// VariableOption configures a variable leaf at construction time.
type VariableOption func(*Node) error

// WithBounds constrains the variable to the closed interval [lower, upper].
// Variable returns ErrInvalidBounds if lower > upper, and ErrValueOutOfRange
// if the initial value falls outside the interval.
func WithBounds(lower, upper float64) VariableOption {
	return func(n *Node) error {
		if lower > upper {
			return ErrInvalidBounds
		}
		n.lower, n.upper = lower, upper
		n.bounded = true

		return nil
	}
}
