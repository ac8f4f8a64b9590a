// This file holds the local partial-derivative rule table. Each rule maps an
// operator node's forward input values (and, where cheaper, its own forward
// value) to one partial per input.
package grad

import (
	"math"

	"github.com/katurin/graphex/core"
)

// Differentiable reports whether kind k carries a partial rule.
// Leaves are trivially differentiable (they terminate propagation).
func Differentiable(k core.OpKind) bool {
	switch k {
	case core.OpFloor, core.OpSign:
		return false
	default:
		return k.Valid()
	}
}

// partials returns the local partial derivative of an op node's output with
// respect to each of its inputs, given the inputs' forward values in and the
// node's own forward value out. The boolean is false for kinds without a rule.
func partials(op core.OpKind, in []float64, out float64) ([]float64, bool) {
	switch op {
	case core.OpAdd:
		return []float64{1, 1}, true
	case core.OpSub:
		return []float64{1, -1}, true
	case core.OpMul:
		// Each input's partial is the other input's forward value.
		return []float64{in[1], in[0]}, true
	case core.OpDiv:
		return []float64{1 / in[1], -in[0] / (in[1] * in[1])}, true
	case core.OpPow:
		// out = in[0]^in[1]; reuse it for the exponent partial.
		return []float64{
			in[1] * math.Pow(in[0], in[1]-1),
			out * math.Log(in[0]),
		}, true
	case core.OpNeg:
		return []float64{-1}, true
	case core.OpExp:
		// out = e^in[0] is exactly the partial.
		return []float64{out}, true
	case core.OpLog:
		return []float64{1 / in[0]}, true
	case core.OpSqrt:
		// out = √in[0]; 1/(2·out) avoids recomputing the root.
		return []float64{1 / (2 * out)}, true
	case core.OpSin:
		return []float64{math.Cos(in[0])}, true
	case core.OpCos:
		return []float64{-math.Sin(in[0])}, true
	default:
		return nil, false
	}
}
