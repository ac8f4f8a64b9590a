// This file implements precedence-aware infix rendering. The precedence
// ladder mirrors written math: addition binds loosest, then multiplication,
// unary minus, exponentiation; leaves and function calls are atomic.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katurin/graphex/core"
)

// precedence describes how strongly an expression holds together; a child
// rendered under a tighter parent needs parentheses when its own glue is
// looser than the parent's.
type precedence int

const (
	addPrec precedence = iota // + and -
	mulPrec                   // * and /
	negPrec                   // unary -
	powPrec                   // ^
	atomPrec                  // leaves and function calls
)

// opPrec returns the precedence of an operator kind's rendering.
func opPrec(k core.OpKind) precedence {
	switch k {
	case core.OpAdd, core.OpSub:
		return addPrec
	case core.OpMul, core.OpDiv:
		return mulPrec
	case core.OpNeg:
		return negPrec
	case core.OpPow:
		return powPrec
	default:
		return atomPrec
	}
}

// infixSymbols maps binary kinds to their infix spelling.
var infixSymbols = map[core.OpKind]string{
	core.OpAdd: " + ",
	core.OpSub: " - ",
	core.OpMul: " * ",
	core.OpDiv: " / ",
	core.OpPow: "^",
}

// Infix renders the expression rooted at root as an infix string with
// minimal parentheses. Variables render by name, constants via the shortest
// float64 form, function-style operators as "name(arg)".
//
// Errors:
//   - core.ErrNilNode if root is nil.
func Infix(root *core.Node) (string, error) {
	if root.IsNil() {
		return "", fmt.Errorf("render: Infix: %w", core.ErrNilNode)
	}

	var sb strings.Builder
	writeInfix(&sb, root)

	return sb.String(), nil
}

// writeInfix appends the rendering of n to sb. Constructors guarantee n and
// its inputs are non-nil, so no validation happens below the root.
func writeInfix(sb *strings.Builder, n *core.Node) {
	switch n.Op() {
	case core.OpConstant:
		v, _ := n.Value()
		sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	case core.OpVariable:
		sb.WriteString(n.Name())
	case core.OpNeg:
		sb.WriteString("-")
		writeChild(sb, n, n.Inputs()[0], false)
	case core.OpAdd, core.OpSub, core.OpMul, core.OpDiv, core.OpPow:
		in := n.Inputs()
		writeChild(sb, n, in[0], false)
		sb.WriteString(infixSymbols[n.Op()])
		writeChild(sb, n, in[1], true)
	default:
		// Function-style unary: exp, log, sqrt, sin, cos, floor, sign.
		sb.WriteString(n.Op().String())
		sb.WriteString("(")
		writeInfix(sb, n.Inputs()[0])
		sb.WriteString(")")
	}
}

// writeChild renders child under parent, parenthesizing when the child's
// precedence is looser, or equal on the right side of a non-associative
// operator (a - (b + c), a / (b * c), (a^b)^c all need their parentheses).
func writeChild(sb *strings.Builder, parent, child *core.Node, right bool) {
	pp, cp := opPrec(parent.Op()), opPrec(child.Op())
	need := cp < pp
	if !need && cp == pp {
		switch parent.Op() {
		case core.OpSub, core.OpDiv:
			need = right
		case core.OpPow, core.OpNeg:
			// Rendered ^ carries no associativity, and a doubled unary
			// minus reads as a typo; parenthesize either way.
			need = true
		}
	}

	if need {
		sb.WriteString("(")
		writeInfix(sb, child)
		sb.WriteString(")")
		return
	}
	writeInfix(sb, child)
}
