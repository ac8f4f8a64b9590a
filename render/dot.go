// This file emits Graphviz DOT. Edges point from inputs to consumers, the
// direction values flow during evaluation.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katurin/graphex/core"
	"github.com/katurin/graphex/inspect"
)

// DOT renders the graph reachable from root as a Graphviz digraph.
// Node statements appear in topological order and edge statements in input
// order, so equal graphs always produce byte-identical output.
//
// Errors:
//   - core.ErrNilNode          if root is nil.
//   - inspect.ErrCycleDetected from the structural walk.
func DOT(root *core.Node) (string, error) {
	// 1. The topological order doubles as a deterministic statement order.
	order, err := inspect.Topological(root)
	if err != nil {
		return "", fmt.Errorf("render: DOT: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("digraph exprgraph {\n")
	sb.WriteString("  rankdir=BT;\n")

	// 2. One statement per node, labeled by role.
	for _, n := range order {
		fmt.Fprintf(&sb, "  n%d [label=%q];\n", n.ID(), label(n))
	}

	// 3. One edge per input reference, inputs first.
	for _, n := range order {
		for _, in := range n.Inputs() {
			fmt.Fprintf(&sb, "  n%d -> n%d;\n", in.ID(), n.ID())
		}
	}

	sb.WriteString("}\n")

	return sb.String(), nil
}

// label renders a node's DOT label: value for constants, name=value for
// variables, operator name otherwise.
func label(n *core.Node) string {
	switch n.Op() {
	case core.OpConstant:
		v, _ := n.Value()
		return strconv.FormatFloat(v, 'g', -1, 64)
	case core.OpVariable:
		v, _ := n.Value()
		return n.Name() + "=" + strconv.FormatFloat(v, 'g', -1, 64)
	default:
		return n.Op().String()
	}
}
