// Package render produces human-readable views of expression graphs: a
// precedence-aware infix string with minimal parentheses, and a Graphviz
// DOT digraph of the reachable structure.
//
// Key features:
//   - Infix(root): "(a + b) * exp(x)" style output, variables by name
//   - DOT(root): deterministic digraph for dot/xdot rendering
//
// Infix renders shared subexpressions once per occurrence, so its output
// length can grow faster than the node count on graphs with heavy sharing;
// prefer DOT when structure matters.
//
// Errors:
//
//   - core.ErrNilNode          if root is nil.
//   - inspect.ErrCycleDetected propagated from the structural walk (DOT).
package render
