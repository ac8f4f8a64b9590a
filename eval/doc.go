// Package eval materializes expression graphs: it walks the nodes reachable
// from a root in topological order and computes each node's value exactly
// once per call, bottom-up, as a pure function of its inputs' already
// computed values. Nodes shared by multiple paths are computed once.
//
// Key features:
//   - Evaluate(root, opts...): the number the deferred expression denotes
//   - Forward(root, opts...): per-node values + order, consumed by package grad
//   - WithOverride(node, v): probe a variable at v without mutating shared state
//   - WithOnNode(fn): per-node hook after each value lands; error aborts
//   - Cancellation via context.Context
//
// Numeric policy:
//
// All arithmetic is float64 with IEEE-754 semantics: division by zero yields
// ±Inf or NaN, Log and Sqrt of out-of-domain inputs follow package math.
// Evaluation never fails on numeric grounds; Inf and NaN propagate as values.
//
// Memoization is strictly per call. No result is cached across calls, so
// mutating a variable between calls can never serve a stale value; two calls
// with no intervening mutation return identical results.
//
// Complexity:
//
//   - Time:   O(V + E) per call (V = reachable nodes, E = input edges).
//   - Memory: O(V) for the memo table.
//
// Errors:
//
//   - core.ErrNilNode          if root is nil.
//   - core.ErrUnknownOp        if a node carries a kind without a kernel.
//   - inspect.ErrCycleDetected propagated from the defensive structural check.
//   - context.Canceled         if the context is done.
//   - any error returned by an OnNode hook.
package eval
