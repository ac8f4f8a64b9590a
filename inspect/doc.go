// Package inspect implements structural queries over expression graphs:
// reachability, topological ordering, variable enumeration and node counting.
// All queries are pure reads; nothing is evaluated and no leaf state changes.
//
// Key features:
//   - DependsOn(root, candidate): reachability along input edges (reflexive)
//   - Topological(root, opts...): deterministic inputs-before-outputs order
//   - Variables(root): reachable variable leaves, sorted by name then ID
//   - Count(root): number of distinct reachable nodes
//   - Cancellation via context.Context (Topological)
//
// Complexity:
//
//   - Time:   O(V + E) per query (V = reachable nodes, E = input edges).
//   - Memory: O(V) for the visitation state and explicit stack.
//
// Errors:
//
//   - ErrCycleDetected  defensive check; structurally impossible for graphs
//     built through core constructors, which only reference existing nodes.
//   - core.ErrNilNode   if a required node argument is nil.
//   - context.Canceled  if the Topological context is done.
package inspect
