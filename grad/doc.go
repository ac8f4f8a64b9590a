// Package grad computes derivatives of expression graphs by reverse-mode
// accumulation: one forward pass materializes the value at every reachable
// node, then a single backward sweep over the reversed topological order
// propagates a seed derivative of 1 at the root through each operator's
// local partial rule, adding contributions at nodes reached via multiple
// paths.
//
// Key features:
//   - Gradient(root, wrt): one partial derivative; 0 if wrt is unreachable
//   - All(root): every reachable variable's partial in one backward sweep
//   - Accepts eval options: cancellation and value overrides apply to the
//     forward pass, and an overridden node is treated as a constant leaf
//     (its subtree is cut from both passes)
//
// Partial rules:
//
//	add(a,b):  ∂/∂a = 1,        ∂/∂b = 1
//	sub(a,b):  ∂/∂a = 1,        ∂/∂b = -1
//	mul(a,b):  ∂/∂a = b,        ∂/∂b = a
//	div(a,b):  ∂/∂a = 1/b,      ∂/∂b = -a/b²
//	pow(a,b):  ∂/∂a = b·a^(b-1), ∂/∂b = a^b·ln(a)
//	neg(a):    -1        exp(a): e^a        log(a):  1/a
//	sqrt(a):   1/(2√a)   sin(a): cos(a)     cos(a): -sin(a)
//
// floor and sign are piecewise constant and carry no rule: requesting a
// gradient through them fails with ErrNotDifferentiable.
//
// Complexity:
//
//   - Time:   O(V + E) total — forward pass plus one backward sweep.
//   - Memory: O(V) for forward values and adjoints.
//
// Errors:
//
//   - ErrNotDifferentiable  a reachable operator carries no partial rule.
//   - core.ErrNilNode       if root or wrt is nil.
//   - anything Forward can return (cycle guard, cancellation, hook aborts).
package grad
