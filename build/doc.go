// SPDX-License-Identifier: MIT
// Package: graphex/build
//
// Package build provides validated operator wrappers and composite
// constructors over core.Combine, so model expressions read as math
// instead of arity bookkeeping.
//
// Design contract (strict):
//   - Wrappers (Add, Mul, Exp, ...) validate nothing themselves; they pass the
//     exact arity through and surface core sentinels unchanged.
//   - Composites (Sum, Prod, Polynomial, AffineCombination) validate their own
//     parameters early and return build sentinels (no panics).
//   - Determinism: same terms in the same order ⇒ an identical graph shape.
//     Sum and Prod fold as balanced binary trees, keeping graphs shallow for
//     long series.
//
// Errors:
//
//	ErrNoTerms        - composite called with zero terms or coefficients.
//	ErrLengthMismatch - terms and coefficients differ in length.
//	core sentinels    - propagated unchanged from core.Combine.
package build
