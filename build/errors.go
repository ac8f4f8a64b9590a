// SPDX-License-Identifier: MIT
// Package: graphex/build
//
// errors.go — sentinel errors for the build package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Implementations SHOULD attach context using `%w`.
//   • Composites MUST NOT panic at runtime; they validate and return.

package build

import "errors"

// ErrNoTerms indicates a composite constructor (Sum, Prod, Polynomial,
// AffineCombination) was called with nothing to combine.
// Usage: if errors.Is(err, ErrNoTerms) { /* supply at least one term */ }.
var ErrNoTerms = errors.New("build: no terms to combine")

// ErrLengthMismatch indicates AffineCombination received terms and
// coefficients of different lengths.
// Usage: if errors.Is(err, ErrLengthMismatch) { /* align the slices */ }.
var ErrLengthMismatch = errors.New("build: terms and coefficients differ in length")
