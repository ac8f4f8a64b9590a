// SPDX-License-Identifier: MIT
// Package: graphex/build
//
// composites.go - composite constructors assembling common model shapes.
//
// Composites validate parameters early and return sentinel errors; graph
// shape is deterministic for equal inputs (balanced folds, Horner form).

package build

import (
	"fmt"

	"github.com/katurin/graphex/core"
)

// Sum returns a node computing the sum of all terms. A single term is
// returned as-is. Terms fold as a balanced binary tree, so a series of N
// terms produces a graph of depth ⌈log₂N⌉ rather than N.
//
// Errors:
//   - ErrNoTerms     if terms is empty.
//   - core sentinels if any term is nil.
//
// Complexity: O(N) nodes, O(log N) depth.
func Sum(terms ...*core.Node) (*core.Node, error) {
	return fold(core.OpAdd, terms)
}

// Prod returns a node computing the product of all terms, folded as a
// balanced binary tree like Sum.
//
// Errors:
//   - ErrNoTerms     if terms is empty.
//   - core sentinels if any term is nil.
func Prod(terms ...*core.Node) (*core.Node, error) {
	return fold(core.OpMul, terms)
}

// fold combines terms pairwise under op until one node remains.
func fold(op core.OpKind, terms []*core.Node) (*core.Node, error) {
	// 1. Reject the empty combination; there is no neutral node to return.
	if len(terms) == 0 {
		return nil, fmt.Errorf("build: %s fold: %w", op, ErrNoTerms)
	}

	// 2. Work on a copy; halve the slice until a single root remains.
	layer := make([]*core.Node, len(terms))
	copy(layer, terms)
	for len(layer) > 1 {
		next := layer[:0]
		for i := 0; i+1 < len(layer); i += 2 {
			n, err := core.Combine(op, layer[i], layer[i+1])
			if err != nil {
				return nil, err
			}
			next = append(next, n)
		}
		// 2a. An odd trailing term rides up to the next layer unchanged.
		if len(layer)%2 == 1 {
			next = append(next, layer[len(layer)-1])
		}
		layer = next
	}

	return layer[0], nil
}

// Polynomial returns a node computing c₀ + c₁·x + c₂·x² + ... in Horner
// form: cₙ folded through repeated multiply-and-add, one multiplication per
// degree. Coefficients become constant leaves.
//
// Errors:
//   - ErrNoTerms     if coeffs is empty.
//   - core sentinels if x is nil.
//
// Complexity: O(len(coeffs)) nodes, linear depth (Horner is sequential).
func Polynomial(x *core.Node, coeffs ...float64) (*core.Node, error) {
	// 1. A polynomial needs at least the constant term.
	if len(coeffs) == 0 {
		return nil, fmt.Errorf("build: Polynomial: %w", ErrNoTerms)
	}

	// 2. Horner: start from the leading coefficient, multiply by x and add
	//    the next-lower coefficient each step.
	acc := core.Constant(coeffs[len(coeffs)-1])
	var err error
	for i := len(coeffs) - 2; i >= 0; i-- {
		if acc, err = Mul(acc, x); err != nil {
			return nil, fmt.Errorf("build: Polynomial: %w", err)
		}
		if acc, err = Add(acc, core.Constant(coeffs[i])); err != nil {
			return nil, fmt.Errorf("build: Polynomial: %w", err)
		}
	}

	return acc, nil
}

// AffineCombination returns a node computing Σ coeffs[i]·terms[i].
// Coefficients become constant leaves; the weighted terms fold through Sum.
//
// Errors:
//   - ErrNoTerms        if terms is empty.
//   - ErrLengthMismatch if len(terms) != len(coeffs).
//   - core sentinels    if any term is nil.
func AffineCombination(terms []*core.Node, coeffs []float64) (*core.Node, error) {
	// 1. Validate shape before building anything.
	if len(terms) == 0 {
		return nil, fmt.Errorf("build: AffineCombination: %w", ErrNoTerms)
	}
	if len(terms) != len(coeffs) {
		return nil, fmt.Errorf("build: AffineCombination: %d terms, %d coefficients: %w",
			len(terms), len(coeffs), ErrLengthMismatch)
	}

	// 2. Scale each term, then fold the weighted series.
	weighted := make([]*core.Node, len(terms))
	for i, t := range terms {
		w, err := Mul(core.Constant(coeffs[i]), t)
		if err != nil {
			return nil, fmt.Errorf("build: AffineCombination: term %d: %w", i, err)
		}
		weighted[i] = w
	}

	return Sum(weighted...)
}
