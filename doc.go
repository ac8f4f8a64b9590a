// Package graphex is your in-memory toolkit for building, evaluating,
// and differentiating lazy expression graphs — from leaf primitives to
// reverse-mode gradients.
//
// 🚀 What is graphex?
//
//	A compact, deterministic, zero-dependency library that brings together:
//		• Core primitives: constants, bounded variables & operator nodes, acyclic by construction
//		• Structural queries: reachability, topological order, variable enumeration
//		• Materialization: memoized bottom-up evaluation, one computation per node per call
//		• Differentiation: reverse-mode gradients with per-operator partial rules
//		• Composites: sums, products, polynomials in Horner form
//		• Rendering: precedence-aware infix strings & Graphviz DOT
//
// ✨ Why choose graphex?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – construction-time validation, sentinel errors, no panics
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – add custom hooks (OnNode…) and value overrides for custom logic
//
// Under the hood, everything is organized under small subpackages:
//
//	core/    — fundamental Node & OpKind types, constructors and leaf state
//	inspect/ — reachability, topological sort, structural diagnostics
//	eval/    — memoized bottom-up materialization of a root node
//	grad/    — reverse-mode differentiation over forward results
//	build/   — validated operator wrappers & composite constructors
//	render/  — infix and DOT output for debugging and docs
//
// Quick ASCII example:
//
//	    a   b
//	     \ /
//	      ×      evaluate → a·b, gradient → {∂/∂a = b, ∂/∂b = a}
//
//	represents the two-leaf product every fitting loop is made of.
//
// Expression graphs are built once, evaluated many times: a fitting or
// optimization driver mutates variable values (or passes overrides) between
// calls and asks for fresh values and gradients each iteration.
//
//	go get github.com/katurin/graphex
package graphex
