// SPDX-License-Identifier: MIT
// Package: graphex/build
//
// api.go - thin public wrappers over core.Combine.
//
// Each wrapper passes the exact arity its operator requires, so the only
// failure mode left is a nil input (core.ErrNilNode). Wrappers never wrap
// errors a second time; core's context is already complete.

package build

import "github.com/katurin/graphex/core"

// Add returns a node computing a + b.
func Add(a, b *core.Node) (*core.Node, error) { return core.Combine(core.OpAdd, a, b) }

// Sub returns a node computing a - b.
func Sub(a, b *core.Node) (*core.Node, error) { return core.Combine(core.OpSub, a, b) }

// Mul returns a node computing a · b.
func Mul(a, b *core.Node) (*core.Node, error) { return core.Combine(core.OpMul, a, b) }

// Div returns a node computing a / b (IEEE-754: division by zero yields ±Inf or NaN).
func Div(a, b *core.Node) (*core.Node, error) { return core.Combine(core.OpDiv, a, b) }

// Pow returns a node computing a^b.
func Pow(a, b *core.Node) (*core.Node, error) { return core.Combine(core.OpPow, a, b) }

// Neg returns a node computing -a.
func Neg(a *core.Node) (*core.Node, error) { return core.Combine(core.OpNeg, a) }

// Exp returns a node computing e^a.
func Exp(a *core.Node) (*core.Node, error) { return core.Combine(core.OpExp, a) }

// Log returns a node computing ln(a).
func Log(a *core.Node) (*core.Node, error) { return core.Combine(core.OpLog, a) }

// Sqrt returns a node computing √a.
func Sqrt(a *core.Node) (*core.Node, error) { return core.Combine(core.OpSqrt, a) }

// Sin returns a node computing sin(a), a in radians.
func Sin(a *core.Node) (*core.Node, error) { return core.Combine(core.OpSin, a) }

// Cos returns a node computing cos(a), a in radians.
func Cos(a *core.Node) (*core.Node, error) { return core.Combine(core.OpCos, a) }

// Floor returns a node computing ⌊a⌋. Not differentiable.
func Floor(a *core.Node) (*core.Node, error) { return core.Combine(core.OpFloor, a) }

// Sign returns a node computing sign(a) ∈ {-1, 0, +1}. Not differentiable.
func Sign(a *core.Node) (*core.Node, error) { return core.Combine(core.OpSign, a) }
