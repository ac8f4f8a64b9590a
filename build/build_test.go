package build_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katurin/graphex/build"
	"github.com/katurin/graphex/core"
	"github.com/katurin/graphex/eval"
	"github.com/katurin/graphex/grad"
	"github.com/katurin/graphex/inspect"
)

// evaluate materializes root or fails the test.
func evaluate(t *testing.T, root *core.Node) float64 {
	t.Helper()
	v, err := eval.Evaluate(root)
	require.NoError(t, err)

	return v
}

// TestWrappers_Values verifies each wrapper builds the operator it names.
func TestWrappers_Values(t *testing.T) {
	a, b := core.Constant(6), core.Constant(2)

	for _, tc := range []struct {
		name string
		fn   func() (*core.Node, error)
		want float64
	}{
		{"Add", func() (*core.Node, error) { return build.Add(a, b) }, 8},
		{"Sub", func() (*core.Node, error) { return build.Sub(a, b) }, 4},
		{"Mul", func() (*core.Node, error) { return build.Mul(a, b) }, 12},
		{"Div", func() (*core.Node, error) { return build.Div(a, b) }, 3},
		{"Pow", func() (*core.Node, error) { return build.Pow(a, b) }, 36},
		{"Neg", func() (*core.Node, error) { return build.Neg(b) }, -2},
		{"Floor", func() (*core.Node, error) { return build.Floor(core.Constant(2.7)) }, 2},
		{"Sign", func() (*core.Node, error) { return build.Sign(core.Constant(-9)) }, -1},
	} {
		n, err := tc.fn()
		require.NoError(t, err, tc.name)
		assert.Equal(t, tc.want, evaluate(t, n), tc.name)
	}
}

// TestWrappers_NilPropagates verifies wrappers surface core's nil guard
// unchanged.
func TestWrappers_NilPropagates(t *testing.T) {
	_, err := build.Add(core.Constant(1), nil)
	assert.ErrorIs(t, err, core.ErrNilNode)

	_, err = build.Exp(nil)
	assert.ErrorIs(t, err, core.ErrNilNode)
}

// TestSum_Values verifies sums over one, two and many terms.
func TestSum_Values(t *testing.T) {
	one := core.Constant(1)

	single, err := build.Sum(one)
	require.NoError(t, err)
	assert.Same(t, one, single) // a single term folds to itself

	terms := make([]*core.Node, 10)
	for i := range terms {
		terms[i] = core.Constant(float64(i + 1))
	}
	root, err := build.Sum(terms...)
	require.NoError(t, err)
	assert.Equal(t, 55.0, evaluate(t, root))
}

// TestSum_BalancedDepth verifies the fold keeps graphs logarithmic: 16
// terms produce 31 nodes arranged 4 levels deep, not a 15-deep comb.
func TestSum_BalancedDepth(t *testing.T) {
	terms := make([]*core.Node, 16)
	for i := range terms {
		terms[i] = core.Constant(1)
	}
	root, err := build.Sum(terms...)
	require.NoError(t, err)

	depth := func(n *core.Node) int {
		var walk func(*core.Node) int
		walk = func(n *core.Node) int {
			best := 0
			for _, in := range n.Inputs() {
				if d := walk(in); d > best {
					best = d
				}
			}
			return best + 1
		}
		return walk(n)
	}
	assert.Equal(t, 5, depth(root)) // 16 leaves under 4 add levels
}

// TestProd_Values verifies the product fold.
func TestProd_Values(t *testing.T) {
	root, err := build.Prod(core.Constant(2), core.Constant(3), core.Constant(4))
	require.NoError(t, err)
	assert.Equal(t, 24.0, evaluate(t, root))
}

// TestFold_NoTerms ensures the empty combination is rejected.
func TestFold_NoTerms(t *testing.T) {
	_, err := build.Sum()
	assert.ErrorIs(t, err, build.ErrNoTerms)

	_, err = build.Prod()
	assert.ErrorIs(t, err, build.ErrNoTerms)
}

// TestPolynomial_HornerValue verifies 2 + 3x + x² at x = 4 is 30.
func TestPolynomial_HornerValue(t *testing.T) {
	x, err := core.Variable("x", 4)
	require.NoError(t, err)

	p, err := build.Polynomial(x, 2, 3, 1)
	require.NoError(t, err)
	assert.Equal(t, 30.0, evaluate(t, p))
}

// TestPolynomial_Gradient verifies the derivative through Horner form:
// d/dx (2 + 3x + x²) = 3 + 2x = 11 at x = 4.
func TestPolynomial_Gradient(t *testing.T) {
	x, err := core.Variable("x", 4)
	require.NoError(t, err)

	p, err := build.Polynomial(x, 2, 3, 1)
	require.NoError(t, err)

	d, err := grad.Gradient(p, x)
	assert.NoError(t, err)
	assert.Equal(t, 11.0, d)
}

// TestPolynomial_ConstantOnly covers the degenerate degree-0 polynomial.
func TestPolynomial_ConstantOnly(t *testing.T) {
	x, err := core.Variable("x", 4)
	require.NoError(t, err)

	p, err := build.Polynomial(x, 7)
	require.NoError(t, err)
	assert.Equal(t, 7.0, evaluate(t, p))

	// With no x terms the polynomial never wires x in.
	on, err := inspect.DependsOn(p, x)
	require.NoError(t, err)
	assert.False(t, on)
}

// TestPolynomial_NoCoeffs ensures at least the constant term is required.
func TestPolynomial_NoCoeffs(t *testing.T) {
	x, err := core.Variable("x", 0)
	require.NoError(t, err)

	_, err = build.Polynomial(x)
	assert.ErrorIs(t, err, build.ErrNoTerms)
}

// TestAffineCombination_Value verifies 2a + 3b at a=5, b=4 is 22.
func TestAffineCombination_Value(t *testing.T) {
	a, err := core.Variable("a", 5)
	require.NoError(t, err)
	b, err := core.Variable("b", 4)
	require.NoError(t, err)

	root, err := build.AffineCombination([]*core.Node{a, b}, []float64{2, 3})
	require.NoError(t, err)
	assert.Equal(t, 22.0, evaluate(t, root))

	// The coefficients surface directly as the partials.
	partials, err := grad.All(root)
	require.NoError(t, err)
	assert.Equal(t, 2.0, partials[a])
	assert.Equal(t, 3.0, partials[b])
}

// TestAffineCombination_Validation covers both sentinel paths.
func TestAffineCombination_Validation(t *testing.T) {
	_, err := build.AffineCombination(nil, nil)
	assert.ErrorIs(t, err, build.ErrNoTerms)

	a := core.Constant(1)
	_, err = build.AffineCombination([]*core.Node{a}, []float64{1, 2})
	assert.ErrorIs(t, err, build.ErrLengthMismatch)
}

// TestComposites_DeterministicShape verifies equal inputs produce equal
// graph shapes: two folds over equal terms evaluate identically and carry
// the same node count.
func TestComposites_DeterministicShape(t *testing.T) {
	mk := func() *core.Node {
		terms := make([]*core.Node, 7)
		for i := range terms {
			terms[i] = core.Constant(float64(i))
		}
		root, err := build.Sum(terms...)
		require.NoError(t, err)

		return root
	}

	r1, r2 := mk(), mk()
	assert.Equal(t, evaluate(t, r1), evaluate(t, r2))

	c1, err := inspect.Count(r1)
	require.NoError(t, err)
	c2, err := inspect.Count(r2)
	require.NoError(t, err)
	assert.Equal(t, c1, c2)
}
