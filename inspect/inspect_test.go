package inspect_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katurin/graphex/core"
	"github.com/katurin/graphex/inspect"
)

// diamond builds the shared-subexpression shape
//
//	x
//	|  \
//	neg exp
//	 \  /
//	 add
//
// and returns (root, x).
func diamond(t *testing.T) (root, x *core.Node) {
	t.Helper()

	x, err := core.Variable("x", 1)
	require.NoError(t, err)
	n, err := core.Combine(core.OpNeg, x)
	require.NoError(t, err)
	e, err := core.Combine(core.OpExp, x)
	require.NoError(t, err)
	root, err = core.Combine(core.OpAdd, n, e)
	require.NoError(t, err)

	return root, x
}

// TestDependsOn_Reflexive verifies every node depends on itself.
func TestDependsOn_Reflexive(t *testing.T) {
	c := core.Constant(1)
	ok, err := inspect.DependsOn(c, c)
	assert.NoError(t, err)
	assert.True(t, ok)
}

// TestDependsOn_Reachable checks reachability through shared paths.
func TestDependsOn_Reachable(t *testing.T) {
	root, x := diamond(t)

	ok, err := inspect.DependsOn(root, x)
	assert.NoError(t, err)
	assert.True(t, ok)
}

// TestDependsOn_Unreachable ensures an unrelated leaf is not a dependency,
// and that edges are followed in one direction only.
func TestDependsOn_Unreachable(t *testing.T) {
	root, x := diamond(t)
	z := core.Constant(1)

	ok, err := inspect.DependsOn(root, z)
	assert.NoError(t, err)
	assert.False(t, ok)

	// Input edges point leafward; the leaf does not depend on its consumer.
	ok, err = inspect.DependsOn(x, root)
	assert.NoError(t, err)
	assert.False(t, ok)
}

// TestDependsOn_NilArgs ensures nil endpoints are rejected.
func TestDependsOn_NilArgs(t *testing.T) {
	c := core.Constant(1)

	_, err := inspect.DependsOn(nil, c)
	assert.ErrorIs(t, err, core.ErrNilNode)

	_, err = inspect.DependsOn(c, nil)
	assert.ErrorIs(t, err, core.ErrNilNode)
}

// TestTopological_NilRoot verifies the nil guard.
func TestTopological_NilRoot(t *testing.T) {
	_, err := inspect.Topological(nil)
	assert.ErrorIs(t, err, core.ErrNilNode)
}

// TestTopological_SingleLeaf covers the smallest possible graph.
func TestTopological_SingleLeaf(t *testing.T) {
	c := core.Constant(1)
	order, err := inspect.Topological(c)
	require.NoError(t, err)
	require.Len(t, order, 1)
	assert.Same(t, c, order[0])
}

// TestTopological_InputsBeforeOutputs verifies the ordering invariant on the
// diamond: every node appears after all of its inputs, root last, and a node
// shared by two paths appears exactly once.
func TestTopological_InputsBeforeOutputs(t *testing.T) {
	root, _ := diamond(t)

	order, err := inspect.Topological(root)
	require.NoError(t, err)
	assert.Len(t, order, 4) // x, neg, exp, add — x once despite two paths
	assert.Same(t, root, order[len(order)-1])

	pos := make(map[uint64]int, len(order))
	for i, n := range order {
		pos[n.ID()] = i
	}
	for _, n := range order {
		for _, in := range n.Inputs() {
			assert.Less(t, pos[in.ID()], pos[n.ID()],
				"input %s must precede consumer %s", in.Op(), n.Op())
		}
	}
}

// TestTopological_Deterministic checks two walks of the same graph agree.
func TestTopological_Deterministic(t *testing.T) {
	root, _ := diamond(t)

	first, err := inspect.Topological(root)
	require.NoError(t, err)
	second, err := inspect.Topological(root)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

// TestTopological_Cancelled ensures a cancelled context aborts the walk.
func TestTopological_Cancelled(t *testing.T) {
	root, _ := diamond(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := inspect.Topological(root, inspect.WithCancelContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestVariables_SortedByName verifies variable enumeration is sorted by
// name regardless of construction or wiring order.
func TestVariables_SortedByName(t *testing.T) {
	mu, err := core.Variable("mu", 0)
	require.NoError(t, err)
	sigma, err := core.Variable("sigma", 1)
	require.NoError(t, err)
	amp, err := core.Variable("amp", 2)
	require.NoError(t, err)

	inner, err := core.Combine(core.OpMul, sigma, mu)
	require.NoError(t, err)
	root, err := core.Combine(core.OpAdd, inner, amp)
	require.NoError(t, err)

	vars, err := inspect.Variables(root)
	require.NoError(t, err)
	require.Len(t, vars, 3)
	assert.Equal(t, "amp", vars[0].Name())
	assert.Equal(t, "mu", vars[1].Name())
	assert.Equal(t, "sigma", vars[2].Name())
}

// TestVariables_ExcludesConstants ensures constants never surface as
// parameters.
func TestVariables_ExcludesConstants(t *testing.T) {
	x, err := core.Variable("x", 1)
	require.NoError(t, err)
	root, err := core.Combine(core.OpAdd, x, core.Constant(2))
	require.NoError(t, err)

	vars, err := inspect.Variables(root)
	require.NoError(t, err)
	require.Len(t, vars, 1)
	assert.Same(t, x, vars[0])
}

// TestCount_SharedOnce verifies shared nodes count once.
func TestCount_SharedOnce(t *testing.T) {
	root, _ := diamond(t)

	n, err := inspect.Count(root)
	assert.NoError(t, err)
	assert.Equal(t, 4, n)
}
