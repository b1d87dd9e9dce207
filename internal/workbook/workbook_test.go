package workbook

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/specialistvlad/rpngrid/internal/cell"
	"github.com/specialistvlad/rpngrid/internal/cellref"
	"github.com/specialistvlad/rpngrid/internal/rpn"
	"github.com/specialistvlad/rpngrid/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLoad(t *testing.T, input string) *Workbook {
	t.Helper()
	wb, err := Load(context.Background(), strings.NewReader(input))
	require.NoError(t, err)
	return wb
}

func valueAt(t *testing.T, wb *Workbook, ref string) (float64, bool) {
	t.Helper()
	at, err := cellref.ParseRef(ref)
	require.NoError(t, err)
	c := wb.Cell(at)
	require.NotNil(t, c, "cell %s is outside the grid", ref)
	return c.Value()
}

func TestScenario_IndependentLiterals(t *testing.T) {
	wb := mustLoad(t, "2 1\n3\n4\n")
	require.NoError(t, wb.Evaluate(context.Background()))

	v, ok := valueAt(t, wb, "A1")
	require.True(t, ok)
	assert.Equal(t, 3.0, v)

	v, ok = valueAt(t, wb, "A2")
	require.True(t, ok)
	assert.Equal(t, 4.0, v)
	assert.False(t, wb.IsCircular())
}

func TestScenario_SimpleReference(t *testing.T) {
	wb := mustLoad(t, "1 2\n5\nA1 2 +\n")
	require.NoError(t, wb.Evaluate(context.Background()))

	// Row-major: the second cell is row 1, col 0, i.e. B1.
	v, ok := valueAt(t, wb, "A1")
	require.True(t, ok)
	assert.Equal(t, 5.0, v)

	v, ok = valueAt(t, wb, "B1")
	require.True(t, ok)
	assert.Equal(t, 7.0, v)
}

func TestScenario_MutualCycle(t *testing.T) {
	wb := mustLoad(t, "2 1\nA2\nA1\n")

	err := wb.Evaluate(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCircularDependency)

	var circErr *CircularDependencyError
	require.True(t, errors.As(err, &circErr))
	assert.Equal(t, []cellref.Coord{cellref.New(0, 0), cellref.New(0, 1)}, circErr.Stuck)
	assert.ErrorContains(t, err, "A1, A2")

	assert.True(t, wb.IsCircular())
	for _, c := range wb.Cells() {
		assert.False(t, c.IsEvaluated(), "cell %s should be stuck", c.Coord)
		assert.True(t, wb.IsReferenced(c.Coord))
	}
}

func TestScenario_DivisionByZero(t *testing.T) {
	wb := mustLoad(t, "1 1\n5 0 /\n")

	err := wb.Evaluate(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, rpn.ErrDivisionByZero)
	assert.NotErrorIs(t, err, ErrCircularDependency)
	assert.False(t, wb.IsCircular())

	_, ok := valueAt(t, wb, "A1")
	assert.False(t, ok)
}

// chainFixture is a 3x3 acyclic workbook mixing every operator, repeated
// references and forward references.
const chainFixture = `3 3
2
A1 3 *
A2 A1 -
A3 ++
B1 A1 /
B2 B1 * 1 +
C2 C3 +
A1 A1 *
B3 --
`

func TestEvaluate_MatchesNaiveRecursion(t *testing.T) {
	wb := mustLoad(t, chainFixture)
	require.NoError(t, wb.Evaluate(context.Background()))
	assert.Equal(t, wb.Size(), wb.EvaluatedCount())

	// An independent evaluator that substitutes every reference by
	// re-evaluating the referenced formula from scratch.
	formulas := map[cellref.Coord][]token.Token{}
	for _, c := range wb.Cells() {
		formulas[c.Coord] = c.Tokens
	}
	var naive func(ctx context.Context, at cellref.Coord) (float64, error)
	naive = func(ctx context.Context, at cellref.Coord) (float64, error) {
		return rpn.Eval(ctx, formulas[at], rpn.ResolverFunc(naive))
	}

	for _, c := range wb.Cells() {
		expected, err := naive(context.Background(), c.Coord)
		require.NoError(t, err)

		got, ok := c.Value()
		require.True(t, ok, "cell %s not evaluated", c.Coord)
		assert.InDelta(t, expected, got, 1e-9, "cell %s", c.Coord)
	}

	expected := map[string]float64{
		"A1": 2, "A2": 6, "A3": 4,
		"B1": 5, "B2": 2.5, "B3": 13.5,
		"C1": 16.5, "C2": 4, "C3": 12.5,
	}
	for ref, want := range expected {
		got, ok := valueAt(t, wb, ref)
		require.True(t, ok)
		assert.InDelta(t, want, got, 1e-9, "cell %s", ref)
	}
}

func TestEvaluate_OnDemandAgreesWithTopological(t *testing.T) {
	ctx := context.Background()
	onDemand := mustLoad(t, chainFixture)
	topo := mustLoad(t, chainFixture)

	// Pull the last cell first so the whole chain is evaluated recursively.
	c1 := cellref.New(2, 0)
	v, err := onDemand.Value(ctx, c1)
	require.NoError(t, err)
	assert.InDelta(t, 16.5, v, 1e-9)

	require.NoError(t, onDemand.Evaluate(ctx))
	require.NoError(t, topo.Evaluate(ctx))
	assert.Equal(t, onDemand.Size(), onDemand.EvaluatedCount())

	for _, c := range topo.Cells() {
		want, _ := c.Value()
		got, ok := onDemand.Cell(c.Coord).Value()
		require.True(t, ok)
		assert.Equal(t, want, got, "cell %s", c.Coord)
	}
}

func TestEvaluate_Idempotent(t *testing.T) {
	ctx := context.Background()
	wb := mustLoad(t, chainFixture)
	require.NoError(t, wb.Evaluate(ctx))

	before := wb.EvaluatedCount()
	first, err := wb.Value(ctx, cellref.New(1, 2))
	require.NoError(t, err)
	second, err := wb.Value(ctx, cellref.New(1, 2))
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, before, wb.EvaluatedCount(), "cached lookups must not re-run the stack machine")

	assert.ErrorIs(t, wb.Evaluate(ctx), ErrAlreadyEvaluated)
}

func TestEvaluate_CycleContainment(t *testing.T) {
	// A2 and A3 form a cycle, B1 hangs off it, everything else is independent.
	wb := mustLoad(t, "3 2\n1\nA3\nA2\nA2 1 +\nA1 ++\nB2 A1 +\n")

	err := wb.Evaluate(context.Background())
	var circErr *CircularDependencyError
	require.True(t, errors.As(err, &circErr))
	assert.Equal(t, []cellref.Coord{cellref.New(0, 1), cellref.New(0, 2), cellref.New(1, 0)}, circErr.Stuck)

	for ref, want := range map[string]float64{"A1": 1, "B2": 2, "B3": 3} {
		got, ok := valueAt(t, wb, ref)
		require.True(t, ok, "cell %s outside the cycle must evaluate", ref)
		assert.Equal(t, want, got)
	}

	assert.True(t, wb.IsReferenced(cellref.New(0, 1)))
	assert.True(t, wb.IsReferenced(cellref.New(0, 2)))
	assert.False(t, wb.IsReferenced(cellref.New(1, 0)), "B1 is stuck but nothing references it")
	assert.Equal(t, []cellref.Coord{cellref.New(0, 2), cellref.New(1, 0)}, wb.Dependents(cellref.New(0, 1)))
}

func TestEvaluate_SelfReference(t *testing.T) {
	wb := mustLoad(t, "1 1\nA1 1 +\n")
	err := wb.Evaluate(context.Background())
	assert.ErrorIs(t, err, ErrCircularDependency)
	assert.True(t, wb.IsCircular())
}

func TestEvaluate_RepeatedReferenceResolves(t *testing.T) {
	wb := mustLoad(t, "2 1\n3\nA1 A1 *\n")
	require.NoError(t, wb.Evaluate(context.Background()))

	v, ok := valueAt(t, wb, "A2")
	require.True(t, ok)
	assert.Equal(t, 9.0, v)
}

func TestEvaluate_DivisionByZeroStopsDownstream(t *testing.T) {
	wb := mustLoad(t, "3 1\n5 0 /\nA1 1 +\nA2 2 *\n")

	err := wb.Evaluate(context.Background())
	require.ErrorIs(t, err, rpn.ErrDivisionByZero)
	assert.ErrorContains(t, err, "evaluating cell A1")

	for _, ref := range []string{"A1", "A2", "A3"} {
		_, ok := valueAt(t, wb, ref)
		assert.False(t, ok, "cell %s must not be evaluated", ref)
	}
}

func TestEvaluate_MalformedExpressionIsFatal(t *testing.T) {
	wb := mustLoad(t, "1 1\n1 2\n")
	err := wb.Evaluate(context.Background())
	assert.ErrorIs(t, err, rpn.ErrMalformedExpression)
	assert.False(t, wb.IsCircular())
}

func TestValue_OnDemandCycleTerminates(t *testing.T) {
	ctx := context.Background()
	wb := mustLoad(t, "2 1\nA2\nA1\n")

	_, err := wb.Value(ctx, cellref.New(0, 0))
	require.ErrorIs(t, err, ErrCircularDependency)

	// A failed lookup leaves the cells schedulable.
	for _, c := range wb.Cells() {
		assert.Equal(t, cell.Unresolved, c.State())
	}
	assert.ErrorIs(t, wb.Evaluate(ctx), ErrCircularDependency)
}

func TestValue_OutOfRange(t *testing.T) {
	wb := mustLoad(t, "1 1\n1\n")
	_, err := wb.Value(context.Background(), cellref.New(3, 3))
	assert.ErrorIs(t, err, ErrRefOutOfRange)
	assert.Nil(t, wb.Cell(cellref.New(3, 3)))
}

func TestEvaluate_EmptyWorkbook(t *testing.T) {
	wb := mustLoad(t, "0 0\n")
	require.NoError(t, wb.Evaluate(context.Background()))
	assert.Zero(t, wb.Size())
	assert.Empty(t, wb.Cells())
}
