package evaluator

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ytsao/Marabou/pkg/ast"
	"go.uber.org/goleak"
)

func TestEvaluateAll(t *testing.T) {
	defer goleak.VerifyNone(t)

	vars := VariableBounds{"x": bounds(1, 4), "y": bounds(-2, 2)}
	exprs := make([]Named, 0, 64)
	for i := range 64 {
		exprs = append(exprs, Named{
			Name: fmt.Sprintf("e%d", i),
			Expr: ast.Add(ast.Mul(ast.Var("x"), ast.Var("y")), ast.Lit(float64(i))),
		})
	}
	for _, parallelism := range []int{0, 1, 4} {
		results, err := EvaluateAll(context.Background(), vars, false, exprs, parallelism)
		require.NoError(t, err)
		require.Len(t, results, len(exprs))
		for i, r := range results {
			assert.Equal(t, fmt.Sprintf("e%d", i), r.Name)
			assert.Equal(t, bounds(-8+float64(i), 8+float64(i)), r.Interval)
		}
	}
}

func TestEvaluateAllFailure(t *testing.T) {
	defer goleak.VerifyNone(t)

	vars := VariableBounds{"x": bounds(1, 4)}
	exprs := []Named{
		{Name: "ok", Expr: ast.ReLU(ast.Var("x"))},
		{Name: "broken", Expr: ast.Add(ast.Var("x"), ast.Var("missing"))},
	}
	results, err := EvaluateAll(context.Background(), vars, false, exprs, 2)
	require.Error(t, err)
	assert.Nil(t, results)
	assert.Equal(t, UndefinedVariable, GetErrorKind(err))
	assert.Contains(t, err.Error(), "failed to evaluate expression 'broken'")
	assert.Contains(t, err.Error(), "missing")
}

func TestEvaluateAllCanceled(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := EvaluateAll(ctx, VariableBounds{}, false, []Named{{Name: "a", Expr: ast.Lit(1)}}, 1)
	require.ErrorIs(t, err, context.Canceled)
}

func TestEvaluateAllEmpty(t *testing.T) {
	results, err := EvaluateAll(context.Background(), nil, false, nil, 0)
	require.NoError(t, err)
	assert.Empty(t, results)
}
