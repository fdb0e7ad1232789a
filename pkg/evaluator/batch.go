package evaluator

import (
	"context"

	"github.com/pkg/errors"
	"github.com/ytsao/Marabou/pkg/ast"
	"github.com/ytsao/Marabou/pkg/interval"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Named struct {
	Name string
	Expr ast.Node
}

type Result struct {
	Name     string
	Interval interval.Interval
}

// EvaluateAll evaluates independent trees concurrently against the same bindings, running at
// most parallelism evaluations at once (no limit if parallelism <= 0). Each tree gets its own
// Evaluator. The first failure cancels the remaining evaluations. Results keep the order of
// exprs.
func EvaluateAll(ctx context.Context, vars Bindings, lastLayer bool, exprs []Named, parallelism int) ([]Result, error) {
	results := make([]Result, len(exprs))
	g, ctx := errgroup.WithContext(ctx)
	if parallelism > 0 {
		g.SetLimit(parallelism)
	}
	for i, ne := range exprs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := New(vars, lastLayer).Evaluate(ne.Expr)
			if err != nil {
				return errors.Wrapf(err, "failed to evaluate expression '%s'", ne.Name)
			}
			results[i] = Result{Name: ne.Name, Interval: r}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	zap.S().Named(loggerName).Debugf("Evaluated %d expressions", len(exprs))
	return results, nil
}
