// Package evaluator computes sound interval enclosures of expression trees.
package evaluator

import (
	"fmt"
	"io"

	"github.com/ytsao/Marabou/pkg/ast"
	"github.com/ytsao/Marabou/pkg/interval"
	"go.uber.org/zap"
)

// loggerName names the logger the package writes to.
const loggerName = "evaluator"

// Evaluator binds variable names to intervals and keeps the last computed result.
// It is not safe for concurrent use; evaluate independent trees with separate evaluators.
type Evaluator struct {
	vars      Bindings
	lastLayer bool
	result    interval.Interval
	hasResult bool
}

// NewUnbound creates an evaluator without variables. Any variable lookup fails with
// NoContextBound.
func NewUnbound() *Evaluator {
	return &Evaluator{}
}

// New creates an evaluator over the given bindings. The bindings are borrowed and must stay
// unchanged while evaluations are running. A nil vars, including a nil VariableBounds map,
// is the same as NewUnbound.
func New(vars Bindings, lastLayer bool) *Evaluator {
	if vb, ok := vars.(VariableBounds); ok && vb == nil {
		vars = nil
	}
	return &Evaluator{vars: vars, lastLayer: lastLayer}
}

// IsLastLayer reports the flag the evaluator was created with. Evaluation does not depend on it.
func (e *Evaluator) IsLastLayer() bool {
	return e.lastLayer
}

func (e *Evaluator) VariableValue(name string) (interval.Interval, error) {
	if e.vars == nil {
		return interval.Interval{}, NoContextBound.Errorf("no variables provided to evaluator, failed to resolve '%s'", name)
	}
	v, ok := e.vars.Lookup(name)
	if !ok {
		return interval.Interval{}, UndefinedVariable.Errorf("variable not found: %s", name)
	}
	return v, nil
}

// Evaluate computes the enclosure of root, stores it as the last result and returns it.
// On failure no result is stored.
func (e *Evaluator) Evaluate(root ast.Node) (interval.Interval, error) {
	e.result, e.hasResult = interval.Interval{}, false
	r, err := Eval(root, e)
	if err != nil {
		if ce := zap.L().Named(loggerName).Check(zap.DebugLevel, "Evaluation failed"); ce != nil {
			ce.Write(
				zap.String("expression", ast.Infix(root)),
				zap.Stringer("kind", GetErrorKind(err)),
				zap.Strings("path", ErrorPath(err)),
				zap.Error(err),
			)
		}
		return interval.Interval{}, err
	}
	e.result, e.hasResult = r, true
	return r, nil
}

// Result returns the last successfully computed interval.
func (e *Evaluator) Result() (interval.Interval, bool) {
	return e.result, e.hasResult
}

// PrintResult writes the last result as "Result: [lb, ub]".
func (e *Evaluator) PrintResult(w io.Writer) error {
	if !e.hasResult {
		return NoResult.New("no result to print, evaluate an expression first")
	}
	_, err := fmt.Fprintf(w, "Result: %s\n", e.result)
	return err
}
