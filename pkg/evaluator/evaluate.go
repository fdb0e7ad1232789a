package evaluator

import (
	"math"

	"github.com/ytsao/Marabou/pkg/ast"
	"github.com/ytsao/Marabou/pkg/interval"
)

// Eval computes a sound enclosure of the tree's value, resolving variables through s.
// It has no side effects; any failure aborts the whole evaluation.
func Eval(node ast.Node, s Scope) (interval.Interval, error) {
	switch n := node.(type) {
	case *ast.LiteralNode:
		if math.IsNaN(n.Value) {
			return interval.Interval{}, InvalidLiteral.New("literal is NaN")
		}
		return interval.Point(n.Value), nil

	case *ast.VariableNode:
		if s == nil {
			return interval.Interval{}, NoContextBound.Errorf("no variables provided to resolve '%s'", n.Name)
		}
		return s.VariableValue(n.Name)

	case *ast.BinaryOperationNode:
		if !n.Op.Valid() {
			return interval.Interval{}, UnsupportedOperator.Errorf("unsupported binary operator %s", n.Op)
		}
		l, err := Eval(n.Left, s)
		if err != nil {
			return interval.Interval{}, errorPush(err, "left operand of '%s'", n.Op)
		}
		r, err := Eval(n.Right, s)
		if err != nil {
			return interval.Interval{}, errorPush(err, "right operand of '%s'", n.Op)
		}
		switch n.Op {
		case ast.OpAdd:
			return l.Add(r), nil
		case ast.OpSubtract:
			return l.Sub(r), nil
		case ast.OpMultiply:
			return l.Mul(r), nil
		}

	case *ast.UnaryOperationNode:
		if !n.Op.Valid() {
			return interval.Interval{}, UnsupportedOperator.Errorf("unsupported unary operator %s", n.Op)
		}
		v, err := Eval(n.Operand, s)
		if err != nil {
			return interval.Interval{}, errorPush(err, "operand of '%s'", n.Op)
		}
		switch n.Op {
		case ast.OpNegate:
			return v.Neg(), nil
		case ast.OpAbs:
			return v.Abs(), nil
		case ast.OpReLU:
			return v.ReLU(), nil
		}

	case nil:
		return interval.Interval{}, MalformedTree.New("missing node")
	}
	return interval.Interval{}, MalformedTree.Errorf("unsupported type of node '%T'", node)
}
