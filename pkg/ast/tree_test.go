package ast

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lines(ss ...string) string {
	var s strings.Builder
	for _, v := range ss {
		s.WriteString(v)
		s.WriteString("\n")
	}
	return s.String()
}

func sampleTree() Node {
	return Mul(Add(Var("x"), Lit(2)), ReLU(Neg(Lit(-1))))
}

func TestCloneIsDeep(t *testing.T) {
	orig := Add(Var("x"), Abs(Lit(3)))
	c, ok := orig.Clone().(*BinaryOperationNode)
	require.True(t, ok)
	require.Equal(t, orig, c)

	c.Left.(*VariableNode).Name = "y"
	c.Right.(*UnaryOperationNode).Operand.(*LiteralNode).Value = 4
	assert.Equal(t, "x", orig.Left.(*VariableNode).Name)
	assert.Equal(t, 3.0, orig.Right.(*UnaryOperationNode).Operand.(*LiteralNode).Value)
}

func TestDump(t *testing.T) {
	require.Equal(t,
		lines(
			"Binary Operation: *",
			"  Binary Operation: +",
			"    Variable: x",
			"    Literal: 2",
			"  Operation: ReLU",
			"    Operation: negate",
			"      Literal: -1",
		),
		Dump(sampleTree()),
	)
}

func TestRenderIndent(t *testing.T) {
	buf := new(bytes.Buffer)
	require.NoError(t, Render(buf, Abs(Sub(Var("a"), Lit(0.5))), 4))
	require.Equal(t,
		lines(
			"    Operation: abs",
			"      Binary Operation: -",
			"        Variable: a",
			"        Literal: 0.5",
		),
		buf.String(),
	)
}

func TestDumpUnknownOperator(t *testing.T) {
	n := NewUnaryOperationNode(UnaryOp(42), Lit(1))
	assert.Equal(t, lines("Unknown operation", "  Literal: 1"), Dump(n))
	b := NewBinaryOperationNode(BinaryOp(7), Lit(1), nil)
	assert.Equal(t, lines("Binary Operation: BinaryOp(7)", "  Literal: 1", "  <nil>"), Dump(b))
}

func TestInfix(t *testing.T) {
	assert.Equal(t, "((x + 2) * relu(neg(-1)))", Infix(sampleTree()))
	assert.Equal(t, "abs((y - 1e+21))", Infix(Abs(Sub(Var("y"), Lit(1e21)))))
}

func TestParseOperators(t *testing.T) {
	for i, tc := range []struct {
		name string
		op   BinaryOp
	}{
		{"add", OpAdd},
		{"ADD", OpAdd},
		{"Subtract", OpSubtract},
		{"sub", OpSubtract},
		{"MULTIPLY", OpMultiply},
		{"mul", OpMultiply},
	} {
		op, err := ParseBinaryOp(tc.name)
		require.NoError(t, err, i)
		assert.Equal(t, tc.op, op, i)
	}
	for i, tc := range []struct {
		name string
		op   UnaryOp
	}{
		{"neg", OpNegate},
		{"NEGATE", OpNegate},
		{"abs", OpAbs},
		{"ReLU", OpReLU},
		{"RELU", OpReLU},
		{"relu", OpReLU},
	} {
		op, err := ParseUnaryOp(tc.name)
		require.NoError(t, err, i)
		assert.Equal(t, tc.op, op, i)
	}
	_, err := ParseBinaryOp("div")
	require.EqualError(t, err, "unknown binary operator 'div'")
	_, err = ParseUnaryOp("sigmoid")
	require.EqualError(t, err, "unknown unary operator 'sigmoid'")
}

func TestOperatorValidity(t *testing.T) {
	assert.False(t, BinaryOp(0).Valid())
	assert.False(t, BinaryOp(4).Valid())
	assert.True(t, OpMultiply.Valid())
	assert.False(t, UnaryOp(0).Valid())
	assert.True(t, OpReLU.Valid())
	assert.Equal(t, "UnaryOp(9)", UnaryOp(9).String())
}

func TestCBORRoundTrip(t *testing.T) {
	tree := sampleTree()
	b, err := MarshalCBOR(tree)
	require.NoError(t, err)
	decoded, err := UnmarshalCBOR(b)
	require.NoError(t, err)
	assert.Equal(t, tree, decoded)
}

func TestCBORDeepTree(t *testing.T) {
	var n Node = Var("x")
	for range 500 {
		n = Add(n, Lit(1))
	}
	b, err := MarshalCBOR(n)
	require.NoError(t, err)
	decoded, err := UnmarshalCBOR(b)
	require.NoError(t, err)
	assert.Equal(t, n, decoded)
}

func TestEncodeRejectsInvalidTrees(t *testing.T) {
	_, err := Encode(NewBinaryOperationNode(BinaryOp(9), Lit(1), Lit(2)))
	require.Error(t, err)
	_, err = Encode(Add(Lit(1), nil))
	require.Error(t, err)
	_, err = MarshalCBOR(Neg(NewUnaryOperationNode(UnaryOp(0), Lit(1))))
	require.Error(t, err)
}

func float(v float64) *float64 {
	return &v
}

func TestDecodeValidation(t *testing.T) {
	for i, tc := range []struct {
		enc *Encoded
		err string
	}{
		{nil, "empty node"},
		{&Encoded{}, "node must have exactly one of 'lit', 'var' or 'op'"},
		{&Encoded{Lit: float(1), Var: "x"}, "node must have exactly one of 'lit', 'var' or 'op'"},
		{&Encoded{Lit: float(1), Args: []*Encoded{{Var: "x"}}}, "literal node has arguments"},
		{&Encoded{Op: "div", Args: []*Encoded{{Var: "x"}, {Var: "y"}}}, "unknown operator 'div'"},
		{&Encoded{Op: "add", Args: []*Encoded{{Var: "x"}}}, "invalid arguments count 1 for binary operator 'add'"},
		{&Encoded{Op: "relu"}, "invalid arguments count 0 for unary operator 'relu'"},
		{&Encoded{Op: "mul", Args: []*Encoded{{Var: "x"}, {}}},
			"failed to decode right operand of 'mul': node must have exactly one of 'lit', 'var' or 'op'"},
	} {
		_, err := Decode(tc.enc)
		require.EqualError(t, err, tc.err, i)
	}
}

func TestDecodeKeepsSpecialLiterals(t *testing.T) {
	n, err := Decode(&Encoded{Lit: float(math.Inf(-1))})
	require.NoError(t, err)
	assert.Equal(t, Lit(math.Inf(-1)), n)
}
