package ast

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/stoewer/go-strcase"
)

type BinaryOp uint8

const (
	OpAdd BinaryOp = iota + 1
	OpSubtract
	OpMultiply
)

type UnaryOp uint8

const (
	OpNegate UnaryOp = iota + 1
	OpAbs
	OpReLU
)

func (op BinaryOp) Valid() bool {
	return op >= OpAdd && op <= OpMultiply
}

// Symbol returns the infix symbol of the operator.
func (op BinaryOp) Symbol() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "*"
	default:
		return op.String()
	}
}

func (op BinaryOp) String() string {
	switch op {
	case OpAdd:
		return "add"
	case OpSubtract:
		return "sub"
	case OpMultiply:
		return "mul"
	default:
		return fmt.Sprintf("BinaryOp(%d)", uint8(op))
	}
}

func (op UnaryOp) Valid() bool {
	return op >= OpNegate && op <= OpReLU
}

// Title returns the name used by the indented tree dump.
func (op UnaryOp) Title() string {
	switch op {
	case OpNegate:
		return "negate"
	case OpAbs:
		return "abs"
	case OpReLU:
		return "ReLU"
	default:
		return op.String()
	}
}

func (op UnaryOp) String() string {
	switch op {
	case OpNegate:
		return "neg"
	case OpAbs:
		return "abs"
	case OpReLU:
		return "relu"
	default:
		return fmt.Sprintf("UnaryOp(%d)", uint8(op))
	}
}

// Operator names are matched after conversion to snake case, so "ReLU", "RELU" and "relu"
// all resolve to the same operator.
var (
	binaryOpNames = map[string]BinaryOp{
		"add":      OpAdd,
		"plus":     OpAdd,
		"sub":      OpSubtract,
		"subtract": OpSubtract,
		"minus":    OpSubtract,
		"mul":      OpMultiply,
		"multiply": OpMultiply,
		"times":    OpMultiply,
	}
	unaryOpNames = map[string]UnaryOp{
		"neg":    OpNegate,
		"negate": OpNegate,
		"abs":    OpAbs,
		"relu":   OpReLU,
		"re_lu":  OpReLU,
	}
)

func normalizeOpName(name string) string {
	return strcase.SnakeCase(name)
}

func ParseBinaryOp(name string) (BinaryOp, error) {
	if op, ok := binaryOpNames[normalizeOpName(name)]; ok {
		return op, nil
	}
	return 0, errors.Errorf("unknown binary operator '%s'", name)
}

func ParseUnaryOp(name string) (UnaryOp, error) {
	if op, ok := unaryOpNames[normalizeOpName(name)]; ok {
		return op, nil
	}
	return 0, errors.Errorf("unknown unary operator '%s'", name)
}
