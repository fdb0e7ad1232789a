// Package ast defines expression trees evaluated by the interval evaluator.
//
// The set of node types is closed: Node can only be implemented inside this package. Every
// non-leaf node exclusively owns its children, so a tree never shares a node between two
// parents and never contains cycles.
package ast

type Node interface {
	node()
	Clone() Node
}

type LiteralNode struct {
	Value float64
}

func (*LiteralNode) node() {}

func (n *LiteralNode) Clone() Node {
	return &LiteralNode{Value: n.Value}
}

func NewLiteralNode(v float64) *LiteralNode {
	return &LiteralNode{Value: v}
}

// VariableNode is resolved through the evaluation scope at evaluation time, so the same tree
// can be evaluated under different bindings.
type VariableNode struct {
	Name string
}

func (*VariableNode) node() {}

func (n *VariableNode) Clone() Node {
	return &VariableNode{Name: n.Name}
}

func NewVariableNode(name string) *VariableNode {
	return &VariableNode{Name: name}
}

type BinaryOperationNode struct {
	Op    BinaryOp
	Left  Node
	Right Node
}

func (*BinaryOperationNode) node() {}

func (n *BinaryOperationNode) Clone() Node {
	return &BinaryOperationNode{
		Op:    n.Op,
		Left:  clone(n.Left),
		Right: clone(n.Right),
	}
}

// NewBinaryOperationNode takes ownership of left and right.
func NewBinaryOperationNode(op BinaryOp, left, right Node) *BinaryOperationNode {
	return &BinaryOperationNode{
		Op:    op,
		Left:  left,
		Right: right,
	}
}

type UnaryOperationNode struct {
	Op      UnaryOp
	Operand Node
}

func (*UnaryOperationNode) node() {}

func (n *UnaryOperationNode) Clone() Node {
	return &UnaryOperationNode{
		Op:      n.Op,
		Operand: clone(n.Operand),
	}
}

// NewUnaryOperationNode takes ownership of operand.
func NewUnaryOperationNode(op UnaryOp, operand Node) *UnaryOperationNode {
	return &UnaryOperationNode{
		Op:      op,
		Operand: operand,
	}
}

func clone(n Node) Node {
	if n == nil {
		return n
	}
	return n.Clone()
}

// Shortcuts for building trees in code.

func Lit(v float64) *LiteralNode {
	return NewLiteralNode(v)
}

func Var(name string) *VariableNode {
	return NewVariableNode(name)
}

func Add(left, right Node) *BinaryOperationNode {
	return NewBinaryOperationNode(OpAdd, left, right)
}

func Sub(left, right Node) *BinaryOperationNode {
	return NewBinaryOperationNode(OpSubtract, left, right)
}

func Mul(left, right Node) *BinaryOperationNode {
	return NewBinaryOperationNode(OpMultiply, left, right)
}

func Neg(operand Node) *UnaryOperationNode {
	return NewUnaryOperationNode(OpNegate, operand)
}

func Abs(operand Node) *UnaryOperationNode {
	return NewUnaryOperationNode(OpAbs, operand)
}

func ReLU(operand Node) *UnaryOperationNode {
	return NewUnaryOperationNode(OpReLU, operand)
}
