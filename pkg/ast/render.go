package ast

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

const indentStep = 2

// Render writes an indented, human readable dump of the tree to w. The format is meant for
// debugging and log inspection only.
func Render(w io.Writer, n Node, indent int) error {
	s := &strings.Builder{}
	dump(s, n, indent)
	_, err := io.WriteString(w, s.String())
	return err
}

// Dump returns the same text as Render with zero indentation.
func Dump(n Node) string {
	s := &strings.Builder{}
	dump(s, n, 0)
	return s.String()
}

func dump(s *strings.Builder, n Node, indent int) {
	s.WriteString(strings.Repeat(" ", indent))
	switch n := n.(type) {
	case *LiteralNode:
		s.WriteString("Literal: ")
		s.WriteString(formatFloat(n.Value))
		s.WriteString("\n")
	case *VariableNode:
		s.WriteString("Variable: ")
		s.WriteString(n.Name)
		s.WriteString("\n")
	case *BinaryOperationNode:
		s.WriteString("Binary Operation: ")
		s.WriteString(n.Op.Symbol())
		s.WriteString("\n")
		dump(s, n.Left, indent+indentStep)
		dump(s, n.Right, indent+indentStep)
	case *UnaryOperationNode:
		if n.Op.Valid() {
			s.WriteString("Operation: ")
			s.WriteString(n.Op.Title())
		} else {
			s.WriteString("Unknown operation")
		}
		s.WriteString("\n")
		dump(s, n.Operand, indent+indentStep)
	case nil:
		s.WriteString("<nil>\n")
	default:
		s.WriteString(fmt.Sprintf("<%T>\n", n))
	}
}

// Infix renders the tree on a single line, e.g. "((x + 2) * -1)".
func Infix(n Node) string {
	s := &strings.Builder{}
	infix(s, n)
	return s.String()
}

func infix(s *strings.Builder, n Node) {
	switch n := n.(type) {
	case *LiteralNode:
		s.WriteString(formatFloat(n.Value))
	case *VariableNode:
		s.WriteString(n.Name)
	case *BinaryOperationNode:
		s.WriteString("(")
		infix(s, n.Left)
		s.WriteString(fmt.Sprintf(" %s ", n.Op.Symbol()))
		infix(s, n.Right)
		s.WriteString(")")
	case *UnaryOperationNode:
		s.WriteString(n.Op.String())
		s.WriteString("(")
		infix(s, n.Operand)
		s.WriteString(")")
	case nil:
		s.WriteString("<nil>")
	default:
		s.WriteString(fmt.Sprintf("<%T>", n))
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
