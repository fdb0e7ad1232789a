package ast

import (
	"github.com/fxamacker/cbor/v2"
	"github.com/pkg/errors"
)

// Encoded is the structural wire form of a tree. Exactly one of Lit, Var or Op is set.
// Operation nodes carry one argument for unary operators and two for binary ones.
//
//	{lit: 2}
//	{var: x}
//	{op: add, args: [{var: x}, {lit: 2}]}
type Encoded struct {
	Lit  *float64   `yaml:"lit,omitempty" cbor:"1,keyasint,omitempty"`
	Var  string     `yaml:"var,omitempty" cbor:"2,keyasint,omitempty"`
	Op   string     `yaml:"op,omitempty" cbor:"3,keyasint,omitempty"`
	Args []*Encoded `yaml:"args,omitempty" cbor:"4,keyasint,omitempty"`
}

const maxCBORNesting = 4096

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	decMode, err = cbor.DecOptions{MaxNestedLevels: maxCBORNesting}.DecMode()
	if err != nil {
		panic(err)
	}
}

// Encode converts a tree into its wire form.
func Encode(n Node) (*Encoded, error) {
	switch n := n.(type) {
	case *LiteralNode:
		v := n.Value
		return &Encoded{Lit: &v}, nil
	case *VariableNode:
		return &Encoded{Var: n.Name}, nil
	case *BinaryOperationNode:
		if !n.Op.Valid() {
			return nil, errors.Errorf("unsupported binary operator %s", n.Op)
		}
		l, err := Encode(n.Left)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to encode left operand of '%s'", n.Op)
		}
		r, err := Encode(n.Right)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to encode right operand of '%s'", n.Op)
		}
		return &Encoded{Op: n.Op.String(), Args: []*Encoded{l, r}}, nil
	case *UnaryOperationNode:
		if !n.Op.Valid() {
			return nil, errors.Errorf("unsupported unary operator %s", n.Op)
		}
		o, err := Encode(n.Operand)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to encode operand of '%s'", n.Op)
		}
		return &Encoded{Op: n.Op.String(), Args: []*Encoded{o}}, nil
	default:
		return nil, errors.Errorf("unsupported type of node '%T'", n)
	}
}

// Decode builds a fresh tree from its wire form.
func Decode(e *Encoded) (Node, error) {
	if e == nil {
		return nil, errors.New("empty node")
	}
	shapes := 0
	if e.Lit != nil {
		shapes++
	}
	if e.Var != "" {
		shapes++
	}
	if e.Op != "" {
		shapes++
	}
	if shapes != 1 {
		return nil, errors.New("node must have exactly one of 'lit', 'var' or 'op'")
	}
	switch {
	case e.Lit != nil:
		if len(e.Args) != 0 {
			return nil, errors.New("literal node has arguments")
		}
		return NewLiteralNode(*e.Lit), nil
	case e.Var != "":
		if len(e.Args) != 0 {
			return nil, errors.Errorf("variable node '%s' has arguments", e.Var)
		}
		return NewVariableNode(e.Var), nil
	}
	if op, err := ParseBinaryOp(e.Op); err == nil {
		if l := len(e.Args); l != 2 {
			return nil, errors.Errorf("invalid arguments count %d for binary operator '%s'", l, e.Op)
		}
		left, err := Decode(e.Args[0])
		if err != nil {
			return nil, errors.Wrapf(err, "failed to decode left operand of '%s'", e.Op)
		}
		right, err := Decode(e.Args[1])
		if err != nil {
			return nil, errors.Wrapf(err, "failed to decode right operand of '%s'", e.Op)
		}
		return NewBinaryOperationNode(op, left, right), nil
	}
	op, err := ParseUnaryOp(e.Op)
	if err != nil {
		return nil, errors.Errorf("unknown operator '%s'", e.Op)
	}
	if l := len(e.Args); l != 1 {
		return nil, errors.Errorf("invalid arguments count %d for unary operator '%s'", l, e.Op)
	}
	operand, err := Decode(e.Args[0])
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode operand of '%s'", e.Op)
	}
	return NewUnaryOperationNode(op, operand), nil
}

// MarshalCBOR serializes a tree in deterministic CBOR.
func MarshalCBOR(n Node) ([]byte, error) {
	e, err := Encode(n)
	if err != nil {
		return nil, err
	}
	b, err := encMode.Marshal(e)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal tree")
	}
	return b, nil
}

func UnmarshalCBOR(data []byte) (Node, error) {
	e := new(Encoded)
	if err := decMode.Unmarshal(data, e); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal tree")
	}
	return Decode(e)
}
