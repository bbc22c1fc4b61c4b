package idalang

import (
	"fmt"
	"strconv"
)

// Node is an AST node. Eval consumes the node against env.
type Node interface {
	Eval(env *Env) (Value, error)
	String() string
}

type NumberNode struct {
	Token Token
}

func (n *NumberNode) String() string {
	return n.Token.Text
}

func (n *NumberNode) Eval(env *Env) (Value, error) {
	switch n.Token.Kind {
	case TokenInt:
		i, err := strconv.ParseInt(n.Token.Text, 10, 64)
		if err != nil {
			return nil, newError(RuntimeError, "Integer literal out of range => %s", n.Token.Text)
		}
		return NewInteger(i), nil
	case TokenFloat:
		f, err := strconv.ParseFloat(n.Token.Text, 64)
		if err != nil {
			return nil, newError(RuntimeError, "Float literal out of range => %s", n.Token.Text)
		}
		return NewFloat(f), nil
	}
	return nil, newError(RuntimeError, "Not a number => %s", n.Token)
}

type UnaryNode struct {
	Op      Token
	Operand Node
}

func (n *UnaryNode) String() string {
	return fmt.Sprintf("(%s, %s)", n.Op, n.Operand)
}

func (n *UnaryNode) Eval(env *Env) (Value, error) {
	operand, err := n.Operand.Eval(env)
	if err != nil {
		return nil, err
	}
	switch {
	case n.Op.Is(TokenKeyword, KeywordNot):
		return NewBoolean(!Truthy(operand)), nil
	case n.Op.Kind == TokenSub:
		return Arith(TokenMul, operand, NewInteger(-1))
	case n.Op.Kind == TokenAdd:
		return operand, nil
	}
	return nil, newError(RuntimeError, "Not a unary operator => %s", n.Op)
}

type BinaryNode struct {
	Left  Node
	Op    Token
	Right Node
}

func (n *BinaryNode) String() string {
	return fmt.Sprintf("(%s, %s, %s)", n.Left, n.Op, n.Right)
}

func (n *BinaryNode) Eval(env *Env) (Value, error) {
	// both sides are always evaluated, and and or do not short-circuit
	left, err := n.Left.Eval(env)
	if err != nil {
		return nil, err
	}
	right, err := n.Right.Eval(env)
	if err != nil {
		return nil, err
	}

	switch n.Op.Kind {
	case TokenAdd, TokenSub, TokenMul, TokenDiv, TokenMod:
		return Arith(n.Op.Kind, left, right)
	case TokenEquals, TokenNotEquals, TokenLessThan, TokenLessOrEq, TokenGreaterThan, TokenGreaterOrEq:
		ok, err := Compare(n.Op.Kind, left, right)
		if err != nil {
			return nil, err
		}
		return NewBoolean(ok), nil
	case TokenKeyword:
		switch n.Op.Text {
		case KeywordAnd:
			return NewBoolean(Truthy(left) && Truthy(right)), nil
		case KeywordOr:
			return NewBoolean(Truthy(left) || Truthy(right)), nil
		}
	}
	return nil, newError(RuntimeError, "Not a binary operator => %s", n.Op)
}

type AccessNode struct {
	Name string
}

func (n *AccessNode) String() string {
	return n.Name
}

func (n *AccessNode) Eval(env *Env) (Value, error) {
	return env.Access(n.Name)
}

type AssignNode struct {
	Name  string
	Value Node
}

func (n *AssignNode) String() string {
	return fmt.Sprintf("(%s = %s)", n.Name, n.Value)
}

func (n *AssignNode) Eval(env *Env) (Value, error) {
	value, err := n.Value.Eval(env)
	if err != nil {
		return nil, err
	}
	if err := env.Assign(n.Name, value); err != nil {
		return nil, err
	}
	return value, nil
}

type DeclareNode struct {
	Name string
}

func (n *DeclareNode) String() string {
	return fmt.Sprintf("(let %s)", n.Name)
}

func (n *DeclareNode) Eval(env *Env) (Value, error) {
	if err := env.Declare(n.Name); err != nil {
		return nil, err
	}
	return env.Access(n.Name)
}

type DeclareAssignNode struct {
	Name  string
	Value Node
}

func (n *DeclareAssignNode) String() string {
	return fmt.Sprintf("(let %s = %s)", n.Name, n.Value)
}

func (n *DeclareAssignNode) Eval(env *Env) (Value, error) {
	// declared before the initializer runs, so the initializer sees null
	if err := env.Declare(n.Name); err != nil {
		return nil, err
	}
	value, err := n.Value.Eval(env)
	if err != nil {
		return nil, err
	}
	if err := env.Assign(n.Name, value); err != nil {
		return nil, err
	}
	return value, nil
}
