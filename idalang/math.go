package idalang

import "math"

var arithSymbols = map[TokenKind]string{
	TokenAdd: "+",
	TokenSub: "-",
	TokenMul: "*",
	TokenDiv: "/",
	TokenMod: "%",
}

// Arith applies one of + - * / % to a pair of values.
// Integer pairs stay Integer, any pairing involving a Float becomes Float.
func Arith(op TokenKind, a, b Value) (Value, error) {
	if _, ok := arithSymbols[op]; !ok {
		return nil, newError(RuntimeError, "Not an arithmetic operator => %s", op)
	}

	switch x := a.(type) {
	case Integer:
		switch y := b.(type) {
		case Integer:
			return intArith(op, x.Val, y.Val)
		case Float:
			return floatArith(op, float64(x.Val), y.Val), nil
		}
	case Float:
		switch y := b.(type) {
		case Integer:
			return floatArith(op, x.Val, float64(y.Val)), nil
		case Float:
			return floatArith(op, x.Val, y.Val), nil
		}
	}

	return nil, newError(RuntimeError, "Not implemented => %s %s %s", a.Type(), arithSymbols[op], b.Type())
}

func intArith(op TokenKind, a, b int64) (Value, error) {
	switch op {
	case TokenAdd:
		return NewInteger(a + b), nil
	case TokenSub:
		return NewInteger(a - b), nil
	case TokenMul:
		return NewInteger(a * b), nil
	case TokenDiv:
		if b == 0 {
			return nil, newError(DivisionByZero, "Integer division by zero => %d / 0", a)
		}
		return NewInteger(a / b), nil
	case TokenMod:
		if b == 0 {
			return nil, newError(DivisionByZero, "Integer modulo by zero => %d %% 0", a)
		}
		return NewInteger(a % b), nil
	}
	panic("unreachable")
}

func floatArith(op TokenKind, a, b float64) Value {
	switch op {
	case TokenAdd:
		return NewFloat(a + b)
	case TokenSub:
		return NewFloat(a - b)
	case TokenMul:
		return NewFloat(a * b)
	case TokenDiv:
		return NewFloat(a / b)
	case TokenMod:
		return NewFloat(math.Mod(a, b))
	}
	panic("unreachable")
}
