package idalang

var comparisonSymbols = map[TokenKind]string{
	TokenEquals:      "==",
	TokenNotEquals:   "!=",
	TokenLessThan:    "<",
	TokenLessOrEq:    "<=",
	TokenGreaterThan: ">",
	TokenGreaterOrEq: ">=",
}

// Equal reports whether a and b are the same variant holding the same value.
// Integer(1) and Float(1) are not equal.
func Equal(a, b Value) bool {
	switch x := a.(type) {
	case Integer:
		y, ok := b.(Integer)
		return ok && x.Val == y.Val
	case Float:
		y, ok := b.(Float)
		return ok && x.Val == y.Val
	case Boolean:
		y, ok := b.(Boolean)
		return ok && x.Val == y.Val
	case Null:
		_, ok := b.(Null)
		return ok
	}
	panic(unknownValue(a))
}

// Compare evaluates one of == != < <= > >=.
func Compare(op TokenKind, a, b Value) (bool, error) {
	switch op {
	case TokenEquals:
		return Equal(a, b), nil
	case TokenNotEquals:
		return !Equal(a, b), nil
	case TokenLessThan, TokenLessOrEq, TokenGreaterThan, TokenGreaterOrEq:
	default:
		return false, newError(RuntimeError, "Not a comparison operator => %s", op)
	}

	if x, ok := a.(Integer); ok {
		if y, ok := b.(Integer); ok {
			return order(op, x.Val, y.Val), nil
		}
	}
	x, okA := asFloat(a)
	y, okB := asFloat(b)
	if !okA || !okB {
		return false, newError(RuntimeError, "Not comparable => %s %s %s", a.Type(), comparisonSymbols[op], b.Type())
	}
	return order(op, x, y), nil
}

func order[T int64 | float64](op TokenKind, a, b T) bool {
	switch op {
	case TokenLessThan:
		return a < b
	case TokenLessOrEq:
		return a <= b
	case TokenGreaterThan:
		return a > b
	case TokenGreaterOrEq:
		return a >= b
	}
	return false
}

func asFloat(v Value) (float64, bool) {
	switch v := v.(type) {
	case Float:
		return v.Val, true
	case Integer:
		return float64(v.Val), true
	}
	return 0, false
}
