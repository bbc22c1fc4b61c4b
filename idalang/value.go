package idalang

import (
	"math"
	"strconv"
	"sync/atomic"
)

// Value is one of Integer, Float, Boolean or Null.
type Value interface {
	Type() string
	String() string
	// ID is a diagnostic construction counter, never used for equality
	ID() uint64
	isValue()
}

var valueCounter atomic.Uint64

func nextValueID() uint64 {
	return valueCounter.Add(1)
}

type Integer struct {
	id  uint64
	Val int64
}

func NewInteger(v int64) Integer {
	return Integer{id: nextValueID(), Val: v}
}

func (Integer) Type() string { return "int" }

func (i Integer) ID() uint64 { return i.id }

func (i Integer) String() string {
	return strconv.FormatInt(i.Val, 10)
}

func (Integer) isValue() {}

type Float struct {
	id  uint64
	Val float64
}

func NewFloat(v float64) Float {
	return Float{id: nextValueID(), Val: v}
}

func (Float) Type() string { return "float" }

func (f Float) ID() uint64 { return f.id }

func (f Float) String() string {
	v := f.Val
	switch {
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case math.IsNaN(v):
		return "NaN"
	}
	if abs := math.Abs(v); abs >= 1e21 || abs != 0 && abs < 1e-6 {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func (Float) isValue() {}

type Boolean struct {
	id  uint64
	Val bool
}

func NewBoolean(v bool) Boolean {
	return Boolean{id: nextValueID(), Val: v}
}

func (Boolean) Type() string { return "bool" }

func (b Boolean) ID() uint64 { return b.id }

func (b Boolean) String() string {
	return strconv.FormatBool(b.Val)
}

func (Boolean) isValue() {}

type Null struct {
	id uint64
}

func NewNull() Null {
	return Null{id: nextValueID()}
}

func (Null) Type() string { return "null" }

func (n Null) ID() uint64 { return n.id }

func (Null) String() string { return "null" }

func (Null) isValue() {}

// Truthy converts any value to a bool for not, and and or.
func Truthy(v Value) bool {
	switch v := v.(type) {
	case Integer:
		return v.Val != 0
	case Float:
		return v.Val != 0
	case Boolean:
		return v.Val
	case Null:
		return false
	}
	panic(unknownValue(v))
}

func unknownValue(v Value) error {
	return newError(RuntimeError, "unknown value variant %T", v)
}
