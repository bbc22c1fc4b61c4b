package idalang

import (
	"errors"
	"math"
	"testing"
)

func TestValueString(t *testing.T) {
	tests := []struct {
		value    Value
		expected string
	}{
		{NewInteger(42), "42"},
		{NewInteger(-15), "-15"},
		{NewFloat(2.5), "2.5"},
		{NewFloat(6), "6"},
		{NewFloat(1.0 / 3), "0.3333333333333333"},
		{NewFloat(1e21), "1e+21"},
		{NewFloat(math.Inf(1)), "Infinity"},
		{NewFloat(math.Inf(-1)), "-Infinity"},
		{NewFloat(math.NaN()), "NaN"},
		{NewBoolean(true), "true"},
		{NewBoolean(false), "false"},
		{NewNull(), "null"},
	}
	for _, test := range tests {
		if got := test.value.String(); got != test.expected {
			t.Fatalf("expected %s, got %s", test.expected, got)
		}
	}
}

func TestValueID(t *testing.T) {
	a := NewInteger(1)
	b := NewInteger(1)
	c := NewNull()
	if !(a.ID() < b.ID() && b.ID() < c.ID()) {
		t.Fatalf("got %d %d %d", a.ID(), b.ID(), c.ID())
	}
	if !Equal(a, b) {
		t.Fatal("id must not affect equality")
	}
}

func TestArith(t *testing.T) {
	tests := []struct {
		op       TokenKind
		a, b     Value
		expected Value
	}{
		{TokenAdd, NewInteger(3), NewInteger(3), NewInteger(6)},
		{TokenSub, NewInteger(5), NewInteger(20), NewInteger(-15)},
		{TokenMul, NewInteger(3), NewInteger(4), NewInteger(12)},
		{TokenDiv, NewInteger(21), NewInteger(5), NewInteger(4)},
		{TokenDiv, NewInteger(-21), NewInteger(5), NewInteger(-4)},
		{TokenMod, NewInteger(21), NewInteger(5), NewInteger(1)},
		{TokenMod, NewInteger(-21), NewInteger(5), NewInteger(-1)},
		{TokenAdd, NewInteger(1), NewFloat(0.5), NewFloat(1.5)},
		{TokenAdd, NewFloat(0.5), NewInteger(1), NewFloat(1.5)},
		{TokenDiv, NewInteger(1), NewFloat(4), NewFloat(0.25)},
		{TokenMod, NewFloat(7.5), NewInteger(2), NewFloat(1.5)},
		{TokenMul, NewFloat(1.5), NewFloat(2), NewFloat(3)},
		{TokenDiv, NewFloat(1), NewFloat(0), NewFloat(math.Inf(1))},
		{TokenDiv, NewInteger(-1), NewFloat(0), NewFloat(math.Inf(-1))},
		{TokenAdd, NewInteger(math.MaxInt64), NewInteger(1), NewInteger(math.MinInt64)},
	}
	for _, test := range tests {
		got, err := Arith(test.op, test.a, test.b)
		if err != nil {
			t.Fatalf("%v %v %v: %v", test.a, test.op, test.b, err)
		}
		if !Equal(got, test.expected) {
			t.Fatalf("%v %v %v: expected %v %s, got %v %s",
				test.a, test.op, test.b,
				test.expected, test.expected.Type(),
				got, got.Type(),
			)
		}
	}
}

func TestArithErrors(t *testing.T) {
	tests := []struct {
		op   TokenKind
		a, b Value
		kind *Error
	}{
		{TokenDiv, NewInteger(1), NewInteger(0), ErrDivisionByZero},
		{TokenMod, NewInteger(1), NewInteger(0), ErrDivisionByZero},
		{TokenAdd, NewInteger(1), NewBoolean(true), ErrRuntime},
		{TokenAdd, NewBoolean(true), NewInteger(1), ErrRuntime},
		{TokenSub, NewNull(), NewNull(), ErrRuntime},
		{TokenMul, NewFloat(1), NewNull(), ErrRuntime},
		{TokenEquals, NewInteger(1), NewInteger(1), ErrRuntime},
	}
	for _, test := range tests {
		_, err := Arith(test.op, test.a, test.b)
		if !errors.Is(err, test.kind) {
			t.Fatalf("%v %v %v: got %v", test.a, test.op, test.b, err)
		}
	}

	_, err := Arith(TokenAdd, NewInteger(1), NewBoolean(true))
	if err.Error() != "RuntimeError => Not implemented => int + bool" {
		t.Fatalf("got %v", err)
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		a, b     Value
		expected bool
	}{
		{NewInteger(1), NewInteger(1), true},
		{NewInteger(1), NewInteger(2), false},
		{NewInteger(1), NewFloat(1), false},
		{NewFloat(1), NewInteger(1), false},
		{NewFloat(1.5), NewFloat(1.5), true},
		{NewBoolean(true), NewBoolean(true), true},
		{NewBoolean(true), NewInteger(1), false},
		{NewNull(), NewNull(), true},
		{NewNull(), NewInteger(0), false},
		{NewFloat(math.NaN()), NewFloat(math.NaN()), false},
	}
	for _, test := range tests {
		if got := Equal(test.a, test.b); got != test.expected {
			t.Fatalf("%s(%v) == %s(%v): got %v", test.a.Type(), test.a, test.b.Type(), test.b, got)
		}
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		op       TokenKind
		a, b     Value
		expected bool
	}{
		{TokenLessThan, NewInteger(1), NewInteger(2), true},
		{TokenLessThan, NewInteger(2), NewInteger(2), false},
		{TokenLessOrEq, NewInteger(2), NewInteger(2), true},
		{TokenGreaterThan, NewFloat(2.5), NewInteger(2), true},
		{TokenGreaterOrEq, NewInteger(2), NewFloat(2), true},
		{TokenLessThan, NewInteger(math.MaxInt64 - 1), NewInteger(math.MaxInt64), true},
		{TokenEquals, NewInteger(2), NewFloat(2), false},
		{TokenNotEquals, NewInteger(2), NewFloat(2), true},
		{TokenEquals, NewBoolean(false), NewBoolean(false), true},
	}
	for _, test := range tests {
		got, err := Compare(test.op, test.a, test.b)
		if err != nil {
			t.Fatal(err)
		}
		if got != test.expected {
			t.Fatalf("%v %v %v: got %v", test.a, test.op, test.b, got)
		}
	}

	for _, pair := range [][2]Value{
		{NewBoolean(true), NewInteger(1)},
		{NewInteger(1), NewNull()},
		{NewNull(), NewNull()},
	} {
		_, err := Compare(TokenLessThan, pair[0], pair[1])
		if !errors.Is(err, ErrRuntime) {
			t.Fatalf("got %v", err)
		}
	}
}

func TestTruthy(t *testing.T) {
	tests := []struct {
		value    Value
		expected bool
	}{
		{NewInteger(0), false},
		{NewInteger(-1), true},
		{NewFloat(0), false},
		{NewFloat(0.1), true},
		{NewBoolean(true), true},
		{NewBoolean(false), false},
		{NewNull(), false},
	}
	for _, test := range tests {
		if got := Truthy(test.value); got != test.expected {
			t.Fatalf("%s(%v): got %v", test.value.Type(), test.value, got)
		}
	}
}
