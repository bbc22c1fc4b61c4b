package idalang

import (
	"iter"
	"maps"
	"slices"
)

// Env is the flat variable store of one session. There are no nested scopes.
type Env struct {
	vars map[string]Value
}

// EnvName is declared in every new Env and bound to null.
const EnvName = "env"

func NewEnv() *Env {
	return &Env{
		vars: map[string]Value{
			EnvName: NewNull(),
		},
	}
}

func (e *Env) Declare(name string) error {
	if _, ok := e.vars[name]; ok {
		return newError(RuntimeError, "Variable redeclared => %s", name)
	}
	e.vars[name] = NewNull()
	return nil
}

func (e *Env) Assign(name string, value Value) error {
	if _, ok := e.vars[name]; !ok {
		return newError(RuntimeError, "Variable undefined => %s", name)
	}
	e.vars[name] = value
	return nil
}

func (e *Env) Access(name string) (Value, error) {
	value, ok := e.vars[name]
	if !ok {
		return nil, newError(RuntimeError, "Variable undefined => %s", name)
	}
	return value, nil
}

func (e *Env) Len() int {
	return len(e.vars)
}

// Names iterates declared names in sorted order.
func (e *Env) Names() iter.Seq[string] {
	return slices.Values(slices.Sorted(maps.Keys(e.vars)))
}
