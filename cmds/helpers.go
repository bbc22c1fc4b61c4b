package cmds

import "fmt"

// Var defines name to set the value and name+"." to reset it
func Var[T any](name string) *T {
	var value T

	Define(name, Func(func(v T) {
		value = v
	}).Desc(fmt.Sprintf("set %s (%T)", name, value)))

	var zero T
	Define(name+".", Func(func() {
		value = zero
	}).Desc(fmt.Sprintf("reset %s", name)))

	return &value
}

// Switch defines name to turn on and !name to turn off
func Switch(name string) *bool {
	var value bool

	Define(name, Func(func() {
		value = true
	}).Desc("enable "+name))

	Define("!"+name, Func(func() {
		value = false
	}).Desc("disable "+name))

	return &value
}

// Collect defines name to append one value per occurrence
func Collect[T any](name string) *[]T {
	var value []T
	Define(name, Func(func(v T) {
		value = append(value, v)
	}).Desc(fmt.Sprintf("add to %s (repeatable)", name)))
	return &value
}
