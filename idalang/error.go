package idalang

import "fmt"

type ErrorKind uint8

const (
	IllegalCharacter ErrorKind = iota + 1
	InvalidSyntax
	DivisionByZero
	UnexpectedToken
	RuntimeError
)

func (k ErrorKind) String() string {
	switch k {
	case IllegalCharacter:
		return "IllegalCharacter"
	case InvalidSyntax:
		return "InvalidSyntax"
	case DivisionByZero:
		return "DivisionByZero"
	case UnexpectedToken:
		return "UnexpectedToken"
	case RuntimeError:
		return "RuntimeError"
	}
	return fmt.Sprintf("ErrorKind(%d)", k)
}

// Error is the only failure type produced by the pipeline.
type Error struct {
	Kind    ErrorKind
	Details string
}

func (e *Error) Error() string {
	return e.Kind.String() + " => " + e.Details
}

// Is matches any *Error of the same kind, so the kind sentinels below work with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Details == "" || t.Details == e.Details)
}

var (
	ErrIllegalCharacter = &Error{Kind: IllegalCharacter}
	ErrInvalidSyntax    = &Error{Kind: InvalidSyntax}
	ErrDivisionByZero   = &Error{Kind: DivisionByZero}
	ErrUnexpectedToken  = &Error{Kind: UnexpectedToken}
	ErrRuntime          = &Error{Kind: RuntimeError}
)

func newError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Details: fmt.Sprintf(format, args...),
	}
}
