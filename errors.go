package fnkit

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFunc is returned when a value that is expected to be callable is not a function.
	ErrNotFunc = errors.New("value is not a function")

	// ErrArity is returned when a function receives more or fewer arguments than it declares.
	ErrArity = errors.New("wrong number of arguments")

	// ErrArgType is returned when an argument cannot be assigned to the declared parameter type.
	ErrArgType = errors.New("argument type mismatch")
)

// ArgumentError describes an invalid argument passed to one of the dynamic
// operations (Arity, NewFunc, Func.Call, Func.Partial).
//
// Index is the parameter position of the offending argument, counting
// arguments already fixed by Func.Partial, or -1 when the error is
// about the argument list as a whole.
//
// ArgumentError unwraps to one of ErrNotFunc, ErrArity or ErrArgType:
//
//	if errors.Is(err, fnkit.ErrArity) {
//	    ...
//	}
type ArgumentError struct {
	Op     string
	Index  int
	Detail string
	Err    error
}

func (e *ArgumentError) Error() string {
	msg := "fnkit." + e.Op + ": " + e.Err.Error()
	if e.Index >= 0 {
		msg += fmt.Sprintf(" (argument %d)", e.Index)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}

func argErr(op string, index int, err error, format string, args ...any) error {
	return &ArgumentError{
		Op:     op,
		Index:  index,
		Detail: fmt.Sprintf(format, args...),
		Err:    err,
	}
}

func nilFunc(op string) string {
	return "fnkit." + op + ": nil function"
}
