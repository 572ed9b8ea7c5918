package fnkit

import (
	"reflect"
)

// Arity returns the number of required positional parameters declared by f.
//
// The trailing parameter of a variadic function is optional and is not
// counted, so Arity(fmt.Sprintf) is 1.
//
// Arity fails with ErrNotFunc when f is nil or not a function.
func Arity(f any) (int, error) {
	fn, err := newFunc("Arity", f)
	if err != nil {
		return 0, err
	}
	return fn.Arity(), nil
}

// MustArity is like Arity but panics if f is not a function.
func MustArity(f any) int {
	n, err := Arity(f)
	if err != nil {
		panic(err)
	}
	return n
}

// Func is a function value whose signature is only known at run time.
//
// It is the dynamically typed counterpart of Partial1of3, Curry2 and friends:
// argument counts and types are validated before the underlying function is
// invoked, so a call either fails with an *ArgumentError or runs to
// completion.
//
// The zero Func wraps no function: Call and Partial on it fail with
// ErrNotFunc.
//
// A Func obtained from Partial holds its fixed arguments by value; they are
// evaluated once, when Partial is called.
type Func struct {
	v     reflect.Value
	fixed []reflect.Value
}

// NewFunc wraps f. It fails with ErrNotFunc when f is nil or not a function.
func NewFunc(f any) (Func, error) {
	return newFunc("NewFunc", f)
}

func newFunc(op string, f any) (Func, error) {
	v := reflect.ValueOf(f)
	if !v.IsValid() {
		return Func{}, argErr(op, -1, ErrNotFunc, "got nil")
	}
	if v.Kind() != reflect.Func {
		return Func{}, argErr(op, -1, ErrNotFunc, "got %s", v.Type())
	}
	if v.IsNil() {
		return Func{}, argErr(op, -1, ErrNotFunc, "nil %s", v.Type())
	}
	return Func{v: v}, nil
}

// Arity returns the number of required arguments still expected by fn.
func (fn Func) Arity() int {
	if !fn.v.IsValid() {
		return 0
	}
	t := fn.v.Type()
	n := t.NumIn()
	if t.IsVariadic() {
		n--
	}
	n -= len(fn.fixed)
	if n < 0 {
		// arguments fixed for the variadic tail
		return 0
	}
	return n
}

// Variadic reports whether fn accepts a variable number of trailing arguments.
func (fn Func) Variadic() bool {
	return fn.v.IsValid() && fn.v.Type().IsVariadic()
}

// Call invokes fn with args appended to any arguments fixed by Partial and
// returns the results.
//
// The argument list is validated in full before fn runs: a wrong count fails
// with ErrArity, an argument that cannot be assigned to its parameter fails
// with ErrArgType. A nil argument is accepted for parameters whose type has a
// nil value (pointers, interfaces, slices, maps, channels and functions).
func (fn Func) Call(args ...any) ([]any, error) {
	in, err := fn.prepare("Call", len(fn.fixed), args)
	if err != nil {
		return nil, err
	}
	all := make([]reflect.Value, 0, len(fn.fixed)+len(in))
	all = append(all, fn.fixed...)
	all = append(all, in...)

	out := fn.v.Call(all)
	results := make([]any, len(out))
	for i, o := range out {
		results[i] = o.Interface()
	}
	return results, nil
}

// Partial returns a new Func with args fixed as the next positional
// arguments. The returned Func has arity fn.Arity()-len(args).
//
// Partial fails with ErrArity when more arguments are given than fn still
// requires, and with ErrArgType on a type mismatch. Extra arguments may only
// be fixed for the variadic tail of a variadic function.
func (fn Func) Partial(args ...any) (Func, error) {
	if !fn.v.IsValid() {
		return Func{}, errZeroFunc("Partial")
	}
	if !fn.Variadic() && len(args) > fn.Arity() {
		return Func{}, argErr("Partial", -1, ErrArity,
			"%d arguments fixed for a function of arity %d", len(args), fn.Arity())
	}
	in, err := fn.convert("Partial", len(fn.fixed), args)
	if err != nil {
		return Func{}, err
	}
	fixed := make([]reflect.Value, 0, len(fn.fixed)+len(in))
	fixed = append(fixed, fn.fixed...)
	fixed = append(fixed, in...)
	return Func{v: fn.v, fixed: fixed}, nil
}

func (fn Func) prepare(op string, offset int, args []any) ([]reflect.Value, error) {
	if !fn.v.IsValid() {
		return nil, errZeroFunc(op)
	}
	want := fn.Arity()
	if len(args) < want || (!fn.Variadic() && len(args) > want) {
		return nil, argErr(op, -1, ErrArity, "want %d, got %d", want, len(args))
	}
	return fn.convert(op, offset, args)
}

// convert checks that each argument fits the parameter at its position.
// offset is the position of args[0] in the full parameter list; errors
// report the full position.
func (fn Func) convert(op string, offset int, args []any) ([]reflect.Value, error) {
	t := fn.v.Type()
	values := make([]reflect.Value, len(args))
	for i, a := range args {
		pos := offset + i
		pt := paramType(t, pos)
		if a == nil {
			switch pt.Kind() {
			case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
				values[i] = reflect.Zero(pt)
				continue
			}
			return nil, argErr(op, pos, ErrArgType, "nil is not a valid %s", pt)
		}
		v := reflect.ValueOf(a)
		if !v.Type().AssignableTo(pt) {
			return nil, argErr(op, pos, ErrArgType, "%s is not assignable to %s", v.Type(), pt)
		}
		values[i] = v
	}
	return values, nil
}

func errZeroFunc(op string) error {
	return argErr(op, -1, ErrNotFunc, "zero Func, use NewFunc")
}

func paramType(t reflect.Type, pos int) reflect.Type {
	if t.IsVariadic() && pos >= t.NumIn()-1 {
		return t.In(t.NumIn() - 1).Elem()
	}
	return t.In(pos)
}
