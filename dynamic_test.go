package fnkit_test

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/KasperOmsK/fnkit"

	"github.com/stretchr/testify/require"
)

func TestNewFunc_Call(t *testing.T) {
	fn, err := fnkit.NewFunc(add3)
	require.NoError(t, err)
	require.Equal(t, 3, fn.Arity())

	out, err := fn.Call(2, 3, 4)
	require.NoError(t, err)
	require.Equal(t, []any{9}, out)
}

func TestFunc_Partial(t *testing.T) {
	fn, err := fnkit.NewFunc(add3)
	require.NoError(t, err)

	fivePlus, err := fn.Partial(2, 3)
	require.NoError(t, err)
	require.Equal(t, 1, fivePlus.Arity())

	out, err := fivePlus.Call(4)
	require.NoError(t, err)
	require.Equal(t, []any{9}, out)

	// fn itself keeps its full arity
	require.Equal(t, 3, fn.Arity())
}

func TestFunc_PartialChained(t *testing.T) {
	fn, err := fnkit.NewFunc(add3)
	require.NoError(t, err)

	two, err := fn.Partial(2)
	require.NoError(t, err)
	five, err := two.Partial(3)
	require.NoError(t, err)

	out, err := five.Call(4)
	require.NoError(t, err)
	require.Equal(t, []any{9}, out)
}

func TestFunc_PartialTooManyArgs(t *testing.T) {
	fn, err := fnkit.NewFunc(add)
	require.NoError(t, err)

	_, err = fn.Partial(1, 2, 3)
	require.ErrorIs(t, err, fnkit.ErrArity)
}

func TestFunc_CallWrongArity(t *testing.T) {
	called := false
	fn, err := fnkit.NewFunc(func(a, b int) int {
		called = true
		return a + b
	})
	require.NoError(t, err)

	_, err = fn.Call(1)
	require.ErrorIs(t, err, fnkit.ErrArity)

	_, err = fn.Call(1, 2, 3)
	require.ErrorIs(t, err, fnkit.ErrArity)

	require.False(t, called)
}

func TestFunc_CallWrongType(t *testing.T) {
	called := false
	fn, err := fnkit.NewFunc(func(a int, s string) string {
		called = true
		return s
	})
	require.NoError(t, err)

	_, err = fn.Call(1, 2)
	require.ErrorIs(t, err, fnkit.ErrArgType)

	var argErr *fnkit.ArgumentError
	require.ErrorAs(t, err, &argErr)
	require.Equal(t, "Call", argErr.Op)
	require.Equal(t, 1, argErr.Index)
	require.Contains(t, err.Error(), "int is not assignable to string")

	_, err = fn.Call(nil, "x")
	require.ErrorIs(t, err, fnkit.ErrArgType)

	require.False(t, called)
}

func TestFunc_NilForNillableParameter(t *testing.T) {
	fn, err := fnkit.NewFunc(func(err error) bool { return err == nil })
	require.NoError(t, err)

	out, err := fn.Call(nil)
	require.NoError(t, err)
	require.Equal(t, []any{true}, out)
}

func TestFunc_InterfaceParameter(t *testing.T) {
	fn, err := fnkit.NewFunc(func(err error) string { return err.Error() })
	require.NoError(t, err)

	out, err := fn.Call(io.EOF)
	require.NoError(t, err)
	require.Equal(t, []any{"EOF"}, out)
}

func TestFunc_Variadic(t *testing.T) {
	fn, err := fnkit.NewFunc(fmt.Sprintf)
	require.NoError(t, err)
	require.True(t, fn.Variadic())
	require.Equal(t, 1, fn.Arity())

	greet, err := fn.Partial("%s, %s")
	require.NoError(t, err)
	require.Equal(t, 0, greet.Arity())

	hi, err := greet.Partial("Hi")
	require.NoError(t, err)

	out, err := hi.Call("Brianne")
	require.NoError(t, err)
	require.Equal(t, []any{"Hi, Brianne"}, out)

	_, err = fn.Call()
	require.ErrorIs(t, err, fnkit.ErrArity)
}

func TestNewFunc_NotCallable(t *testing.T) {
	_, err := fnkit.NewFunc(struct{}{})
	require.True(t, errors.Is(err, fnkit.ErrNotFunc))
	require.EqualError(t, err, "fnkit.NewFunc: value is not a function: got struct {}")
}

func TestFunc_ZeroValue(t *testing.T) {
	var fn fnkit.Func

	require.Equal(t, 0, fn.Arity())
	require.False(t, fn.Variadic())

	_, err := fn.Call()
	require.ErrorIs(t, err, fnkit.ErrNotFunc)
	require.EqualError(t, err, "fnkit.Call: value is not a function: zero Func, use NewFunc")

	_, err = fn.Partial(1)
	require.ErrorIs(t, err, fnkit.ErrNotFunc)
}

func TestFunc_PartialWrongType(t *testing.T) {
	called := false
	fn, err := fnkit.NewFunc(func(a int, s string) string {
		called = true
		return s
	})
	require.NoError(t, err)

	_, err = fn.Partial("x")
	require.ErrorIs(t, err, fnkit.ErrArgType)

	var argErr *fnkit.ArgumentError
	require.ErrorAs(t, err, &argErr)
	require.Equal(t, "Partial", argErr.Op)
	require.Equal(t, 0, argErr.Index)
	require.EqualError(t, err, "fnkit.Partial: argument type mismatch (argument 0): string is not assignable to int")

	require.False(t, called)
}

func TestFunc_ErrorIndexCountsFixedArguments(t *testing.T) {
	fn, err := fnkit.NewFunc(func(a int, s string) string { return s })
	require.NoError(t, err)

	withA, err := fn.Partial(1)
	require.NoError(t, err)

	_, err = withA.Call(2)
	require.ErrorIs(t, err, fnkit.ErrArgType)

	var argErr *fnkit.ArgumentError
	require.ErrorAs(t, err, &argErr)
	require.Equal(t, 1, argErr.Index)
	require.Contains(t, err.Error(), "int is not assignable to string")
}
