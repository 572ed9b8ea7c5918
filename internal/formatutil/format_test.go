package formatutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRepr(t *testing.T) {
	var nilSlice []int

	for _, tc := range []struct {
		in   any
		want string
	}{
		{nil, "nil"},
		{2, "2"},
		{"121", `"121"`},
		{[]int{2, 3}, "[2, 3]"},
		{[]any{0, "1", nil}, `[0, "1", nil]`},
		{nilSlice, "nil"},
		{[2]bool{true, false}, "[true, false]"},
		{func(a, b int) int { return a + b }, "func (int, int) int"},
		{map[string]int{"age": 30}, "map[age:30]"},
	} {
		require.Equal(t, tc.want, Repr(tc.in))
	}
}

func TestColor(t *testing.T) {
	defer SetColor(ColorEnabled())

	SetColor(false)
	require.Equal(t, "plain", Green("plain"))

	require.False(t, SetColor(true))
	require.True(t, ColorEnabled())
	require.Equal(t, "\033[1;32mplain\033[0m", Green("plain"))
}
