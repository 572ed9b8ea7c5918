// Package formatutil renders values and colors for the walkthrough output.
package formatutil

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync/atomic"

	"golang.org/x/term"
)

var (
	Bold   = Color("\033[1m%s\033[0m")
	Faint  = Color("\033[2m%s\033[0m")
	Green  = Color("\033[1;32m%s\033[0m")
	Yellow = Color("\033[1;33m%s\033[0m")
	Cyan   = Color("\033[1;36m%s\033[0m")
)

// enabled is consulted on every call so that SetColor can switch colors off
// after the package variables have been built.
var enabled atomic.Bool

func init() {
	enabled.Store(term.IsTerminal(int(os.Stdout.Fd())))
}

// SetColor overrides terminal detection and returns the previous setting.
func SetColor(on bool) (previous bool) {
	return enabled.Swap(on)
}

// ColorEnabled reports whether colors are currently applied.
func ColorEnabled() bool {
	return enabled.Load()
}

func Color(colorString string) func(...any) string {
	return func(args ...any) string {
		if enabled.Load() {
			return fmt.Sprintf(colorString, fmt.Sprint(args...))
		}
		return fmt.Sprint(args...)
	}
}

// Repr formats v the way the walkthrough annotates results: strings are
// quoted, slices are bracketed with comma separators, nil prints as nil and
// functions print as their signature.
func Repr(v any) string {
	if v == nil {
		return "nil"
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return strconv.Quote(rv.String())
	case reflect.Func:
		return "func " + strings.TrimPrefix(rv.Type().String(), "func")
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return "nil"
		}
		parts := make([]string, rv.Len())
		for i := range parts {
			parts[i] = Repr(rv.Index(i).Interface())
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Interface:
		if rv.IsNil() {
			return "nil"
		}
	}
	return fmt.Sprint(v)
}
