// Package format renders values and differences for failure
// messages.
package format

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/kr/pretty"
)

// Value renders v for a failure message. Strings are quoted,
// other scalars use their default format and composite values
// are printed in Go syntax.
func Value(v any) string {
	if v == nil {
		return "nil"
	}
	if err, ok := v.(error); ok {
		return fmt.Sprintf("error(%q)", err.Error())
	}

	switch reflect.ValueOf(v).Kind() {
	case reflect.String:
		return fmt.Sprintf("%q", v)
	case reflect.Struct, reflect.Map, reflect.Slice, reflect.Array,
		reflect.Pointer, reflect.Interface:
		return pretty.Sprintf("%# v", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Values renders each element of vs with Value as a bracketed,
// comma separated list.
func Values[E any](vs []E) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = Value(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Diff returns a human-readable report of the differences
// between expected and actual, in go-cmp's (-expected +actual)
// notation. It is empty when the values are equal.
func Diff(expected, actual any, opts ...cmp.Option) string {
	return strings.TrimRight(cmp.Diff(expected, actual, opts...), "\n")
}
