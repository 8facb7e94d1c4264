// Package refutil holds reflection helpers shared by the value packages.
package refutil

import (
	"fmt"
	"reflect"
)

// IsNil reports whether v is an absent value: an untyped nil or a typed
// nil of a nilable kind hiding inside an interface.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan,
		reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

// Format renders v for display and hashing. Absent values render as
// "null"; errors render their message; pointers render their pointee so
// the rendering tracks deep equality rather than addresses.
func Format(v any) string {
	if IsNil(v) {
		return "null"
	}
	switch x := v.(type) {
	case error:
		return x.Error()
	case fmt.Stringer:
		return x.String()
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer {
		return "&" + Format(rv.Elem().Interface())
	}
	return fmt.Sprintf("%v", v)
}
