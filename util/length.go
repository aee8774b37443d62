package util

import "reflect"

// Length reports the length of v for strings, slices, arrays, maps, and
// channels. The second return value is false for types that have no length.
func Length(v any) (int, bool) {
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
		return rv.Len(), true
	default:
		return 0, false
	}
}
