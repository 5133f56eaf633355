package datavalidation

import (
	"reflect"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// isFilled reports whether v counts as provided: not Absent, not nil and not
// the empty string. Zero numbers and false are filled.
func isFilled(v any) bool {
	if IsAbsent(v) {
		return false
	}
	v, isNil := validation.Indirect(v)
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.String {
		return rv.Len() > 0
	}
	// A nil slice or map decoded from null.
	if isNil && (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Map) {
		return false
	}
	return true
}

func checkRequired(value any, _ []string, _ string, _ Record) bool {
	return isFilled(value)
}
