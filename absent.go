package datavalidation

import (
	"reflect"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// AbsentValue is the type of [Absent].
type AbsentValue struct{}

func (AbsentValue) String() string { return "<absent>" }

// Absent is the value a field path resolves to when it does not exist in the
// record. It is distinct from nil, which is an explicit null.
var Absent = AbsentValue{}

// IsAbsent reports whether v is the [Absent] marker.
func IsAbsent(v any) bool {
	_, ok := v.(AbsentValue)
	return ok
}

// Resolve looks up a dot-delimited path such as "address.city" in record.
//
// Descent stops with [Absent] as soon as a segment is missing or the current
// value is not a keyed mapping; descending into a string is not an error.
// A nil record behaves as an empty one. A non-nil record that is not a
// string-keyed mapping returns ErrNotTraversable.
func Resolve(record any, path string) (any, error) {
	root, isNil := validation.Indirect(record)
	if isNil {
		return Absent, nil
	}
	if !isMapping(root) {
		return nil, ErrNotTraversable
	}

	var cur any = root
	for _, seg := range strings.Split(path, ".") {
		v, ok := lookup(cur, seg)
		if !ok {
			return Absent, nil
		}
		cur = v
	}
	return cur, nil
}

func isMapping(v any) bool {
	switch v.(type) {
	case map[string]any, map[string]string:
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String
}

func lookup(cur any, key string) (any, bool) {
	cur, isNil := validation.Indirect(cur)
	if isNil {
		return nil, false
	}
	switch m := cur.(type) {
	case map[string]any:
		v, ok := m[key]
		return v, ok
	case map[string]string:
		v, ok := m[key]
		return v, ok
	}

	rv := reflect.ValueOf(cur)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	mv := rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key()))
	if !mv.IsValid() {
		return nil, false
	}
	return mv.Interface(), true
}
