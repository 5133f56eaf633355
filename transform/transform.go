package transform

import (
	"encoding/json"
	"reflect"
	"strings"
)

// TrimSpace returns a copy of v with [strings.TrimSpace] applied to every string.
func TrimSpace(v any) any {
	return StringFunc(v, strings.TrimSpace)
}

// ToLower returns a copy of v with [strings.ToLower] applied to every string.
func ToLower(v any) any {
	return StringFunc(v, strings.ToLower)
}

// StringFunc returns a copy of v with f applied to every string, including
// map values, slice elements and strings behind pointers. Map keys are kept
// as-is. Numbers, including [json.Number], are not touched.
func StringFunc(v any, f func(string) string) any {
	return stringFunc(v, f)
}

// Chain composes fns left to right into one string function.
func Chain(fns ...func(string) string) func(string) string {
	return func(s string) string {
		for _, f := range fns {
			s = f(s)
		}
		return s
	}
}

func stringFunc(a any, f func(string) string) any { //nolint:revive // reflection walker is inherently complex
	switch x := a.(type) {
	case nil:
		return nil
	case json.Number:
		return x
	case string:
		return f(x)
	case map[string]any:
		if x == nil {
			return x
		}
		out := make(map[string]any, len(x))
		for k, v := range x {
			out[k] = stringFunc(v, f)
		}
		return out
	case []any:
		if x == nil {
			return x
		}
		out := make([]any, len(x))
		for i, v := range x {
			out[i] = stringFunc(v, f)
		}
		return out
	}

	rv := reflect.ValueOf(a)
	switch rv.Kind() {
	case reflect.String:
		out := reflect.New(rv.Type()).Elem()
		out.SetString(f(rv.String()))
		return out.Interface()
	case reflect.Map:
		if rv.IsNil() {
			return a
		}
		out := reflect.MakeMapWithSize(rv.Type(), rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out.SetMapIndex(iter.Key(), element(iter.Value(), f))
		}
		return out.Interface()
	case reflect.Slice:
		if rv.IsNil() {
			return a
		}
		out := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
		for i := range rv.Len() {
			out.Index(i).Set(element(rv.Index(i), f))
		}
		return out.Interface()
	case reflect.Array:
		out := reflect.New(rv.Type()).Elem()
		for i := range rv.Len() {
			out.Index(i).Set(element(rv.Index(i), f))
		}
		return out.Interface()
	case reflect.Ptr:
		if rv.IsNil() {
			return a
		}
		switch rv.Elem().Kind() {
		case reflect.String, reflect.Map, reflect.Slice, reflect.Array:
			p := reflect.New(rv.Elem().Type())
			p.Elem().Set(element(rv.Elem(), f))
			return p.Interface()
		}
	}
	// Structs and other kinds are returned as-is; records hold decoded data.
	return a
}

// element transforms v and returns a value assignable to v's type.
func element(v reflect.Value, f func(string) string) reflect.Value {
	if v.Kind() == reflect.Interface && v.IsNil() {
		return reflect.Zero(v.Type())
	}
	res := stringFunc(v.Interface(), f)
	if res == nil {
		return reflect.Zero(v.Type())
	}
	return reflect.ValueOf(res)
}
