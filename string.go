package datavalidation

import (
	"encoding/json"
	"reflect"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// textOf returns the text form of scalar values: strings as-is, numbers in
// shortest decimal form, booleans as "true"/"false".
func textOf(v any) (string, bool) {
	if IsAbsent(v) {
		return "", false
	}
	v, isNil := validation.Indirect(v)
	if isNil {
		return "", false
	}
	switch x := v.(type) {
	case string:
		return x, true
	case json.Number:
		return x.String(), true
	case bool:
		return strconv.FormatBool(x), true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), true
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), true
	}
	return "", false
}

// stringOf returns v when its runtime type is textual. json.Number is numeric,
// not textual.
func stringOf(v any) (string, bool) {
	if IsAbsent(v) {
		return "", false
	}
	v, isNil := validation.Indirect(v)
	if isNil {
		return "", false
	}
	if _, ok := v.(json.Number); ok {
		return "", false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.String {
		return "", false
	}
	return rv.String(), true
}

func checkString(value any, _ []string, _ string, _ Record) bool {
	_, ok := stringOf(value)
	return ok
}

func checkBoolean(value any, _ []string, _ string, _ Record) bool {
	if IsAbsent(value) {
		return false
	}
	v, _ := validation.Indirect(value)
	switch x := v.(type) {
	case bool:
		return true
	case string:
		return x == "true" || x == "false"
	}
	return false
}

func checkArray(value any, _ []string, _ string, _ Record) bool {
	if IsAbsent(value) {
		return false
	}
	v, _ := validation.Indirect(value)
	if v == nil {
		return false
	}
	k := reflect.ValueOf(v).Kind()
	return k == reflect.Slice || k == reflect.Array
}

func checkObject(value any, _ []string, _ string, _ Record) bool {
	if IsAbsent(value) {
		return false
	}
	v, _ := validation.Indirect(value)
	if v == nil {
		return false
	}
	return isMapping(v)
}
