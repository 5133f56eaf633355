package datavalidation

import (
	"encoding/json"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/asaskevich/govalidator"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// isNumberType reports whether v has a numeric runtime type. json.Number
// counts as numeric.
func isNumberType(v any) bool {
	v, isNil := validation.Indirect(v)
	if isNil {
		return false
	}
	if _, ok := v.(json.Number); ok {
		return true
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// numberOf returns the finite numeric value of v. Numeric strings are parsed
// after trimming surrounding whitespace.
func numberOf(v any) (float64, bool) {
	if IsAbsent(v) {
		return 0, false
	}
	v, isNil := validation.Indirect(v)
	if isNil {
		return 0, false
	}

	switch x := v.(type) {
	case json.Number:
		return parseNumber(x.String())
	case string:
		return parseNumber(x)
	case bool:
		return 0, false
	}

	if f, err := validation.ToFloat(v); err == nil {
		return f, finite(f)
	}
	if i, err := validation.ToInt(v); err == nil {
		return float64(i), true
	}
	if u, err := validation.ToUint(v); err == nil {
		return float64(u), true
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.String {
		return parseNumber(rv.String())
	}
	return 0, false
}

func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" || !govalidator.IsFloat(s) {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, finite(f)
}

func finite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

func checkNumber(value any, _ []string, _ string, _ Record) bool {
	_, ok := numberOf(value)
	return ok
}

func checkInteger(value any, _ []string, _ string, _ Record) bool {
	f, ok := numberOf(value)
	return ok && f == math.Trunc(f)
}
