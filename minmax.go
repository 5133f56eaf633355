package datavalidation

import (
	"fmt"
	"reflect"
	"strconv"
	"unicode/utf8"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Size kinds select the typed variant of a default message, e.g. "min.string".
const (
	kindNumeric = "numeric"
	kindString  = "string"
	kindArray   = "array"
)

// sizeOf measures v for the size rules: numbers by value, strings by rune
// count, sequences and mappings by length.
func sizeOf(v any) (float64, string, bool) {
	if IsAbsent(v) {
		return 0, "", false
	}
	v, isNil := validation.Indirect(v)
	if isNil && v == nil {
		return 0, "", false
	}
	if isNumberType(v) {
		f, ok := numberOf(v)
		return f, kindNumeric, ok
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return float64(utf8.RuneCountInString(rv.String())), kindString, true
	case reflect.Slice, reflect.Array, reflect.Map:
		n, err := validation.LengthOfValue(v)
		if err != nil {
			return 0, "", false
		}
		return float64(n), kindArray, true
	}
	return 0, "", false
}

// sizeKind returns the message variant for v, or "" when v is not measurable.
func sizeKind(v any) string {
	_, kind, _ := sizeOf(v)
	return kind
}

func paramFloat(params []string, i int) (float64, bool) {
	if i >= len(params) {
		return 0, false
	}
	f, err := strconv.ParseFloat(params[i], 64)
	if err != nil {
		return 0, false
	}
	return f, finite(f)
}

// numericParams returns a params check requiring exactly n numeric params.
func numericParams(n int) func([]string) error {
	return func(params []string) error {
		if len(params) != n {
			return fmt.Errorf("%w: want %d numeric params, got %d", ErrInvalidParams, n, len(params))
		}
		for i := range params {
			if _, ok := paramFloat(params, i); !ok {
				return fmt.Errorf("%w: %q is not a number", ErrInvalidParams, params[i])
			}
		}
		return nil
	}
}

// compareSize returns a handler passing when cmp(size, param0) holds.
func compareSize(cmp func(size, n float64) bool) RuleFunc {
	return func(value any, params []string, _ string, _ Record) bool {
		s, _, ok := sizeOf(value)
		if !ok {
			return false
		}
		n, ok := paramFloat(params, 0)
		return ok && cmp(s, n)
	}
}

var (
	checkMin = compareSize(func(s, n float64) bool { return s >= n })
	checkMax = compareSize(func(s, n float64) bool { return s <= n })
	checkGt  = compareSize(func(s, n float64) bool { return s > n })
	checkGte = checkMin
	checkLt  = compareSize(func(s, n float64) bool { return s < n })
	checkLte = checkMax
)

func checkBetween(value any, params []string, _ string, _ Record) bool {
	s, _, ok := sizeOf(value)
	if !ok {
		return false
	}
	lo, okLo := paramFloat(params, 0)
	hi, okHi := paramFloat(params, 1)
	return okLo && okHi && s >= lo && s <= hi
}
