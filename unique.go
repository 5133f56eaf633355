package datavalidation

import (
	"fmt"
	"reflect"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// checkDistinct passes when value is a sequence without repeated elements.
func checkDistinct(value any, _ []string, _ string, _ Record) bool {
	if !checkArray(value, nil, "", nil) {
		return false
	}
	v, _ := validation.Indirect(value)
	rv := reflect.ValueOf(v)
	seen := make(map[string]struct{}, rv.Len())
	for i := range rv.Len() {
		elem := rv.Index(i).Interface()
		key, ok := textOf(elem)
		if !ok {
			key = fmt.Sprintf("%#v", elem)
		} else if isNumberType(elem) {
			key = "n:" + key
		} else {
			key = "s:" + key
		}
		if _, dup := seen[key]; dup {
			return false
		}
		seen[key] = struct{}{}
	}
	return true
}

// Lookup answers existence questions about a backing store synchronously.
// The engine never performs I/O itself; hosts implement Lookup over their
// store or hand in answers resolved up front with [Resolved].
type Lookup interface {
	Count(table, column, value string) int
}

// LookupFunc adapts a function to [Lookup].
type LookupFunc func(table, column, value string) int

// Count implements [Lookup].
func (f LookupFunc) Count(table, column, value string) int {
	return f(table, column, value)
}

// Resolved is a pre-resolved [Lookup]: table -> column -> existing values.
type Resolved map[string]map[string][]string

// Count implements [Lookup].
func (r Resolved) Count(table, column, value string) int {
	n := 0
	for _, v := range r[table][column] {
		if v == value {
			n++
		}
	}
	return n
}

// lookupTarget reads "table[,column]" params; the column defaults to the
// last segment of the field path.
func lookupTarget(params []string, field string) (string, string, bool) {
	if len(params) == 0 || params[0] == "" {
		return "", "", false
	}
	column := lastSegment(field)
	if len(params) > 1 && params[1] != "" {
		column = params[1]
	}
	return params[0], column, true
}

// Unique returns a handler for "unique:table[,column]" that passes when no
// row holds the value.
func Unique(l Lookup) RuleFunc {
	return func(value any, params []string, field string, _ Record) bool {
		table, column, ok := lookupTarget(params, field)
		if !ok {
			return false
		}
		s, ok := textOf(value)
		return ok && l.Count(table, column, s) == 0
	}
}

// Exists returns a handler for "exists:table[,column]" that passes when at
// least one row holds the value.
func Exists(l Lookup) RuleFunc {
	return func(value any, params []string, field string, _ Record) bool {
		table, column, ok := lookupTarget(params, field)
		if !ok {
			return false
		}
		s, ok := textOf(value)
		return ok && l.Count(table, column, s) > 0
	}
}

func lastSegment(path string) string {
	return path[strings.LastIndexByte(path, '.')+1:]
}
