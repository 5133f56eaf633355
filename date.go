package datavalidation

import (
	"reflect"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// DefaultDateLayouts are tried in order by the date rule when it has no params.
var DefaultDateLayouts = []string{
	time.DateOnly,
	time.RFC3339,
	time.RFC3339Nano,
	time.DateTime,
	"2006/01/02",
}

// checkDate passes for a non-zero time.Time or a string that parses with one
// of the layouts given as params, or DefaultDateLayouts when there are none.
func checkDate(value any, params []string, _ string, _ Record) bool {
	if IsAbsent(value) {
		return false
	}
	v, isNil := validation.Indirect(value)
	if isNil {
		return false
	}
	if t, ok := v.(time.Time); ok {
		return !t.IsZero()
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.String || rv.Len() == 0 {
		return false
	}
	s := rv.String()

	layouts := params
	if len(layouts) == 0 {
		layouts = DefaultDateLayouts
	}
	for _, layout := range layouts {
		if validation.Date(layout).Validate(s) == nil {
			return true
		}
	}
	return false
}
