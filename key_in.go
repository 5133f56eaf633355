package datavalidation

import (
	"reflect"
	"slices"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// checkKeys passes when value is a mapping whose keys are all among params.
func checkKeys(value any, params []string, _ string, _ Record) bool {
	if IsAbsent(value) {
		return false
	}
	v, isNil := validation.Indirect(value)
	if v == nil || !isMapping(v) {
		return false
	}
	if isNil {
		return true
	}
	for _, k := range reflect.ValueOf(v).MapKeys() {
		if !slices.Contains(params, k.String()) {
			return false
		}
	}
	return true
}
