package datavalidation

import "reflect"

// ConfirmationSuffix names the sibling field the confirmed rule compares against.
const ConfirmationSuffix = "_confirmation"

// valuesEqual compares two record values. Numbers compare by value across
// numeric types; everything else must be deeply equal.
func valuesEqual(a, b any) bool {
	if IsAbsent(a) || IsAbsent(b) {
		return IsAbsent(a) && IsAbsent(b)
	}
	if isNumberType(a) && isNumberType(b) {
		fa, okA := numberOf(a)
		fb, okB := numberOf(b)
		return okA && okB && fa == fb
	}
	return reflect.DeepEqual(a, b)
}

// sibling resolves another path of the same record. The record is always a
// mapping here, so Resolve cannot fail.
func sibling(record Record, path string) any {
	v, err := Resolve(record, path)
	if err != nil {
		return Absent
	}
	return v
}

func checkConfirmed(value any, _ []string, field string, record Record) bool {
	return valuesEqual(value, sibling(record, field+ConfirmationSuffix))
}

func checkSame(value any, params []string, _ string, record Record) bool {
	return len(params) > 0 && valuesEqual(value, sibling(record, params[0]))
}

func checkDifferent(value any, params []string, _ string, record Record) bool {
	return len(params) > 0 && !valuesEqual(value, sibling(record, params[0]))
}
