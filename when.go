package datavalidation

import "slices"

// Conditional presence rules. Each makes the field behave like required
// when its condition on other fields of the record holds, and passes
// otherwise.

// required_if:other,v1,v2,... requires the field when other equals one of the values.
func checkRequiredIf(value any, params []string, _ string, record Record) bool {
	if !otherIn(record, params) {
		return true
	}
	return isFilled(value)
}

// required_unless:other,v1,v2,... requires the field unless other equals one of the values.
func checkRequiredUnless(value any, params []string, _ string, record Record) bool {
	if otherIn(record, params) {
		return true
	}
	return isFilled(value)
}

// required_with:f1,f2,... requires the field when any of the others is filled.
func checkRequiredWith(value any, params []string, _ string, record Record) bool {
	for _, other := range params {
		if isFilled(sibling(record, other)) {
			return isFilled(value)
		}
	}
	return true
}

// required_without:f1,f2,... requires the field when any of the others is not filled.
func checkRequiredWithout(value any, params []string, _ string, record Record) bool {
	for _, other := range params {
		if !isFilled(sibling(record, other)) {
			return isFilled(value)
		}
	}
	return true
}

func otherIn(record Record, params []string) bool {
	if len(params) < 2 {
		return false
	}
	s, ok := textOf(sibling(record, params[0]))
	return ok && slices.Contains(params[1:], s)
}
