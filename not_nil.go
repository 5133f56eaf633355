package datavalidation

// checkPresent passes when the field exists in the record, even if it is nil
// or empty.
func checkPresent(value any, _ []string, _ string, _ Record) bool {
	return !IsAbsent(value)
}

// checkFilled passes when the field is absent or, if present, filled.
func checkFilled(value any, _ []string, _ string, _ Record) bool {
	return IsAbsent(value) || isFilled(value)
}
