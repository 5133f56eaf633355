package datavalidation

// Control rules never fail. When their condition holds, the remaining rules
// of the field are skipped and the field reports no error.

// skipNullable stops evaluation for Absent, nil and empty values.
func skipNullable(value any) bool {
	return !isFilled(value)
}

// skipSometimes stops evaluation when the field is not in the record.
func skipSometimes(value any) bool {
	return IsAbsent(value)
}

func pass(any, []string, string, Record) bool {
	return true
}
