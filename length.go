package datavalidation

// checkSize passes when the measured size of value equals the param exactly:
// rune count for strings, length for sequences, value for numbers.
func checkSize(value any, params []string, _ string, _ Record) bool {
	s, _, ok := sizeOf(value)
	if !ok {
		return false
	}
	n, ok := paramFloat(params, 0)
	return ok && s == n
}
