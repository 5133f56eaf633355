package datavalidation

import "regexp"

// Pattern returns a handler that passes when the text form of the value
// matches re. Use it to register locale-specific formats:
//
//	reg.Register("postcode", datavalidation.Pattern(regexp.MustCompile(`^\d{5}(-\d{4})?$`)))
func Pattern(re *regexp.Regexp) RuleFunc {
	return func(value any, _ []string, _ string, _ Record) bool {
		s, ok := textOf(value)
		return ok && re.MatchString(s)
	}
}

// Func adapts a predicate over the value alone into a RuleFunc.
func Func(f func(value any) bool) RuleFunc {
	return func(value any, _ []string, _ string, _ Record) bool {
		return f(value)
	}
}
