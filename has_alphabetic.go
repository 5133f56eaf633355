package datavalidation

import (
	"regexp"
	"strings"

	"github.com/asaskevich/govalidator"
)

var (
	alphabeticRegexp = regexp.MustCompile(`[^[:alpha:]]`)
	alphaDashRegexp  = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
)

// govalidator treats the empty string as valid, so each check requires content.

func checkAlpha(value any, _ []string, _ string, _ Record) bool {
	s, ok := nonEmptyString(value)
	return ok && govalidator.IsAlpha(s)
}

func checkAlphaNum(value any, _ []string, _ string, _ Record) bool {
	s, ok := nonEmptyString(value)
	return ok && govalidator.IsAlphanumeric(s)
}

func checkAlphaDash(value any, _ []string, _ string, _ Record) bool {
	s, ok := nonEmptyString(value)
	return ok && alphaDashRegexp.MatchString(s)
}

// checkHasAlpha passes for strings containing at least one ASCII letter,
// which rejects values such as card or phone numbers in free-text fields.
func checkHasAlpha(value any, _ []string, _ string, _ Record) bool {
	s, ok := stringOf(value)
	if !ok {
		return false
	}
	s = strings.TrimSpace(s)
	return alphabeticRegexp.ReplaceAllString(s, "") != ""
}
