package datavalidation

import "strings"

const nationalIDLength = 10

// NationalID returns a handler for 10-digit national identification codes
// with a mod-11 check digit (the Iranian "code melli" scheme). Codes made of
// one repeated digit are rejected.
//
//	reg.Register("nationalId", datavalidation.NationalID())
func NationalID() RuleFunc {
	return func(value any, _ []string, _ string, _ Record) bool {
		s, ok := nonEmptyString(value)
		if !ok {
			return false
		}
		return validNationalID(strings.TrimSpace(s))
	}
}

func validNationalID(s string) bool {
	if len(s) != nationalIDLength {
		return false
	}
	digits := make([]int, nationalIDLength)
	same := true
	for i := range nationalIDLength {
		c := s[i]
		if c < '0' || c > '9' {
			return false
		}
		digits[i] = int(c - '0')
		if c != s[0] {
			same = false
		}
	}
	if same {
		return false
	}

	sum := 0
	for i := range nationalIDLength - 1 {
		sum += digits[i] * (nationalIDLength - i)
	}
	r := sum % 11
	check := digits[nationalIDLength-1]
	if r < 2 {
		return check == r
	}
	return check == 11-r
}
