package datavalidation

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// Phone returns a handler for "phone[:region]" that passes when the value
// parses as a valid phone number. Numbers without a country code are read in
// the region given as param, or defaultRegion (ISO 3166-1 alpha-2, e.g. "IR").
//
//	reg.Register("phone", datavalidation.Phone("IR"))
func Phone(defaultRegion string) RuleFunc {
	return func(value any, params []string, _ string, _ Record) bool {
		s, ok := nonEmptyString(value)
		if !ok {
			return false
		}
		region := defaultRegion
		if len(params) > 0 && params[0] != "" {
			region = strings.ToUpper(params[0])
		}
		num, err := phonenumbers.Parse(strings.TrimSpace(s), region)
		if err != nil {
			return false
		}
		return phonenumbers.IsValidNumber(num)
	}
}
