package datavalidation

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/asaskevich/govalidator"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// nonEmptyString returns value when it is a non-empty string. Format rules
// fail on anything else; optional fields use nullable.
func nonEmptyString(value any) (string, bool) {
	s, ok := stringOf(value)
	return s, ok && s != ""
}

func checkEmail(value any, _ []string, _ string, _ Record) bool {
	s, ok := nonEmptyString(value)
	return ok && is.EmailFormat.Validate(s) == nil
}

// checkURL requires an absolute URL with a scheme and a valid host.
func checkURL(value any, _ []string, _ string, _ Record) bool {
	s, ok := nonEmptyString(value)
	return ok && is.URL.Validate(s) == nil && is.RequestURL.Validate(s) == nil
}

func checkUUID(value any, _ []string, _ string, _ Record) bool {
	s, ok := nonEmptyString(value)
	if !ok {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

func checkIP(value any, _ []string, _ string, _ Record) bool {
	s, ok := nonEmptyString(value)
	return ok && govalidator.IsIP(s)
}

func checkJSON(value any, _ []string, _ string, _ Record) bool {
	s, ok := nonEmptyString(value)
	return ok && govalidator.IsJSON(s)
}

var patterns sync.Map // pattern -> *regexp.Regexp

// compilePattern joins params back with "," so patterns may contain commas.
// Surrounding "/" delimiters are stripped.
func compilePattern(params []string) (*regexp.Regexp, error) {
	p := strings.Join(params, ",")
	if len(p) >= 2 && p[0] == '/' && p[len(p)-1] == '/' {
		p = p[1 : len(p)-1]
	}
	if re, ok := patterns.Load(p); ok {
		return re.(*regexp.Regexp), nil
	}
	re, err := regexp.Compile(p)
	if err != nil {
		return nil, err
	}
	patterns.Store(p, re)
	return re, nil
}

func regexParams(params []string) error {
	if len(params) == 0 {
		return fmt.Errorf("%w: regex needs a pattern", ErrInvalidParams)
	}
	if _, err := compilePattern(params); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidParams, err)
	}
	return nil
}

// checkRegex matches the text form of value, so numbers are matched by their
// decimal representation.
func checkRegex(value any, params []string, _ string, _ Record) bool {
	s, ok := textOf(value)
	if !ok {
		return false
	}
	re, err := compilePattern(params)
	return err == nil && re.MatchString(s)
}
