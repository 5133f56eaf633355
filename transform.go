package datavalidation

import (
	"strings"

	"github.com/Gobd/datavalidation/transform"
)

// WithStringFunc applies f to every string in the record before validation.
// The caller's record is not modified; rules see a transformed copy.
func WithStringFunc(f func(string) string) Option {
	return func(v *Validator) { v.strFunc = f }
}

// WithTrimSpace trims surrounding whitespace from every string before
// validation, so "  " fails required.
func WithTrimSpace() Option {
	return WithStringFunc(strings.TrimSpace)
}

func stringFuncRecord(record any, f func(string) string) any {
	return transform.StringFunc(record, f)
}
