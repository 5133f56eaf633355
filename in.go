package datavalidation

import (
	"fmt"
	"slices"
)

// checkIn passes when the text form of value equals one of the params.
func checkIn(value any, params []string, _ string, _ Record) bool {
	s, ok := textOf(value)
	return ok && slices.Contains(params, s)
}

// checkNotIn passes when the text form of value equals none of the params.
// Values with no text form (absent, nil, collections) equal nothing.
func checkNotIn(value any, params []string, _ string, _ Record) bool {
	s, ok := textOf(value)
	return !ok || !slices.Contains(params, s)
}

// minParams returns a params check requiring at least n params.
func minParams(n int) func([]string) error {
	return func(params []string) error {
		if len(params) < n {
			return fmt.Errorf("%w: want at least %d params, got %d", ErrInvalidParams, n, len(params))
		}
		return nil
	}
}
