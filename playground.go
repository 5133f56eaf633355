package datavalidation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Tag returns a handler that validates the value with a go-playground
// validator tag such as "uuid4", "hexcolor" or "oneof". Rule params become
// the tag param joined by spaces, so "color:red,green" registered with
// Tag(v, "oneof") runs "oneof=red green".
//
// Absent and nil values are validated as the empty string. A tag that
// panics on its params (e.g. "len" without a number) fails the rule.
func Tag(v *validator.Validate, tag string) RuleFunc {
	return func(value any, params []string, _ string, _ Record) (ok bool) {
		defer func() {
			if recover() != nil {
				ok = false
			}
		}()
		if !isFilled(value) {
			value = ""
		}
		t := tag
		if len(params) > 0 {
			t += "=" + strings.Join(params, " ")
		}
		return v.Var(value, t) == nil
	}
}

// RegisterTags registers one rule per entry of tags (rule name -> validator
// tag) in reg. Tags unknown to v return ErrInvalidRule; tags that panic
// without a param, such as "len", return ErrInvalidParams and should be
// registered with their param ("len=3") or through [Tag].
func RegisterTags(reg *Registry, v *validator.Validate, tags map[string]string) error {
	for name, tag := range tags {
		if err := probeTag(v, tag); err != nil {
			return err
		}
		if err := reg.Register(name, Tag(v, tag)); err != nil {
			return err
		}
	}
	return nil
}

// probeTag runs tag once so tags v does not know, and tags that cannot run
// without a param, are rejected at registration instead of failing every
// value later.
func probeTag(v *validator.Validate, tag string) (err error) {
	defer func() {
		r := recover()
		switch {
		case r == nil:
		case strings.Contains(fmt.Sprint(r), "Undefined validation function"):
			err = fmt.Errorf("%w: validator tag %q is not defined", ErrInvalidRule, tag)
		default:
			err = fmt.Errorf("%w: validator tag %q: %v", ErrInvalidParams, tag, r)
		}
	}()
	_ = v.Var("", tag)
	return nil
}
