package datavalidation

import (
	"encoding/json"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Failure is one failed rule.
type Failure struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// Result is the outcome of one validation run. It is never modified after
// Validate returns it.
type Result struct {
	failures []Failure
	errors   ErrorMap
}

func newResult(failures []Failure) *Result {
	errs := make(ErrorMap, len(failures))
	for _, f := range failures {
		errs[f.Field] = append(errs[f.Field], f.Message)
	}
	return &Result{failures: failures, errors: errs}
}

// Passed reports whether every rule passed.
func (r *Result) Passed() bool {
	return len(r.failures) == 0
}

// Failed is the negation of Passed.
func (r *Result) Failed() bool {
	return !r.Passed()
}

// Errors returns a copy of the per-field messages.
func (r *Result) Errors() ErrorMap {
	return r.errors.Clone()
}

// FirstError returns the first message for the given field. Without a field
// it returns the message of the first field that failed, in evaluation order.
// It returns "" when there is no such message.
func (r *Result) FirstError(field ...string) string {
	if len(field) > 0 {
		return r.errors.First(field[0])
	}
	if len(r.failures) == 0 {
		return ""
	}
	return r.failures[0].Message
}

// Failures returns the failed rules in evaluation order.
func (r *Result) Failures() []Failure {
	return append([]Failure(nil), r.failures...)
}

// Err returns the failures as ozzo-validation errors keyed by field, each
// with the code "validation_<rule>", or nil when the record passed.
func (r *Result) Err() error {
	if r.Passed() {
		return nil
	}
	errs := validation.Errors{}
	for _, f := range r.failures {
		if _, ok := errs[f.Field]; ok {
			continue
		}
		errs[f.Field] = validation.NewError("validation_"+f.Rule, f.Message)
	}
	return errs
}

// MarshalJSON renders {"passed": bool, "errors": {...}}.
func (r *Result) MarshalJSON() ([]byte, error) {
	errs := r.errors
	if errs == nil {
		errs = ErrorMap{}
	}
	return json.Marshal(struct {
		Passed bool     `json:"passed"`
		Errors ErrorMap `json:"errors"`
	}{r.Passed(), errs})
}
