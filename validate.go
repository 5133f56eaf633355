package datavalidation

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"reflect"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Validator validates records against a rule map. A Validator holds no
// per-run state and may be reused, also from several goroutines.
type Validator struct {
	record   any
	rules    Rules
	messages Messages
	registry *Registry
	logger   *slog.Logger
	order    []string
	strFunc  func(string) string
}

// Option configures a Validator.
type Option func(*Validator)

// WithMessages sets the message overrides, keyed by "field.rule" or "rule".
func WithMessages(m Messages) Option {
	return func(v *Validator) { v.messages = m }
}

// WithRegistry sets the registry of custom rules. Without it only built-in
// rules are known.
func WithRegistry(r *Registry) Option {
	return func(v *Validator) { v.registry = r }
}

// WithLogger sets the logger. Failures are logged at Debug level and
// configuration errors at Warn level. Values are never logged.
func WithLogger(l *slog.Logger) Option {
	return func(v *Validator) {
		if l != nil {
			v.logger = l
		}
	}
}

// WithOrder evaluates the given fields first, in that order. Remaining
// fields follow in sorted order.
func WithOrder(fields ...string) Option {
	return func(v *Validator) { v.order = fields }
}

// New returns a Validator for record. Call Validate to run it.
func New(record any, rules Rules, opts ...Option) *Validator {
	v := &Validator{
		record: record,
		rules:  rules,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate runs every field's rules against the record given to New.
//
// A non-nil error is a configuration error (see [ConfigError]) and no Result
// is returned: an unparseable rule, an unknown rule name, invalid rule params
// or a record that is not a keyed mapping. Data failing a rule is reported
// through the Result.
func (v *Validator) Validate() (*Result, error) {
	return v.ValidateRecord(v.record)
}

// ValidateRecord is like Validate but runs against record instead of the
// record given to New.
func (v *Validator) ValidateRecord(record any) (*Result, error) {
	plan, err := v.compile()
	if err != nil {
		v.logger.Warn("invalid rule specification", slog.Any("error", err))
		return nil, err
	}

	if v.strFunc != nil {
		record = stringFuncRecord(record, v.strFunc)
	}
	rec, err := asRecord(record)
	if err != nil {
		v.logger.Warn("record is not traversable", slog.Any("error", err))
		return nil, err
	}

	var failures []Failure
	for _, fp := range plan {
		if f, failed := v.evaluate(fp, rec); failed {
			v.logger.Debug("validation failed", slog.String("field", f.Field), slog.String("rule", f.Rule))
			failures = append(failures, f)
		}
	}
	return newResult(failures), nil
}

type compiledRule struct {
	rule  Rule
	check RuleFunc
	skip  func(any) bool
}

type fieldPlan struct {
	field string
	rules []compiledRule
}

// evaluate runs the field's rules in order and stops at the first failure.
func (v *Validator) evaluate(fp fieldPlan, rec Record) (Failure, bool) {
	value, err := Resolve(rec, fp.field)
	if err != nil {
		value = Absent
	}
	for _, cr := range fp.rules {
		if cr.skip != nil && cr.skip(value) {
			return Failure{}, false
		}
		if cr.check(value, cr.rule.Params, fp.field, rec) {
			continue
		}
		return Failure{
			Field:   fp.field,
			Rule:    cr.rule.Name,
			Message: messageFor(v.messages, v.registry, fp.field, cr.rule, value),
		}, true
	}
	return Failure{}, false
}

// compile parses and resolves every rule before any value is looked at, so
// configuration errors never depend on the data.
func (v *Validator) compile() ([]fieldPlan, error) {
	fields := v.fieldOrder()
	plan := make([]fieldPlan, 0, len(fields))
	for _, field := range fields {
		set, err := ParseRules(v.rules[field])
		if err != nil {
			return nil, &ConfigError{Field: field, Err: err}
		}
		fp := fieldPlan{field: field, rules: make([]compiledRule, 0, len(set))}
		for _, r := range set {
			cr, err := v.resolveRule(r)
			if err != nil {
				return nil, &ConfigError{Field: field, Rule: r.Name, Err: err}
			}
			fp.rules = append(fp.rules, cr)
		}
		plan = append(plan, fp)
	}
	return plan, nil
}

// resolveRule looks the rule up in the registry first, then in the built-in
// catalog.
func (v *Validator) resolveRule(r Rule) (compiledRule, error) {
	if fn, ok := v.registry.Lookup(r.Name); ok {
		return compiledRule{rule: r, check: fn}, nil
	}
	b, ok := lookupBuiltin(r.Name)
	if !ok {
		return compiledRule{}, ErrUnknownRule
	}
	if b.params != nil {
		if err := b.params(r.Params); err != nil {
			return compiledRule{}, err
		}
	}
	return compiledRule{rule: r, check: b.check, skip: b.skip}, nil
}

func (v *Validator) fieldOrder() []string {
	seen := make(map[string]bool, len(v.rules))
	fields := make([]string, 0, len(v.rules))
	for _, f := range v.order {
		if _, ok := v.rules[f]; ok && !seen[f] {
			seen[f] = true
			fields = append(fields, f)
		}
	}
	rest := make([]string, 0, len(v.rules)-len(fields))
	for f := range v.rules {
		if !seen[f] {
			rest = append(rest, f)
		}
	}
	sort.Strings(rest)
	return append(fields, rest...)
}

// asRecord returns record as a Record. Other string-keyed map types are
// copied; nil is an empty record.
func asRecord(record any) (Record, error) {
	v, isNil := validation.Indirect(record)
	if isNil {
		return Record{}, nil
	}
	if r, ok := v.(Record); ok {
		return r, nil
	}
	if !isMapping(v) {
		return nil, &ConfigError{Err: ErrNotTraversable}
	}
	rv := reflect.ValueOf(v)
	out := make(Record, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out, nil
}

// Validate validates record against rules with the built-in rules only.
func Validate(record any, rules Rules, messages Messages) (*Result, error) {
	return New(record, rules, WithMessages(messages)).Validate()
}

// UnmarshalAndValidate decodes the JSON document b and validates it. Numbers
// are decoded as [json.Number] so integers keep their precision.
func UnmarshalAndValidate(b []byte, rules Rules, opts ...Option) (*Result, error) {
	return DecodeAndValidate(bytes.NewReader(b), rules, opts...)
}

// DecodeAndValidate reads one JSON document from r and validates it. Use this
// instead of [UnmarshalAndValidate] when reading directly from an
// [io.Reader] such as an HTTP request body.
func DecodeAndValidate(r io.Reader, rules Rules, opts ...Option) (*Result, error) {
	decoder := json.NewDecoder(r)
	decoder.UseNumber()
	var record any
	if err := decoder.Decode(&record); err != nil {
		return nil, err
	}
	return New(record, rules, opts...).Validate()
}
