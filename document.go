package datavalidation

import "strings"

type (
	// Record is a nested data record: string keys mapped to strings, numbers,
	// booleans, nested mappings, sequences or nil.
	Record = map[string]any

	// Rule is a named, parameterized predicate applied to one field's value.
	Rule struct {
		Name   string   `json:"name" yaml:"name"`
		Params []string `json:"params,omitempty" yaml:"params,omitempty"`
	}

	// RuleSet is the canonical, ordered rule sequence declared for one field.
	RuleSet []Rule

	// Rules maps a field path to its rule specification. A specification is a
	// pipe-delimited string, a []string of rule tokens, a []any of tokens or
	// {name, params} mappings, a Rule, a []Rule or a RuleSet.
	Rules map[string]any

	// Messages maps "field.rule" or "rule" to a message template.
	Messages map[string]string

	// RuleFunc reports whether value satisfies a rule. The whole record is
	// passed so a rule may compare against sibling fields.
	RuleFunc func(value any, params []string, field string, record Record) bool
)

// String renders the rule in its token form, e.g. "between:18,65".
func (r Rule) String() string {
	if len(r.Params) == 0 {
		return r.Name
	}
	return r.Name + ":" + strings.Join(r.Params, ",")
}

// String renders the set in pipe-delimited form.
func (s RuleSet) String() string {
	parts := make([]string, len(s))
	for i, r := range s {
		parts[i] = r.String()
	}
	return strings.Join(parts, "|")
}

// Has reports whether the set contains a rule with the given name, ignoring
// case.
func (s RuleSet) Has(name string) bool {
	for _, r := range s {
		if strings.EqualFold(r.Name, name) {
			return true
		}
	}
	return false
}
