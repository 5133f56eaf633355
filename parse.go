package datavalidation

import (
	"fmt"
	"strings"
)

// ParseRules normalizes a rule specification into its canonical RuleSet.
//
// A string is split on "|" into tokens; a []string holds one token per
// element. Each token is split on its first ":" into the rule name and a
// comma-separated param list, every part trimmed of whitespace. Pre-parsed
// Rule values keep their params; only their names are trimmed. Any other type
// yields an empty set.
//
// A token whose name is empty after trimming returns ErrEmptyRuleName.
func ParseRules(spec any) (RuleSet, error) {
	switch s := spec.(type) {
	case string:
		return parseTokens(strings.Split(s, "|"))
	case []string:
		return parseTokens(s)
	case RuleSet:
		return trimNames(s)
	case []Rule:
		return trimNames(s)
	case Rule:
		return trimNames([]Rule{s})
	case []any:
		return parseAny(s)
	default:
		return RuleSet{}, nil
	}
}

// MustParseRules is like ParseRules but panics on error.
func MustParseRules(spec any) RuleSet {
	rs, err := ParseRules(spec)
	if err != nil {
		panic(err)
	}
	return rs
}

func parseTokens(tokens []string) (RuleSet, error) {
	rs := make(RuleSet, 0, len(tokens))
	for _, tok := range tokens {
		r, err := parseToken(tok)
		if err != nil {
			return nil, err
		}
		rs = append(rs, r)
	}
	return rs, nil
}

func parseToken(tok string) (Rule, error) {
	name, raw, hasParams := strings.Cut(tok, ":")
	name = strings.TrimSpace(name)
	if name == "" {
		return Rule{}, fmt.Errorf("%w in token %q", ErrEmptyRuleName, tok)
	}
	r := Rule{Name: name}
	if hasParams {
		parts := strings.Split(raw, ",")
		r.Params = make([]string, len(parts))
		for i, p := range parts {
			r.Params[i] = strings.TrimSpace(p)
		}
	}
	return r, nil
}

// parseAny handles lists decoded from YAML or JSON, whose elements are rule
// tokens or {name, params} mappings.
func parseAny(items []any) (RuleSet, error) {
	rs := make(RuleSet, 0, len(items))
	for i, item := range items {
		switch it := item.(type) {
		case string:
			r, err := parseToken(it)
			if err != nil {
				return nil, err
			}
			rs = append(rs, r)
		case Rule:
			rs = append(rs, it)
		case map[string]any:
			r, err := ruleFromMap(it)
			if err != nil {
				return nil, err
			}
			rs = append(rs, r)
		default:
			return nil, fmt.Errorf("%w: element %d has type %T", ErrInvalidRule, i, item)
		}
	}
	return trimNames(rs)
}

func ruleFromMap(m map[string]any) (Rule, error) {
	name, _ := m["name"].(string)
	r := Rule{Name: strings.TrimSpace(name)}
	switch p := m["params"].(type) {
	case nil:
	case []any:
		r.Params = make([]string, len(p))
		for i := range p {
			r.Params[i] = fmt.Sprint(p[i])
		}
	case []string:
		r.Params = p
	default:
		r.Params = []string{fmt.Sprint(p)}
	}
	return r, nil
}

// trimNames trims the names of pre-parsed rules. The caller's slice is
// copied before any name is rewritten.
func trimNames(rs []Rule) (RuleSet, error) {
	out := RuleSet(rs)
	copied := false
	for i := range rs {
		name := strings.TrimSpace(rs[i].Name)
		if name == "" {
			return nil, fmt.Errorf("%w at position %d", ErrEmptyRuleName, i)
		}
		if name == rs[i].Name {
			continue
		}
		if !copied {
			out = append(RuleSet(nil), rs...)
			copied = true
		}
		out[i].Name = name
	}
	return out, nil
}
