package datavalidation

import (
	"regexp"
	"strconv"
	"strings"
)

var placeholderRegex = regexp.MustCompile(`:([A-Za-z_][A-Za-z0-9_]*)`)

// messageFor picks the template for a failed rule and interpolates it.
//
// Precedence: messages["field.rule"], messages["rule"], the registry's
// template, the built-in typed default ("min.string"), the built-in default,
// and finally ":field is invalid". Overrides are looked up under the rule
// name as written first, then under its catalog name, so "name.required"
// also serves a rule written "Required".
func messageFor(messages Messages, reg *Registry, field string, r Rule, value any) string {
	return interpolate(templateFor(messages, reg, field, r.Name, value), field, r, value)
}

func templateFor(messages Messages, reg *Registry, field, rule string, value any) string {
	name := canonical(rule)
	keys := []string{rule}
	if name != rule {
		keys = append(keys, name)
	}
	for _, k := range keys {
		if m, ok := messages[field+"."+k]; ok {
			return m
		}
	}
	for _, k := range keys {
		if m, ok := messages[k]; ok {
			return m
		}
	}
	if m, ok := reg.Message(rule); ok {
		return m
	}
	if kind := sizeKind(value); kind != "" {
		if m, ok := defaultMessages[name+"."+kind]; ok {
			return m
		}
	}
	if m, ok := defaultMessages[name]; ok {
		return m
	}
	return fallbackMessage
}

// interpolate replaces placeholders in template. Unknown placeholders and
// indexed params out of range are left untouched.
func interpolate(template, field string, r Rule, value any) string {
	if !strings.Contains(template, ":") {
		return template
	}
	return placeholderRegex.ReplaceAllStringFunc(template, func(m string) string {
		if s, ok := placeholder(m[1:], field, r, value); ok {
			return s
		}
		return m
	})
}

func placeholder(name, field string, r Rule, value any) (string, bool) {
	param := func(i int) (string, bool) {
		if i < 0 || i >= len(r.Params) {
			return "", false
		}
		return r.Params[i], true
	}

	switch name {
	case "field", "attribute":
		return field, true
	case "min", "value", "other":
		return param(0)
	case "max":
		if canonical(r.Name) == "between" {
			return param(1)
		}
		return param(0)
	case "values":
		if len(r.Params) == 0 {
			return "", false
		}
		return strings.Join(r.Params, ", "), true
	case "input":
		if s, ok := textOf(value); ok {
			return s, true
		}
		return "", true
	}

	if rest, ok := strings.CutPrefix(name, "param"); ok {
		if i, err := strconv.Atoi(rest); err == nil {
			return param(i)
		}
	}
	return "", false
}
