package datavalidation

import (
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// typeRules are described before every other rule of a field so bounds and
// enums see the final type.
var typeRules = map[string]bool{
	"string": true, "number": true, "integer": true,
	"boolean": true, "array": true, "object": true,
}

// Schema documents rules as an OpenAPI object schema. Dot paths become nested
// object properties; "required" fills the parent's required list. Custom
// rules from reg are documented in the property description.
//
// The same configuration errors Validate reports are returned here, so
// Schema doubles as a startup check of a rule map.
func Schema(rules Rules, reg *Registry) (*openapi3.Schema, error) {
	root := openapi3.NewObjectSchema()

	fields := make([]string, 0, len(rules))
	for f := range rules {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	for _, field := range fields {
		set, err := ParseRules(rules[field])
		if err != nil {
			return nil, &ConfigError{Field: field, Err: err}
		}
		parent, name := ensurePath(root, field)
		ref := parent.Properties[name]
		if ref == nil || ref.Value == nil {
			ref = openapi3.NewSchemaRef("", openapi3.NewSchema())
			parent.Properties[name] = ref
		}
		t := schemaTarget{parent: parent, name: name, prop: ref.Value, kind: schemaKind(set)}

		for _, typePass := range []bool{true, false} {
			for _, r := range set {
				if err := describeRule(t, r, reg, typePass); err != nil {
					return nil, &ConfigError{Field: field, Rule: r.Name, Err: err}
				}
			}
		}
	}
	return root, nil
}

func describeRule(t schemaTarget, r Rule, reg *Registry, typePass bool) error {
	if _, ok := reg.Lookup(r.Name); ok {
		if !typePass {
			appendDescription(t.prop, r.String()+".")
		}
		return nil
	}
	b, ok := lookupBuiltin(r.Name)
	if !ok {
		return ErrUnknownRule
	}
	if b.params != nil {
		if err := b.params(r.Params); err != nil {
			return err
		}
	}
	if b.describe != nil && typeRules[canonical(r.Name)] == typePass {
		b.describe(t, r.Params)
	}
	return nil
}

// ensurePath returns the object schema holding the last segment of path,
// creating intermediate objects, and that segment.
func ensurePath(root *openapi3.Schema, path string) (*openapi3.Schema, string) {
	segs := strings.Split(path, ".")
	cur := root
	for _, seg := range segs[:len(segs)-1] {
		ref := cur.Properties[seg]
		if ref == nil || ref.Value == nil {
			ref = openapi3.NewSchemaRef("", openapi3.NewObjectSchema())
			cur.Properties[seg] = ref
		}
		if ref.Value.Type == nil {
			ref.Value.Type = &openapi3.Types{typeObject}
		}
		if ref.Value.Properties == nil {
			ref.Value.Properties = openapi3.Schemas{}
		}
		cur = ref.Value
	}
	return cur, segs[len(segs)-1]
}

// schemaKind picks the size kind bounds document, from the first rule that
// implies one.
func schemaKind(set RuleSet) string {
	for _, r := range set {
		switch canonical(r.Name) {
		case "number", "integer":
			return kindNumeric
		case "string", "email", "url", "uuid", "date", "ip", "json",
			"alpha", "alpha_num", "alpha_dash", "has_alpha", "regex":
			return kindString
		case "array", "distinct":
			return kindArray
		}
	}
	return ""
}

// ErrorMapSchema returns the schema of an [ErrorMap] as rendered in JSON.
func ErrorMapSchema() *openapi3.Schema {
	return openapi3.NewObjectSchema().
		WithAdditionalProperties(openapi3.NewArraySchema().WithItems(openapi3.NewStringSchema()))
}
