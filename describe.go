package datavalidation

import (
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// schemaTarget is the property a rule documents.
type schemaTarget struct {
	parent *openapi3.Schema
	name   string
	prop   *openapi3.Schema
	kind   string
}

// describeFunc documents a rule on a schema property.
type describeFunc func(t schemaTarget, params []string)

const (
	typeString  = openapi3.TypeString
	typeNumber  = openapi3.TypeNumber
	typeInteger = openapi3.TypeInteger
	typeBoolean = openapi3.TypeBoolean
	typeArray   = openapi3.TypeArray
	typeObject  = openapi3.TypeObject
)

func appendDescription(s *openapi3.Schema, desc string) {
	if s.Description != "" && !strings.HasSuffix(s.Description, " ") {
		s.Description += " "
	}
	s.Description += desc
}

func describeRequired(t schemaTarget, _ []string) {
	if !slices.Contains(t.parent.Required, t.name) {
		t.parent.Required = append(t.parent.Required, t.name)
	}
}

func describeType(typ string) describeFunc {
	return func(t schemaTarget, _ []string) {
		t.prop.Type = &openapi3.Types{typ}
		switch typ {
		case typeArray:
			if t.prop.Items == nil {
				t.prop.Items = openapi3.NewSchemaRef("", openapi3.NewSchema())
			}
		case typeObject:
			if t.prop.Properties == nil {
				t.prop.Properties = openapi3.Schemas{}
			}
		}
	}
}

func describeFormat(format string) describeFunc {
	return func(t schemaTarget, _ []string) {
		if t.prop.Type == nil {
			t.prop.Type = &openapi3.Types{typeString}
		}
		t.prop.Format = format
	}
}

func describeNote(note string) describeFunc {
	return func(t schemaTarget, _ []string) {
		appendDescription(t.prop, note+".")
	}
}

func describeParamNote(note string) describeFunc {
	return func(t schemaTarget, params []string) {
		appendDescription(t.prop, note+" "+strings.Join(params, ", ")+".")
	}
}

func describePattern(t schemaTarget, params []string) {
	if re, err := compilePattern(params); err == nil {
		t.prop.Pattern = re.String()
	}
}

// describeBound sets the lower or upper bound matching the property's kind.
// Exclusive bounds are kept exclusive for numbers and shifted by one for
// lengths.
func describeBound(lower, exclusive bool) describeFunc {
	return func(t schemaTarget, params []string) {
		n, ok := paramFloat(params, 0)
		if !ok {
			return
		}
		switch t.kind {
		case kindNumeric:
			if lower {
				t.prop.Min = &n
				t.prop.ExclusiveMin = exclusive
			} else {
				t.prop.Max = &n
				t.prop.ExclusiveMax = exclusive
			}
		case kindString, kindArray:
			c, ok := count(n, lower, exclusive)
			if !ok {
				return
			}
			setCount(t.prop, t.kind, lower, c)
		default:
			appendDescription(t.prop, boundNote(lower, exclusive)+" "+params[0]+".")
		}
	}
}

func describeBetween(t schemaTarget, params []string) {
	describeBound(true, false)(t, params[:1])
	describeBound(false, false)(t, params[1:])
}

func describeSize(t schemaTarget, params []string) {
	describeBound(true, false)(t, params)
	describeBound(false, false)(t, params)
}

func boundNote(lower, exclusive bool) string {
	switch {
	case lower && exclusive:
		return "greater than"
	case lower:
		return "at least"
	case exclusive:
		return "less than"
	default:
		return "at most"
	}
}

// count converts a bound to a whole length.
func count(n float64, lower, exclusive bool) (uint64, bool) {
	switch {
	case lower && exclusive:
		n = math.Floor(n) + 1
	case lower:
		n = math.Ceil(n)
	case exclusive:
		n = math.Ceil(n) - 1
	default:
		n = math.Floor(n)
	}
	if n < 0 {
		return 0, false
	}
	return uint64(n), true
}

func setCount(s *openapi3.Schema, kind string, lower bool, c uint64) {
	switch {
	case kind == kindString && lower:
		s.MinLength = c
	case kind == kindString:
		s.MaxLength = &c
	case lower:
		s.MinItems = c
	default:
		s.MaxItems = &c
	}
}

func enumValues(kind string, params []string) []any {
	out := make([]any, len(params))
	for i, p := range params {
		out[i] = p
		if kind == kindNumeric {
			if f, err := strconv.ParseFloat(p, 64); err == nil {
				out[i] = f
			}
		}
	}
	return out
}

func describeEnum(t schemaTarget, params []string) {
	t.prop.Enum = enumValues(t.kind, params)
}

func describeNotEnum(t schemaTarget, params []string) {
	t.prop.Not = openapi3.NewSchemaRef("", &openapi3.Schema{Enum: enumValues(t.kind, params)})
}

func describeConfirmed(t schemaTarget, _ []string) {
	appendDescription(t.prop, "must match "+t.name+ConfirmationSuffix+".")
}

func describeDistinct(t schemaTarget, _ []string) {
	t.prop.UniqueItems = true
}

func describeNullable(t schemaTarget, _ []string) {
	t.prop.Nullable = true
}
