package openapi

import (
	dv "github.com/Gobd/datavalidation"
	"github.com/getkin/kin-openapi/openapi3"
)

// NewSchemaRefForRules generates an OpenAPI schema for records validated by
// rules. Custom rules are looked up in reg, which may be nil.
func NewSchemaRefForRules(rules dv.Rules, reg *dv.Registry) (*openapi3.SchemaRef, error) {
	s, err := dv.Schema(rules, reg)
	if err != nil {
		return nil, err
	}
	return openapi3.NewSchemaRef("", s), nil
}

// ErrorMapRef returns the schema of a validation error map.
func ErrorMapRef() *openapi3.SchemaRef {
	return openapi3.NewSchemaRef("", dv.ErrorMapSchema())
}
