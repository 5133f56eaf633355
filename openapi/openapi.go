package openapi

import (
	"errors"
	"net/http"

	dv "github.com/Gobd/datavalidation"
	"github.com/getkin/kin-openapi/openapi3"
)

// StatusUnprocessable is the response documented for records failing validation.
const StatusUnprocessable = "422"

// Response describes an HTTP response with a description and body schemas.
type Response struct {
	Desc    string
	Schemas []*openapi3.SchemaRef
}

// Endpoint describes a single API operation for the convenience helpers
// [Get], [Post], [Put], [Patch], and [Delete].
type Endpoint struct {
	Summary     string
	Description string
	Request     dv.Rules            // rules validating the request body
	Registry    *dv.Registry        // custom rules referenced by Request
	Response    *openapi3.SchemaRef // single 200 response schema (convenience)
	Responses   map[string]Response // full response map (overrides Response if both set)
}

// NewRequestMust is like [NewRequest] but panics on error.
func NewRequestMust(rules dv.Rules, reg *dv.Registry) *openapi3.RequestBodyRef {
	o, err := NewRequest(rules, reg)
	if err != nil {
		panic(err)
	}
	return o
}

// NewRequest generates an OpenAPI request body from the rules validating it.
func NewRequest(rules dv.Rules, reg *dv.Registry) (*openapi3.RequestBodyRef, error) {
	if len(rules) == 0 {
		return nil, errors.New("no rules given")
	}
	schema, err := NewSchemaRefForRules(rules, reg)
	if err != nil {
		return nil, err
	}
	return &openapi3.RequestBodyRef{
		Value: openapi3.NewRequestBody().
			WithRequired(true).
			WithContent(openapi3.NewContentWithJSONSchemaRef(schema)),
	}, nil
}

// NewResponseMust is like [NewResponse] but panics on error.
// Map key is status code (e.g. "200", "4xx").
func NewResponseMust(vs map[string]Response) *openapi3.Responses {
	o, err := NewResponse(vs)
	if err != nil {
		panic(err)
	}
	return o
}

// NewResponse creates an OpenAPI responses object.
// Map key is status code (e.g. "200", "4xx").
func NewResponse(vs map[string]Response) (*openapi3.Responses, error) {
	if len(vs) == 0 {
		return nil, errors.New("no values given")
	}

	opts := make([]openapi3.NewResponsesOption, 0, len(vs))
	for statusCode, r := range vs {
		desc := r.Desc
		resp := &openapi3.Response{Description: &desc}

		switch len(r.Schemas) {
		case 0:
		case 1:
			resp.Content = openapi3.NewContentWithJSONSchemaRef(r.Schemas[0])
		default:
			resp.Content = openapi3.NewContentWithJSONSchemaRef(&openapi3.SchemaRef{
				Value: &openapi3.Schema{OneOf: r.Schemas},
			})
		}
		opts = append(opts, openapi3.WithName(statusCode, resp))
	}

	return openapi3.NewResponses(opts...), nil
}

// DocBase returns a basic OpenAPI 3.0.3 document structure.
func DocBase(serviceName, description, version string) *openapi3.T {
	return &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       serviceName,
			Description: description,
			Version:     version,
		},
		Paths: &openapi3.Paths{},
	}
}

// AddPath adds an operation to the OpenAPI spec at the given path and method.
func AddPath(path, method string, s *openapi3.T, op *openapi3.Operation) {
	p := s.Paths.Value(path)
	if p == nil {
		p = &openapi3.PathItem{}
	}

	switch method {
	case http.MethodGet:
		p.Get = op
	case http.MethodPost:
		p.Post = op
	case http.MethodPut:
		p.Put = op
	case http.MethodPatch:
		p.Patch = op
	case http.MethodDelete:
		p.Delete = op
	}

	s.Paths.Set(path, p)
}

// addEndpoint builds an [openapi3.Operation] from ep and registers it at path+method.
func addEndpoint(doc *openapi3.T, path, method, operationID string, ep Endpoint) {
	op := &openapi3.Operation{
		OperationID: operationID,
		Summary:     ep.Summary,
		Description: ep.Description,
	}

	responses := make(map[string]Response, len(ep.Responses)+2)
	for code, r := range ep.Responses {
		responses[code] = r
	}
	if ep.Responses == nil && ep.Response != nil {
		responses["200"] = Response{Desc: "OK", Schemas: []*openapi3.SchemaRef{ep.Response}}
	}

	if ep.Request != nil {
		op.RequestBody = NewRequestMust(ep.Request, ep.Registry)
		if _, ok := responses[StatusUnprocessable]; !ok {
			responses[StatusUnprocessable] = Response{Desc: "Validation failed", Schemas: []*openapi3.SchemaRef{ErrorMapRef()}}
		}
	}

	if len(responses) > 0 {
		op.Responses = NewResponseMust(responses)
	} else {
		op.Responses = openapi3.NewResponses()
	}

	AddPath(path, method, doc, op)
}

// Get registers a GET endpoint on doc.
func Get(doc *openapi3.T, path, operationID string, ep Endpoint) {
	addEndpoint(doc, path, http.MethodGet, operationID, ep)
}

// Post registers a POST endpoint on doc.
func Post(doc *openapi3.T, path, operationID string, ep Endpoint) {
	addEndpoint(doc, path, http.MethodPost, operationID, ep)
}

// Put registers a PUT endpoint on doc.
func Put(doc *openapi3.T, path, operationID string, ep Endpoint) {
	addEndpoint(doc, path, http.MethodPut, operationID, ep)
}

// Patch registers a PATCH endpoint on doc.
func Patch(doc *openapi3.T, path, operationID string, ep Endpoint) {
	addEndpoint(doc, path, http.MethodPatch, operationID, ep)
}

// Delete registers a DELETE endpoint on doc.
func Delete(doc *openapi3.T, path, operationID string, ep Endpoint) {
	addEndpoint(doc, path, http.MethodDelete, operationID, ep)
}
