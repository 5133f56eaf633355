package openapi_test

import (
	"net/http"
	"testing"

	dv "github.com/Gobd/datavalidation"
	"github.com/Gobd/datavalidation/openapi"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequest(t *testing.T) {
	body, err := openapi.NewRequest(itemRules, nil)
	require.NoError(t, err)
	assert.True(t, body.Value.Required)

	media := body.Value.Content.Get("application/json")
	require.NotNil(t, media)
	s := media.Schema.Value
	assert.ElementsMatch(t, []string{"name", "price"}, s.Required)
	assert.True(t, s.Properties["price"].Value.ExclusiveMin)

	_, err = openapi.NewRequest(nil, nil)
	assert.Error(t, err)

	_, err = openapi.NewRequest(dv.Rules{"a": "nope"}, nil)
	assert.ErrorIs(t, err, dv.ErrUnknownRule)
}

func TestNewRequestMust(t *testing.T) {
	assert.Panics(t, func() { openapi.NewRequestMust(dv.Rules{}, nil) })

	reg := dv.NewRegistry().MustRegister("nope", func(any, []string, string, dv.Record) bool { return true })
	assert.NotPanics(t, func() { openapi.NewRequestMust(dv.Rules{"a": "nope"}, reg) })
}

func TestNewResponse(t *testing.T) {
	_, err := openapi.NewResponse(nil)
	assert.Error(t, err)

	a := openapi3.NewSchemaRef("", openapi3.NewStringSchema())
	b := openapi3.NewSchemaRef("", openapi3.NewIntegerSchema())
	resp := openapi.NewResponseMust(map[string]openapi.Response{
		"200": {Desc: "OK", Schemas: []*openapi3.SchemaRef{a}},
		"201": {Desc: "Created", Schemas: []*openapi3.SchemaRef{a, b}},
		"204": {Desc: "No Content"},
	})

	ok := resp.Value("200").Value
	assert.Equal(t, "OK", *ok.Description)
	assert.Same(t, a, ok.Content.Get("application/json").Schema)

	created := resp.Value("201").Value
	assert.Len(t, created.Content.Get("application/json").Schema.Value.OneOf, 2)

	assert.Nil(t, resp.Value("204").Value.Content)
}

func TestAddEndpoint_ValidationResponse(t *testing.T) {
	doc := openapi.DocBase("Shop API", "", "1.0.0")
	custom := openapi.Response{Desc: "Bad item"}

	openapi.Put(doc, "/items/{id}", "replaceItem", openapi.Endpoint{Request: itemRules})
	openapi.Patch(doc, "/items/{id}", "updateItem", openapi.Endpoint{
		Request:   itemRules,
		Responses: map[string]openapi.Response{openapi.StatusUnprocessable: custom},
	})
	openapi.Delete(doc, "/items/{id}", "deleteItem", openapi.Endpoint{})

	item := doc.Paths.Value("/items/{id}")
	require.NotNil(t, item)

	put := item.Put.Responses.Value(openapi.StatusUnprocessable)
	require.NotNil(t, put)
	errs := put.Value.Content.Get("application/json").Schema.Value
	assert.True(t, errs.Type.Is(openapi3.TypeObject))
	assert.NotNil(t, errs.AdditionalProperties.Schema)

	patch := item.Patch.Responses.Value(openapi.StatusUnprocessable)
	assert.Equal(t, "Bad item", *patch.Value.Description)

	assert.Nil(t, item.Delete.RequestBody)
	assert.Nil(t, item.Delete.Responses.Value(openapi.StatusUnprocessable))
}

func TestAddPath(t *testing.T) {
	doc := openapi.DocBase("svc", "", "1")
	op := &openapi3.Operation{OperationID: "ping"}
	openapi.AddPath("/ping", http.MethodGet, doc, op)
	openapi.AddPath("/ping", http.MethodPost, doc, &openapi3.Operation{OperationID: "pong"})

	p := doc.Paths.Value("/ping")
	assert.Same(t, op, p.Get)
	assert.Equal(t, "pong", p.Post.OperationID)
}

func TestDocValidates(t *testing.T) {
	doc := openapi.DocBase("Shop API", "Example API", "1.0.0")
	openapi.Post(doc, "/items", "createItem", openapi.Endpoint{Request: itemRules})
	assert.NoError(t, doc.Validate(t.Context()))
}
