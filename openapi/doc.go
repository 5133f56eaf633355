// Package openapi documents validated endpoints in OpenAPI 3 documents. A
// request body is described from the same [datavalidation.Rules] used to
// validate it, and every endpoint with a request body gets a 422 response
// carrying the error map.
//
// Use [DocBase] to create a base document and register endpoints with [Get],
// [Post], [Put], [Patch], or [Delete]:
//
//	doc := openapi.DocBase("my-api", "My API", "1.0")
//	openapi.Post(doc, "/orders", "createOrder", openapi.Endpoint{
//	    Request: datavalidation.Rules{"customer": "required|string|max:200"},
//	})
package openapi
