// Package datavalidation validates nested data records against declarative,
// per-field rule specifications.
//
// Rules are declared per field as a pipe-delimited string, a list of rule
// strings, or pre-parsed [Rule] values. Field names may address nested
// values with dot notation:
//
//	rules := datavalidation.Rules{
//	    "name":         "required|string|min:3|max:20",
//	    "email":        "required|email",
//	    "address.city": []string{"required", "in:Tehran,Shiraz"},
//	}
//
// Then validate with a single call:
//
//	res, err := datavalidation.New(record, rules).Validate()
//	if err != nil {
//	    // broken rule declarations (unknown rule, empty rule name, ...)
//	}
//	if res.Failed() {
//	    fmt.Println(res.FirstError("email"))
//	}
//
// Evaluation stops at the first failing rule of each field. Custom rules are
// added to a [Registry] and injected with [WithRegistry]; error messages are
// overridden per field ("email.required") or per rule ("required") with
// [WithMessages].
//
// Sub-packages:
//   - openapi – OpenAPI documents for endpoints whose bodies are validated by a rule map
//   - transform – deep-copy string transformations of records
package datavalidation
