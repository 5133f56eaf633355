package datavalidation

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// FromStruct converts v into a Record through its JSON encoding, so json
// struct tags name the fields and nested structs become nested records.
// Numbers become [json.Number].
func FromStruct(v any) (Record, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var rec Record
	if err := dec.Decode(&rec); err != nil {
		return nil, fmt.Errorf("%T does not encode as a JSON object: %w", v, err)
	}
	if rec == nil {
		rec = Record{}
	}
	return rec, nil
}

// ValidateStruct validates the struct v against rules keyed by JSON field
// names. See [FromStruct].
func ValidateStruct(v any, rules Rules, opts ...Option) (*Result, error) {
	rec, err := FromStruct(v)
	if err != nil {
		return nil, err
	}
	return New(rec, rules, opts...).Validate()
}
