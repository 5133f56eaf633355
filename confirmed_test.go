package datavalidation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCrossField(t *testing.T) {
	record := Record{
		"field_confirmation": "secret",
		"other":              "secret",
		"count":              json.Number("3"),
		"nested":             map[string]any{"v": "secret"},
	}

	tests := []struct {
		spec  string
		value any
		want  bool
	}{
		{spec: "confirmed", value: "secret", want: true},
		{spec: "confirmed", value: "Secret", want: false},
		{spec: "same:other", value: "secret", want: true},
		{spec: "same:nested.v", value: "secret", want: true},
		{spec: "same:count", value: 3, want: true},
		{spec: "same:missing", value: "secret", want: false},
		{spec: "different:other", value: "x", want: true},
		{spec: "different:other", value: "secret", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			assert.Equal(t, tt.want, runRule(t, tt.spec, tt.value, record))
		})
	}
}

func TestConditionalRequired(t *testing.T) {
	record := Record{"kind": "company", "email": "a@b.co", "phone": ""}

	tests := []struct {
		spec  string
		value any
		want  bool
	}{
		{spec: "required_if:kind,company", value: Absent, want: false},
		{spec: "required_if:kind,company", value: "Acme", want: true},
		{spec: "required_if:kind,person", value: Absent, want: true},
		{spec: "required_unless:kind,company", value: Absent, want: true},
		{spec: "required_unless:kind,person,other", value: "", want: false},
		{spec: "required_with:email", value: Absent, want: false},
		{spec: "required_with:phone", value: Absent, want: true},
		{spec: "required_with:phone,email", value: "x", want: true},
		{spec: "required_without:phone", value: Absent, want: false},
		{spec: "required_without:email", value: Absent, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			assert.Equal(t, tt.want, runRule(t, tt.spec, tt.value, record))
		})
	}
}

func TestValuesEqual(t *testing.T) {
	assert.True(t, valuesEqual(Absent, Absent))
	assert.False(t, valuesEqual(Absent, nil))
	assert.True(t, valuesEqual(1, 1.0))
	assert.True(t, valuesEqual(json.Number("2.5"), 2.5))
	assert.False(t, valuesEqual("1", 1))
	assert.True(t, valuesEqual([]any{"a"}, []any{"a"}))
}
