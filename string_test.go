package datavalidation

import (
	"encoding/json"
	"testing"
	"time"
)

type myString string

func TestTypeRules(t *testing.T) {
	runCases(t, []ruleCase{
		{spec: "string", value: "", want: true},
		{spec: "string", value: myString("x"), want: true},
		{spec: "string", value: 1, want: false},
		{spec: "string", value: json.Number("1"), want: false},
		{spec: "string", value: Absent, want: false},
		{spec: "string", value: nil, want: false},

		{spec: "number", value: 1, want: true},
		{spec: "number", value: 1.5, want: true},
		{spec: "number", value: "1.5", want: true},
		{spec: "number", value: " 42 ", want: true},
		{spec: "number", value: "1e3", want: true},
		{spec: "numeric", value: "abc", want: false},
		{spec: "numeric", value: "", want: false},
		{spec: "numeric", value: "Inf", want: false},
		{spec: "numeric", value: true, want: false},
		{spec: "numeric", value: json.Number("12"), want: true},

		{spec: "integer", value: 3, want: true},
		{spec: "integer", value: 3.0, want: true},
		{spec: "integer", value: 3.5, want: false},
		{spec: "integer", value: "42", want: true},
		{spec: "integer", value: "4.2", want: false},

		{spec: "boolean", value: true, want: true},
		{spec: "boolean", value: "false", want: true},
		{spec: "bool", value: "yes", want: false},
		{spec: "boolean", value: 1, want: false},

		{spec: "array", value: []any{}, want: true},
		{spec: "array", value: [2]int{}, want: true},
		{spec: "array", value: map[string]any{}, want: false},
		{spec: "array", value: "abc", want: false},

		{spec: "object", value: map[string]any{}, want: true},
		{spec: "object", value: map[string]string{}, want: true},
		{spec: "object", value: map[int]any{}, want: false},
		{spec: "object", value: []any{}, want: false},
	})
}

func TestTextOf(t *testing.T) {
	cases := []struct {
		v    any
		want string
		ok   bool
	}{
		{v: "a", want: "a", ok: true},
		{v: 3, want: "3", ok: true},
		{v: 2.5, want: "2.5", ok: true},
		{v: uint(7), want: "7", ok: true},
		{v: true, want: "true", ok: true},
		{v: json.Number("10"), want: "10", ok: true},
		{v: nil, ok: false},
		{v: Absent, ok: false},
		{v: []any{"a"}, ok: false},
	}
	for _, c := range cases {
		got, ok := textOf(c.v)
		if ok != c.ok || got != c.want {
			t.Errorf("textOf(%#v) = %q, %v; want %q, %v", c.v, got, ok, c.want, c.ok)
		}
	}
}

func TestDate(t *testing.T) {
	runCases(t, []ruleCase{
		{spec: "date", value: "2024-02-29", want: true},
		{spec: "date", value: "2023-02-29", want: false},
		{spec: "date", value: "2024-01-02T15:04:05Z", want: true},
		{spec: "date", value: "2024/01/02", want: true},
		{spec: "date", value: "yesterday", want: false},
		{spec: "date", value: "", want: false},
		{spec: "date", value: 20240101, want: false},
		{spec: "date", value: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), want: true},
		{spec: "date", value: time.Time{}, want: false},
		{spec: "date:02.01.2006", value: "31.12.2024", want: true},
		{spec: "date:02.01.2006", value: "2024-12-31", want: false},
	})
}
