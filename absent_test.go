package datavalidation_test

import (
	"testing"

	dv "github.com/Gobd/datavalidation"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	record := dv.Record{
		"name":    "Ali",
		"nothing": nil,
		"address": map[string]any{
			"city": "Tehran",
			"geo":  map[string]string{"lat": "35.7"},
		},
		"tags": []any{"a", "b"},
	}

	tests := []struct {
		path string
		want any
	}{
		{path: "name", want: "Ali"},
		{path: "nothing", want: nil},
		{path: "address.city", want: "Tehran"},
		{path: "address.geo.lat", want: "35.7"},
		{path: "address.zip", want: dv.Absent},
		{path: "address.city.x", want: dv.Absent},
		{path: "nothing.x", want: dv.Absent},
		{path: "tags.0", want: dv.Absent},
		{path: "missing", want: dv.Absent},
		{path: "", want: dv.Absent},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := dv.Resolve(record, tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve_Roots(t *testing.T) {
	v, err := dv.Resolve(nil, "a.b")
	require.NoError(t, err)
	assert.True(t, dv.IsAbsent(v))

	v, err = dv.Resolve(&dv.Record{"a": 1}, "a")
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	type custom map[string]int
	v, err = dv.Resolve(custom{"n": 2}, "n")
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	_, err = dv.Resolve("text", "a")
	assert.ErrorIs(t, err, dv.ErrNotTraversable)

	_, err = dv.Resolve([]any{1}, "0")
	assert.ErrorIs(t, err, dv.ErrNotTraversable)
}

func TestAbsent(t *testing.T) {
	assert.True(t, dv.IsAbsent(dv.Absent))
	assert.False(t, dv.IsAbsent(nil))
	assert.False(t, dv.IsAbsent(""))
	assert.Equal(t, "<absent>", dv.Absent.String())
}

func TestResolve_Total(t *testing.T) {
	record := dv.Record{"a": map[string]any{"b": "c"}, "n": 1}

	properties := gopter.NewProperties(nil)
	properties.Property("any path resolves without error", prop.ForAll(
		func(segs []string) bool {
			path := ""
			for i, s := range segs {
				if i > 0 {
					path += "."
				}
				path += s
			}
			_, err := dv.Resolve(record, path)
			return err == nil
		},
		gen.SliceOf(gen.OneGenOf(gen.OneConstOf("a", "b", "c", "n"), gen.AlphaString())),
	))
	properties.TestingRun(t)
}
