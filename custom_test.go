package datavalidation_test

import (
	"regexp"
	"testing"

	dv "github.com/Gobd/datavalidation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPattern(t *testing.T) {
	reg := dv.NewRegistry().MustRegister("postcode", dv.Pattern(regexp.MustCompile(`^\d{5}(-\d{4})?$`)))
	reg.RegisterMessage("postcode", ":field must be a postal code")

	tests := []struct {
		value any
		ok    bool
	}{
		{value: "12345", ok: true},
		{value: "12345-6789", ok: true},
		{value: 12345, ok: true},
		{value: "1234", ok: false},
		{value: nil, ok: false},
	}
	for _, tt := range tests {
		res, err := dv.New(dv.Record{"zip": tt.value}, dv.Rules{"zip": "postcode"}, dv.WithRegistry(reg)).Validate()
		require.NoError(t, err)
		assert.Equal(t, tt.ok, res.Passed(), "%#v", tt.value)
		if !tt.ok {
			assert.Equal(t, "zip must be a postal code", res.FirstError())
		}
	}
}

func TestFunc(t *testing.T) {
	even := dv.Func(func(v any) bool {
		n, ok := v.(int)
		return ok && n%2 == 0
	})
	assert.True(t, even(4, nil, "n", nil))
	assert.False(t, even(3, nil, "n", nil))
}
