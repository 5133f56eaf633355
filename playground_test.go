package datavalidation_test

import (
	"testing"

	dv "github.com/Gobd/datavalidation"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTag(t *testing.T) {
	v := validator.New()

	hex := dv.Tag(v, "hexcolor")
	assert.True(t, hex("#fff", nil, "color", nil))
	assert.False(t, hex("blue", nil, "color", nil))
	assert.False(t, hex(dv.Absent, nil, "color", nil))

	oneof := dv.Tag(v, "oneof")
	assert.True(t, oneof("red", []string{"red", "green"}, "color", nil))
	assert.False(t, oneof("blue", []string{"red", "green"}, "color", nil))

	// A malformed tag param fails the rule instead of panicking.
	length := dv.Tag(v, "len")
	assert.False(t, length("abc", []string{"x"}, "code", nil))
}

func TestRegisterTags(t *testing.T) {
	v := validator.New()
	reg := dv.NewRegistry()
	require.NoError(t, dv.RegisterTags(reg, v, map[string]string{
		"hex_color": "hexcolor",
		"semver":    "semver",
	}))
	assert.Equal(t, []string{"hex_color", "semver"}, reg.Names())

	res, err := dv.New(dv.Record{"c": "#00ff00", "ver": "1.2"}, dv.Rules{
		"c":   "required|hex_color",
		"ver": "required|semver",
	}, dv.WithRegistry(reg)).Validate()
	require.NoError(t, err)
	assert.Equal(t, []string{"ver"}, res.Errors().Fields())
	assert.Equal(t, "ver is invalid", res.FirstError())

	err = dv.RegisterTags(dv.NewRegistry(), v, map[string]string{"x": "no_such_tag"})
	assert.ErrorIs(t, err, dv.ErrInvalidRule)
}

func TestRegisterTags_NeedsParam(t *testing.T) {
	v := validator.New()

	reg := dv.NewRegistry()
	err := dv.RegisterTags(reg, v, map[string]string{"code": "len"})
	assert.ErrorIs(t, err, dv.ErrInvalidParams)
	assert.Empty(t, reg.Names())

	require.NoError(t, dv.RegisterTags(reg, v, map[string]string{"code": "len=3"}))
	res, err := dv.New(dv.Record{"c": "abc", "d": "ab"}, dv.Rules{"c": "code", "d": "code"}, dv.WithRegistry(reg)).Validate()
	require.NoError(t, err)
	assert.Equal(t, []string{"d"}, res.Errors().Fields())
}
