package datavalidation_test

import (
	"testing"

	dv "github.com/Gobd/datavalidation"
	"github.com/stretchr/testify/assert"
)

func TestPhone(t *testing.T) {
	phone := dv.Phone("US")

	tests := []struct {
		value  any
		params []string
		want   bool
	}{
		{value: "+1 650-253-0000", want: true},
		{value: "650-253-0000", want: true},
		{value: "123", want: false},
		{value: "", want: false},
		{value: 6502530000, want: false},
		{value: "+44 20 7031 3000", want: true},
		{value: "020 7031 3000", params: []string{"gb"}, want: true},
		{value: "020 7031 3000", want: false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, phone(tt.value, tt.params, "phone", nil), "%#v %v", tt.value, tt.params)
	}
}
