package datavalidation

import "testing"

func TestNationalID(t *testing.T) {
	check := NationalID()
	tests := []struct {
		value any
		want  bool
	}{
		{value: "0499370899", want: true},
		{value: "0013542419", want: true},
		{value: " 0013542419 ", want: true},
		{value: "0499370898", want: false},
		{value: "1111111111", want: false},
		{value: "049937089", want: false},
		{value: "04993708x9", want: false},
		{value: 499370899, want: false},
		{value: Absent, want: false},
	}
	for _, tt := range tests {
		if got := check(tt.value, nil, "code", nil); got != tt.want {
			t.Errorf("NationalID(%#v) = %v, want %v", tt.value, got, tt.want)
		}
	}
}
