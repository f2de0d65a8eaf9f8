package utils

import (
	"testing"

	"go.viam.com/test"
)

func TestNewUnsupportedInputError(t *testing.T) {
	for _, tc := range []struct {
		name   string
		actual interface{}
		errStr string
	}{
		{"string", "a string", "norm does not support inputs of type string"},
		{"int slice", []int{1}, "norm does not support inputs of type []int"},
		{"nil", nil, "norm does not support inputs of type <nil>"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			err := NewUnsupportedInputError("norm", tc.actual)
			test.That(t, err.Error(), test.ShouldEqual, tc.errStr)
		})
	}
}
