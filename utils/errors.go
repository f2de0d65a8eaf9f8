// Package utils contains small helpers shared across kinutil.
package utils

import "github.com/pkg/errors"

// NewUnsupportedInputError is used when a value of a known type cannot be handled by an operation.
func NewUnsupportedInputError(operation string, actual interface{}) error {
	return errors.Errorf("%s does not support inputs of type %T", operation, actual)
}
