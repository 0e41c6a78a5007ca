package dynamo

import (
	"errors"
	"fmt"
)

// Domain errors for simulation operations.
var (
	// ErrInvalidParameter indicates a non-positive or non-finite simulation parameter.
	ErrInvalidParameter = errors.New("dynamo: invalid parameter")

	// ErrInvalidState indicates a state vector with the wrong dimension.
	ErrInvalidState = errors.New("dynamo: invalid state")

	// ErrFrameCount indicates an animation request that yields no frames.
	ErrFrameCount = errors.New("dynamo: animation has no frames")
)

// ParameterError names the parameter that failed validation.
type ParameterError struct {
	Name   string
	Value  float64
	Reason string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("%s: %s = %g: %s", ErrInvalidParameter, e.Name, e.Value, e.Reason)
}

func (e *ParameterError) Unwrap() error {
	return ErrInvalidParameter
}
