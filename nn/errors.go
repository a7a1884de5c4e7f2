package nn

import (
	"errors"
	"fmt"
)

var (
	ErrConfiguration   = errors.New("invalid network configuration")
	ErrEmptyNetwork    = errors.New("network has no layers")
	ErrInvalidInput    = errors.New("invalid network input")
	ErrPrecondState    = errors.New("operation called in invalid state")
	ErrDeserialization = errors.New("malformed network document")
)

// InvalidInputError is returned by Run and keeps the rejected input.
type InvalidInputError struct {
	Input    []float64
	Expected int
	Details  string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("%s: %s (got %d values, expected %d)", ErrInvalidInput, e.Details, len(e.Input), e.Expected)
}

func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// DeserializationError locates a structural problem in a serialized network.
// Layer and Neuron are -1 when the problem is not tied to one.
type DeserializationError struct {
	Layer   int
	Neuron  int
	Details string
	Err     error
}

func (e *DeserializationError) Error() string {
	msg := e.Details
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", e.Details, e.Err)
	}
	switch {
	case e.Neuron >= 0:
		return fmt.Sprintf("%s: layer %d neuron %d: %s", ErrDeserialization, e.Layer, e.Neuron, msg)
	case e.Layer >= 0:
		return fmt.Sprintf("%s: layer %d: %s", ErrDeserialization, e.Layer, msg)
	}
	return fmt.Sprintf("%s: %s", ErrDeserialization, msg)
}

func (e *DeserializationError) Is(target error) bool {
	return target == ErrDeserialization
}

func (e *DeserializationError) Unwrap() error {
	return e.Err
}
