package keypair

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidFormat        = errors.New("invalid format, expected [b0,b1,...,b63] byte array or base58 string")
	ErrParsingFailed        = errors.New("parsing failed")
	ErrTransformationFailed = errors.New("transformation failed")
)

// ParsingError is returned when an element of the byte array is not a decimal byte.
type ParsingError struct {
	Token string
	err   error
}

func (e *ParsingError) Error() string {
	return fmt.Sprintf("%s, token %q is not a byte value in range 0 to 255", ErrParsingFailed, e.Token)
}

func (e *ParsingError) Is(target error) bool {
	return target == ErrParsingFailed
}

func (e *ParsingError) Unwrap() error {
	return e.err
}

// TransformationError is returned when classified input does not decode in to a valid keypair.
type TransformationError struct {
	Reason string
	err    error
}

func (e *TransformationError) Error() string {
	return fmt.Sprintf("%s, %s", ErrTransformationFailed, e.Reason)
}

func (e *TransformationError) Is(target error) bool {
	return target == ErrTransformationFailed
}

func (e *TransformationError) Unwrap() error {
	return e.err
}

func transformationFailed(reason string, err error) error {
	if err != nil {
		reason = fmt.Sprintf("%s: %s", reason, err)
	}
	return &TransformationError{Reason: reason, err: err}
}
