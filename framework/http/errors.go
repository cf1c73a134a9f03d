package http

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned when a required argument is missing.
var ErrInvalidArgument = errors.New("invalid argument")

// ArgumentError names the missing argument. It matches ErrInvalidArgument
// under errors.Is.
type ArgumentError struct {
	Name string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: %s is nil", ErrInvalidArgument, e.Name)
}

func (e *ArgumentError) Unwrap() error { return ErrInvalidArgument }

func missing(name string) error {
	return &ArgumentError{Name: name}
}

// DecodeError is returned when a request body cannot be read or does not
// parse into the requested shape.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return "decode request body: " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error { return e.Err }
