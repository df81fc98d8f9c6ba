package service

import "errors"

// Sentinel errors carry the exact messages the HTTP layer surfaces, so
// handlers only decide the status code.
var (
	ErrDestinationNotFound = errors.New("Destination not found.")
	ErrPackageNotFound     = errors.New("Package not found.")
	ErrHotelNotFound       = errors.New("Hotel not found.")
)

// ValidationError marks a client-caused failure; handlers map it to 400 and
// the message names the offending field.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func validation(msg string) error {
	return &ValidationError{msg: msg}
}

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
