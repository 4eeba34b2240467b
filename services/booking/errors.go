package booking

import "errors"

// ErrNotFound signals that a booking id did not resolve.
var ErrNotFound = errors.New("booking not found")

// ValidationError signals a rejected client input on create or patch.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}
