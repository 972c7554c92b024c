package order

import "errors"

var (
	ErrNotFound          = errors.New("order not found")
	ErrInvalidTransition = errors.New("illegal status transition")
	ErrVersionConflict   = errors.New("order was modified by someone else")
	ErrAlreadyCheckedIn  = errors.New("order already checked in")
	ErrCodeExhausted     = errors.New("could not generate a unique order code")
)
