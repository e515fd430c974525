package syncer

import "errors"

var (
	ErrNotFound          = errors.New("record not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrNegativeOccupancy = errors.New("occupancy must not be negative")
)
