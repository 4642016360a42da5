package errors

import "errors"

var (
	ErrInvalidBallot    = errors.New("ballot has no usable payload")
	ErrUnknownOption    = errors.New("ballot references an option the room does not have")
	ErrOutOfRange       = errors.New("ballot value is outside the 0-100 bar")
	ErrInvalidInterval  = errors.New("interval start is greater than its end")
	ErrOverlap          = errors.New("ballot intervals overlap on the bar")
	ErrOverAllocation   = errors.New("ballot allocates more than the whole bar")
	ErrInvalidOptionSet = errors.New("room options must be non-empty and free of duplicates")
	ErrRoomNotFound     = errors.New("room not found")
)
