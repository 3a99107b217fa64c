package event

import "errors"

var (
	ErrEventNotFound    = errors.New("event not found")
	ErrEventCancelled   = errors.New("event is cancelled")
	ErrInvalidDateRange = errors.New("end must be after start")
	ErrShiftNotFound    = errors.New("shift template not found")
	ErrClientNotFound   = errors.New("client not found for event")
)
