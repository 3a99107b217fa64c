package assignment

import "errors"

var (
	ErrAssignmentNotFound = errors.New("assignment not found")
	ErrAlreadyAssigned    = errors.New("operator already assigned to this event")
	ErrAlreadyCheckedIn   = errors.New("assignment already checked in")
	ErrNotCheckedIn       = errors.New("assignment has no check-in")
	ErrEventCancelled     = errors.New("cannot record attendance on a cancelled event")
)
