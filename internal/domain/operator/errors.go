package operator

import "errors"

var (
	ErrOperatorNotFound  = errors.New("operator not found")
	ErrEmailExists       = errors.New("email already registered")
	ErrOperatorInactive  = errors.New("operator is inactive")
	ErrOperatorHasShifts = errors.New("operator has active assignments")
)
