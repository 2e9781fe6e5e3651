package ptsession

import "errors"

var (
	ErrSessionNotFound  = errors.New("session not found")
	ErrSessionPast      = errors.New("session time is in the past")
	ErrTrainerBusy      = errors.New("trainer is not available at the requested time")
	ErrFutureCompletion = errors.New("cannot complete a session that has not started")
	ErrNotStartable     = errors.New("session can only be started from scheduled or confirmed")
	ErrNotCompleted     = errors.New("notes can only be added to completed sessions")
	ErrInvalidRating    = errors.New("rating must be between 1.0 and 5.0")
	ErrInvalidStatus    = errors.New("unknown session status")
)
