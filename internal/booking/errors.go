package booking

import "errors"

var (
	ErrBookingNotFound  = errors.New("booking not found")
	ErrScheduleInactive = errors.New("schedule is not active")
	ErrSchedulePast     = errors.New("schedule has already started")
	ErrClassFull        = errors.New("class is fully booked")
	ErrAlreadyBooked    = errors.New("member already has a booking for this schedule")
	ErrAlreadyCancelled = errors.New("booking is already cancelled")
	ErrAlreadyCompleted = errors.New("booking is already completed")
	ErrNotConfirmed     = errors.New("booking is not in confirmed state")
)
