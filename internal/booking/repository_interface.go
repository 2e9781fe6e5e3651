package booking

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type Repository interface {
	// CreateConfirmed inserts a CONFIRMED booking and increments the
	// schedule's booking counter in a single transaction. The capacity
	// and duplicate checks happen under a row lock on the schedule.
	CreateConfirmed(ctx context.Context, memberID, scheduleID int, reference string, amountPaid *decimal.Decimal, bookedAt time.Time) (*Booking, error)

	// Cancel moves a booking to CANCELLED and releases its spot on the
	// schedule. The counter never drops below zero.
	Cancel(ctx context.Context, bookingID int, reason string, at time.Time) (*Booking, error)

	// MarkAttended flips a CONFIRMED booking to COMPLETED and records
	// the attendance time.
	MarkAttended(ctx context.Context, bookingID int, at time.Time) (*Booking, error)

	GetByID(ctx context.Context, bookingID int) (*Booking, error)
	GetByMember(ctx context.Context, memberID int) ([]BookingWithDetails, error)
	GetUpcomingByMember(ctx context.Context, memberID int, from time.Time) ([]BookingWithDetails, error)
	GetConfirmedBySchedule(ctx context.Context, scheduleID int) ([]BookingWithDetails, error)
	GetAll(ctx context.Context) ([]BookingWithDetails, error)
}
