package booking

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusConfirmed Status = "CONFIRMED"
	StatusPending   Status = "PENDING"
	StatusCancelled Status = "CANCELLED"
	StatusWaitlist  Status = "WAITLIST"
	StatusCompleted Status = "COMPLETED"
	StatusNoShow    Status = "NO_SHOW"
)

type Booking struct {
	ID                 int              `db:"id" json:"id"`
	MemberID           int              `db:"member_id" json:"member_id"`
	ScheduleID         int              `db:"schedule_id" json:"schedule_id"`
	Reference          string           `db:"reference" json:"reference"`
	Status             Status           `db:"status" json:"status"`
	AmountPaid         *decimal.Decimal `db:"amount_paid" json:"amount_paid,omitempty"`
	BookedAt           time.Time        `db:"booked_at" json:"booked_at"`
	CancellationReason *string          `db:"cancellation_reason" json:"cancellation_reason,omitempty"`
	CancelledAt        *time.Time       `db:"cancelled_at" json:"cancelled_at,omitempty"`
	Attended           bool             `db:"attended" json:"attended"`
	AttendedAt         *time.Time       `db:"attended_at" json:"attended_at,omitempty"`
}

type BookingWithDetails struct {
	Booking
	ClassName  string    `db:"class_name" json:"class_name"`
	StartTime  time.Time `db:"start_time" json:"start_time"`
	EndTime    time.Time `db:"end_time" json:"end_time"`
	MemberName string    `db:"member_name" json:"member_name"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason" binding:"required,min=2,max=500"`
}
