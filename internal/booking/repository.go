package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"gymcore/internal/schedule"
)

// ErrDuplicateReference is returned when the generated booking
// reference collides with an existing one. Callers regenerate and retry.
var ErrDuplicateReference = errors.New("booking reference already exists")

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const bookingColumns = `id, member_id, schedule_id, reference, status, amount_paid,
	booked_at, cancellation_reason, cancelled_at, attended, attended_at`

const bookingDetailColumns = `b.id, b.member_id, b.schedule_id, b.reference, b.status,
	b.amount_paid, b.booked_at, b.cancellation_reason, b.cancelled_at, b.attended,
	b.attended_at, c.name AS class_name, s.start_time, s.end_time, m.full_name AS member_name`

func (r *repository) CreateConfirmed(ctx context.Context, memberID, scheduleID int, reference string, amountPaid *decimal.Decimal, bookedAt time.Time) (*Booking, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	// Lock the schedule row so the capacity check and the counter
	// increment are atomic against concurrent bookings.
	var sched struct {
		Active          bool `db:"active"`
		MaxCapacity     int  `db:"max_capacity"`
		CurrentBookings int  `db:"current_bookings"`
	}
	err = tx.GetContext(ctx, &sched,
		`SELECT active, max_capacity, current_bookings FROM class_schedules WHERE id = $1 FOR UPDATE`,
		scheduleID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, schedule.ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("lock schedule: %w", err)
	}
	if !sched.Active {
		return nil, ErrScheduleInactive
	}
	if sched.CurrentBookings >= sched.MaxCapacity {
		return nil, ErrClassFull
	}

	var exists bool
	err = tx.GetContext(ctx, &exists,
		`SELECT EXISTS(SELECT 1 FROM class_bookings
			WHERE member_id = $1 AND schedule_id = $2 AND status NOT IN ('CANCELLED', 'NO_SHOW'))`,
		memberID, scheduleID)
	if err != nil {
		return nil, fmt.Errorf("check duplicate booking: %w", err)
	}
	if exists {
		return nil, ErrAlreadyBooked
	}

	var b Booking
	err = tx.GetContext(ctx, &b,
		`INSERT INTO class_bookings (member_id, schedule_id, reference, status, amount_paid, booked_at)
		 VALUES ($1, $2, $3, 'CONFIRMED', $4, $5)
		 RETURNING `+bookingColumns,
		memberID, scheduleID, reference, amountPaid, bookedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, ErrDuplicateReference
		}
		return nil, fmt.Errorf("insert booking: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE class_schedules SET current_bookings = current_bookings + 1 WHERE id = $1`,
		scheduleID)
	if err != nil {
		return nil, fmt.Errorf("increment bookings: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit booking: %w", err)
	}
	return &b, nil
}

func (r *repository) Cancel(ctx context.Context, bookingID int, reason string, at time.Time) (*Booking, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var current Booking
	err = tx.GetContext(ctx, &current,
		`SELECT `+bookingColumns+` FROM class_bookings WHERE id = $1 FOR UPDATE`, bookingID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("lock booking: %w", err)
	}
	switch current.Status {
	case StatusCancelled:
		return nil, ErrAlreadyCancelled
	case StatusCompleted:
		return nil, ErrAlreadyCompleted
	}

	var b Booking
	err = tx.GetContext(ctx, &b,
		`UPDATE class_bookings
		 SET status = 'CANCELLED', cancellation_reason = $2, cancelled_at = $3
		 WHERE id = $1
		 RETURNING `+bookingColumns,
		bookingID, reason, at)
	if err != nil {
		return nil, fmt.Errorf("cancel booking: %w", err)
	}

	// Release the spot. GREATEST clamps the counter at zero so a stale
	// row can never push it negative.
	_, err = tx.ExecContext(ctx,
		`UPDATE class_schedules SET current_bookings = GREATEST(current_bookings - 1, 0) WHERE id = $1`,
		current.ScheduleID)
	if err != nil {
		return nil, fmt.Errorf("release spot: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit cancellation: %w", err)
	}
	return &b, nil
}

func (r *repository) MarkAttended(ctx context.Context, bookingID int, at time.Time) (*Booking, error) {
	var b Booking
	err := r.db.GetContext(ctx, &b,
		`UPDATE class_bookings
		 SET status = 'COMPLETED', attended = TRUE, attended_at = $2
		 WHERE id = $1 AND status = 'CONFIRMED'
		 RETURNING `+bookingColumns,
		bookingID, at)
	if errors.Is(err, sql.ErrNoRows) {
		// Distinguish a missing booking from one in the wrong state.
		var exists bool
		if chkErr := r.db.GetContext(ctx, &exists,
			`SELECT EXISTS(SELECT 1 FROM class_bookings WHERE id = $1)`, bookingID); chkErr != nil {
			return nil, fmt.Errorf("check booking: %w", chkErr)
		}
		if !exists {
			return nil, ErrBookingNotFound
		}
		return nil, ErrNotConfirmed
	}
	if err != nil {
		return nil, fmt.Errorf("mark attended: %w", err)
	}
	return &b, nil
}

func (r *repository) GetByID(ctx context.Context, bookingID int) (*Booking, error) {
	var b Booking
	err := r.db.GetContext(ctx, &b,
		`SELECT `+bookingColumns+` FROM class_bookings WHERE id = $1`, bookingID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	return &b, nil
}

func (r *repository) GetByMember(ctx context.Context, memberID int) ([]BookingWithDetails, error) {
	var bookings []BookingWithDetails
	err := r.db.SelectContext(ctx, &bookings,
		`SELECT `+bookingDetailColumns+`
		 FROM class_bookings b
		 JOIN class_schedules s ON s.id = b.schedule_id
		 JOIN gym_classes c ON c.id = s.class_id
		 JOIN members m ON m.id = b.member_id
		 WHERE b.member_id = $1
		 ORDER BY s.start_time DESC`,
		memberID)
	if err != nil {
		return nil, fmt.Errorf("list member bookings: %w", err)
	}
	return bookings, nil
}

func (r *repository) GetUpcomingByMember(ctx context.Context, memberID int, from time.Time) ([]BookingWithDetails, error) {
	var bookings []BookingWithDetails
	err := r.db.SelectContext(ctx, &bookings,
		`SELECT `+bookingDetailColumns+`
		 FROM class_bookings b
		 JOIN class_schedules s ON s.id = b.schedule_id
		 JOIN gym_classes c ON c.id = s.class_id
		 JOIN members m ON m.id = b.member_id
		 WHERE b.member_id = $1 AND b.status = 'CONFIRMED' AND s.start_time > $2
		 ORDER BY s.start_time ASC`,
		memberID, from)
	if err != nil {
		return nil, fmt.Errorf("list upcoming bookings: %w", err)
	}
	return bookings, nil
}

func (r *repository) GetConfirmedBySchedule(ctx context.Context, scheduleID int) ([]BookingWithDetails, error) {
	var bookings []BookingWithDetails
	err := r.db.SelectContext(ctx, &bookings,
		`SELECT `+bookingDetailColumns+`
		 FROM class_bookings b
		 JOIN class_schedules s ON s.id = b.schedule_id
		 JOIN gym_classes c ON c.id = s.class_id
		 JOIN members m ON m.id = b.member_id
		 WHERE b.schedule_id = $1 AND b.status = 'CONFIRMED'
		 ORDER BY b.booked_at ASC`,
		scheduleID)
	if err != nil {
		return nil, fmt.Errorf("list schedule bookings: %w", err)
	}
	return bookings, nil
}

func (r *repository) GetAll(ctx context.Context) ([]BookingWithDetails, error) {
	var bookings []BookingWithDetails
	err := r.db.SelectContext(ctx, &bookings,
		`SELECT `+bookingDetailColumns+`
		 FROM class_bookings b
		 JOIN class_schedules s ON s.id = b.schedule_id
		 JOIN gym_classes c ON c.id = s.class_id
		 JOIN members m ON m.id = b.member_id
		 ORDER BY b.booked_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return bookings, nil
}
