package ptsession

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"gymcore/internal/trainer"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const sessionColumns = `id, member_id, trainer_id, session_date, duration_minutes, status,
	session_type, goals, workout_notes, client_feedback, rating, price,
	cancellation_reason, cancelled_at, created_at`

func (r *repository) Create(ctx context.Context, memberID, trainerID int, sessionDate time.Time, durationMinutes int, sessionType SessionType, goals *string, price *decimal.Decimal) (*PTSession, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	// Locking the trainer row serializes concurrent bookings for the
	// same trainer, so the overlap check below cannot race.
	var locked int
	err = tx.GetContext(ctx, &locked, `SELECT id FROM trainers WHERE id = $1 FOR UPDATE`, trainerID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, trainer.ErrTrainerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("lock trainer: %w", err)
	}

	endTime := sessionDate.Add(time.Duration(durationMinutes) * time.Minute)
	var conflict bool
	err = tx.GetContext(ctx, &conflict,
		`SELECT EXISTS(SELECT 1 FROM pt_sessions
			WHERE trainer_id = $1
			  AND status NOT IN ('CANCELLED', 'NO_SHOW')
			  AND session_date < $3
			  AND session_date + (duration_minutes * interval '1 minute') > $2)`,
		trainerID, sessionDate, endTime)
	if err != nil {
		return nil, fmt.Errorf("check trainer availability: %w", err)
	}
	if conflict {
		return nil, ErrTrainerBusy
	}

	var s PTSession
	err = tx.GetContext(ctx, &s,
		`INSERT INTO pt_sessions (member_id, trainer_id, session_date, duration_minutes, status, session_type, goals, price)
		 VALUES ($1, $2, $3, $4, 'SCHEDULED', $5, $6, $7)
		 RETURNING `+sessionColumns,
		memberID, trainerID, sessionDate, durationMinutes, sessionType, goals, price)
	if err != nil {
		return nil, fmt.Errorf("insert session: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit session: %w", err)
	}
	return &s, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*PTSession, error) {
	var s PTSession
	err := r.db.GetContext(ctx, &s,
		`SELECT `+sessionColumns+` FROM pt_sessions WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	return &s, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id int, status Status, cancellationReason *string, cancelledAt *time.Time) (*PTSession, error) {
	var s PTSession
	err := r.db.GetContext(ctx, &s,
		`UPDATE pt_sessions
		 SET status = $2,
		     cancellation_reason = COALESCE($3, cancellation_reason),
		     cancelled_at = COALESCE($4, cancelled_at)
		 WHERE id = $1
		 RETURNING `+sessionColumns,
		id, status, cancellationReason, cancelledAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update session status: %w", err)
	}
	return &s, nil
}

func (r *repository) AddWorkoutNotes(ctx context.Context, id int, workoutNotes string, clientFeedback *string, rating *float64) (*PTSession, error) {
	var s PTSession
	err := r.db.GetContext(ctx, &s,
		`UPDATE pt_sessions
		 SET workout_notes = $2,
		     client_feedback = COALESCE($3, client_feedback),
		     rating = COALESCE($4, rating)
		 WHERE id = $1
		 RETURNING `+sessionColumns,
		id, workoutNotes, clientFeedback, rating)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("add workout notes: %w", err)
	}
	return &s, nil
}

func (r *repository) ListByMember(ctx context.Context, memberID int) ([]PTSession, error) {
	var sessions []PTSession
	err := r.db.SelectContext(ctx, &sessions,
		`SELECT `+sessionColumns+` FROM pt_sessions WHERE member_id = $1 ORDER BY session_date DESC`,
		memberID)
	if err != nil {
		return nil, fmt.Errorf("list member sessions: %w", err)
	}
	return sessions, nil
}

func (r *repository) ListByTrainer(ctx context.Context, trainerID int) ([]PTSession, error) {
	var sessions []PTSession
	err := r.db.SelectContext(ctx, &sessions,
		`SELECT `+sessionColumns+` FROM pt_sessions WHERE trainer_id = $1 ORDER BY session_date DESC`,
		trainerID)
	if err != nil {
		return nil, fmt.Errorf("list trainer sessions: %w", err)
	}
	return sessions, nil
}

func (r *repository) ListUpcomingByMember(ctx context.Context, memberID int, from time.Time) ([]PTSession, error) {
	var sessions []PTSession
	err := r.db.SelectContext(ctx, &sessions,
		`SELECT `+sessionColumns+` FROM pt_sessions
		 WHERE member_id = $1 AND session_date > $2 AND status NOT IN ('CANCELLED', 'COMPLETED')
		 ORDER BY session_date ASC`,
		memberID, from)
	if err != nil {
		return nil, fmt.Errorf("list upcoming member sessions: %w", err)
	}
	return sessions, nil
}

func (r *repository) ListUpcomingByTrainer(ctx context.Context, trainerID int, from time.Time) ([]PTSession, error) {
	var sessions []PTSession
	err := r.db.SelectContext(ctx, &sessions,
		`SELECT `+sessionColumns+` FROM pt_sessions
		 WHERE trainer_id = $1 AND session_date > $2 AND status NOT IN ('CANCELLED', 'COMPLETED')
		 ORDER BY session_date ASC`,
		trainerID, from)
	if err != nil {
		return nil, fmt.Errorf("list upcoming trainer sessions: %w", err)
	}
	return sessions, nil
}

func (r *repository) ListCompletedByMember(ctx context.Context, memberID int) ([]PTSession, error) {
	var sessions []PTSession
	err := r.db.SelectContext(ctx, &sessions,
		`SELECT `+sessionColumns+` FROM pt_sessions
		 WHERE member_id = $1 AND status = 'COMPLETED'
		 ORDER BY session_date DESC`,
		memberID)
	if err != nil {
		return nil, fmt.Errorf("list completed sessions: %w", err)
	}
	return sessions, nil
}

func (r *repository) AverageRatingForTrainer(ctx context.Context, trainerID int) (float64, error) {
	var avg float64
	err := r.db.GetContext(ctx, &avg,
		`SELECT COALESCE(AVG(rating), 0) FROM pt_sessions
		 WHERE trainer_id = $1 AND status = 'COMPLETED' AND rating IS NOT NULL`,
		trainerID)
	if err != nil {
		return 0, fmt.Errorf("average trainer rating: %w", err)
	}
	return avg, nil
}
