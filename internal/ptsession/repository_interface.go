package ptsession

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type Repository interface {
	// Create inserts a SCHEDULED session after verifying, under a lock on
	// the trainer row, that no other live session of that trainer overlaps
	// the requested slot.
	Create(ctx context.Context, memberID, trainerID int, sessionDate time.Time, durationMinutes int, sessionType SessionType, goals *string, price *decimal.Decimal) (*PTSession, error)

	GetByID(ctx context.Context, id int) (*PTSession, error)
	UpdateStatus(ctx context.Context, id int, status Status, cancellationReason *string, cancelledAt *time.Time) (*PTSession, error)
	AddWorkoutNotes(ctx context.Context, id int, workoutNotes string, clientFeedback *string, rating *float64) (*PTSession, error)

	ListByMember(ctx context.Context, memberID int) ([]PTSession, error)
	ListByTrainer(ctx context.Context, trainerID int) ([]PTSession, error)
	ListUpcomingByMember(ctx context.Context, memberID int, from time.Time) ([]PTSession, error)
	ListUpcomingByTrainer(ctx context.Context, trainerID int, from time.Time) ([]PTSession, error)
	ListCompletedByMember(ctx context.Context, memberID int) ([]PTSession, error)
	AverageRatingForTrainer(ctx context.Context, trainerID int) (float64, error)
}
