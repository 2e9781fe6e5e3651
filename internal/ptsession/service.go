package ptsession

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"gymcore/internal/logger"
	"gymcore/internal/member"
	"gymcore/internal/metrics"
	"gymcore/internal/trainer"
)

type Service interface {
	BookSession(ctx context.Context, memberID, trainerID int, sessionDate time.Time, durationMinutes int, goals *string) (*PTSession, error)
	BookForUser(ctx context.Context, userID, trainerID int, sessionDate time.Time, durationMinutes int, goals *string) (*PTSession, error)
	UpdateStatus(ctx context.Context, sessionID int, status Status, notes string) (*PTSession, error)
	CancelSession(ctx context.Context, sessionID int, reason string) (*PTSession, error)
	AddWorkoutNotes(ctx context.Context, sessionID int, workoutNotes string, clientFeedback *string, rating *float64) (*PTSession, error)
	GetSession(ctx context.Context, sessionID int) (*PTSession, error)
	GetMemberSessions(ctx context.Context, memberID int, upcomingOnly bool) ([]PTSession, error)
	GetSessionsForUser(ctx context.Context, userID int, upcomingOnly bool) ([]PTSession, error)
	GetTrainerSessions(ctx context.Context, trainerID int, upcomingOnly bool) ([]PTSession, error)
	GetCompletedSessionsForMember(ctx context.Context, memberID int) ([]PTSession, error)
	TrainerAverageRating(ctx context.Context, trainerID int) (float64, error)
}

type service struct {
	repo     Repository
	members  member.Repository
	trainers trainer.Repository
	now      func() time.Time
}

func NewService(repo Repository, members member.Repository, trainers trainer.Repository) Service {
	return &service{
		repo:     repo,
		members:  members,
		trainers: trainers,
		now:      time.Now,
	}
}

func (s *service) BookSession(ctx context.Context, memberID, trainerID int, sessionDate time.Time, durationMinutes int, goals *string) (*PTSession, error) {
	if _, err := s.members.FindByID(ctx, memberID); err != nil {
		return nil, err
	}
	tr, err := s.trainers.FindByID(ctx, trainerID)
	if err != nil {
		return nil, err
	}
	if !sessionDate.After(s.now()) {
		return nil, ErrSessionPast
	}

	price := sessionPrice(tr.HourlyRate, durationMinutes)

	sess, err := s.repo.Create(ctx, memberID, trainerID, sessionDate, durationMinutes, TypeOneOnOneTraining, goals, price)
	if err != nil {
		return nil, err
	}

	metrics.RecordSessionBooked()
	logger.Info("pt session booked",
		"session_id", sess.ID, "member_id", memberID, "trainer_id", trainerID, "start", sessionDate)
	return sess, nil
}

// sessionPrice is the trainer's hourly rate prorated to the session
// length, with the hour fraction rounded half-up to two decimals. A
// trainer without a rate yields no price.
func sessionPrice(hourlyRate *decimal.Decimal, durationMinutes int) *decimal.Decimal {
	if hourlyRate == nil {
		return nil
	}
	fraction := decimal.NewFromInt(int64(durationMinutes)).DivRound(decimal.NewFromInt(60), 2)
	price := hourlyRate.Mul(fraction)
	return &price
}

func (s *service) BookForUser(ctx context.Context, userID, trainerID int, sessionDate time.Time, durationMinutes int, goals *string) (*PTSession, error) {
	m, err := s.members.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.BookSession(ctx, m.ID, trainerID, sessionDate, durationMinutes, goals)
}

func (s *service) UpdateStatus(ctx context.Context, sessionID int, status Status, notes string) (*PTSession, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	sess, err := s.repo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	var (
		cancellationReason *string
		cancelledAt        *time.Time
	)
	switch status {
	case StatusCompleted:
		if sess.SessionDate.After(s.now()) {
			return nil, ErrFutureCompletion
		}
	case StatusCancelled:
		now := s.now()
		cancelledAt = &now
		if notes != "" {
			cancellationReason = &notes
		}
	case StatusInProgress:
		if sess.Status != StatusScheduled && sess.Status != StatusConfirmed {
			return nil, ErrNotStartable
		}
	}

	updated, err := s.repo.UpdateStatus(ctx, sessionID, status, cancellationReason, cancelledAt)
	if err != nil {
		return nil, err
	}

	if status == StatusCancelled {
		metrics.RecordSessionCancelled()
	}
	logger.Info("pt session status updated", "session_id", sessionID, "status", string(status))
	return updated, nil
}

func (s *service) CancelSession(ctx context.Context, sessionID int, reason string) (*PTSession, error) {
	return s.UpdateStatus(ctx, sessionID, StatusCancelled, reason)
}

func (s *service) AddWorkoutNotes(ctx context.Context, sessionID int, workoutNotes string, clientFeedback *string, rating *float64) (*PTSession, error) {
	sess, err := s.repo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Status != StatusCompleted {
		return nil, ErrNotCompleted
	}
	if rating != nil && (*rating < 1.0 || *rating > 5.0) {
		return nil, ErrInvalidRating
	}
	return s.repo.AddWorkoutNotes(ctx, sessionID, workoutNotes, clientFeedback, rating)
}

func (s *service) GetSession(ctx context.Context, sessionID int) (*PTSession, error) {
	return s.repo.GetByID(ctx, sessionID)
}

func (s *service) GetMemberSessions(ctx context.Context, memberID int, upcomingOnly bool) ([]PTSession, error) {
	if upcomingOnly {
		return s.repo.ListUpcomingByMember(ctx, memberID, s.now())
	}
	return s.repo.ListByMember(ctx, memberID)
}

func (s *service) GetSessionsForUser(ctx context.Context, userID int, upcomingOnly bool) ([]PTSession, error) {
	m, err := s.members.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.GetMemberSessions(ctx, m.ID, upcomingOnly)
}

func (s *service) GetTrainerSessions(ctx context.Context, trainerID int, upcomingOnly bool) ([]PTSession, error) {
	if upcomingOnly {
		return s.repo.ListUpcomingByTrainer(ctx, trainerID, s.now())
	}
	return s.repo.ListByTrainer(ctx, trainerID)
}

func (s *service) GetCompletedSessionsForMember(ctx context.Context, memberID int) ([]PTSession, error) {
	return s.repo.ListCompletedByMember(ctx, memberID)
}

func (s *service) TrainerAverageRating(ctx context.Context, trainerID int) (float64, error) {
	return s.repo.AverageRatingForTrainer(ctx, trainerID)
}
