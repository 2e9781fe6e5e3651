package ptsession

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusScheduled   Status = "SCHEDULED"
	StatusConfirmed   Status = "CONFIRMED"
	StatusInProgress  Status = "IN_PROGRESS"
	StatusCompleted   Status = "COMPLETED"
	StatusCancelled   Status = "CANCELLED"
	StatusNoShow      Status = "NO_SHOW"
	StatusRescheduled Status = "RESCHEDULED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusInProgress, StatusCompleted,
		StatusCancelled, StatusNoShow, StatusRescheduled:
		return true
	}
	return false
}

type SessionType string

const (
	TypeInitialAssessment    SessionType = "INITIAL_ASSESSMENT"
	TypeOneOnOneTraining     SessionType = "ONE_ON_ONE_TRAINING"
	TypeSmallGroup           SessionType = "SMALL_GROUP"
	TypeRehabilitation       SessionType = "REHABILITATION"
	TypeSportsSpecific       SessionType = "SPORTS_SPECIFIC"
	TypeNutritionConsultation SessionType = "NUTRITION_CONSULTATION"
	TypeOther                SessionType = "OTHER"
)

type PTSession struct {
	ID                 int              `db:"id" json:"id"`
	MemberID           int              `db:"member_id" json:"member_id"`
	TrainerID          int              `db:"trainer_id" json:"trainer_id"`
	SessionDate        time.Time        `db:"session_date" json:"session_date"`
	DurationMinutes    int              `db:"duration_minutes" json:"duration_minutes"`
	Status             Status           `db:"status" json:"status"`
	SessionType        SessionType      `db:"session_type" json:"session_type"`
	Goals              *string          `db:"goals" json:"goals,omitempty"`
	WorkoutNotes       *string          `db:"workout_notes" json:"workout_notes,omitempty"`
	ClientFeedback     *string          `db:"client_feedback" json:"client_feedback,omitempty"`
	Rating             *float64         `db:"rating" json:"rating,omitempty"`
	Price              *decimal.Decimal `db:"price" json:"price,omitempty"`
	CancellationReason *string          `db:"cancellation_reason" json:"cancellation_reason,omitempty"`
	CancelledAt        *time.Time       `db:"cancelled_at" json:"cancelled_at,omitempty"`
	CreatedAt          time.Time        `db:"created_at" json:"created_at"`
}

// EndTime is the exclusive end of the session's time slot.
func (s *PTSession) EndTime() time.Time {
	return s.SessionDate.Add(time.Duration(s.DurationMinutes) * time.Minute)
}

type BookSessionRequest struct {
	TrainerID       int     `json:"trainer_id" binding:"required,gt=0"`
	SessionDate     string  `json:"session_date" binding:"required"`
	DurationMinutes int     `json:"duration_minutes" binding:"required,gte=15,lte=240"`
	Goals           *string `json:"goals,omitempty"`
}

type UpdateStatusRequest struct {
	Status Status `json:"status" binding:"required"`
	Notes  string `json:"notes,omitempty"`
}

type WorkoutNotesRequest struct {
	WorkoutNotes   string   `json:"workout_notes" binding:"required"`
	ClientFeedback *string  `json:"client_feedback,omitempty"`
	Rating         *float64 `json:"rating,omitempty"`
}
