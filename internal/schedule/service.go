package schedule

import (
	"context"
	"errors"
	"time"

	"gymcore/internal/trainer"

	"github.com/shopspring/decimal"
)

var (
	ErrClassNotFound    = errors.New("class not found")
	ErrScheduleNotFound = errors.New("schedule not found")
	ErrScheduleInvalid  = errors.New("invalid schedule")
	ErrClassInvalid     = errors.New("invalid class")
)

type Service interface {
	CreateClass(ctx context.Context, req CreateClassRequest) (*GymClass, error)
	ListClasses(ctx context.Context) ([]GymClass, error)
	CreateSchedule(ctx context.Context, req CreateScheduleRequest) (*ClassSchedule, error)
	GetSchedule(ctx context.Context, id int) (*ClassSchedule, error)
	ListSchedules(ctx context.Context, onlyFuture bool) ([]ScheduleWithAvailability, error)
	CancelSchedule(ctx context.Context, id int) error
}

type service struct {
	repo        Repository
	trainerRepo trainer.Repository
}

func NewService(repo Repository, trainerRepo trainer.Repository) Service {
	return &service{
		repo:        repo,
		trainerRepo: trainerRepo,
	}
}

func (s *service) CreateClass(ctx context.Context, req CreateClassRequest) (*GymClass, error) {
	price, err := decimal.NewFromString(req.Price)
	if err != nil || price.IsNegative() {
		return nil, ErrClassInvalid
	}

	if req.MaxCapacity <= 0 {
		return nil, ErrClassInvalid
	}

	return s.repo.CreateClass(
		ctx,
		req.Name,
		req.Description,
		ClassCategory(req.Category),
		ClassDifficulty(req.Difficulty),
		price,
		req.MaxCapacity,
	)
}

func (s *service) ListClasses(ctx context.Context) ([]GymClass, error) {
	return s.repo.ListActiveClasses(ctx)
}

func (s *service) CreateSchedule(ctx context.Context, req CreateScheduleRequest) (*ClassSchedule, error) {
	class, err := s.repo.GetClassByID(ctx, req.ClassID)
	if err != nil {
		return nil, ErrClassNotFound
	}

	if _, err := s.trainerRepo.FindByID(ctx, req.TrainerID); err != nil {
		return nil, trainer.ErrTrainerNotFound
	}

	startTime, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		return nil, ErrScheduleInvalid
	}

	endTime, err := time.Parse(time.RFC3339, req.EndTime)
	if err != nil {
		return nil, ErrScheduleInvalid
	}

	if !endTime.After(startTime) {
		return nil, ErrScheduleInvalid
	}

	// Capacity is copied from the class so the ledger check stays single-row.
	return s.repo.CreateSchedule(ctx, class.ID, req.TrainerID, startTime, endTime, class.MaxCapacity)
}

func (s *service) GetSchedule(ctx context.Context, id int) (*ClassSchedule, error) {
	cs, err := s.repo.GetScheduleByID(ctx, id)
	if err != nil {
		return nil, ErrScheduleNotFound
	}
	return cs, nil
}

func (s *service) ListSchedules(ctx context.Context, onlyFuture bool) ([]ScheduleWithAvailability, error) {
	return s.repo.ListSchedulesWithAvailability(ctx, onlyFuture)
}

// CancelSchedule takes a schedule off the timetable. Existing bookings
// stay on record; new bookings are refused once the row is inactive.
func (s *service) CancelSchedule(ctx context.Context, id int) error {
	if err := s.repo.DeactivateSchedule(ctx, id); err != nil {
		if errors.Is(err, ErrScheduleNotFoundOrInactive) {
			return ErrScheduleNotFound
		}
		return err
	}
	return nil
}
