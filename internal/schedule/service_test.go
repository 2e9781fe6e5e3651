package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gymcore/internal/trainer"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) CreateClass(ctx context.Context, name string, description *string, category ClassCategory, difficulty ClassDifficulty, price decimal.Decimal, maxCapacity int) (*GymClass, error) {
	args := m.Called(ctx, name, description, category, difficulty, price, maxCapacity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*GymClass), args.Error(1)
}

func (m *mockRepo) GetClassByID(ctx context.Context, id int) (*GymClass, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*GymClass), args.Error(1)
}

func (m *mockRepo) ListActiveClasses(ctx context.Context) ([]GymClass, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]GymClass), args.Error(1)
}

func (m *mockRepo) CreateSchedule(ctx context.Context, classID, trainerID int, startTime, endTime time.Time, maxCapacity int) (*ClassSchedule, error) {
	args := m.Called(ctx, classID, trainerID, startTime, endTime, maxCapacity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ClassSchedule), args.Error(1)
}

func (m *mockRepo) GetScheduleByID(ctx context.Context, id int) (*ClassSchedule, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ClassSchedule), args.Error(1)
}

func (m *mockRepo) ListSchedulesWithAvailability(ctx context.Context, onlyFuture bool) ([]ScheduleWithAvailability, error) {
	args := m.Called(ctx, onlyFuture)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ScheduleWithAvailability), args.Error(1)
}

func (m *mockRepo) DeactivateSchedule(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockTrainerRepo struct {
	mock.Mock
}

func (m *mockTrainerRepo) Create(ctx context.Context, userID int, fullName string, specialization *string, hourlyRate *decimal.Decimal) (*trainer.Trainer, error) {
	args := m.Called(ctx, userID, fullName, specialization, hourlyRate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trainer.Trainer), args.Error(1)
}

func (m *mockTrainerRepo) FindByID(ctx context.Context, id int) (*trainer.Trainer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trainer.Trainer), args.Error(1)
}

func (m *mockTrainerRepo) ListActive(ctx context.Context) ([]trainer.Trainer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trainer.Trainer), args.Error(1)
}

func yogaClass() *GymClass {
	return &GymClass{
		ID:          1,
		Name:        "Morning Yoga",
		Category:    CategoryYoga,
		Difficulty:  DifficultyBeginner,
		Price:       decimal.RequireFromString("12.50"),
		MaxCapacity: 20,
		Active:      true,
	}
}

func TestCreateClass_Success(t *testing.T) {
	repo := new(mockRepo)
	trainers := new(mockTrainerRepo)
	svc := NewService(repo, trainers)

	repo.On("CreateClass", mock.Anything, "Morning Yoga", (*string)(nil), CategoryYoga, DifficultyBeginner, decimal.RequireFromString("12.50"), 20).
		Return(yogaClass(), nil)

	gc, err := svc.CreateClass(context.Background(), CreateClassRequest{
		Name:        "Morning Yoga",
		Category:    string(CategoryYoga),
		Difficulty:  string(DifficultyBeginner),
		Price:       "12.50",
		MaxCapacity: 20,
	})

	require.NoError(t, err)
	assert.Equal(t, "Morning Yoga", gc.Name)
	repo.AssertExpectations(t)
}

func TestCreateClass_BadPrice(t *testing.T) {
	svc := NewService(new(mockRepo), new(mockTrainerRepo))

	for _, price := range []string{"not-a-number", "-5.00"} {
		_, err := svc.CreateClass(context.Background(), CreateClassRequest{
			Name:        "Spin",
			Category:    string(CategoryCardio),
			Difficulty:  string(DifficultyIntermediate),
			Price:       price,
			MaxCapacity: 10,
		})
		assert.ErrorIs(t, err, ErrClassInvalid, "price %q should be rejected", price)
	}
}

func TestCreateClass_ZeroCapacity(t *testing.T) {
	svc := NewService(new(mockRepo), new(mockTrainerRepo))

	_, err := svc.CreateClass(context.Background(), CreateClassRequest{
		Name:        "Spin",
		Category:    string(CategoryCardio),
		Difficulty:  string(DifficultyIntermediate),
		Price:       "10.00",
		MaxCapacity: 0,
	})

	assert.ErrorIs(t, err, ErrClassInvalid)
}

func TestCreateSchedule_CopiesClassCapacity(t *testing.T) {
	repo := new(mockRepo)
	trainers := new(mockTrainerRepo)
	svc := NewService(repo, trainers)

	start := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	repo.On("GetClassByID", mock.Anything, 1).Return(yogaClass(), nil)
	trainers.On("FindByID", mock.Anything, 3).Return(&trainer.Trainer{ID: 3, Active: true}, nil)
	repo.On("CreateSchedule", mock.Anything, 1, 3, start, end, 20).
		Return(&ClassSchedule{ID: 7, ClassID: 1, TrainerID: 3, StartTime: start, EndTime: end, MaxCapacity: 20, Active: true}, nil)

	cs, err := svc.CreateSchedule(context.Background(), CreateScheduleRequest{
		ClassID:   1,
		TrainerID: 3,
		StartTime: start.Format(time.RFC3339),
		EndTime:   end.Format(time.RFC3339),
	})

	require.NoError(t, err)
	assert.Equal(t, 20, cs.MaxCapacity)
	repo.AssertExpectations(t)
}

func TestCreateSchedule_UnknownClass(t *testing.T) {
	repo := new(mockRepo)
	svc := NewService(repo, new(mockTrainerRepo))

	repo.On("GetClassByID", mock.Anything, 99).Return(nil, assert.AnError)

	_, err := svc.CreateSchedule(context.Background(), CreateScheduleRequest{
		ClassID:   99,
		TrainerID: 3,
		StartTime: "2025-04-01T09:00:00Z",
		EndTime:   "2025-04-01T10:00:00Z",
	})

	assert.ErrorIs(t, err, ErrClassNotFound)
}

func TestCreateSchedule_UnknownTrainer(t *testing.T) {
	repo := new(mockRepo)
	trainers := new(mockTrainerRepo)
	svc := NewService(repo, trainers)

	repo.On("GetClassByID", mock.Anything, 1).Return(yogaClass(), nil)
	trainers.On("FindByID", mock.Anything, 42).Return(nil, assert.AnError)

	_, err := svc.CreateSchedule(context.Background(), CreateScheduleRequest{
		ClassID:   1,
		TrainerID: 42,
		StartTime: "2025-04-01T09:00:00Z",
		EndTime:   "2025-04-01T10:00:00Z",
	})

	assert.ErrorIs(t, err, trainer.ErrTrainerNotFound)
}

func TestCreateSchedule_EndBeforeStart(t *testing.T) {
	repo := new(mockRepo)
	trainers := new(mockTrainerRepo)
	svc := NewService(repo, trainers)

	repo.On("GetClassByID", mock.Anything, 1).Return(yogaClass(), nil)
	trainers.On("FindByID", mock.Anything, 3).Return(&trainer.Trainer{ID: 3}, nil)

	_, err := svc.CreateSchedule(context.Background(), CreateScheduleRequest{
		ClassID:   1,
		TrainerID: 3,
		StartTime: "2025-04-01T10:00:00Z",
		EndTime:   "2025-04-01T09:00:00Z",
	})

	assert.ErrorIs(t, err, ErrScheduleInvalid)
}

func TestCancelSchedule_MapsInactiveToNotFound(t *testing.T) {
	repo := new(mockRepo)
	svc := NewService(repo, new(mockTrainerRepo))

	repo.On("DeactivateSchedule", mock.Anything, 9).Return(ErrScheduleNotFoundOrInactive)

	err := svc.CancelSchedule(context.Background(), 9)
	assert.ErrorIs(t, err, ErrScheduleNotFound)
}

func TestGetSchedule_NotFound(t *testing.T) {
	repo := new(mockRepo)
	svc := NewService(repo, new(mockTrainerRepo))

	repo.On("GetScheduleByID", mock.Anything, 5).Return(nil, assert.AnError)

	_, err := svc.GetSchedule(context.Background(), 5)
	assert.ErrorIs(t, err, ErrScheduleNotFound)
}
