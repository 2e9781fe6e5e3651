package schedule

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type Repository interface {
	CreateClass(ctx context.Context, name string, description *string, category ClassCategory, difficulty ClassDifficulty, price decimal.Decimal, maxCapacity int) (*GymClass, error)
	GetClassByID(ctx context.Context, id int) (*GymClass, error)
	ListActiveClasses(ctx context.Context) ([]GymClass, error)
	CreateSchedule(ctx context.Context, classID, trainerID int, startTime, endTime time.Time, maxCapacity int) (*ClassSchedule, error)
	GetScheduleByID(ctx context.Context, id int) (*ClassSchedule, error)
	ListSchedulesWithAvailability(ctx context.Context, onlyFuture bool) ([]ScheduleWithAvailability, error)
	DeactivateSchedule(ctx context.Context, id int) error
}
