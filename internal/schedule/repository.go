package schedule

import (
	"context"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

var ErrScheduleNotFoundOrInactive = errors.New("schedule not found or already inactive")

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateClass(ctx context.Context, name string, description *string, category ClassCategory, difficulty ClassDifficulty, price decimal.Decimal, maxCapacity int) (*GymClass, error) {
	query := `
		INSERT INTO gym_classes (name, description, category, difficulty, price, max_capacity)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, name, description, category, difficulty, price, max_capacity, active, created_at
	`

	var gc GymClass
	err := r.db.GetContext(ctx, &gc, query, name, description, category, difficulty, price, maxCapacity)
	if err != nil {
		return nil, err
	}

	return &gc, nil
}

func (r *repository) GetClassByID(ctx context.Context, id int) (*GymClass, error) {
	query := `
		SELECT id, name, description, category, difficulty, price, max_capacity, active, created_at
		FROM gym_classes
		WHERE id = $1
	`

	var gc GymClass
	err := r.db.GetContext(ctx, &gc, query, id)
	if err != nil {
		return nil, err
	}

	return &gc, nil
}

func (r *repository) ListActiveClasses(ctx context.Context) ([]GymClass, error) {
	query := `
		SELECT id, name, description, category, difficulty, price, max_capacity, active, created_at
		FROM gym_classes
		WHERE active = TRUE
		ORDER BY name
	`

	var classes []GymClass
	err := r.db.SelectContext(ctx, &classes, query)
	if err != nil {
		return nil, err
	}

	return classes, nil
}

func (r *repository) CreateSchedule(ctx context.Context, classID, trainerID int, startTime, endTime time.Time, maxCapacity int) (*ClassSchedule, error) {
	query := `
		INSERT INTO class_schedules (class_id, trainer_id, start_time, end_time, max_capacity)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, class_id, trainer_id, start_time, end_time, max_capacity, current_bookings, active, created_at
	`

	var cs ClassSchedule
	err := r.db.GetContext(ctx, &cs, query, classID, trainerID, startTime, endTime, maxCapacity)
	if err != nil {
		return nil, err
	}

	return &cs, nil
}

func (r *repository) GetScheduleByID(ctx context.Context, id int) (*ClassSchedule, error) {
	query := `
		SELECT id, class_id, trainer_id, start_time, end_time, max_capacity, current_bookings, active, created_at
		FROM class_schedules
		WHERE id = $1
	`

	var cs ClassSchedule
	err := r.db.GetContext(ctx, &cs, query, id)
	if err != nil {
		return nil, err
	}

	return &cs, nil
}

func (r *repository) ListSchedulesWithAvailability(ctx context.Context, onlyFuture bool) ([]ScheduleWithAvailability, error) {
	query := `
		SELECT
			cs.id,
			cs.class_id,
			cs.trainer_id,
			cs.start_time,
			cs.end_time,
			cs.max_capacity,
			cs.current_bookings,
			cs.active,
			cs.created_at,
			gc.name AS class_name
		FROM class_schedules cs
		JOIN gym_classes gc ON cs.class_id = gc.id
		WHERE cs.active = TRUE
	`
	if onlyFuture {
		query += ` AND cs.start_time > NOW()`
	}
	query += ` ORDER BY cs.start_time`

	var schedules []ScheduleWithAvailability
	err := r.db.SelectContext(ctx, &schedules, query)
	if err != nil {
		return nil, err
	}

	for i := range schedules {
		left := schedules[i].MaxCapacity - schedules[i].CurrentBookings
		if left < 0 {
			left = 0
		}
		schedules[i].SpotsLeft = left
		schedules[i].IsFull = left == 0
	}

	return schedules, nil
}

func (r *repository) DeactivateSchedule(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE class_schedules
		SET active = FALSE
		WHERE id = $1 AND active = TRUE
	`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrScheduleNotFoundOrInactive
	}

	return nil
}
