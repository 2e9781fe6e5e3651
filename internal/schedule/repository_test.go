package schedule

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestCreateClass(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)

	rows := sqlmock.NewRows([]string{"id", "name", "description", "category", "difficulty", "price", "max_capacity", "active", "created_at"}).
		AddRow(1, "Morning Yoga", nil, "YOGA", "BEGINNER", "12.50", 20, true, time.Now())

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO gym_classes`)).
		WithArgs("Morning Yoga", nil, CategoryYoga, DifficultyBeginner, decimal.RequireFromString("12.50"), 20).
		WillReturnRows(rows)

	gc, err := repo.CreateClass(context.Background(), "Morning Yoga", nil, CategoryYoga, DifficultyBeginner, decimal.RequireFromString("12.50"), 20)

	require.NoError(t, err)
	assert.Equal(t, 1, gc.ID)
	assert.Equal(t, 20, gc.MaxCapacity)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListSchedulesWithAvailability_ComputesSpots(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "class_id", "trainer_id", "start_time", "end_time", "max_capacity", "current_bookings", "active", "created_at", "class_name"}).
		AddRow(1, 1, 3, now, now.Add(time.Hour), 20, 18, true, now, "Morning Yoga").
		AddRow(2, 1, 3, now, now.Add(time.Hour), 20, 20, true, now, "Morning Yoga").
		AddRow(3, 1, 3, now, now.Add(time.Hour), 20, 25, true, now, "Morning Yoga")

	mock.ExpectQuery(regexp.QuoteMeta(`FROM class_schedules cs`)).WillReturnRows(rows)

	schedules, err := repo.ListSchedulesWithAvailability(context.Background(), false)

	require.NoError(t, err)
	require.Len(t, schedules, 3)

	assert.Equal(t, 2, schedules[0].SpotsLeft)
	assert.False(t, schedules[0].IsFull)

	assert.Equal(t, 0, schedules[1].SpotsLeft)
	assert.True(t, schedules[1].IsFull)

	// Overbooked rows clamp to zero instead of going negative.
	assert.Equal(t, 0, schedules[2].SpotsLeft)
	assert.True(t, schedules[2].IsFull)
}

func TestListSchedulesWithAvailability_OnlyFuture(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)

	rows := sqlmock.NewRows([]string{"id", "class_id", "trainer_id", "start_time", "end_time", "max_capacity", "current_bookings", "active", "created_at", "class_name"})

	mock.ExpectQuery(regexp.QuoteMeta(`AND cs.start_time > NOW()`)).WillReturnRows(rows)

	_, err := repo.ListSchedulesWithAvailability(context.Background(), true)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeactivateSchedule_Success(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE class_schedules`)).
		WithArgs(5).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.DeactivateSchedule(context.Background(), 5)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeactivateSchedule_AlreadyInactive(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE class_schedules`)).
		WithArgs(5).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeactivateSchedule(context.Background(), 5)

	assert.ErrorIs(t, err, ErrScheduleNotFoundOrInactive)
}
