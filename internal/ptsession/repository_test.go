package ptsession

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

	"gymcore/internal/trainer"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "postgres"), mock
}

var sessionRowColumns = []string{
	"id", "member_id", "trainer_id", "session_date", "duration_minutes", "status",
	"session_type", "goals", "workout_notes", "client_feedback", "rating", "price",
	"cancellation_reason", "cancelled_at", "created_at",
}

func TestCreate_Success(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)
	start := time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC)
	end := start.Add(60 * time.Minute)
	price := decimal.NewFromInt(80)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id FROM trainers WHERE id = $1 FOR UPDATE`)).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM pt_sessions`)).
		WithArgs(2, start, end).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO pt_sessions`)).
		WithArgs(7, 2, start, 60, TypeOneOnOneTraining, nil, &price).
		WillReturnRows(sqlmock.NewRows(sessionRowColumns).
			AddRow(55, 7, 2, start, 60, "SCHEDULED", "ONE_ON_ONE_TRAINING", nil, nil, nil, nil, "80", nil, nil, time.Now()))
	mock.ExpectCommit()

	sess, err := repo.Create(context.Background(), 7, 2, start, 60, TypeOneOnOneTraining, nil, &price)

	require.NoError(t, err)
	assert.Equal(t, 55, sess.ID)
	assert.Equal(t, StatusScheduled, sess.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_TrainerBusy(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)
	start := time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC)
	end := start.Add(60 * time.Minute)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id FROM trainers WHERE id = $1 FOR UPDATE`)).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM pt_sessions`)).
		WithArgs(2, start, end).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectRollback()

	_, err := repo.Create(context.Background(), 7, 2, start, 60, TypeOneOnOneTraining, nil, nil)

	assert.ErrorIs(t, err, ErrTrainerBusy)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_UnknownTrainer(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)
	start := time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id FROM trainers WHERE id = $1 FOR UPDATE`)).
		WithArgs(99).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	_, err := repo.Create(context.Background(), 7, 99, start, 60, TypeOneOnOneTraining, nil, nil)

	assert.ErrorIs(t, err, trainer.ErrTrainerNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAverageRatingForTrainer_NoRatings(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COALESCE(AVG(rating), 0) FROM pt_sessions`)).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(0.0))

	avg, err := repo.AverageRatingForTrainer(context.Background(), 2)

	require.NoError(t, err)
	assert.Zero(t, avg)
}
