package subscription

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gymcore/internal/member"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "postgres"), mock
}

var subscriptionRowColumns = []string{
	"id", "member_id", "plan_id", "status", "start_date", "end_date",
	"auto_renewal", "billing_day", "last_billing_date", "next_billing_date",
	"freeze_start_date", "freeze_end_date", "notes", "total_paid", "created_at",
}

func TestCreate_Success(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 30)
	next := start.AddDate(0, 1, 0)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id FROM members WHERE id = $1 FOR UPDATE`)).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM subscriptions WHERE member_id = $1 AND status = 'ACTIVE')`)).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO subscriptions`)).
		WithArgs(7, 3, StatusActive, start, &end, true, nil, &next).
		WillReturnRows(sqlmock.NewRows(subscriptionRowColumns).
			AddRow(42, 7, 3, "ACTIVE", start, end, true, nil, nil, next, nil, nil, nil, "0", start))
	mock.ExpectCommit()

	sub, err := repo.Create(context.Background(), &Subscription{
		MemberID: 7, PlanID: 3, Status: StatusActive, StartDate: start,
		EndDate: &end, AutoRenewal: true, NextBillingDate: &next,
	})

	require.NoError(t, err)
	assert.Equal(t, 42, sub.ID)
	assert.Equal(t, StatusActive, sub.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_ExistingActiveSubscription(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id FROM members WHERE id = $1 FOR UPDATE`)).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM subscriptions WHERE member_id = $1 AND status = 'ACTIVE')`)).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectRollback()

	_, err := repo.Create(context.Background(), &Subscription{
		MemberID: 7, PlanID: 3, Status: StatusActive, StartDate: time.Now(),
	})

	assert.ErrorIs(t, err, ErrAlreadySubscribed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_UnknownMember(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id FROM members WHERE id = $1 FOR UPDATE`)).
		WithArgs(99).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	_, err := repo.Create(context.Background(), &Subscription{
		MemberID: 99, PlanID: 3, Status: StatusActive, StartDate: time.Now(),
	})

	assert.ErrorIs(t, err, member.ErrMemberNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM subscriptions WHERE id = $1`)).
		WithArgs(404).
		WillReturnRows(sqlmock.NewRows(subscriptionRowColumns))

	_, err := repo.GetByID(context.Background(), 404)

	assert.ErrorIs(t, err, ErrSubscriptionNotFound)
}
