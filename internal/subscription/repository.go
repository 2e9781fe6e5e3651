package subscription

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"gymcore/internal/member"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const subscriptionColumns = `id, member_id, plan_id, status, start_date, end_date,
	auto_renewal, billing_day, last_billing_date, next_billing_date,
	freeze_start_date, freeze_end_date, notes, total_paid, created_at`

func (r *repository) Create(ctx context.Context, sub *Subscription) (*Subscription, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	// The member row lock serializes concurrent subscription attempts
	// so at most one ACTIVE subscription can exist per member.
	var locked int
	err = tx.GetContext(ctx, &locked, `SELECT id FROM members WHERE id = $1 FOR UPDATE`, sub.MemberID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, member.ErrMemberNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("lock member: %w", err)
	}

	var exists bool
	err = tx.GetContext(ctx, &exists,
		`SELECT EXISTS(SELECT 1 FROM subscriptions WHERE member_id = $1 AND status = 'ACTIVE')`,
		sub.MemberID)
	if err != nil {
		return nil, fmt.Errorf("check active subscription: %w", err)
	}
	if exists {
		return nil, ErrAlreadySubscribed
	}

	var created Subscription
	err = tx.GetContext(ctx, &created,
		`INSERT INTO subscriptions
			(member_id, plan_id, status, start_date, end_date, auto_renewal, billing_day, next_billing_date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING `+subscriptionColumns,
		sub.MemberID, sub.PlanID, sub.Status, sub.StartDate, sub.EndDate,
		sub.AutoRenewal, sub.BillingDay, sub.NextBillingDate)
	if err != nil {
		return nil, fmt.Errorf("insert subscription: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit subscription: %w", err)
	}
	return &created, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Subscription, error) {
	var sub Subscription
	err := r.db.GetContext(ctx, &sub,
		`SELECT `+subscriptionColumns+` FROM subscriptions WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSubscriptionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get subscription: %w", err)
	}
	return &sub, nil
}

func (r *repository) Update(ctx context.Context, sub *Subscription) (*Subscription, error) {
	var updated Subscription
	err := r.db.GetContext(ctx, &updated,
		`UPDATE subscriptions
		 SET status = $2, end_date = $3, auto_renewal = $4,
		     last_billing_date = $5, next_billing_date = $6,
		     freeze_start_date = $7, freeze_end_date = $8,
		     notes = $9, total_paid = $10
		 WHERE id = $1
		 RETURNING `+subscriptionColumns,
		sub.ID, sub.Status, sub.EndDate, sub.AutoRenewal,
		sub.LastBillingDate, sub.NextBillingDate,
		sub.FreezeStartDate, sub.FreezeEndDate,
		sub.Notes, sub.TotalPaid)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSubscriptionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update subscription: %w", err)
	}
	return &updated, nil
}

func (r *repository) ListByMember(ctx context.Context, memberID int) ([]Subscription, error) {
	var subs []Subscription
	err := r.db.SelectContext(ctx, &subs,
		`SELECT `+subscriptionColumns+` FROM subscriptions
		 WHERE member_id = $1 ORDER BY start_date DESC`,
		memberID)
	if err != nil {
		return nil, fmt.Errorf("list member subscriptions: %w", err)
	}
	return subs, nil
}

func (r *repository) ListActive(ctx context.Context) ([]Subscription, error) {
	var subs []Subscription
	err := r.db.SelectContext(ctx, &subs,
		`SELECT `+subscriptionColumns+` FROM subscriptions
		 WHERE status = 'ACTIVE' ORDER BY start_date DESC`)
	if err != nil {
		return nil, fmt.Errorf("list active subscriptions: %w", err)
	}
	return subs, nil
}

func (r *repository) ListExpiring(ctx context.Context, from, to time.Time) ([]Subscription, error) {
	var subs []Subscription
	err := r.db.SelectContext(ctx, &subs,
		`SELECT `+subscriptionColumns+` FROM subscriptions
		 WHERE status = 'ACTIVE' AND end_date IS NOT NULL AND end_date BETWEEN $1 AND $2
		 ORDER BY end_date ASC`,
		from, to)
	if err != nil {
		return nil, fmt.Errorf("list expiring subscriptions: %w", err)
	}
	return subs, nil
}

func (r *repository) ListOverdue(ctx context.Context, asOf time.Time) ([]Subscription, error) {
	var subs []Subscription
	err := r.db.SelectContext(ctx, &subs,
		`SELECT `+subscriptionColumns+` FROM subscriptions
		 WHERE status = 'ACTIVE' AND next_billing_date IS NOT NULL AND next_billing_date < $1
		 ORDER BY next_billing_date ASC`,
		asOf)
	if err != nil {
		return nil, fmt.Errorf("list overdue subscriptions: %w", err)
	}
	return subs, nil
}
