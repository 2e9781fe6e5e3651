package payment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

var ErrPaymentNotFound = errors.New("payment not found")

type Repository interface {
	// Create inserts a PROCESSING payment record before the gateway is
	// called, so failed charges leave an audit trail.
	Create(ctx context.Context, memberID int, subscriptionID *int, amount decimal.Decimal, currency string, method Method, notes *string, paymentDate time.Time) (*Payment, error)

	// Finalize records the gateway outcome on a PROCESSING payment.
	Finalize(ctx context.Context, id int, status Status, gatewayTransactionID, gatewayResponse, failureReason, receiptNumber *string) (*Payment, error)

	UpdateStatus(ctx context.Context, id int, status Status) (*Payment, error)
	FindByID(ctx context.Context, id int) (*Payment, error)
	ListByMember(ctx context.Context, memberID int) ([]Payment, error)
	ListBySubscription(ctx context.Context, subscriptionID int) ([]Payment, error)

	// CreditSubscription adds a completed charge to the subscription's
	// running total.
	CreditSubscription(ctx context.Context, subscriptionID int, amount decimal.Decimal) error
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const paymentColumns = `id, member_id, subscription_id, amount, currency, method, status,
	payment_date, gateway_transaction_id, gateway_response, failure_reason,
	receipt_number, notes, created_at`

func (r *repository) Create(ctx context.Context, memberID int, subscriptionID *int, amount decimal.Decimal, currency string, method Method, notes *string, paymentDate time.Time) (*Payment, error) {
	var p Payment
	err := r.db.GetContext(ctx, &p,
		`INSERT INTO payments (member_id, subscription_id, amount, currency, method, status, payment_date, notes)
		 VALUES ($1, $2, $3, $4, $5, 'PROCESSING', $6, $7)
		 RETURNING `+paymentColumns,
		memberID, subscriptionID, amount, currency, method, paymentDate, notes)
	if err != nil {
		return nil, fmt.Errorf("insert payment: %w", err)
	}
	return &p, nil
}

func (r *repository) Finalize(ctx context.Context, id int, status Status, gatewayTransactionID, gatewayResponse, failureReason, receiptNumber *string) (*Payment, error) {
	var p Payment
	err := r.db.GetContext(ctx, &p,
		`UPDATE payments
		 SET status = $2, gateway_transaction_id = $3, gateway_response = $4,
		     failure_reason = $5, receipt_number = $6
		 WHERE id = $1
		 RETURNING `+paymentColumns,
		id, status, gatewayTransactionID, gatewayResponse, failureReason, receiptNumber)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPaymentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("finalize payment: %w", err)
	}
	return &p, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id int, status Status) (*Payment, error) {
	var p Payment
	err := r.db.GetContext(ctx, &p,
		`UPDATE payments SET status = $2 WHERE id = $1 RETURNING `+paymentColumns,
		id, status)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPaymentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update payment status: %w", err)
	}
	return &p, nil
}

func (r *repository) FindByID(ctx context.Context, id int) (*Payment, error) {
	var p Payment
	err := r.db.GetContext(ctx, &p,
		`SELECT `+paymentColumns+` FROM payments WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPaymentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}
	return &p, nil
}

func (r *repository) ListByMember(ctx context.Context, memberID int) ([]Payment, error) {
	var payments []Payment
	err := r.db.SelectContext(ctx, &payments,
		`SELECT `+paymentColumns+` FROM payments WHERE member_id = $1 ORDER BY payment_date DESC`,
		memberID)
	if err != nil {
		return nil, fmt.Errorf("list member payments: %w", err)
	}
	return payments, nil
}

func (r *repository) ListBySubscription(ctx context.Context, subscriptionID int) ([]Payment, error) {
	var payments []Payment
	err := r.db.SelectContext(ctx, &payments,
		`SELECT `+paymentColumns+` FROM payments WHERE subscription_id = $1 ORDER BY payment_date DESC`,
		subscriptionID)
	if err != nil {
		return nil, fmt.Errorf("list subscription payments: %w", err)
	}
	return payments, nil
}

func (r *repository) CreditSubscription(ctx context.Context, subscriptionID int, amount decimal.Decimal) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE subscriptions SET total_paid = total_paid + $2 WHERE id = $1`,
		subscriptionID, amount)
	if err != nil {
		return fmt.Errorf("credit subscription: %w", err)
	}
	return nil
}
