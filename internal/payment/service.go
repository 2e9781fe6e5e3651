package payment

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"gymcore/internal/logger"
	"gymcore/internal/member"
	"gymcore/internal/metrics"
)

var (
	ErrInvalidAmount  = errors.New("payment amount must be positive")
	ErrInvalidMethod  = errors.New("unknown payment method")
	ErrNotRefundable  = errors.New("only completed payments can be refunded")
	ErrRefundTooLarge = errors.New("refund amount exceeds the original payment")
	ErrRefundFailed   = errors.New("gateway rejected the refund")
)

type Service interface {
	Process(ctx context.Context, memberID int, subscriptionID *int, amount decimal.Decimal, method Method, notes *string) (*Payment, error)
	ProcessForUser(ctx context.Context, userID int, subscriptionID *int, amount decimal.Decimal, method Method, notes *string) (*Payment, error)
	Refund(ctx context.Context, paymentID int, amount decimal.Decimal, reason string) (*Payment, error)
	Get(ctx context.Context, paymentID int) (*Payment, error)
	ListByMember(ctx context.Context, memberID int) ([]Payment, error)
	ListForUser(ctx context.Context, userID int) ([]Payment, error)
}

type service struct {
	repo     Repository
	members  member.Repository
	gateway  Gateway
	currency string
	now      func() time.Time
}

func NewService(repo Repository, members member.Repository, gateway Gateway, currency string) Service {
	return &service{
		repo:     repo,
		members:  members,
		gateway:  gateway,
		currency: currency,
		now:      time.Now,
	}
}

func (s *service) Process(ctx context.Context, memberID int, subscriptionID *int, amount decimal.Decimal, method Method, notes *string) (*Payment, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if !method.Valid() {
		return nil, ErrInvalidMethod
	}
	if _, err := s.members.FindByID(ctx, memberID); err != nil {
		return nil, err
	}

	p, err := s.repo.Create(ctx, memberID, subscriptionID, amount, s.currency, method, notes, s.now())
	if err != nil {
		return nil, err
	}

	result, err := s.gateway.ProcessPayment(ctx, amount, s.currency, method)
	if err != nil {
		reason := "gateway error: " + err.Error()
		finalized, finErr := s.repo.Finalize(ctx, p.ID, StatusFailed, nil, nil, &reason, nil)
		if finErr != nil {
			return nil, finErr
		}
		metrics.RecordPayment(string(StatusFailed))
		logger.Error("payment gateway call failed", "payment_id", p.ID, "error", err)
		return finalized, nil
	}

	var finalized *Payment
	if result.Success {
		receipt := s.receiptNumber()
		finalized, err = s.repo.Finalize(ctx, p.ID, StatusCompleted,
			&result.TransactionID, &result.Response, nil, &receipt)
	} else {
		finalized, err = s.repo.Finalize(ctx, p.ID, StatusFailed,
			&result.TransactionID, &result.Response, &result.ErrorMessage, nil)
	}
	if err != nil {
		return nil, err
	}

	if result.Success && subscriptionID != nil {
		if err := s.repo.CreditSubscription(ctx, *subscriptionID, amount); err != nil {
			// The charge already went through; the ledger can be
			// reconciled from the payments table.
			logger.Error("failed to credit subscription total",
				"subscription_id", *subscriptionID, "payment_id", finalized.ID, "error", err)
		}
	}

	metrics.RecordPayment(string(finalized.Status))
	logger.Info("payment processed",
		"payment_id", finalized.ID, "member_id", memberID, "amount", amount.String(), "status", string(finalized.Status))
	return finalized, nil
}

func (s *service) receiptNumber() string {
	return "RCP" + strconv.FormatInt(s.now().UnixMilli(), 10)
}

func (s *service) ProcessForUser(ctx context.Context, userID int, subscriptionID *int, amount decimal.Decimal, method Method, notes *string) (*Payment, error) {
	m, err := s.members.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.Process(ctx, m.ID, subscriptionID, amount, method, notes)
}

func (s *service) Refund(ctx context.Context, paymentID int, amount decimal.Decimal, reason string) (*Payment, error) {
	p, err := s.repo.FindByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if p.Status != StatusCompleted {
		return nil, ErrNotRefundable
	}
	if amount.GreaterThan(p.Amount) {
		return nil, ErrRefundTooLarge
	}

	txnID := ""
	if p.GatewayTransactionID != nil {
		txnID = *p.GatewayTransactionID
	}
	result, err := s.gateway.RefundPayment(ctx, txnID, amount, reason)
	if err != nil {
		return nil, err
	}
	if !result.Success {
		logger.Error("refund rejected", "payment_id", paymentID, "error", result.ErrorMessage)
		return nil, ErrRefundFailed
	}

	status := StatusPartiallyRefunded
	if amount.Equal(p.Amount) {
		status = StatusRefunded
	}
	updated, err := s.repo.UpdateStatus(ctx, paymentID, status)
	if err != nil {
		return nil, err
	}

	metrics.RecordPayment(string(status))
	logger.Info("payment refunded", "payment_id", paymentID, "amount", amount.String(), "status", string(status))
	return updated, nil
}

func (s *service) Get(ctx context.Context, paymentID int) (*Payment, error) {
	return s.repo.FindByID(ctx, paymentID)
}

func (s *service) ListByMember(ctx context.Context, memberID int) ([]Payment, error) {
	return s.repo.ListByMember(ctx, memberID)
}

func (s *service) ListForUser(ctx context.Context, userID int) ([]Payment, error) {
	m, err := s.members.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByMember(ctx, m.ID)
}
