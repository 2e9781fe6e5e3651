package payment

import (
	"context"
	"math/rand"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"gymcore/internal/logger"
)

// Result is the gateway's answer to a charge or refund attempt.
type Result struct {
	Success       bool
	TransactionID string
	Response      string
	ErrorMessage  string
}

type Gateway interface {
	ProcessPayment(ctx context.Context, amount decimal.Decimal, currency string, method Method) (*Result, error)
	RefundPayment(ctx context.Context, transactionID string, amount decimal.Decimal, reason string) (*Result, error)
}

// MockGateway simulates an external payment provider. Charges succeed
// about 90% of the time; refunds always succeed.
type MockGateway struct {
	successRate float64
	roll        func() float64
}

func NewMockGateway() *MockGateway {
	return &MockGateway{
		successRate: 0.9,
		roll:        rand.Float64,
	}
}

func (g *MockGateway) ProcessPayment(ctx context.Context, amount decimal.Decimal, currency string, method Method) (*Result, error) {
	logger.Info("mock gateway charge", "amount", amount.String(), "currency", currency, "method", string(method))

	if g.roll() >= g.successRate {
		return &Result{
			Success:       false,
			TransactionID: uuid.NewString(),
			Response:      "DECLINED",
			ErrorMessage:  "card declined by issuer",
		}, nil
	}
	return &Result{
		Success:       true,
		TransactionID: uuid.NewString(),
		Response:      "APPROVED",
	}, nil
}

func (g *MockGateway) RefundPayment(ctx context.Context, transactionID string, amount decimal.Decimal, reason string) (*Result, error) {
	logger.Info("mock gateway refund", "transaction_id", transactionID, "amount", amount.String())

	return &Result{
		Success:       true,
		TransactionID: uuid.NewString(),
		Response:      "REFUND_APPROVED",
	}, nil
}
