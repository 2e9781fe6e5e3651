package payment

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gymcore/internal/member"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) Create(ctx context.Context, memberID int, subscriptionID *int, amount decimal.Decimal, currency string, method Method, notes *string, paymentDate time.Time) (*Payment, error) {
	args := m.Called(ctx, memberID, subscriptionID, amount, currency, method, notes, paymentDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Payment), args.Error(1)
}

func (m *mockRepo) Finalize(ctx context.Context, id int, status Status, gatewayTransactionID, gatewayResponse, failureReason, receiptNumber *string) (*Payment, error) {
	args := m.Called(ctx, id, status, gatewayTransactionID, gatewayResponse, failureReason, receiptNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Payment), args.Error(1)
}

func (m *mockRepo) UpdateStatus(ctx context.Context, id int, status Status) (*Payment, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Payment), args.Error(1)
}

func (m *mockRepo) FindByID(ctx context.Context, id int) (*Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Payment), args.Error(1)
}

func (m *mockRepo) ListByMember(ctx context.Context, memberID int) ([]Payment, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Payment), args.Error(1)
}

func (m *mockRepo) CreditSubscription(ctx context.Context, subscriptionID int, amount decimal.Decimal) error {
	args := m.Called(ctx, subscriptionID, amount)
	return args.Error(0)
}

func (m *mockRepo) ListBySubscription(ctx context.Context, subscriptionID int) ([]Payment, error) {
	args := m.Called(ctx, subscriptionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Payment), args.Error(1)
}

type mockMemberRepo struct {
	mock.Mock
}

func (m *mockMemberRepo) Create(ctx context.Context, userID int, fullName string, phone *string) (*member.Member, error) {
	args := m.Called(ctx, userID, fullName, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*member.Member), args.Error(1)
}

func (m *mockMemberRepo) FindByID(ctx context.Context, id int) (*member.Member, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*member.Member), args.Error(1)
}

func (m *mockMemberRepo) FindByUserID(ctx context.Context, userID int) (*member.Member, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*member.Member), args.Error(1)
}

func (m *mockMemberRepo) ListActive(ctx context.Context) ([]member.Member, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]member.Member), args.Error(1)
}

// fakeGateway returns scripted results instead of rolling dice.
type fakeGateway struct {
	chargeResult *Result
	chargeErr    error
	refundResult *Result
	refundErr    error
}

func (g *fakeGateway) ProcessPayment(ctx context.Context, amount decimal.Decimal, currency string, method Method) (*Result, error) {
	return g.chargeResult, g.chargeErr
}

func (g *fakeGateway) RefundPayment(ctx context.Context, transactionID string, amount decimal.Decimal, reason string) (*Result, error) {
	return g.refundResult, g.refundErr
}

var testNow = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func newTestService(repo *mockRepo, members *mockMemberRepo, gw Gateway) *service {
	return &service{
		repo:     repo,
		members:  members,
		gateway:  gw,
		currency: "USD",
		now:      func() time.Time { return testNow },
	}
}

func TestProcess_SuccessfulCharge(t *testing.T) {
	repo := new(mockRepo)
	members := new(mockMemberRepo)
	gw := &fakeGateway{chargeResult: &Result{Success: true, TransactionID: "txn-1", Response: "APPROVED"}}
	svc := newTestService(repo, members, gw)

	amount := decimal.RequireFromString("49.99")
	members.On("FindByID", mock.Anything, 7).Return(&member.Member{ID: 7, Active: true}, nil)
	repo.On("Create", mock.Anything, 7, (*int)(nil), amount, "USD", MethodCreditCard, (*string)(nil), testNow).
		Return(&Payment{ID: 9, MemberID: 7, Amount: amount, Status: StatusProcessing}, nil)
	repo.On("Finalize", mock.Anything, 9, StatusCompleted,
		mock.MatchedBy(func(id *string) bool { return id != nil && *id == "txn-1" }),
		mock.Anything,
		(*string)(nil),
		mock.MatchedBy(func(rcp *string) bool { return rcp != nil && strings.HasPrefix(*rcp, "RCP") })).
		Return(&Payment{ID: 9, Status: StatusCompleted}, nil)

	p, err := svc.Process(context.Background(), 7, nil, amount, MethodCreditCard, nil)

	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, p.Status)
	repo.AssertExpectations(t)
}

func TestProcess_CompletedChargeCreditsSubscription(t *testing.T) {
	repo := new(mockRepo)
	members := new(mockMemberRepo)
	gw := &fakeGateway{chargeResult: &Result{Success: true, TransactionID: "txn-2", Response: "APPROVED"}}
	svc := newTestService(repo, members, gw)

	amount := decimal.RequireFromString("49.90")
	subID := 3
	members.On("FindByID", mock.Anything, 7).Return(&member.Member{ID: 7, Active: true}, nil)
	repo.On("Create", mock.Anything, 7, &subID, amount, "USD", MethodCreditCard, (*string)(nil), testNow).
		Return(&Payment{ID: 11, MemberID: 7, Amount: amount, Status: StatusProcessing}, nil)
	repo.On("Finalize", mock.Anything, 11, StatusCompleted, mock.Anything, mock.Anything, (*string)(nil), mock.Anything).
		Return(&Payment{ID: 11, Status: StatusCompleted}, nil)
	repo.On("CreditSubscription", mock.Anything, 3, amount).Return(nil)

	_, err := svc.Process(context.Background(), 7, &subID, amount, MethodCreditCard, nil)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestProcess_DeclinedChargeSkipsSubscriptionCredit(t *testing.T) {
	repo := new(mockRepo)
	members := new(mockMemberRepo)
	gw := &fakeGateway{chargeResult: &Result{Success: false, TransactionID: "txn-3", Response: "DECLINED", ErrorMessage: "card declined by issuer"}}
	svc := newTestService(repo, members, gw)

	amount := decimal.RequireFromString("49.90")
	subID := 3
	members.On("FindByID", mock.Anything, 7).Return(&member.Member{ID: 7, Active: true}, nil)
	repo.On("Create", mock.Anything, 7, &subID, amount, "USD", MethodCreditCard, (*string)(nil), testNow).
		Return(&Payment{ID: 12, MemberID: 7, Amount: amount, Status: StatusProcessing}, nil)
	repo.On("Finalize", mock.Anything, 12, StatusFailed, mock.Anything, mock.Anything, mock.Anything, (*string)(nil)).
		Return(&Payment{ID: 12, Status: StatusFailed}, nil)

	_, err := svc.Process(context.Background(), 7, &subID, amount, MethodCreditCard, nil)

	require.NoError(t, err)
	repo.AssertNotCalled(t, "CreditSubscription", mock.Anything, mock.Anything, mock.Anything)
}

func TestProcess_DeclinedChargeIsRecordedNotErrored(t *testing.T) {
	repo := new(mockRepo)
	members := new(mockMemberRepo)
	gw := &fakeGateway{chargeResult: &Result{Success: false, TransactionID: "txn-2", Response: "DECLINED", ErrorMessage: "card declined by issuer"}}
	svc := newTestService(repo, members, gw)

	amount := decimal.RequireFromString("49.99")
	members.On("FindByID", mock.Anything, 7).Return(&member.Member{ID: 7, Active: true}, nil)
	repo.On("Create", mock.Anything, 7, (*int)(nil), amount, "USD", MethodCreditCard, (*string)(nil), testNow).
		Return(&Payment{ID: 10, Status: StatusProcessing}, nil)
	repo.On("Finalize", mock.Anything, 10, StatusFailed,
		mock.Anything, mock.Anything,
		mock.MatchedBy(func(r *string) bool { return r != nil && *r == "card declined by issuer" }),
		(*string)(nil)).
		Return(&Payment{ID: 10, Status: StatusFailed}, nil)

	p, err := svc.Process(context.Background(), 7, nil, amount, MethodCreditCard, nil)

	require.NoError(t, err)
	assert.Equal(t, StatusFailed, p.Status)
}

func TestProcess_GatewayErrorMarksPaymentFailed(t *testing.T) {
	repo := new(mockRepo)
	members := new(mockMemberRepo)
	gw := &fakeGateway{chargeErr: errors.New("connection reset")}
	svc := newTestService(repo, members, gw)

	amount := decimal.RequireFromString("20")
	members.On("FindByID", mock.Anything, 7).Return(&member.Member{ID: 7, Active: true}, nil)
	repo.On("Create", mock.Anything, 7, (*int)(nil), amount, "USD", MethodCash, (*string)(nil), testNow).
		Return(&Payment{ID: 11, Status: StatusProcessing}, nil)
	repo.On("Finalize", mock.Anything, 11, StatusFailed, (*string)(nil), (*string)(nil),
		mock.MatchedBy(func(r *string) bool { return r != nil && strings.Contains(*r, "connection reset") }),
		(*string)(nil)).
		Return(&Payment{ID: 11, Status: StatusFailed}, nil)

	p, err := svc.Process(context.Background(), 7, nil, amount, MethodCash, nil)

	require.NoError(t, err)
	assert.Equal(t, StatusFailed, p.Status)
}

func TestProcess_RejectsNonPositiveAmount(t *testing.T) {
	svc := newTestService(new(mockRepo), new(mockMemberRepo), &fakeGateway{})

	_, err := svc.Process(context.Background(), 7, nil, decimal.Zero, MethodCash, nil)

	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestProcess_RejectsUnknownMethod(t *testing.T) {
	svc := newTestService(new(mockRepo), new(mockMemberRepo), &fakeGateway{})

	_, err := svc.Process(context.Background(), 7, nil, decimal.NewFromInt(10), Method("IOU"), nil)

	assert.ErrorIs(t, err, ErrInvalidMethod)
}

func TestRefund_FullAmount(t *testing.T) {
	repo := new(mockRepo)
	gw := &fakeGateway{refundResult: &Result{Success: true}}
	svc := newTestService(repo, new(mockMemberRepo), gw)

	amount := decimal.RequireFromString("49.99")
	txn := "txn-1"
	repo.On("FindByID", mock.Anything, 9).
		Return(&Payment{ID: 9, Amount: amount, Status: StatusCompleted, GatewayTransactionID: &txn}, nil)
	repo.On("UpdateStatus", mock.Anything, 9, StatusRefunded).
		Return(&Payment{ID: 9, Status: StatusRefunded}, nil)

	p, err := svc.Refund(context.Background(), 9, amount, "duplicate charge")

	require.NoError(t, err)
	assert.Equal(t, StatusRefunded, p.Status)
}

func TestRefund_PartialAmount(t *testing.T) {
	repo := new(mockRepo)
	gw := &fakeGateway{refundResult: &Result{Success: true}}
	svc := newTestService(repo, new(mockMemberRepo), gw)

	txn := "txn-1"
	repo.On("FindByID", mock.Anything, 9).
		Return(&Payment{ID: 9, Amount: decimal.RequireFromString("49.99"), Status: StatusCompleted, GatewayTransactionID: &txn}, nil)
	repo.On("UpdateStatus", mock.Anything, 9, StatusPartiallyRefunded).
		Return(&Payment{ID: 9, Status: StatusPartiallyRefunded}, nil)

	p, err := svc.Refund(context.Background(), 9, decimal.RequireFromString("10"), "goodwill")

	require.NoError(t, err)
	assert.Equal(t, StatusPartiallyRefunded, p.Status)
}

func TestRefund_OnlyCompletedPayments(t *testing.T) {
	repo := new(mockRepo)
	svc := newTestService(repo, new(mockMemberRepo), &fakeGateway{})

	repo.On("FindByID", mock.Anything, 9).
		Return(&Payment{ID: 9, Amount: decimal.NewFromInt(50), Status: StatusFailed}, nil)

	_, err := svc.Refund(context.Background(), 9, decimal.NewFromInt(10), "oops")

	assert.ErrorIs(t, err, ErrNotRefundable)
}

func TestRefund_CannotExceedOriginal(t *testing.T) {
	repo := new(mockRepo)
	svc := newTestService(repo, new(mockMemberRepo), &fakeGateway{})

	repo.On("FindByID", mock.Anything, 9).
		Return(&Payment{ID: 9, Amount: decimal.NewFromInt(50), Status: StatusCompleted}, nil)

	_, err := svc.Refund(context.Background(), 9, decimal.NewFromInt(51), "too much")

	assert.ErrorIs(t, err, ErrRefundTooLarge)
	repo.AssertNotCalled(t, "UpdateStatus")
}

func TestMockGateway_Outcomes(t *testing.T) {
	gw := NewMockGateway()

	gw.roll = func() float64 { return 0.5 }
	res, err := gw.ProcessPayment(context.Background(), decimal.NewFromInt(10), "USD", MethodCreditCard)
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.NotEmpty(t, res.TransactionID)

	gw.roll = func() float64 { return 0.95 }
	res, err = gw.ProcessPayment(context.Background(), decimal.NewFromInt(10), "USD", MethodCreditCard)
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.NotEmpty(t, res.ErrorMessage)

	refund, err := gw.RefundPayment(context.Background(), "txn-1", decimal.NewFromInt(5), "test")
	require.NoError(t, err)
	assert.True(t, refund.Success)
}
