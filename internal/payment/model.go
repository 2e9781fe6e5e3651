package payment

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending           Status = "PENDING"
	StatusProcessing        Status = "PROCESSING"
	StatusCompleted         Status = "COMPLETED"
	StatusFailed            Status = "FAILED"
	StatusRefunded          Status = "REFUNDED"
	StatusPartiallyRefunded Status = "PARTIALLY_REFUNDED"
	StatusCancelled         Status = "CANCELLED"
)

type Method string

const (
	MethodCreditCard    Method = "CREDIT_CARD"
	MethodDebitCard     Method = "DEBIT_CARD"
	MethodBankTransfer  Method = "BANK_TRANSFER"
	MethodCash          Method = "CASH"
	MethodDigitalWallet Method = "DIGITAL_WALLET"
)

func (m Method) Valid() bool {
	switch m {
	case MethodCreditCard, MethodDebitCard, MethodBankTransfer, MethodCash, MethodDigitalWallet:
		return true
	}
	return false
}

type Payment struct {
	ID                   int             `db:"id" json:"id"`
	MemberID             int             `db:"member_id" json:"member_id"`
	SubscriptionID       *int            `db:"subscription_id" json:"subscription_id,omitempty"`
	Amount               decimal.Decimal `db:"amount" json:"amount"`
	Currency             string          `db:"currency" json:"currency"`
	Method               Method          `db:"method" json:"method"`
	Status               Status          `db:"status" json:"status"`
	PaymentDate          time.Time       `db:"payment_date" json:"payment_date"`
	GatewayTransactionID *string         `db:"gateway_transaction_id" json:"gateway_transaction_id,omitempty"`
	GatewayResponse      *string         `db:"gateway_response" json:"gateway_response,omitempty"`
	FailureReason        *string         `db:"failure_reason" json:"failure_reason,omitempty"`
	ReceiptNumber        *string         `db:"receipt_number" json:"receipt_number,omitempty"`
	Notes                *string         `db:"notes" json:"notes,omitempty"`
	CreatedAt            time.Time       `db:"created_at" json:"created_at"`
}

type ProcessPaymentRequest struct {
	SubscriptionID *int    `json:"subscription_id,omitempty" binding:"omitempty,gt=0"`
	Amount         string  `json:"amount" binding:"required"`
	Method         Method  `json:"method" binding:"required"`
	Notes          *string `json:"notes,omitempty"`
}

type RefundRequest struct {
	Amount string `json:"amount" binding:"required"`
	Reason string `json:"reason" binding:"required,min=2,max=500"`
}
