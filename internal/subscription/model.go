package subscription

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusActive    Status = "ACTIVE"
	StatusExpired   Status = "EXPIRED"
	StatusCancelled Status = "CANCELLED"
	StatusSuspended Status = "SUSPENDED"
	StatusFrozen    Status = "FROZEN"
	StatusPending   Status = "PENDING"
	StatusPastDue   Status = "PAST_DUE"
)

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusExpired, StatusCancelled, StatusSuspended,
		StatusFrozen, StatusPending, StatusPastDue:
		return true
	}
	return false
}

type Subscription struct {
	ID              int             `db:"id" json:"id"`
	MemberID        int             `db:"member_id" json:"member_id"`
	PlanID          int             `db:"plan_id" json:"plan_id"`
	Status          Status          `db:"status" json:"status"`
	StartDate       time.Time       `db:"start_date" json:"start_date"`
	EndDate         *time.Time      `db:"end_date" json:"end_date,omitempty"`
	AutoRenewal     bool            `db:"auto_renewal" json:"auto_renewal"`
	BillingDay      *int            `db:"billing_day" json:"billing_day,omitempty"`
	LastBillingDate *time.Time      `db:"last_billing_date" json:"last_billing_date,omitempty"`
	NextBillingDate *time.Time      `db:"next_billing_date" json:"next_billing_date,omitempty"`
	FreezeStartDate *time.Time      `db:"freeze_start_date" json:"freeze_start_date,omitempty"`
	FreezeEndDate   *time.Time      `db:"freeze_end_date" json:"freeze_end_date,omitempty"`
	Notes           *string         `db:"notes" json:"notes,omitempty"`
	TotalPaid       decimal.Decimal `db:"total_paid" json:"total_paid"`
	CreatedAt       time.Time       `db:"created_at" json:"created_at"`
}

type CreateSubscriptionRequest struct {
	PlanID      int    `json:"plan_id" binding:"required,gt=0"`
	StartDate   string `json:"start_date,omitempty"`
	AutoRenewal bool   `json:"auto_renewal"`
	BillingDay  *int   `json:"billing_day,omitempty" binding:"omitempty,gte=1,lte=28"`
}

type FreezeRequest struct {
	Days int `json:"days" binding:"required,gt=0"`
}

type UpdateStatusRequest struct {
	Status Status `json:"status" binding:"required"`
	Notes  string `json:"notes,omitempty"`
}
