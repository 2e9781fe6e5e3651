package plan

import (
	"time"

	"github.com/shopspring/decimal"
)

type BillingCycle string

const (
	CycleDaily     BillingCycle = "DAILY"
	CycleWeekly    BillingCycle = "WEEKLY"
	CycleMonthly   BillingCycle = "MONTHLY"
	CycleQuarterly BillingCycle = "QUARTERLY"
	CycleBiannual  BillingCycle = "BIANNUAL"
	CycleAnnual    BillingCycle = "ANNUAL"
)

// AllBillingCycles lists every supported cycle. Keep in sync with the
// constants above; the billing date calculator is tested against it.
var AllBillingCycles = []BillingCycle{
	CycleDaily, CycleWeekly, CycleMonthly, CycleQuarterly, CycleBiannual, CycleAnnual,
}

func (c BillingCycle) Valid() bool {
	for _, known := range AllBillingCycles {
		if c == known {
			return true
		}
	}
	return false
}

type MembershipPlan struct {
	ID                       int             `db:"id" json:"id"`
	Name                     string          `db:"name" json:"name"`
	Description              *string         `db:"description" json:"description,omitempty"`
	Price                    decimal.Decimal `db:"price" json:"price"`
	BillingCycle             BillingCycle    `db:"billing_cycle" json:"billing_cycle"`
	DurationDays             *int            `db:"duration_days" json:"duration_days,omitempty"`
	IncludesPersonalTraining bool            `db:"includes_personal_training" json:"includes_personal_training"`
	MaxPTSessionsPerMonth    *int            `db:"max_pt_sessions_per_month" json:"max_pt_sessions_per_month,omitempty"`
	UnlimitedGroupClasses    bool            `db:"unlimited_group_classes" json:"unlimited_group_classes"`
	MaxGroupClassesPerMonth  *int            `db:"max_group_classes_per_month" json:"max_group_classes_per_month,omitempty"`
	AccessHours              *string         `db:"access_hours" json:"access_hours,omitempty"`
	FreezeAllowed            bool            `db:"freeze_allowed" json:"freeze_allowed"`
	MaxFreezeDays            *int            `db:"max_freeze_days" json:"max_freeze_days,omitempty"`
	Active                   bool            `db:"active" json:"active"`
	CreatedAt                time.Time       `db:"created_at" json:"created_at"`
}

type CreatePlanRequest struct {
	Name                     string  `json:"name" binding:"required,min=2,max=255"`
	Description              *string `json:"description,omitempty"`
	Price                    string  `json:"price" binding:"required"`
	BillingCycle             string  `json:"billing_cycle" binding:"required"`
	DurationDays             *int    `json:"duration_days,omitempty" binding:"omitempty,gt=0"`
	IncludesPersonalTraining bool    `json:"includes_personal_training"`
	MaxPTSessionsPerMonth    *int    `json:"max_pt_sessions_per_month,omitempty" binding:"omitempty,gt=0"`
	UnlimitedGroupClasses    bool    `json:"unlimited_group_classes"`
	MaxGroupClassesPerMonth  *int    `json:"max_group_classes_per_month,omitempty" binding:"omitempty,gt=0"`
	AccessHours              *string `json:"access_hours,omitempty"`
	FreezeAllowed            bool    `json:"freeze_allowed"`
	MaxFreezeDays            *int    `json:"max_freeze_days,omitempty" binding:"omitempty,gt=0"`
}
