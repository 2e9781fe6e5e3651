package subscription

import (
	"fmt"
	"time"

	"gymcore/internal/plan"
)

// NextBillingDate steps a billing date forward by one cycle. Month and
// year steps use calendar arithmetic, so Jan 31 + one month normalizes
// to early March the way time.AddDate does.
func NextBillingDate(cycle plan.BillingCycle, from time.Time) (time.Time, error) {
	switch cycle {
	case plan.CycleDaily:
		return from.AddDate(0, 0, 1), nil
	case plan.CycleWeekly:
		return from.AddDate(0, 0, 7), nil
	case plan.CycleMonthly:
		return from.AddDate(0, 1, 0), nil
	case plan.CycleQuarterly:
		return from.AddDate(0, 3, 0), nil
	case plan.CycleBiannual:
		return from.AddDate(0, 6, 0), nil
	case plan.CycleAnnual:
		return from.AddDate(1, 0, 0), nil
	default:
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnknownBillingCycle, cycle)
	}
}
