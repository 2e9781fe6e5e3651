package subscription

import "errors"

var (
	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrAlreadySubscribed    = errors.New("member already has an active subscription")
	ErrNotActive            = errors.New("subscription is not active")
	ErrFreezeNotAllowed     = errors.New("plan does not allow freezing")
	ErrFreezeTooLong        = errors.New("freeze duration exceeds the plan's maximum")
	ErrAutoRenewalDisabled  = errors.New("auto-renewal is not enabled")
	ErrInvalidStatus        = errors.New("unknown subscription status")
	ErrUnknownBillingCycle  = errors.New("unknown billing cycle")
)
