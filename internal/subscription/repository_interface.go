package subscription

import (
	"context"
	"time"
)

type Repository interface {
	// Create inserts a subscription after verifying, under a lock on the
	// member row, that the member has no other ACTIVE subscription.
	Create(ctx context.Context, sub *Subscription) (*Subscription, error)

	GetByID(ctx context.Context, id int) (*Subscription, error)

	// Update persists the mutable lifecycle fields of a subscription.
	Update(ctx context.Context, sub *Subscription) (*Subscription, error)

	ListByMember(ctx context.Context, memberID int) ([]Subscription, error)
	ListActive(ctx context.Context) ([]Subscription, error)
	ListExpiring(ctx context.Context, from, to time.Time) ([]Subscription, error)
	ListOverdue(ctx context.Context, asOf time.Time) ([]Subscription, error)
}
