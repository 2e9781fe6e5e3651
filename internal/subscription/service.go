package subscription

import (
	"context"
	"time"

	"gymcore/internal/logger"
	"gymcore/internal/member"
	"gymcore/internal/metrics"
	"gymcore/internal/plan"
)

type Service interface {
	Create(ctx context.Context, memberID, planID int, startDate time.Time, autoRenewal bool, billingDay *int) (*Subscription, error)
	CreateForUser(ctx context.Context, userID, planID int, startDate time.Time, autoRenewal bool, billingDay *int) (*Subscription, error)
	Freeze(ctx context.Context, subscriptionID, days int) (*Subscription, error)
	ProcessRenewal(ctx context.Context, subscriptionID int) (*Subscription, error)
	UpdateStatus(ctx context.Context, subscriptionID int, status Status, notes string) (*Subscription, error)
	Get(ctx context.Context, subscriptionID int) (*Subscription, error)
	GetByMember(ctx context.Context, memberID int) ([]Subscription, error)
	GetForUser(ctx context.Context, userID int) ([]Subscription, error)
	ListActive(ctx context.Context) ([]Subscription, error)
	ListExpiring(ctx context.Context, daysAhead int) ([]Subscription, error)
	ListOverdue(ctx context.Context) ([]Subscription, error)
}

type service struct {
	repo    Repository
	members member.Repository
	plans   plan.Repository
	now     func() time.Time
}

func NewService(repo Repository, members member.Repository, plans plan.Repository) Service {
	return &service{
		repo:    repo,
		members: members,
		plans:   plans,
		now:     time.Now,
	}
}

func (s *service) Create(ctx context.Context, memberID, planID int, startDate time.Time, autoRenewal bool, billingDay *int) (*Subscription, error) {
	if _, err := s.members.FindByID(ctx, memberID); err != nil {
		return nil, err
	}
	p, err := s.plans.FindByID(ctx, planID)
	if err != nil {
		return nil, err
	}

	if startDate.IsZero() {
		startDate = s.now()
	}

	sub := &Subscription{
		MemberID:    memberID,
		PlanID:      planID,
		Status:      StatusActive,
		StartDate:   startDate,
		AutoRenewal: autoRenewal,
		BillingDay:  billingDay,
	}
	if p.DurationDays != nil {
		end := startDate.AddDate(0, 0, *p.DurationDays)
		sub.EndDate = &end
	}
	next, err := NextBillingDate(p.BillingCycle, startDate)
	if err != nil {
		return nil, err
	}
	sub.NextBillingDate = &next

	created, err := s.repo.Create(ctx, sub)
	if err != nil {
		return nil, err
	}

	metrics.RecordSubscriptionCreated()
	logger.Info("subscription created",
		"subscription_id", created.ID, "member_id", memberID, "plan_id", planID, "cycle", string(p.BillingCycle))
	return created, nil
}

func (s *service) CreateForUser(ctx context.Context, userID, planID int, startDate time.Time, autoRenewal bool, billingDay *int) (*Subscription, error) {
	m, err := s.members.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.Create(ctx, m.ID, planID, startDate, autoRenewal, billingDay)
}

func (s *service) Freeze(ctx context.Context, subscriptionID, days int) (*Subscription, error) {
	sub, err := s.repo.GetByID(ctx, subscriptionID)
	if err != nil {
		return nil, err
	}
	if sub.Status != StatusActive {
		return nil, ErrNotActive
	}
	p, err := s.plans.FindByID(ctx, sub.PlanID)
	if err != nil {
		return nil, err
	}
	if !p.FreezeAllowed || p.MaxFreezeDays == nil {
		return nil, ErrFreezeNotAllowed
	}
	if days > *p.MaxFreezeDays {
		return nil, ErrFreezeTooLong
	}

	now := s.now()
	freezeEnd := now.AddDate(0, 0, days)
	sub.Status = StatusFrozen
	sub.FreezeStartDate = &now
	sub.FreezeEndDate = &freezeEnd

	updated, err := s.repo.Update(ctx, sub)
	if err != nil {
		return nil, err
	}

	metrics.RecordSubscriptionFrozen()
	logger.Info("subscription frozen", "subscription_id", subscriptionID, "days", days)
	return updated, nil
}

func (s *service) ProcessRenewal(ctx context.Context, subscriptionID int) (*Subscription, error) {
	sub, err := s.repo.GetByID(ctx, subscriptionID)
	if err != nil {
		return nil, err
	}
	if !sub.AutoRenewal {
		return nil, ErrAutoRenewalDisabled
	}
	if sub.Status != StatusActive {
		return nil, ErrNotActive
	}
	p, err := s.plans.FindByID(ctx, sub.PlanID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if p.DurationDays != nil {
		// Extend from the current end when there is one, otherwise the
		// renewal starts a fresh period from now.
		base := now
		if sub.EndDate != nil {
			base = *sub.EndDate
		}
		end := base.AddDate(0, 0, *p.DurationDays)
		sub.EndDate = &end
	}

	billingBase := now
	if sub.NextBillingDate != nil {
		billingBase = *sub.NextBillingDate
	}
	next, err := NextBillingDate(p.BillingCycle, billingBase)
	if err != nil {
		return nil, err
	}
	sub.LastBillingDate = &now
	sub.NextBillingDate = &next

	updated, err := s.repo.Update(ctx, sub)
	if err != nil {
		return nil, err
	}

	metrics.RecordSubscriptionRenewed()
	logger.Info("subscription renewed", "subscription_id", subscriptionID, "next_billing", next)
	return updated, nil
}

func (s *service) UpdateStatus(ctx context.Context, subscriptionID int, status Status, notes string) (*Subscription, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	sub, err := s.repo.GetByID(ctx, subscriptionID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	switch status {
	case StatusCancelled:
		sub.EndDate = &now
	case StatusFrozen:
		sub.FreezeStartDate = &now
	case StatusActive:
		// Reactivation from a freeze closes the freeze window.
		if sub.Status == StatusFrozen {
			sub.FreezeEndDate = &now
		}
	}
	sub.Status = status
	if notes != "" {
		sub.Notes = &notes
	}

	updated, err := s.repo.Update(ctx, sub)
	if err != nil {
		return nil, err
	}
	logger.Info("subscription status updated", "subscription_id", subscriptionID, "status", string(status))
	return updated, nil
}

func (s *service) Get(ctx context.Context, subscriptionID int) (*Subscription, error) {
	return s.repo.GetByID(ctx, subscriptionID)
}

func (s *service) GetByMember(ctx context.Context, memberID int) ([]Subscription, error) {
	return s.repo.ListByMember(ctx, memberID)
}

func (s *service) GetForUser(ctx context.Context, userID int) ([]Subscription, error) {
	m, err := s.members.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByMember(ctx, m.ID)
}

func (s *service) ListActive(ctx context.Context) ([]Subscription, error) {
	return s.repo.ListActive(ctx)
}

func (s *service) ListExpiring(ctx context.Context, daysAhead int) ([]Subscription, error) {
	now := s.now()
	return s.repo.ListExpiring(ctx, now, now.AddDate(0, 0, daysAhead))
}

func (s *service) ListOverdue(ctx context.Context) ([]Subscription, error) {
	return s.repo.ListOverdue(ctx, s.now())
}
