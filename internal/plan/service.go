package plan

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"gymcore/internal/logger"
)

var ErrPlanInvalid = errors.New("invalid membership plan")

type Service interface {
	CreatePlan(ctx context.Context, req CreatePlanRequest) (*MembershipPlan, error)
	GetPlan(ctx context.Context, id int) (*MembershipPlan, error)
	ListPlans(ctx context.Context) ([]MembershipPlan, error)
	DeactivatePlan(ctx context.Context, id int) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreatePlan(ctx context.Context, req CreatePlanRequest) (*MembershipPlan, error) {
	price, err := decimal.NewFromString(req.Price)
	if err != nil || price.IsNegative() {
		return nil, ErrPlanInvalid
	}
	cycle := BillingCycle(req.BillingCycle)
	if !cycle.Valid() {
		return nil, ErrPlanInvalid
	}
	// A freezable plan without a cap would allow indefinite freezes.
	if req.FreezeAllowed && req.MaxFreezeDays == nil {
		return nil, ErrPlanInvalid
	}

	p := &MembershipPlan{
		Name:                     req.Name,
		Description:              req.Description,
		Price:                    price,
		BillingCycle:             cycle,
		DurationDays:             req.DurationDays,
		IncludesPersonalTraining: req.IncludesPersonalTraining,
		MaxPTSessionsPerMonth:    req.MaxPTSessionsPerMonth,
		UnlimitedGroupClasses:    req.UnlimitedGroupClasses,
		MaxGroupClassesPerMonth:  req.MaxGroupClassesPerMonth,
		AccessHours:              req.AccessHours,
		FreezeAllowed:            req.FreezeAllowed,
		MaxFreezeDays:            req.MaxFreezeDays,
	}
	created, err := s.repo.Create(ctx, p)
	if err != nil {
		return nil, err
	}
	logger.Info("membership plan created", "plan_id", created.ID, "name", created.Name, "cycle", string(created.BillingCycle))
	return created, nil
}

func (s *service) GetPlan(ctx context.Context, id int) (*MembershipPlan, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) ListPlans(ctx context.Context) ([]MembershipPlan, error) {
	return s.repo.ListActive(ctx)
}

func (s *service) DeactivatePlan(ctx context.Context, id int) error {
	if err := s.repo.Deactivate(ctx, id); err != nil {
		return err
	}
	logger.Info("membership plan deactivated", "plan_id", id)
	return nil
}
