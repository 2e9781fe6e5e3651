package plan

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

var ErrPlanNotFound = errors.New("membership plan not found")

type Repository interface {
	Create(ctx context.Context, p *MembershipPlan) (*MembershipPlan, error)
	FindByID(ctx context.Context, id int) (*MembershipPlan, error)
	ListActive(ctx context.Context) ([]MembershipPlan, error)
	Deactivate(ctx context.Context, id int) error
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const planColumns = `id, name, description, price, billing_cycle, duration_days,
	includes_personal_training, max_pt_sessions_per_month, unlimited_group_classes,
	max_group_classes_per_month, access_hours, freeze_allowed, max_freeze_days,
	active, created_at`

func (r *repository) Create(ctx context.Context, p *MembershipPlan) (*MembershipPlan, error) {
	var created MembershipPlan
	err := r.db.GetContext(ctx, &created,
		`INSERT INTO membership_plans
			(name, description, price, billing_cycle, duration_days,
			 includes_personal_training, max_pt_sessions_per_month, unlimited_group_classes,
			 max_group_classes_per_month, access_hours, freeze_allowed, max_freeze_days)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 RETURNING `+planColumns,
		p.Name, p.Description, p.Price, p.BillingCycle, p.DurationDays,
		p.IncludesPersonalTraining, p.MaxPTSessionsPerMonth, p.UnlimitedGroupClasses,
		p.MaxGroupClassesPerMonth, p.AccessHours, p.FreezeAllowed, p.MaxFreezeDays)
	if err != nil {
		return nil, fmt.Errorf("insert plan: %w", err)
	}
	return &created, nil
}

func (r *repository) FindByID(ctx context.Context, id int) (*MembershipPlan, error) {
	var p MembershipPlan
	err := r.db.GetContext(ctx, &p,
		`SELECT `+planColumns+` FROM membership_plans WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPlanNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get plan: %w", err)
	}
	return &p, nil
}

func (r *repository) ListActive(ctx context.Context) ([]MembershipPlan, error) {
	var plans []MembershipPlan
	err := r.db.SelectContext(ctx, &plans,
		`SELECT `+planColumns+` FROM membership_plans WHERE active = TRUE ORDER BY price ASC`)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	return plans, nil
}

func (r *repository) Deactivate(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE membership_plans SET active = FALSE WHERE id = $1 AND active = TRUE`, id)
	if err != nil {
		return fmt.Errorf("deactivate plan: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deactivate plan: %w", err)
	}
	if rows == 0 {
		return ErrPlanNotFound
	}
	return nil
}
