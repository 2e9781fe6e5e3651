package trainer

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

var ErrTrainerNotFound = errors.New("trainer not found")

type Repository interface {
	Create(ctx context.Context, userID int, fullName string, specialization *string, hourlyRate *decimal.Decimal) (*Trainer, error)
	FindByID(ctx context.Context, id int) (*Trainer, error)
	ListActive(ctx context.Context) ([]Trainer, error)
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, userID int, fullName string, specialization *string, hourlyRate *decimal.Decimal) (*Trainer, error) {
	query := `
		INSERT INTO trainers (user_id, full_name, specialization, hourly_rate)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, full_name, specialization, hourly_rate, active, created_at
	`

	var tr Trainer
	err := r.db.GetContext(ctx, &tr, query, userID, fullName, specialization, hourlyRate)
	if err != nil {
		return nil, err
	}

	return &tr, nil
}

func (r *repository) FindByID(ctx context.Context, id int) (*Trainer, error) {
	query := `
		SELECT id, user_id, full_name, specialization, hourly_rate, active, created_at
		FROM trainers
		WHERE id = $1
	`

	var tr Trainer
	err := r.db.GetContext(ctx, &tr, query, id)
	if err != nil {
		return nil, err
	}

	return &tr, nil
}

func (r *repository) ListActive(ctx context.Context) ([]Trainer, error) {
	query := `
		SELECT id, user_id, full_name, specialization, hourly_rate, active, created_at
		FROM trainers
		WHERE active = TRUE
		ORDER BY full_name
	`

	var trainers []Trainer
	err := r.db.SelectContext(ctx, &trainers, query)
	if err != nil {
		return nil, err
	}

	return trainers, nil
}
