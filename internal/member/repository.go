package member

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrMemberNotFound = errors.New("member not found")

type Repository interface {
	Create(ctx context.Context, userID int, fullName string, phone *string) (*Member, error)
	FindByID(ctx context.Context, id int) (*Member, error)
	FindByUserID(ctx context.Context, userID int) (*Member, error)
	ListActive(ctx context.Context) ([]Member, error)
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, userID int, fullName string, phone *string) (*Member, error) {
	query := `
		INSERT INTO members (user_id, full_name, phone)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, full_name, phone, joined_at, active, created_at
	`

	var m Member
	err := r.db.GetContext(ctx, &m, query, userID, fullName, phone)
	if err != nil {
		return nil, err
	}

	return &m, nil
}

func (r *repository) FindByID(ctx context.Context, id int) (*Member, error) {
	query := `
		SELECT id, user_id, full_name, phone, joined_at, active, created_at
		FROM members
		WHERE id = $1
	`

	var m Member
	err := r.db.GetContext(ctx, &m, query, id)
	if err != nil {
		return nil, err
	}

	return &m, nil
}

func (r *repository) FindByUserID(ctx context.Context, userID int) (*Member, error) {
	query := `
		SELECT id, user_id, full_name, phone, joined_at, active, created_at
		FROM members
		WHERE user_id = $1
	`

	var m Member
	err := r.db.GetContext(ctx, &m, query, userID)
	if err != nil {
		return nil, err
	}

	return &m, nil
}

func (r *repository) ListActive(ctx context.Context) ([]Member, error) {
	query := `
		SELECT id, user_id, full_name, phone, joined_at, active, created_at
		FROM members
		WHERE active = TRUE
		ORDER BY full_name
	`

	var members []Member
	err := r.db.SelectContext(ctx, &members, query)
	if err != nil {
		return nil, err
	}

	return members, nil
}
