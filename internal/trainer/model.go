package trainer

import (
	"time"

	"github.com/shopspring/decimal"
)

type Trainer struct {
	ID             int              `db:"id" json:"id"`
	UserID         int              `db:"user_id" json:"user_id"`
	FullName       string           `db:"full_name" json:"full_name"`
	Specialization *string          `db:"specialization" json:"specialization,omitempty"`
	HourlyRate     *decimal.Decimal `db:"hourly_rate" json:"hourly_rate,omitempty"`
	Active         bool             `db:"active" json:"active"`
	CreatedAt      time.Time        `db:"created_at" json:"created_at"`
}
