package member

import "time"

type Member struct {
	ID        int       `db:"id" json:"id"`
	UserID    int       `db:"user_id" json:"user_id"`
	FullName  string    `db:"full_name" json:"full_name"`
	Phone     *string   `db:"phone" json:"phone,omitempty"`
	JoinedAt  time.Time `db:"joined_at" json:"joined_at"`
	Active    bool      `db:"active" json:"active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type CreateMemberRequest struct {
	UserID   int     `json:"user_id" binding:"required"`
	FullName string  `json:"full_name" binding:"required,min=2,max=255"`
	Phone    *string `json:"phone"`
}
