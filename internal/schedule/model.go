package schedule

import (
	"time"

	"github.com/shopspring/decimal"
)

type ClassCategory string

const (
	CategoryCardio       ClassCategory = "CARDIO"
	CategoryStrength     ClassCategory = "STRENGTH"
	CategoryYoga         ClassCategory = "YOGA"
	CategoryPilates      ClassCategory = "PILATES"
	CategorySpinning     ClassCategory = "SPINNING"
	CategoryCrossTrain   ClassCategory = "CROSS_TRAINING"
	CategoryMartialArts  ClassCategory = "MARTIAL_ARTS"
	CategoryDance        ClassCategory = "DANCE"
	CategoryOther        ClassCategory = "OTHER"
)

type ClassDifficulty string

const (
	DifficultyBeginner     ClassDifficulty = "BEGINNER"
	DifficultyIntermediate ClassDifficulty = "INTERMEDIATE"
	DifficultyAdvanced     ClassDifficulty = "ADVANCED"
	DifficultyAllLevels    ClassDifficulty = "ALL_LEVELS"
)

type GymClass struct {
	ID          int             `db:"id" json:"id"`
	Name        string          `db:"name" json:"name"`
	Description *string         `db:"description" json:"description,omitempty"`
	Category    ClassCategory   `db:"category" json:"category"`
	Difficulty  ClassDifficulty `db:"difficulty" json:"difficulty"`
	Price       decimal.Decimal `db:"price" json:"price"`
	MaxCapacity int             `db:"max_capacity" json:"max_capacity"`
	Active      bool            `db:"active" json:"active"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
}

// ClassSchedule is one occurrence of a class. CurrentBookings against
// MaxCapacity is the capacity ledger; it only ever changes inside the
// booking repository's transactions.
type ClassSchedule struct {
	ID              int       `db:"id" json:"id"`
	ClassID         int       `db:"class_id" json:"class_id"`
	TrainerID       int       `db:"trainer_id" json:"trainer_id"`
	StartTime       time.Time `db:"start_time" json:"start_time"`
	EndTime         time.Time `db:"end_time" json:"end_time"`
	MaxCapacity     int       `db:"max_capacity" json:"max_capacity"`
	CurrentBookings int       `db:"current_bookings" json:"current_bookings"`
	Active          bool      `db:"active" json:"active"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

type ScheduleWithAvailability struct {
	ClassSchedule
	ClassName string `db:"class_name" json:"class_name"`
	SpotsLeft int    `json:"spots_left"`
	IsFull    bool   `json:"is_full"`
}

type CreateClassRequest struct {
	Name        string  `json:"name" binding:"required,min=2,max=255"`
	Description *string `json:"description"`
	Category    string  `json:"category" binding:"required"`
	Difficulty  string  `json:"difficulty" binding:"required"`
	Price       string  `json:"price" binding:"required"`
	MaxCapacity int     `json:"max_capacity" binding:"required,min=1"`
}

type CreateScheduleRequest struct {
	ClassID   int    `json:"class_id" binding:"required"`
	TrainerID int    `json:"trainer_id" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}
