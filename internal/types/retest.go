package types

import (
	"time"

	"github.com/google/uuid"
)

// RetestResult is the outcome of a completed retest.
type RetestResult string

const (
	ResultCorrect   RetestResult = "correct"
	ResultIncorrect RetestResult = "incorrect"
)

func (r RetestResult) Valid() bool {
	return r == ResultCorrect || r == ResultIncorrect
}

// Retest is one scheduled check-in for a mistake. Result and CompletedAt are
// set exactly once, when Completed flips to true; a failed retest spawns a new
// row instead of reopening this one.
type Retest struct {
	ID            uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	MistakeID     uuid.UUID    `gorm:"type:uuid;column:mistake_id;not null;index" json:"mistakeId"`
	Mistake       *Mistake     `gorm:"constraint:OnDelete:CASCADE;foreignKey:MistakeID;references:ID" json:"-"`
	ScheduledDate time.Time    `gorm:"column:scheduled_date;not null" json:"scheduledDate"`
	Completed     bool         `gorm:"column:completed;not null;default:false" json:"completed"`
	Result        RetestResult `gorm:"column:result;type:varchar(16)" json:"result,omitempty"`
	CompletedAt   *time.Time   `gorm:"column:completed_at" json:"completedAt,omitempty"`
}

func (Retest) TableName() string { return "retest" }
