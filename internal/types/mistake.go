package types

import (
	"time"

	"github.com/google/uuid"
)

// Category is the closed set of error categories. The string values are part
// of the API contract and must not change.
type Category string

const (
	CategoryConceptual Category = "conceptual"
	CategoryProcedural Category = "procedural"
	CategoryCareless   Category = "careless"
	CategoryKnowledge  Category = "knowledge"
)

// Categories returns the fixed enumeration in its canonical order. The order
// doubles as the tie-break for equal stats counts.
func Categories() []Category {
	return []Category{CategoryConceptual, CategoryProcedural, CategoryCareless, CategoryKnowledge}
}

func (c Category) Valid() bool {
	switch c {
	case CategoryConceptual, CategoryProcedural, CategoryCareless, CategoryKnowledge:
		return true
	default:
		return false
	}
}

type Mistake struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Title              string     `gorm:"column:title;not null" json:"title"`
	Description        string     `gorm:"column:description;not null" json:"description"`
	Category           Category   `gorm:"column:category;type:varchar(32);not null;index" json:"category"`
	RootCause          string     `gorm:"column:root_cause" json:"rootCause,omitempty"`
	CorrectedPrinciple string     `gorm:"column:corrected_principle" json:"correctedPrinciple,omitempty"`
	CreatedAt          time.Time  `gorm:"column:created_at;not null" json:"createdAt"`
	RetestCount        int        `gorm:"column:retest_count;not null;default:0" json:"retestCount"`
	LastReviewedAt     *time.Time `gorm:"column:last_reviewed_at" json:"lastReviewedAt,omitempty"`
	Mastered           bool       `gorm:"column:mastered;not null;default:false" json:"mastered"`
}

func (Mistake) TableName() string { return "mistake" }
