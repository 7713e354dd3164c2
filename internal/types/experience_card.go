package types

import (
	"time"

	"github.com/google/uuid"
)

// DefaultConfidence is used when the model omits a confidence score.
const DefaultConfidence = 0.6

// ExperienceCard is one generated suggestion for a user. Titles are unique
// per user case-insensitively; the suggestion service enforces that at
// generation time, not the store.
type ExperienceCard struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Title       string    `gorm:"column:title;not null" json:"title"`
	Description string    `gorm:"column:description" json:"description"`
	Rationale   string    `gorm:"column:rationale" json:"rationale,omitempty"`
	Confidence  float64   `gorm:"column:confidence;not null" json:"confidence"`
	CreatedAt   time.Time `gorm:"not null;index" json:"created_at"`
}

func (ExperienceCard) TableName() string {
	return "experience_card"
}
