package types

import (
	"time"

	"github.com/google/uuid"
)

// Swipe directions accepted by the API.
const (
	SwipeLeft  = "left"
	SwipeRight = "right"
	SwipeUp    = "up"
	SwipeDown  = "down"
)

func ValidSwipeDirection(direction string) bool {
	switch direction {
	case SwipeLeft, SwipeRight, SwipeUp, SwipeDown:
		return true
	default:
		return false
	}
}

// SwipeRecord is append-only: a swipe is never updated or deleted, and the
// same card may be swiped more than once.
type SwipeRecord struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	CardID    uuid.UUID `gorm:"type:uuid;not null;index" json:"card_id"`
	Direction string    `gorm:"column:direction;not null" json:"direction"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (SwipeRecord) TableName() string {
	return "swipe_record"
}
