package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MaxInterests is the cap on stored interests; longer lists are truncated
// at signup, never rejected.
const MaxInterests = 3

type UserProfile struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	FirstName       string         `gorm:"column:first_name;not null" json:"first_name"`
	OtherGivenNames string         `gorm:"column:other_given_names" json:"other_given_names,omitempty"`
	LastName        string         `gorm:"column:last_name;not null" json:"last_name"`
	Email           string         `gorm:"column:email;not null;index" json:"email"`
	PhoneNumber     string         `gorm:"column:phone_number" json:"phone_number,omitempty"`
	Education       string         `gorm:"column:education" json:"education,omitempty"`
	WhereYouLive    string         `gorm:"column:where_you_live" json:"where_you_live,omitempty"`
	Age             *int           `gorm:"column:age" json:"age,omitempty"`
	IncomeBracket   string         `gorm:"column:income_bracket" json:"income_bracket,omitempty"`
	Ethnicity       string         `gorm:"column:ethnicity" json:"ethnicity,omitempty"`
	Interests       datatypes.JSON `gorm:"column:interests" json:"interests"` // []string, first-3 in order of importance
	CreatedAt       time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"not null" json:"updated_at"`
}

func (UserProfile) TableName() string {
	return "user_profile"
}
