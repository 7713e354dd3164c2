package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/placer-backend/internal/logger"
	"github.com/yungbote/placer-backend/internal/repos"
	"github.com/yungbote/placer-backend/internal/types"
)

// SignupInput carries the validated signup payload. Interests beyond
// types.MaxInterests are truncated in order, never rejected.
type SignupInput struct {
	FirstName       string
	OtherGivenNames string
	LastName        string
	Email           string
	PhoneNumber     string
	Education       string
	WhereYouLive    string
	Age             *int
	IncomeBracket   string
	Ethnicity       string
	Interests       []string
}

type ProfileService interface {
	Signup(ctx context.Context, input SignupInput) (*types.UserProfile, error)
}

type profileService struct {
	db          *gorm.DB
	log         *logger.Logger
	profileRepo repos.UserProfileRepo
}

func NewProfileService(db *gorm.DB, log *logger.Logger, profileRepo repos.UserProfileRepo) ProfileService {
	serviceLog := log.With("service", "ProfileService")
	return &profileService{db: db, log: serviceLog, profileRepo: profileRepo}
}

// Signup inserts a new profile. Duplicate emails are allowed on purpose:
// signup is unauthenticated and every call produces an independent record.
func (s *profileService) Signup(ctx context.Context, input SignupInput) (*types.UserProfile, error) {
	interests := input.Interests
	if len(interests) > types.MaxInterests {
		interests = interests[:types.MaxInterests]
	}
	if interests == nil {
		interests = []string{}
	}
	interestsJSON, err := json.Marshal(interests)
	if err != nil {
		return nil, fmt.Errorf("encode interests: %w", err)
	}

	now := time.Now().UTC()
	profile := &types.UserProfile{
		ID:              uuid.New(),
		FirstName:       input.FirstName,
		OtherGivenNames: input.OtherGivenNames,
		LastName:        input.LastName,
		Email:           input.Email,
		PhoneNumber:     input.PhoneNumber,
		Education:       input.Education,
		WhereYouLive:    input.WhereYouLive,
		Age:             input.Age,
		IncomeBracket:   input.IncomeBracket,
		Ethnicity:       input.Ethnicity,
		Interests:       interestsJSON,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	stored, err := s.profileRepo.Create(ctx, nil, profile)
	if err != nil {
		s.log.Error("Signup insert failed", "email", input.Email, "error", err)
		return nil, err
	}
	return stored, nil
}
