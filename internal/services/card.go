package services

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/placer-backend/internal/logger"
	"github.com/yungbote/placer-backend/internal/repos"
	"github.com/yungbote/placer-backend/internal/types"
)

// DefaultFeedLimit is used when the request omits or zeroes limit.
const DefaultFeedLimit = 10

type CardService interface {
	// Feed returns up to limit of the user's cards that have no swipe from
	// that user (any direction), oldest first. An unknown user id simply
	// yields an empty list.
	Feed(ctx context.Context, userID uuid.UUID, limit int) ([]*types.ExperienceCard, error)
}

type cardService struct {
	db        *gorm.DB
	log       *logger.Logger
	cardRepo  repos.ExperienceCardRepo
	swipeRepo repos.SwipeRepo
}

func NewCardService(db *gorm.DB, log *logger.Logger, cardRepo repos.ExperienceCardRepo, swipeRepo repos.SwipeRepo) CardService {
	serviceLog := log.With("service", "CardService")
	return &cardService{db: db, log: serviceLog, cardRepo: cardRepo, swipeRepo: swipeRepo}
}

func (s *cardService) Feed(ctx context.Context, userID uuid.UUID, limit int) ([]*types.ExperienceCard, error) {
	if limit <= 0 {
		limit = DefaultFeedLimit
	}

	swipedIDs, err := s.swipeRepo.SwipedCardIDs(ctx, nil, userID)
	if err != nil {
		return nil, err
	}

	cards, err := s.cardRepo.ListByUserExcluding(ctx, nil, userID, swipedIDs, limit)
	if err != nil {
		return nil, err
	}
	if cards == nil {
		cards = []*types.ExperienceCard{}
	}
	return cards, nil
}
