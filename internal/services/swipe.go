package services

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/placer-backend/internal/apierr"
	"github.com/yungbote/placer-backend/internal/logger"
	"github.com/yungbote/placer-backend/internal/repos"
	"github.com/yungbote/placer-backend/internal/types"
)

type SwipeService interface {
	// Record appends a swipe after checking the card exists and belongs to
	// the user. Repeat swipes on the same card are allowed.
	Record(ctx context.Context, userID, cardID uuid.UUID, direction string) (*types.SwipeRecord, error)
}

type swipeService struct {
	db        *gorm.DB
	log       *logger.Logger
	cardRepo  repos.ExperienceCardRepo
	swipeRepo repos.SwipeRepo
}

func NewSwipeService(db *gorm.DB, log *logger.Logger, cardRepo repos.ExperienceCardRepo, swipeRepo repos.SwipeRepo) SwipeService {
	serviceLog := log.With("service", "SwipeService")
	return &swipeService{db: db, log: serviceLog, cardRepo: cardRepo, swipeRepo: swipeRepo}
}

func (s *swipeService) Record(ctx context.Context, userID, cardID uuid.UUID, direction string) (*types.SwipeRecord, error) {
	if !types.ValidSwipeDirection(direction) {
		return nil, apierr.New(http.StatusBadRequest, "invalid_direction",
			fmt.Errorf("invalid swipe direction %q", direction))
	}

	card, err := s.cardRepo.GetByIDForUser(ctx, nil, cardID, userID)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, apierr.New(http.StatusNotFound, "card_not_found",
			fmt.Errorf("card %s not found for user %s", cardID, userID))
	}

	swipe := &types.SwipeRecord{
		ID:        uuid.New(),
		UserID:    userID,
		CardID:    cardID,
		Direction: direction,
		CreatedAt: time.Now().UTC(),
	}
	return s.swipeRepo.Create(ctx, nil, swipe)
}
