package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/placer-backend/internal/logger"
	"github.com/yungbote/placer-backend/internal/types"
)

type SwipeRepo interface {
	Create(ctx context.Context, tx *gorm.DB, swipe *types.SwipeRecord) (*types.SwipeRecord, error)
	// SwipedCardIDs returns the distinct card ids the user has swiped on,
	// regardless of direction.
	SwipedCardIDs(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]uuid.UUID, error)
}

type swipeRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSwipeRepo(db *gorm.DB, baseLog *logger.Logger) SwipeRepo {
	repoLog := baseLog.With("repo", "SwipeRepo")
	return &swipeRepo{db: db, log: repoLog}
}

func (r *swipeRepo) Create(ctx context.Context, tx *gorm.DB, swipe *types.SwipeRecord) (*types.SwipeRecord, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if err := transaction.WithContext(ctx).Create(swipe).Error; err != nil {
		return nil, err
	}
	return swipe, nil
}

func (r *swipeRepo) SwipedCardIDs(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]uuid.UUID, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var ids []uuid.UUID
	if err := transaction.WithContext(ctx).
		Model(&types.SwipeRecord{}).
		Distinct("card_id").
		Where("user_id = ?", userID).
		Pluck("card_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}
