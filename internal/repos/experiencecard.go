package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/placer-backend/internal/logger"
	"github.com/yungbote/placer-backend/internal/types"
)

type ExperienceCardRepo interface {
	CreateBatch(ctx context.Context, tx *gorm.DB, cards []*types.ExperienceCard) ([]*types.ExperienceCard, error)
	// ListByUser returns every card ever generated for the user, oldest first.
	ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.ExperienceCard, error)
	// ListByUserExcluding returns up to limit of the user's cards whose ids are
	// not in excludeIDs, oldest first.
	ListByUserExcluding(ctx context.Context, tx *gorm.DB, userID uuid.UUID, excludeIDs []uuid.UUID, limit int) ([]*types.ExperienceCard, error)
	// GetByIDForUser returns (nil, nil) when the card does not exist or
	// belongs to a different user.
	GetByIDForUser(ctx context.Context, tx *gorm.DB, cardID, userID uuid.UUID) (*types.ExperienceCard, error)
}

type experienceCardRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewExperienceCardRepo(db *gorm.DB, baseLog *logger.Logger) ExperienceCardRepo {
	repoLog := baseLog.With("repo", "ExperienceCardRepo")
	return &experienceCardRepo{db: db, log: repoLog}
}

func (r *experienceCardRepo) CreateBatch(ctx context.Context, tx *gorm.DB, cards []*types.ExperienceCard) ([]*types.ExperienceCard, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(cards) == 0 {
		return []*types.ExperienceCard{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&cards).Error; err != nil {
		return nil, err
	}
	return cards, nil
}

func (r *experienceCardRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.ExperienceCard, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.ExperienceCard
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *experienceCardRepo) ListByUserExcluding(ctx context.Context, tx *gorm.DB, userID uuid.UUID, excludeIDs []uuid.UUID, limit int) ([]*types.ExperienceCard, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	query := transaction.WithContext(ctx).
		Where("user_id = ?", userID)
	if len(excludeIDs) > 0 {
		query = query.Where("id NOT IN ?", excludeIDs)
	}

	var results []*types.ExperienceCard
	if err := query.
		Order("created_at ASC").
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *experienceCardRepo) GetByIDForUser(ctx context.Context, tx *gorm.DB, cardID, userID uuid.UUID) (*types.ExperienceCard, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.ExperienceCard
	if err := transaction.WithContext(ctx).
		Where("id = ? AND user_id = ?", cardID, userID).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}
