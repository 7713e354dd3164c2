package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/yungbote/placer-backend/internal/logger"
	"github.com/yungbote/placer-backend/internal/types"
)

type StatusCheckRepo interface {
	Create(ctx context.Context, tx *gorm.DB, check *types.StatusCheck) (*types.StatusCheck, error)
	List(ctx context.Context, tx *gorm.DB, limit int) ([]*types.StatusCheck, error)
}

type statusCheckRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewStatusCheckRepo(db *gorm.DB, baseLog *logger.Logger) StatusCheckRepo {
	repoLog := baseLog.With("repo", "StatusCheckRepo")
	return &statusCheckRepo{db: db, log: repoLog}
}

func (r *statusCheckRepo) Create(ctx context.Context, tx *gorm.DB, check *types.StatusCheck) (*types.StatusCheck, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if err := transaction.WithContext(ctx).Create(check).Error; err != nil {
		return nil, err
	}
	return check, nil
}

func (r *statusCheckRepo) List(ctx context.Context, tx *gorm.DB, limit int) ([]*types.StatusCheck, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.StatusCheck
	if err := transaction.WithContext(ctx).
		Order("timestamp ASC").
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
