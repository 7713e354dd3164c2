package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/placer-backend/internal/logger"
	"github.com/yungbote/placer-backend/internal/repos"
	"github.com/yungbote/placer-backend/internal/types"
)

// statusListCap bounds how many status checks a single listing returns.
const statusListCap = 1000

type StatusService interface {
	Create(ctx context.Context, clientName string) (*types.StatusCheck, error)
	List(ctx context.Context) ([]*types.StatusCheck, error)
}

type statusService struct {
	db         *gorm.DB
	log        *logger.Logger
	statusRepo repos.StatusCheckRepo
}

func NewStatusService(db *gorm.DB, log *logger.Logger, statusRepo repos.StatusCheckRepo) StatusService {
	serviceLog := log.With("service", "StatusService")
	return &statusService{db: db, log: serviceLog, statusRepo: statusRepo}
}

func (s *statusService) Create(ctx context.Context, clientName string) (*types.StatusCheck, error) {
	check := &types.StatusCheck{
		ID:         uuid.New(),
		ClientName: clientName,
		Timestamp:  time.Now().UTC(),
	}
	return s.statusRepo.Create(ctx, nil, check)
}

func (s *statusService) List(ctx context.Context) ([]*types.StatusCheck, error) {
	return s.statusRepo.List(ctx, nil, statusListCap)
}
