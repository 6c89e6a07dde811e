package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"repair-system/internal/dto"
	"repair-system/internal/repositories"
)

type MasterServiceInterface interface {
	GetMasters(ctx context.Context, city string) ([]dto.MasterDTO, error)
	// MasterName — поиск имени по id для меток кассы; ходит через кеш.
	MasterName(ctx context.Context, id int64) (string, error)
}

type MasterService struct {
	masterRepo repositories.MasterRepositoryInterface
	cacheRepo  repositories.CacheRepositoryInterface
	logger     *zap.Logger
	nameTTL    time.Duration
}

func NewMasterService(
	masterRepo repositories.MasterRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	logger *zap.Logger,
	nameTTL time.Duration,
) MasterServiceInterface {
	return &MasterService{
		masterRepo: masterRepo,
		cacheRepo:  cacheRepo,
		logger:     logger,
		nameTTL:    nameTTL,
	}
}

func (s *MasterService) GetMasters(ctx context.Context, city string) ([]dto.MasterDTO, error) {
	masters, err := s.masterRepo.GetMasters(ctx, city)
	if err != nil {
		return nil, err
	}

	result := make([]dto.MasterDTO, 0, len(masters))
	for i := range masters {
		result = append(result, masterToDTO(&masters[i]))
	}
	return result, nil
}

func (s *MasterService) MasterName(ctx context.Context, id int64) (string, error) {
	cacheKey := fmt.Sprintf("master:name:%d", id)

	if name, err := s.cacheRepo.Get(ctx, cacheKey); err == nil && name != "" {
		return name, nil
	}

	master, err := s.masterRepo.FindMaster(ctx, id)
	if err != nil {
		return "", err
	}

	if err := s.cacheRepo.Set(ctx, cacheKey, master.Name, s.nameTTL); err != nil {
		s.logger.Warn("не удалось положить имя мастера в кеш", zap.Int64("masterID", id), zap.Error(err))
	}
	return master.Name, nil
}
