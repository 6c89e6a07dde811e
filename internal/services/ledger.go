package services

import (
	"context"

	"go.uber.org/zap"

	"repair-system/internal/dto"
	"repair-system/internal/repositories"
	"repair-system/pkg/types"
)

// Касса наружу только читается: записи создаёт исключительно само ядро
// при закрытии заказов.
type LedgerServiceInterface interface {
	GetEntries(ctx context.Context, filter types.LedgerFilter) ([]dto.LedgerEntryDTO, uint64, error)
}

type LedgerService struct {
	ledgerRepo repositories.LedgerRepositoryInterface
	logger     *zap.Logger
}

func NewLedgerService(ledgerRepo repositories.LedgerRepositoryInterface, logger *zap.Logger) LedgerServiceInterface {
	return &LedgerService{
		ledgerRepo: ledgerRepo,
		logger:     logger,
	}
}

func (s *LedgerService) GetEntries(ctx context.Context, filter types.LedgerFilter) ([]dto.LedgerEntryDTO, uint64, error) {
	entries, err := s.ledgerRepo.GetEntries(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	result := make([]dto.LedgerEntryDTO, 0, len(entries))
	for i := range entries {
		result = append(result, ledgerEntryToDTO(&entries[i]))
	}
	return result, uint64(len(result)), nil
}
