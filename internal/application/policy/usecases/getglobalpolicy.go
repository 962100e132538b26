package usecases

import (
	"context"
	"fmt"

	"github.com/prato-inc/prato/internal/application/policy/dto"
	"github.com/prato-inc/prato/internal/domain/policy"
	"github.com/prato-inc/prato/internal/shared/logger"
)

type GetGlobalPolicyUseCase struct {
	globalRepo policy.GlobalPolicyRepository
	logger     logger.Interface
}

func NewGetGlobalPolicyUseCase(
	globalRepo policy.GlobalPolicyRepository,
	logger logger.Interface,
) *GetGlobalPolicyUseCase {
	return &GetGlobalPolicyUseCase{
		globalRepo: globalRepo,
		logger:     logger,
	}
}

func (uc *GetGlobalPolicyUseCase) Execute(ctx context.Context) (*dto.GlobalPolicyDTO, error) {
	global, err := uc.globalRepo.Get(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load global policy", "error", err)
		return nil, fmt.Errorf("failed to load global policy: %w", err)
	}
	return dto.ToGlobalPolicyDTO(global), nil
}
