package usecases

import (
	"context"
	"fmt"

	"github.com/prato-inc/prato/internal/application/policy/dto"
	"github.com/prato-inc/prato/internal/domain/policy"
	"github.com/prato-inc/prato/internal/shared/errors"
	"github.com/prato-inc/prato/internal/shared/logger"
)

type GetOverrideUseCase struct {
	overrideRepo policy.OverrideRepository
	logger       logger.Interface
}

func NewGetOverrideUseCase(
	overrideRepo policy.OverrideRepository,
	logger logger.Interface,
) *GetOverrideUseCase {
	return &GetOverrideUseCase{
		overrideRepo: overrideRepo,
		logger:       logger,
	}
}

func (uc *GetOverrideUseCase) Execute(ctx context.Context, partnerID uint) (*dto.PolicyOverrideDTO, error) {
	override, err := uc.overrideRepo.GetByPartnerID(ctx, partnerID)
	if err != nil {
		uc.logger.Errorw("failed to load policy override", "error", err, "partner_id", partnerID)
		return nil, fmt.Errorf("failed to load policy override: %w", err)
	}
	if override == nil {
		return nil, errors.NewNotFoundError("no policy override for partner")
	}
	return dto.ToPolicyOverrideDTO(override), nil
}
