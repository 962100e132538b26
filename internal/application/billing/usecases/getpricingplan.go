package usecases

import (
	"context"
	"fmt"

	"github.com/prato-inc/prato/internal/application/billing/dto"
	"github.com/prato-inc/prato/internal/domain/billing"
	"github.com/prato-inc/prato/internal/shared/errors"
	"github.com/prato-inc/prato/internal/shared/logger"
)

type GetPricingPlanUseCase struct {
	planRepo billing.PricingPlanRepository
	logger   logger.Interface
}

func NewGetPricingPlanUseCase(
	planRepo billing.PricingPlanRepository,
	logger logger.Interface,
) *GetPricingPlanUseCase {
	return &GetPricingPlanUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

func (uc *GetPricingPlanUseCase) Execute(ctx context.Context, sid string) (*dto.PricingPlanDTO, error) {
	plan, err := uc.planRepo.FindBySID(ctx, sid)
	if err != nil {
		uc.logger.Errorw("failed to load plan", "error", err, "sid", sid)
		return nil, fmt.Errorf("failed to load plan: %w", err)
	}
	if plan == nil {
		return nil, errors.NewNotFoundError("pricing plan not found")
	}
	return dto.ToPricingPlanDTO(plan), nil
}
