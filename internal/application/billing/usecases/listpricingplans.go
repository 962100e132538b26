package usecases

import (
	"context"
	"fmt"

	"github.com/prato-inc/prato/internal/application/billing/dto"
	"github.com/prato-inc/prato/internal/domain/billing"
	"github.com/prato-inc/prato/internal/shared/logger"
)

type ListPricingPlansCommand struct {
	ActiveOnly bool
	Offset     int
	Limit      int
}

type ListPricingPlansResult struct {
	Plans []*dto.PricingPlanDTO
	Total int64
}

type ListPricingPlansUseCase struct {
	planRepo billing.PricingPlanRepository
	logger   logger.Interface
}

func NewListPricingPlansUseCase(
	planRepo billing.PricingPlanRepository,
	logger logger.Interface,
) *ListPricingPlansUseCase {
	return &ListPricingPlansUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

func (uc *ListPricingPlansUseCase) Execute(
	ctx context.Context,
	cmd ListPricingPlansCommand,
) (*ListPricingPlansResult, error) {
	plans, total, err := uc.planRepo.List(ctx, cmd.ActiveOnly, cmd.Offset, cmd.Limit)
	if err != nil {
		uc.logger.Errorw("failed to list plans", "error", err)
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	return &ListPricingPlansResult{
		Plans: dto.ToPricingPlanDTOList(plans),
		Total: total,
	}, nil
}
