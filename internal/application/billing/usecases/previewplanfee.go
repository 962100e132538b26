package usecases

import (
	"context"
	"fmt"

	"github.com/prato-inc/prato/internal/application/billing/dto"
	"github.com/prato-inc/prato/internal/domain/billing"
	"github.com/prato-inc/prato/internal/shared/constants"
	"github.com/prato-inc/prato/internal/shared/errors"
	"github.com/prato-inc/prato/internal/shared/logger"
)

type PreviewPlanFeeCommand struct {
	PlanSID      string
	AmountsCents []int64
}

// PreviewPlanFeeUseCase prices a batch of sample amounts against a single
// plan so admins can inspect a fee table before routing traffic to it.
type PreviewPlanFeeUseCase struct {
	planRepo billing.PricingPlanRepository
	logger   logger.Interface
}

func NewPreviewPlanFeeUseCase(
	planRepo billing.PricingPlanRepository,
	logger logger.Interface,
) *PreviewPlanFeeUseCase {
	return &PreviewPlanFeeUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

func (uc *PreviewPlanFeeUseCase) Execute(
	ctx context.Context,
	cmd PreviewPlanFeeCommand,
) ([]*dto.FeeBreakdownDTO, error) {
	if len(cmd.AmountsCents) == 0 {
		return nil, errors.NewValidationError("at least one sample amount is required")
	}

	plan, err := uc.planRepo.FindBySID(ctx, cmd.PlanSID)
	if err != nil {
		uc.logger.Errorw("failed to load plan", "error", err, "sid", cmd.PlanSID)
		return nil, fmt.Errorf("failed to load plan: %w", err)
	}
	if plan == nil {
		return nil, errors.NewNotFoundError("pricing plan not found")
	}

	schedule, err := plan.FeeSchedule()
	if err != nil {
		return nil, fmt.Errorf("plan has an unusable fee schedule: %w", err)
	}

	previews := make([]*dto.FeeBreakdownDTO, 0, len(cmd.AmountsCents))
	for _, amount := range cmd.AmountsCents {
		breakdown, err := billing.ComputeFee(schedule, amount)
		if err != nil {
			return nil, err
		}
		previews = append(previews, dto.ToFeeBreakdownDTO(amount, constants.DefaultCurrency, breakdown))
	}
	return previews, nil
}
