package usecases

import (
	"context"
	"fmt"

	"github.com/prato-inc/prato/internal/domain/billing"
	"github.com/prato-inc/prato/internal/shared/errors"
	"github.com/prato-inc/prato/internal/shared/logger"
)

// DeletePricingPlanUseCase removes a plan. Rules that pin the plan are
// disabled rather than deleted, so they stop matching immediately but remain
// visible to admins for repair. Both writes happen in one transaction.
type DeletePricingPlanUseCase struct {
	planRepo billing.PricingPlanRepository
	logger   logger.Interface
}

func NewDeletePricingPlanUseCase(
	planRepo billing.PricingPlanRepository,
	logger logger.Interface,
) *DeletePricingPlanUseCase {
	return &DeletePricingPlanUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

func (uc *DeletePricingPlanUseCase) Execute(ctx context.Context, sid string) error {
	plan, err := uc.planRepo.FindBySID(ctx, sid)
	if err != nil {
		uc.logger.Errorw("failed to load plan", "error", err, "sid", sid)
		return fmt.Errorf("failed to load plan: %w", err)
	}
	if plan == nil {
		return errors.NewNotFoundError("pricing plan not found")
	}

	rulesDisabled, err := uc.planRepo.DeleteCascade(ctx, plan.ID())
	if err != nil {
		uc.logger.Errorw("failed to delete plan", "error", err, "sid", sid)
		return fmt.Errorf("failed to delete plan: %w", err)
	}
	if rulesDisabled > 0 {
		uc.logger.Warnw("rules disabled because their plan was deleted",
			"plan_sid", sid,
			"rules_disabled", rulesDisabled,
		)
	}

	uc.logger.Infow("pricing plan deleted", "sid", sid, "rules_disabled", rulesDisabled)
	return nil
}
