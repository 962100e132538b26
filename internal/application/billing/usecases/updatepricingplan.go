package usecases

import (
	"context"
	"fmt"

	"github.com/prato-inc/prato/internal/application/billing/dto"
	"github.com/prato-inc/prato/internal/domain/billing"
	vo "github.com/prato-inc/prato/internal/domain/billing/valueobjects"
	"github.com/prato-inc/prato/internal/shared/errors"
	"github.com/prato-inc/prato/internal/shared/logger"
)

type UpdatePricingPlanCommand struct {
	SID            string
	Name           string
	Slug           string
	PricingType    string
	PercentRate    float64
	FixedRateCents int64
	MinFeeCents    int64
	MaxFeeCents    *int64
	IsSubsidized   bool
	SubsidyPercent float64
	DisplayOrder   int
	Notes          string
	IsActive       *bool
}

type UpdatePricingPlanUseCase struct {
	planRepo billing.PricingPlanRepository
	logger   logger.Interface
}

func NewUpdatePricingPlanUseCase(
	planRepo billing.PricingPlanRepository,
	logger logger.Interface,
) *UpdatePricingPlanUseCase {
	return &UpdatePricingPlanUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

func (uc *UpdatePricingPlanUseCase) Execute(
	ctx context.Context,
	cmd UpdatePricingPlanCommand,
) (*dto.PricingPlanDTO, error) {
	plan, err := uc.planRepo.FindBySID(ctx, cmd.SID)
	if err != nil {
		uc.logger.Errorw("failed to load plan", "error", err, "sid", cmd.SID)
		return nil, fmt.Errorf("failed to load plan: %w", err)
	}
	if plan == nil {
		return nil, errors.NewNotFoundError("pricing plan not found")
	}

	pricingType, err := vo.NewPricingType(cmd.PricingType)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if cmd.Slug != plan.Slug() {
		existing, err := uc.planRepo.FindBySlug(ctx, cmd.Slug)
		if err != nil {
			return nil, fmt.Errorf("failed to check slug existence: %w", err)
		}
		if existing != nil {
			return nil, errors.NewConflictError(fmt.Sprintf("plan with slug %s already exists", cmd.Slug))
		}
	}

	if err := plan.Update(billing.PricingPlanParams{
		Name:           cmd.Name,
		Slug:           cmd.Slug,
		PricingType:    pricingType,
		PercentRate:    cmd.PercentRate,
		FixedRateCents: cmd.FixedRateCents,
		MinFeeCents:    cmd.MinFeeCents,
		MaxFeeCents:    cmd.MaxFeeCents,
		IsSubsidized:   cmd.IsSubsidized,
		SubsidyPercent: cmd.SubsidyPercent,
		DisplayOrder:   cmd.DisplayOrder,
		Notes:          cmd.Notes,
	}); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if cmd.IsActive != nil {
		if *cmd.IsActive {
			plan.Activate()
		} else {
			plan.Deactivate()
		}
	}

	if err := uc.planRepo.Update(ctx, plan); err != nil {
		uc.logger.Errorw("failed to update plan", "error", err, "sid", cmd.SID)
		return nil, fmt.Errorf("failed to update plan: %w", err)
	}

	uc.logger.Infow("pricing plan updated", "sid", plan.SID(), "version", plan.Version())
	return dto.ToPricingPlanDTO(plan), nil
}
