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

type CreatePricingPlanCommand struct {
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
}

type CreatePricingPlanUseCase struct {
	planRepo billing.PricingPlanRepository
	logger   logger.Interface
}

func NewCreatePricingPlanUseCase(
	planRepo billing.PricingPlanRepository,
	logger logger.Interface,
) *CreatePricingPlanUseCase {
	return &CreatePricingPlanUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

func (uc *CreatePricingPlanUseCase) Execute(
	ctx context.Context,
	cmd CreatePricingPlanCommand,
) (*dto.PricingPlanDTO, error) {
	pricingType, err := vo.NewPricingType(cmd.PricingType)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	existing, err := uc.planRepo.FindBySlug(ctx, cmd.Slug)
	if err != nil {
		uc.logger.Errorw("failed to check slug existence", "error", err, "slug", cmd.Slug)
		return nil, fmt.Errorf("failed to check slug existence: %w", err)
	}
	if existing != nil {
		return nil, errors.NewConflictError(fmt.Sprintf("plan with slug %s already exists", cmd.Slug))
	}

	plan, err := billing.NewPricingPlan(billing.PricingPlanParams{
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
	})
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.planRepo.Save(ctx, plan); err != nil {
		uc.logger.Errorw("failed to persist plan", "error", err, "slug", cmd.Slug)
		return nil, fmt.Errorf("failed to persist plan: %w", err)
	}

	uc.logger.Infow("pricing plan created", "sid", plan.SID(), "slug", plan.Slug())
	return dto.ToPricingPlanDTO(plan), nil
}
