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

type UpdateRuleCommand struct {
	SID         string
	Scope       string
	ScopeID     *uint
	ProviderSID string
	PlanSID     string
	Priority    int
	Notes       string
	Enabled     *bool
}

type UpdateRuleUseCase struct {
	ruleRepo     billing.AvailabilityRuleRepository
	providerRepo billing.PSPProviderRepository
	planRepo     billing.PricingPlanRepository
	logger       logger.Interface
}

func NewUpdateRuleUseCase(
	ruleRepo billing.AvailabilityRuleRepository,
	providerRepo billing.PSPProviderRepository,
	planRepo billing.PricingPlanRepository,
	logger logger.Interface,
) *UpdateRuleUseCase {
	return &UpdateRuleUseCase{
		ruleRepo:     ruleRepo,
		providerRepo: providerRepo,
		planRepo:     planRepo,
		logger:       logger,
	}
}

func (uc *UpdateRuleUseCase) Execute(
	ctx context.Context,
	cmd UpdateRuleCommand,
) (*dto.AvailabilityRuleDTO, error) {
	rule, err := uc.ruleRepo.FindBySID(ctx, cmd.SID)
	if err != nil {
		uc.logger.Errorw("failed to load rule", "error", err, "sid", cmd.SID)
		return nil, fmt.Errorf("failed to load rule: %w", err)
	}
	if rule == nil {
		return nil, errors.NewNotFoundError("availability rule not found")
	}

	scope, err := vo.NewRuleScope(cmd.Scope)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	provider, err := uc.providerRepo.FindBySID(ctx, cmd.ProviderSID)
	if err != nil {
		return nil, fmt.Errorf("failed to load provider: %w", err)
	}
	if provider == nil {
		return nil, errors.NewNotFoundError("provider not found")
	}

	var planID *uint
	planSID := ""
	if cmd.PlanSID != "" {
		plan, err := uc.planRepo.FindBySID(ctx, cmd.PlanSID)
		if err != nil {
			return nil, fmt.Errorf("failed to load plan: %w", err)
		}
		if plan == nil {
			return nil, errors.NewNotFoundError("pricing plan not found")
		}
		id := plan.ID()
		planID = &id
		planSID = plan.SID()
	}

	if err := rule.Update(billing.AvailabilityRuleParams{
		Scope:      scope,
		ScopeID:    cmd.ScopeID,
		ProviderID: provider.ID(),
		PlanID:     planID,
		Priority:   cmd.Priority,
		Notes:      cmd.Notes,
	}); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if cmd.Enabled != nil {
		if *cmd.Enabled {
			rule.Enable()
		} else {
			rule.Disable()
		}
	}

	if err := uc.ruleRepo.Update(ctx, rule); err != nil {
		uc.logger.Errorw("failed to update rule", "error", err, "sid", cmd.SID)
		return nil, fmt.Errorf("failed to update rule: %w", err)
	}

	uc.logger.Infow("availability rule updated", "sid", rule.SID(), "version", rule.Version())
	return dto.ToAvailabilityRuleDTO(rule, provider.SID(), planSID), nil
}
