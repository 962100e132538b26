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

type CreateRuleCommand struct {
	Scope       string
	ScopeID     *uint
	ProviderSID string
	PlanSID     string
	Priority    int
	Notes       string
}

type CreateRuleUseCase struct {
	ruleRepo     billing.AvailabilityRuleRepository
	providerRepo billing.PSPProviderRepository
	planRepo     billing.PricingPlanRepository
	logger       logger.Interface
}

func NewCreateRuleUseCase(
	ruleRepo billing.AvailabilityRuleRepository,
	providerRepo billing.PSPProviderRepository,
	planRepo billing.PricingPlanRepository,
	logger logger.Interface,
) *CreateRuleUseCase {
	return &CreateRuleUseCase{
		ruleRepo:     ruleRepo,
		providerRepo: providerRepo,
		planRepo:     planRepo,
		logger:       logger,
	}
}

func (uc *CreateRuleUseCase) Execute(
	ctx context.Context,
	cmd CreateRuleCommand,
) (*dto.AvailabilityRuleDTO, error) {
	scope, err := vo.NewRuleScope(cmd.Scope)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	provider, err := uc.providerRepo.FindBySID(ctx, cmd.ProviderSID)
	if err != nil {
		uc.logger.Errorw("failed to load provider", "error", err, "provider_sid", cmd.ProviderSID)
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
			uc.logger.Errorw("failed to load plan", "error", err, "plan_sid", cmd.PlanSID)
			return nil, fmt.Errorf("failed to load plan: %w", err)
		}
		if plan == nil {
			return nil, errors.NewNotFoundError("pricing plan not found")
		}
		id := plan.ID()
		planID = &id
		planSID = plan.SID()
	}

	rule, err := billing.NewAvailabilityRule(billing.AvailabilityRuleParams{
		Scope:      scope,
		ScopeID:    cmd.ScopeID,
		ProviderID: provider.ID(),
		PlanID:     planID,
		Priority:   cmd.Priority,
		Notes:      cmd.Notes,
	})
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ruleRepo.Save(ctx, rule); err != nil {
		uc.logger.Errorw("failed to persist rule", "error", err)
		return nil, fmt.Errorf("failed to persist rule: %w", err)
	}

	uc.logger.Infow("availability rule created",
		"sid", rule.SID(),
		"scope", rule.Scope().String(),
		"priority", rule.Priority(),
	)
	return dto.ToAvailabilityRuleDTO(rule, provider.SID(), planSID), nil
}
