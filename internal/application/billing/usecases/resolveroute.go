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

type ResolveRouteCommand struct {
	TenantID   uint
	PartnerID  *uint
	PlanID     *uint
	CategoryID *uint
}

// ResolveRouteUseCase finds the provider and fee schedule for a route
// context. It walks the matching rules best-first and skips any rule whose
// provider or pinned plan no longer exists or is inactive, so a dangling
// reference degrades to the next candidate instead of failing the route.
type ResolveRouteUseCase struct {
	snapshotRepo billing.RouteSnapshotRepository
	logger       logger.Interface
}

func NewResolveRouteUseCase(
	snapshotRepo billing.RouteSnapshotRepository,
	logger logger.Interface,
) *ResolveRouteUseCase {
	return &ResolveRouteUseCase{
		snapshotRepo: snapshotRepo,
		logger:       logger,
	}
}

func (uc *ResolveRouteUseCase) Execute(
	ctx context.Context,
	cmd ResolveRouteCommand,
) (*dto.RouteResolutionDTO, error) {
	if cmd.TenantID == 0 {
		return nil, errors.NewValidationError("tenant ID is required")
	}

	snapshot, err := uc.snapshotRepo.LoadRouteSnapshot(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load route snapshot", "error", err)
		return nil, fmt.Errorf("failed to load route snapshot: %w", err)
	}

	routeCtx := billing.RouteContext{
		TenantID:   cmd.TenantID,
		PartnerID:  cmd.PartnerID,
		PlanID:     cmd.PlanID,
		CategoryID: cmd.CategoryID,
	}

	for _, rule := range billing.MatchingRules(snapshot.Rules, routeCtx) {
		provider, ok := snapshot.Providers[rule.ProviderID()]
		if !ok || !provider.IsActive() {
			uc.logger.Warnw("rule references missing or inactive provider, skipping",
				"rule_sid", rule.SID(),
				"provider_id", rule.ProviderID(),
			)
			continue
		}

		var plan *billing.PricingPlan
		schedule := provider.DefaultFeeSchedule()
		if planID, pinned := rule.PlanID(); pinned {
			plan, ok = snapshot.Plans[planID]
			if !ok || !plan.IsActive() {
				uc.logger.Warnw("rule references missing or inactive plan, skipping",
					"rule_sid", rule.SID(),
					"plan_id", planID,
				)
				continue
			}
			schedule, err = plan.FeeSchedule()
			if err != nil {
				uc.logger.Warnw("plan has an unusable fee schedule, skipping rule",
					"rule_sid", rule.SID(),
					"plan_sid", plan.SID(),
					"error", err,
				)
				continue
			}
		}

		return uc.toResolution(rule, provider, plan, schedule), nil
	}

	return nil, billing.ErrNoRouteMatched
}

func (uc *ResolveRouteUseCase) toResolution(
	rule *billing.AvailabilityRule,
	provider *billing.PSPProvider,
	plan *billing.PricingPlan,
	schedule vo.FeeSchedule,
) *dto.RouteResolutionDTO {
	return &dto.RouteResolutionDTO{
		RuleSID:     rule.SID(),
		Scope:       rule.Scope().String(),
		Priority:    rule.Priority(),
		Provider:    dto.ToPSPProviderDTO(provider),
		Plan:        dto.ToPricingPlanDTO(plan),
		FeeSchedule: dto.ToFeeScheduleDTO(schedule),
	}
}
