package usecases

import (
	"context"
	"fmt"

	"github.com/prato-inc/prato/internal/application/billing/dto"
	"github.com/prato-inc/prato/internal/domain/billing"
	"github.com/prato-inc/prato/internal/shared/errors"
	"github.com/prato-inc/prato/internal/shared/logger"
)

type ListRulesCommand struct {
	EnabledOnly bool
	Offset      int
	Limit       int
}

type ListRulesResult struct {
	Rules []*dto.AvailabilityRuleDTO
	Total int64
}

// ListRulesUseCase lists rules with their provider and plan SIDs resolved
// from the route snapshot, so dangling references surface as empty SIDs.
type ListRulesUseCase struct {
	ruleRepo     billing.AvailabilityRuleRepository
	snapshotRepo billing.RouteSnapshotRepository
	logger       logger.Interface
}

func NewListRulesUseCase(
	ruleRepo billing.AvailabilityRuleRepository,
	snapshotRepo billing.RouteSnapshotRepository,
	logger logger.Interface,
) *ListRulesUseCase {
	return &ListRulesUseCase{
		ruleRepo:     ruleRepo,
		snapshotRepo: snapshotRepo,
		logger:       logger,
	}
}

func (uc *ListRulesUseCase) Execute(
	ctx context.Context,
	cmd ListRulesCommand,
) (*ListRulesResult, error) {
	rules, total, err := uc.ruleRepo.List(ctx, cmd.EnabledOnly, cmd.Offset, cmd.Limit)
	if err != nil {
		uc.logger.Errorw("failed to list rules", "error", err)
		return nil, fmt.Errorf("failed to list rules: %w", err)
	}

	snapshot, err := uc.snapshotRepo.LoadRouteSnapshot(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load route snapshot", "error", err)
		return nil, fmt.Errorf("failed to load route snapshot: %w", err)
	}

	dtos := make([]*dto.AvailabilityRuleDTO, 0, len(rules))
	for _, rule := range rules {
		providerSID := ""
		if provider, ok := snapshot.Providers[rule.ProviderID()]; ok {
			providerSID = provider.SID()
		}
		planSID := ""
		if planID, pinned := rule.PlanID(); pinned {
			if plan, ok := snapshot.Plans[planID]; ok {
				planSID = plan.SID()
			}
		}
		dtos = append(dtos, dto.ToAvailabilityRuleDTO(rule, providerSID, planSID))
	}

	return &ListRulesResult{Rules: dtos, Total: total}, nil
}

type DeleteRuleUseCase struct {
	ruleRepo billing.AvailabilityRuleRepository
	logger   logger.Interface
}

func NewDeleteRuleUseCase(
	ruleRepo billing.AvailabilityRuleRepository,
	logger logger.Interface,
) *DeleteRuleUseCase {
	return &DeleteRuleUseCase{
		ruleRepo: ruleRepo,
		logger:   logger,
	}
}

func (uc *DeleteRuleUseCase) Execute(ctx context.Context, sid string) error {
	rule, err := uc.ruleRepo.FindBySID(ctx, sid)
	if err != nil {
		uc.logger.Errorw("failed to load rule", "error", err, "sid", sid)
		return fmt.Errorf("failed to load rule: %w", err)
	}
	if rule == nil {
		return errors.NewNotFoundError("availability rule not found")
	}

	if err := uc.ruleRepo.Delete(ctx, rule.ID()); err != nil {
		uc.logger.Errorw("failed to delete rule", "error", err, "sid", sid)
		return fmt.Errorf("failed to delete rule: %w", err)
	}

	uc.logger.Infow("availability rule deleted", "sid", sid)
	return nil
}
