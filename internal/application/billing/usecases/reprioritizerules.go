package usecases

import (
	"context"
	"fmt"

	"github.com/prato-inc/prato/internal/domain/billing"
	"github.com/prato-inc/prato/internal/shared/errors"
	"github.com/prato-inc/prato/internal/shared/logger"
)

// RulePriorityInput pairs a rule SID with its new rank.
type RulePriorityInput struct {
	SID      string
	Priority int
}

// ReprioritizeRulesUseCase re-ranks a batch of rules in one request. Ranks
// are free-form: admins can push a global rule above a tenant rule, the
// resolver only looks at the stored number.
type ReprioritizeRulesUseCase struct {
	ruleRepo billing.AvailabilityRuleRepository
	logger   logger.Interface
}

func NewReprioritizeRulesUseCase(
	ruleRepo billing.AvailabilityRuleRepository,
	logger logger.Interface,
) *ReprioritizeRulesUseCase {
	return &ReprioritizeRulesUseCase{
		ruleRepo: ruleRepo,
		logger:   logger,
	}
}

func (uc *ReprioritizeRulesUseCase) Execute(ctx context.Context, inputs []RulePriorityInput) error {
	if len(inputs) == 0 {
		return errors.NewValidationError("at least one rule is required")
	}

	for _, input := range inputs {
		rule, err := uc.ruleRepo.FindBySID(ctx, input.SID)
		if err != nil {
			uc.logger.Errorw("failed to load rule", "error", err, "sid", input.SID)
			return fmt.Errorf("failed to load rule %s: %w", input.SID, err)
		}
		if rule == nil {
			return errors.NewNotFoundError(fmt.Sprintf("availability rule %s not found", input.SID))
		}

		if err := rule.Reprioritize(input.Priority); err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := uc.ruleRepo.Update(ctx, rule); err != nil {
			uc.logger.Errorw("failed to update rule priority", "error", err, "sid", input.SID)
			return fmt.Errorf("failed to update rule %s: %w", input.SID, err)
		}
	}

	uc.logger.Infow("availability rules reprioritized", "count", len(inputs))
	return nil
}
