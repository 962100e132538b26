package usecases

import (
	"context"
	"fmt"

	"github.com/prato-inc/prato/internal/application/policy/dto"
	"github.com/prato-inc/prato/internal/domain/policy"
	vo "github.com/prato-inc/prato/internal/domain/policy/valueobjects"
	"github.com/prato-inc/prato/internal/shared/errors"
	"github.com/prato-inc/prato/internal/shared/logger"
)

// UpdateOverrideCommand mutates a partner's override. CycleFields are the
// tri-state bool fields to advance one step (inherit -> on -> off ->
// inherit); limit pointers replace the stored override state outright, nil
// meaning inherit.
type UpdateOverrideCommand struct {
	PartnerID uint

	CycleFields []string

	MaxPlans           *int64
	MinPaidPriceCents  *int64
	MaxModulesPerPlan  *int64
	MaxFeaturesPerPlan *int64
	MaxTrialDays       *int64
	TxFeeMaxPercent    *float64
	TxFeeMaxFixedCents *int64

	Notes *string
}

// UpdateOverrideUseCase creates the override row on first write and drops it
// again when every field returns to inherit, so an all-inherit override and
// a missing one stay indistinguishable.
type UpdateOverrideUseCase struct {
	overrideRepo policy.OverrideRepository
	cache        EffectivePolicyCache
	logger       logger.Interface
}

func NewUpdateOverrideUseCase(
	overrideRepo policy.OverrideRepository,
	cache EffectivePolicyCache,
	logger logger.Interface,
) *UpdateOverrideUseCase {
	return &UpdateOverrideUseCase{
		overrideRepo: overrideRepo,
		cache:        cache,
		logger:       logger,
	}
}

func (uc *UpdateOverrideUseCase) Execute(
	ctx context.Context,
	cmd UpdateOverrideCommand,
) (*dto.PolicyOverrideDTO, error) {
	if cmd.PartnerID == 0 {
		return nil, errors.NewValidationError("partner ID is required")
	}

	override, err := uc.overrideRepo.GetByPartnerID(ctx, cmd.PartnerID)
	if err != nil {
		uc.logger.Errorw("failed to load policy override", "error", err, "partner_id", cmd.PartnerID)
		return nil, fmt.Errorf("failed to load policy override: %w", err)
	}
	if override == nil {
		override, err = policy.NewPolicyOverride(cmd.PartnerID)
		if err != nil {
			return nil, fmt.Errorf("failed to create policy override: %w", err)
		}
	}

	for _, field := range cmd.CycleFields {
		if err := override.CycleBoolField(policy.BoolField(field)); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := override.SetLimits(
		vo.IntFromPtr(cmd.MaxPlans),
		vo.IntFromPtr(cmd.MinPaidPriceCents),
		vo.IntFromPtr(cmd.MaxModulesPerPlan),
		vo.IntFromPtr(cmd.MaxFeaturesPerPlan),
		vo.IntFromPtr(cmd.MaxTrialDays),
		vo.FloatFromPtr(cmd.TxFeeMaxPercent),
		vo.IntFromPtr(cmd.TxFeeMaxFixedCents),
	); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if cmd.Notes != nil {
		override.SetNotes(*cmd.Notes)
	}

	if override.IsAllInherit() {
		if override.ID() != 0 {
			if err := uc.overrideRepo.DeleteByPartnerID(ctx, cmd.PartnerID); err != nil {
				uc.logger.Errorw("failed to delete all-inherit override", "error", err, "partner_id", cmd.PartnerID)
				return nil, fmt.Errorf("failed to delete policy override: %w", err)
			}
		}
	} else if err := uc.overrideRepo.Save(ctx, override); err != nil {
		uc.logger.Errorw("failed to save policy override", "error", err, "partner_id", cmd.PartnerID)
		return nil, fmt.Errorf("failed to save policy override: %w", err)
	}

	if err := uc.cache.Invalidate(ctx, cmd.PartnerID); err != nil {
		uc.logger.Warnw("failed to invalidate effective policy cache", "error", err, "partner_id", cmd.PartnerID)
	}

	uc.logger.Infow("policy override updated",
		"partner_id", cmd.PartnerID,
		"all_inherit", override.IsAllInherit(),
	)
	return dto.ToPolicyOverrideDTO(override), nil
}
