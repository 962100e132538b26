package usecases

import (
	"context"
	"fmt"

	"github.com/prato-inc/prato/internal/application/policy/dto"
	"github.com/prato-inc/prato/internal/domain/policy"
	"github.com/prato-inc/prato/internal/shared/logger"
)

type UpdateGlobalPolicyCommand struct {
	AllowFreePlan       bool
	AllowPartnerGateway bool
	AllowOfflineBilling bool
	MaxPlans            int64
	MinPaidPriceCents   int64
	MaxModulesPerPlan   int64
	MaxFeaturesPerPlan  int64
	MaxTrialDays        int64
	TxFeeMaxPercent     float64
	TxFeeMaxFixedCents  int64
}

// UpdateGlobalPolicyUseCase replaces the global policy wholesale. Every
// cached effective policy is invalidated because all partners inherit from
// it.
type UpdateGlobalPolicyUseCase struct {
	globalRepo policy.GlobalPolicyRepository
	cache      EffectivePolicyCache
	logger     logger.Interface
}

func NewUpdateGlobalPolicyUseCase(
	globalRepo policy.GlobalPolicyRepository,
	cache EffectivePolicyCache,
	logger logger.Interface,
) *UpdateGlobalPolicyUseCase {
	return &UpdateGlobalPolicyUseCase{
		globalRepo: globalRepo,
		cache:      cache,
		logger:     logger,
	}
}

func (uc *UpdateGlobalPolicyUseCase) Execute(
	ctx context.Context,
	cmd UpdateGlobalPolicyCommand,
) (*dto.GlobalPolicyDTO, error) {
	global, err := uc.globalRepo.Get(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load global policy", "error", err)
		return nil, fmt.Errorf("failed to load global policy: %w", err)
	}

	params := policy.GlobalPolicyParams{
		AllowFreePlan:       cmd.AllowFreePlan,
		AllowPartnerGateway: cmd.AllowPartnerGateway,
		AllowOfflineBilling: cmd.AllowOfflineBilling,
		MaxPlans:            cmd.MaxPlans,
		MinPaidPriceCents:   cmd.MinPaidPriceCents,
		MaxModulesPerPlan:   cmd.MaxModulesPerPlan,
		MaxFeaturesPerPlan:  cmd.MaxFeaturesPerPlan,
		MaxTrialDays:        cmd.MaxTrialDays,
		TxFeeMaxPercent:     cmd.TxFeeMaxPercent,
		TxFeeMaxFixedCents:  cmd.TxFeeMaxFixedCents,
	}
	if err := global.Update(params); err != nil {
		return nil, fmt.Errorf("invalid global policy: %w", err)
	}

	if err := uc.globalRepo.Save(ctx, global); err != nil {
		uc.logger.Errorw("failed to save global policy", "error", err)
		return nil, fmt.Errorf("failed to save global policy: %w", err)
	}

	if err := uc.cache.InvalidateAll(ctx); err != nil {
		uc.logger.Warnw("failed to invalidate effective policy cache", "error", err)
	}

	uc.logger.Infow("global policy updated", "version", global.Version())
	return dto.ToGlobalPolicyDTO(global), nil
}
