package usecases

import (
	"context"
	"fmt"

	"github.com/prato-inc/prato/internal/application/policy/dto"
	"github.com/prato-inc/prato/internal/domain/policy"
	"github.com/prato-inc/prato/internal/shared/logger"
)

// GetEffectivePolicyUseCase resolves the effective policy for a partner,
// reading through a cache keyed by partner ID. Partner ID zero resolves the
// pure global defaults.
type GetEffectivePolicyUseCase struct {
	globalRepo   policy.GlobalPolicyRepository
	overrideRepo policy.OverrideRepository
	cache        EffectivePolicyCache
	logger       logger.Interface
}

func NewGetEffectivePolicyUseCase(
	globalRepo policy.GlobalPolicyRepository,
	overrideRepo policy.OverrideRepository,
	cache EffectivePolicyCache,
	logger logger.Interface,
) *GetEffectivePolicyUseCase {
	return &GetEffectivePolicyUseCase{
		globalRepo:   globalRepo,
		overrideRepo: overrideRepo,
		cache:        cache,
		logger:       logger,
	}
}

func (uc *GetEffectivePolicyUseCase) Execute(
	ctx context.Context,
	partnerID uint,
) (*dto.EffectivePolicyDTO, error) {
	if cached, found, err := uc.cache.Get(ctx, partnerID); err != nil {
		uc.logger.Warnw("effective policy cache read failed", "error", err, "partner_id", partnerID)
	} else if found {
		return dto.ToEffectivePolicyDTO(partnerID, cached), nil
	}

	global, err := uc.globalRepo.Get(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load global policy", "error", err)
		return nil, fmt.Errorf("failed to load global policy: %w", err)
	}

	var override *policy.PolicyOverride
	if partnerID != 0 {
		override, err = uc.overrideRepo.GetByPartnerID(ctx, partnerID)
		if err != nil {
			uc.logger.Errorw("failed to load policy override", "error", err, "partner_id", partnerID)
			return nil, fmt.Errorf("failed to load policy override: %w", err)
		}
	}

	effective := policy.ResolveEffectivePolicy(global, override)

	if err := uc.cache.Set(ctx, partnerID, effective); err != nil {
		uc.logger.Warnw("effective policy cache write failed", "error", err, "partner_id", partnerID)
	}

	return dto.ToEffectivePolicyDTO(partnerID, effective), nil
}
