package usecases

import (
	"context"
	"fmt"

	"github.com/prato-inc/prato/internal/domain/policy"
	"github.com/prato-inc/prato/internal/shared/errors"
	"github.com/prato-inc/prato/internal/shared/logger"
)

// DeleteOverrideUseCase removes a partner's override; the partner falls back
// to the global defaults.
type DeleteOverrideUseCase struct {
	overrideRepo policy.OverrideRepository
	cache        EffectivePolicyCache
	logger       logger.Interface
}

func NewDeleteOverrideUseCase(
	overrideRepo policy.OverrideRepository,
	cache EffectivePolicyCache,
	logger logger.Interface,
) *DeleteOverrideUseCase {
	return &DeleteOverrideUseCase{
		overrideRepo: overrideRepo,
		cache:        cache,
		logger:       logger,
	}
}

func (uc *DeleteOverrideUseCase) Execute(ctx context.Context, partnerID uint) error {
	override, err := uc.overrideRepo.GetByPartnerID(ctx, partnerID)
	if err != nil {
		uc.logger.Errorw("failed to load policy override", "error", err, "partner_id", partnerID)
		return fmt.Errorf("failed to load policy override: %w", err)
	}
	if override == nil {
		return errors.NewNotFoundError("no policy override for partner")
	}

	if err := uc.overrideRepo.DeleteByPartnerID(ctx, partnerID); err != nil {
		uc.logger.Errorw("failed to delete policy override", "error", err, "partner_id", partnerID)
		return fmt.Errorf("failed to delete policy override: %w", err)
	}

	if err := uc.cache.Invalidate(ctx, partnerID); err != nil {
		uc.logger.Warnw("failed to invalidate effective policy cache", "error", err, "partner_id", partnerID)
	}

	uc.logger.Infow("policy override deleted", "partner_id", partnerID)
	return nil
}
