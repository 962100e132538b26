package usecases

import (
	"context"
	"fmt"

	"github.com/prato-inc/prato/internal/domain/billing"
	"github.com/prato-inc/prato/internal/shared/errors"
	"github.com/prato-inc/prato/internal/shared/logger"
)

// DeleteProviderUseCase deactivates a provider instead of removing the row:
// rules and credentials keep their references, and the resolver skips the
// provider until an admin re-activates or re-points them.
type DeleteProviderUseCase struct {
	providerRepo billing.PSPProviderRepository
	logger       logger.Interface
}

func NewDeleteProviderUseCase(
	providerRepo billing.PSPProviderRepository,
	logger logger.Interface,
) *DeleteProviderUseCase {
	return &DeleteProviderUseCase{
		providerRepo: providerRepo,
		logger:       logger,
	}
}

func (uc *DeleteProviderUseCase) Execute(ctx context.Context, sid string) error {
	provider, err := uc.providerRepo.FindBySID(ctx, sid)
	if err != nil {
		uc.logger.Errorw("failed to load provider", "error", err, "sid", sid)
		return fmt.Errorf("failed to load provider: %w", err)
	}
	if provider == nil {
		return errors.NewNotFoundError("provider not found")
	}

	provider.Deactivate()
	if err := uc.providerRepo.Update(ctx, provider); err != nil {
		uc.logger.Errorw("failed to deactivate provider", "error", err, "sid", sid)
		return fmt.Errorf("failed to deactivate provider: %w", err)
	}

	uc.logger.Infow("psp provider deactivated", "sid", sid)
	return nil
}
