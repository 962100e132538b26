package usecases

import (
	"context"
	"fmt"

	billingdto "github.com/prato-inc/prato/internal/application/billing/dto"
	"github.com/prato-inc/prato/internal/domain/billing"
	"github.com/prato-inc/prato/internal/shared/errors"
	"github.com/prato-inc/prato/internal/shared/logger"
)

type SelectCredentialCommand struct {
	ProviderSID string
	TenantID    uint
}

// SelectCredentialUseCase picks the credential a transaction should use: the
// tenant's own credential first, otherwise the platform credential. The
// result is independent of route resolution and of the partner's policy.
type SelectCredentialUseCase struct {
	providerRepo   billing.PSPProviderRepository
	credentialRepo billing.CredentialRepository
	logger         logger.Interface
}

func NewSelectCredentialUseCase(
	providerRepo billing.PSPProviderRepository,
	credentialRepo billing.CredentialRepository,
	logger logger.Interface,
) *SelectCredentialUseCase {
	return &SelectCredentialUseCase{
		providerRepo:   providerRepo,
		credentialRepo: credentialRepo,
		logger:         logger,
	}
}

func (uc *SelectCredentialUseCase) Execute(
	ctx context.Context,
	cmd SelectCredentialCommand,
) (*billingdto.CredentialDTO, error) {
	if cmd.TenantID == 0 {
		return nil, errors.NewValidationError("tenant ID is required")
	}

	provider, err := uc.providerRepo.FindBySID(ctx, cmd.ProviderSID)
	if err != nil {
		uc.logger.Errorw("failed to load provider", "error", err, "provider_sid", cmd.ProviderSID)
		return nil, fmt.Errorf("failed to load provider: %w", err)
	}
	if provider == nil {
		return nil, errors.NewNotFoundError("provider not found")
	}

	candidates, err := uc.credentialRepo.ListByProviderID(ctx, provider.ID())
	if err != nil {
		uc.logger.Errorw("failed to list credentials", "error", err, "provider_sid", cmd.ProviderSID)
		return nil, fmt.Errorf("failed to list credentials: %w", err)
	}

	selected, err := billing.SelectCredential(candidates, cmd.TenantID)
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("credential selected",
		"credential_sid", selected.SID(),
		"scope", selected.Scope().String(),
		"tenant_id", cmd.TenantID,
		"provider_sid", provider.SID(),
	)
	return billingdto.ToCredentialDTO(selected, provider.SID()), nil
}
