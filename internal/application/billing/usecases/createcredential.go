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

type CreateCredentialCommand struct {
	ProviderSID            string
	Scope                  string
	TenantID               *uint
	APIKeyEncrypted        string
	WebhookSecretEncrypted string
	AccountRef             string
	UsePlatformCredentials bool
}

type CreateCredentialUseCase struct {
	credentialRepo billing.CredentialRepository
	providerRepo   billing.PSPProviderRepository
	logger         logger.Interface
}

func NewCreateCredentialUseCase(
	credentialRepo billing.CredentialRepository,
	providerRepo billing.PSPProviderRepository,
	logger logger.Interface,
) *CreateCredentialUseCase {
	return &CreateCredentialUseCase{
		credentialRepo: credentialRepo,
		providerRepo:   providerRepo,
		logger:         logger,
	}
}

func (uc *CreateCredentialUseCase) Execute(
	ctx context.Context,
	cmd CreateCredentialCommand,
) (*dto.CredentialDTO, error) {
	scope, err := vo.NewCredentialScope(cmd.Scope)
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

	var credential *billing.Credential
	switch scope {
	case vo.CredentialScopeTenant:
		if cmd.TenantID == nil || *cmd.TenantID == 0 {
			return nil, errors.NewValidationError("tenant-scoped credential requires a tenant ID")
		}
		credential, err = billing.NewTenantCredential(provider.ID(), *cmd.TenantID, cmd.APIKeyEncrypted, cmd.WebhookSecretEncrypted, cmd.AccountRef)
	default:
		credential, err = billing.NewPlatformCredential(provider.ID(), cmd.APIKeyEncrypted, cmd.WebhookSecretEncrypted, cmd.AccountRef)
	}
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if cmd.UsePlatformCredentials {
		if err := credential.SetUsePlatformCredentials(true); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.credentialRepo.Save(ctx, credential); err != nil {
		uc.logger.Errorw("failed to persist credential", "error", err, "provider_sid", cmd.ProviderSID)
		return nil, fmt.Errorf("failed to persist credential: %w", err)
	}

	uc.logger.Infow("credential created",
		"sid", credential.SID(),
		"scope", credential.Scope().String(),
		"provider_sid", provider.SID(),
	)
	return dto.ToCredentialDTO(credential, provider.SID()), nil
}
