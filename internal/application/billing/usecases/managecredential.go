package usecases

import (
	"context"
	"fmt"

	"github.com/prato-inc/prato/internal/application/billing/dto"
	"github.com/prato-inc/prato/internal/domain/billing"
	"github.com/prato-inc/prato/internal/shared/errors"
	"github.com/prato-inc/prato/internal/shared/logger"
)

type RotateCredentialCommand struct {
	SID                    string
	APIKeyEncrypted        string
	WebhookSecretEncrypted string
	AccountRef             string
}

// RotateCredentialUseCase swaps a credential's key. The connection status
// drops back to pending until the next connection check.
type RotateCredentialUseCase struct {
	credentialRepo billing.CredentialRepository
	logger         logger.Interface
}

func NewRotateCredentialUseCase(
	credentialRepo billing.CredentialRepository,
	logger logger.Interface,
) *RotateCredentialUseCase {
	return &RotateCredentialUseCase{
		credentialRepo: credentialRepo,
		logger:         logger,
	}
}

func (uc *RotateCredentialUseCase) Execute(
	ctx context.Context,
	cmd RotateCredentialCommand,
) (*dto.CredentialDTO, error) {
	credential, err := uc.credentialRepo.FindBySID(ctx, cmd.SID)
	if err != nil {
		uc.logger.Errorw("failed to load credential", "error", err, "sid", cmd.SID)
		return nil, fmt.Errorf("failed to load credential: %w", err)
	}
	if credential == nil {
		return nil, errors.NewNotFoundError("credential not found")
	}

	if err := credential.RotateKey(cmd.APIKeyEncrypted, cmd.WebhookSecretEncrypted, cmd.AccountRef); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.credentialRepo.Update(ctx, credential); err != nil {
		uc.logger.Errorw("failed to update credential", "error", err, "sid", cmd.SID)
		return nil, fmt.Errorf("failed to update credential: %w", err)
	}

	uc.logger.Infow("credential key rotated", "sid", credential.SID())
	return dto.ToCredentialDTO(credential, ""), nil
}

type ListCredentialsCommand struct {
	Offset int
	Limit  int
}

type ListCredentialsResult struct {
	Credentials []*dto.CredentialDTO
	Total       int64
}

type ListCredentialsUseCase struct {
	credentialRepo billing.CredentialRepository
	providerRepo   billing.PSPProviderRepository
	logger         logger.Interface
}

func NewListCredentialsUseCase(
	credentialRepo billing.CredentialRepository,
	providerRepo billing.PSPProviderRepository,
	logger logger.Interface,
) *ListCredentialsUseCase {
	return &ListCredentialsUseCase{
		credentialRepo: credentialRepo,
		providerRepo:   providerRepo,
		logger:         logger,
	}
}

func (uc *ListCredentialsUseCase) Execute(
	ctx context.Context,
	cmd ListCredentialsCommand,
) (*ListCredentialsResult, error) {
	credentials, total, err := uc.credentialRepo.List(ctx, cmd.Offset, cmd.Limit)
	if err != nil {
		uc.logger.Errorw("failed to list credentials", "error", err)
		return nil, fmt.Errorf("failed to list credentials: %w", err)
	}

	providerSIDs := make(map[uint]string)
	dtos := make([]*dto.CredentialDTO, 0, len(credentials))
	for _, credential := range credentials {
		sid, ok := providerSIDs[credential.ProviderID()]
		if !ok {
			provider, err := uc.providerRepo.FindByID(ctx, credential.ProviderID())
			if err != nil {
				return nil, fmt.Errorf("failed to load provider: %w", err)
			}
			if provider != nil {
				sid = provider.SID()
			}
			providerSIDs[credential.ProviderID()] = sid
		}
		dtos = append(dtos, dto.ToCredentialDTO(credential, sid))
	}

	return &ListCredentialsResult{Credentials: dtos, Total: total}, nil
}

type DeleteCredentialUseCase struct {
	credentialRepo billing.CredentialRepository
	logger         logger.Interface
}

func NewDeleteCredentialUseCase(
	credentialRepo billing.CredentialRepository,
	logger logger.Interface,
) *DeleteCredentialUseCase {
	return &DeleteCredentialUseCase{
		credentialRepo: credentialRepo,
		logger:         logger,
	}
}

func (uc *DeleteCredentialUseCase) Execute(ctx context.Context, sid string) error {
	credential, err := uc.credentialRepo.FindBySID(ctx, sid)
	if err != nil {
		uc.logger.Errorw("failed to load credential", "error", err, "sid", sid)
		return fmt.Errorf("failed to load credential: %w", err)
	}
	if credential == nil {
		return errors.NewNotFoundError("credential not found")
	}

	if err := uc.credentialRepo.Delete(ctx, credential.ID()); err != nil {
		uc.logger.Errorw("failed to delete credential", "error", err, "sid", sid)
		return fmt.Errorf("failed to delete credential: %w", err)
	}

	uc.logger.Infow("credential deleted", "sid", sid)
	return nil
}
