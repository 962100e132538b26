package usecases

import (
	"context"
	"fmt"

	"github.com/prato-inc/prato/internal/application/billing/dto"
	"github.com/prato-inc/prato/internal/domain/billing"
	"github.com/prato-inc/prato/internal/shared/errors"
	"github.com/prato-inc/prato/internal/shared/logger"
)

type UpdateProviderCommand struct {
	SID                   string
	Name                  string
	Slug                  string
	SupportsTxid          bool
	SupportsWebhook       bool
	SupportsSubaccount    bool
	SupportsSplit         bool
	DefaultPercentRate    float64
	DefaultFixedRateCents int64
	PricingModel          string
	DisplayOrder          int
	Metadata              map[string]any
	IsActive              *bool
}

type UpdateProviderUseCase struct {
	providerRepo billing.PSPProviderRepository
	logger       logger.Interface
}

func NewUpdateProviderUseCase(
	providerRepo billing.PSPProviderRepository,
	logger logger.Interface,
) *UpdateProviderUseCase {
	return &UpdateProviderUseCase{
		providerRepo: providerRepo,
		logger:       logger,
	}
}

func (uc *UpdateProviderUseCase) Execute(
	ctx context.Context,
	cmd UpdateProviderCommand,
) (*dto.PSPProviderDTO, error) {
	provider, err := uc.providerRepo.FindBySID(ctx, cmd.SID)
	if err != nil {
		uc.logger.Errorw("failed to load provider", "error", err, "sid", cmd.SID)
		return nil, fmt.Errorf("failed to load provider: %w", err)
	}
	if provider == nil {
		return nil, errors.NewNotFoundError("provider not found")
	}

	if cmd.Slug != provider.Slug() {
		existing, err := uc.providerRepo.FindBySlug(ctx, cmd.Slug)
		if err != nil {
			return nil, fmt.Errorf("failed to check slug existence: %w", err)
		}
		if existing != nil {
			return nil, errors.NewConflictError(fmt.Sprintf("provider with slug %s already exists", cmd.Slug))
		}
	}

	if err := provider.Update(billing.PSPProviderParams{
		Name:                  cmd.Name,
		Slug:                  cmd.Slug,
		SupportsTxid:          cmd.SupportsTxid,
		SupportsWebhook:       cmd.SupportsWebhook,
		SupportsSubaccount:    cmd.SupportsSubaccount,
		SupportsSplit:         cmd.SupportsSplit,
		DefaultPercentRate:    cmd.DefaultPercentRate,
		DefaultFixedRateCents: cmd.DefaultFixedRateCents,
		PricingModel:          cmd.PricingModel,
		DisplayOrder:          cmd.DisplayOrder,
		Metadata:              cmd.Metadata,
	}); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if cmd.IsActive != nil {
		if *cmd.IsActive {
			provider.Activate()
		} else {
			provider.Deactivate()
		}
	}

	if err := uc.providerRepo.Update(ctx, provider); err != nil {
		uc.logger.Errorw("failed to update provider", "error", err, "sid", cmd.SID)
		return nil, fmt.Errorf("failed to update provider: %w", err)
	}

	uc.logger.Infow("psp provider updated", "sid", provider.SID(), "version", provider.Version())
	return dto.ToPSPProviderDTO(provider), nil
}
