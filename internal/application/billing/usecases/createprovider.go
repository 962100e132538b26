package usecases

import (
	"context"
	"fmt"

	"github.com/prato-inc/prato/internal/application/billing/dto"
	"github.com/prato-inc/prato/internal/domain/billing"
	"github.com/prato-inc/prato/internal/shared/errors"
	"github.com/prato-inc/prato/internal/shared/logger"
)

type CreateProviderCommand struct {
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
}

type CreateProviderUseCase struct {
	providerRepo billing.PSPProviderRepository
	logger       logger.Interface
}

func NewCreateProviderUseCase(
	providerRepo billing.PSPProviderRepository,
	logger logger.Interface,
) *CreateProviderUseCase {
	return &CreateProviderUseCase{
		providerRepo: providerRepo,
		logger:       logger,
	}
}

func (uc *CreateProviderUseCase) Execute(
	ctx context.Context,
	cmd CreateProviderCommand,
) (*dto.PSPProviderDTO, error) {
	existing, err := uc.providerRepo.FindBySlug(ctx, cmd.Slug)
	if err != nil {
		uc.logger.Errorw("failed to check slug existence", "error", err, "slug", cmd.Slug)
		return nil, fmt.Errorf("failed to check slug existence: %w", err)
	}
	if existing != nil {
		return nil, errors.NewConflictError(fmt.Sprintf("provider with slug %s already exists", cmd.Slug))
	}

	provider, err := billing.NewPSPProvider(billing.PSPProviderParams{
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
	})
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.providerRepo.Save(ctx, provider); err != nil {
		uc.logger.Errorw("failed to persist provider", "error", err, "slug", cmd.Slug)
		return nil, fmt.Errorf("failed to persist provider: %w", err)
	}

	uc.logger.Infow("psp provider created", "sid", provider.SID(), "slug", provider.Slug())
	return dto.ToPSPProviderDTO(provider), nil
}
