package usecases

import (
	"context"
	"fmt"

	"github.com/prato-inc/prato/internal/application/billing/dto"
	"github.com/prato-inc/prato/internal/domain/billing"
	"github.com/prato-inc/prato/internal/shared/errors"
	"github.com/prato-inc/prato/internal/shared/logger"
)

type GetProviderUseCase struct {
	providerRepo billing.PSPProviderRepository
	logger       logger.Interface
}

func NewGetProviderUseCase(
	providerRepo billing.PSPProviderRepository,
	logger logger.Interface,
) *GetProviderUseCase {
	return &GetProviderUseCase{
		providerRepo: providerRepo,
		logger:       logger,
	}
}

func (uc *GetProviderUseCase) Execute(ctx context.Context, sid string) (*dto.PSPProviderDTO, error) {
	provider, err := uc.providerRepo.FindBySID(ctx, sid)
	if err != nil {
		uc.logger.Errorw("failed to load provider", "error", err, "sid", sid)
		return nil, fmt.Errorf("failed to load provider: %w", err)
	}
	if provider == nil {
		return nil, errors.NewNotFoundError("provider not found")
	}
	return dto.ToPSPProviderDTO(provider), nil
}

type ListProvidersCommand struct {
	ActiveOnly bool
	Offset     int
	Limit      int
}

type ListProvidersResult struct {
	Providers []*dto.PSPProviderDTO
	Total     int64
}

type ListProvidersUseCase struct {
	providerRepo billing.PSPProviderRepository
	logger       logger.Interface
}

func NewListProvidersUseCase(
	providerRepo billing.PSPProviderRepository,
	logger logger.Interface,
) *ListProvidersUseCase {
	return &ListProvidersUseCase{
		providerRepo: providerRepo,
		logger:       logger,
	}
}

func (uc *ListProvidersUseCase) Execute(
	ctx context.Context,
	cmd ListProvidersCommand,
) (*ListProvidersResult, error) {
	providers, total, err := uc.providerRepo.List(ctx, cmd.ActiveOnly, cmd.Offset, cmd.Limit)
	if err != nil {
		uc.logger.Errorw("failed to list providers", "error", err)
		return nil, fmt.Errorf("failed to list providers: %w", err)
	}
	return &ListProvidersResult{
		Providers: dto.ToPSPProviderDTOList(providers),
		Total:     total,
	}, nil
}
