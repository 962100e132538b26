package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/prato-inc/prato/internal/domain/billing"
	"github.com/prato-inc/prato/internal/infrastructure/persistence/models"
	"github.com/prato-inc/prato/internal/shared/logger"
)

type PSPProviderRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewPSPProviderRepository(db *gorm.DB, logger logger.Interface) billing.PSPProviderRepository {
	return &PSPProviderRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *PSPProviderRepositoryImpl) Save(ctx context.Context, provider *billing.PSPProvider) error {
	model, err := providerToModel(provider)
	if err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create provider", "error", err, "slug", provider.Slug())
		return fmt.Errorf("failed to create provider: %w", err)
	}

	if err := provider.SetID(model.ID); err != nil {
		return err
	}

	r.logger.Infow("psp provider created", "provider_id", model.ID, "sid", provider.SID())
	return nil
}

func (r *PSPProviderRepositoryImpl) FindByID(ctx context.Context, providerID uint) (*billing.PSPProvider, error) {
	var model models.PSPProviderModel
	if err := r.db.WithContext(ctx).First(&model, providerID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get provider by ID", "error", err, "provider_id", providerID)
		return nil, fmt.Errorf("failed to get provider: %w", err)
	}
	return providerToEntity(&model)
}

func (r *PSPProviderRepositoryImpl) FindBySID(ctx context.Context, sid string) (*billing.PSPProvider, error) {
	var model models.PSPProviderModel
	if err := r.db.WithContext(ctx).Where("sid = ?", sid).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get provider by SID", "error", err, "sid", sid)
		return nil, fmt.Errorf("failed to get provider by SID: %w", err)
	}
	return providerToEntity(&model)
}

func (r *PSPProviderRepositoryImpl) FindBySlug(ctx context.Context, slug string) (*billing.PSPProvider, error) {
	var model models.PSPProviderModel
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get provider by slug", "error", err, "slug", slug)
		return nil, fmt.Errorf("failed to get provider by slug: %w", err)
	}
	return providerToEntity(&model)
}

func (r *PSPProviderRepositoryImpl) List(ctx context.Context, activeOnly bool, offset, limit int) ([]*billing.PSPProvider, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.PSPProviderModel{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count providers", "error", err)
		return nil, 0, fmt.Errorf("failed to count providers: %w", err)
	}

	var providerModels []*models.PSPProviderModel
	if err := query.Order("display_order ASC, id ASC").Offset(offset).Limit(limit).Find(&providerModels).Error; err != nil {
		r.logger.Errorw("failed to list providers", "error", err)
		return nil, 0, fmt.Errorf("failed to list providers: %w", err)
	}

	providers := make([]*billing.PSPProvider, 0, len(providerModels))
	for _, model := range providerModels {
		provider, err := providerToEntity(model)
		if err != nil {
			return nil, 0, err
		}
		providers = append(providers, provider)
	}
	return providers, total, nil
}

func (r *PSPProviderRepositoryImpl) Update(ctx context.Context, provider *billing.PSPProvider) error {
	model, err := providerToModel(provider)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&models.PSPProviderModel{}).
		Where("id = ?", provider.ID()).
		Updates(map[string]interface{}{
			"name":                     model.Name,
			"slug":                     model.Slug,
			"supports_txid":            model.SupportsTxid,
			"supports_webhook":         model.SupportsWebhook,
			"supports_subaccount":      model.SupportsSubaccount,
			"supports_split":           model.SupportsSplit,
			"default_percent_rate":     model.DefaultPercentRate,
			"default_fixed_rate_cents": model.DefaultFixedRateCents,
			"pricing_model":            model.PricingModel,
			"is_active":                model.IsActive,
			"display_order":            model.DisplayOrder,
			"metadata":                 model.Metadata,
			"version":                  model.Version,
			"updated_at":               model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update provider", "error", result.Error, "sid", provider.SID())
		return fmt.Errorf("failed to update provider: %w", result.Error)
	}
	return nil
}

func (r *PSPProviderRepositoryImpl) Delete(ctx context.Context, providerID uint) error {
	result := r.db.WithContext(ctx).Delete(&models.PSPProviderModel{}, providerID)
	if result.Error != nil {
		r.logger.Errorw("failed to delete provider", "error", result.Error, "provider_id", providerID)
		return fmt.Errorf("failed to delete provider: %w", result.Error)
	}
	return nil
}

func providerToModel(provider *billing.PSPProvider) (*models.PSPProviderModel, error) {
	params := provider.Params()

	var metadata datatypes.JSON
	if params.Metadata != nil {
		raw, err := json.Marshal(params.Metadata)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal provider metadata: %w", err)
		}
		metadata = raw
	}

	return &models.PSPProviderModel{
		ID:                    provider.ID(),
		SID:                   provider.SID(),
		Name:                  params.Name,
		Slug:                  params.Slug,
		SupportsTxid:          params.SupportsTxid,
		SupportsWebhook:       params.SupportsWebhook,
		SupportsSubaccount:    params.SupportsSubaccount,
		SupportsSplit:         params.SupportsSplit,
		DefaultPercentRate:    params.DefaultPercentRate,
		DefaultFixedRateCents: params.DefaultFixedRateCents,
		PricingModel:          params.PricingModel,
		IsActive:              provider.IsActive(),
		DisplayOrder:          params.DisplayOrder,
		Metadata:              metadata,
		Version:               provider.Version(),
		CreatedAt:             provider.CreatedAt(),
		UpdatedAt:             provider.UpdatedAt(),
	}, nil
}

func providerToEntity(model *models.PSPProviderModel) (*billing.PSPProvider, error) {
	var metadata map[string]any
	if len(model.Metadata) > 0 {
		if err := json.Unmarshal(model.Metadata, &metadata); err != nil {
			return nil, fmt.Errorf("failed to unmarshal provider metadata: %w", err)
		}
	}

	provider, err := billing.ReconstructPSPProvider(
		model.ID,
		model.SID,
		billing.PSPProviderParams{
			Name:                  model.Name,
			Slug:                  model.Slug,
			SupportsTxid:          model.SupportsTxid,
			SupportsWebhook:       model.SupportsWebhook,
			SupportsSubaccount:    model.SupportsSubaccount,
			SupportsSplit:         model.SupportsSplit,
			DefaultPercentRate:    model.DefaultPercentRate,
			DefaultFixedRateCents: model.DefaultFixedRateCents,
			PricingModel:          model.PricingModel,
			DisplayOrder:          model.DisplayOrder,
			Metadata:              metadata,
		},
		model.IsActive,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct provider: %w", err)
	}
	return provider, nil
}
