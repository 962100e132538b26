package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/prato-inc/prato/internal/domain/billing"
	vo "github.com/prato-inc/prato/internal/domain/billing/valueobjects"
	"github.com/prato-inc/prato/internal/infrastructure/persistence/models"
	"github.com/prato-inc/prato/internal/shared/logger"
)

type CredentialRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewCredentialRepository(db *gorm.DB, logger logger.Interface) billing.CredentialRepository {
	return &CredentialRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *CredentialRepositoryImpl) Save(ctx context.Context, credential *billing.Credential) error {
	model := credentialToModel(credential)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create credential", "error", err, "provider_id", credential.ProviderID())
		return fmt.Errorf("failed to create credential: %w", err)
	}

	if err := credential.SetID(model.ID); err != nil {
		return err
	}

	r.logger.Infow("credential created", "credential_id", model.ID, "sid", credential.SID(), "scope", credential.Scope().String())
	return nil
}

func (r *CredentialRepositoryImpl) FindByID(ctx context.Context, credentialID uint) (*billing.Credential, error) {
	var model models.CredentialModel
	if err := r.db.WithContext(ctx).First(&model, credentialID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get credential by ID", "error", err, "credential_id", credentialID)
		return nil, fmt.Errorf("failed to get credential: %w", err)
	}
	return credentialToEntity(&model)
}

func (r *CredentialRepositoryImpl) FindBySID(ctx context.Context, sid string) (*billing.Credential, error) {
	var model models.CredentialModel
	if err := r.db.WithContext(ctx).Where("sid = ?", sid).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get credential by SID", "error", err, "sid", sid)
		return nil, fmt.Errorf("failed to get credential by SID: %w", err)
	}
	return credentialToEntity(&model)
}

func (r *CredentialRepositoryImpl) ListByProviderID(ctx context.Context, providerID uint) ([]*billing.Credential, error) {
	var credentialModels []*models.CredentialModel
	if err := r.db.WithContext(ctx).Where("provider_id = ?", providerID).Order("id ASC").Find(&credentialModels).Error; err != nil {
		r.logger.Errorw("failed to list credentials by provider", "error", err, "provider_id", providerID)
		return nil, fmt.Errorf("failed to list credentials by provider: %w", err)
	}

	credentials := make([]*billing.Credential, 0, len(credentialModels))
	for _, model := range credentialModels {
		credential, err := credentialToEntity(model)
		if err != nil {
			return nil, err
		}
		credentials = append(credentials, credential)
	}
	return credentials, nil
}

func (r *CredentialRepositoryImpl) List(ctx context.Context, offset, limit int) ([]*billing.Credential, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.CredentialModel{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count credentials", "error", err)
		return nil, 0, fmt.Errorf("failed to count credentials: %w", err)
	}

	var credentialModels []*models.CredentialModel
	if err := query.Order("id ASC").Offset(offset).Limit(limit).Find(&credentialModels).Error; err != nil {
		r.logger.Errorw("failed to list credentials", "error", err)
		return nil, 0, fmt.Errorf("failed to list credentials: %w", err)
	}

	credentials := make([]*billing.Credential, 0, len(credentialModels))
	for _, model := range credentialModels {
		credential, err := credentialToEntity(model)
		if err != nil {
			return nil, 0, err
		}
		credentials = append(credentials, credential)
	}
	return credentials, total, nil
}

func (r *CredentialRepositoryImpl) Update(ctx context.Context, credential *billing.Credential) error {
	model := credentialToModel(credential)
	result := r.db.WithContext(ctx).Model(&models.CredentialModel{}).
		Where("id = ?", credential.ID()).
		Updates(map[string]interface{}{
			"api_key_encrypted":        model.APIKeyEncrypted,
			"webhook_secret_encrypted": model.WebhookSecretEncrypted,
			"account_ref":              model.AccountRef,
			"status":                   model.Status,
			"use_platform_credentials": model.UsePlatformCredentials,
			"version":                  model.Version,
			"updated_at":               model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update credential", "error", result.Error, "sid", credential.SID())
		return fmt.Errorf("failed to update credential: %w", result.Error)
	}
	return nil
}

func (r *CredentialRepositoryImpl) Delete(ctx context.Context, credentialID uint) error {
	result := r.db.WithContext(ctx).Delete(&models.CredentialModel{}, credentialID)
	if result.Error != nil {
		r.logger.Errorw("failed to delete credential", "error", result.Error, "credential_id", credentialID)
		return fmt.Errorf("failed to delete credential: %w", result.Error)
	}
	return nil
}

func credentialToModel(credential *billing.Credential) *models.CredentialModel {
	var tenantID *uint
	if id, ok := credential.TenantID(); ok {
		tenantID = &id
	}

	return &models.CredentialModel{
		ID:                     credential.ID(),
		SID:                    credential.SID(),
		ProviderID:             credential.ProviderID(),
		Scope:                  credential.Scope().String(),
		TenantID:               tenantID,
		APIKeyEncrypted:        credential.APIKeyEncrypted(),
		WebhookSecretEncrypted: credential.WebhookSecretEncrypted(),
		AccountRef:             credential.AccountRef(),
		Status:                 credential.Status().String(),
		UsePlatformCredentials: credential.UsePlatformCredentials(),
		Version:                credential.Version(),
		CreatedAt:              credential.CreatedAt(),
		UpdatedAt:              credential.UpdatedAt(),
	}
}

func credentialToEntity(model *models.CredentialModel) (*billing.Credential, error) {
	scope, err := vo.NewCredentialScope(model.Scope)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct credential %d: %w", model.ID, err)
	}
	status, err := vo.NewConnectionStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct credential %d: %w", model.ID, err)
	}

	credential, err := billing.ReconstructCredential(
		model.ID,
		model.SID,
		model.ProviderID,
		scope,
		model.TenantID,
		model.APIKeyEncrypted,
		model.WebhookSecretEncrypted,
		model.AccountRef,
		status,
		model.UsePlatformCredentials,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct credential: %w", err)
	}
	return credential, nil
}
