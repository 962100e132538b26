package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/prato-inc/prato/internal/domain/policy"
	vo "github.com/prato-inc/prato/internal/domain/policy/valueobjects"
	"github.com/prato-inc/prato/internal/infrastructure/persistence/models"
	"github.com/prato-inc/prato/internal/shared/logger"
)

type OverrideRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewOverrideRepository(db *gorm.DB, logger logger.Interface) policy.OverrideRepository {
	return &OverrideRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *OverrideRepositoryImpl) GetByPartnerID(ctx context.Context, partnerID uint) (*policy.PolicyOverride, error) {
	var model models.PolicyOverrideModel
	if err := r.db.WithContext(ctx).Where("partner_id = ?", partnerID).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get policy override", "error", err, "partner_id", partnerID)
		return nil, fmt.Errorf("failed to get policy override: %w", err)
	}

	return r.toEntity(&model)
}

func (r *OverrideRepositoryImpl) Save(ctx context.Context, override *policy.PolicyOverride) error {
	model := r.toModel(override)

	if override.ID() == 0 {
		if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
			r.logger.Errorw("failed to create policy override", "error", err, "partner_id", override.PartnerID())
			return fmt.Errorf("failed to create policy override: %w", err)
		}
		return override.SetID(model.ID)
	}

	result := r.db.WithContext(ctx).Model(&models.PolicyOverrideModel{}).
		Where("id = ?", override.ID()).
		Updates(map[string]interface{}{
			"allow_free_plan":        model.AllowFreePlan,
			"allow_partner_gateway":  model.AllowPartnerGateway,
			"allow_offline_billing":  model.AllowOfflineBilling,
			"max_plans":              model.MaxPlans,
			"min_paid_price_cents":   model.MinPaidPriceCents,
			"max_modules_per_plan":   model.MaxModulesPerPlan,
			"max_features_per_plan":  model.MaxFeaturesPerPlan,
			"max_trial_days":         model.MaxTrialDays,
			"tx_fee_max_percent":     model.TxFeeMaxPercent,
			"tx_fee_max_fixed_cents": model.TxFeeMaxFixedCents,
			"notes":                  model.Notes,
			"version":                model.Version,
			"updated_at":             model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update policy override", "error", result.Error, "partner_id", override.PartnerID())
		return fmt.Errorf("failed to update policy override: %w", result.Error)
	}
	return nil
}

func (r *OverrideRepositoryImpl) DeleteByPartnerID(ctx context.Context, partnerID uint) error {
	result := r.db.WithContext(ctx).Where("partner_id = ?", partnerID).Delete(&models.PolicyOverrideModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete policy override", "error", result.Error, "partner_id", partnerID)
		return fmt.Errorf("failed to delete policy override: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return policy.ErrOverrideNotFound
	}
	return nil
}

func (r *OverrideRepositoryImpl) toModel(override *policy.PolicyOverride) *models.PolicyOverrideModel {
	return &models.PolicyOverrideModel{
		ID:                  override.ID(),
		SID:                 override.SID(),
		PartnerID:           override.PartnerID(),
		AllowFreePlan:       override.AllowFreePlan().Ptr(),
		AllowPartnerGateway: override.AllowPartnerGateway().Ptr(),
		AllowOfflineBilling: override.AllowOfflineBilling().Ptr(),
		MaxPlans:            override.MaxPlans().Ptr(),
		MinPaidPriceCents:   override.MinPaidPriceCents().Ptr(),
		MaxModulesPerPlan:   override.MaxModulesPerPlan().Ptr(),
		MaxFeaturesPerPlan:  override.MaxFeaturesPerPlan().Ptr(),
		MaxTrialDays:        override.MaxTrialDays().Ptr(),
		TxFeeMaxPercent:     override.TxFeeMaxPercent().Ptr(),
		TxFeeMaxFixedCents:  override.TxFeeMaxFixedCents().Ptr(),
		Notes:               override.Notes(),
		Version:             override.Version(),
		CreatedAt:           override.CreatedAt(),
		UpdatedAt:           override.UpdatedAt(),
	}
}

func (r *OverrideRepositoryImpl) toEntity(model *models.PolicyOverrideModel) (*policy.PolicyOverride, error) {
	override, err := policy.ReconstructPolicyOverride(
		model.ID,
		model.SID,
		model.PartnerID,
		policy.PolicyOverrideFields{
			AllowFreePlan:       vo.BoolFromPtr(model.AllowFreePlan),
			AllowPartnerGateway: vo.BoolFromPtr(model.AllowPartnerGateway),
			AllowOfflineBilling: vo.BoolFromPtr(model.AllowOfflineBilling),
			MaxPlans:            vo.IntFromPtr(model.MaxPlans),
			MinPaidPriceCents:   vo.IntFromPtr(model.MinPaidPriceCents),
			MaxModulesPerPlan:   vo.IntFromPtr(model.MaxModulesPerPlan),
			MaxFeaturesPerPlan:  vo.IntFromPtr(model.MaxFeaturesPerPlan),
			MaxTrialDays:        vo.IntFromPtr(model.MaxTrialDays),
			TxFeeMaxPercent:     vo.FloatFromPtr(model.TxFeeMaxPercent),
			TxFeeMaxFixedCents:  vo.IntFromPtr(model.TxFeeMaxFixedCents),
		},
		model.Notes,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct policy override: %w", err)
	}
	return override, nil
}
