package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/prato-inc/prato/internal/domain/policy"
	"github.com/prato-inc/prato/internal/infrastructure/persistence/models"
	"github.com/prato-inc/prato/internal/shared/logger"
)

type GlobalPolicyRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewGlobalPolicyRepository(db *gorm.DB, logger logger.Interface) policy.GlobalPolicyRepository {
	return &GlobalPolicyRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *GlobalPolicyRepositoryImpl) Get(ctx context.Context) (*policy.GlobalPolicy, error) {
	var model models.GlobalPolicyModel
	if err := r.db.WithContext(ctx).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, policy.ErrGlobalPolicyMissing
		}
		r.logger.Errorw("failed to get global policy", "error", err)
		return nil, fmt.Errorf("failed to get global policy: %w", err)
	}

	return r.toEntity(&model)
}

func (r *GlobalPolicyRepositoryImpl) Save(ctx context.Context, global *policy.GlobalPolicy) error {
	model := r.toModel(global)

	if global.ID() == 0 {
		if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
			r.logger.Errorw("failed to create global policy", "error", err)
			return fmt.Errorf("failed to create global policy: %w", err)
		}
		return global.SetID(model.ID)
	}

	result := r.db.WithContext(ctx).Model(&models.GlobalPolicyModel{}).
		Where("id = ? AND version = ?", global.ID(), global.Version()-1).
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
			"version":                model.Version,
			"updated_at":             model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update global policy", "error", result.Error)
		return fmt.Errorf("failed to update global policy: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("global policy was modified concurrently")
	}
	return nil
}

func (r *GlobalPolicyRepositoryImpl) toModel(global *policy.GlobalPolicy) *models.GlobalPolicyModel {
	params := global.Params()
	return &models.GlobalPolicyModel{
		ID:                  global.ID(),
		AllowFreePlan:       params.AllowFreePlan,
		AllowPartnerGateway: params.AllowPartnerGateway,
		AllowOfflineBilling: params.AllowOfflineBilling,
		MaxPlans:            params.MaxPlans,
		MinPaidPriceCents:   params.MinPaidPriceCents,
		MaxModulesPerPlan:   params.MaxModulesPerPlan,
		MaxFeaturesPerPlan:  params.MaxFeaturesPerPlan,
		MaxTrialDays:        params.MaxTrialDays,
		TxFeeMaxPercent:     params.TxFeeMaxPercent,
		TxFeeMaxFixedCents:  params.TxFeeMaxFixedCents,
		Version:             global.Version(),
		CreatedAt:           global.CreatedAt(),
		UpdatedAt:           global.UpdatedAt(),
	}
}

func (r *GlobalPolicyRepositoryImpl) toEntity(model *models.GlobalPolicyModel) (*policy.GlobalPolicy, error) {
	global, err := policy.ReconstructGlobalPolicy(
		model.ID,
		policy.GlobalPolicyParams{
			AllowFreePlan:       model.AllowFreePlan,
			AllowPartnerGateway: model.AllowPartnerGateway,
			AllowOfflineBilling: model.AllowOfflineBilling,
			MaxPlans:            model.MaxPlans,
			MinPaidPriceCents:   model.MinPaidPriceCents,
			MaxModulesPerPlan:   model.MaxModulesPerPlan,
			MaxFeaturesPerPlan:  model.MaxFeaturesPerPlan,
			MaxTrialDays:        model.MaxTrialDays,
			TxFeeMaxPercent:     model.TxFeeMaxPercent,
			TxFeeMaxFixedCents:  model.TxFeeMaxFixedCents,
		},
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct global policy: %w", err)
	}
	return global, nil
}
