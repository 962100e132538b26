package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/prato-inc/prato/internal/domain/billing"
	vo "github.com/prato-inc/prato/internal/domain/billing/valueobjects"
	"github.com/prato-inc/prato/internal/infrastructure/persistence/models"
	"github.com/prato-inc/prato/internal/shared/biztime"
	"github.com/prato-inc/prato/internal/shared/logger"
)

type PricingPlanRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewPricingPlanRepository(db *gorm.DB, logger logger.Interface) billing.PricingPlanRepository {
	return &PricingPlanRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *PricingPlanRepositoryImpl) Save(ctx context.Context, plan *billing.PricingPlan) error {
	model := pricingPlanToModel(plan)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create pricing plan", "error", err, "slug", plan.Slug())
		return fmt.Errorf("failed to create pricing plan: %w", err)
	}

	if err := plan.SetID(model.ID); err != nil {
		return err
	}

	r.logger.Infow("pricing plan created", "plan_id", model.ID, "sid", plan.SID())
	return nil
}

func (r *PricingPlanRepositoryImpl) FindByID(ctx context.Context, planID uint) (*billing.PricingPlan, error) {
	var model models.PricingPlanModel
	if err := r.db.WithContext(ctx).First(&model, planID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get pricing plan by ID", "error", err, "plan_id", planID)
		return nil, fmt.Errorf("failed to get pricing plan: %w", err)
	}
	return pricingPlanToEntity(&model)
}

func (r *PricingPlanRepositoryImpl) FindBySID(ctx context.Context, sid string) (*billing.PricingPlan, error) {
	var model models.PricingPlanModel
	if err := r.db.WithContext(ctx).Where("sid = ?", sid).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get pricing plan by SID", "error", err, "sid", sid)
		return nil, fmt.Errorf("failed to get pricing plan by SID: %w", err)
	}
	return pricingPlanToEntity(&model)
}

func (r *PricingPlanRepositoryImpl) FindBySlug(ctx context.Context, slug string) (*billing.PricingPlan, error) {
	var model models.PricingPlanModel
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get pricing plan by slug", "error", err, "slug", slug)
		return nil, fmt.Errorf("failed to get pricing plan by slug: %w", err)
	}
	return pricingPlanToEntity(&model)
}

func (r *PricingPlanRepositoryImpl) List(ctx context.Context, activeOnly bool, offset, limit int) ([]*billing.PricingPlan, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.PricingPlanModel{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count pricing plans", "error", err)
		return nil, 0, fmt.Errorf("failed to count pricing plans: %w", err)
	}

	var planModels []*models.PricingPlanModel
	if err := query.Order("display_order ASC, id ASC").Offset(offset).Limit(limit).Find(&planModels).Error; err != nil {
		r.logger.Errorw("failed to list pricing plans", "error", err)
		return nil, 0, fmt.Errorf("failed to list pricing plans: %w", err)
	}

	plans := make([]*billing.PricingPlan, 0, len(planModels))
	for _, model := range planModels {
		plan, err := pricingPlanToEntity(model)
		if err != nil {
			return nil, 0, err
		}
		plans = append(plans, plan)
	}
	return plans, total, nil
}

func (r *PricingPlanRepositoryImpl) Update(ctx context.Context, plan *billing.PricingPlan) error {
	model := pricingPlanToModel(plan)

	result := r.db.WithContext(ctx).Model(&models.PricingPlanModel{}).
		Where("id = ?", plan.ID()).
		Updates(map[string]interface{}{
			"name":             model.Name,
			"slug":             model.Slug,
			"pricing_type":     model.PricingType,
			"percent_rate":     model.PercentRate,
			"fixed_rate_cents": model.FixedRateCents,
			"min_fee_cents":    model.MinFeeCents,
			"max_fee_cents":    model.MaxFeeCents,
			"is_subsidized":    model.IsSubsidized,
			"subsidy_percent":  model.SubsidyPercent,
			"is_active":        model.IsActive,
			"display_order":    model.DisplayOrder,
			"notes":            model.Notes,
			"version":          model.Version,
			"updated_at":       model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update pricing plan", "error", result.Error, "sid", plan.SID())
		return fmt.Errorf("failed to update pricing plan: %w", result.Error)
	}
	return nil
}

func (r *PricingPlanRepositoryImpl) DeleteCascade(ctx context.Context, planID uint) (int64, error) {
	var rulesDisabled int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.AvailabilityRuleModel{}).
			Where("plan_id = ? AND enabled = ?", planID, true).
			Updates(map[string]interface{}{
				"enabled":    false,
				"version":    gorm.Expr("version + 1"),
				"updated_at": biztime.NowUTC(),
			})
		if result.Error != nil {
			return result.Error
		}
		rulesDisabled = result.RowsAffected
		return tx.Delete(&models.PricingPlanModel{}, planID).Error
	})
	if err != nil {
		r.logger.Errorw("failed to delete pricing plan", "error", err, "plan_id", planID)
		return 0, fmt.Errorf("failed to delete pricing plan: %w", err)
	}
	return rulesDisabled, nil
}

func pricingPlanToModel(plan *billing.PricingPlan) *models.PricingPlanModel {
	params := plan.Params()
	return &models.PricingPlanModel{
		ID:             plan.ID(),
		SID:            plan.SID(),
		Name:           params.Name,
		Slug:           params.Slug,
		PricingType:    params.PricingType.String(),
		PercentRate:    params.PercentRate,
		FixedRateCents: params.FixedRateCents,
		MinFeeCents:    params.MinFeeCents,
		MaxFeeCents:    params.MaxFeeCents,
		IsSubsidized:   params.IsSubsidized,
		SubsidyPercent: params.SubsidyPercent,
		IsActive:       plan.IsActive(),
		DisplayOrder:   params.DisplayOrder,
		Notes:          params.Notes,
		Version:        plan.Version(),
		CreatedAt:      plan.CreatedAt(),
		UpdatedAt:      plan.UpdatedAt(),
	}
}

func pricingPlanToEntity(model *models.PricingPlanModel) (*billing.PricingPlan, error) {
	pricingType, err := vo.NewPricingType(model.PricingType)
	if err != nil {
		return nil, fmt.Errorf("invalid pricing type in storage: %w", err)
	}

	plan, err := billing.ReconstructPricingPlan(
		model.ID,
		model.SID,
		billing.PricingPlanParams{
			Name:           model.Name,
			Slug:           model.Slug,
			PricingType:    pricingType,
			PercentRate:    model.PercentRate,
			FixedRateCents: model.FixedRateCents,
			MinFeeCents:    model.MinFeeCents,
			MaxFeeCents:    model.MaxFeeCents,
			IsSubsidized:   model.IsSubsidized,
			SubsidyPercent: model.SubsidyPercent,
			DisplayOrder:   model.DisplayOrder,
			Notes:          model.Notes,
		},
		model.IsActive,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct pricing plan: %w", err)
	}
	return plan, nil
}
