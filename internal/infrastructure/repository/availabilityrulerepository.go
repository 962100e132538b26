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

type AvailabilityRuleRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewAvailabilityRuleRepository(db *gorm.DB, logger logger.Interface) billing.AvailabilityRuleRepository {
	return &AvailabilityRuleRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *AvailabilityRuleRepositoryImpl) Save(ctx context.Context, rule *billing.AvailabilityRule) error {
	model := ruleToModel(rule)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create availability rule", "error", err, "scope", rule.Scope().String())
		return fmt.Errorf("failed to create availability rule: %w", err)
	}

	if err := rule.SetID(model.ID); err != nil {
		return err
	}

	r.logger.Infow("availability rule created", "rule_id", model.ID, "sid", rule.SID(), "scope", rule.Scope().String())
	return nil
}

func (r *AvailabilityRuleRepositoryImpl) FindByID(ctx context.Context, ruleID uint) (*billing.AvailabilityRule, error) {
	var model models.AvailabilityRuleModel
	if err := r.db.WithContext(ctx).First(&model, ruleID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get rule by ID", "error", err, "rule_id", ruleID)
		return nil, fmt.Errorf("failed to get rule: %w", err)
	}
	return ruleToEntity(&model)
}

func (r *AvailabilityRuleRepositoryImpl) FindBySID(ctx context.Context, sid string) (*billing.AvailabilityRule, error) {
	var model models.AvailabilityRuleModel
	if err := r.db.WithContext(ctx).Where("sid = ?", sid).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get rule by SID", "error", err, "sid", sid)
		return nil, fmt.Errorf("failed to get rule by SID: %w", err)
	}
	return ruleToEntity(&model)
}

func (r *AvailabilityRuleRepositoryImpl) List(ctx context.Context, enabledOnly bool, offset, limit int) ([]*billing.AvailabilityRule, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.AvailabilityRuleModel{})
	if enabledOnly {
		query = query.Where("enabled = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count rules", "error", err)
		return nil, 0, fmt.Errorf("failed to count rules: %w", err)
	}

	var ruleModels []*models.AvailabilityRuleModel
	if err := query.Order("priority DESC, created_at DESC, id DESC").Offset(offset).Limit(limit).Find(&ruleModels).Error; err != nil {
		r.logger.Errorw("failed to list rules", "error", err)
		return nil, 0, fmt.Errorf("failed to list rules: %w", err)
	}

	rules := make([]*billing.AvailabilityRule, 0, len(ruleModels))
	for _, model := range ruleModels {
		rule, err := ruleToEntity(model)
		if err != nil {
			return nil, 0, err
		}
		rules = append(rules, rule)
	}
	return rules, total, nil
}

func (r *AvailabilityRuleRepositoryImpl) Update(ctx context.Context, rule *billing.AvailabilityRule) error {
	model := ruleToModel(rule)
	result := r.db.WithContext(ctx).Model(&models.AvailabilityRuleModel{}).
		Where("id = ?", rule.ID()).
		Updates(map[string]interface{}{
			"scope":       model.Scope,
			"scope_id":    model.ScopeID,
			"provider_id": model.ProviderID,
			"plan_id":     model.PlanID,
			"priority":    model.Priority,
			"enabled":     model.Enabled,
			"notes":       model.Notes,
			"version":     model.Version,
			"updated_at":  model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update rule", "error", result.Error, "sid", rule.SID())
		return fmt.Errorf("failed to update rule: %w", result.Error)
	}
	return nil
}

func (r *AvailabilityRuleRepositoryImpl) Delete(ctx context.Context, ruleID uint) error {
	result := r.db.WithContext(ctx).Delete(&models.AvailabilityRuleModel{}, ruleID)
	if result.Error != nil {
		r.logger.Errorw("failed to delete rule", "error", result.Error, "rule_id", ruleID)
		return fmt.Errorf("failed to delete rule: %w", result.Error)
	}
	return nil
}

func ruleToModel(rule *billing.AvailabilityRule) *models.AvailabilityRuleModel {
	params := rule.Params()
	return &models.AvailabilityRuleModel{
		ID:         rule.ID(),
		SID:        rule.SID(),
		Scope:      params.Scope.String(),
		ScopeID:    params.ScopeID,
		ProviderID: params.ProviderID,
		PlanID:     params.PlanID,
		Priority:   params.Priority,
		Enabled:    rule.Enabled(),
		Notes:      params.Notes,
		Version:    rule.Version(),
		CreatedAt:  rule.CreatedAt(),
		UpdatedAt:  rule.UpdatedAt(),
	}
}

func ruleToEntity(model *models.AvailabilityRuleModel) (*billing.AvailabilityRule, error) {
	scope, err := vo.NewRuleScope(model.Scope)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct rule %d: %w", model.ID, err)
	}

	rule, err := billing.ReconstructAvailabilityRule(
		model.ID,
		model.SID,
		billing.AvailabilityRuleParams{
			Scope:      scope,
			ScopeID:    model.ScopeID,
			ProviderID: model.ProviderID,
			PlanID:     model.PlanID,
			Priority:   model.Priority,
			Notes:      model.Notes,
		},
		model.Enabled,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct rule: %w", err)
	}
	return rule, nil
}
