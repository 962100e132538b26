package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/prato-inc/prato/internal/domain/billing"
	"github.com/prato-inc/prato/internal/infrastructure/persistence/models"
	"github.com/prato-inc/prato/internal/shared/logger"
)

type RouteSnapshotRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewRouteSnapshotRepository(db *gorm.DB, logger logger.Interface) billing.RouteSnapshotRepository {
	return &RouteSnapshotRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

// LoadRouteSnapshot reads enabled rules plus every plan and provider in one
// transaction so the resolver works against a consistent view.
func (r *RouteSnapshotRepositoryImpl) LoadRouteSnapshot(ctx context.Context) (*billing.RouteSnapshot, error) {
	var (
		ruleModels     []*models.AvailabilityRuleModel
		planModels     []*models.PricingPlanModel
		providerModels []*models.PSPProviderModel
	)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("enabled = ?", true).Find(&ruleModels).Error; err != nil {
			return fmt.Errorf("failed to load rules: %w", err)
		}
		if err := tx.Find(&planModels).Error; err != nil {
			return fmt.Errorf("failed to load plans: %w", err)
		}
		if err := tx.Find(&providerModels).Error; err != nil {
			return fmt.Errorf("failed to load providers: %w", err)
		}
		return nil
	})
	if err != nil {
		r.logger.Errorw("failed to load route snapshot", "error", err)
		return nil, fmt.Errorf("failed to load route snapshot: %w", err)
	}

	snapshot := &billing.RouteSnapshot{
		Rules:     make([]*billing.AvailabilityRule, 0, len(ruleModels)),
		Plans:     make(map[uint]*billing.PricingPlan, len(planModels)),
		Providers: make(map[uint]*billing.PSPProvider, len(providerModels)),
	}

	for _, model := range ruleModels {
		rule, err := ruleToEntity(model)
		if err != nil {
			return nil, err
		}
		snapshot.Rules = append(snapshot.Rules, rule)
	}
	for _, model := range planModels {
		plan, err := pricingPlanToEntity(model)
		if err != nil {
			return nil, err
		}
		snapshot.Plans[plan.ID()] = plan
	}
	for _, model := range providerModels {
		provider, err := providerToEntity(model)
		if err != nil {
			return nil, err
		}
		snapshot.Providers[provider.ID()] = provider
	}

	return snapshot, nil
}
