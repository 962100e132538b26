package migration

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/prato-inc/prato/internal/infrastructure/persistence/models"
	"github.com/prato-inc/prato/internal/shared/logger"
)

// GormAutoMigrateStrategy migrates by syncing gorm model definitions.
// Development only; production uses versioned SQL scripts.
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

func NewGormAutoMigrateStrategy() Strategy {
	return &GormAutoMigrateStrategy{
		logger: logger.NewLogger().With("component", "migration.automigrate"),
	}
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB, modelList ...interface{}) error {
	if len(modelList) == 0 {
		modelList = AutoMigrateModels()
	}

	s.logger.Infow("starting gorm automigrate", "models", len(modelList))
	if err := db.AutoMigrate(modelList...); err != nil {
		s.logger.Errorw("automigrate failed", "error", err)
		return fmt.Errorf("failed to automigrate: %w", err)
	}
	s.logger.Infow("automigrate completed successfully")
	return nil
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}

// AutoMigrateModels lists every persisted model in dependency order.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.GlobalPolicyModel{},
		&models.PolicyOverrideModel{},
		&models.PricingPlanModel{},
		&models.PSPProviderModel{},
		&models.AvailabilityRuleModel{},
		&models.CredentialModel{},
	}
}
