package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/prato-inc/prato/internal/shared/constants"
)

// PricingPlanModel is the persistence model for transaction fee plans.
type PricingPlanModel struct {
	ID   uint   `gorm:"primarykey"`
	SID  string `gorm:"uniqueIndex;not null;size:32"`
	Name string `gorm:"not null;size:100"`
	Slug string `gorm:"uniqueIndex;not null;size:100"`

	PricingType    string  `gorm:"not null;size:20"`
	PercentRate    float64 `gorm:"not null;default:0"`
	FixedRateCents int64   `gorm:"not null;default:0"`
	MinFeeCents    int64   `gorm:"not null;default:0"`
	MaxFeeCents    *int64

	IsSubsidized   bool    `gorm:"not null;default:false"`
	SubsidyPercent float64 `gorm:"not null;default:0"`

	IsActive     bool   `gorm:"not null;default:true;index"`
	DisplayOrder int    `gorm:"default:0"`
	Notes        string `gorm:"size:500"`

	Version   int `gorm:"not null;default:1"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (PricingPlanModel) TableName() string {
	return constants.TablePricingPlans
}

// PSPProviderModel is the persistence model for payment service providers.
type PSPProviderModel struct {
	ID   uint   `gorm:"primarykey"`
	SID  string `gorm:"uniqueIndex;not null;size:32"`
	Name string `gorm:"not null;size:100"`
	Slug string `gorm:"uniqueIndex;not null;size:100"`

	SupportsTxid       bool `gorm:"not null;default:false"`
	SupportsWebhook    bool `gorm:"not null;default:false"`
	SupportsSubaccount bool `gorm:"not null;default:false"`
	SupportsSplit      bool `gorm:"not null;default:false"`

	DefaultPercentRate    float64 `gorm:"not null;default:0"`
	DefaultFixedRateCents int64   `gorm:"not null;default:0"`
	PricingModel          string  `gorm:"not null;size:20;default:hibrido"`

	IsActive     bool `gorm:"not null;default:true;index"`
	DisplayOrder int  `gorm:"default:0"`
	Metadata     datatypes.JSON

	Version   int `gorm:"not null;default:1"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (PSPProviderModel) TableName() string {
	return constants.TablePSPProviders
}

// AvailabilityRuleModel is the persistence model for routing rules.
type AvailabilityRuleModel struct {
	ID  uint   `gorm:"primarykey"`
	SID string `gorm:"uniqueIndex;not null;size:32"`

	Scope   string `gorm:"not null;size:20;index:idx_rules_scope"`
	ScopeID *uint  `gorm:"index:idx_rules_scope"`

	ProviderID uint `gorm:"not null;index"`
	PlanID     *uint

	Priority int    `gorm:"not null;default:0;index"`
	Enabled  bool   `gorm:"not null;default:true;index"`
	Notes    string `gorm:"size:500"`

	Version   int `gorm:"not null;default:1"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (AvailabilityRuleModel) TableName() string {
	return constants.TableAvailabilityRules
}

// CredentialModel is the persistence model for PSP credentials. The API key
// is stored encrypted; plaintext never reaches this layer.
type CredentialModel struct {
	ID  uint   `gorm:"primarykey"`
	SID string `gorm:"uniqueIndex;not null;size:32"`

	ProviderID uint   `gorm:"not null;index"`
	Scope      string `gorm:"not null;size:20"`
	TenantID   *uint  `gorm:"index"`

	APIKeyEncrypted        string `gorm:"not null;size:1024"`
	WebhookSecretEncrypted string `gorm:"size:1024"`
	AccountRef             string `gorm:"size:255"`
	Status                 string `gorm:"not null;size:20;default:pending"`

	UsePlatformCredentials bool `gorm:"not null;default:false"`

	Version   int `gorm:"not null;default:1"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (CredentialModel) TableName() string {
	return constants.TableCredentials
}
