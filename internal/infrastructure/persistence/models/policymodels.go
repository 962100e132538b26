package models

import (
	"time"

	"github.com/prato-inc/prato/internal/shared/constants"
)

// GlobalPolicyModel persists the platform-wide policy singleton. The table
// holds exactly one row.
type GlobalPolicyModel struct {
	ID uint `gorm:"primarykey"`

	AllowFreePlan       bool `gorm:"not null;default:true"`
	AllowPartnerGateway bool `gorm:"not null;default:false"`
	AllowOfflineBilling bool `gorm:"not null;default:true"`

	MaxPlans           int64 `gorm:"not null;default:0"`
	MinPaidPriceCents  int64 `gorm:"not null;default:0"`
	MaxModulesPerPlan  int64 `gorm:"not null;default:0"`
	MaxFeaturesPerPlan int64 `gorm:"not null;default:0"`
	MaxTrialDays       int64 `gorm:"not null;default:0"`

	TxFeeMaxPercent    float64 `gorm:"not null;default:0"`
	TxFeeMaxFixedCents int64   `gorm:"not null;default:0"`

	Version   int `gorm:"not null;default:1"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (GlobalPolicyModel) TableName() string {
	return constants.TableGlobalPolicies
}

// PolicyOverrideModel persists per-partner overrides. Nullable columns carry
// the tri-state: NULL means the field inherits the global value.
type PolicyOverrideModel struct {
	ID        uint   `gorm:"primarykey"`
	SID       string `gorm:"uniqueIndex;not null;size:32"`
	PartnerID uint   `gorm:"uniqueIndex;not null"`

	AllowFreePlan       *bool
	AllowPartnerGateway *bool
	AllowOfflineBilling *bool

	MaxPlans           *int64
	MinPaidPriceCents  *int64
	MaxModulesPerPlan  *int64
	MaxFeaturesPerPlan *int64
	MaxTrialDays       *int64

	TxFeeMaxPercent    *float64
	TxFeeMaxFixedCents *int64

	Notes string `gorm:"size:500"`

	Version   int `gorm:"not null;default:1"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (PolicyOverrideModel) TableName() string {
	return constants.TablePolicyOverrides
}
