package dto

import "time"

// GlobalPolicyDTO is the platform-wide policy singleton as exposed to admins.
type GlobalPolicyDTO struct {
	AllowFreePlan       bool `json:"allow_free_plan"`
	AllowPartnerGateway bool `json:"allow_partner_gateway"`
	AllowOfflineBilling bool `json:"allow_offline_billing"`

	MaxPlans           int64 `json:"max_plans"`
	MinPaidPriceCents  int64 `json:"min_paid_price_cents"`
	MaxModulesPerPlan  int64 `json:"max_modules_per_plan"`
	MaxFeaturesPerPlan int64 `json:"max_features_per_plan"`
	MaxTrialDays       int64 `json:"max_trial_days"`

	TxFeeMaxPercent    float64 `json:"tx_fee_max_percent"`
	TxFeeMaxFixedCents int64   `json:"tx_fee_max_fixed_cents"`

	Version   int       `json:"version"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PolicyOverrideDTO is a partner's override record. Nil pointers mean the
// field inherits the global value.
type PolicyOverrideDTO struct {
	SID       string `json:"sid"`
	PartnerID uint   `json:"partner_id"`

	AllowFreePlan       *bool `json:"allow_free_plan"`
	AllowPartnerGateway *bool `json:"allow_partner_gateway"`
	AllowOfflineBilling *bool `json:"allow_offline_billing"`

	MaxPlans           *int64 `json:"max_plans"`
	MinPaidPriceCents  *int64 `json:"min_paid_price_cents"`
	MaxModulesPerPlan  *int64 `json:"max_modules_per_plan"`
	MaxFeaturesPerPlan *int64 `json:"max_features_per_plan"`
	MaxTrialDays       *int64 `json:"max_trial_days"`

	TxFeeMaxPercent    *float64 `json:"tx_fee_max_percent"`
	TxFeeMaxFixedCents *int64   `json:"tx_fee_max_fixed_cents"`

	Notes string `json:"notes,omitempty"`

	Version   int       `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EffectivePolicyDTO is the fully resolved policy for a partner, with no
// inherit states left.
type EffectivePolicyDTO struct {
	PartnerID uint `json:"partner_id"`

	AllowFreePlan       bool `json:"allow_free_plan"`
	AllowPartnerGateway bool `json:"allow_partner_gateway"`
	AllowOfflineBilling bool `json:"allow_offline_billing"`

	MaxPlans           int64 `json:"max_plans"`
	MinPaidPriceCents  int64 `json:"min_paid_price_cents"`
	MaxModulesPerPlan  int64 `json:"max_modules_per_plan"`
	MaxFeaturesPerPlan int64 `json:"max_features_per_plan"`
	MaxTrialDays       int64 `json:"max_trial_days"`

	TxFeeMaxPercent    float64 `json:"tx_fee_max_percent"`
	TxFeeMaxFixedCents int64   `json:"tx_fee_max_fixed_cents"`
}
