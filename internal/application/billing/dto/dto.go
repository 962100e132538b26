package dto

import "time"

type PricingPlanDTO struct {
	SID            string  `json:"sid"`
	Name           string  `json:"name"`
	Slug           string  `json:"slug"`
	PricingType    string  `json:"pricing_type"`
	PercentRate    float64 `json:"percent_rate"`
	FixedRateCents int64   `json:"fixed_rate_cents"`
	MinFeeCents    int64   `json:"min_fee_cents"`
	MaxFeeCents    *int64  `json:"max_fee_cents,omitempty"`
	IsSubsidized   bool    `json:"is_subsidized"`
	SubsidyPercent float64 `json:"subsidy_percent"`
	IsActive       bool    `json:"is_active"`
	DisplayOrder   int     `json:"display_order"`
	Notes          string  `json:"notes,omitempty"`

	Version   int       `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PSPProviderDTO struct {
	SID                   string         `json:"sid"`
	Name                  string         `json:"name"`
	Slug                  string         `json:"slug"`
	SupportsTxid          bool           `json:"supports_txid"`
	SupportsWebhook       bool           `json:"supports_webhook"`
	SupportsSubaccount    bool           `json:"supports_subaccount"`
	SupportsSplit         bool           `json:"supports_split"`
	DefaultPercentRate    float64        `json:"default_percent_rate"`
	DefaultFixedRateCents int64          `json:"default_fixed_rate_cents"`
	PricingModel          string         `json:"pricing_model"`
	IsActive              bool           `json:"is_active"`
	DisplayOrder          int            `json:"display_order"`
	Metadata              map[string]any `json:"metadata,omitempty"`

	Version   int       `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type AvailabilityRuleDTO struct {
	SID         string `json:"sid"`
	Scope       string `json:"scope"`
	ScopeID     *uint  `json:"scope_id,omitempty"`
	ProviderSID string `json:"provider_sid,omitempty"`
	PlanSID     string `json:"plan_sid,omitempty"`
	Priority    int    `json:"priority"`
	Enabled     bool   `json:"enabled"`
	Notes       string `json:"notes,omitempty"`

	Version   int       `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CredentialDTO struct {
	SID          string `json:"sid"`
	ProviderSID  string `json:"provider_sid,omitempty"`
	Scope        string `json:"scope"`
	TenantID     *uint  `json:"tenant_id,omitempty"`
	APIKeyMasked string `json:"api_key_masked"`
	AccountRef   string `json:"account_ref,omitempty"`
	Status       string `json:"status"`

	UsePlatformCredentials bool `json:"use_platform_credentials"`

	Version   int       `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RouteResolutionDTO is the outcome of resolving a route context: the
// winning rule, the provider it routes to, and the fee schedule that will
// price transactions on the route.
type RouteResolutionDTO struct {
	RuleSID     string          `json:"rule_sid"`
	Scope       string          `json:"scope"`
	Priority    int             `json:"priority"`
	Provider    *PSPProviderDTO `json:"provider"`
	Plan        *PricingPlanDTO `json:"plan,omitempty"`
	FeeSchedule *FeeScheduleDTO `json:"fee_schedule"`
}

type FeeScheduleDTO struct {
	PercentRate    float64 `json:"percent_rate"`
	FixedFeeCents  int64   `json:"fixed_fee_cents"`
	MinFeeCents    int64   `json:"min_fee_cents"`
	MaxFeeCents    *int64  `json:"max_fee_cents,omitempty"`
	IsSubsidized   bool    `json:"is_subsidized"`
	SubsidyPercent float64 `json:"subsidy_percent"`
}

type FeeBreakdownDTO struct {
	AmountCents          int64  `json:"amount_cents"`
	Currency             string `json:"currency"`
	TotalFeeCents        int64  `json:"total_fee_cents"`
	MerchantFeeCents     int64  `json:"merchant_fee_cents"`
	PlatformSubsidyCents int64  `json:"platform_subsidy_cents"`
}
