package billing

import (
	"fmt"
	"time"

	vo "github.com/prato-inc/prato/internal/domain/billing/valueobjects"
	"github.com/prato-inc/prato/internal/shared/biztime"
	"github.com/prato-inc/prato/internal/shared/id"
)

// PSPProvider is a payment service provider the platform can route
// transactions through. Its default rates apply when a matched rule does
// not pin a pricing plan.
type PSPProvider struct {
	providerID uint
	sid        string

	name string
	slug string

	supportsTxid       bool
	supportsWebhook    bool
	supportsSubaccount bool
	supportsSplit      bool

	defaultPercentRate    float64
	defaultFixedRateCents int64
	pricingModel          string

	isActive     bool
	displayOrder int
	metadata     map[string]any

	version   int
	createdAt time.Time
	updatedAt time.Time
}

// PSPProviderParams carries every mutable field of a provider.
type PSPProviderParams struct {
	Name                  string
	Slug                  string
	SupportsTxid          bool
	SupportsWebhook       bool
	SupportsSubaccount    bool
	SupportsSplit         bool
	DefaultPercentRate    float64
	DefaultFixedRateCents int64
	PricingModel          string
	DisplayOrder          int
	Metadata              map[string]any
}

func validatePSPProviderParams(p PSPProviderParams) error {
	if p.Name == "" {
		return fmt.Errorf("provider name is required")
	}
	if p.Slug == "" {
		return fmt.Errorf("provider slug is required")
	}
	if len(p.Name) > 100 {
		return fmt.Errorf("provider name too long (max 100 characters)")
	}
	if len(p.Slug) > 100 {
		return fmt.Errorf("provider slug too long (max 100 characters)")
	}
	if p.DefaultPercentRate < 0 || p.DefaultPercentRate > 1 {
		return fmt.Errorf("default percent rate must be between 0 and 1")
	}
	if p.DefaultFixedRateCents < 0 {
		return fmt.Errorf("default fixed rate cannot be negative")
	}
	if _, err := vo.NewPricingModel(p.PricingModel); err != nil {
		return err
	}
	return nil
}

// NewPSPProvider creates an active provider with a fresh SID.
func NewPSPProvider(p PSPProviderParams) (*PSPProvider, error) {
	if err := validatePSPProviderParams(p); err != nil {
		return nil, err
	}

	sid, err := id.NewProviderID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate SID: %w", err)
	}

	now := biztime.NowUTC()
	provider := &PSPProvider{
		sid:       sid,
		isActive:  true,
		version:   1,
		createdAt: now,
		updatedAt: now,
	}
	provider.apply(p)
	return provider, nil
}

// ReconstructPSPProvider rebuilds a provider from persistence.
func ReconstructPSPProvider(
	providerID uint,
	sid string,
	p PSPProviderParams,
	isActive bool,
	version int,
	createdAt, updatedAt time.Time,
) (*PSPProvider, error) {
	if providerID == 0 {
		return nil, fmt.Errorf("provider ID cannot be zero")
	}
	if err := validatePSPProviderParams(p); err != nil {
		return nil, err
	}

	provider := &PSPProvider{
		providerID: providerID,
		sid:        sid,
		isActive:   isActive,
		version:    version,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
	provider.apply(p)
	return provider, nil
}

func (p *PSPProvider) apply(params PSPProviderParams) {
	p.name = params.Name
	p.slug = params.Slug
	p.supportsTxid = params.SupportsTxid
	p.supportsWebhook = params.SupportsWebhook
	p.supportsSubaccount = params.SupportsSubaccount
	p.supportsSplit = params.SupportsSplit
	p.defaultPercentRate = params.DefaultPercentRate
	p.defaultFixedRateCents = params.DefaultFixedRateCents
	pm, _ := vo.NewPricingModel(params.PricingModel)
	p.pricingModel = pm.String()
	p.displayOrder = params.DisplayOrder
	p.metadata = params.Metadata
}

func (p *PSPProvider) ID() uint { return p.providerID }

// SetID sets the provider ID (only for persistence layer use)
func (p *PSPProvider) SetID(providerID uint) error {
	if p.providerID != 0 {
		return fmt.Errorf("provider ID is already set")
	}
	if providerID == 0 {
		return fmt.Errorf("provider ID cannot be zero")
	}
	p.providerID = providerID
	return nil
}

func (p *PSPProvider) SID() string                 { return p.sid }
func (p *PSPProvider) Name() string                { return p.name }
func (p *PSPProvider) Slug() string                { return p.slug }
func (p *PSPProvider) SupportsTxid() bool          { return p.supportsTxid }
func (p *PSPProvider) SupportsWebhook() bool       { return p.supportsWebhook }
func (p *PSPProvider) SupportsSubaccount() bool    { return p.supportsSubaccount }
func (p *PSPProvider) SupportsSplit() bool         { return p.supportsSplit }
func (p *PSPProvider) DefaultPercentRate() float64 { return p.defaultPercentRate }
func (p *PSPProvider) DefaultFixedRateCents() int64 {
	return p.defaultFixedRateCents
}
func (p *PSPProvider) PricingModel() string     { return p.pricingModel }
func (p *PSPProvider) IsActive() bool           { return p.isActive }
func (p *PSPProvider) DisplayOrder() int        { return p.displayOrder }
func (p *PSPProvider) Metadata() map[string]any { return p.metadata }
func (p *PSPProvider) Version() int             { return p.version }
func (p *PSPProvider) CreatedAt() time.Time     { return p.createdAt }
func (p *PSPProvider) UpdatedAt() time.Time     { return p.updatedAt }

// Params returns the current mutable fields as a params struct.
func (p *PSPProvider) Params() PSPProviderParams {
	return PSPProviderParams{
		Name:                  p.name,
		Slug:                  p.slug,
		SupportsTxid:          p.supportsTxid,
		SupportsWebhook:       p.supportsWebhook,
		SupportsSubaccount:    p.supportsSubaccount,
		SupportsSplit:         p.supportsSplit,
		DefaultPercentRate:    p.defaultPercentRate,
		DefaultFixedRateCents: p.defaultFixedRateCents,
		PricingModel:          p.pricingModel,
		DisplayOrder:          p.displayOrder,
		Metadata:              p.metadata,
	}
}

// Update replaces the provider's mutable fields after validation.
func (p *PSPProvider) Update(params PSPProviderParams) error {
	if err := validatePSPProviderParams(params); err != nil {
		return err
	}
	p.apply(params)
	p.touch()
	return nil
}

func (p *PSPProvider) Activate() {
	if p.isActive {
		return
	}
	p.isActive = true
	p.touch()
}

func (p *PSPProvider) Deactivate() {
	if !p.isActive {
		return
	}
	p.isActive = false
	p.touch()
}

// DefaultFeeSchedule is the schedule used when a rule pins no plan: bare
// provider rates, no floor, no cap, no subsidy.
func (p *PSPProvider) DefaultFeeSchedule() vo.FeeSchedule {
	return vo.ProviderDefaultSchedule(p.defaultPercentRate, p.defaultFixedRateCents)
}

func (p *PSPProvider) touch() {
	p.updatedAt = biztime.NowUTC()
	p.version++
}
