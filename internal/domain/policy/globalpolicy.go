package policy

import (
	"fmt"
	"time"

	"github.com/prato-inc/prato/internal/shared/biztime"
)

// GlobalPolicy is the platform-wide default business policy. Exactly one row
// exists; every field is a concrete value. Partner-specific deviations live in
// PolicyOverride and are merged on demand via ResolveEffectivePolicy.
type GlobalPolicy struct {
	id uint

	allowFreePlan       bool
	allowPartnerGateway bool
	allowOfflineBilling bool

	maxPlans           int64
	minPaidPriceCents  int64
	maxModulesPerPlan  int64
	maxFeaturesPerPlan int64
	maxTrialDays       int64

	txFeeMaxPercent    float64
	txFeeMaxFixedCents int64

	version   int
	createdAt time.Time
	updatedAt time.Time
}

// GlobalPolicyParams carries every field of the policy; used by the
// constructor and by update operations so callers cannot forget a field.
type GlobalPolicyParams struct {
	AllowFreePlan       bool
	AllowPartnerGateway bool
	AllowOfflineBilling bool
	MaxPlans            int64
	MinPaidPriceCents   int64
	MaxModulesPerPlan   int64
	MaxFeaturesPerPlan  int64
	MaxTrialDays        int64
	TxFeeMaxPercent     float64
	TxFeeMaxFixedCents  int64
}

func validateGlobalPolicyParams(p GlobalPolicyParams) error {
	if p.MaxPlans < 0 {
		return fmt.Errorf("max plans cannot be negative")
	}
	if p.MinPaidPriceCents < 0 {
		return fmt.Errorf("minimum paid price cannot be negative")
	}
	if p.MaxModulesPerPlan < 0 {
		return fmt.Errorf("max modules per plan cannot be negative")
	}
	if p.MaxFeaturesPerPlan < 0 {
		return fmt.Errorf("max features per plan cannot be negative")
	}
	if p.MaxTrialDays < 0 {
		return fmt.Errorf("max trial days cannot be negative")
	}
	if p.TxFeeMaxPercent < 0 || p.TxFeeMaxPercent > 1 {
		return fmt.Errorf("transaction fee percent cap must be between 0 and 1")
	}
	if p.TxFeeMaxFixedCents < 0 {
		return fmt.Errorf("transaction fee fixed cap cannot be negative")
	}
	return nil
}

// DefaultGlobalPolicyParams returns the platform-wide defaults used when the
// policy row is first created: free plans and offline billing allowed, partner
// gateways off, no numeric limits. Zero means unlimited for the limit fields
// and "no cap" for the fee caps.
func DefaultGlobalPolicyParams() GlobalPolicyParams {
	return GlobalPolicyParams{
		AllowFreePlan:       true,
		AllowPartnerGateway: false,
		AllowOfflineBilling: true,
	}
}

// NewGlobalPolicy creates the singleton policy row. Only the seeding path
// calls this; everything else reads and updates the existing row.
func NewGlobalPolicy(p GlobalPolicyParams) (*GlobalPolicy, error) {
	if err := validateGlobalPolicyParams(p); err != nil {
		return nil, err
	}

	now := biztime.NowUTC()
	return &GlobalPolicy{
		allowFreePlan:       p.AllowFreePlan,
		allowPartnerGateway: p.AllowPartnerGateway,
		allowOfflineBilling: p.AllowOfflineBilling,
		maxPlans:            p.MaxPlans,
		minPaidPriceCents:   p.MinPaidPriceCents,
		maxModulesPerPlan:   p.MaxModulesPerPlan,
		maxFeaturesPerPlan:  p.MaxFeaturesPerPlan,
		maxTrialDays:        p.MaxTrialDays,
		txFeeMaxPercent:     p.TxFeeMaxPercent,
		txFeeMaxFixedCents:  p.TxFeeMaxFixedCents,
		version:             1,
		createdAt:           now,
		updatedAt:           now,
	}, nil
}

// ReconstructGlobalPolicy rebuilds the aggregate from persistence.
func ReconstructGlobalPolicy(id uint, p GlobalPolicyParams, version int, createdAt, updatedAt time.Time) (*GlobalPolicy, error) {
	if id == 0 {
		return nil, fmt.Errorf("global policy ID cannot be zero")
	}
	if err := validateGlobalPolicyParams(p); err != nil {
		return nil, err
	}

	return &GlobalPolicy{
		id:                  id,
		allowFreePlan:       p.AllowFreePlan,
		allowPartnerGateway: p.AllowPartnerGateway,
		allowOfflineBilling: p.AllowOfflineBilling,
		maxPlans:            p.MaxPlans,
		minPaidPriceCents:   p.MinPaidPriceCents,
		maxModulesPerPlan:   p.MaxModulesPerPlan,
		maxFeaturesPerPlan:  p.MaxFeaturesPerPlan,
		maxTrialDays:        p.MaxTrialDays,
		txFeeMaxPercent:     p.TxFeeMaxPercent,
		txFeeMaxFixedCents:  p.TxFeeMaxFixedCents,
		version:             version,
		createdAt:           createdAt,
		updatedAt:           updatedAt,
	}, nil
}

func (g *GlobalPolicy) ID() uint { return g.id }

// SetID sets the policy ID (only for persistence layer use)
func (g *GlobalPolicy) SetID(id uint) error {
	if g.id != 0 {
		return fmt.Errorf("global policy ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("global policy ID cannot be zero")
	}
	g.id = id
	return nil
}

func (g *GlobalPolicy) AllowFreePlan() bool       { return g.allowFreePlan }
func (g *GlobalPolicy) AllowPartnerGateway() bool { return g.allowPartnerGateway }
func (g *GlobalPolicy) AllowOfflineBilling() bool { return g.allowOfflineBilling }
func (g *GlobalPolicy) MaxPlans() int64           { return g.maxPlans }
func (g *GlobalPolicy) MinPaidPriceCents() int64  { return g.minPaidPriceCents }
func (g *GlobalPolicy) MaxModulesPerPlan() int64  { return g.maxModulesPerPlan }
func (g *GlobalPolicy) MaxFeaturesPerPlan() int64 { return g.maxFeaturesPerPlan }
func (g *GlobalPolicy) MaxTrialDays() int64       { return g.maxTrialDays }
func (g *GlobalPolicy) TxFeeMaxPercent() float64  { return g.txFeeMaxPercent }
func (g *GlobalPolicy) TxFeeMaxFixedCents() int64 { return g.txFeeMaxFixedCents }
func (g *GlobalPolicy) Version() int              { return g.version }
func (g *GlobalPolicy) CreatedAt() time.Time      { return g.createdAt }
func (g *GlobalPolicy) UpdatedAt() time.Time      { return g.updatedAt }

// Params returns the current field values as a params struct.
func (g *GlobalPolicy) Params() GlobalPolicyParams {
	return GlobalPolicyParams{
		AllowFreePlan:       g.allowFreePlan,
		AllowPartnerGateway: g.allowPartnerGateway,
		AllowOfflineBilling: g.allowOfflineBilling,
		MaxPlans:            g.maxPlans,
		MinPaidPriceCents:   g.minPaidPriceCents,
		MaxModulesPerPlan:   g.maxModulesPerPlan,
		MaxFeaturesPerPlan:  g.maxFeaturesPerPlan,
		MaxTrialDays:        g.maxTrialDays,
		TxFeeMaxPercent:     g.txFeeMaxPercent,
		TxFeeMaxFixedCents:  g.txFeeMaxFixedCents,
	}
}

// Update replaces every field at once. Admin writes are last-writer-wins.
func (g *GlobalPolicy) Update(p GlobalPolicyParams) error {
	if err := validateGlobalPolicyParams(p); err != nil {
		return err
	}

	g.allowFreePlan = p.AllowFreePlan
	g.allowPartnerGateway = p.AllowPartnerGateway
	g.allowOfflineBilling = p.AllowOfflineBilling
	g.maxPlans = p.MaxPlans
	g.minPaidPriceCents = p.MinPaidPriceCents
	g.maxModulesPerPlan = p.MaxModulesPerPlan
	g.maxFeaturesPerPlan = p.MaxFeaturesPerPlan
	g.maxTrialDays = p.MaxTrialDays
	g.txFeeMaxPercent = p.TxFeeMaxPercent
	g.txFeeMaxFixedCents = p.TxFeeMaxFixedCents
	g.updatedAt = biztime.NowUTC()
	g.version++
	return nil
}
