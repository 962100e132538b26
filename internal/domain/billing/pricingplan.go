package billing

import (
	"fmt"
	"time"

	vo "github.com/prato-inc/prato/internal/domain/billing/valueobjects"
	"github.com/prato-inc/prato/internal/shared/biztime"
	"github.com/prato-inc/prato/internal/shared/id"
)

// PricingPlan defines how a transaction fee is computed for routes that
// resolve to it: a percent rate, a fixed rate, a floor, an optional cap, and
// an optional platform subsidy.
type PricingPlan struct {
	planID uint
	sid    string

	name        string
	slug        string
	pricingType vo.PricingType

	percentRate    float64
	fixedRateCents int64
	minFeeCents    int64
	maxFeeCents    *int64

	isSubsidized   bool
	subsidyPercent float64

	isActive     bool
	displayOrder int
	notes        string

	version   int
	createdAt time.Time
	updatedAt time.Time
}

// PricingPlanParams carries every mutable field of a plan.
type PricingPlanParams struct {
	Name           string
	Slug           string
	PricingType    vo.PricingType
	PercentRate    float64
	FixedRateCents int64
	MinFeeCents    int64
	MaxFeeCents    *int64
	IsSubsidized   bool
	SubsidyPercent float64
	DisplayOrder   int
	Notes          string
}

func validatePricingPlanParams(p PricingPlanParams) error {
	if p.Name == "" {
		return fmt.Errorf("plan name is required")
	}
	if p.Slug == "" {
		return fmt.Errorf("plan slug is required")
	}
	if len(p.Name) > 100 {
		return fmt.Errorf("plan name too long (max 100 characters)")
	}
	if len(p.Slug) > 100 {
		return fmt.Errorf("plan slug too long (max 100 characters)")
	}
	if !p.PricingType.IsValid() {
		return fmt.Errorf("invalid pricing type: %s", p.PricingType)
	}
	if p.PercentRate < 0 || p.PercentRate > 1 {
		return fmt.Errorf("percent rate must be between 0 and 1")
	}
	if p.PricingType.UsesPercent() && p.PercentRate == 0 && !p.PricingType.UsesFixed() {
		return fmt.Errorf("percentual plans require a non-zero percent rate")
	}
	if p.FixedRateCents < 0 {
		return fmt.Errorf("fixed rate cannot be negative")
	}
	if p.MinFeeCents < 0 {
		return fmt.Errorf("minimum fee cannot be negative")
	}
	if p.MaxFeeCents != nil && *p.MaxFeeCents < p.MinFeeCents {
		// InconsistentPlan: rejected at write time, never reaches the calculator.
		return ErrInconsistentPlan
	}
	if p.IsSubsidized && (p.SubsidyPercent < 0 || p.SubsidyPercent > 100) {
		return fmt.Errorf("subsidy percent must be between 0 and 100")
	}
	return nil
}

// NewPricingPlan creates an active plan with a fresh SID.
func NewPricingPlan(p PricingPlanParams) (*PricingPlan, error) {
	if err := validatePricingPlanParams(p); err != nil {
		return nil, err
	}

	sid, err := id.NewPricingPlanID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate SID: %w", err)
	}

	now := biztime.NowUTC()
	plan := &PricingPlan{
		sid:       sid,
		isActive:  true,
		version:   1,
		createdAt: now,
		updatedAt: now,
	}
	plan.apply(p)
	return plan, nil
}

// ReconstructPricingPlan rebuilds a plan from persistence.
func ReconstructPricingPlan(
	planID uint,
	sid string,
	p PricingPlanParams,
	isActive bool,
	version int,
	createdAt, updatedAt time.Time,
) (*PricingPlan, error) {
	if planID == 0 {
		return nil, fmt.Errorf("pricing plan ID cannot be zero")
	}
	if err := validatePricingPlanParams(p); err != nil {
		return nil, err
	}

	plan := &PricingPlan{
		planID:    planID,
		sid:       sid,
		isActive:  isActive,
		version:   version,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
	plan.apply(p)
	return plan, nil
}

func (p *PricingPlan) apply(params PricingPlanParams) {
	p.name = params.Name
	p.slug = params.Slug
	p.pricingType = params.PricingType
	p.percentRate = params.PercentRate
	p.fixedRateCents = params.FixedRateCents
	p.minFeeCents = params.MinFeeCents
	if params.MaxFeeCents != nil {
		v := *params.MaxFeeCents
		p.maxFeeCents = &v
	} else {
		p.maxFeeCents = nil
	}
	p.isSubsidized = params.IsSubsidized
	if params.IsSubsidized {
		p.subsidyPercent = params.SubsidyPercent
	} else {
		p.subsidyPercent = 0
	}
	p.displayOrder = params.DisplayOrder
	p.notes = params.Notes
}

func (p *PricingPlan) ID() uint { return p.planID }

// SetID sets the plan ID (only for persistence layer use)
func (p *PricingPlan) SetID(planID uint) error {
	if p.planID != 0 {
		return fmt.Errorf("pricing plan ID is already set")
	}
	if planID == 0 {
		return fmt.Errorf("pricing plan ID cannot be zero")
	}
	p.planID = planID
	return nil
}

func (p *PricingPlan) SID() string                 { return p.sid }
func (p *PricingPlan) Name() string                { return p.name }
func (p *PricingPlan) Slug() string                { return p.slug }
func (p *PricingPlan) PricingType() vo.PricingType { return p.pricingType }
func (p *PricingPlan) PercentRate() float64        { return p.percentRate }
func (p *PricingPlan) FixedRateCents() int64       { return p.fixedRateCents }
func (p *PricingPlan) MinFeeCents() int64          { return p.minFeeCents }
func (p *PricingPlan) IsSubsidized() bool          { return p.isSubsidized }
func (p *PricingPlan) SubsidyPercent() float64     { return p.subsidyPercent }
func (p *PricingPlan) IsActive() bool              { return p.isActive }
func (p *PricingPlan) DisplayOrder() int           { return p.displayOrder }
func (p *PricingPlan) Notes() string               { return p.notes }
func (p *PricingPlan) Version() int                { return p.version }
func (p *PricingPlan) CreatedAt() time.Time        { return p.createdAt }
func (p *PricingPlan) UpdatedAt() time.Time        { return p.updatedAt }

// MaxFeeCents returns the cap and whether one exists.
func (p *PricingPlan) MaxFeeCents() (int64, bool) {
	if p.maxFeeCents == nil {
		return 0, false
	}
	return *p.maxFeeCents, true
}

// Params returns the current mutable fields as a params struct.
func (p *PricingPlan) Params() PricingPlanParams {
	var maxCopy *int64
	if p.maxFeeCents != nil {
		v := *p.maxFeeCents
		maxCopy = &v
	}
	return PricingPlanParams{
		Name:           p.name,
		Slug:           p.slug,
		PricingType:    p.pricingType,
		PercentRate:    p.percentRate,
		FixedRateCents: p.fixedRateCents,
		MinFeeCents:    p.minFeeCents,
		MaxFeeCents:    maxCopy,
		IsSubsidized:   p.isSubsidized,
		SubsidyPercent: p.subsidyPercent,
		DisplayOrder:   p.displayOrder,
		Notes:          p.notes,
	}
}

// Update replaces the plan's mutable fields after validation.
func (p *PricingPlan) Update(params PricingPlanParams) error {
	if err := validatePricingPlanParams(params); err != nil {
		return err
	}
	p.apply(params)
	p.touch()
	return nil
}

func (p *PricingPlan) Activate() {
	if p.isActive {
		return
	}
	p.isActive = true
	p.touch()
}

func (p *PricingPlan) Deactivate() {
	if !p.isActive {
		return
	}
	p.isActive = false
	p.touch()
}

// FeeSchedule converts the plan into the calculator's input.
func (p *PricingPlan) FeeSchedule() (vo.FeeSchedule, error) {
	percent := p.percentRate
	if !p.pricingType.UsesPercent() {
		percent = 0
	}
	fixed := p.fixedRateCents
	if !p.pricingType.UsesFixed() {
		fixed = 0
	}
	return vo.NewFeeSchedule(percent, fixed, p.minFeeCents, p.maxFeeCents, p.isSubsidized, p.subsidyPercent)
}

func (p *PricingPlan) touch() {
	p.updatedAt = biztime.NowUTC()
	p.version++
}
