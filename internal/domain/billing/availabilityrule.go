package billing

import (
	"fmt"
	"time"

	vo "github.com/prato-inc/prato/internal/domain/billing/valueobjects"
	"github.com/prato-inc/prato/internal/shared/biztime"
	"github.com/prato-inc/prato/internal/shared/id"
)

// AvailabilityRule binds a scope selector to a PSP provider and, optionally,
// a pricing plan. The resolver picks the enabled matching rule with the
// highest stored priority.
type AvailabilityRule struct {
	ruleID uint
	sid    string

	scope   vo.RuleScope
	scopeID *uint

	providerID uint
	planID     *uint

	priority int
	enabled  bool
	notes    string

	version   int
	createdAt time.Time
	updatedAt time.Time
}

// AvailabilityRuleParams carries every mutable field of a rule.
type AvailabilityRuleParams struct {
	Scope      vo.RuleScope
	ScopeID    *uint
	ProviderID uint
	PlanID     *uint
	Priority   int
	Notes      string
}

func validateAvailabilityRuleParams(p AvailabilityRuleParams) error {
	if !p.Scope.IsValid() {
		return fmt.Errorf("invalid rule scope: %s", p.Scope)
	}
	if p.Scope.RequiresScopeID() {
		if p.ScopeID == nil || *p.ScopeID == 0 {
			return fmt.Errorf("scope %s requires a scope ID", p.Scope)
		}
	} else if p.ScopeID != nil {
		return fmt.Errorf("scope %s does not accept a scope ID", p.Scope)
	}
	if p.ProviderID == 0 {
		return fmt.Errorf("rule requires a provider")
	}
	if p.Priority < 0 {
		return fmt.Errorf("priority cannot be negative")
	}
	return nil
}

// NewAvailabilityRule creates an enabled rule with a fresh SID. A zero
// priority is replaced by the scope's default rank.
func NewAvailabilityRule(p AvailabilityRuleParams) (*AvailabilityRule, error) {
	if err := validateAvailabilityRuleParams(p); err != nil {
		return nil, err
	}

	sid, err := id.NewRuleID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate SID: %w", err)
	}

	if p.Priority == 0 {
		p.Priority = p.Scope.DefaultPriority()
	}

	now := biztime.NowUTC()
	rule := &AvailabilityRule{
		sid:       sid,
		enabled:   true,
		version:   1,
		createdAt: now,
		updatedAt: now,
	}
	rule.apply(p)
	return rule, nil
}

// ReconstructAvailabilityRule rebuilds a rule from persistence.
func ReconstructAvailabilityRule(
	ruleID uint,
	sid string,
	p AvailabilityRuleParams,
	enabled bool,
	version int,
	createdAt, updatedAt time.Time,
) (*AvailabilityRule, error) {
	if ruleID == 0 {
		return nil, fmt.Errorf("rule ID cannot be zero")
	}
	if err := validateAvailabilityRuleParams(p); err != nil {
		return nil, err
	}

	rule := &AvailabilityRule{
		ruleID:    ruleID,
		sid:       sid,
		enabled:   enabled,
		version:   version,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
	rule.apply(p)
	return rule, nil
}

func (r *AvailabilityRule) apply(p AvailabilityRuleParams) {
	r.scope = p.Scope
	if p.ScopeID != nil {
		v := *p.ScopeID
		r.scopeID = &v
	} else {
		r.scopeID = nil
	}
	r.providerID = p.ProviderID
	if p.PlanID != nil {
		v := *p.PlanID
		r.planID = &v
	} else {
		r.planID = nil
	}
	r.priority = p.Priority
	r.notes = p.Notes
}

func (r *AvailabilityRule) ID() uint { return r.ruleID }

// SetID sets the rule ID (only for persistence layer use)
func (r *AvailabilityRule) SetID(ruleID uint) error {
	if r.ruleID != 0 {
		return fmt.Errorf("rule ID is already set")
	}
	if ruleID == 0 {
		return fmt.Errorf("rule ID cannot be zero")
	}
	r.ruleID = ruleID
	return nil
}

func (r *AvailabilityRule) SID() string        { return r.sid }
func (r *AvailabilityRule) Scope() vo.RuleScope { return r.scope }
func (r *AvailabilityRule) ProviderID() uint   { return r.providerID }
func (r *AvailabilityRule) Priority() int      { return r.priority }
func (r *AvailabilityRule) Enabled() bool      { return r.enabled }
func (r *AvailabilityRule) Notes() string      { return r.notes }
func (r *AvailabilityRule) Version() int       { return r.version }
func (r *AvailabilityRule) CreatedAt() time.Time { return r.createdAt }
func (r *AvailabilityRule) UpdatedAt() time.Time { return r.updatedAt }

// ScopeID returns the scope target and whether one is set.
func (r *AvailabilityRule) ScopeID() (uint, bool) {
	if r.scopeID == nil {
		return 0, false
	}
	return *r.scopeID, true
}

// PlanID returns the pinned plan and whether one is set.
func (r *AvailabilityRule) PlanID() (uint, bool) {
	if r.planID == nil {
		return 0, false
	}
	return *r.planID, true
}

// Params returns the current mutable fields as a params struct.
func (r *AvailabilityRule) Params() AvailabilityRuleParams {
	var scopeCopy, planCopy *uint
	if r.scopeID != nil {
		v := *r.scopeID
		scopeCopy = &v
	}
	if r.planID != nil {
		v := *r.planID
		planCopy = &v
	}
	return AvailabilityRuleParams{
		Scope:      r.scope,
		ScopeID:    scopeCopy,
		ProviderID: r.providerID,
		PlanID:     planCopy,
		Priority:   r.priority,
		Notes:      r.notes,
	}
}

// Update replaces the rule's mutable fields after validation.
func (r *AvailabilityRule) Update(p AvailabilityRuleParams) error {
	if err := validateAvailabilityRuleParams(p); err != nil {
		return err
	}
	r.apply(p)
	r.touch()
	return nil
}

// Reprioritize moves the rule to a new rank without touching its bindings.
func (r *AvailabilityRule) Reprioritize(priority int) error {
	if priority < 0 {
		return fmt.Errorf("priority cannot be negative")
	}
	if r.priority == priority {
		return nil
	}
	r.priority = priority
	r.touch()
	return nil
}

func (r *AvailabilityRule) Enable() {
	if r.enabled {
		return
	}
	r.enabled = true
	r.touch()
}

func (r *AvailabilityRule) Disable() {
	if !r.enabled {
		return
	}
	r.enabled = false
	r.touch()
}

// Matches reports whether the rule applies to the given route context.
func (r *AvailabilityRule) Matches(ctx RouteContext) bool {
	switch r.scope {
	case vo.RuleScopeGlobal:
		return true
	case vo.RuleScopeTenant:
		return r.scopeID != nil && *r.scopeID == ctx.TenantID
	case vo.RuleScopePartner:
		return r.scopeID != nil && ctx.PartnerID != nil && *r.scopeID == *ctx.PartnerID
	case vo.RuleScopePlan:
		return r.scopeID != nil && ctx.PlanID != nil && *r.scopeID == *ctx.PlanID
	case vo.RuleScopeCategory:
		return r.scopeID != nil && ctx.CategoryID != nil && *r.scopeID == *ctx.CategoryID
	default:
		return false
	}
}

func (r *AvailabilityRule) touch() {
	r.updatedAt = biztime.NowUTC()
	r.version++
}
