package valueobjects

import "fmt"

// RuleScope is the tier at which an availability rule applies. Narrower
// scopes carry a higher default priority so they win over broader ones.
type RuleScope string

const (
	RuleScopeGlobal   RuleScope = "global"
	RuleScopeCategory RuleScope = "category"
	RuleScopePlan     RuleScope = "plan"
	RuleScopePartner  RuleScope = "partner"
	RuleScopeTenant   RuleScope = "tenant"
)

// NewRuleScope validates and returns a RuleScope.
func NewRuleScope(value string) (RuleScope, error) {
	s := RuleScope(value)
	if !s.IsValid() {
		return "", fmt.Errorf("invalid rule scope: %s", value)
	}
	return s, nil
}

func (s RuleScope) IsValid() bool {
	switch s {
	case RuleScopeGlobal, RuleScopeCategory, RuleScopePlan, RuleScopePartner, RuleScopeTenant:
		return true
	}
	return false
}

// RequiresScopeID reports whether rules of this scope must carry a scope ID.
// Only global rules apply unconditionally.
func (s RuleScope) RequiresScopeID() bool {
	return s != RuleScopeGlobal
}

// DefaultPriority is the tier priority assigned at rule creation:
// tenant=5, partner=4, plan=3, category=2, global=1. The priority is stored
// explicitly on the rule and never recomputed, so administrators can re-rank
// rules within or across tiers afterwards.
func (s RuleScope) DefaultPriority() int {
	switch s {
	case RuleScopeTenant:
		return 5
	case RuleScopePartner:
		return 4
	case RuleScopePlan:
		return 3
	case RuleScopeCategory:
		return 2
	case RuleScopeGlobal:
		return 1
	}
	return 0
}

func (s RuleScope) String() string {
	return string(s)
}
