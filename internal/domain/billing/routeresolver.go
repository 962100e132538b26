package billing

import "sort"

// RouteContext identifies the transaction being routed. TenantID is always
// known; the remaining dimensions are optional.
type RouteContext struct {
	TenantID   uint
	PartnerID  *uint
	PlanID     *uint
	CategoryID *uint
}

// MatchingRules returns every enabled rule that applies to the context,
// ordered best-first: higher stored priority wins, ties go to the most
// recently created rule, and equal timestamps fall back to the higher ID.
func MatchingRules(rules []*AvailabilityRule, ctx RouteContext) []*AvailabilityRule {
	matched := make([]*AvailabilityRule, 0, len(rules))
	for _, rule := range rules {
		if !rule.Enabled() {
			continue
		}
		if rule.Matches(ctx) {
			matched = append(matched, rule)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		if a.Priority() != b.Priority() {
			return a.Priority() > b.Priority()
		}
		if !a.CreatedAt().Equal(b.CreatedAt()) {
			return a.CreatedAt().After(b.CreatedAt())
		}
		return a.ID() > b.ID()
	})
	return matched
}

// ResolveRoute returns the winning rule for the context, or ErrNoRouteMatched
// when nothing applies.
func ResolveRoute(rules []*AvailabilityRule, ctx RouteContext) (*AvailabilityRule, error) {
	matched := MatchingRules(rules, ctx)
	if len(matched) == 0 {
		return nil, ErrNoRouteMatched
	}
	return matched[0], nil
}
