package policy

// EffectivePolicy is the fully-resolved policy for a partner: the global
// defaults with each field replaced by the partner's override where one is
// set. It is derived on demand and never stored.
type EffectivePolicy struct {
	AllowFreePlan       bool
	AllowPartnerGateway bool
	AllowOfflineBilling bool

	MaxPlans           int64
	MinPaidPriceCents  int64
	MaxModulesPerPlan  int64
	MaxFeaturesPerPlan int64
	MaxTrialDays       int64

	TxFeeMaxPercent    float64
	TxFeeMaxFixedCents int64
}

// ResolveEffectivePolicy merges the global policy with an optional partner
// override. A nil override is equivalent to an override whose every field
// inherits. The function is pure and total: it never fails and performs no
// I/O. A missing global policy is a configuration error the caller must treat
// as fatal before ever reaching this point.
func ResolveEffectivePolicy(global *GlobalPolicy, override *PolicyOverride) EffectivePolicy {
	effective := EffectivePolicy{
		AllowFreePlan:       global.AllowFreePlan(),
		AllowPartnerGateway: global.AllowPartnerGateway(),
		AllowOfflineBilling: global.AllowOfflineBilling(),
		MaxPlans:            global.MaxPlans(),
		MinPaidPriceCents:   global.MinPaidPriceCents(),
		MaxModulesPerPlan:   global.MaxModulesPerPlan(),
		MaxFeaturesPerPlan:  global.MaxFeaturesPerPlan(),
		MaxTrialDays:        global.MaxTrialDays(),
		TxFeeMaxPercent:     global.TxFeeMaxPercent(),
		TxFeeMaxFixedCents:  global.TxFeeMaxFixedCents(),
	}

	if override == nil {
		return effective
	}

	effective.AllowFreePlan = override.AllowFreePlan().Resolve(effective.AllowFreePlan)
	effective.AllowPartnerGateway = override.AllowPartnerGateway().Resolve(effective.AllowPartnerGateway)
	effective.AllowOfflineBilling = override.AllowOfflineBilling().Resolve(effective.AllowOfflineBilling)
	effective.MaxPlans = override.MaxPlans().Resolve(effective.MaxPlans)
	effective.MinPaidPriceCents = override.MinPaidPriceCents().Resolve(effective.MinPaidPriceCents)
	effective.MaxModulesPerPlan = override.MaxModulesPerPlan().Resolve(effective.MaxModulesPerPlan)
	effective.MaxFeaturesPerPlan = override.MaxFeaturesPerPlan().Resolve(effective.MaxFeaturesPerPlan)
	effective.MaxTrialDays = override.MaxTrialDays().Resolve(effective.MaxTrialDays)
	effective.TxFeeMaxPercent = override.TxFeeMaxPercent().Resolve(effective.TxFeeMaxPercent)
	effective.TxFeeMaxFixedCents = override.TxFeeMaxFixedCents().Resolve(effective.TxFeeMaxFixedCents)

	return effective
}
