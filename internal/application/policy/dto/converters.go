package dto

import "github.com/prato-inc/prato/internal/domain/policy"

// ToGlobalPolicyDTO converts the global policy aggregate to its DTO.
func ToGlobalPolicyDTO(g *policy.GlobalPolicy) *GlobalPolicyDTO {
	if g == nil {
		return nil
	}
	return &GlobalPolicyDTO{
		AllowFreePlan:       g.AllowFreePlan(),
		AllowPartnerGateway: g.AllowPartnerGateway(),
		AllowOfflineBilling: g.AllowOfflineBilling(),
		MaxPlans:            g.MaxPlans(),
		MinPaidPriceCents:   g.MinPaidPriceCents(),
		MaxModulesPerPlan:   g.MaxModulesPerPlan(),
		MaxFeaturesPerPlan:  g.MaxFeaturesPerPlan(),
		MaxTrialDays:        g.MaxTrialDays(),
		TxFeeMaxPercent:     g.TxFeeMaxPercent(),
		TxFeeMaxFixedCents:  g.TxFeeMaxFixedCents(),
		Version:             g.Version(),
		UpdatedAt:           g.UpdatedAt(),
	}
}

// ToPolicyOverrideDTO converts an override aggregate to its DTO. Inherit
// states become nil pointers.
func ToPolicyOverrideDTO(o *policy.PolicyOverride) *PolicyOverrideDTO {
	if o == nil {
		return nil
	}
	return &PolicyOverrideDTO{
		SID:                 o.SID(),
		PartnerID:           o.PartnerID(),
		AllowFreePlan:       o.AllowFreePlan().Ptr(),
		AllowPartnerGateway: o.AllowPartnerGateway().Ptr(),
		AllowOfflineBilling: o.AllowOfflineBilling().Ptr(),
		MaxPlans:            o.MaxPlans().Ptr(),
		MinPaidPriceCents:   o.MinPaidPriceCents().Ptr(),
		MaxModulesPerPlan:   o.MaxModulesPerPlan().Ptr(),
		MaxFeaturesPerPlan:  o.MaxFeaturesPerPlan().Ptr(),
		MaxTrialDays:        o.MaxTrialDays().Ptr(),
		TxFeeMaxPercent:     o.TxFeeMaxPercent().Ptr(),
		TxFeeMaxFixedCents:  o.TxFeeMaxFixedCents().Ptr(),
		Notes:               o.Notes(),
		Version:             o.Version(),
		CreatedAt:           o.CreatedAt(),
		UpdatedAt:           o.UpdatedAt(),
	}
}

// ToEffectivePolicyDTO converts a resolved policy to its DTO.
func ToEffectivePolicyDTO(partnerID uint, ep policy.EffectivePolicy) *EffectivePolicyDTO {
	return &EffectivePolicyDTO{
		PartnerID:           partnerID,
		AllowFreePlan:       ep.AllowFreePlan,
		AllowPartnerGateway: ep.AllowPartnerGateway,
		AllowOfflineBilling: ep.AllowOfflineBilling,
		MaxPlans:            ep.MaxPlans,
		MinPaidPriceCents:   ep.MinPaidPriceCents,
		MaxModulesPerPlan:   ep.MaxModulesPerPlan,
		MaxFeaturesPerPlan:  ep.MaxFeaturesPerPlan,
		MaxTrialDays:        ep.MaxTrialDays,
		TxFeeMaxPercent:     ep.TxFeeMaxPercent,
		TxFeeMaxFixedCents:  ep.TxFeeMaxFixedCents,
	}
}
