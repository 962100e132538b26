package dto

import (
	"github.com/prato-inc/prato/internal/domain/billing"
	vo "github.com/prato-inc/prato/internal/domain/billing/valueobjects"
	"github.com/prato-inc/prato/internal/shared/utils"
)

func ToPricingPlanDTO(plan *billing.PricingPlan) *PricingPlanDTO {
	if plan == nil {
		return nil
	}
	d := &PricingPlanDTO{
		SID:            plan.SID(),
		Name:           plan.Name(),
		Slug:           plan.Slug(),
		PricingType:    plan.PricingType().String(),
		PercentRate:    plan.PercentRate(),
		FixedRateCents: plan.FixedRateCents(),
		MinFeeCents:    plan.MinFeeCents(),
		IsSubsidized:   plan.IsSubsidized(),
		SubsidyPercent: plan.SubsidyPercent(),
		IsActive:       plan.IsActive(),
		DisplayOrder:   plan.DisplayOrder(),
		Notes:          plan.Notes(),
		Version:        plan.Version(),
		CreatedAt:      plan.CreatedAt(),
		UpdatedAt:      plan.UpdatedAt(),
	}
	if max, ok := plan.MaxFeeCents(); ok {
		d.MaxFeeCents = &max
	}
	return d
}

func ToPricingPlanDTOList(plans []*billing.PricingPlan) []*PricingPlanDTO {
	dtos := make([]*PricingPlanDTO, 0, len(plans))
	for _, plan := range plans {
		if plan != nil {
			dtos = append(dtos, ToPricingPlanDTO(plan))
		}
	}
	return dtos
}

func ToPSPProviderDTO(provider *billing.PSPProvider) *PSPProviderDTO {
	if provider == nil {
		return nil
	}
	return &PSPProviderDTO{
		SID:                   provider.SID(),
		Name:                  provider.Name(),
		Slug:                  provider.Slug(),
		SupportsTxid:          provider.SupportsTxid(),
		SupportsWebhook:       provider.SupportsWebhook(),
		SupportsSubaccount:    provider.SupportsSubaccount(),
		SupportsSplit:         provider.SupportsSplit(),
		DefaultPercentRate:    provider.DefaultPercentRate(),
		DefaultFixedRateCents: provider.DefaultFixedRateCents(),
		PricingModel:          provider.PricingModel(),
		IsActive:              provider.IsActive(),
		DisplayOrder:          provider.DisplayOrder(),
		Metadata:              provider.Metadata(),
		Version:               provider.Version(),
		CreatedAt:             provider.CreatedAt(),
		UpdatedAt:             provider.UpdatedAt(),
	}
}

func ToPSPProviderDTOList(providers []*billing.PSPProvider) []*PSPProviderDTO {
	dtos := make([]*PSPProviderDTO, 0, len(providers))
	for _, provider := range providers {
		if provider != nil {
			dtos = append(dtos, ToPSPProviderDTO(provider))
		}
	}
	return dtos
}

// ToAvailabilityRuleDTO converts a rule; provider and plan SIDs come from
// the caller because the rule stores internal IDs only.
func ToAvailabilityRuleDTO(rule *billing.AvailabilityRule, providerSID, planSID string) *AvailabilityRuleDTO {
	if rule == nil {
		return nil
	}
	d := &AvailabilityRuleDTO{
		SID:         rule.SID(),
		Scope:       rule.Scope().String(),
		ProviderSID: providerSID,
		PlanSID:     planSID,
		Priority:    rule.Priority(),
		Enabled:     rule.Enabled(),
		Notes:       rule.Notes(),
		Version:     rule.Version(),
		CreatedAt:   rule.CreatedAt(),
		UpdatedAt:   rule.UpdatedAt(),
	}
	if scopeID, ok := rule.ScopeID(); ok {
		d.ScopeID = &scopeID
	}
	return d
}

// ToCredentialDTO converts a credential, masking the stored key.
func ToCredentialDTO(cred *billing.Credential, providerSID string) *CredentialDTO {
	if cred == nil {
		return nil
	}
	d := &CredentialDTO{
		SID:                    cred.SID(),
		ProviderSID:            providerSID,
		Scope:                  cred.Scope().String(),
		APIKeyMasked:           utils.MaskSecret(cred.APIKeyEncrypted()),
		AccountRef:             cred.AccountRef(),
		Status:                 cred.Status().String(),
		UsePlatformCredentials: cred.UsePlatformCredentials(),
		Version:                cred.Version(),
		CreatedAt:              cred.CreatedAt(),
		UpdatedAt:              cred.UpdatedAt(),
	}
	if tenantID, ok := cred.TenantID(); ok {
		d.TenantID = &tenantID
	}
	return d
}

func ToFeeScheduleDTO(schedule vo.FeeSchedule) *FeeScheduleDTO {
	d := &FeeScheduleDTO{
		PercentRate:    schedule.PercentRate(),
		FixedFeeCents:  schedule.FixedFeeCents(),
		MinFeeCents:    schedule.MinFeeCents(),
		IsSubsidized:   schedule.IsSubsidized(),
		SubsidyPercent: schedule.SubsidyPercent(),
	}
	if max, ok := schedule.MaxFeeCents(); ok {
		d.MaxFeeCents = &max
	}
	return d
}

func ToFeeBreakdownDTO(amountCents int64, currency string, breakdown billing.FeeBreakdown) *FeeBreakdownDTO {
	return &FeeBreakdownDTO{
		AmountCents:          amountCents,
		Currency:             currency,
		TotalFeeCents:        breakdown.TotalFeeCents,
		MerchantFeeCents:     breakdown.MerchantFeeCents,
		PlatformSubsidyCents: breakdown.PlatformSubsidyCents,
	}
}
