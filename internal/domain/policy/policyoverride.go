package policy

import (
	"fmt"
	"time"

	vo "github.com/prato-inc/prato/internal/domain/policy/valueobjects"
	"github.com/prato-inc/prato/internal/shared/biztime"
	"github.com/prato-inc/prato/internal/shared/id"
)

// PolicyOverride holds a partner's deviations from the global policy. Every
// field is tri-state; an inheriting field falls through to GlobalPolicy.
// At most one override row exists per partner, and deleting the row resets the
// partner to pure inheritance.
type PolicyOverride struct {
	id        uint
	sid       string
	partnerID uint

	allowFreePlan       vo.BoolOverride
	allowPartnerGateway vo.BoolOverride
	allowOfflineBilling vo.BoolOverride

	maxPlans           vo.IntOverride
	minPaidPriceCents  vo.IntOverride
	maxModulesPerPlan  vo.IntOverride
	maxFeaturesPerPlan vo.IntOverride
	maxTrialDays       vo.IntOverride

	txFeeMaxPercent    vo.FloatOverride
	txFeeMaxFixedCents vo.IntOverride

	notes     string
	version   int
	createdAt time.Time
	updatedAt time.Time
}

// NewPolicyOverride creates an all-inherit override for a partner.
func NewPolicyOverride(partnerID uint) (*PolicyOverride, error) {
	if partnerID == 0 {
		return nil, fmt.Errorf("partner ID cannot be zero")
	}

	sid, err := id.NewPolicyOverrideID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate SID: %w", err)
	}

	now := biztime.NowUTC()
	return &PolicyOverride{
		sid:       sid,
		partnerID: partnerID,
		version:   1,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// PolicyOverrideFields carries the tri-state values of every override field.
type PolicyOverrideFields struct {
	AllowFreePlan       vo.BoolOverride
	AllowPartnerGateway vo.BoolOverride
	AllowOfflineBilling vo.BoolOverride
	MaxPlans            vo.IntOverride
	MinPaidPriceCents   vo.IntOverride
	MaxModulesPerPlan   vo.IntOverride
	MaxFeaturesPerPlan  vo.IntOverride
	MaxTrialDays        vo.IntOverride
	TxFeeMaxPercent     vo.FloatOverride
	TxFeeMaxFixedCents  vo.IntOverride
}

// ReconstructPolicyOverride rebuilds the aggregate from persistence.
func ReconstructPolicyOverride(
	overrideID uint,
	sid string,
	partnerID uint,
	fields PolicyOverrideFields,
	notes string,
	version int,
	createdAt, updatedAt time.Time,
) (*PolicyOverride, error) {
	if overrideID == 0 {
		return nil, fmt.Errorf("policy override ID cannot be zero")
	}
	if partnerID == 0 {
		return nil, fmt.Errorf("partner ID cannot be zero")
	}

	return &PolicyOverride{
		id:                  overrideID,
		sid:                 sid,
		partnerID:           partnerID,
		allowFreePlan:       fields.AllowFreePlan,
		allowPartnerGateway: fields.AllowPartnerGateway,
		allowOfflineBilling: fields.AllowOfflineBilling,
		maxPlans:            fields.MaxPlans,
		minPaidPriceCents:   fields.MinPaidPriceCents,
		maxModulesPerPlan:   fields.MaxModulesPerPlan,
		maxFeaturesPerPlan:  fields.MaxFeaturesPerPlan,
		maxTrialDays:        fields.MaxTrialDays,
		txFeeMaxPercent:     fields.TxFeeMaxPercent,
		txFeeMaxFixedCents:  fields.TxFeeMaxFixedCents,
		notes:               notes,
		version:             version,
		createdAt:           createdAt,
		updatedAt:           updatedAt,
	}, nil
}

func (o *PolicyOverride) ID() uint        { return o.id }
func (o *PolicyOverride) SID() string     { return o.sid }
func (o *PolicyOverride) PartnerID() uint { return o.partnerID }

func (o *PolicyOverride) AllowFreePlan() vo.BoolOverride       { return o.allowFreePlan }
func (o *PolicyOverride) AllowPartnerGateway() vo.BoolOverride { return o.allowPartnerGateway }
func (o *PolicyOverride) AllowOfflineBilling() vo.BoolOverride { return o.allowOfflineBilling }
func (o *PolicyOverride) MaxPlans() vo.IntOverride             { return o.maxPlans }
func (o *PolicyOverride) MinPaidPriceCents() vo.IntOverride    { return o.minPaidPriceCents }
func (o *PolicyOverride) MaxModulesPerPlan() vo.IntOverride    { return o.maxModulesPerPlan }
func (o *PolicyOverride) MaxFeaturesPerPlan() vo.IntOverride   { return o.maxFeaturesPerPlan }
func (o *PolicyOverride) MaxTrialDays() vo.IntOverride         { return o.maxTrialDays }
func (o *PolicyOverride) TxFeeMaxPercent() vo.FloatOverride    { return o.txFeeMaxPercent }
func (o *PolicyOverride) TxFeeMaxFixedCents() vo.IntOverride   { return o.txFeeMaxFixedCents }

func (o *PolicyOverride) Notes() string        { return o.notes }
func (o *PolicyOverride) Version() int         { return o.version }
func (o *PolicyOverride) CreatedAt() time.Time { return o.createdAt }
func (o *PolicyOverride) UpdatedAt() time.Time { return o.updatedAt }

// Fields returns the current tri-state values.
func (o *PolicyOverride) Fields() PolicyOverrideFields {
	return PolicyOverrideFields{
		AllowFreePlan:       o.allowFreePlan,
		AllowPartnerGateway: o.allowPartnerGateway,
		AllowOfflineBilling: o.allowOfflineBilling,
		MaxPlans:            o.maxPlans,
		MinPaidPriceCents:   o.minPaidPriceCents,
		MaxModulesPerPlan:   o.maxModulesPerPlan,
		MaxFeaturesPerPlan:  o.maxFeaturesPerPlan,
		MaxTrialDays:        o.maxTrialDays,
		TxFeeMaxPercent:     o.txFeeMaxPercent,
		TxFeeMaxFixedCents:  o.txFeeMaxFixedCents,
	}
}

// SetID sets the override ID (only for persistence layer use)
func (o *PolicyOverride) SetID(overrideID uint) error {
	if o.id != 0 {
		return fmt.Errorf("policy override ID is already set")
	}
	if overrideID == 0 {
		return fmt.Errorf("policy override ID cannot be zero")
	}
	o.id = overrideID
	return nil
}

// BoolField names a cycleable boolean override field.
type BoolField string

const (
	FieldAllowFreePlan       BoolField = "allow_free_plan"
	FieldAllowPartnerGateway BoolField = "allow_partner_gateway"
	FieldAllowOfflineBilling BoolField = "allow_offline_billing"
)

// CycleBoolField advances a boolean field through inherit -> true -> false ->
// inherit. Cycling is the only mutation path the editor exposes for boolean
// override fields; there is no partial override below field granularity.
func (o *PolicyOverride) CycleBoolField(field BoolField) error {
	switch field {
	case FieldAllowFreePlan:
		o.allowFreePlan = o.allowFreePlan.Cycle()
	case FieldAllowPartnerGateway:
		o.allowPartnerGateway = o.allowPartnerGateway.Cycle()
	case FieldAllowOfflineBilling:
		o.allowOfflineBilling = o.allowOfflineBilling.Cycle()
	default:
		return fmt.Errorf("unknown boolean policy field: %s", field)
	}
	o.touch()
	return nil
}

// SetLimits replaces the numeric override fields in one write.
func (o *PolicyOverride) SetLimits(
	maxPlans, minPaidPriceCents, maxModulesPerPlan, maxFeaturesPerPlan, maxTrialDays vo.IntOverride,
	txFeeMaxPercent vo.FloatOverride,
	txFeeMaxFixedCents vo.IntOverride,
) error {
	if v, set := txFeeMaxPercent.Value(); set && (v < 0 || v > 1) {
		return fmt.Errorf("transaction fee percent cap must be between 0 and 1")
	}
	for _, field := range []vo.IntOverride{maxPlans, minPaidPriceCents, maxModulesPerPlan, maxFeaturesPerPlan, maxTrialDays, txFeeMaxFixedCents} {
		if v, set := field.Value(); set && v < 0 {
			return fmt.Errorf("policy limits cannot be negative")
		}
	}

	o.maxPlans = maxPlans
	o.minPaidPriceCents = minPaidPriceCents
	o.maxModulesPerPlan = maxModulesPerPlan
	o.maxFeaturesPerPlan = maxFeaturesPerPlan
	o.maxTrialDays = maxTrialDays
	o.txFeeMaxPercent = txFeeMaxPercent
	o.txFeeMaxFixedCents = txFeeMaxFixedCents
	o.touch()
	return nil
}

// SetNotes updates the operator notes; display only, never business logic.
func (o *PolicyOverride) SetNotes(notes string) {
	o.notes = notes
	o.touch()
}

// IsAllInherit reports whether every field inherits, i.e. the override row is
// semantically equivalent to no row at all.
func (o *PolicyOverride) IsAllInherit() bool {
	return o.allowFreePlan.IsInherit() &&
		o.allowPartnerGateway.IsInherit() &&
		o.allowOfflineBilling.IsInherit() &&
		o.maxPlans.IsInherit() &&
		o.minPaidPriceCents.IsInherit() &&
		o.maxModulesPerPlan.IsInherit() &&
		o.maxFeaturesPerPlan.IsInherit() &&
		o.maxTrialDays.IsInherit() &&
		o.txFeeMaxPercent.IsInherit() &&
		o.txFeeMaxFixedCents.IsInherit()
}

func (o *PolicyOverride) touch() {
	o.updatedAt = biztime.NowUTC()
	o.version++
}
