package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/prato-inc/prato/internal/domain/policy/valueobjects"
)

func testGlobalPolicy(t *testing.T) *GlobalPolicy {
	t.Helper()
	global, err := NewGlobalPolicy(GlobalPolicyParams{
		AllowFreePlan:       false,
		AllowPartnerGateway: true,
		AllowOfflineBilling: false,
		MaxPlans:            10,
		MinPaidPriceCents:   4990,
		MaxModulesPerPlan:   8,
		MaxFeaturesPerPlan:  30,
		MaxTrialDays:        14,
		TxFeeMaxPercent:     0.05,
		TxFeeMaxFixedCents:  200,
	})
	require.NoError(t, err)
	return global
}

func TestResolveEffectivePolicy_NoOverrideMatchesGlobal(t *testing.T) {
	global := testGlobalPolicy(t)

	effective := ResolveEffectivePolicy(global, nil)

	assert.Equal(t, global.AllowFreePlan(), effective.AllowFreePlan)
	assert.Equal(t, global.AllowPartnerGateway(), effective.AllowPartnerGateway)
	assert.Equal(t, global.AllowOfflineBilling(), effective.AllowOfflineBilling)
	assert.Equal(t, global.MaxPlans(), effective.MaxPlans)
	assert.Equal(t, global.MinPaidPriceCents(), effective.MinPaidPriceCents)
	assert.Equal(t, global.MaxModulesPerPlan(), effective.MaxModulesPerPlan)
	assert.Equal(t, global.MaxFeaturesPerPlan(), effective.MaxFeaturesPerPlan)
	assert.Equal(t, global.MaxTrialDays(), effective.MaxTrialDays)
	assert.Equal(t, global.TxFeeMaxPercent(), effective.TxFeeMaxPercent)
	assert.Equal(t, global.TxFeeMaxFixedCents(), effective.TxFeeMaxFixedCents)
}

func TestResolveEffectivePolicy_AllInheritOverrideMatchesGlobal(t *testing.T) {
	global := testGlobalPolicy(t)
	override, err := NewPolicyOverride(42)
	require.NoError(t, err)
	require.True(t, override.IsAllInherit())

	withOverride := ResolveEffectivePolicy(global, override)
	withoutOverride := ResolveEffectivePolicy(global, nil)

	assert.Equal(t, withoutOverride, withOverride)
}

func TestResolveEffectivePolicy_OverrideDominates(t *testing.T) {
	global := testGlobalPolicy(t)
	override, err := NewPolicyOverride(42)
	require.NoError(t, err)

	// global says false; override forces true
	require.NoError(t, override.CycleBoolField(FieldAllowFreePlan))
	require.NoError(t, override.SetLimits(
		vo.SetInt(3),
		vo.InheritInt(),
		vo.InheritInt(),
		vo.InheritInt(),
		vo.SetInt(30),
		vo.SetFloat(0.02),
		vo.InheritInt(),
	))

	effective := ResolveEffectivePolicy(global, override)

	assert.True(t, effective.AllowFreePlan)
	assert.Equal(t, int64(3), effective.MaxPlans)
	assert.Equal(t, int64(30), effective.MaxTrialDays)
	assert.Equal(t, 0.02, effective.TxFeeMaxPercent)
	// inheriting fields stay global
	assert.Equal(t, global.MinPaidPriceCents(), effective.MinPaidPriceCents)
	assert.Equal(t, global.TxFeeMaxFixedCents(), effective.TxFeeMaxFixedCents)
	assert.Equal(t, global.AllowPartnerGateway(), effective.AllowPartnerGateway)
}

func TestResolveEffectivePolicy_ExplicitFalseIsNotInherit(t *testing.T) {
	global := testGlobalPolicy(t)
	override, err := NewPolicyOverride(42)
	require.NoError(t, err)

	// global says true for partner gateways; cycle twice to force false
	require.NoError(t, override.CycleBoolField(FieldAllowPartnerGateway))
	require.NoError(t, override.CycleBoolField(FieldAllowPartnerGateway))

	effective := ResolveEffectivePolicy(global, override)

	assert.False(t, effective.AllowPartnerGateway)
}

func TestBoolOverrideCycle(t *testing.T) {
	field := vo.InheritBool()

	field = field.Cycle()
	v, set := field.Value()
	assert.True(t, set)
	assert.True(t, v)

	field = field.Cycle()
	v, set = field.Value()
	assert.True(t, set)
	assert.False(t, v)

	field = field.Cycle()
	assert.True(t, field.IsInherit())
}

func TestPolicyOverride_CycleUnknownField(t *testing.T) {
	override, err := NewPolicyOverride(1)
	require.NoError(t, err)

	err = override.CycleBoolField(BoolField("no_such_field"))
	assert.Error(t, err)
}

func TestPolicyOverride_SetLimitsValidation(t *testing.T) {
	override, err := NewPolicyOverride(1)
	require.NoError(t, err)

	err = override.SetLimits(
		vo.SetInt(-1),
		vo.InheritInt(),
		vo.InheritInt(),
		vo.InheritInt(),
		vo.InheritInt(),
		vo.InheritFloat(),
		vo.InheritInt(),
	)
	assert.Error(t, err)

	err = override.SetLimits(
		vo.InheritInt(),
		vo.InheritInt(),
		vo.InheritInt(),
		vo.InheritInt(),
		vo.InheritInt(),
		vo.SetFloat(1.5),
		vo.InheritInt(),
	)
	assert.Error(t, err)
}

func TestPolicyOverride_IsAllInheritAfterFullCycle(t *testing.T) {
	override, err := NewPolicyOverride(1)
	require.NoError(t, err)

	require.NoError(t, override.CycleBoolField(FieldAllowOfflineBilling))
	assert.False(t, override.IsAllInherit())

	require.NoError(t, override.CycleBoolField(FieldAllowOfflineBilling))
	require.NoError(t, override.CycleBoolField(FieldAllowOfflineBilling))
	assert.True(t, override.IsAllInherit())
}

func TestGlobalPolicy_UpdateValidation(t *testing.T) {
	global := testGlobalPolicy(t)

	params := global.Params()
	params.TxFeeMaxPercent = 1.2
	assert.Error(t, global.Update(params))

	params = global.Params()
	params.MinPaidPriceCents = -1
	assert.Error(t, global.Update(params))

	params = global.Params()
	params.MaxPlans = 25
	require.NoError(t, global.Update(params))
	assert.Equal(t, int64(25), global.MaxPlans())
	assert.Equal(t, 2, global.Version())
}
