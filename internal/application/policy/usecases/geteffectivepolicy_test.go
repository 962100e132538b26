package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/prato-inc/prato/internal/domain/policy"
	vo "github.com/prato-inc/prato/internal/domain/policy/valueobjects"
)

func testGlobalPolicy(t *testing.T) *policy.GlobalPolicy {
	t.Helper()
	now := time.Now().UTC()
	global, err := policy.ReconstructGlobalPolicy(1, policy.GlobalPolicyParams{
		AllowFreePlan:       true,
		AllowPartnerGateway: false,
		AllowOfflineBilling: true,
		MaxPlans:            10,
		MinPaidPriceCents:   990,
		MaxModulesPerPlan:   20,
		MaxFeaturesPerPlan:  50,
		MaxTrialDays:        30,
		TxFeeMaxPercent:     0.05,
		TxFeeMaxFixedCents:  200,
	}, 1, now, now)
	require.NoError(t, err)
	return global
}

func testOverride(t *testing.T, partnerID uint) *policy.PolicyOverride {
	t.Helper()
	now := time.Now().UTC()
	fields := policy.PolicyOverrideFields{
		AllowPartnerGateway: vo.SetBool(true),
		MaxPlans:            vo.SetInt(3),
	}
	override, err := policy.ReconstructPolicyOverride(7, "pol_test", partnerID, fields, "", 1, now, now)
	require.NoError(t, err)
	return override
}

func TestGetEffectivePolicy_CacheMissResolvesAndCaches(t *testing.T) {
	globalRepo := new(mockGlobalPolicyRepo)
	overrideRepo := new(mockOverrideRepo)
	cache := new(mockPolicyCache)

	global := testGlobalPolicy(t)
	override := testOverride(t, 42)

	cache.On("Get", mock.Anything, uint(42)).Return(policy.EffectivePolicy{}, false, nil)
	globalRepo.On("Get", mock.Anything).Return(global, nil)
	overrideRepo.On("GetByPartnerID", mock.Anything, uint(42)).Return(override, nil)
	cache.On("Set", mock.Anything, uint(42), mock.Anything).Return(nil)

	uc := NewGetEffectivePolicyUseCase(globalRepo, overrideRepo, cache, noopLogger{})
	result, err := uc.Execute(context.Background(), 42)
	require.NoError(t, err)

	assert.True(t, result.AllowPartnerGateway, "overridden field wins")
	assert.Equal(t, int64(3), result.MaxPlans)
	assert.True(t, result.AllowFreePlan, "inherited field keeps global value")
	assert.Equal(t, int64(990), result.MinPaidPriceCents)
	cache.AssertCalled(t, "Set", mock.Anything, uint(42), mock.Anything)
}

func TestGetEffectivePolicy_CacheHitSkipsRepos(t *testing.T) {
	globalRepo := new(mockGlobalPolicyRepo)
	overrideRepo := new(mockOverrideRepo)
	cache := new(mockPolicyCache)

	cached := policy.EffectivePolicy{AllowFreePlan: true, MaxPlans: 5}
	cache.On("Get", mock.Anything, uint(42)).Return(cached, true, nil)

	uc := NewGetEffectivePolicyUseCase(globalRepo, overrideRepo, cache, noopLogger{})
	result, err := uc.Execute(context.Background(), 42)
	require.NoError(t, err)

	assert.Equal(t, int64(5), result.MaxPlans)
	globalRepo.AssertNotCalled(t, "Get", mock.Anything)
	overrideRepo.AssertNotCalled(t, "GetByPartnerID", mock.Anything, mock.Anything)
}

func TestGetEffectivePolicy_NoOverrideUsesGlobal(t *testing.T) {
	globalRepo := new(mockGlobalPolicyRepo)
	overrideRepo := new(mockOverrideRepo)
	cache := new(mockPolicyCache)

	cache.On("Get", mock.Anything, uint(42)).Return(policy.EffectivePolicy{}, false, nil)
	globalRepo.On("Get", mock.Anything).Return(testGlobalPolicy(t), nil)
	overrideRepo.On("GetByPartnerID", mock.Anything, uint(42)).Return(nil, nil)
	cache.On("Set", mock.Anything, uint(42), mock.Anything).Return(nil)

	uc := NewGetEffectivePolicyUseCase(globalRepo, overrideRepo, cache, noopLogger{})
	result, err := uc.Execute(context.Background(), 42)
	require.NoError(t, err)

	assert.False(t, result.AllowPartnerGateway)
	assert.Equal(t, int64(10), result.MaxPlans)
}

func TestGetEffectivePolicy_PartnerZeroSkipsOverrideLookup(t *testing.T) {
	globalRepo := new(mockGlobalPolicyRepo)
	overrideRepo := new(mockOverrideRepo)
	cache := new(mockPolicyCache)

	cache.On("Get", mock.Anything, uint(0)).Return(policy.EffectivePolicy{}, false, nil)
	globalRepo.On("Get", mock.Anything).Return(testGlobalPolicy(t), nil)
	cache.On("Set", mock.Anything, uint(0), mock.Anything).Return(nil)

	uc := NewGetEffectivePolicyUseCase(globalRepo, overrideRepo, cache, noopLogger{})
	_, err := uc.Execute(context.Background(), 0)
	require.NoError(t, err)

	overrideRepo.AssertNotCalled(t, "GetByPartnerID", mock.Anything, mock.Anything)
}

func TestGetEffectivePolicy_MissingGlobalIsFatal(t *testing.T) {
	globalRepo := new(mockGlobalPolicyRepo)
	overrideRepo := new(mockOverrideRepo)
	cache := new(mockPolicyCache)

	cache.On("Get", mock.Anything, uint(42)).Return(policy.EffectivePolicy{}, false, nil)
	globalRepo.On("Get", mock.Anything).Return(nil, policy.ErrGlobalPolicyMissing)

	uc := NewGetEffectivePolicyUseCase(globalRepo, overrideRepo, cache, noopLogger{})
	_, err := uc.Execute(context.Background(), 42)
	assert.ErrorIs(t, err, policy.ErrGlobalPolicyMissing)
}

func TestGetEffectivePolicy_CacheErrorFallsThrough(t *testing.T) {
	globalRepo := new(mockGlobalPolicyRepo)
	overrideRepo := new(mockOverrideRepo)
	cache := new(mockPolicyCache)

	cache.On("Get", mock.Anything, uint(42)).Return(policy.EffectivePolicy{}, false, assert.AnError)
	globalRepo.On("Get", mock.Anything).Return(testGlobalPolicy(t), nil)
	overrideRepo.On("GetByPartnerID", mock.Anything, uint(42)).Return(nil, nil)
	cache.On("Set", mock.Anything, uint(42), mock.Anything).Return(nil)

	uc := NewGetEffectivePolicyUseCase(globalRepo, overrideRepo, cache, noopLogger{})
	result, err := uc.Execute(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, int64(10), result.MaxPlans)
}
