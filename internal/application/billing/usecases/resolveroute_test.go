package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/prato-inc/prato/internal/domain/billing"
	vo "github.com/prato-inc/prato/internal/domain/billing/valueobjects"
)

func uintPtr(v uint) *uint    { return &v }
func int64Ptr(v int64) *int64 { return &v }

func snapshotRule(t *testing.T, ruleID uint, scope vo.RuleScope, scopeID *uint, providerID uint, planID *uint, priority int) *billing.AvailabilityRule {
	t.Helper()
	now := time.Now().UTC()
	rule, err := billing.ReconstructAvailabilityRule(
		ruleID,
		"rule_test",
		billing.AvailabilityRuleParams{
			Scope:      scope,
			ScopeID:    scopeID,
			ProviderID: providerID,
			PlanID:     planID,
			Priority:   priority,
		},
		true,
		1,
		now, now,
	)
	require.NoError(t, err)
	return rule
}

func snapshotProvider(t *testing.T, providerID uint, active bool) *billing.PSPProvider {
	t.Helper()
	now := time.Now().UTC()
	provider, err := billing.ReconstructPSPProvider(
		providerID,
		"psp_test",
		billing.PSPProviderParams{
			Name:                  "Pagou",
			Slug:                  "pagou",
			SupportsTxid:          true,
			DefaultPercentRate:    0.015,
			DefaultFixedRateCents: 10,
		},
		active,
		1,
		now, now,
	)
	require.NoError(t, err)
	return provider
}

func snapshotPlan(t *testing.T, planID uint, active bool) *billing.PricingPlan {
	t.Helper()
	now := time.Now().UTC()
	plan, err := billing.ReconstructPricingPlan(
		planID,
		"plan_test",
		billing.PricingPlanParams{
			Name:        "Plano Essencial",
			Slug:        "essencial",
			PricingType: vo.PricingTypeHibrido,
			PercentRate: 0.0199,
			FixedRateCents: 30,
			MinFeeCents:    50,
			MaxFeeCents:    int64Ptr(900),
		},
		active,
		1,
		now, now,
	)
	require.NoError(t, err)
	return plan
}

func TestResolveRoute_PlanScheduleWins(t *testing.T) {
	snapshotRepo := new(mockSnapshotRepo)
	snapshotRepo.On("LoadRouteSnapshot", mock.Anything).Return(&billing.RouteSnapshot{
		Rules: []*billing.AvailabilityRule{
			snapshotRule(t, 1, vo.RuleScopeTenant, uintPtr(42), 1, uintPtr(10), 5),
		},
		Providers: map[uint]*billing.PSPProvider{1: snapshotProvider(t, 1, true)},
		Plans:     map[uint]*billing.PricingPlan{10: snapshotPlan(t, 10, true)},
	}, nil)

	uc := NewResolveRouteUseCase(snapshotRepo, noopLogger{})
	result, err := uc.Execute(context.Background(), ResolveRouteCommand{TenantID: 42})
	require.NoError(t, err)

	assert.Equal(t, "tenant", result.Scope)
	require.NotNil(t, result.Plan)
	assert.Equal(t, 0.0199, result.FeeSchedule.PercentRate)
	assert.Equal(t, int64(50), result.FeeSchedule.MinFeeCents)
}

func TestResolveRoute_ProviderDefaultsWhenNoPlanPinned(t *testing.T) {
	snapshotRepo := new(mockSnapshotRepo)
	snapshotRepo.On("LoadRouteSnapshot", mock.Anything).Return(&billing.RouteSnapshot{
		Rules: []*billing.AvailabilityRule{
			snapshotRule(t, 1, vo.RuleScopeGlobal, nil, 1, nil, 1),
		},
		Providers: map[uint]*billing.PSPProvider{1: snapshotProvider(t, 1, true)},
		Plans:     map[uint]*billing.PricingPlan{},
	}, nil)

	uc := NewResolveRouteUseCase(snapshotRepo, noopLogger{})
	result, err := uc.Execute(context.Background(), ResolveRouteCommand{TenantID: 42})
	require.NoError(t, err)

	assert.Nil(t, result.Plan)
	assert.Equal(t, 0.015, result.FeeSchedule.PercentRate)
	assert.Equal(t, int64(10), result.FeeSchedule.FixedFeeCents)
	assert.Equal(t, int64(0), result.FeeSchedule.MinFeeCents)
	assert.Nil(t, result.FeeSchedule.MaxFeeCents)
}

func TestResolveRoute_DanglingPlanFallsToNextCandidate(t *testing.T) {
	// The best rule pins plan 99, which is gone from the snapshot; the
	// resolver must skip it and land on the global rule.
	snapshotRepo := new(mockSnapshotRepo)
	snapshotRepo.On("LoadRouteSnapshot", mock.Anything).Return(&billing.RouteSnapshot{
		Rules: []*billing.AvailabilityRule{
			snapshotRule(t, 1, vo.RuleScopeTenant, uintPtr(42), 1, uintPtr(99), 5),
			snapshotRule(t, 2, vo.RuleScopeGlobal, nil, 1, nil, 1),
		},
		Providers: map[uint]*billing.PSPProvider{1: snapshotProvider(t, 1, true)},
		Plans:     map[uint]*billing.PricingPlan{},
	}, nil)

	uc := NewResolveRouteUseCase(snapshotRepo, noopLogger{})
	result, err := uc.Execute(context.Background(), ResolveRouteCommand{TenantID: 42})
	require.NoError(t, err)
	assert.Equal(t, "global", result.Scope)
}

func TestResolveRoute_InactiveProviderSkipped(t *testing.T) {
	snapshotRepo := new(mockSnapshotRepo)
	snapshotRepo.On("LoadRouteSnapshot", mock.Anything).Return(&billing.RouteSnapshot{
		Rules: []*billing.AvailabilityRule{
			snapshotRule(t, 1, vo.RuleScopeTenant, uintPtr(42), 1, nil, 5),
			snapshotRule(t, 2, vo.RuleScopeGlobal, nil, 2, nil, 1),
		},
		Providers: map[uint]*billing.PSPProvider{
			1: snapshotProvider(t, 1, false),
			2: snapshotProvider(t, 2, true),
		},
		Plans: map[uint]*billing.PricingPlan{},
	}, nil)

	uc := NewResolveRouteUseCase(snapshotRepo, noopLogger{})
	result, err := uc.Execute(context.Background(), ResolveRouteCommand{TenantID: 42})
	require.NoError(t, err)
	assert.Equal(t, "global", result.Scope)
}

func TestResolveRoute_NoRouteMatched(t *testing.T) {
	snapshotRepo := new(mockSnapshotRepo)
	snapshotRepo.On("LoadRouteSnapshot", mock.Anything).Return(&billing.RouteSnapshot{
		Rules:     nil,
		Providers: map[uint]*billing.PSPProvider{},
		Plans:     map[uint]*billing.PricingPlan{},
	}, nil)

	uc := NewResolveRouteUseCase(snapshotRepo, noopLogger{})
	_, err := uc.Execute(context.Background(), ResolveRouteCommand{TenantID: 42})
	assert.ErrorIs(t, err, billing.ErrNoRouteMatched)
}

func TestResolveRoute_AllCandidatesDanglingIsNoMatch(t *testing.T) {
	snapshotRepo := new(mockSnapshotRepo)
	snapshotRepo.On("LoadRouteSnapshot", mock.Anything).Return(&billing.RouteSnapshot{
		Rules: []*billing.AvailabilityRule{
			snapshotRule(t, 1, vo.RuleScopeTenant, uintPtr(42), 9, nil, 5),
		},
		Providers: map[uint]*billing.PSPProvider{},
		Plans:     map[uint]*billing.PricingPlan{},
	}, nil)

	uc := NewResolveRouteUseCase(snapshotRepo, noopLogger{})
	_, err := uc.Execute(context.Background(), ResolveRouteCommand{TenantID: 42})
	assert.ErrorIs(t, err, billing.ErrNoRouteMatched)
}

func TestComputeFee_EndToEnd(t *testing.T) {
	snapshotRepo := new(mockSnapshotRepo)
	snapshotRepo.On("LoadRouteSnapshot", mock.Anything).Return(&billing.RouteSnapshot{
		Rules: []*billing.AvailabilityRule{
			snapshotRule(t, 1, vo.RuleScopeTenant, uintPtr(42), 1, uintPtr(10), 5),
		},
		Providers: map[uint]*billing.PSPProvider{1: snapshotProvider(t, 1, true)},
		Plans:     map[uint]*billing.PricingPlan{10: snapshotPlan(t, 10, true)},
	}, nil)

	resolve := NewResolveRouteUseCase(snapshotRepo, noopLogger{})
	uc := NewComputeFeeUseCase(resolve, noopLogger{})

	// 4500 * 0.0199 = 89.55 -> 90, plus 30 fixed = 120.
	result, err := uc.Execute(context.Background(), ComputeFeeCommand{TenantID: 42, AmountCents: 4500})
	require.NoError(t, err)
	assert.Equal(t, int64(120), result.TotalFeeCents)
	assert.Equal(t, "BRL", result.Currency)
}

func TestComputeFee_NegativeAmountRejectedBeforeResolving(t *testing.T) {
	snapshotRepo := new(mockSnapshotRepo)
	resolve := NewResolveRouteUseCase(snapshotRepo, noopLogger{})
	uc := NewComputeFeeUseCase(resolve, noopLogger{})

	_, err := uc.Execute(context.Background(), ComputeFeeCommand{TenantID: 42, AmountCents: -100})
	assert.ErrorIs(t, err, billing.ErrInvalidAmount)
	snapshotRepo.AssertNotCalled(t, "LoadRouteSnapshot", mock.Anything)
}
