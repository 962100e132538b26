package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/prato-inc/prato/internal/domain/billing/valueobjects"
)

func validPlanParams() PricingPlanParams {
	return PricingPlanParams{
		Name:           "Plano Essencial",
		Slug:           "essencial",
		PricingType:    vo.PricingTypeHibrido,
		PercentRate:    0.0199,
		FixedRateCents: 30,
		MinFeeCents:    50,
		MaxFeeCents:    int64Ptr(900),
		IsSubsidized:   true,
		SubsidyPercent: 50,
	}
}

func TestNewPricingPlan(t *testing.T) {
	plan, err := NewPricingPlan(validPlanParams())
	require.NoError(t, err)

	assert.True(t, plan.IsActive())
	assert.Equal(t, 1, plan.Version())
	assert.Contains(t, plan.SID(), "plan_")
	assert.Equal(t, "essencial", plan.Slug())
	max, ok := plan.MaxFeeCents()
	assert.True(t, ok)
	assert.Equal(t, int64(900), max)
}

func TestNewPricingPlan_RejectsMinAboveMax(t *testing.T) {
	params := validPlanParams()
	params.MinFeeCents = 1000
	params.MaxFeeCents = int64Ptr(900)

	_, err := NewPricingPlan(params)
	assert.ErrorIs(t, err, ErrInconsistentPlan)
}

func TestNewPricingPlan_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*PricingPlanParams)
	}{
		{"empty name", func(p *PricingPlanParams) { p.Name = "" }},
		{"empty slug", func(p *PricingPlanParams) { p.Slug = "" }},
		{"percent above one", func(p *PricingPlanParams) { p.PercentRate = 1.5 }},
		{"negative percent", func(p *PricingPlanParams) { p.PercentRate = -0.01 }},
		{"negative fixed", func(p *PricingPlanParams) { p.FixedRateCents = -1 }},
		{"negative min", func(p *PricingPlanParams) { p.MinFeeCents = -1 }},
		{"subsidy above 100", func(p *PricingPlanParams) { p.SubsidyPercent = 101 }},
		{"invalid pricing type", func(p *PricingPlanParams) { p.PricingType = "flat" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := validPlanParams()
			tt.mutate(&params)
			_, err := NewPricingPlan(params)
			assert.Error(t, err)
		})
	}
}

func TestPricingPlan_Update(t *testing.T) {
	plan, err := NewPricingPlan(validPlanParams())
	require.NoError(t, err)

	params := plan.Params()
	params.PercentRate = 0.025
	params.IsSubsidized = false
	require.NoError(t, plan.Update(params))

	assert.Equal(t, 0.025, plan.PercentRate())
	assert.False(t, plan.IsSubsidized())
	assert.Equal(t, float64(0), plan.SubsidyPercent(), "subsidy cleared when not subsidized")
	assert.Equal(t, 2, plan.Version())
}

func TestPricingPlan_Deactivate(t *testing.T) {
	plan, err := NewPricingPlan(validPlanParams())
	require.NoError(t, err)

	plan.Deactivate()
	assert.False(t, plan.IsActive())
	assert.Equal(t, 2, plan.Version())

	// No-op when already inactive.
	plan.Deactivate()
	assert.Equal(t, 2, plan.Version())
}

func TestPricingPlan_FeeSchedule(t *testing.T) {
	plan, err := NewPricingPlan(validPlanParams())
	require.NoError(t, err)

	schedule, err := plan.FeeSchedule()
	require.NoError(t, err)
	assert.Equal(t, 0.0199, schedule.PercentRate())
	assert.Equal(t, int64(30), schedule.FixedFeeCents())
	assert.True(t, schedule.IsSubsidized())
}

func TestPricingPlan_FeeScheduleDropsUnusedComponents(t *testing.T) {
	params := validPlanParams()
	params.PricingType = vo.PricingTypeFixo
	params.PercentRate = 0.0199

	plan, err := NewPricingPlan(params)
	require.NoError(t, err)

	schedule, err := plan.FeeSchedule()
	require.NoError(t, err)
	assert.Equal(t, float64(0), schedule.PercentRate(), "fixed plans ignore the percent component")
	assert.Equal(t, int64(30), schedule.FixedFeeCents())
}
