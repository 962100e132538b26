package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProviderParams() PSPProviderParams {
	return PSPProviderParams{
		Name:                  "Pagou",
		Slug:                  "pagou",
		SupportsTxid:          true,
		SupportsWebhook:       true,
		DefaultPercentRate:    0.015,
		DefaultFixedRateCents: 10,
		PricingModel:          "hibrido",
	}
}

func TestNewPSPProvider(t *testing.T) {
	provider, err := NewPSPProvider(validProviderParams())
	require.NoError(t, err)

	assert.True(t, provider.IsActive())
	assert.Equal(t, 1, provider.Version())
	assert.Contains(t, provider.SID(), "psp_")
	assert.Equal(t, "pagou", provider.Slug())
	assert.True(t, provider.SupportsTxid())
	assert.True(t, provider.SupportsWebhook())
	assert.False(t, provider.SupportsSubaccount())
	assert.Equal(t, "hibrido", provider.PricingModel())
}

func TestNewPSPProvider_EmptyPricingModelDefaultsToHibrido(t *testing.T) {
	params := validProviderParams()
	params.PricingModel = ""

	provider, err := NewPSPProvider(params)
	require.NoError(t, err)
	assert.Equal(t, "hibrido", provider.PricingModel())
}

func TestNewPSPProvider_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*PSPProviderParams)
	}{
		{"empty name", func(p *PSPProviderParams) { p.Name = "" }},
		{"empty slug", func(p *PSPProviderParams) { p.Slug = "" }},
		{"percent above one", func(p *PSPProviderParams) { p.DefaultPercentRate = 1.2 }},
		{"negative percent", func(p *PSPProviderParams) { p.DefaultPercentRate = -0.01 }},
		{"negative fixed", func(p *PSPProviderParams) { p.DefaultFixedRateCents = -1 }},
		{"invalid pricing model", func(p *PSPProviderParams) { p.PricingModel = "flat" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := validProviderParams()
			tt.mutate(&params)
			_, err := NewPSPProvider(params)
			assert.Error(t, err)
		})
	}
}

func TestPSPProvider_UpdateBumpsVersion(t *testing.T) {
	provider, err := NewPSPProvider(validProviderParams())
	require.NoError(t, err)

	params := provider.Params()
	params.Name = "Pagou Pagamentos"
	params.SupportsSubaccount = true
	require.NoError(t, provider.Update(params))

	assert.Equal(t, "Pagou Pagamentos", provider.Name())
	assert.True(t, provider.SupportsSubaccount())
	assert.Equal(t, 2, provider.Version())
}

func TestPSPProvider_DeactivateActivate(t *testing.T) {
	provider, err := NewPSPProvider(validProviderParams())
	require.NoError(t, err)

	provider.Deactivate()
	assert.False(t, provider.IsActive())

	// no-op on an already inactive provider
	version := provider.Version()
	provider.Deactivate()
	assert.Equal(t, version, provider.Version())

	provider.Activate()
	assert.True(t, provider.IsActive())
}

func TestPSPProvider_DefaultFeeSchedule(t *testing.T) {
	provider, err := NewPSPProvider(validProviderParams())
	require.NoError(t, err)

	schedule := provider.DefaultFeeSchedule()
	assert.Equal(t, 0.015, schedule.PercentRate())
	assert.Equal(t, int64(10), schedule.FixedFeeCents())
	assert.False(t, schedule.IsSubsidized())
}
