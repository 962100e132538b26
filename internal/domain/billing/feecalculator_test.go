package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/prato-inc/prato/internal/domain/billing/valueobjects"
)

func mustSchedule(t *testing.T, percent float64, fixed, min int64, max *int64, subsidized bool, subsidyPct float64) vo.FeeSchedule {
	t.Helper()
	s, err := vo.NewFeeSchedule(percent, fixed, min, max, subsidized, subsidyPct)
	require.NoError(t, err)
	return s
}

func int64Ptr(v int64) *int64 { return &v }

func TestComputeFee_PercentRounding(t *testing.T) {
	// R$45.00 at 1.99%: 4500 * 0.0199 = 89.55 -> rounds up to 90 cents.
	s := mustSchedule(t, 0.0199, 0, 0, nil, false, 0)

	breakdown, err := ComputeFee(s, 4500)
	require.NoError(t, err)
	assert.Equal(t, int64(90), breakdown.TotalFeeCents)
	assert.Equal(t, int64(90), breakdown.MerchantFeeCents)
	assert.Equal(t, int64(0), breakdown.PlatformSubsidyCents)
}

func TestComputeFee_HalfUpBoundary(t *testing.T) {
	// 2500 * 0.01 = exactly 25.00 -> stays 25; 2550 * 0.01 = 25.50 -> 26.
	s := mustSchedule(t, 0.01, 0, 0, nil, false, 0)

	exact, err := ComputeFee(s, 2500)
	require.NoError(t, err)
	assert.Equal(t, int64(25), exact.TotalFeeCents)

	half, err := ComputeFee(s, 2550)
	require.NoError(t, err)
	assert.Equal(t, int64(26), half.TotalFeeCents)
}

func TestComputeFee_FixedComponent(t *testing.T) {
	s := mustSchedule(t, 0.02, 40, 0, nil, false, 0)

	breakdown, err := ComputeFee(s, 10000)
	require.NoError(t, err)
	assert.Equal(t, int64(240), breakdown.TotalFeeCents)
}

func TestComputeFee_MinFeeFloor(t *testing.T) {
	s := mustSchedule(t, 0.01, 0, 50, nil, false, 0)

	breakdown, err := ComputeFee(s, 1000)
	require.NoError(t, err)
	assert.Equal(t, int64(50), breakdown.TotalFeeCents, "10 cents raw, floored to minimum")
}

func TestComputeFee_ZeroAmountStillPaysMinimum(t *testing.T) {
	s := mustSchedule(t, 0.0199, 0, 50, nil, false, 0)

	breakdown, err := ComputeFee(s, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(50), breakdown.TotalFeeCents)
	assert.Equal(t, int64(50), breakdown.MerchantFeeCents)
}

func TestComputeFee_MaxFeeCap(t *testing.T) {
	s := mustSchedule(t, 0.02, 0, 0, int64Ptr(500), false, 0)

	breakdown, err := ComputeFee(s, 100000)
	require.NoError(t, err)
	assert.Equal(t, int64(500), breakdown.TotalFeeCents, "2000 cents raw, capped at maximum")
}

func TestComputeFee_NoCapWhenAbsent(t *testing.T) {
	s := mustSchedule(t, 0.02, 0, 0, nil, false, 0)

	breakdown, err := ComputeFee(s, 100000)
	require.NoError(t, err)
	assert.Equal(t, int64(2000), breakdown.TotalFeeCents)
}

func TestComputeFee_SubsidySplitsExactly(t *testing.T) {
	// Fee of 90 cents with a 50% subsidy: 45 platform, 45 merchant.
	s := mustSchedule(t, 0.0199, 0, 0, nil, true, 50)

	breakdown, err := ComputeFee(s, 4500)
	require.NoError(t, err)
	assert.Equal(t, int64(90), breakdown.TotalFeeCents)
	assert.Equal(t, int64(45), breakdown.PlatformSubsidyCents)
	assert.Equal(t, int64(45), breakdown.MerchantFeeCents)
}

func TestComputeFee_SubsidyRoundingConserves(t *testing.T) {
	// Odd fee with a 50% subsidy: subsidy rounds half-up, merchant gets the
	// remainder so the parts always sum to the total.
	s := mustSchedule(t, 0, 91, 0, nil, true, 50)

	breakdown, err := ComputeFee(s, 1000)
	require.NoError(t, err)
	assert.Equal(t, int64(91), breakdown.TotalFeeCents)
	assert.Equal(t, int64(46), breakdown.PlatformSubsidyCents)
	assert.Equal(t, int64(45), breakdown.MerchantFeeCents)
	assert.Equal(t, breakdown.TotalFeeCents, breakdown.MerchantFeeCents+breakdown.PlatformSubsidyCents)
}

func TestComputeFee_FullSubsidy(t *testing.T) {
	s := mustSchedule(t, 0.01, 0, 0, nil, true, 100)

	breakdown, err := ComputeFee(s, 10000)
	require.NoError(t, err)
	assert.Equal(t, int64(100), breakdown.TotalFeeCents)
	assert.Equal(t, int64(100), breakdown.PlatformSubsidyCents)
	assert.Equal(t, int64(0), breakdown.MerchantFeeCents)
}

func TestComputeFee_NegativeAmount(t *testing.T) {
	s := mustSchedule(t, 0.01, 0, 0, nil, false, 0)

	_, err := ComputeFee(s, -1)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestComputeFee_Monotonic(t *testing.T) {
	s := mustSchedule(t, 0.0199, 30, 50, int64Ptr(900), false, 0)

	prev := int64(-1)
	for _, amount := range []int64{0, 1, 100, 2511, 4500, 10000, 44999, 45000, 100000} {
		breakdown, err := ComputeFee(s, amount)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, breakdown.TotalFeeCents, prev, "fee must not decrease as amount grows (amount %d)", amount)
		prev = breakdown.TotalFeeCents
	}
}

func TestComputeFee_ProviderDefaultSchedule(t *testing.T) {
	s := vo.ProviderDefaultSchedule(0.015, 10)

	breakdown, err := ComputeFee(s, 2000)
	require.NoError(t, err)
	assert.Equal(t, int64(40), breakdown.TotalFeeCents)
	assert.Equal(t, int64(0), breakdown.PlatformSubsidyCents)

	zero, err := ComputeFee(s, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(10), zero.TotalFeeCents, "no floor beyond the fixed component")
}
