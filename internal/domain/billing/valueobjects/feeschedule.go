package valueobjects

import "fmt"

// FeeSchedule is the resolved input to the fee calculator: either a pricing
// plan's full schedule, or a provider's default rates collapsed into a
// single-tier schedule with no floor, cap, or subsidy.
type FeeSchedule struct {
	percentRate   float64
	fixedFeeCents int64
	minFeeCents   int64
	maxFeeCents   *int64
	subsidized    bool
	subsidyPct    float64
}

// NewFeeSchedule builds a validated schedule. percentRate is a decimal in
// [0,1]; maxFeeCents nil means unbounded; subsidyPct is in [0,100] and only
// meaningful when subsidized.
func NewFeeSchedule(percentRate float64, fixedFeeCents, minFeeCents int64, maxFeeCents *int64, subsidized bool, subsidyPct float64) (FeeSchedule, error) {
	if percentRate < 0 || percentRate > 1 {
		return FeeSchedule{}, fmt.Errorf("percent rate must be between 0 and 1, got %v", percentRate)
	}
	if fixedFeeCents < 0 {
		return FeeSchedule{}, fmt.Errorf("fixed fee cannot be negative")
	}
	if minFeeCents < 0 {
		return FeeSchedule{}, fmt.Errorf("minimum fee cannot be negative")
	}
	if maxFeeCents != nil && *maxFeeCents < minFeeCents {
		return FeeSchedule{}, fmt.Errorf("maximum fee %d is below minimum fee %d", *maxFeeCents, minFeeCents)
	}
	if subsidized && (subsidyPct < 0 || subsidyPct > 100) {
		return FeeSchedule{}, fmt.Errorf("subsidy percent must be between 0 and 100, got %v", subsidyPct)
	}

	var maxCopy *int64
	if maxFeeCents != nil {
		v := *maxFeeCents
		maxCopy = &v
	}
	if !subsidized {
		subsidyPct = 0
	}

	return FeeSchedule{
		percentRate:   percentRate,
		fixedFeeCents: fixedFeeCents,
		minFeeCents:   minFeeCents,
		maxFeeCents:   maxCopy,
		subsidized:    subsidized,
		subsidyPct:    subsidyPct,
	}, nil
}

// ProviderDefaultSchedule collapses a provider's default rates into a
// single-tier schedule, equivalent to a pricing plan with no min, max, or
// subsidy. Rates are already range-checked by the provider aggregate.
func ProviderDefaultSchedule(percentRate float64, fixedFeeCents int64) FeeSchedule {
	return FeeSchedule{
		percentRate:   percentRate,
		fixedFeeCents: fixedFeeCents,
	}
}

func (f FeeSchedule) PercentRate() float64 {
	return f.percentRate
}

func (f FeeSchedule) FixedFeeCents() int64 {
	return f.fixedFeeCents
}

func (f FeeSchedule) MinFeeCents() int64 {
	return f.minFeeCents
}

// MaxFeeCents returns the cap and whether one exists.
func (f FeeSchedule) MaxFeeCents() (int64, bool) {
	if f.maxFeeCents == nil {
		return 0, false
	}
	return *f.maxFeeCents, true
}

func (f FeeSchedule) IsSubsidized() bool {
	return f.subsidized
}

func (f FeeSchedule) SubsidyPercent() float64 {
	return f.subsidyPct
}
