package billing

import (
	"math"

	vo "github.com/prato-inc/prato/internal/domain/billing/valueobjects"
)

// FeeBreakdown is the result of a fee computation, split between the party
// that ultimately pays it and the platform's subsidized share. The two parts
// always sum to the total fee exactly.
type FeeBreakdown struct {
	TotalFeeCents       int64
	MerchantFeeCents    int64
	PlatformSubsidyCents int64
}

// roundHalfUpCents rounds a non-negative cent value half-up to the nearest
// integer cent.
func roundHalfUpCents(v float64) int64 {
	return int64(math.Floor(v + 0.5))
}

// ComputeFee applies a fee schedule to a transaction amount in cents.
//
// The raw fee is amount×percent plus the fixed component, rounded half-up,
// then clamped to the schedule's floor and cap. An amount of zero still pays
// the floor. Negative amounts return ErrInvalidAmount.
func ComputeFee(schedule vo.FeeSchedule, amountCents int64) (FeeBreakdown, error) {
	if amountCents < 0 {
		return FeeBreakdown{}, ErrInvalidAmount
	}

	raw := roundHalfUpCents(float64(amountCents)*schedule.PercentRate()) + schedule.FixedFeeCents()

	fee := raw
	if fee < schedule.MinFeeCents() {
		fee = schedule.MinFeeCents()
	}
	if maxFee, ok := schedule.MaxFeeCents(); ok && fee > maxFee {
		fee = maxFee
	}

	breakdown := FeeBreakdown{
		TotalFeeCents:    fee,
		MerchantFeeCents: fee,
	}
	if schedule.IsSubsidized() {
		subsidy := roundHalfUpCents(float64(fee) * schedule.SubsidyPercent() / 100)
		breakdown.PlatformSubsidyCents = subsidy
		breakdown.MerchantFeeCents = fee - subsidy
	}
	return breakdown, nil
}
