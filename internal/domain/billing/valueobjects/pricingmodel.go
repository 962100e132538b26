package valueobjects

import "fmt"

// PricingModel describes a provider's own commercial fee model, used when a
// matched rule pins no pricing plan and the provider default rates apply.
type PricingModel string

const (
	PricingModelPercentual PricingModel = "percentual"
	PricingModelFixo       PricingModel = "fixo"
	PricingModelHibrido    PricingModel = "hibrido"
)

// NewPricingModel validates and returns a PricingModel. Empty input defaults
// to hibrido, which matches a percent-plus-fixed default schedule.
func NewPricingModel(value string) (PricingModel, error) {
	if value == "" {
		return PricingModelHibrido, nil
	}
	m := PricingModel(value)
	if !m.IsValid() {
		return "", fmt.Errorf("invalid pricing model: %s", value)
	}
	return m, nil
}

func (m PricingModel) IsValid() bool {
	switch m {
	case PricingModelPercentual, PricingModelFixo, PricingModelHibrido:
		return true
	}
	return false
}

func (m PricingModel) String() string {
	return string(m)
}
