package valueobjects

import "fmt"

// PricingType determines how a plan's fee is computed: pure percentage, pure
// fixed amount, or both combined.
type PricingType string

const (
	PricingTypePercentual PricingType = "percentual"
	PricingTypeFixo       PricingType = "fixo"
	PricingTypeHibrido    PricingType = "hibrido"
)

// NewPricingType validates and returns a PricingType.
func NewPricingType(value string) (PricingType, error) {
	pt := PricingType(value)
	if !pt.IsValid() {
		return "", fmt.Errorf("invalid pricing type: %s", value)
	}
	return pt, nil
}

func (p PricingType) IsValid() bool {
	switch p {
	case PricingTypePercentual, PricingTypeFixo, PricingTypeHibrido:
		return true
	}
	return false
}

// UsesPercent reports whether the percent rate participates in fee math.
func (p PricingType) UsesPercent() bool {
	return p == PricingTypePercentual || p == PricingTypeHibrido
}

// UsesFixed reports whether the fixed rate participates in fee math.
func (p PricingType) UsesFixed() bool {
	return p == PricingTypeFixo || p == PricingTypeHibrido
}

func (p PricingType) String() string {
	return string(p)
}
