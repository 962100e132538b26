// Package valueobjects provides value objects for the billing domain.
package valueobjects

import "fmt"

// Money is an amount in integer minor units (centavos). All monetary math in
// the engine happens in minor units to avoid floating-point drift.
type Money struct {
	amountInCents int64
	currency      string
}

func NewMoney(amountInCents int64, currency string) Money {
	if currency == "" {
		currency = "BRL"
	}
	return Money{
		amountInCents: amountInCents,
		currency:      currency,
	}
}

func (m Money) AmountInCents() int64 {
	return m.amountInCents
}

func (m Money) Currency() string {
	return m.currency
}

func (m Money) AmountInReais() float64 {
	return float64(m.amountInCents) / 100.0
}

func (m Money) Equals(other Money) bool {
	return m.amountInCents == other.amountInCents && m.currency == other.currency
}

func (m Money) IsNegative() bool {
	return m.amountInCents < 0
}

func (m Money) String() string {
	return fmt.Sprintf("%.2f %s", m.AmountInReais(), m.currency)
}
