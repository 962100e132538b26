// Package valueobjects provides value objects for the policy domain.
package valueobjects

// BoolOverride is a tri-state boolean override field: inherit the global
// value, or force true/false. The zero value is inherit, which keeps
// "explicitly set to false" distinct from "not set at all".
type BoolOverride struct {
	set   bool
	value bool
}

// InheritBool returns an inheriting BoolOverride.
func InheritBool() BoolOverride {
	return BoolOverride{}
}

// SetBool returns a BoolOverride forcing the given value.
func SetBool(v bool) BoolOverride {
	return BoolOverride{set: true, value: v}
}

// BoolFromPtr builds a BoolOverride from a nullable column value.
func BoolFromPtr(p *bool) BoolOverride {
	if p == nil {
		return InheritBool()
	}
	return SetBool(*p)
}

// IsInherit reports whether the field inherits the global value.
func (o BoolOverride) IsInherit() bool {
	return !o.set
}

// Value returns the forced value and whether one is set.
func (o BoolOverride) Value() (bool, bool) {
	return o.value, o.set
}

// Ptr returns the nullable column representation.
func (o BoolOverride) Ptr() *bool {
	if !o.set {
		return nil
	}
	v := o.value
	return &v
}

// Cycle advances the field through its three states:
// inherit -> true -> false -> inherit. This is the only mutation path the
// policy editor exposes for boolean override fields.
func (o BoolOverride) Cycle() BoolOverride {
	switch {
	case !o.set:
		return SetBool(true)
	case o.value:
		return SetBool(false)
	default:
		return InheritBool()
	}
}

// Resolve returns the override value when set, otherwise the global value.
func (o BoolOverride) Resolve(global bool) bool {
	if o.set {
		return o.value
	}
	return global
}

// IntOverride is a tri-state integer override field: inherit or force a value.
type IntOverride struct {
	set   bool
	value int64
}

// InheritInt returns an inheriting IntOverride.
func InheritInt() IntOverride {
	return IntOverride{}
}

// SetInt returns an IntOverride forcing the given value.
func SetInt(v int64) IntOverride {
	return IntOverride{set: true, value: v}
}

// IntFromPtr builds an IntOverride from a nullable column value.
func IntFromPtr(p *int64) IntOverride {
	if p == nil {
		return InheritInt()
	}
	return SetInt(*p)
}

// IsInherit reports whether the field inherits the global value.
func (o IntOverride) IsInherit() bool {
	return !o.set
}

// Value returns the forced value and whether one is set.
func (o IntOverride) Value() (int64, bool) {
	return o.value, o.set
}

// Ptr returns the nullable column representation.
func (o IntOverride) Ptr() *int64 {
	if !o.set {
		return nil
	}
	v := o.value
	return &v
}

// Resolve returns the override value when set, otherwise the global value.
func (o IntOverride) Resolve(global int64) int64 {
	if o.set {
		return o.value
	}
	return global
}

// FloatOverride is a tri-state decimal override field, used for the
// transaction fee percent cap (stored as a decimal in [0,1]).
type FloatOverride struct {
	set   bool
	value float64
}

// InheritFloat returns an inheriting FloatOverride.
func InheritFloat() FloatOverride {
	return FloatOverride{}
}

// SetFloat returns a FloatOverride forcing the given value.
func SetFloat(v float64) FloatOverride {
	return FloatOverride{set: true, value: v}
}

// FloatFromPtr builds a FloatOverride from a nullable column value.
func FloatFromPtr(p *float64) FloatOverride {
	if p == nil {
		return InheritFloat()
	}
	return SetFloat(*p)
}

// IsInherit reports whether the field inherits the global value.
func (o FloatOverride) IsInherit() bool {
	return !o.set
}

// Value returns the forced value and whether one is set.
func (o FloatOverride) Value() (float64, bool) {
	return o.value, o.set
}

// Ptr returns the nullable column representation.
func (o FloatOverride) Ptr() *float64 {
	if !o.set {
		return nil
	}
	v := o.value
	return &v
}

// Resolve returns the override value when set, otherwise the global value.
func (o FloatOverride) Resolve(global float64) float64 {
	if o.set {
		return o.value
	}
	return global
}
