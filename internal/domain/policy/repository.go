package policy

import "context"

// GlobalPolicyRepository persists the singleton global policy row.
type GlobalPolicyRepository interface {
	// Get retrieves the global policy. Returns ErrGlobalPolicyMissing when the
	// singleton row does not exist; callers treat that as fatal configuration.
	Get(ctx context.Context) (*GlobalPolicy, error)

	// Save creates or updates the singleton row.
	Save(ctx context.Context, policy *GlobalPolicy) error
}

// OverrideRepository persists per-partner policy overrides.
type OverrideRepository interface {
	// GetByPartnerID retrieves a partner's override. Returns nil, nil when the
	// partner has no override row (pure inheritance).
	GetByPartnerID(ctx context.Context, partnerID uint) (*PolicyOverride, error)

	// Save creates or updates an override row.
	Save(ctx context.Context, override *PolicyOverride) error

	// DeleteByPartnerID removes a partner's override entirely, resetting the
	// partner to pure inheritance.
	DeleteByPartnerID(ctx context.Context, partnerID uint) error
}
