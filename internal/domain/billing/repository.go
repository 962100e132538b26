package billing

import "context"

// PricingPlanRepository persists pricing plans.
type PricingPlanRepository interface {
	Save(ctx context.Context, plan *PricingPlan) error
	FindByID(ctx context.Context, planID uint) (*PricingPlan, error)
	FindBySID(ctx context.Context, sid string) (*PricingPlan, error)
	FindBySlug(ctx context.Context, slug string) (*PricingPlan, error)
	List(ctx context.Context, activeOnly bool, offset, limit int) ([]*PricingPlan, int64, error)
	Update(ctx context.Context, plan *PricingPlan) error
	// DeleteCascade removes the plan and disables every rule still pinning
	// it, atomically. Returns the number of rules disabled.
	DeleteCascade(ctx context.Context, planID uint) (int64, error)
}

// PSPProviderRepository persists PSP providers.
type PSPProviderRepository interface {
	Save(ctx context.Context, provider *PSPProvider) error
	FindByID(ctx context.Context, providerID uint) (*PSPProvider, error)
	FindBySID(ctx context.Context, sid string) (*PSPProvider, error)
	FindBySlug(ctx context.Context, slug string) (*PSPProvider, error)
	List(ctx context.Context, activeOnly bool, offset, limit int) ([]*PSPProvider, int64, error)
	Update(ctx context.Context, provider *PSPProvider) error
	Delete(ctx context.Context, providerID uint) error
}

// AvailabilityRuleRepository persists availability rules.
type AvailabilityRuleRepository interface {
	Save(ctx context.Context, rule *AvailabilityRule) error
	FindByID(ctx context.Context, ruleID uint) (*AvailabilityRule, error)
	FindBySID(ctx context.Context, sid string) (*AvailabilityRule, error)
	List(ctx context.Context, enabledOnly bool, offset, limit int) ([]*AvailabilityRule, int64, error)
	Update(ctx context.Context, rule *AvailabilityRule) error
	Delete(ctx context.Context, ruleID uint) error
}

// CredentialRepository persists PSP credentials.
type CredentialRepository interface {
	Save(ctx context.Context, credential *Credential) error
	FindByID(ctx context.Context, credentialID uint) (*Credential, error)
	FindBySID(ctx context.Context, sid string) (*Credential, error)
	ListByProviderID(ctx context.Context, providerID uint) ([]*Credential, error)
	List(ctx context.Context, offset, limit int) ([]*Credential, int64, error)
	Update(ctx context.Context, credential *Credential) error
	Delete(ctx context.Context, credentialID uint) error
}

// RouteSnapshot is a consistent read of everything route resolution needs:
// every enabled rule plus the plans and providers they reference, keyed by
// internal ID.
type RouteSnapshot struct {
	Rules     []*AvailabilityRule
	Plans     map[uint]*PricingPlan
	Providers map[uint]*PSPProvider
}

// RouteSnapshotRepository loads routing state in a single transaction so the
// resolver never sees a rule without the referenced rows it was saved with.
type RouteSnapshotRepository interface {
	LoadRouteSnapshot(ctx context.Context) (*RouteSnapshot, error)
}
