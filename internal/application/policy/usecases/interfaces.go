package usecases

import (
	"context"

	"github.com/prato-inc/prato/internal/domain/policy"
)

// EffectivePolicyCache is the read-through cache in front of policy
// resolution. Misses return found=false, never an error.
type EffectivePolicyCache interface {
	Get(ctx context.Context, partnerID uint) (policy.EffectivePolicy, bool, error)
	Set(ctx context.Context, partnerID uint, ep policy.EffectivePolicy) error
	Invalidate(ctx context.Context, partnerID uint) error
	InvalidateAll(ctx context.Context) error
}
