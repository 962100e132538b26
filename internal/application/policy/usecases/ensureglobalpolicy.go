package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/prato-inc/prato/internal/domain/policy"
	"github.com/prato-inc/prato/internal/shared/logger"
)

// EnsureGlobalPolicyUseCase seeds the singleton global policy row when it is
// missing. Runs at server startup so every later read and update can assume
// the row exists; on an already-seeded database it is a no-op.
type EnsureGlobalPolicyUseCase struct {
	globalRepo policy.GlobalPolicyRepository
	logger     logger.Interface
}

func NewEnsureGlobalPolicyUseCase(
	globalRepo policy.GlobalPolicyRepository,
	logger logger.Interface,
) *EnsureGlobalPolicyUseCase {
	return &EnsureGlobalPolicyUseCase{
		globalRepo: globalRepo,
		logger:     logger,
	}
}

func (uc *EnsureGlobalPolicyUseCase) Execute(ctx context.Context) error {
	_, err := uc.globalRepo.Get(ctx)
	if err == nil {
		return nil
	}
	if !stderrors.Is(err, policy.ErrGlobalPolicyMissing) {
		uc.logger.Errorw("failed to load global policy", "error", err)
		return fmt.Errorf("failed to load global policy: %w", err)
	}

	global, err := policy.NewGlobalPolicy(policy.DefaultGlobalPolicyParams())
	if err != nil {
		return fmt.Errorf("failed to build default global policy: %w", err)
	}
	if err := uc.globalRepo.Save(ctx, global); err != nil {
		uc.logger.Errorw("failed to seed global policy", "error", err)
		return fmt.Errorf("failed to seed global policy: %w", err)
	}

	uc.logger.Infow("global policy seeded with platform defaults")
	return nil
}
