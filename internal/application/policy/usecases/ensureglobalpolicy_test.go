package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/prato-inc/prato/internal/domain/policy"
)

func TestEnsureGlobalPolicy_SeedsWhenMissing(t *testing.T) {
	globalRepo := new(mockGlobalPolicyRepo)
	globalRepo.On("Get", mock.Anything).Return(nil, policy.ErrGlobalPolicyMissing)
	globalRepo.On("Save", mock.Anything, mock.MatchedBy(func(g *policy.GlobalPolicy) bool {
		return g.AllowFreePlan() && !g.AllowPartnerGateway() && g.AllowOfflineBilling()
	})).Return(nil)

	uc := NewEnsureGlobalPolicyUseCase(globalRepo, noopLogger{})
	require.NoError(t, uc.Execute(context.Background()))
	globalRepo.AssertCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestEnsureGlobalPolicy_NoopWhenPresent(t *testing.T) {
	globalRepo := new(mockGlobalPolicyRepo)
	globalRepo.On("Get", mock.Anything).Return(testGlobalPolicy(t), nil)

	uc := NewEnsureGlobalPolicyUseCase(globalRepo, noopLogger{})
	require.NoError(t, uc.Execute(context.Background()))
	globalRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestEnsureGlobalPolicy_PropagatesOtherErrors(t *testing.T) {
	globalRepo := new(mockGlobalPolicyRepo)
	globalRepo.On("Get", mock.Anything).Return(nil, fmt.Errorf("connection refused"))

	uc := NewEnsureGlobalPolicyUseCase(globalRepo, noopLogger{})
	err := uc.Execute(context.Background())
	assert.Error(t, err)
	globalRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}
