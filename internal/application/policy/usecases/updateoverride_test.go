package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/prato-inc/prato/internal/domain/policy"
	"github.com/prato-inc/prato/internal/shared/errors"
)

func TestUpdateOverride_CreatesOnFirstWrite(t *testing.T) {
	overrideRepo := new(mockOverrideRepo)
	cache := new(mockPolicyCache)

	overrideRepo.On("GetByPartnerID", mock.Anything, uint(42)).Return(nil, nil)
	overrideRepo.On("Save", mock.Anything, mock.Anything).Return(nil)
	cache.On("Invalidate", mock.Anything, uint(42)).Return(nil)

	uc := NewUpdateOverrideUseCase(overrideRepo, cache, noopLogger{})
	result, err := uc.Execute(context.Background(), UpdateOverrideCommand{
		PartnerID:   42,
		CycleFields: []string{string(policy.FieldAllowPartnerGateway)},
	})
	require.NoError(t, err)

	require.NotNil(t, result.AllowPartnerGateway)
	assert.True(t, *result.AllowPartnerGateway, "first cycle lands on explicit true")
	assert.Nil(t, result.AllowFreePlan, "untouched field stays inherit")
	overrideRepo.AssertCalled(t, "Save", mock.Anything, mock.Anything)
	cache.AssertCalled(t, "Invalidate", mock.Anything, uint(42))
}

func TestUpdateOverride_ReturnToAllInheritDeletesRow(t *testing.T) {
	overrideRepo := new(mockOverrideRepo)
	cache := new(mockPolicyCache)

	// Stored override has a single explicit false; two cycles bring it back
	// to inherit.
	existing := testOverride(t, 42)
	overrideRepo.On("GetByPartnerID", mock.Anything, uint(42)).Return(existing, nil)
	overrideRepo.On("DeleteByPartnerID", mock.Anything, uint(42)).Return(nil)
	cache.On("Invalidate", mock.Anything, uint(42)).Return(nil)

	uc := NewUpdateOverrideUseCase(overrideRepo, cache, noopLogger{})
	result, err := uc.Execute(context.Background(), UpdateOverrideCommand{
		PartnerID: 42,
		// true -> false -> inherit
		CycleFields: []string{
			string(policy.FieldAllowPartnerGateway),
			string(policy.FieldAllowPartnerGateway),
		},
	})
	require.NoError(t, err)

	assert.Nil(t, result.AllowPartnerGateway)
	overrideRepo.AssertCalled(t, "DeleteByPartnerID", mock.Anything, uint(42))
	overrideRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestUpdateOverride_SetsLimits(t *testing.T) {
	overrideRepo := new(mockOverrideRepo)
	cache := new(mockPolicyCache)

	overrideRepo.On("GetByPartnerID", mock.Anything, uint(42)).Return(nil, nil)
	overrideRepo.On("Save", mock.Anything, mock.Anything).Return(nil)
	cache.On("Invalidate", mock.Anything, uint(42)).Return(nil)

	maxPlans := int64(3)
	pct := 0.03
	uc := NewUpdateOverrideUseCase(overrideRepo, cache, noopLogger{})
	result, err := uc.Execute(context.Background(), UpdateOverrideCommand{
		PartnerID:       42,
		MaxPlans:        &maxPlans,
		TxFeeMaxPercent: &pct,
	})
	require.NoError(t, err)

	require.NotNil(t, result.MaxPlans)
	assert.Equal(t, int64(3), *result.MaxPlans)
	require.NotNil(t, result.TxFeeMaxPercent)
	assert.Equal(t, 0.03, *result.TxFeeMaxPercent)
}

func TestUpdateOverride_RejectsUnknownCycleField(t *testing.T) {
	overrideRepo := new(mockOverrideRepo)
	cache := new(mockPolicyCache)

	overrideRepo.On("GetByPartnerID", mock.Anything, uint(42)).Return(nil, nil)

	uc := NewUpdateOverrideUseCase(overrideRepo, cache, noopLogger{})
	_, err := uc.Execute(context.Background(), UpdateOverrideCommand{
		PartnerID:   42,
		CycleFields: []string{"allow_time_travel"},
	})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	overrideRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestUpdateOverride_RejectsInvalidLimits(t *testing.T) {
	overrideRepo := new(mockOverrideRepo)
	cache := new(mockPolicyCache)

	overrideRepo.On("GetByPartnerID", mock.Anything, uint(42)).Return(nil, nil)

	bad := int64(-1)
	uc := NewUpdateOverrideUseCase(overrideRepo, cache, noopLogger{})
	_, err := uc.Execute(context.Background(), UpdateOverrideCommand{
		PartnerID: 42,
		MaxPlans:  &bad,
	})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestUpdateOverride_RequiresPartner(t *testing.T) {
	uc := NewUpdateOverrideUseCase(new(mockOverrideRepo), new(mockPolicyCache), noopLogger{})
	_, err := uc.Execute(context.Background(), UpdateOverrideCommand{})
	assert.True(t, errors.IsValidationError(err))
}

func TestDeleteOverride_NotFound(t *testing.T) {
	overrideRepo := new(mockOverrideRepo)
	cache := new(mockPolicyCache)

	overrideRepo.On("GetByPartnerID", mock.Anything, uint(42)).Return(nil, nil)

	uc := NewDeleteOverrideUseCase(overrideRepo, cache, noopLogger{})
	err := uc.Execute(context.Background(), 42)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestDeleteOverride_InvalidatesCache(t *testing.T) {
	overrideRepo := new(mockOverrideRepo)
	cache := new(mockPolicyCache)

	overrideRepo.On("GetByPartnerID", mock.Anything, uint(42)).Return(testOverride(t, 42), nil)
	overrideRepo.On("DeleteByPartnerID", mock.Anything, uint(42)).Return(nil)
	cache.On("Invalidate", mock.Anything, uint(42)).Return(nil)

	uc := NewDeleteOverrideUseCase(overrideRepo, cache, noopLogger{})
	require.NoError(t, uc.Execute(context.Background(), 42))
	cache.AssertCalled(t, "Invalidate", mock.Anything, uint(42))
}
