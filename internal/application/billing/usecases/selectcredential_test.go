package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/prato-inc/prato/internal/domain/billing"
	vo "github.com/prato-inc/prato/internal/domain/billing/valueobjects"
)

func tenantCredential(t *testing.T, providerID, tenantID uint) *billing.Credential {
	t.Helper()
	cred, err := billing.NewTenantCredential(providerID, tenantID, "enc:key", "", "acct_t")
	require.NoError(t, err)
	return cred
}

func platformCredential(t *testing.T, providerID uint) *billing.Credential {
	t.Helper()
	cred, err := billing.NewPlatformCredential(providerID, "enc:key", "", "acct_p")
	require.NoError(t, err)
	cred.MarkConnected()
	return cred
}

func TestSelectCredential_TenantCredentialPreferred(t *testing.T) {
	providerRepo := new(mockProviderRepo)
	credentialRepo := new(mockCredentialRepo)

	provider := snapshotProvider(t, 1, true)
	tenant := tenantCredential(t, 1, 42)
	tenant.MarkConnected()

	providerRepo.On("FindBySID", mock.Anything, "psp_test").Return(provider, nil)
	credentialRepo.On("ListByProviderID", mock.Anything, uint(1)).Return([]*billing.Credential{
		platformCredential(t, 1),
		tenant,
	}, nil)

	uc := NewSelectCredentialUseCase(providerRepo, credentialRepo, noopLogger{})
	result, err := uc.Execute(context.Background(), SelectCredentialCommand{
		ProviderSID: "psp_test",
		TenantID:    42,
	})
	require.NoError(t, err)

	assert.Equal(t, tenant.SID(), result.SID)
	assert.Equal(t, vo.CredentialScopeTenant.String(), result.Scope)
}

func TestSelectCredential_PendingTenantCredentialStillSelected(t *testing.T) {
	providerRepo := new(mockProviderRepo)
	credentialRepo := new(mockCredentialRepo)

	provider := snapshotProvider(t, 1, true)
	tenant := tenantCredential(t, 1, 42)

	providerRepo.On("FindBySID", mock.Anything, "psp_test").Return(provider, nil)
	credentialRepo.On("ListByProviderID", mock.Anything, uint(1)).Return([]*billing.Credential{
		platformCredential(t, 1),
		tenant,
	}, nil)

	uc := NewSelectCredentialUseCase(providerRepo, credentialRepo, noopLogger{})
	result, err := uc.Execute(context.Background(), SelectCredentialCommand{
		ProviderSID: "psp_test",
		TenantID:    42,
	})
	require.NoError(t, err)

	assert.Equal(t, tenant.SID(), result.SID, "a pending tenant credential is still the tenant's row")
	assert.Equal(t, vo.ConnectionStatusPending.String(), result.Status)
}

func TestSelectCredential_PlatformFallback(t *testing.T) {
	providerRepo := new(mockProviderRepo)
	credentialRepo := new(mockCredentialRepo)

	provider := snapshotProvider(t, 1, true)

	providerRepo.On("FindBySID", mock.Anything, "psp_test").Return(provider, nil)
	credentialRepo.On("ListByProviderID", mock.Anything, uint(1)).Return([]*billing.Credential{
		platformCredential(t, 1),
	}, nil)

	uc := NewSelectCredentialUseCase(providerRepo, credentialRepo, noopLogger{})
	result, err := uc.Execute(context.Background(), SelectCredentialCommand{
		ProviderSID: "psp_test",
		TenantID:    42,
	})
	require.NoError(t, err)
	assert.Equal(t, vo.CredentialScopePlatform.String(), result.Scope)
}

func TestSelectCredential_NoCredentialConfigured(t *testing.T) {
	providerRepo := new(mockProviderRepo)
	credentialRepo := new(mockCredentialRepo)

	providerRepo.On("FindBySID", mock.Anything, "psp_test").Return(snapshotProvider(t, 1, true), nil)
	credentialRepo.On("ListByProviderID", mock.Anything, uint(1)).Return([]*billing.Credential{}, nil)

	uc := NewSelectCredentialUseCase(providerRepo, credentialRepo, noopLogger{})
	_, err := uc.Execute(context.Background(), SelectCredentialCommand{
		ProviderSID: "psp_test",
		TenantID:    42,
	})
	assert.ErrorIs(t, err, billing.ErrNoCredentialAvailable)
}
