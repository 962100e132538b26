package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/prato-inc/prato/internal/domain/billing/valueobjects"
)

func connectedCredential(t *testing.T, scope vo.CredentialScope, tenantID *uint) *Credential {
	t.Helper()
	var cred *Credential
	var err error
	if scope == vo.CredentialScopeTenant {
		cred, err = NewTenantCredential(1, *tenantID, "enc:key", "enc:whsec", "acct_1")
	} else {
		cred, err = NewPlatformCredential(1, "enc:key", "enc:whsec", "acct_platform")
	}
	require.NoError(t, err)
	cred.MarkConnected()
	return cred
}

func TestSelectCredential_TenantOwnWins(t *testing.T) {
	tenant := connectedCredential(t, vo.CredentialScopeTenant, uintPtr(42))
	platform := connectedCredential(t, vo.CredentialScopePlatform, nil)

	selected, err := SelectCredential([]*Credential{platform, tenant}, 42)
	require.NoError(t, err)
	assert.Same(t, tenant, selected)
}

func TestSelectCredential_PlatformFallback(t *testing.T) {
	otherTenant := connectedCredential(t, vo.CredentialScopeTenant, uintPtr(7))
	platform := connectedCredential(t, vo.CredentialScopePlatform, nil)

	selected, err := SelectCredential([]*Credential{otherTenant, platform}, 42)
	require.NoError(t, err)
	assert.Same(t, platform, selected)
}

func TestSelectCredential_PendingTenantRowStillWins(t *testing.T) {
	pending, err := NewTenantCredential(1, 42, "enc:key", "", "acct_2")
	require.NoError(t, err)
	platform := connectedCredential(t, vo.CredentialScopePlatform, nil)

	selected, err := SelectCredential([]*Credential{pending, platform}, 42)
	require.NoError(t, err)
	assert.Same(t, pending, selected, "status does not affect selection")
}

func TestSelectCredential_TenantOptedOutFallsToPlatform(t *testing.T) {
	tenant := connectedCredential(t, vo.CredentialScopeTenant, uintPtr(42))
	require.NoError(t, tenant.SetUsePlatformCredentials(true))
	platform := connectedCredential(t, vo.CredentialScopePlatform, nil)

	selected, err := SelectCredential([]*Credential{tenant, platform}, 42)
	require.NoError(t, err)
	assert.Same(t, platform, selected, "opted-out tenant credential is skipped")
}

func TestSelectCredential_TenantOptedOutWithoutPlatformRow(t *testing.T) {
	tenant := connectedCredential(t, vo.CredentialScopeTenant, uintPtr(42))
	require.NoError(t, tenant.SetUsePlatformCredentials(true))

	_, err := SelectCredential([]*Credential{tenant}, 42)
	assert.ErrorIs(t, err, ErrNoCredentialAvailable)
}

func TestCredential_SetUsePlatformCredentials_PlatformScopeRejected(t *testing.T) {
	platform := connectedCredential(t, vo.CredentialScopePlatform, nil)
	assert.Error(t, platform.SetUsePlatformCredentials(true))
}

func TestSelectCredential_NoneAvailable(t *testing.T) {
	_, err := SelectCredential(nil, 42)
	assert.ErrorIs(t, err, ErrNoCredentialAvailable)
}

func TestNewTenantCredential(t *testing.T) {
	cred, err := NewTenantCredential(3, 42, "enc:key", "enc:whsec", "acct_9")
	require.NoError(t, err)

	assert.Contains(t, cred.SID(), "cred_")
	assert.Equal(t, vo.CredentialScopeTenant, cred.Scope())
	assert.Equal(t, vo.ConnectionStatusPending, cred.Status())
	owner, ok := cred.TenantID()
	assert.True(t, ok)
	assert.Equal(t, uint(42), owner)
}

func TestNewTenantCredential_RequiresTenant(t *testing.T) {
	_, err := NewTenantCredential(3, 0, "enc:key", "", "")
	assert.Error(t, err)
}

func TestCredential_RotateKeyResetsStatus(t *testing.T) {
	cred := connectedCredential(t, vo.CredentialScopePlatform, nil)
	require.True(t, cred.IsConnected())

	require.NoError(t, cred.RotateKey("enc:newkey", "enc:newsecret", "acct_new"))
	assert.Equal(t, vo.ConnectionStatusPending, cred.Status())
	assert.Equal(t, "enc:newkey", cred.APIKeyEncrypted())
	assert.Equal(t, "enc:newsecret", cred.WebhookSecretEncrypted())
}

func TestCredential_MarkError(t *testing.T) {
	cred := connectedCredential(t, vo.CredentialScopePlatform, nil)
	cred.MarkError()
	assert.Equal(t, vo.ConnectionStatusError, cred.Status())
	assert.False(t, cred.IsConnected())
}
