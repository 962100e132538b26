package billing

import (
	"fmt"
	"time"

	vo "github.com/prato-inc/prato/internal/domain/billing/valueobjects"
	"github.com/prato-inc/prato/internal/shared/biztime"
	"github.com/prato-inc/prato/internal/shared/id"
)

// Credential holds the API credentials for a PSP provider, either for the
// platform itself or for a single tenant that connected its own account.
type Credential struct {
	credentialID uint
	sid          string

	providerID uint
	scope      vo.CredentialScope
	tenantID   *uint

	apiKeyEncrypted        string
	webhookSecretEncrypted string
	accountRef             string
	status                 vo.ConnectionStatus

	usePlatformCredentials bool

	version   int
	createdAt time.Time
	updatedAt time.Time
}

// NewPlatformCredential creates a pending platform-scoped credential.
func NewPlatformCredential(providerID uint, apiKeyEncrypted, webhookSecretEncrypted, accountRef string) (*Credential, error) {
	return newCredential(providerID, vo.CredentialScopePlatform, nil, apiKeyEncrypted, webhookSecretEncrypted, accountRef)
}

// NewTenantCredential creates a pending tenant-scoped credential.
func NewTenantCredential(providerID, tenantID uint, apiKeyEncrypted, webhookSecretEncrypted, accountRef string) (*Credential, error) {
	if tenantID == 0 {
		return nil, fmt.Errorf("tenant ID cannot be zero")
	}
	return newCredential(providerID, vo.CredentialScopeTenant, &tenantID, apiKeyEncrypted, webhookSecretEncrypted, accountRef)
}

func newCredential(providerID uint, scope vo.CredentialScope, tenantID *uint, apiKeyEncrypted, webhookSecretEncrypted, accountRef string) (*Credential, error) {
	if providerID == 0 {
		return nil, fmt.Errorf("provider ID cannot be zero")
	}
	if apiKeyEncrypted == "" {
		return nil, fmt.Errorf("API key is required")
	}

	sid, err := id.NewCredentialID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate SID: %w", err)
	}

	now := biztime.NowUTC()
	return &Credential{
		sid:                    sid,
		providerID:             providerID,
		scope:                  scope,
		tenantID:               tenantID,
		apiKeyEncrypted:        apiKeyEncrypted,
		webhookSecretEncrypted: webhookSecretEncrypted,
		accountRef:             accountRef,
		status:                 vo.ConnectionStatusPending,
		version:                1,
		createdAt:              now,
		updatedAt:              now,
	}, nil
}

// ReconstructCredential rebuilds a credential from persistence.
func ReconstructCredential(
	credentialID uint,
	sid string,
	providerID uint,
	scope vo.CredentialScope,
	tenantID *uint,
	apiKeyEncrypted, webhookSecretEncrypted, accountRef string,
	status vo.ConnectionStatus,
	usePlatformCredentials bool,
	version int,
	createdAt, updatedAt time.Time,
) (*Credential, error) {
	if credentialID == 0 {
		return nil, fmt.Errorf("credential ID cannot be zero")
	}
	if !scope.IsValid() {
		return nil, fmt.Errorf("invalid credential scope: %s", scope)
	}
	if scope == vo.CredentialScopeTenant && (tenantID == nil || *tenantID == 0) {
		return nil, fmt.Errorf("tenant-scoped credential requires a tenant ID")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid connection status: %s", status)
	}

	return &Credential{
		credentialID:           credentialID,
		sid:                    sid,
		providerID:             providerID,
		scope:                  scope,
		tenantID:               tenantID,
		apiKeyEncrypted:        apiKeyEncrypted,
		webhookSecretEncrypted: webhookSecretEncrypted,
		accountRef:             accountRef,
		status:                 status,
		usePlatformCredentials: usePlatformCredentials,
		version:                version,
		createdAt:              createdAt,
		updatedAt:              updatedAt,
	}, nil
}

func (c *Credential) ID() uint { return c.credentialID }

// SetID sets the credential ID (only for persistence layer use)
func (c *Credential) SetID(credentialID uint) error {
	if c.credentialID != 0 {
		return fmt.Errorf("credential ID is already set")
	}
	if credentialID == 0 {
		return fmt.Errorf("credential ID cannot be zero")
	}
	c.credentialID = credentialID
	return nil
}

func (c *Credential) SID() string                 { return c.sid }
func (c *Credential) ProviderID() uint            { return c.providerID }
func (c *Credential) Scope() vo.CredentialScope   { return c.scope }
func (c *Credential) APIKeyEncrypted() string        { return c.apiKeyEncrypted }
func (c *Credential) WebhookSecretEncrypted() string { return c.webhookSecretEncrypted }
func (c *Credential) AccountRef() string             { return c.accountRef }
func (c *Credential) UsePlatformCredentials() bool   { return c.usePlatformCredentials }
func (c *Credential) Status() vo.ConnectionStatus { return c.status }
func (c *Credential) Version() int                { return c.version }
func (c *Credential) CreatedAt() time.Time        { return c.createdAt }
func (c *Credential) UpdatedAt() time.Time        { return c.updatedAt }

// TenantID returns the owning tenant and whether the credential is
// tenant-scoped.
func (c *Credential) TenantID() (uint, bool) {
	if c.tenantID == nil {
		return 0, false
	}
	return *c.tenantID, true
}

func (c *Credential) IsConnected() bool {
	return c.status == vo.ConnectionStatusConnected
}

// MarkConnected records a successful connection check.
func (c *Credential) MarkConnected() {
	if c.status == vo.ConnectionStatusConnected {
		return
	}
	c.status = vo.ConnectionStatusConnected
	c.touch()
}

// MarkError records a failed connection check.
func (c *Credential) MarkError() {
	if c.status == vo.ConnectionStatusError {
		return
	}
	c.status = vo.ConnectionStatusError
	c.touch()
}

// RotateKey replaces the stored secrets and resets the connection status.
func (c *Credential) RotateKey(apiKeyEncrypted, webhookSecretEncrypted, accountRef string) error {
	if apiKeyEncrypted == "" {
		return fmt.Errorf("API key is required")
	}
	c.apiKeyEncrypted = apiKeyEncrypted
	c.webhookSecretEncrypted = webhookSecretEncrypted
	c.accountRef = accountRef
	c.status = vo.ConnectionStatusPending
	c.touch()
	return nil
}

// SetUsePlatformCredentials toggles the tenant's opt-out: when true the
// tenant row is skipped at selection time in favor of the platform
// credential. Platform-scoped rows cannot opt out of themselves.
func (c *Credential) SetUsePlatformCredentials(use bool) error {
	if c.scope != vo.CredentialScopeTenant {
		return fmt.Errorf("use_platform_credentials applies only to tenant-scoped credentials")
	}
	if c.usePlatformCredentials == use {
		return nil
	}
	c.usePlatformCredentials = use
	c.touch()
	return nil
}

func (c *Credential) touch() {
	c.updatedAt = biztime.NowUTC()
	c.version++
}

// SelectCredential picks the credential to use for a provider: the tenant's
// own credential when one exists and the tenant has not opted into platform
// credentials, otherwise the platform credential. Connection status does not
// affect selection; a pending tenant row is still the tenant's row, and the
// connectivity check that follows reports its state.
func SelectCredential(candidates []*Credential, tenantID uint) (*Credential, error) {
	var platform *Credential
	for _, c := range candidates {
		switch c.Scope() {
		case vo.CredentialScopeTenant:
			if owner, ok := c.TenantID(); ok && owner == tenantID {
				if c.UsePlatformCredentials() {
					continue
				}
				return c, nil
			}
		case vo.CredentialScopePlatform:
			if platform == nil {
				platform = c
			}
		}
	}
	if platform != nil {
		return platform, nil
	}
	return nil, ErrNoCredentialAvailable
}
