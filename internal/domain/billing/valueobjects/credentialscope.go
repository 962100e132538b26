package valueobjects

import "fmt"

// CredentialScope is the level a PSP credential belongs to: the platform's
// own account or a single tenant's account.
type CredentialScope string

const (
	CredentialScopePlatform CredentialScope = "platform"
	CredentialScopeTenant   CredentialScope = "tenant"
)

func NewCredentialScope(value string) (CredentialScope, error) {
	s := CredentialScope(value)
	if !s.IsValid() {
		return "", fmt.Errorf("invalid credential scope: %s", value)
	}
	return s, nil
}

func (s CredentialScope) IsValid() bool {
	return s == CredentialScopePlatform || s == CredentialScopeTenant
}

func (s CredentialScope) String() string {
	return string(s)
}

// ConnectionStatus tracks the last known state of a credential's link to its
// provider.
type ConnectionStatus string

const (
	ConnectionStatusPending   ConnectionStatus = "pending"
	ConnectionStatusConnected ConnectionStatus = "connected"
	ConnectionStatusError     ConnectionStatus = "error"
)

func NewConnectionStatus(value string) (ConnectionStatus, error) {
	s := ConnectionStatus(value)
	if !s.IsValid() {
		return "", fmt.Errorf("invalid connection status: %s", value)
	}
	return s, nil
}

func (s ConnectionStatus) IsValid() bool {
	switch s {
	case ConnectionStatusPending, ConnectionStatusConnected, ConnectionStatusError:
		return true
	}
	return false
}

func (s ConnectionStatus) String() string {
	return string(s)
}
