package id

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const (
	// Base62 alphabet: 0-9, A-Z, a-z
	alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	// DefaultLength is the default length for generated short IDs
	DefaultLength = 12
)

// Prefixes for different entity types (Stripe-style)
const (
	PrefixPricingPlan    = "plan"
	PrefixProvider       = "psp"
	PrefixRule           = "rule"
	PrefixPolicyOverride = "pol"
	PrefixCredential     = "cred"
	PrefixPartner        = "ptn"
	PrefixTenant         = "tnt"
)

// Generate creates a random short ID with the specified length using Base62 encoding.
// The generated ID is cryptographically random and URL-safe.
func Generate(length int) (string, error) {
	if length <= 0 {
		length = DefaultLength
	}

	result := make([]byte, length)
	alphabetLen := big.NewInt(int64(len(alphabet)))

	for i := 0; i < length; i++ {
		num, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", fmt.Errorf("failed to generate random number: %w", err)
		}
		result[i] = alphabet[num.Int64()]
	}

	return string(result), nil
}

// GenerateWithPrefix creates a prefixed ID in the format "prefix_randomstring".
// This follows the Stripe-style ID pattern for human-readable identifiers.
func GenerateWithPrefix(prefix string, length int) (string, error) {
	shortID, err := Generate(length)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s_%s", prefix, shortID), nil
}

// MustGenerateWithPrefix creates a prefixed ID and panics on error.
func MustGenerateWithPrefix(prefix string, length int) string {
	prefixed, err := GenerateWithPrefix(prefix, length)
	if err != nil {
		panic(err)
	}
	return prefixed
}

// FormatWithPrefix adds a prefix to an existing short ID.
func FormatWithPrefix(prefix, shortID string) string {
	if shortID == "" {
		return ""
	}
	return fmt.Sprintf("%s_%s", prefix, shortID)
}

// ParsePrefixedID extracts the prefix and short ID from a prefixed ID string.
// Example: ParsePrefixedID("rule_xK9mP2vL3nQ") returns ("rule", "xK9mP2vL3nQ", nil)
func ParsePrefixedID(prefixedID string) (prefix, shortID string, err error) {
	parts := strings.SplitN(prefixedID, "_", 2)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("invalid prefixed ID format: %s", prefixedID)
	}
	return parts[0], parts[1], nil
}

// ValidatePrefix checks if the prefixed ID has the expected prefix.
func ValidatePrefix(prefixedID, expectedPrefix string) error {
	prefix, _, err := ParsePrefixedID(prefixedID)
	if err != nil {
		return err
	}
	if prefix != expectedPrefix {
		return fmt.Errorf("invalid prefix: expected %s, got %s", expectedPrefix, prefix)
	}
	return nil
}

// NewPricingPlanID generates a new pricing plan SID.
func NewPricingPlanID() (string, error) {
	return GenerateWithPrefix(PrefixPricingPlan, DefaultLength)
}

// NewProviderID generates a new PSP provider SID.
func NewProviderID() (string, error) {
	return GenerateWithPrefix(PrefixProvider, DefaultLength)
}

// NewRuleID generates a new availability rule SID.
func NewRuleID() (string, error) {
	return GenerateWithPrefix(PrefixRule, DefaultLength)
}

// NewPolicyOverrideID generates a new policy override SID.
func NewPolicyOverrideID() (string, error) {
	return GenerateWithPrefix(PrefixPolicyOverride, DefaultLength)
}

// NewCredentialID generates a new credential SID.
func NewCredentialID() (string, error) {
	return GenerateWithPrefix(PrefixCredential, DefaultLength)
}
