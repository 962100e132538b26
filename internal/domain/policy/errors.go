package policy

import "errors"

var (
	// ErrGlobalPolicyMissing is returned when the singleton global policy row
	// does not exist. This is a configuration defect, fatal at startup.
	ErrGlobalPolicyMissing = errors.New("global policy is not configured")

	// ErrOverrideNotFound is returned when a partner has no override row and
	// the caller asked for one explicitly rather than resolving.
	ErrOverrideNotFound = errors.New("policy override not found")
)
