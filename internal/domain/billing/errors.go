package billing

import "errors"

var (
	// ErrNoRouteMatched means no enabled rule applies to the route context.
	// Callers treat it as a normal outcome, not a failure.
	ErrNoRouteMatched = errors.New("no availability rule matched the route context")

	// ErrInvalidAmount means a fee was requested for a negative amount.
	ErrInvalidAmount = errors.New("transaction amount cannot be negative")

	// ErrInconsistentPlan means a plan's minimum fee exceeds its maximum.
	ErrInconsistentPlan = errors.New("minimum fee exceeds maximum fee")

	// ErrNoCredentialAvailable means neither a tenant credential nor a
	// usable platform credential exists for the provider.
	ErrNoCredentialAvailable = errors.New("no credential available for provider")
)
