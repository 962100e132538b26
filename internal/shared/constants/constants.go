package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// HTTP Headers
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Content Types
	ContentTypeJSON = "application/json"

	// Context keys
	ContextKeyRequestID = "request_id"

	// Database table names
	TableGlobalPolicies    = "global_policies"
	TablePolicyOverrides   = "policy_overrides"
	TablePricingPlans      = "pricing_plans"
	TablePSPProviders      = "psp_providers"
	TableAvailabilityRules = "availability_rules"
	TableCredentials       = "psp_credentials"

	// DefaultCurrency is the platform settlement currency.
	DefaultCurrency = "BRL"
)
