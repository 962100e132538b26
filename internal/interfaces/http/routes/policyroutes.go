package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/prato-inc/prato/internal/interfaces/http/handlers"
)

// PolicyRouteConfig holds dependencies for policy routes.
type PolicyRouteConfig struct {
	PolicyHandler *handlers.PolicyHandler
}

// SetupPolicyRoutes configures the global policy and per-partner override routes.
func SetupPolicyRoutes(engine *gin.Engine, cfg *PolicyRouteConfig) {
	policy := engine.Group("/policy")
	{
		policy.GET("/global", cfg.PolicyHandler.GetGlobalPolicy)
		policy.PUT("/global", cfg.PolicyHandler.UpdateGlobalPolicy)
	}

	partners := engine.Group("/partners/:partner_id/policy")
	{
		partners.GET("/effective", cfg.PolicyHandler.GetEffectivePolicy)
		partners.GET("/override", cfg.PolicyHandler.GetOverride)
		partners.PUT("/override", cfg.PolicyHandler.UpdateOverride)
		partners.DELETE("/override", cfg.PolicyHandler.DeleteOverride)
	}
}
