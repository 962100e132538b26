package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/prato-inc/prato/internal/interfaces/http/handlers"
)

// BillingRouteConfig holds dependencies for pricing and routing routes.
type BillingRouteConfig struct {
	PlanHandler       *handlers.PlanHandler
	ProviderHandler   *handlers.ProviderHandler
	RuleHandler       *handlers.RuleHandler
	CredentialHandler *handlers.CredentialHandler
	RoutingHandler    *handlers.RoutingHandler
}

// SetupBillingRoutes configures pricing plan, provider, rule, credential and
// routing resolution routes.
func SetupBillingRoutes(engine *gin.Engine, cfg *BillingRouteConfig) {
	plans := engine.Group("/pricing-plans")
	{
		plans.GET("", cfg.PlanHandler.ListPlans)
		plans.POST("", cfg.PlanHandler.CreatePlan)
		plans.GET("/:sid", cfg.PlanHandler.GetPlan)
		plans.PUT("/:sid", cfg.PlanHandler.UpdatePlan)
		plans.DELETE("/:sid", cfg.PlanHandler.DeletePlan)
		plans.POST("/:sid/preview", cfg.PlanHandler.PreviewPlanFee)
	}

	providers := engine.Group("/psp-providers")
	{
		providers.GET("", cfg.ProviderHandler.ListProviders)
		providers.POST("", cfg.ProviderHandler.CreateProvider)
		providers.GET("/:sid", cfg.ProviderHandler.GetProvider)
		providers.PUT("/:sid", cfg.ProviderHandler.UpdateProvider)
		providers.DELETE("/:sid", cfg.ProviderHandler.DeleteProvider)
	}

	rules := engine.Group("/availability-rules")
	{
		rules.GET("", cfg.RuleHandler.ListRules)
		rules.POST("", cfg.RuleHandler.CreateRule)
		rules.PUT("/:sid", cfg.RuleHandler.UpdateRule)
		rules.DELETE("/:sid", cfg.RuleHandler.DeleteRule)
		rules.POST("/reprioritize", cfg.RuleHandler.ReprioritizeRules)
	}

	credentials := engine.Group("/credentials")
	{
		credentials.GET("", cfg.CredentialHandler.ListCredentials)
		credentials.POST("", cfg.CredentialHandler.CreateCredential)
		credentials.POST("/:sid/rotate", cfg.CredentialHandler.RotateCredential)
		credentials.DELETE("/:sid", cfg.CredentialHandler.DeleteCredential)
	}

	routing := engine.Group("/routing")
	{
		routing.GET("/resolve", cfg.RoutingHandler.ResolveRoute)
		routing.POST("/fees/compute", cfg.RoutingHandler.ComputeFee)
		routing.GET("/credentials/select", cfg.RoutingHandler.SelectCredential)
	}
}
