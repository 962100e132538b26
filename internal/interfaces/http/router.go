package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	billingUsecases "github.com/prato-inc/prato/internal/application/billing/usecases"
	policyUsecases "github.com/prato-inc/prato/internal/application/policy/usecases"
	"github.com/prato-inc/prato/internal/infrastructure/cache"
	"github.com/prato-inc/prato/internal/infrastructure/config"
	"github.com/prato-inc/prato/internal/infrastructure/repository"
	"github.com/prato-inc/prato/internal/interfaces/http/handlers"
	"github.com/prato-inc/prato/internal/interfaces/http/middleware"
	"github.com/prato-inc/prato/internal/interfaces/http/routes"
	"github.com/prato-inc/prato/internal/shared/logger"
	"github.com/prato-inc/prato/internal/shared/utils"
)

// Router wires repositories, use cases and handlers into a gin engine.
type Router struct {
	engine *gin.Engine
	cfg    *config.Config
	log    logger.Interface

	policyHandler     *handlers.PolicyHandler
	planHandler       *handlers.PlanHandler
	providerHandler   *handlers.ProviderHandler
	ruleHandler       *handlers.RuleHandler
	credentialHandler *handlers.CredentialHandler
	routingHandler    *handlers.RoutingHandler
}

// NewRouter builds the full dependency graph on top of the database and
// redis connections.
func NewRouter(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	// Repositories
	globalPolicyRepo := repository.NewGlobalPolicyRepository(db, log)
	overrideRepo := repository.NewOverrideRepository(db, log)
	planRepo := repository.NewPricingPlanRepository(db, log)
	providerRepo := repository.NewPSPProviderRepository(db, log)
	ruleRepo := repository.NewAvailabilityRuleRepository(db, log)
	credentialRepo := repository.NewCredentialRepository(db, log)
	snapshotRepo := repository.NewRouteSnapshotRepository(db, log)

	policyCacheTTL := time.Duration(cfg.Billing.PolicyCacheTTLSeconds) * time.Second
	policyCache := cache.NewRedisEffectivePolicyCache(redisClient, policyCacheTTL, log)

	// Policy use cases
	getGlobalUC := policyUsecases.NewGetGlobalPolicyUseCase(globalPolicyRepo, log)
	updateGlobalUC := policyUsecases.NewUpdateGlobalPolicyUseCase(globalPolicyRepo, policyCache, log)
	getEffectiveUC := policyUsecases.NewGetEffectivePolicyUseCase(globalPolicyRepo, overrideRepo, policyCache, log)
	getOverrideUC := policyUsecases.NewGetOverrideUseCase(overrideRepo, log)
	updateOverrideUC := policyUsecases.NewUpdateOverrideUseCase(overrideRepo, policyCache, log)
	deleteOverrideUC := policyUsecases.NewDeleteOverrideUseCase(overrideRepo, policyCache, log)

	// Billing use cases
	createPlanUC := billingUsecases.NewCreatePricingPlanUseCase(planRepo, log)
	updatePlanUC := billingUsecases.NewUpdatePricingPlanUseCase(planRepo, log)
	getPlanUC := billingUsecases.NewGetPricingPlanUseCase(planRepo, log)
	listPlansUC := billingUsecases.NewListPricingPlansUseCase(planRepo, log)
	deletePlanUC := billingUsecases.NewDeletePricingPlanUseCase(planRepo, log)
	previewFeeUC := billingUsecases.NewPreviewPlanFeeUseCase(planRepo, log)

	createProviderUC := billingUsecases.NewCreateProviderUseCase(providerRepo, log)
	updateProviderUC := billingUsecases.NewUpdateProviderUseCase(providerRepo, log)
	getProviderUC := billingUsecases.NewGetProviderUseCase(providerRepo, log)
	listProvidersUC := billingUsecases.NewListProvidersUseCase(providerRepo, log)
	deleteProviderUC := billingUsecases.NewDeleteProviderUseCase(providerRepo, log)

	createRuleUC := billingUsecases.NewCreateRuleUseCase(ruleRepo, providerRepo, planRepo, log)
	updateRuleUC := billingUsecases.NewUpdateRuleUseCase(ruleRepo, providerRepo, planRepo, log)
	listRulesUC := billingUsecases.NewListRulesUseCase(ruleRepo, snapshotRepo, log)
	deleteRuleUC := billingUsecases.NewDeleteRuleUseCase(ruleRepo, log)
	reprioritizeUC := billingUsecases.NewReprioritizeRulesUseCase(ruleRepo, log)

	createCredentialUC := billingUsecases.NewCreateCredentialUseCase(credentialRepo, providerRepo, log)
	rotateCredentialUC := billingUsecases.NewRotateCredentialUseCase(credentialRepo, log)
	listCredentialsUC := billingUsecases.NewListCredentialsUseCase(credentialRepo, providerRepo, log)
	deleteCredentialUC := billingUsecases.NewDeleteCredentialUseCase(credentialRepo, log)

	resolveRouteUC := billingUsecases.NewResolveRouteUseCase(snapshotRepo, log)
	computeFeeUC := billingUsecases.NewComputeFeeUseCase(resolveRouteUC, log)
	selectCredentialUC := billingUsecases.NewSelectCredentialUseCase(providerRepo, credentialRepo, log)

	return &Router{
		engine: engine,
		cfg:    cfg,
		log:    log,
		policyHandler: handlers.NewPolicyHandler(
			getGlobalUC, updateGlobalUC, getEffectiveUC,
			getOverrideUC, updateOverrideUC, deleteOverrideUC,
		),
		planHandler: handlers.NewPlanHandler(
			createPlanUC, updatePlanUC, getPlanUC, listPlansUC, deletePlanUC, previewFeeUC,
		),
		providerHandler: handlers.NewProviderHandler(
			createProviderUC, updateProviderUC, getProviderUC, listProvidersUC, deleteProviderUC,
		),
		ruleHandler: handlers.NewRuleHandler(
			createRuleUC, updateRuleUC, listRulesUC, deleteRuleUC, reprioritizeUC,
		),
		credentialHandler: handlers.NewCredentialHandler(
			createCredentialUC, rotateCredentialUC, listCredentialsUC, deleteCredentialUC,
		),
		routingHandler: handlers.NewRoutingHandler(
			resolveRouteUC, computeFeeUC, selectCredentialUC,
		),
	}
}

// SetupRoutes registers middleware and all route groups.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.Logger(r.log))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))

	r.engine.GET("/health", func(c *gin.Context) {
		utils.OKResponse(c, gin.H{"status": "ok"})
	})

	routes.SetupPolicyRoutes(r.engine, &routes.PolicyRouteConfig{
		PolicyHandler: r.policyHandler,
	})
	routes.SetupBillingRoutes(r.engine, &routes.BillingRouteConfig{
		PlanHandler:       r.planHandler,
		ProviderHandler:   r.providerHandler,
		RuleHandler:       r.ruleHandler,
		CredentialHandler: r.credentialHandler,
		RoutingHandler:    r.routingHandler,
	})
}

// GetEngine returns the underlying gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
