package handlers

import (
	stderrors "errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/prato-inc/prato/internal/application/billing/usecases"
	"github.com/prato-inc/prato/internal/domain/billing"
	"github.com/prato-inc/prato/internal/shared/errors"
	"github.com/prato-inc/prato/internal/shared/logger"
	"github.com/prato-inc/prato/internal/shared/utils"
)

// RoutingHandler exposes the read side of the routing core: resolving a
// route, pricing a transaction against it, and picking the credential to
// charge with.
type RoutingHandler struct {
	resolveRouteUC     *usecases.ResolveRouteUseCase
	computeFeeUC       *usecases.ComputeFeeUseCase
	selectCredentialUC *usecases.SelectCredentialUseCase
	logger             logger.Interface
}

func NewRoutingHandler(
	resolveRouteUC *usecases.ResolveRouteUseCase,
	computeFeeUC *usecases.ComputeFeeUseCase,
	selectCredentialUC *usecases.SelectCredentialUseCase,
) *RoutingHandler {
	return &RoutingHandler{
		resolveRouteUC:     resolveRouteUC,
		computeFeeUC:       computeFeeUC,
		selectCredentialUC: selectCredentialUC,
		logger:             logger.NewLogger(),
	}
}

type ComputeFeeRequest struct {
	TenantID    uint  `json:"tenant_id" binding:"required"`
	PartnerID   *uint `json:"partner_id"`
	PlanID      *uint `json:"plan_id"`
	CategoryID  *uint `json:"category_id"`
	AmountCents int64 `json:"amount_cents" binding:"min=0"`
}

func (h *RoutingHandler) ResolveRoute(c *gin.Context) {
	cmd, err := routeCommandFromQuery(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.resolveRouteUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, mapRoutingError(err))
		return
	}
	utils.OKResponse(c, result)
}

func (h *RoutingHandler) ComputeFee(c *gin.Context) {
	var req ComputeFeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for compute fee", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", utils.FormatBindingError(err)))
		return
	}

	cmd := usecases.ComputeFeeCommand{
		TenantID:    req.TenantID,
		PartnerID:   req.PartnerID,
		PlanID:      req.PlanID,
		CategoryID:  req.CategoryID,
		AmountCents: req.AmountCents,
	}

	result, err := h.computeFeeUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, mapRoutingError(err))
		return
	}
	utils.OKResponse(c, result)
}

func (h *RoutingHandler) SelectCredential(c *gin.Context) {
	providerSID := c.Query("provider_sid")
	if providerSID == "" {
		utils.ErrorResponseWithError(c, errors.NewValidationError("provider_sid is required"))
		return
	}

	tenantID, err := parseRequiredUintQuery(c, "tenant_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.selectCredentialUC.Execute(c.Request.Context(), usecases.SelectCredentialCommand{
		ProviderSID: providerSID,
		TenantID:    tenantID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, mapRoutingError(err))
		return
	}
	utils.OKResponse(c, result)
}

func routeCommandFromQuery(c *gin.Context) (usecases.ResolveRouteCommand, error) {
	tenantID, err := parseRequiredUintQuery(c, "tenant_id")
	if err != nil {
		return usecases.ResolveRouteCommand{}, err
	}

	cmd := usecases.ResolveRouteCommand{TenantID: tenantID}

	if cmd.PartnerID, err = utils.ParseUintQuery(c, "partner_id"); err != nil {
		return usecases.ResolveRouteCommand{}, err
	}
	if cmd.PlanID, err = utils.ParseUintQuery(c, "plan_id"); err != nil {
		return usecases.ResolveRouteCommand{}, err
	}
	if cmd.CategoryID, err = utils.ParseUintQuery(c, "category_id"); err != nil {
		return usecases.ResolveRouteCommand{}, err
	}
	return cmd, nil
}

func parseRequiredUintQuery(c *gin.Context, name string) (uint, error) {
	raw := c.Query(name)
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || v == 0 {
		return 0, errors.NewValidationError("invalid " + name + ": " + raw)
	}
	return uint(v), nil
}

// mapRoutingError translates routing sentinels into API errors. Anything
// else passes through untouched.
func mapRoutingError(err error) error {
	switch {
	case stderrors.Is(err, billing.ErrNoRouteMatched):
		return errors.NewNotFoundError("no availability rule matched the route context")
	case stderrors.Is(err, billing.ErrNoCredentialAvailable):
		return errors.NewNotFoundError("no usable credential for this provider and tenant")
	case stderrors.Is(err, billing.ErrInvalidAmount):
		return errors.NewValidationError("amount cannot be negative")
	default:
		return err
	}
}
