package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/prato-inc/prato/internal/application/billing/usecases"
	"github.com/prato-inc/prato/internal/shared/errors"
	"github.com/prato-inc/prato/internal/shared/id"
	"github.com/prato-inc/prato/internal/shared/logger"
	"github.com/prato-inc/prato/internal/shared/utils"
)

type ProviderHandler struct {
	createProviderUC *usecases.CreateProviderUseCase
	updateProviderUC *usecases.UpdateProviderUseCase
	getProviderUC    *usecases.GetProviderUseCase
	listProvidersUC  *usecases.ListProvidersUseCase
	deleteProviderUC *usecases.DeleteProviderUseCase
	logger           logger.Interface
}

func NewProviderHandler(
	createProviderUC *usecases.CreateProviderUseCase,
	updateProviderUC *usecases.UpdateProviderUseCase,
	getProviderUC *usecases.GetProviderUseCase,
	listProvidersUC *usecases.ListProvidersUseCase,
	deleteProviderUC *usecases.DeleteProviderUseCase,
) *ProviderHandler {
	return &ProviderHandler{
		createProviderUC: createProviderUC,
		updateProviderUC: updateProviderUC,
		getProviderUC:    getProviderUC,
		listProvidersUC:  listProvidersUC,
		deleteProviderUC: deleteProviderUC,
		logger:           logger.NewLogger(),
	}
}

type CreateProviderRequest struct {
	Name                  string         `json:"name" binding:"required,max=100"`
	Slug                  string         `json:"slug" binding:"required,max=100"`
	SupportsTxid          bool           `json:"supports_txid"`
	SupportsWebhook       bool           `json:"supports_webhook"`
	SupportsSubaccount    bool           `json:"supports_subaccount"`
	SupportsSplit         bool           `json:"supports_split"`
	DefaultPercentRate    float64        `json:"default_percent_rate" binding:"min=0,max=1"`
	DefaultFixedRateCents int64          `json:"default_fixed_rate_cents" binding:"min=0"`
	PricingModel          string         `json:"pricing_model" binding:"omitempty,oneof=percentual fixo hibrido"`
	DisplayOrder          int            `json:"display_order"`
	Metadata              map[string]any `json:"metadata"`
}

type UpdateProviderRequest struct {
	Name                  string         `json:"name" binding:"required,max=100"`
	Slug                  string         `json:"slug" binding:"required,max=100"`
	SupportsTxid          bool           `json:"supports_txid"`
	SupportsWebhook       bool           `json:"supports_webhook"`
	SupportsSubaccount    bool           `json:"supports_subaccount"`
	SupportsSplit         bool           `json:"supports_split"`
	DefaultPercentRate    float64        `json:"default_percent_rate" binding:"min=0,max=1"`
	DefaultFixedRateCents int64          `json:"default_fixed_rate_cents" binding:"min=0"`
	PricingModel          string         `json:"pricing_model" binding:"omitempty,oneof=percentual fixo hibrido"`
	DisplayOrder          int            `json:"display_order"`
	Metadata              map[string]any `json:"metadata"`
	IsActive              *bool          `json:"is_active"`
}

func (h *ProviderHandler) CreateProvider(c *gin.Context) {
	var req CreateProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create provider", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", utils.FormatBindingError(err)))
		return
	}

	cmd := usecases.CreateProviderCommand{
		Name:                  req.Name,
		Slug:                  req.Slug,
		SupportsTxid:          req.SupportsTxid,
		SupportsWebhook:       req.SupportsWebhook,
		SupportsSubaccount:    req.SupportsSubaccount,
		SupportsSplit:         req.SupportsSplit,
		DefaultPercentRate:    req.DefaultPercentRate,
		DefaultFixedRateCents: req.DefaultFixedRateCents,
		PricingModel:          req.PricingModel,
		DisplayOrder:          req.DisplayOrder,
		Metadata:              req.Metadata,
	}

	result, err := h.createProviderUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "PSP provider created successfully")
}

func (h *ProviderHandler) UpdateProvider(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "sid", id.PrefixProvider, "provider")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update provider", "sid", sid, "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", utils.FormatBindingError(err)))
		return
	}

	cmd := usecases.UpdateProviderCommand{
		SID:                   sid,
		Name:                  req.Name,
		Slug:                  req.Slug,
		SupportsTxid:          req.SupportsTxid,
		SupportsWebhook:       req.SupportsWebhook,
		SupportsSubaccount:    req.SupportsSubaccount,
		SupportsSplit:         req.SupportsSplit,
		DefaultPercentRate:    req.DefaultPercentRate,
		DefaultFixedRateCents: req.DefaultFixedRateCents,
		PricingModel:          req.PricingModel,
		DisplayOrder:          req.DisplayOrder,
		Metadata:              req.Metadata,
		IsActive:              req.IsActive,
	}

	result, err := h.updateProviderUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result, "PSP provider updated successfully")
}

func (h *ProviderHandler) GetProvider(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "sid", id.PrefixProvider, "provider")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getProviderUC.Execute(c.Request.Context(), sid)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

func (h *ProviderHandler) ListProviders(c *gin.Context) {
	page, pageSize := utils.ParsePagination(c)
	activeOnly := c.Query("active") == "true"

	cmd := usecases.ListProvidersCommand{
		ActiveOnly: activeOnly,
		Offset:     (page - 1) * pageSize,
		Limit:      pageSize,
	}

	result, err := h.listProvidersUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.ListSuccessResponse(c, result.Providers, result.Total, page, pageSize)
}

// DeleteProvider deactivates the provider. Rules pointing at it stay in
// place and are skipped by the resolver until it is reactivated.
func (h *ProviderHandler) DeleteProvider(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "sid", id.PrefixProvider, "provider")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteProviderUC.Execute(c.Request.Context(), sid); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}
