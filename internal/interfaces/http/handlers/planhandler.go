package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/prato-inc/prato/internal/application/billing/usecases"
	"github.com/prato-inc/prato/internal/shared/errors"
	"github.com/prato-inc/prato/internal/shared/id"
	"github.com/prato-inc/prato/internal/shared/logger"
	"github.com/prato-inc/prato/internal/shared/utils"
)

type PlanHandler struct {
	createPlanUC  *usecases.CreatePricingPlanUseCase
	updatePlanUC  *usecases.UpdatePricingPlanUseCase
	getPlanUC     *usecases.GetPricingPlanUseCase
	listPlansUC   *usecases.ListPricingPlansUseCase
	deletePlanUC  *usecases.DeletePricingPlanUseCase
	previewFeeUC  *usecases.PreviewPlanFeeUseCase
	logger        logger.Interface
}

func NewPlanHandler(
	createPlanUC *usecases.CreatePricingPlanUseCase,
	updatePlanUC *usecases.UpdatePricingPlanUseCase,
	getPlanUC *usecases.GetPricingPlanUseCase,
	listPlansUC *usecases.ListPricingPlansUseCase,
	deletePlanUC *usecases.DeletePricingPlanUseCase,
	previewFeeUC *usecases.PreviewPlanFeeUseCase,
) *PlanHandler {
	return &PlanHandler{
		createPlanUC: createPlanUC,
		updatePlanUC: updatePlanUC,
		getPlanUC:    getPlanUC,
		listPlansUC:  listPlansUC,
		deletePlanUC: deletePlanUC,
		previewFeeUC: previewFeeUC,
		logger:       logger.NewLogger(),
	}
}

type CreatePlanRequest struct {
	Name           string  `json:"name" binding:"required,max=100"`
	Slug           string  `json:"slug" binding:"required,max=100"`
	PricingType    string  `json:"pricing_type" binding:"required,oneof=percentual fixo hibrido"`
	PercentRate    float64 `json:"percent_rate" binding:"min=0,max=1"`
	FixedRateCents int64   `json:"fixed_rate_cents" binding:"min=0"`
	MinFeeCents    int64   `json:"min_fee_cents" binding:"min=0"`
	MaxFeeCents    *int64  `json:"max_fee_cents"`
	IsSubsidized   bool    `json:"is_subsidized"`
	SubsidyPercent float64 `json:"subsidy_percent" binding:"min=0,max=100"`
	DisplayOrder   int     `json:"display_order"`
	Notes          string  `json:"notes" binding:"max=500"`
}

type UpdatePlanRequest struct {
	Name           string  `json:"name" binding:"required,max=100"`
	Slug           string  `json:"slug" binding:"required,max=100"`
	PricingType    string  `json:"pricing_type" binding:"required,oneof=percentual fixo hibrido"`
	PercentRate    float64 `json:"percent_rate" binding:"min=0,max=1"`
	FixedRateCents int64   `json:"fixed_rate_cents" binding:"min=0"`
	MinFeeCents    int64   `json:"min_fee_cents" binding:"min=0"`
	MaxFeeCents    *int64  `json:"max_fee_cents"`
	IsSubsidized   bool    `json:"is_subsidized"`
	SubsidyPercent float64 `json:"subsidy_percent" binding:"min=0,max=100"`
	DisplayOrder   int     `json:"display_order"`
	Notes          string  `json:"notes" binding:"max=500"`
	IsActive       *bool   `json:"is_active"`
}

type PreviewPlanFeeRequest struct {
	AmountsCents []int64 `json:"amounts_cents" binding:"required,min=1,max=100"`
}

func (h *PlanHandler) CreatePlan(c *gin.Context) {
	var req CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create plan", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", utils.FormatBindingError(err)))
		return
	}

	cmd := usecases.CreatePricingPlanCommand{
		Name:           req.Name,
		Slug:           req.Slug,
		PricingType:    req.PricingType,
		PercentRate:    req.PercentRate,
		FixedRateCents: req.FixedRateCents,
		MinFeeCents:    req.MinFeeCents,
		MaxFeeCents:    req.MaxFeeCents,
		IsSubsidized:   req.IsSubsidized,
		SubsidyPercent: req.SubsidyPercent,
		DisplayOrder:   req.DisplayOrder,
		Notes:          req.Notes,
	}

	result, err := h.createPlanUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "Pricing plan created successfully")
}

func (h *PlanHandler) UpdatePlan(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "sid", id.PrefixPricingPlan, "pricing plan")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update plan", "sid", sid, "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", utils.FormatBindingError(err)))
		return
	}

	cmd := usecases.UpdatePricingPlanCommand{
		SID:            sid,
		Name:           req.Name,
		Slug:           req.Slug,
		PricingType:    req.PricingType,
		PercentRate:    req.PercentRate,
		FixedRateCents: req.FixedRateCents,
		MinFeeCents:    req.MinFeeCents,
		MaxFeeCents:    req.MaxFeeCents,
		IsSubsidized:   req.IsSubsidized,
		SubsidyPercent: req.SubsidyPercent,
		DisplayOrder:   req.DisplayOrder,
		Notes:          req.Notes,
		IsActive:       req.IsActive,
	}

	result, err := h.updatePlanUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result, "Pricing plan updated successfully")
}

func (h *PlanHandler) GetPlan(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "sid", id.PrefixPricingPlan, "pricing plan")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getPlanUC.Execute(c.Request.Context(), sid)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

func (h *PlanHandler) ListPlans(c *gin.Context) {
	page, pageSize := utils.ParsePagination(c)
	activeOnly := c.Query("active") == "true"

	cmd := usecases.ListPricingPlansCommand{
		ActiveOnly: activeOnly,
		Offset:     (page - 1) * pageSize,
		Limit:      pageSize,
	}

	result, err := h.listPlansUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.ListSuccessResponse(c, result.Plans, result.Total, page, pageSize)
}

func (h *PlanHandler) DeletePlan(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "sid", id.PrefixPricingPlan, "pricing plan")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deletePlanUC.Execute(c.Request.Context(), sid); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

func (h *PlanHandler) PreviewPlanFee(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "sid", id.PrefixPricingPlan, "pricing plan")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req PreviewPlanFeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for plan fee preview", "sid", sid, "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", utils.FormatBindingError(err)))
		return
	}

	result, err := h.previewFeeUC.Execute(c.Request.Context(), usecases.PreviewPlanFeeCommand{
		PlanSID:      sid,
		AmountsCents: req.AmountsCents,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}
