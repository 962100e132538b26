package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/prato-inc/prato/internal/application/policy/usecases"
	"github.com/prato-inc/prato/internal/shared/errors"
	"github.com/prato-inc/prato/internal/shared/logger"
	"github.com/prato-inc/prato/internal/shared/utils"
)

type PolicyHandler struct {
	getGlobalUC    *usecases.GetGlobalPolicyUseCase
	updateGlobalUC *usecases.UpdateGlobalPolicyUseCase
	getEffectiveUC *usecases.GetEffectivePolicyUseCase
	getOverrideUC  *usecases.GetOverrideUseCase
	updateOverride *usecases.UpdateOverrideUseCase
	deleteOverride *usecases.DeleteOverrideUseCase
	logger         logger.Interface
}

func NewPolicyHandler(
	getGlobalUC *usecases.GetGlobalPolicyUseCase,
	updateGlobalUC *usecases.UpdateGlobalPolicyUseCase,
	getEffectiveUC *usecases.GetEffectivePolicyUseCase,
	getOverrideUC *usecases.GetOverrideUseCase,
	updateOverride *usecases.UpdateOverrideUseCase,
	deleteOverride *usecases.DeleteOverrideUseCase,
) *PolicyHandler {
	return &PolicyHandler{
		getGlobalUC:    getGlobalUC,
		updateGlobalUC: updateGlobalUC,
		getEffectiveUC: getEffectiveUC,
		getOverrideUC:  getOverrideUC,
		updateOverride: updateOverride,
		deleteOverride: deleteOverride,
		logger:         logger.NewLogger(),
	}
}

// UpdateGlobalPolicyRequest replaces the global policy wholesale; every
// field must be supplied.
type UpdateGlobalPolicyRequest struct {
	AllowFreePlan       bool    `json:"allow_free_plan"`
	AllowPartnerGateway bool    `json:"allow_partner_gateway"`
	AllowOfflineBilling bool    `json:"allow_offline_billing"`
	MaxPlans            int64   `json:"max_plans" binding:"min=0"`
	MinPaidPriceCents   int64   `json:"min_paid_price_cents" binding:"min=0"`
	MaxModulesPerPlan   int64   `json:"max_modules_per_plan" binding:"min=0"`
	MaxFeaturesPerPlan  int64   `json:"max_features_per_plan" binding:"min=0"`
	MaxTrialDays        int64   `json:"max_trial_days" binding:"min=0"`
	TxFeeMaxPercent     float64 `json:"tx_fee_max_percent" binding:"min=0,max=1"`
	TxFeeMaxFixedCents  int64   `json:"tx_fee_max_fixed_cents" binding:"min=0"`
}

// UpdateOverrideRequest carries the full desired override state. Cycle
// fields advance the named tri-state flags one step; limit fields replace
// whatever was stored, with null meaning inherit.
type UpdateOverrideRequest struct {
	CycleFields []string `json:"cycle_fields"`

	MaxPlans           *int64   `json:"max_plans"`
	MinPaidPriceCents  *int64   `json:"min_paid_price_cents"`
	MaxModulesPerPlan  *int64   `json:"max_modules_per_plan"`
	MaxFeaturesPerPlan *int64   `json:"max_features_per_plan"`
	MaxTrialDays       *int64   `json:"max_trial_days"`
	TxFeeMaxPercent    *float64 `json:"tx_fee_max_percent"`
	TxFeeMaxFixedCents *int64   `json:"tx_fee_max_fixed_cents"`

	Notes *string `json:"notes"`
}

func (h *PolicyHandler) GetGlobalPolicy(c *gin.Context) {
	result, err := h.getGlobalUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

func (h *PolicyHandler) UpdateGlobalPolicy(c *gin.Context) {
	var req UpdateGlobalPolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update global policy", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", utils.FormatBindingError(err)))
		return
	}

	cmd := usecases.UpdateGlobalPolicyCommand{
		AllowFreePlan:       req.AllowFreePlan,
		AllowPartnerGateway: req.AllowPartnerGateway,
		AllowOfflineBilling: req.AllowOfflineBilling,
		MaxPlans:            req.MaxPlans,
		MinPaidPriceCents:   req.MinPaidPriceCents,
		MaxModulesPerPlan:   req.MaxModulesPerPlan,
		MaxFeaturesPerPlan:  req.MaxFeaturesPerPlan,
		MaxTrialDays:        req.MaxTrialDays,
		TxFeeMaxPercent:     req.TxFeeMaxPercent,
		TxFeeMaxFixedCents:  req.TxFeeMaxFixedCents,
	}

	result, err := h.updateGlobalUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result, "Global policy updated successfully")
}

func (h *PolicyHandler) GetEffectivePolicy(c *gin.Context) {
	partnerID, err := parsePartnerID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getEffectiveUC.Execute(c.Request.Context(), partnerID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

func (h *PolicyHandler) GetOverride(c *gin.Context) {
	partnerID, err := parsePartnerID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getOverrideUC.Execute(c.Request.Context(), partnerID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

func (h *PolicyHandler) UpdateOverride(c *gin.Context) {
	partnerID, err := parsePartnerID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateOverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update override",
			"partner_id", partnerID,
			"error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", utils.FormatBindingError(err)))
		return
	}

	cmd := usecases.UpdateOverrideCommand{
		PartnerID:          partnerID,
		CycleFields:        req.CycleFields,
		MaxPlans:           req.MaxPlans,
		MinPaidPriceCents:  req.MinPaidPriceCents,
		MaxModulesPerPlan:  req.MaxModulesPerPlan,
		MaxFeaturesPerPlan: req.MaxFeaturesPerPlan,
		MaxTrialDays:       req.MaxTrialDays,
		TxFeeMaxPercent:    req.TxFeeMaxPercent,
		TxFeeMaxFixedCents: req.TxFeeMaxFixedCents,
		Notes:              req.Notes,
	}

	result, err := h.updateOverride.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result, "Policy override updated successfully")
}

func (h *PolicyHandler) DeleteOverride(c *gin.Context) {
	partnerID, err := parsePartnerID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteOverride.Execute(c.Request.Context(), partnerID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

func parsePartnerID(c *gin.Context) (uint, error) {
	raw := c.Param("partner_id")
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || v == 0 {
		return 0, errors.NewValidationError("invalid partner ID: " + raw)
	}
	return uint(v), nil
}
