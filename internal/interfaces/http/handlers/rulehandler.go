package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/prato-inc/prato/internal/application/billing/usecases"
	"github.com/prato-inc/prato/internal/shared/errors"
	"github.com/prato-inc/prato/internal/shared/id"
	"github.com/prato-inc/prato/internal/shared/logger"
	"github.com/prato-inc/prato/internal/shared/utils"
)

type RuleHandler struct {
	createRuleUC       *usecases.CreateRuleUseCase
	updateRuleUC       *usecases.UpdateRuleUseCase
	listRulesUC        *usecases.ListRulesUseCase
	deleteRuleUC       *usecases.DeleteRuleUseCase
	reprioritizeRuleUC *usecases.ReprioritizeRulesUseCase
	logger             logger.Interface
}

func NewRuleHandler(
	createRuleUC *usecases.CreateRuleUseCase,
	updateRuleUC *usecases.UpdateRuleUseCase,
	listRulesUC *usecases.ListRulesUseCase,
	deleteRuleUC *usecases.DeleteRuleUseCase,
	reprioritizeRuleUC *usecases.ReprioritizeRulesUseCase,
) *RuleHandler {
	return &RuleHandler{
		createRuleUC:       createRuleUC,
		updateRuleUC:       updateRuleUC,
		listRulesUC:        listRulesUC,
		deleteRuleUC:       deleteRuleUC,
		reprioritizeRuleUC: reprioritizeRuleUC,
		logger:             logger.NewLogger(),
	}
}

type CreateRuleRequest struct {
	Scope       string `json:"scope" binding:"required,rulescope"`
	ScopeID     *uint  `json:"scope_id"`
	ProviderSID string `json:"provider_sid" binding:"required"`
	PlanSID     string `json:"plan_sid"`
	Priority    int    `json:"priority" binding:"min=0"`
	Notes       string `json:"notes" binding:"max=500"`
}

type UpdateRuleRequest struct {
	Scope       string `json:"scope" binding:"required,rulescope"`
	ScopeID     *uint  `json:"scope_id"`
	ProviderSID string `json:"provider_sid" binding:"required"`
	PlanSID     string `json:"plan_sid"`
	Priority    int    `json:"priority" binding:"min=0"`
	Notes       string `json:"notes" binding:"max=500"`
	Enabled     *bool  `json:"enabled"`
}

type ReprioritizeRulesRequest struct {
	Rules []RulePriorityItem `json:"rules" binding:"required,min=1,dive"`
}

type RulePriorityItem struct {
	SID      string `json:"sid" binding:"required"`
	Priority int    `json:"priority" binding:"min=0"`
}

func (h *RuleHandler) CreateRule(c *gin.Context) {
	var req CreateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create rule", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", utils.FormatBindingError(err)))
		return
	}

	cmd := usecases.CreateRuleCommand{
		Scope:       req.Scope,
		ScopeID:     req.ScopeID,
		ProviderSID: req.ProviderSID,
		PlanSID:     req.PlanSID,
		Priority:    req.Priority,
		Notes:       req.Notes,
	}

	result, err := h.createRuleUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "Availability rule created successfully")
}

func (h *RuleHandler) UpdateRule(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "sid", id.PrefixRule, "rule")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update rule", "sid", sid, "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", utils.FormatBindingError(err)))
		return
	}

	cmd := usecases.UpdateRuleCommand{
		SID:         sid,
		Scope:       req.Scope,
		ScopeID:     req.ScopeID,
		ProviderSID: req.ProviderSID,
		PlanSID:     req.PlanSID,
		Priority:    req.Priority,
		Notes:       req.Notes,
		Enabled:     req.Enabled,
	}

	result, err := h.updateRuleUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result, "Availability rule updated successfully")
}

func (h *RuleHandler) ListRules(c *gin.Context) {
	page, pageSize := utils.ParsePagination(c)
	enabledOnly := c.Query("enabled") == "true"

	cmd := usecases.ListRulesCommand{
		EnabledOnly: enabledOnly,
		Offset:      (page - 1) * pageSize,
		Limit:       pageSize,
	}

	result, err := h.listRulesUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.ListSuccessResponse(c, result.Rules, result.Total, page, pageSize)
}

func (h *RuleHandler) DeleteRule(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "sid", id.PrefixRule, "rule")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteRuleUC.Execute(c.Request.Context(), sid); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

func (h *RuleHandler) ReprioritizeRules(c *gin.Context) {
	var req ReprioritizeRulesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for reprioritize rules", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", utils.FormatBindingError(err)))
		return
	}

	inputs := make([]usecases.RulePriorityInput, 0, len(req.Rules))
	for _, item := range req.Rules {
		inputs = append(inputs, usecases.RulePriorityInput{
			SID:      item.SID,
			Priority: item.Priority,
		})
	}

	if err := h.reprioritizeRuleUC.Execute(c.Request.Context(), inputs); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, nil, "Rule priorities updated successfully")
}
