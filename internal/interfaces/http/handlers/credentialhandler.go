package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/prato-inc/prato/internal/application/billing/usecases"
	"github.com/prato-inc/prato/internal/shared/errors"
	"github.com/prato-inc/prato/internal/shared/id"
	"github.com/prato-inc/prato/internal/shared/logger"
	"github.com/prato-inc/prato/internal/shared/utils"
)

type CredentialHandler struct {
	createCredentialUC *usecases.CreateCredentialUseCase
	rotateCredentialUC *usecases.RotateCredentialUseCase
	listCredentialsUC  *usecases.ListCredentialsUseCase
	deleteCredentialUC *usecases.DeleteCredentialUseCase
	logger             logger.Interface
}

func NewCredentialHandler(
	createCredentialUC *usecases.CreateCredentialUseCase,
	rotateCredentialUC *usecases.RotateCredentialUseCase,
	listCredentialsUC *usecases.ListCredentialsUseCase,
	deleteCredentialUC *usecases.DeleteCredentialUseCase,
) *CredentialHandler {
	return &CredentialHandler{
		createCredentialUC: createCredentialUC,
		rotateCredentialUC: rotateCredentialUC,
		listCredentialsUC:  listCredentialsUC,
		deleteCredentialUC: deleteCredentialUC,
		logger:             logger.NewLogger(),
	}
}

type CreateCredentialRequest struct {
	ProviderSID            string `json:"provider_sid" binding:"required"`
	Scope                  string `json:"scope" binding:"required,oneof=platform tenant"`
	TenantID               *uint  `json:"tenant_id"`
	APIKeyEncrypted        string `json:"api_key_encrypted" binding:"required"`
	WebhookSecretEncrypted string `json:"webhook_secret_encrypted"`
	AccountRef             string `json:"account_ref" binding:"max=255"`
	UsePlatformCredentials bool   `json:"use_platform_credentials"`
}

type RotateCredentialRequest struct {
	APIKeyEncrypted        string `json:"api_key_encrypted" binding:"required"`
	WebhookSecretEncrypted string `json:"webhook_secret_encrypted"`
	AccountRef             string `json:"account_ref" binding:"max=255"`
}

func (h *CredentialHandler) CreateCredential(c *gin.Context) {
	var req CreateCredentialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create credential", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", utils.FormatBindingError(err)))
		return
	}

	cmd := usecases.CreateCredentialCommand{
		ProviderSID:            req.ProviderSID,
		Scope:                  req.Scope,
		TenantID:               req.TenantID,
		APIKeyEncrypted:        req.APIKeyEncrypted,
		WebhookSecretEncrypted: req.WebhookSecretEncrypted,
		AccountRef:             req.AccountRef,
		UsePlatformCredentials: req.UsePlatformCredentials,
	}

	result, err := h.createCredentialUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "Credential created successfully")
}

func (h *CredentialHandler) RotateCredential(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "sid", id.PrefixCredential, "credential")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req RotateCredentialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for rotate credential", "sid", sid, "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", utils.FormatBindingError(err)))
		return
	}

	result, err := h.rotateCredentialUC.Execute(c.Request.Context(), usecases.RotateCredentialCommand{
		SID:                    sid,
		APIKeyEncrypted:        req.APIKeyEncrypted,
		WebhookSecretEncrypted: req.WebhookSecretEncrypted,
		AccountRef:             req.AccountRef,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result, "Credential rotated successfully")
}

func (h *CredentialHandler) ListCredentials(c *gin.Context) {
	page, pageSize := utils.ParsePagination(c)

	cmd := usecases.ListCredentialsCommand{
		Offset: (page - 1) * pageSize,
		Limit:  pageSize,
	}

	result, err := h.listCredentialsUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.ListSuccessResponse(c, result.Credentials, result.Total, page, pageSize)
}

func (h *CredentialHandler) DeleteCredential(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "sid", id.PrefixCredential, "credential")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteCredentialUC.Execute(c.Request.Context(), sid); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}
