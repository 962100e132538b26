package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prato-inc/prato/internal/interfaces/http/handlers/testutil"
)

func TestPolicyHandler_UpdateGlobalPolicy_NegativeLimit(t *testing.T) {
	handler := NewPolicyHandler(nil, nil, nil, nil, nil, nil)

	reqBody := map[string]interface{}{
		"allow_free_plan": true,
		"max_plans":       -1,
	}
	c, w := testutil.NewTestContext(http.MethodPut, "/policy/global", reqBody)

	handler.UpdateGlobalPolicy(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.False(t, resp.Success)
}

func TestPolicyHandler_UpdateGlobalPolicy_PercentAboveOne(t *testing.T) {
	handler := NewPolicyHandler(nil, nil, nil, nil, nil, nil)

	reqBody := map[string]interface{}{
		"tx_fee_max_percent": 1.5,
	}
	c, w := testutil.NewTestContext(http.MethodPut, "/policy/global", reqBody)

	handler.UpdateGlobalPolicy(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPolicyHandler_GetEffectivePolicy_InvalidPartnerID(t *testing.T) {
	handler := NewPolicyHandler(nil, nil, nil, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/partners/abc/policy/effective", nil)
	testutil.SetURLParam(c, "partner_id", "abc")

	handler.GetEffectivePolicy(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPolicyHandler_GetOverride_ZeroPartnerID(t *testing.T) {
	handler := NewPolicyHandler(nil, nil, nil, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/partners/0/policy/override", nil)
	testutil.SetURLParam(c, "partner_id", "0")

	handler.GetOverride(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPolicyHandler_DeleteOverride_InvalidPartnerID(t *testing.T) {
	handler := NewPolicyHandler(nil, nil, nil, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodDelete, "/partners/-5/policy/override", nil)
	testutil.SetURLParam(c, "partner_id", "-5")

	handler.DeleteOverride(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
