package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prato-inc/prato/internal/interfaces/http/handlers/testutil"
)

func TestRuleHandler_CreateRule_InvalidScope(t *testing.T) {
	handler := NewRuleHandler(nil, nil, nil, nil, nil)

	reqBody := CreateRuleRequest{
		Scope:       "region",
		ProviderSID: "psp_abc123def456",
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/availability-rules", reqBody)

	handler.CreateRule(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.False(t, resp.Success)
}

func TestRuleHandler_CreateRule_MissingProvider(t *testing.T) {
	handler := NewRuleHandler(nil, nil, nil, nil, nil)

	reqBody := map[string]interface{}{"scope": "global", "priority": 10}
	c, w := testutil.NewTestContext(http.MethodPost, "/availability-rules", reqBody)

	handler.CreateRule(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRuleHandler_UpdateRule_InvalidSID(t *testing.T) {
	handler := NewRuleHandler(nil, nil, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPut, "/availability-rules/plan_notarule", nil)
	testutil.SetURLParam(c, "sid", "plan_notarule")

	handler.UpdateRule(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRuleHandler_DeleteRule_InvalidSID(t *testing.T) {
	handler := NewRuleHandler(nil, nil, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodDelete, "/availability-rules/invalid_id", nil)
	testutil.SetURLParam(c, "sid", "invalid_id")

	handler.DeleteRule(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRuleHandler_ReprioritizeRules_EmptyList(t *testing.T) {
	handler := NewRuleHandler(nil, nil, nil, nil, nil)

	reqBody := ReprioritizeRulesRequest{Rules: []RulePriorityItem{}}
	c, w := testutil.NewTestContext(http.MethodPost, "/availability-rules/reprioritize", reqBody)

	handler.ReprioritizeRules(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRuleHandler_ReprioritizeRules_MissingItemSID(t *testing.T) {
	handler := NewRuleHandler(nil, nil, nil, nil, nil)

	reqBody := ReprioritizeRulesRequest{
		Rules: []RulePriorityItem{{Priority: 5}},
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/availability-rules/reprioritize", reqBody)

	handler.ReprioritizeRules(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
