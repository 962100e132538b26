package handlers

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prato-inc/prato/internal/domain/billing"
	"github.com/prato-inc/prato/internal/interfaces/http/handlers/testutil"
	"github.com/prato-inc/prato/internal/shared/errors"
)

func TestRoutingHandler_ResolveRoute_MissingTenantID(t *testing.T) {
	handler := NewRoutingHandler(nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/routing/resolve", nil)

	handler.ResolveRoute(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.False(t, resp.Success)
}

func TestRoutingHandler_ResolveRoute_ZeroTenantID(t *testing.T) {
	handler := NewRoutingHandler(nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/routing/resolve?tenant_id=0", nil)
	testutil.SetQueryParams(c, map[string]string{"tenant_id": "0"})

	handler.ResolveRoute(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRoutingHandler_ComputeFee_MissingTenantID(t *testing.T) {
	handler := NewRoutingHandler(nil, nil, nil)

	reqBody := map[string]interface{}{"amount_cents": 10000}
	c, w := testutil.NewTestContext(http.MethodPost, "/routing/fees/compute", reqBody)

	handler.ComputeFee(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRoutingHandler_ComputeFee_NegativeAmount(t *testing.T) {
	handler := NewRoutingHandler(nil, nil, nil)

	reqBody := map[string]interface{}{"tenant_id": 42, "amount_cents": -1}
	c, w := testutil.NewTestContext(http.MethodPost, "/routing/fees/compute", reqBody)

	handler.ComputeFee(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRoutingHandler_SelectCredential_MissingProviderSID(t *testing.T) {
	handler := NewRoutingHandler(nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/routing/credentials/select", nil)
	testutil.SetQueryParams(c, map[string]string{"tenant_id": "42"})

	handler.SelectCredential(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRoutingHandler_SelectCredential_InvalidTenantID(t *testing.T) {
	handler := NewRoutingHandler(nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/routing/credentials/select", nil)
	testutil.SetQueryParams(c, map[string]string{
		"provider_sid": "psp_abc123def456",
		"tenant_id":    "not-a-number",
	})

	handler.SelectCredential(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMapRoutingError(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode int
	}{
		{"no route matched", billing.ErrNoRouteMatched, http.StatusNotFound},
		{"wrapped no route matched", fmt.Errorf("resolve: %w", billing.ErrNoRouteMatched), http.StatusNotFound},
		{"no credential available", billing.ErrNoCredentialAvailable, http.StatusNotFound},
		{"invalid amount", billing.ErrInvalidAmount, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapped := mapRoutingError(tt.err)
			appErr := errors.GetAppError(mapped)
			require.NotNil(t, appErr)
			assert.Equal(t, tt.expectedCode, appErr.Code)
		})
	}
}

func TestMapRoutingError_Passthrough(t *testing.T) {
	err := stderrors.New("connection refused")
	assert.Equal(t, err, mapRoutingError(err))
}
