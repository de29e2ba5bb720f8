package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeronetwork/panelmock/pkg/panel"
)

// startServer boots an engine on an ephemeral port and returns its base
// URL plus a logged-in HTTP helper.
func startServer(t *testing.T) (string, *panel.Engine) {
	t.Helper()
	engine := panel.New(panel.WithLatency(0))
	srv := panel.NewServer(engine, panel.WithAddr("127.0.0.1:0"))
	require.NoError(t, srv.Start())
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Stop(ctx)
	})
	return "http://" + srv.Addr(), engine
}

func call(t *testing.T, method, url string, body any) (int, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	if res.StatusCode == http.StatusNoContent {
		return res.StatusCode, nil
	}
	var decoded map[string]any
	require.NoError(t, json.NewDecoder(res.Body).Decode(&decoded))
	return res.StatusCode, decoded
}

func TestLoginOrderRefundFlow(t *testing.T) {
	base, _ := startServer(t)

	// Anonymous storefront works without a session.
	status, body := call(t, http.MethodGet, base+"/api/v1/ping", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body["status"])

	// Authenticated surface is closed until login.
	status, body = call(t, http.MethodGet, base+"/api/v1/user/orders", nil)
	require.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Unauthorized", body["error"])

	status, body = call(t, http.MethodPost, base+"/api/v1/auth/login",
		map[string]any{"email": "user@example.com", "password": "P@ssw0rd!"})
	require.Equal(t, http.StatusOK, status)
	require.NotEmpty(t, body["access_token"])

	// Place a balance order. It settles immediately.
	status, body = call(t, http.MethodPost, base+"/api/v1/user/orders",
		map[string]any{"plan_id": 1, "billing_option_id": 1, "payment_method": "balance"})
	require.Equal(t, http.StatusOK, status)
	order := body["order"].(map[string]any)
	assert.Equal(t, float64(2), order["status"])
	orderID := int64(order["id"].(float64))

	// The admin sees the same order and can partially refund it.
	status, _ = call(t, http.MethodPost, base+"/api/v1/auth/login",
		map[string]any{"email": "admin@example.com", "password": "P@ssw0rd!"})
	require.Equal(t, http.StatusOK, status)

	status, body = call(t, http.MethodPost,
		fmt.Sprintf("%s/api/v1/admin/orders/%d/refund", base, orderID),
		map[string]any{"amount_cents": 500, "reason": "partial goodwill"})
	require.Equal(t, http.StatusOK, status)
	order = body["order"].(map[string]any)
	assert.Equal(t, float64(5), order["status"])
	assert.Equal(t, float64(500), order["refunded_cents"])

	// Refunding past the remaining balance is rejected.
	status, body = call(t, http.MethodPost,
		fmt.Sprintf("%s/api/v1/admin/orders/%d/refund", base, orderID),
		map[string]any{"amount_cents": 10_000})
	require.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body["error"], "exceeds maximum refundable")
}

func TestPaginationOverHTTP(t *testing.T) {
	base, _ := startServer(t)

	status, _ := call(t, http.MethodPost, base+"/api/v1/auth/login",
		map[string]any{"email": "admin@example.com", "password": "P@ssw0rd!"})
	require.Equal(t, http.StatusOK, status)

	status, body := call(t, http.MethodGet, base+"/api/v1/admin/users?page=1&per_page=3", nil)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, body["users"], 3)
	meta := body["pagination"].(map[string]any)
	assert.Equal(t, float64(4), meta["total_count"])
	assert.Equal(t, true, meta["has_next"])

	status, body = call(t, http.MethodGet, base+"/api/v1/admin/users?page=2&per_page=3", nil)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, body["users"], 1)
	meta = body["pagination"].(map[string]any)
	assert.Equal(t, false, meta["has_next"])
	assert.Equal(t, true, meta["has_prev"])

	// Pages past the end clamp to the last page instead of 404ing.
	status, body = call(t, http.MethodGet, base+"/api/v1/admin/users?page=99&per_page=3", nil)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, body["users"], 1)
}

func TestUnknownEndpointOverHTTP(t *testing.T) {
	base, _ := startServer(t)

	status, body := call(t, http.MethodGet, base+"/api/v1/nope", nil)
	require.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Mock endpoint not found", body["error"])
}
