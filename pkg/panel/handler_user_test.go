package panel

import (
	"net/http"
	"strings"
	"testing"
)

func TestGetProfileLegacyAlias(t *testing.T) {
	e := newTestEngine(t)
	loginAs(t, e, 1)

	for _, url := range []string{"/api/v1/user/account/profile", "/api/v1/user/profile"} {
		status, body := do(t, e, http.MethodGet, url, nil)
		if status != http.StatusOK {
			t.Fatalf("%s: status = %d", url, status)
		}
		profile := body["profile"].(map[string]any)
		if profile["email"] != "user@example.com" {
			t.Errorf("%s: email = %v", url, profile["email"])
		}
		if _, ok := profile["balance_cents"]; ok {
			t.Errorf("%s: balance leaked into profile", url)
		}
	}
}

func TestUpdateProfile(t *testing.T) {
	e := newTestEngine(t)
	loginAs(t, e, 1)

	status, body := do(t, e, http.MethodPatch, "/api/v1/user/account/profile",
		map[string]any{"display_name": "Renamed"})
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	profile := body["profile"].(map[string]any)
	if profile["display_name"] != "Renamed" {
		t.Errorf("display_name = %v", profile["display_name"])
	}
	if e.store.UserByID(1).DisplayName != "Renamed" {
		t.Error("store not updated")
	}
}

func TestGetBalance(t *testing.T) {
	e := newTestEngine(t)
	loginAs(t, e, 1)

	status, body := do(t, e, http.MethodGet, "/api/v1/user/balance", nil)
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if body["balance_cents"] != float64(100000) || body["currency"] != "USD" {
		t.Errorf("balance = %v %v", body["balance_cents"], body["currency"])
	}
	txns := body["transactions"].([]any)
	if len(txns) != 2 {
		t.Fatalf("transactions = %d, want one per order", len(txns))
	}
	first := txns[0].(map[string]any)
	if first["entry_type"] != "debit" {
		t.Errorf("paid order entry_type = %v", first["entry_type"])
	}
	if !strings.HasPrefix(first["description"].(string), "Order ORD-") {
		t.Errorf("description = %v", first["description"])
	}
}

func TestListUserNodesFilters(t *testing.T) {
	e := newTestEngine(t)
	loginAs(t, e, 1)

	status, body := do(t, e, http.MethodGet, "/api/v1/user/nodes", nil)
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	nodes := body["nodes"].([]any)
	if len(nodes) != 4 {
		t.Fatalf("nodes = %d, want all seeded", len(nodes))
	}
	// End users never see control plane details.
	for _, n := range nodes {
		m := n.(map[string]any)
		for _, key := range []string{"control_endpoint", "access_address", "load_percent"} {
			if _, ok := m[key]; ok {
				t.Errorf("node %v leaked %s", m["id"], key)
			}
		}
	}

	_, body = do(t, e, http.MethodGet, "/api/v1/user/nodes?protocol=trojan", nil)
	nodes = body["nodes"].([]any)
	if len(nodes) != 1 || nodes[0].(map[string]any)["id"] != float64(3) {
		t.Errorf("protocol=trojan matched %v", nodes)
	}

	_, body = do(t, e, http.MethodGet, "/api/v1/user/nodes?status=3", nil)
	nodes = body["nodes"].([]any)
	if len(nodes) != 1 || nodes[0].(map[string]any)["id"] != float64(4) {
		t.Errorf("status=3 matched %v", nodes)
	}
}

func TestPreviewSubscription(t *testing.T) {
	e := newTestEngine(t)
	loginAs(t, e, 1)

	status, body := do(t, e, http.MethodGet, "/api/v1/user/subscriptions/1/preview", nil)
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	// Default template is the Clash yaml one.
	if body["template_id"] != float64(1) {
		t.Errorf("template_id = %v", body["template_id"])
	}
	if body["content_type"] != "text/yaml" {
		t.Errorf("content_type = %v", body["content_type"])
	}
	if body["etag"] == "" || body["etag"] == nil {
		t.Error("etag missing")
	}

	status, body = do(t, e, http.MethodGet, "/api/v1/user/subscriptions/1/preview?template_id=2", nil)
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if body["template_id"] != float64(2) || body["content_type"] != "application/json" {
		t.Errorf("explicit template: %v %v", body["template_id"], body["content_type"])
	}
}

func TestPreviewSubscriptionOwnership(t *testing.T) {
	e := newTestEngine(t)
	loginAs(t, e, 4)

	status, body := do(t, e, http.MethodGet, "/api/v1/user/subscriptions/1/preview", nil)
	if status != http.StatusNotFound || body["error"] != "Subscription not found" {
		t.Fatalf("status=%d body=%v", status, body)
	}
}

func TestSubscriptionTraffic(t *testing.T) {
	e := newTestEngine(t)
	loginAs(t, e, 1)

	status, body := do(t, e, http.MethodGet, "/api/v1/user/subscriptions/1/traffic?per_page=100", nil)
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	records := body["records"].([]any)
	if len(records) != 48 {
		t.Fatalf("records = %d, want 48", len(records))
	}
	summary := body["summary"].(map[string]any)
	if summary["charged_bytes"].(float64) < summary["raw_bytes"].(float64) {
		t.Error("charged bytes below raw bytes despite multipliers")
	}

	// The synthetic dataset is stable across reads.
	_, again := do(t, e, http.MethodGet, "/api/v1/user/subscriptions/1/traffic?per_page=100", nil)
	if again["summary"].(map[string]any)["raw_bytes"] != summary["raw_bytes"] {
		t.Error("traffic changed between reads")
	}

	// Protocol filter drops the other protocols from both records and
	// the summary.
	_, filtered := do(t, e, http.MethodGet, "/api/v1/user/subscriptions/1/traffic?protocol=tls&per_page=100", nil)
	fr := filtered["records"].([]any)
	if len(fr) != 16 {
		t.Fatalf("tls records = %d, want 16", len(fr))
	}
	if filtered["summary"].(map[string]any)["raw_bytes"].(float64) >= summary["raw_bytes"].(float64) {
		t.Error("filtered summary not reduced")
	}
}

func TestListUserPaymentChannels(t *testing.T) {
	e := newTestEngine(t)
	loginAs(t, e, 1)

	status, body := do(t, e, http.MethodGet, "/api/v1/user/payment-channels", nil)
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	channels := body["channels"].([]any)
	if len(channels) != 1 {
		t.Fatalf("channels = %d, want only the enabled one", len(channels))
	}
	if channels[0].(map[string]any)["code"] != "stripe_checkout" {
		t.Errorf("channel = %v", channels[0])
	}
	methods := body["payment_methods"].([]any)
	if len(methods) != 3 || methods[1] != "external" {
		t.Errorf("methods = %v, want external inserted", methods)
	}
}

func TestListUserPlansExcludesHidden(t *testing.T) {
	e := newTestEngine(t)
	loginAs(t, e, 1)
	e.store.PlanByID(3).IsVisible = false

	status, body := do(t, e, http.MethodGet, "/api/v1/user/plans", nil)
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	plans := body["plans"].([]any)
	if len(plans) != 2 {
		t.Fatalf("plans = %d, want hidden plan excluded", len(plans))
	}
	if _, ok := body["pagination"]; ok {
		t.Error("storefront plan list must not paginate")
	}
	for _, p := range plans {
		opts := p.(map[string]any)["billing_options"].([]any)
		for _, o := range opts {
			if o.(map[string]any)["visible"] != true {
				t.Errorf("hidden billing option leaked: %v", o)
			}
		}
	}
}

func TestChangePasswordAndEmail(t *testing.T) {
	e := newTestEngine(t)
	loginAs(t, e, 1)

	status, body := do(t, e, http.MethodPost, "/api/v1/user/account/password",
		map[string]any{"current_password": devPassword, "new_password": "N3wP@ss"})
	if status != http.StatusOK || body["message"] != "Password updated" {
		t.Fatalf("password: status=%d body=%v", status, body)
	}

	status, body = do(t, e, http.MethodPost, "/api/v1/user/account/email",
		map[string]any{"email": "moved@example.com", "code": "123456"})
	if status != http.StatusOK {
		t.Fatalf("email: status=%d body=%v", status, body)
	}
	if e.store.UserByID(1).Email != "moved@example.com" {
		t.Error("email not updated in store")
	}

	status, body = do(t, e, http.MethodPost, "/api/v1/user/account/email", map[string]any{})
	if status != http.StatusBadRequest || body["error"] != "Email required" {
		t.Errorf("missing email: status=%d body=%v", status, body)
	}
}

func TestListUserSubscriptions(t *testing.T) {
	e := newTestEngine(t)
	loginAs(t, e, 1)

	status, body := do(t, e, http.MethodGet, "/api/v1/user/subscriptions", nil)
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	subs := body["subscriptions"].([]any)
	if len(subs) != 1 {
		t.Fatalf("subscriptions = %d", len(subs))
	}
	sub := subs[0].(map[string]any)
	if sub["token"] != "abc123" {
		t.Errorf("token = %v", sub["token"])
	}
	if sub["plan_name"] != "Professional Plan" {
		t.Errorf("plan_name = %v", sub["plan_name"])
	}
	ids := sub["available_template_ids"].([]any)
	if len(ids) != 3 {
		t.Errorf("available_template_ids = %v", ids)
	}
}
