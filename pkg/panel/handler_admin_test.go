package panel

import (
	"net/http"
	"testing"
)

func TestAdminDashboard(t *testing.T) {
	e := newTestEngine(t)
	loginAs(t, e, 2)

	status, body := do(t, e, http.MethodGet, "/api/v1/admin/dashboard", nil)
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	modules := body["modules"].([]any)
	if len(modules) != 13 {
		t.Fatalf("modules = %d, want 13", len(modules))
	}
	first := modules[0].(map[string]any)
	if first["key"] != "users" {
		t.Errorf("first module = %v", first["key"])
	}
}

func TestAdminListUsersFilters(t *testing.T) {
	e := newTestEngine(t)
	loginAs(t, e, 2)

	status, body := do(t, e, http.MethodGet, "/api/v1/admin/users?q=demo", nil)
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	users := body["users"].([]any)
	if len(users) != 2 {
		t.Fatalf("q=demo matched %d users, want 2", len(users))
	}

	_, body = do(t, e, http.MethodGet, "/api/v1/admin/users?role=admin", nil)
	users = body["users"].([]any)
	if len(users) != 2 {
		t.Errorf("role=admin matched %d users, want 2", len(users))
	}

	_, body = do(t, e, http.MethodGet, "/api/v1/admin/users?q=DEMO&role=user", nil)
	users = body["users"].([]any)
	if len(users) != 1 {
		t.Fatalf("combined filter matched %d users, want 1", len(users))
	}
	if users[0].(map[string]any)["email"] != "user@demo.com" {
		t.Errorf("combined filter = %v", users[0])
	}
}

func TestAdminCreateUserDuplicateEmail(t *testing.T) {
	e := newTestEngine(t)
	loginAs(t, e, 2)

	status, body := do(t, e, http.MethodPost, "/api/v1/admin/users",
		map[string]any{"email": "user@example.com", "password": "x"})
	if status != http.StatusBadRequest || body["error"] != "Email already exists" {
		t.Fatalf("duplicate: status=%d body=%v", status, body)
	}

	status, body = do(t, e, http.MethodPost, "/api/v1/admin/users",
		map[string]any{"email": "fresh@example.com", "password": "x"})
	if status != http.StatusCreated {
		t.Fatalf("create: status=%d body=%v", status, body)
	}
	u := body["user"].(map[string]any)
	if u["roles"].([]any)[0] != "user" {
		t.Errorf("default roles = %v", u["roles"])
	}
}

func TestAdminForceLogoutClearsSession(t *testing.T) {
	e := newTestEngine(t)
	loginAs(t, e, 2)

	status, body := do(t, e, http.MethodPost, "/api/v1/admin/users/2/force-logout", nil)
	if status != http.StatusOK || body["message"] != "User logged out" {
		t.Fatalf("status=%d body=%v", status, body)
	}
	if e.store.Session != nil {
		t.Error("session survived force logout of the session user")
	}
}

func TestAdminRotateUserCredential(t *testing.T) {
	e := newTestEngine(t)
	loginAs(t, e, 2)

	status, body := do(t, e, http.MethodPost, "/api/v1/admin/users/1/credentials/rotate", nil)
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if body["user_id"] != float64(1) {
		t.Errorf("user_id = %v", body["user_id"])
	}
	cred := body["credential"].(map[string]any)
	if cred["version"] != float64(4) {
		t.Errorf("first rotation version = %v, want 4", cred["version"])
	}

	_, body = do(t, e, http.MethodPost, "/api/v1/admin/users/1/credentials/rotate", nil)
	cred = body["credential"].(map[string]any)
	if cred["version"] != float64(5) {
		t.Errorf("second rotation version = %v, want 5", cred["version"])
	}
}

func TestAdminExtendSubscription(t *testing.T) {
	e := newTestEngine(t)
	loginAs(t, e, 2)

	before := e.store.SubscriptionByID(1).ExpiresAt

	status, body := do(t, e, http.MethodPost, "/api/v1/admin/subscriptions/1/extend",
		map[string]any{"extend_days": 10})
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	sub := body["subscription"].(map[string]any)
	want := before + 10*86_400_000
	if sub["expires_at"] != float64(want) {
		t.Errorf("expires_at = %v, want %d", sub["expires_at"], want)
	}

	// An absolute expiry wins over relative extensions.
	status, body = do(t, e, http.MethodPost, "/api/v1/admin/subscriptions/1/extend",
		map[string]any{"expires_at": 1_900_000_000_000, "extend_days": 5})
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	sub = body["subscription"].(map[string]any)
	if sub["expires_at"] != float64(1_900_000_000_000) {
		t.Errorf("expires_at = %v, want the absolute override", sub["expires_at"])
	}
}

func TestAdminCreateSubscriptionRequiresPlan(t *testing.T) {
	e := newTestEngine(t)
	loginAs(t, e, 2)

	status, body := do(t, e, http.MethodPost, "/api/v1/admin/subscriptions",
		map[string]any{"user_id": 1})
	if status != http.StatusBadRequest || body["error"] != "Plan id is required" {
		t.Fatalf("status=%d body=%v", status, body)
	}

	status, body = do(t, e, http.MethodPost, "/api/v1/admin/subscriptions",
		map[string]any{"user_id": 1, "plan_id": 2})
	if status != http.StatusCreated {
		t.Fatalf("status = %d, want 201", status)
	}
	if e.store.Subscriptions[0].PlanID != 2 {
		t.Error("subscription not prepended")
	}
}

func TestAdminCouponLifecycle(t *testing.T) {
	e := newTestEngine(t)
	loginAs(t, e, 2)

	status, body := do(t, e, http.MethodPost, "/api/v1/admin/coupons",
		map[string]any{"code": "WELCOME10", "name": "dup", "discount_type": "percent"})
	if status != http.StatusBadRequest || body["error"] != "Code already exists" {
		t.Fatalf("duplicate code: status=%d body=%v", status, body)
	}

	status, body = do(t, e, http.MethodPost, "/api/v1/admin/coupons",
		map[string]any{"code": "SPRING", "name": "Spring sale", "discount_type": "fixed", "discount_value": 500})
	if status != http.StatusCreated {
		t.Fatalf("create: status=%d body=%v", status, body)
	}
	id := int64(body["id"].(float64))
	if e.store.Coupons[0].Code != "SPRING" {
		t.Error("coupon not prepended")
	}

	status, body = do(t, e, http.MethodDelete, "/api/v1/admin/coupons/"+itoa(id), nil)
	if status != http.StatusOK || body["message"] != "ok" {
		t.Fatalf("delete: status=%d body=%v", status, body)
	}
	if e.store.CouponByID(id) != nil {
		t.Error("coupon still present after delete")
	}
}

func TestAdminBillingOptionValidation(t *testing.T) {
	e := newTestEngine(t)
	loginAs(t, e, 2)

	status, body := do(t, e, http.MethodPost, "/api/v1/admin/plans/1/billing-options",
		map[string]any{"name": "Weekly"})
	if status != http.StatusBadRequest || body["error"] != "Duration and price are required" {
		t.Fatalf("status=%d body=%v", status, body)
	}

	// Option 2 belongs to plan 2, not plan 1.
	status, body = do(t, e, http.MethodPatch, "/api/v1/admin/plans/1/billing-options/2",
		map[string]any{"price_cents": 1})
	if status != http.StatusNotFound {
		t.Fatalf("cross-plan patch: status=%d body=%v", status, body)
	}

	status, body = do(t, e, http.MethodPost, "/api/v1/admin/plans/1/billing-options",
		map[string]any{"name": "Weekly", "duration_value": 7, "duration_unit": "day", "price_cents": 299})
	if status != http.StatusCreated {
		t.Fatalf("create: status=%d body=%v", status, body)
	}
	// Billing options come back raw, no envelope.
	if body["plan_id"] != float64(1) || body["price_cents"] != float64(299) {
		t.Errorf("raw option = %v", body)
	}
}

func TestAdminPublishAnnouncement(t *testing.T) {
	e := newTestEngine(t)
	loginAs(t, e, 2)

	status, body := do(t, e, http.MethodPost, "/api/v1/admin/announcements",
		map[string]any{"title": "Window", "content": "Maintenance tonight"})
	if status != http.StatusCreated {
		t.Fatalf("create: status=%d body=%v", status, body)
	}
	ann := body["announcement"].(map[string]any)
	if ann["status"] != float64(AnnouncementDraft) {
		t.Errorf("new announcement status = %v, want draft", ann["status"])
	}
	id := int64(ann["id"].(float64))

	status, body = do(t, e, http.MethodPost, "/api/v1/admin/announcements/"+itoa(id)+"/publish", nil)
	if status != http.StatusOK {
		t.Fatalf("publish: status=%d body=%v", status, body)
	}
	ann = body["announcement"].(map[string]any)
	if ann["status"] != float64(AnnouncementPublished) {
		t.Errorf("published status = %v", ann["status"])
	}
	if ann["published_at"] == nil {
		t.Error("published_at not stamped")
	}
}

func TestAdminSecuritySettingsAliases(t *testing.T) {
	e := newTestEngine(t)
	loginAs(t, e, 2)

	status, body := do(t, e, http.MethodPatch, "/api/v1/admin/security-settings",
		map[string]any{"enable_api": true, "signature_algorithm": "chacha20-poly1305"})
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	setting := body["setting"].(map[string]any)
	if setting["third_party_api_enabled"] != true {
		t.Errorf("enable_api alias ignored: %v", setting)
	}
	if setting["encryption_algorithm"] != "chacha20-poly1305" {
		t.Errorf("signature_algorithm alias ignored: %v", setting)
	}

	// Canonical fields win when both spellings are sent.
	status, body = do(t, e, http.MethodPatch, "/api/v1/admin/security-settings",
		map[string]any{"signature_algorithm": "alias", "encryption_algorithm": "canonical"})
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	setting = body["setting"].(map[string]any)
	if setting["encryption_algorithm"] != "canonical" {
		t.Errorf("alias won over canonical: %v", setting)
	}
}

func TestAdminAuditLogExport(t *testing.T) {
	e := newTestEngine(t)
	loginAs(t, e, 2)

	status, body := do(t, e, http.MethodGet, "/api/v1/admin/audit-logs?action=plan", nil)
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	logs := body["logs"].([]any)
	if len(logs) != 1 {
		t.Fatalf("action filter matched %d logs, want 1", len(logs))
	}

	status, body = do(t, e, http.MethodGet, "/api/v1/admin/audit-logs/export", nil)
	if status != http.StatusOK {
		t.Fatalf("export status = %d", status)
	}
	if body["total_count"] != float64(3) {
		t.Errorf("total_count = %v, want 3", body["total_count"])
	}
	if _, ok := body["pagination"]; ok {
		t.Error("export must not paginate")
	}
}
