package panel

import (
	"net/http"
	"testing"
)

func TestPublicPlansExcludeInactive(t *testing.T) {
	e := newTestEngine(t)
	// Visible but not in the active plan status: must not reach the
	// storefront.
	e.store.PlanByID(1).Status = 1

	status, body := do(t, e, http.MethodGet, "/api/v1/plans", nil)
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	plans := body["plans"].([]any)
	if len(plans) != 2 {
		t.Fatalf("plans = %d, want inactive plan excluded", len(plans))
	}
	for _, p := range plans {
		if p.(map[string]any)["id"] == float64(1) {
			t.Error("inactive plan leaked into public list")
		}
	}
}

func TestStorefrontReadsWithoutSession(t *testing.T) {
	e := newTestEngine(t)

	for _, url := range []string{
		"/api/v1/user/plans",
		"/api/v1/user/announcements",
		"/api/v1/user/payment-channels",
		"/api/v1/user/nodes",
	} {
		status, body := do(t, e, http.MethodGet, url, nil)
		if status != http.StatusOK {
			t.Errorf("%s without session: status = %d body = %v", url, status, body)
		}
	}

	// Account reads still require one.
	status, body := do(t, e, http.MethodGet, "/api/v1/user/account/profile", nil)
	if status != http.StatusUnauthorized || body["error"] != "Unauthorized" {
		t.Errorf("profile without session: status=%d body=%v", status, body)
	}
}

func TestPublicAnnouncementsOnlyPublished(t *testing.T) {
	e := newTestEngine(t)
	e.store.Announcements[0].Status = AnnouncementDraft

	status, body := do(t, e, http.MethodGet, "/api/v1/announcements", nil)
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	items := body["announcements"].([]any)
	for _, a := range items {
		if a.(map[string]any)["status"] != float64(AnnouncementPublished) {
			t.Errorf("unpublished announcement leaked: %v", a)
		}
	}
}
