package panel

import (
	"net/http"
	"testing"
)

func TestAdminPublishTemplate(t *testing.T) {
	e := newTestEngine(t)
	loginAs(t, e, 2)

	status, body := do(t, e, http.MethodPost, "/api/v1/admin/subscription-templates/3/publish",
		map[string]any{"changelog": "First stable cut", "operator": "ops@example.com"})
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	tpl := body["template"].(map[string]any)
	if tpl["version"] != float64(2) {
		t.Errorf("version = %v, want bumped to 2", tpl["version"])
	}
	if tpl["is_published"] != true {
		t.Error("template not marked published")
	}
	entry := body["history"].(map[string]any)
	if entry["version"] != float64(2) || entry["changelog"] != "First stable cut" {
		t.Errorf("history entry = %v", entry)
	}
	if entry["published_by"] != "ops@example.com" {
		t.Errorf("published_by = %v", entry["published_by"])
	}

	hist := e.store.TemplateHistory[3]
	if len(hist) != 1 || hist[0].Version != 2 {
		t.Fatalf("stored history = %v", hist)
	}
}

func TestAdminPublishTemplateDefaultsOperator(t *testing.T) {
	e := newTestEngine(t)
	loginAs(t, e, 2)

	status, body := do(t, e, http.MethodPost, "/api/v1/admin/templates/1/publish", map[string]any{})
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	entry := body["history"].(map[string]any)
	if entry["published_by"] != "Mock Operator" {
		t.Errorf("published_by = %v", entry["published_by"])
	}
	// Seed history for template 1 had two entries, newest first.
	hist := e.store.TemplateHistory[1]
	if len(hist) != 3 || hist[0].Version != 4 || hist[1].Version != 3 {
		t.Fatalf("history order wrong: %+v", hist)
	}
}

func TestAdminUpdateTemplateLeavesVersion(t *testing.T) {
	e := newTestEngine(t)
	loginAs(t, e, 2)

	status, body := do(t, e, http.MethodPatch, "/api/v1/admin/subscription-templates/2",
		map[string]any{"name": "V2Ray JSON v2"})
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	tpl := body["template"].(map[string]any)
	if tpl["name"] != "V2Ray JSON v2" {
		t.Errorf("name = %v", tpl["name"])
	}
	if tpl["version"] != float64(1) {
		t.Errorf("version = %v, editing must not bump it", tpl["version"])
	}
}

func TestAdminTemplateHistoryEmpty(t *testing.T) {
	e := newTestEngine(t)
	loginAs(t, e, 2)

	status, body := do(t, e, http.MethodGet, "/api/v1/admin/templates/3/history", nil)
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if body["template_id"] != float64(3) {
		t.Errorf("template_id = %v", body["template_id"])
	}
	hist, ok := body["history"].([]any)
	if !ok || len(hist) != 0 {
		t.Errorf("history = %v, want empty list", body["history"])
	}
}

func TestAdminCreateTemplate(t *testing.T) {
	e := newTestEngine(t)
	loginAs(t, e, 2)

	status, body := do(t, e, http.MethodPost, "/api/v1/admin/subscription-templates",
		map[string]any{"name": "Sing-box", "client_type": "sing-box", "content_type": "json"})
	if status != http.StatusCreated {
		t.Fatalf("status = %d, want 201", status)
	}
	tpl := body["template"].(map[string]any)
	if tpl["version"] != float64(1) {
		t.Errorf("initial version = %v", tpl["version"])
	}
	if tpl["is_default"] == true {
		t.Error("new template should not be default")
	}
}
