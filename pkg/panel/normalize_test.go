package panel

import (
	"testing"
)

func TestNormalizeUser(t *testing.T) {
	u := &User{ID: 7, Email: "x@example.com", Role: "admin"}
	normalizeUser(u)
	if len(u.Roles) != 1 || u.Roles[0] != "admin" {
		t.Errorf("roles = %v, want promoted singular role", u.Roles)
	}
	if u.Status != StatusActive {
		t.Errorf("status = %d, want default active", u.Status)
	}

	// Roles list wins over the singular field.
	u = &User{ID: 8, Role: "user", Roles: []string{"admin", "user"}}
	normalizeUser(u)
	if u.Role != "admin" {
		t.Errorf("role = %q, want first entry of roles", u.Role)
	}

	// Idempotent: a second pass changes nothing.
	before := *u
	normalizeUser(u)
	if u.Role != before.Role || len(u.Roles) != len(before.Roles) || u.Status != before.Status {
		t.Error("second normalization mutated the user")
	}

	// No role information at all defaults to the user role.
	u = &User{ID: 9}
	normalizeUser(u)
	if u.Role != "user" || u.Roles[0] != "user" {
		t.Errorf("empty user normalized to role=%q roles=%v", u.Role, u.Roles)
	}
}

func TestSubscriptionTokenFromURL(t *testing.T) {
	tests := []struct {
		name string
		sub  Subscription
		want string
	}{
		{"explicit token", Subscription{Token: "abc123", SubscribeURL: "https://p.example.com/sub/zzz"}, "abc123"},
		{"last segment", Subscription{SubscribeURL: "https://p.example.com/sub/tok-9"}, "tok-9"},
		{"trailing slash", Subscription{SubscribeURL: "https://p.example.com/sub/tok-9/"}, "tok-9"},
		{"no url", Subscription{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := subscriptionToken(&tt.sub); got != tt.want {
				t.Errorf("subscriptionToken() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSubscriptionSummaryFallbacks(t *testing.T) {
	s := NewStore()
	sub := &Subscription{ID: 42, PlanID: 2}
	view := s.subscriptionSummary(sub)
	if view.Name != "Professional Plan" {
		t.Errorf("name = %q, want plan name fallback", view.Name)
	}
	if view.TemplateID != 1 {
		t.Errorf("template_id = %d, want default template", view.TemplateID)
	}
	if len(view.AvailableTemplateIDs) != len(s.Templates) {
		t.Errorf("available templates = %v", view.AvailableTemplateIDs)
	}

	// Without a resolvable plan the name falls back to the id.
	orphan := &Subscription{ID: 43}
	view = s.subscriptionSummary(orphan)
	if view.Name != "Subscription 43" {
		t.Errorf("orphan name = %q", view.Name)
	}
}

func TestAdminSubscriptionViewPlanNameDash(t *testing.T) {
	s := NewStore()
	sub := &Subscription{ID: 50, UserID: 1}
	view := s.adminSubscriptionView(sub)
	if view.PlanName != "-" {
		t.Errorf("plan_name = %q, want dash placeholder", view.PlanName)
	}
	if view.User == nil || view.User.Email != "user@example.com" {
		t.Errorf("owner = %+v", view.User)
	}
}

func TestUserNodeViewRedaction(t *testing.T) {
	s := NewStore()
	n := s.NodeByID(1)
	view := s.userNodeView(n)
	if view.ID != 1 || view.Name != n.Name {
		t.Fatalf("view = %+v", view)
	}
	if len(view.ProtocolStatuses) != 2 {
		t.Errorf("protocol statuses = %d, want both bindings on node 1", len(view.ProtocolStatuses))
	}
	for _, b := range view.ProtocolStatuses {
		if b.Protocol == "" {
			t.Error("binding protocol missing")
		}
	}
	if len(view.KernelStatuses) != len(n.Kernels) {
		t.Errorf("kernel statuses = %d, want %d", len(view.KernelStatuses), len(n.Kernels))
	}
}

func TestParseTemplateVersion(t *testing.T) {
	tests := []struct {
		in   any
		want int
	}{
		{3, 3},
		{float64(2), 2},
		{"v3", 3},
		{"5", 5},
		{"garbage", 1},
		{nil, 1},
		{0, 1},
	}
	for _, tt := range tests {
		if got := ParseTemplateVersion(tt.in); got != tt.want {
			t.Errorf("ParseTemplateVersion(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestSecurityViewAlgorithmFallback(t *testing.T) {
	s := NewStore()
	s.Security.EncryptionAlgorithm = ""
	view := securityView(s.Security)
	if view.EncryptionAlgorithm != "HMAC-SHA256" {
		t.Errorf("encryption_algorithm = %q", view.EncryptionAlgorithm)
	}
}
