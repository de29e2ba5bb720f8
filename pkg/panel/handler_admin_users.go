package panel

import (
	"net/http"
	"slices"
	"strings"

	"github.com/zeronetwork/panelmock/pkg/query"
)

// DashboardModule is one tile on the admin landing page.
type DashboardModule struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Route       string `json:"route"`
}

var dashboardModules = []DashboardModule{
	{Key: "users", Name: "Users", Description: "Manage user accounts, roles, and credentials", Route: "/admin/users"},
	{Key: "nodes", Name: "Nodes", Description: "Manage edge nodes and kernel deployments", Route: "/admin/nodes"},
	{Key: "protocols", Name: "Protocols", Description: "Manage protocol bindings and entry points", Route: "/admin/protocols"},
	{Key: "plans", Name: "Plans", Description: "Manage subscription plans and billing options", Route: "/admin/plans"},
	{Key: "coupons", Name: "Coupons", Description: "Manage discount codes and promotions", Route: "/admin/coupons"},
	{Key: "orders", Name: "Orders", Description: "Review orders, payments, and refunds", Route: "/admin/orders"},
	{Key: "announcements", Name: "Announcements", Description: "Publish site notices and maintenance windows", Route: "/admin/announcements"},
	{Key: "payment_channels", Name: "Payment Channels", Description: "Configure payment gateways", Route: "/admin/payment-channels"},
	{Key: "site_settings", Name: "Site Settings", Description: "Branding and site identity", Route: "/admin/site-settings"},
	{Key: "templates", Name: "Templates", Description: "Manage subscription config templates", Route: "/admin/templates"},
	{Key: "subscriptions", Name: "Subscriptions", Description: "Manage user subscriptions", Route: "/admin/subscriptions"},
	{Key: "security", Name: "Security", Description: "Third-party API and signing settings", Route: "/admin/security"},
	{Key: "audit_logs", Name: "Audit Logs", Description: "Review the administrative audit trail", Route: "/admin/audit-logs"},
}

func adminDashboard(c *Call) (int, any) {
	return http.StatusOK, map[string]any{"modules": dashboardModules}
}

func adminListUsers(c *Call) (int, any) {
	q, hasQ := query.Fold(c.Query, "q")
	status, hasStatus := query.Int(c.Query, "status")
	role, hasRole := query.Str(c.Query, "role")

	views := []*User{}
	for _, u := range c.store.Users {
		normalizeUser(u)
		if hasQ && !strings.Contains(strings.ToLower(u.Email), q) &&
			!strings.Contains(strings.ToLower(u.DisplayName), q) {
			continue
		}
		if hasStatus && u.Status != int(status) {
			continue
		}
		if hasRole && !slices.Contains(u.Roles, role) {
			continue
		}
		views = append(views, u)
	}
	page, perPage := query.Page(c.Query)
	rows, meta := query.Slice(views, page, perPage)
	return http.StatusOK, map[string]any{"users": rows, "pagination": meta}
}

func adminCreateUser(c *Call) (int, any) {
	var req CreateUserRequest
	if err := c.Decode(&req); err != nil {
		return fail(err)
	}
	if c.store.UserByEmail(req.Email) != nil {
		return badRequest("Email already exists")
	}
	roles := req.Roles
	if len(roles) == 0 {
		roles = []string{"user"}
	}
	now := c.store.NowMillis()
	u := &User{
		ID:          c.store.NextID(),
		Email:       req.Email,
		DisplayName: displayNameOr(req.DisplayName, req.Email),
		Role:        roles[0],
		Roles:       roles,
		Status:      intOr(req.Status, StatusActive),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if req.EmailVerified {
		u.EmailVerifiedAt = now
	}
	c.store.Users = append(c.store.Users, u)
	return http.StatusCreated, map[string]any{"user": u}
}

func adminUpdateUserStatus(c *Call) (int, any) {
	u := c.store.UserByID(c.ID("id"))
	if u == nil {
		return notFound("User")
	}
	var req UpdateUserStatusRequest
	if err := c.Decode(&req); err != nil {
		return fail(err)
	}
	u.Status = req.Status
	u.UpdatedAt = c.store.NowMillis()
	return http.StatusOK, map[string]any{"user": normalizeUser(u)}
}

func adminUpdateUserRoles(c *Call) (int, any) {
	u := c.store.UserByID(c.ID("id"))
	if u == nil {
		return notFound("User")
	}
	var req UpdateUserRolesRequest
	if err := c.Decode(&req); err != nil {
		return fail(err)
	}
	u.Roles = req.Roles
	if len(u.Roles) > 0 {
		u.Role = u.Roles[0]
	}
	u.UpdatedAt = c.store.NowMillis()
	return http.StatusOK, map[string]any{"user": normalizeUser(u)}
}

func adminResetUserPassword(c *Call) (int, any) {
	u := c.store.UserByID(c.ID("id"))
	if u == nil {
		return notFound("User")
	}
	var req AdminResetPasswordRequest
	if err := c.Decode(&req); err != nil {
		return fail(err)
	}
	if req.Password == "" {
		return badRequest("Password required")
	}
	return http.StatusOK, MessageBody{Message: "Password reset"}
}

func adminForceLogout(c *Call) (int, any) {
	u := c.store.UserByID(c.ID("id"))
	if u == nil {
		return notFound("User")
	}
	if c.store.Session != nil && c.store.Session.ID == u.ID {
		c.store.Session = nil
	}
	return http.StatusOK, MessageBody{Message: "User logged out"}
}

func adminRotateUserCredential(c *Call) (int, any) {
	u := c.store.UserByID(c.ID("id"))
	if u == nil {
		return notFound("User")
	}
	now := c.store.NowSeconds()
	cred := CredentialSummary{
		Version:    c.store.NextCredentialVersion(),
		Status:     StatusActive,
		IssuedAt:   now,
		LastSeenAt: now,
	}
	return http.StatusOK, map[string]any{"user_id": u.ID, "credential": cred}
}

func intOr(p *int, fallback int) int {
	if p != nil {
		return *p
	}
	return fallback
}
