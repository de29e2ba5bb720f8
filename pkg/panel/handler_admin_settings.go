package panel

import (
	"net/http"
	"strings"

	"github.com/zeronetwork/panelmock/pkg/query"
)

func adminGetSiteSettings(c *Call) (int, any) {
	return http.StatusOK, map[string]any{"setting": c.store.Site}
}

func adminUpdateSiteSettings(c *Call) (int, any) {
	var req UpdateSiteSettingsRequest
	if err := c.Decode(&req); err != nil {
		return fail(err)
	}
	site := c.store.Site
	if req.Name != nil {
		site.Name = *req.Name
	}
	if req.LogoURL != nil {
		site.LogoURL = *req.LogoURL
	}
	site.UpdatedAt = c.store.NowMillis()
	return http.StatusOK, map[string]any{"setting": site}
}

func adminGetSecuritySettings(c *Call) (int, any) {
	return http.StatusOK, map[string]any{"setting": securityView(c.store.Security)}
}

func adminUpdateSecuritySettings(c *Call) (int, any) {
	var req UpdateSecuritySettingsRequest
	if err := c.Decode(&req); err != nil {
		return fail(err)
	}
	sec := c.store.Security
	// Legacy aliases lose to the canonical field when both are sent.
	if req.EnableAPI != nil {
		sec.ThirdPartyAPIEnabled = *req.EnableAPI
	}
	if req.ThirdPartyAPIEnabled != nil {
		sec.ThirdPartyAPIEnabled = *req.ThirdPartyAPIEnabled
	}
	if req.SignatureAlgorithm != nil {
		sec.EncryptionAlgorithm = *req.SignatureAlgorithm
	}
	if req.EncryptionAlgorithm != nil {
		sec.EncryptionAlgorithm = *req.EncryptionAlgorithm
	}
	if req.APIKey != nil {
		sec.APIKey = *req.APIKey
	}
	if req.APISecret != nil {
		sec.APISecret = *req.APISecret
	}
	if req.NonceTTLSeconds != nil {
		sec.NonceTTLSeconds = *req.NonceTTLSeconds
	}
	sec.UpdatedAt = c.store.NowMillis()
	return http.StatusOK, map[string]any{"setting": securityView(sec)}
}

func filterAuditLogs(c *Call) []*AuditLog {
	actorID, hasActor := query.Int(c.Query, "actor_id")
	action, hasAction := query.Fold(c.Query, "action")
	resourceType, hasType := query.Fold(c.Query, "resource_type")
	resourceID, hasResource := query.Str(c.Query, "resource_id")
	since, hasSince := query.Int(c.Query, "since")
	until, hasUntil := query.Int(c.Query, "until")

	logs := []*AuditLog{}
	for _, entry := range c.store.AuditLogs {
		if hasActor && entry.ActorID != actorID {
			continue
		}
		if hasAction && !strings.Contains(strings.ToLower(entry.Action), action) {
			continue
		}
		if hasType && !strings.Contains(strings.ToLower(entry.ResourceType), resourceType) {
			continue
		}
		if hasResource && entry.ResourceID != resourceID {
			continue
		}
		if hasSince && entry.CreatedAt < since {
			continue
		}
		if hasUntil && entry.CreatedAt > until {
			continue
		}
		logs = append(logs, entry)
	}
	return logs
}

func adminListAuditLogs(c *Call) (int, any) {
	logs := filterAuditLogs(c)
	page, perPage := query.Page(c.Query)
	rows, meta := query.Slice(logs, page, perPage)
	return http.StatusOK, map[string]any{"logs": rows, "pagination": meta}
}

// adminExportAuditLogs returns the full filtered set in one shot, the
// way a CSV-style export would.
func adminExportAuditLogs(c *Call) (int, any) {
	logs := filterAuditLogs(c)
	return http.StatusOK, map[string]any{
		"logs":        logs,
		"total_count": len(logs),
		"exported_at": c.store.NowSeconds(),
	}
}
