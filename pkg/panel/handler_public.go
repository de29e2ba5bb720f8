package panel

import (
	"net/http"

	"github.com/zeronetwork/panelmock/pkg/query"
)

func ping(c *Call) (int, any) {
	return http.StatusOK, map[string]any{
		"status":    "ok",
		"service":   "znp",
		"version":   "mock",
		"site_name": c.store.Site.Name,
		"logo_url":  c.store.Site.LogoURL,
		"timestamp": c.store.NowSeconds(),
	}
}

func listPublicPlans(c *Call) (int, any) {
	views := []PlanView{}
	for _, p := range c.store.Plans {
		if !p.IsVisible || p.Status != PlanStatusActive {
			continue
		}
		views = append(views, c.store.planView(p, true))
	}
	page, perPage := query.Page(c.Query)
	rows, meta := query.Slice(views, page, perPage)
	return http.StatusOK, map[string]any{"plans": rows, "pagination": meta}
}

func listPublicAnnouncements(c *Call) (int, any) {
	items := []*Announcement{}
	for _, a := range c.store.Announcements {
		if a.Status != AnnouncementPublished {
			continue
		}
		items = append(items, a)
	}
	page, perPage := query.Page(c.Query)
	rows, meta := query.Slice(items, page, perPage)
	return http.StatusOK, map[string]any{"announcements": rows, "pagination": meta}
}

func listPublicNodes(c *Call) (int, any) {
	page, perPage := query.Page(c.Query)
	rows, meta := query.Slice(c.store.Nodes, page, perPage)
	return http.StatusOK, map[string]any{"nodes": rows, "pagination": meta}
}
