package panel

import (
	"fmt"
	"math"
	"net/http"

	"github.com/zeronetwork/panelmock/internal/id"
	"github.com/zeronetwork/panelmock/pkg/query"
)

func getProfile(c *Call) (int, any) {
	return http.StatusOK, map[string]any{"profile": profileView(c.store.Session)}
}

func updateProfile(c *Call) (int, any) {
	var req UpdateProfileRequest
	if err := c.Decode(&req); err != nil {
		return fail(err)
	}
	u := c.store.Session
	if req.DisplayName != nil {
		u.DisplayName = *req.DisplayName
	}
	u.UpdatedAt = c.store.NowMillis()
	return http.StatusOK, map[string]any{"profile": profileView(u)}
}

func changePassword(c *Call) (int, any) {
	return http.StatusOK, MessageBody{Message: "Password updated"}
}

func rotateOwnCredential(c *Call) (int, any) {
	now := c.store.NowSeconds()
	cred := CredentialSummary{
		Version:    c.store.NextCredentialVersion(),
		Status:     StatusActive,
		IssuedAt:   now,
		LastSeenAt: now,
	}
	return http.StatusOK, map[string]any{"credential": cred}
}

func sendEmailCode(c *Call) (int, any) {
	return http.StatusOK, MessageBody{Message: "Verification code sent"}
}

func changeEmail(c *Call) (int, any) {
	var req ChangeEmailRequest
	if err := c.Decode(&req); err != nil {
		return fail(err)
	}
	if req.Email == "" {
		return badRequest("Email required")
	}
	u := c.store.Session
	u.Email = req.Email
	u.UpdatedAt = c.store.NowMillis()
	return http.StatusOK, map[string]any{"profile": profileView(u)}
}

func getBalance(c *Call) (int, any) {
	u := c.store.Session
	txns := []BalanceTransaction{}
	for _, o := range c.store.OrdersByUser(u.ID) {
		txns = append(txns, balanceTransaction(o, u.BalanceCents))
	}
	page, perPage := query.Page(c.Query)
	rows, meta := query.Slice(txns, page, perPage)
	return http.StatusOK, map[string]any{
		"user_id":       u.ID,
		"balance_cents": u.BalanceCents,
		"currency":      "USD",
		"updated_at":    u.UpdatedAt,
		"transactions":  rows,
		"pagination":    meta,
	}
}

func listUserNodes(c *Call) (int, any) {
	views := []UserNodeView{}
	status, hasStatus := query.Int(c.Query, "status")
	protocol, hasProtocol := query.Fold(c.Query, "protocol")
	for _, n := range c.store.Nodes {
		view := c.store.userNodeView(n)
		if hasStatus && view.Status != int(status) {
			continue
		}
		if hasProtocol && !nodeServesProtocol(view, protocol) {
			continue
		}
		views = append(views, view)
	}
	page, perPage := query.Page(c.Query)
	rows, meta := query.Slice(views, page, perPage)
	return http.StatusOK, map[string]any{"nodes": rows, "pagination": meta}
}

func nodeServesProtocol(view UserNodeView, protocol string) bool {
	for _, ps := range view.ProtocolStatuses {
		if ps.Protocol == protocol {
			return true
		}
	}
	return false
}

func listUserSubscriptions(c *Call) (int, any) {
	views := []SubscriptionSummary{}
	for _, sub := range c.store.SubscriptionsByUser(c.store.Session.ID) {
		views = append(views, c.store.subscriptionSummary(sub))
	}
	page, perPage := query.Page(c.Query)
	rows, meta := query.Slice(views, page, perPage)
	return http.StatusOK, map[string]any{"subscriptions": rows, "pagination": meta}
}

func previewSubscription(c *Call) (int, any) {
	sub := c.store.SubscriptionByID(c.ID("id"))
	if sub == nil || sub.UserID != c.store.Session.ID {
		return notFound("Subscription")
	}
	var tpl *Template
	if requested, ok := query.Int(c.Query, "template_id"); ok {
		tpl = c.store.TemplateByID(requested)
	}
	if tpl == nil {
		for _, t := range c.store.Templates {
			if t.IsDefault {
				tpl = t
				break
			}
		}
	}
	if tpl == nil && len(c.store.Templates) > 0 {
		tpl = c.store.Templates[0]
	}

	var tplID int64
	contentType := "text/plain"
	content := ""
	if tpl != nil {
		tplID = tpl.ID
		switch tpl.Format {
		case "yaml":
			contentType = "text/yaml"
		case "json":
			contentType = "application/json"
		}
		content = tpl.Content
	}
	if content == "" {
		content = fmt.Sprintf("# Mock subscription %d\n# Template %d\n", sub.ID, tplID)
	}
	return http.StatusOK, map[string]any{
		"subscription_id": sub.ID,
		"template_id":     tplID,
		"content":         content,
		"content_type":    contentType,
		"etag":            id.Token(),
		"generated_at":    c.store.NowMillis(),
	}
}

func selectSubscriptionTemplate(c *Call) (int, any) {
	sub := c.store.SubscriptionByID(c.ID("id"))
	if sub == nil || sub.UserID != c.store.Session.ID {
		return notFound("Subscription")
	}
	var req SelectTemplateRequest
	if err := c.Decode(&req); err != nil {
		return fail(err)
	}
	templateID := req.TemplateID
	if templateID == 0 && len(c.store.Templates) > 0 {
		templateID = c.store.Templates[0].ID
	}
	sub.TemplateID = templateID
	sub.UpdatedAt = c.store.NowMillis()
	return http.StatusOK, map[string]any{
		"subscription_id": sub.ID,
		"template_id":     templateID,
		"updated_at":      sub.UpdatedAt,
	}
}

// trafficRecords synthesizes a stable 48-sample usage history per
// subscription. The arithmetic is seeded by the subscription id so
// repeated calls, and pagination across calls, see identical data.
func (s *Store) trafficRecords(subID int64) []TrafficRecord {
	if cached, ok := s.traffic[subID]; ok {
		return cached
	}
	protocols := []string{"http", "tls", "grpc"}
	nowSec := s.NowSeconds()
	records := make([]TrafficRecord, 0, 48)
	for i := int64(0); i < 48; i++ {
		protocol := protocols[i%3]
		up := 2_000_000 + ((subID+1)*(i+3)*12345)%8_000_000
		down := 3_000_000 + ((subID+2)*(i+5)*23456)%12_000_000
		raw := up + down
		multiplier := 1.0
		switch protocol {
		case "tls":
			multiplier = 1.2
		case "grpc":
			multiplier = 1.1
		}
		records = append(records, TrafficRecord{
			ID:           subID*1000 + i + 1,
			Protocol:     protocol,
			NodeID:       100 + (subID+i)%4 + 1,
			BindingID:    200 + (subID*3+i)%5 + 1,
			BytesUp:      up,
			BytesDown:    down,
			RawBytes:     raw,
			ChargedBytes: int64(math.Round(float64(raw) * multiplier)),
			Multiplier:   multiplier,
			ObservedAt:   nowSec - i*6*3600,
		})
	}
	s.traffic[subID] = records
	return records
}

func getSubscriptionTraffic(c *Call) (int, any) {
	sub := c.store.SubscriptionByID(c.ID("id"))
	if sub == nil || sub.UserID != c.store.Session.ID {
		return notFound("Subscription")
	}

	protocol, hasProtocol := query.Fold(c.Query, "protocol")
	nodeID, hasNode := query.Int(c.Query, "node_id")
	bindingID, hasBinding := query.Int(c.Query, "binding_id")
	from, hasFrom := query.Int(c.Query, "from")
	to, hasTo := query.Int(c.Query, "to")

	filtered := []TrafficRecord{}
	for _, r := range c.store.trafficRecords(sub.ID) {
		if hasProtocol && r.Protocol != protocol {
			continue
		}
		if hasNode && r.NodeID != nodeID {
			continue
		}
		if hasBinding && r.BindingID != bindingID {
			continue
		}
		if hasFrom && r.ObservedAt < from {
			continue
		}
		if hasTo && r.ObservedAt > to {
			continue
		}
		filtered = append(filtered, r)
	}

	var rawTotal, chargedTotal int64
	for _, r := range filtered {
		rawTotal += r.RawBytes
		chargedTotal += r.ChargedBytes
	}

	page, perPage := query.Page(c.Query)
	rows, meta := query.Slice(filtered, page, perPage)
	return http.StatusOK, map[string]any{
		"summary": map[string]any{
			"raw_bytes":     rawTotal,
			"charged_bytes": chargedTotal,
		},
		"records":    rows,
		"pagination": meta,
	}
}
