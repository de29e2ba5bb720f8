package panel

import (
	"net/http"
	"strings"

	"github.com/zeronetwork/panelmock/pkg/query"
)

func adminListSubscriptions(c *Call) (int, any) {
	q, hasQ := query.Fold(c.Query, "q")
	status, hasStatus := query.Int(c.Query, "status")
	userID, hasUser := query.Int(c.Query, "user_id")
	planName, hasPlanName := query.Fold(c.Query, "plan_name")
	planID, hasPlan := query.Int(c.Query, "plan_id")
	templateID, hasTemplate := query.Int(c.Query, "template_id")

	views := []AdminSubscriptionView{}
	for _, sub := range c.store.Subscriptions {
		view := c.store.adminSubscriptionView(sub)
		if hasQ && !strings.Contains(strings.ToLower(view.Name), q) &&
			!strings.Contains(strings.ToLower(view.Token), q) {
			continue
		}
		if hasStatus && view.Status != int(status) {
			continue
		}
		if hasUser && view.UserID != userID {
			continue
		}
		if hasPlanName && !strings.Contains(strings.ToLower(view.PlanName), planName) {
			continue
		}
		if hasPlan && view.PlanID != planID {
			continue
		}
		if hasTemplate && view.TemplateID != templateID {
			continue
		}
		views = append(views, view)
	}
	page, perPage := query.Page(c.Query)
	rows, meta := query.Slice(views, page, perPage)
	return http.StatusOK, map[string]any{"subscriptions": rows, "pagination": meta}
}

func adminCreateSubscription(c *Call) (int, any) {
	var req CreateSubscriptionRequest
	if err := c.Decode(&req); err != nil {
		return fail(err)
	}
	if req.PlanID == 0 {
		return badRequest("Plan id is required")
	}
	now := c.store.NowMillis()
	used := int64(0)
	if req.TrafficUsedBytes != nil {
		used = *req.TrafficUsedBytes
	}
	sub := &Subscription{
		ID:                   c.store.NextID(),
		UserID:               req.UserID,
		Name:                 req.Name,
		PlanName:             req.PlanName,
		PlanID:               req.PlanID,
		Status:               intOr(req.Status, StatusActive),
		TemplateID:           req.TemplateID,
		AvailableTemplateIDs: req.AvailableTemplateIDs,
		Token:                req.Token,
		StartedAt:            now,
		ExpiresAt:            req.ExpiresAt,
		TrafficTotalBytes:    req.TrafficTotalBytes,
		TrafficUsedBytes:     used,
		DeviceLimit:          req.DevicesLimit,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	c.store.Subscriptions = append([]*Subscription{sub}, c.store.Subscriptions...)
	return http.StatusCreated, map[string]any{"subscription": c.store.adminSubscriptionView(sub)}
}

func adminGetSubscription(c *Call) (int, any) {
	sub := c.store.SubscriptionByID(c.ID("id"))
	if sub == nil {
		return notFound("Subscription")
	}
	return http.StatusOK, map[string]any{"subscription": c.store.adminSubscriptionView(sub)}
}

func adminUpdateSubscription(c *Call) (int, any) {
	sub := c.store.SubscriptionByID(c.ID("id"))
	if sub == nil {
		return notFound("Subscription")
	}
	var req UpdateSubscriptionRequest
	if err := c.Decode(&req); err != nil {
		return fail(err)
	}
	if req.Name != nil {
		sub.Name = *req.Name
	}
	if req.PlanName != nil {
		sub.PlanName = *req.PlanName
	}
	if req.PlanID != nil {
		sub.PlanID = *req.PlanID
	}
	if req.Status != nil {
		sub.Status = *req.Status
	}
	if req.TemplateID != nil {
		sub.TemplateID = *req.TemplateID
	}
	if req.ExpiresAt != nil {
		sub.ExpiresAt = *req.ExpiresAt
	}
	if req.TrafficTotalBytes != nil {
		sub.TrafficTotalBytes = *req.TrafficTotalBytes
	}
	if req.TrafficUsedBytes != nil {
		sub.TrafficUsedBytes = *req.TrafficUsedBytes
	}
	if req.DevicesLimit != nil {
		sub.DeviceLimit = *req.DevicesLimit
	}
	sub.UpdatedAt = c.store.NowMillis()
	return http.StatusOK, map[string]any{"subscription": c.store.adminSubscriptionView(sub)}
}

func adminDisableSubscription(c *Call) (int, any) {
	sub := c.store.SubscriptionByID(c.ID("id"))
	if sub == nil {
		return notFound("Subscription")
	}
	sub.Status = StatusInactive
	sub.UpdatedAt = c.store.NowMillis()
	return http.StatusOK, map[string]any{"subscription": c.store.adminSubscriptionView(sub)}
}

// adminExtendSubscription pushes the expiry forward. All expiry math
// is in milliseconds: an expired subscription extends from now, a live
// one from its current expiry. An explicit expires_at wins outright.
func adminExtendSubscription(c *Call) (int, any) {
	sub := c.store.SubscriptionByID(c.ID("id"))
	if sub == nil {
		return notFound("Subscription")
	}
	var req ExtendSubscriptionRequest
	if err := c.Decode(&req); err != nil {
		return fail(err)
	}
	base := sub.ExpiresAt
	if base == 0 {
		base = c.store.NowMillis()
	}
	switch {
	case req.ExpiresAt != nil:
		sub.ExpiresAt = *req.ExpiresAt
	case req.ExtendDays != nil:
		sub.ExpiresAt = base + *req.ExtendDays*86_400_000
	case req.ExtendHours != nil:
		sub.ExpiresAt = base + *req.ExtendHours*3_600_000
	}
	sub.UpdatedAt = c.store.NowMillis()
	return http.StatusOK, map[string]any{"subscription": c.store.adminSubscriptionView(sub)}
}
