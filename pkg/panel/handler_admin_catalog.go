package panel

import (
	"net/http"
	"sort"
	"strings"

	"github.com/zeronetwork/panelmock/pkg/query"
)

func adminListPlans(c *Call) (int, any) {
	views := []PlanView{}
	for _, p := range c.store.Plans {
		views = append(views, c.store.planView(p, false))
	}
	page, perPage := query.Page(c.Query)
	rows, meta := query.Slice(views, page, perPage)
	return http.StatusOK, map[string]any{"plans": rows, "pagination": meta}
}

func adminCreatePlan(c *Call) (int, any) {
	var req CreatePlanRequest
	if err := c.Decode(&req); err != nil {
		return fail(err)
	}
	now := c.store.NowMillis()
	p := &Plan{
		ID:                c.store.NextID(),
		Name:              req.Name,
		Slug:              req.Slug,
		Description:       req.Description,
		PriceCents:        req.PriceCents,
		Currency:          currencyOr(req.Currency),
		DurationDays:      req.DurationDays,
		TrafficLimitBytes: req.TrafficLimitBytes,
		DeviceLimit:       req.DeviceLimit,
		Tags:              req.Tags,
		Features:          req.Features,
		BindingIDs:        req.BindingIDs,
		Status:            intOr(req.Status, PlanStatusActive),
		IsVisible:         boolOr(req.IsVisible, true),
		SortOrder:         req.SortOrder,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	c.store.Plans = append(c.store.Plans, p)
	return http.StatusCreated, map[string]any{"plan": c.store.planView(p, false)}
}

func adminGetPlan(c *Call) (int, any) {
	p := c.store.PlanByID(c.ID("id"))
	if p == nil {
		return notFound("Plan")
	}
	return http.StatusOK, map[string]any{"plan": c.store.planView(p, false)}
}

func adminUpdatePlan(c *Call) (int, any) {
	p := c.store.PlanByID(c.ID("id"))
	if p == nil {
		return notFound("Plan")
	}
	var req UpdatePlanRequest
	if err := c.Decode(&req); err != nil {
		return fail(err)
	}
	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Slug != nil {
		p.Slug = *req.Slug
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.PriceCents != nil {
		p.PriceCents = *req.PriceCents
	}
	if req.Currency != nil {
		p.Currency = *req.Currency
	}
	if req.DurationDays != nil {
		p.DurationDays = *req.DurationDays
	}
	if req.TrafficLimitBytes != nil {
		p.TrafficLimitBytes = *req.TrafficLimitBytes
	}
	if req.DeviceLimit != nil {
		p.DeviceLimit = *req.DeviceLimit
	}
	if req.Tags != nil {
		p.Tags = *req.Tags
	}
	if req.Features != nil {
		p.Features = *req.Features
	}
	if req.BindingIDs != nil {
		p.BindingIDs = *req.BindingIDs
	}
	if req.Status != nil {
		p.Status = *req.Status
	}
	if req.IsVisible != nil {
		p.IsVisible = *req.IsVisible
	}
	if req.SortOrder != nil {
		p.SortOrder = *req.SortOrder
	}
	p.UpdatedAt = c.store.NowMillis()
	return http.StatusOK, map[string]any{"plan": c.store.planView(p, false)}
}

func adminListBillingOptions(c *Call) (int, any) {
	p := c.store.PlanByID(c.ID("id"))
	if p == nil {
		return notFound("Plan")
	}
	status, hasStatus := query.Int(c.Query, "status")
	visible, hasVisible := query.Bool(c.Query, "visible")

	options := []*PlanBillingOption{}
	for _, o := range c.store.BillingOpts {
		if o.PlanID != p.ID {
			continue
		}
		if hasStatus && o.Status != int(status) {
			continue
		}
		if hasVisible && o.Visible != visible {
			continue
		}
		options = append(options, o)
	}
	return http.StatusOK, map[string]any{"options": options}
}

func adminCreateBillingOption(c *Call) (int, any) {
	p := c.store.PlanByID(c.ID("id"))
	if p == nil {
		return notFound("Plan")
	}
	var req CreateBillingOptionRequest
	if err := c.Decode(&req); err != nil {
		return fail(err)
	}
	if req.DurationValue == 0 || req.DurationUnit == "" || req.PriceCents == 0 {
		return badRequest("Duration and price are required")
	}
	now := c.store.NowMillis()
	o := &PlanBillingOption{
		ID:            c.store.NextID(),
		PlanID:        p.ID,
		Name:          req.Name,
		DurationValue: req.DurationValue,
		DurationUnit:  req.DurationUnit,
		PriceCents:    req.PriceCents,
		Currency:      currencyOr(req.Currency),
		SortOrder:     intOr(req.SortOrder, 0),
		Status:        intOr(req.Status, PlanStatusActive),
		Visible:       boolOr(req.Visible, true),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	c.store.BillingOpts = append(c.store.BillingOpts, o)
	return http.StatusCreated, o
}

func adminUpdateBillingOption(c *Call) (int, any) {
	p := c.store.PlanByID(c.ID("id"))
	if p == nil {
		return notFound("Plan")
	}
	o := c.store.BillingOptionByID(c.ID("option_id"))
	if o == nil || o.PlanID != p.ID {
		return notFound("Billing option")
	}
	var req UpdateBillingOptionRequest
	if err := c.Decode(&req); err != nil {
		return fail(err)
	}
	if req.Name != nil {
		o.Name = *req.Name
	}
	if req.DurationValue != nil {
		o.DurationValue = *req.DurationValue
	}
	if req.DurationUnit != nil {
		o.DurationUnit = *req.DurationUnit
	}
	if req.PriceCents != nil {
		o.PriceCents = *req.PriceCents
	}
	if req.Currency != nil {
		o.Currency = *req.Currency
	}
	if req.SortOrder != nil {
		o.SortOrder = *req.SortOrder
	}
	if req.Status != nil {
		o.Status = *req.Status
	}
	if req.Visible != nil {
		o.Visible = *req.Visible
	}
	o.UpdatedAt = c.store.NowMillis()
	return http.StatusOK, o
}

func adminListChannels(c *Call) (int, any) {
	q, hasQ := query.Fold(c.Query, "q")
	provider, hasProvider := query.Fold(c.Query, "provider")
	enabled, hasEnabled := query.Bool(c.Query, "enabled")

	channels := []*PaymentChannel{}
	for _, ch := range c.store.Channels {
		if hasQ && !strings.Contains(strings.ToLower(ch.Name), q) &&
			!strings.Contains(strings.ToLower(ch.Code), q) {
			continue
		}
		if hasProvider && !strings.Contains(strings.ToLower(ch.Provider), provider) {
			continue
		}
		if hasEnabled && ch.Enabled != enabled {
			continue
		}
		channels = append(channels, ch)
	}

	column, desc := query.Sort(c.Query, "updated")
	channelLess := func(a, b *PaymentChannel) bool {
		switch column {
		case "name":
			return a.Name < b.Name
		case "created":
			return a.CreatedAt < b.CreatedAt
		default:
			return a.UpdatedAt < b.UpdatedAt
		}
	}
	sort.SliceStable(channels, func(i, j int) bool {
		if desc {
			return channelLess(channels[j], channels[i])
		}
		return channelLess(channels[i], channels[j])
	})

	page, perPage := query.Page(c.Query)
	rows, meta := query.Slice(channels, page, perPage)
	return http.StatusOK, map[string]any{"channels": rows, "pagination": meta}
}

func adminCreateChannel(c *Call) (int, any) {
	var req CreatePaymentChannelRequest
	if err := c.Decode(&req); err != nil {
		return fail(err)
	}
	if req.Name == "" || req.Code == "" {
		return badRequest("Name and code required")
	}
	if c.store.ChannelByCode(req.Code) != nil {
		return badRequest("Code already exists")
	}
	now := c.store.NowMillis()
	ch := &PaymentChannel{
		ID:        c.store.NextID(),
		Name:      req.Name,
		Code:      req.Code,
		Provider:  req.Provider,
		Enabled:   boolOr(req.Enabled, true),
		SortOrder: intOr(req.SortOrder, 0),
		Config:    req.Config,
		CreatedAt: now,
		UpdatedAt: now,
	}
	c.store.Channels = append(c.store.Channels, ch)
	return http.StatusCreated, ch
}

func adminGetChannel(c *Call) (int, any) {
	ch := c.store.ChannelByID(c.ID("id"))
	if ch == nil {
		return notFound("Payment channel")
	}
	return http.StatusOK, ch
}

func adminUpdateChannel(c *Call) (int, any) {
	ch := c.store.ChannelByID(c.ID("id"))
	if ch == nil {
		return notFound("Payment channel")
	}
	var req UpdatePaymentChannelRequest
	if err := c.Decode(&req); err != nil {
		return fail(err)
	}
	if req.Name != nil {
		ch.Name = *req.Name
	}
	if req.Code != nil {
		ch.Code = *req.Code
	}
	if req.Provider != nil {
		ch.Provider = *req.Provider
	}
	if req.Enabled != nil {
		ch.Enabled = *req.Enabled
	}
	if req.SortOrder != nil {
		ch.SortOrder = *req.SortOrder
	}
	if req.Config != nil {
		ch.Config = *req.Config
	}
	ch.UpdatedAt = c.store.NowMillis()
	return http.StatusOK, ch
}

func adminListCoupons(c *Call) (int, any) {
	q, hasQ := query.Fold(c.Query, "q")
	status, hasStatus := query.Int(c.Query, "status")

	coupons := []*Coupon{}
	for _, cp := range c.store.Coupons {
		if hasQ {
			haystack := strings.ToLower(cp.Code + " " + cp.Name + " " + cp.Description)
			if !strings.Contains(haystack, q) {
				continue
			}
		}
		if hasStatus && cp.Status != int(status) {
			continue
		}
		coupons = append(coupons, cp)
	}

	column, desc := query.Sort(c.Query, "created_at")
	couponLess := func(a, b *Coupon) bool {
		switch column {
		case "code":
			return a.Code < b.Code
		case "updated_at":
			return a.UpdatedAt < b.UpdatedAt
		case "starts_at":
			return a.StartsAt < b.StartsAt
		case "ends_at":
			return a.EndsAt < b.EndsAt
		default:
			return a.CreatedAt < b.CreatedAt
		}
	}
	sort.SliceStable(coupons, func(i, j int) bool {
		if desc {
			return couponLess(coupons[j], coupons[i])
		}
		return couponLess(coupons[i], coupons[j])
	})

	page, perPage := query.Page(c.Query)
	rows, meta := query.Slice(coupons, page, perPage)
	return http.StatusOK, map[string]any{"coupons": rows, "pagination": meta}
}

func adminCreateCoupon(c *Call) (int, any) {
	var req CreateCouponRequest
	if err := c.Decode(&req); err != nil {
		return fail(err)
	}
	if req.Code == "" || req.Name == "" || req.DiscountType == "" {
		return badRequest("Code, name, and discount type are required")
	}
	if c.store.CouponByCode(req.Code) != nil {
		return badRequest("Code already exists")
	}
	now := c.store.NowMillis()
	cp := &Coupon{
		ID:                    c.store.NextID(),
		Code:                  req.Code,
		Name:                  req.Name,
		Description:           req.Description,
		Status:                intOr(req.Status, StatusActive),
		DiscountType:          req.DiscountType,
		DiscountValue:         req.DiscountValue,
		Currency:              req.Currency,
		MaxRedemptions:        req.MaxRedemptions,
		MaxRedemptionsPerUser: req.MaxRedemptionsPerUser,
		MinOrderCents:         req.MinOrderCents,
		StartsAt:              req.StartsAt,
		EndsAt:                req.EndsAt,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	c.store.Coupons = append([]*Coupon{cp}, c.store.Coupons...)
	return http.StatusCreated, cp
}

func adminUpdateCoupon(c *Call) (int, any) {
	cp := c.store.CouponByID(c.ID("id"))
	if cp == nil {
		return notFound("Coupon")
	}
	var req UpdateCouponRequest
	if err := c.Decode(&req); err != nil {
		return fail(err)
	}
	if req.Code != nil {
		cp.Code = *req.Code
	}
	if req.Name != nil {
		cp.Name = *req.Name
	}
	if req.Description != nil {
		cp.Description = *req.Description
	}
	if req.Status != nil {
		cp.Status = *req.Status
	}
	if req.DiscountType != nil {
		cp.DiscountType = *req.DiscountType
	}
	if req.DiscountValue != nil {
		cp.DiscountValue = *req.DiscountValue
	}
	if req.Currency != nil {
		cp.Currency = *req.Currency
	}
	if req.MaxRedemptions != nil {
		cp.MaxRedemptions = *req.MaxRedemptions
	}
	if req.MaxRedemptionsPerUser != nil {
		cp.MaxRedemptionsPerUser = *req.MaxRedemptionsPerUser
	}
	if req.MinOrderCents != nil {
		cp.MinOrderCents = *req.MinOrderCents
	}
	if req.StartsAt != nil {
		cp.StartsAt = *req.StartsAt
	}
	if req.EndsAt != nil {
		cp.EndsAt = *req.EndsAt
	}
	cp.UpdatedAt = c.store.NowMillis()
	return http.StatusOK, cp
}

func adminDeleteCoupon(c *Call) (int, any) {
	id := c.ID("id")
	for i, cp := range c.store.Coupons {
		if cp.ID == id {
			c.store.Coupons = append(c.store.Coupons[:i], c.store.Coupons[i+1:]...)
			return http.StatusOK, MessageBody{Message: "ok"}
		}
	}
	return notFound("Coupon")
}

func adminListAnnouncements(c *Call) (int, any) {
	page, perPage := query.Page(c.Query)
	rows, meta := query.Slice(c.store.Announcements, page, perPage)
	return http.StatusOK, map[string]any{"announcements": rows, "pagination": meta}
}

func adminCreateAnnouncement(c *Call) (int, any) {
	var req CreateAnnouncementRequest
	if err := c.Decode(&req); err != nil {
		return fail(err)
	}
	now := c.store.NowMillis()
	a := &Announcement{
		ID:        c.store.NextID(),
		Title:     req.Title,
		Content:   req.Content,
		Category:  req.Category,
		Audience:  req.Audience,
		Priority:  req.Priority,
		IsPinned:  req.IsPinned,
		Status:    AnnouncementDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}
	c.store.Announcements = append(c.store.Announcements, a)
	return http.StatusCreated, map[string]any{"announcement": a}
}

func adminUpdateAnnouncement(c *Call) (int, any) {
	a := c.store.AnnouncementByID(c.ID("id"))
	if a == nil {
		return notFound("Announcement")
	}
	var req UpdateAnnouncementRequest
	if err := c.Decode(&req); err != nil {
		return fail(err)
	}
	if req.Title != nil {
		a.Title = *req.Title
	}
	if req.Content != nil {
		a.Content = *req.Content
	}
	if req.Category != nil {
		a.Category = *req.Category
	}
	if req.Audience != nil {
		a.Audience = *req.Audience
	}
	if req.Priority != nil {
		a.Priority = *req.Priority
	}
	if req.IsPinned != nil {
		a.IsPinned = *req.IsPinned
	}
	if req.Status != nil {
		a.Status = *req.Status
	}
	a.UpdatedAt = c.store.NowMillis()
	return http.StatusOK, map[string]any{"announcement": a}
}

func adminPublishAnnouncement(c *Call) (int, any) {
	a := c.store.AnnouncementByID(c.ID("id"))
	if a == nil {
		return notFound("Announcement")
	}
	var req PublishAnnouncementRequest
	if err := c.Decode(&req); err != nil {
		return fail(err)
	}
	a.Status = AnnouncementPublished
	a.PublishedAt = c.store.NowMillis()
	if req.ExpiresAt != 0 {
		a.ExpiresAt = req.ExpiresAt
	}
	a.UpdatedAt = a.PublishedAt
	return http.StatusOK, map[string]any{"announcement": a}
}

func currencyOr(currency string) string {
	if currency == "" {
		return "USD"
	}
	return currency
}

func boolOr(p *bool, fallback bool) bool {
	if p != nil {
		return *p
	}
	return fallback
}
