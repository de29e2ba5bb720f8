package panel

import (
	"fmt"
	"net/http"

	"github.com/zeronetwork/panelmock/pkg/query"
)

func listUserPlans(c *Call) (int, any) {
	views := []PlanView{}
	for _, p := range c.store.Plans {
		if !p.IsVisible || p.Status != PlanStatusActive {
			continue
		}
		views = append(views, c.store.planView(p, true))
	}
	return http.StatusOK, map[string]any{"plans": views}
}

func listUserAnnouncements(c *Call) (int, any) {
	items := []*Announcement{}
	for _, a := range c.store.Announcements {
		if a.Status != AnnouncementPublished {
			continue
		}
		items = append(items, a)
	}
	if limit, ok := query.Int(c.Query, "limit"); ok && int64(len(items)) > limit {
		items = items[:limit]
	}
	return http.StatusOK, map[string]any{"announcements": items}
}

func listUserPaymentChannels(c *Call) (int, any) {
	provider, hasProvider := query.Str(c.Query, "provider")
	channels := []ChannelSummary{}
	for _, ch := range c.store.Channels {
		if !ch.Enabled {
			continue
		}
		if hasProvider && ch.Provider != provider {
			continue
		}
		channels = append(channels, channelSummary(ch))
	}
	// External payment only shows up once at least one live gateway
	// exists; balance and manual settlement are always offered.
	methods := []string{MethodBalance, MethodManual}
	if len(channels) > 0 {
		methods = []string{MethodBalance, MethodExternal, MethodManual}
	}
	return http.StatusOK, map[string]any{
		"channels":        channels,
		"payment_methods": methods,
	}
}

func listUserOrders(c *Call) (int, any) {
	views := []Order{}
	for _, o := range c.store.OrdersByUser(c.store.Session.ID) {
		views = append(views, c.store.orderView(o))
	}
	page, perPage := query.Page(c.Query)
	rows, meta := query.Slice(views, page, perPage)
	return http.StatusOK, map[string]any{"orders": rows, "pagination": meta}
}

func createOrder(c *Call) (int, any) {
	var req CreateOrderRequest
	if err := c.Decode(&req); err != nil {
		return fail(err)
	}
	u := c.store.Session

	plan := c.store.PlanByID(req.PlanID)
	if plan == nil && len(c.store.Plans) > 0 {
		plan = c.store.Plans[0]
	}
	if plan == nil {
		return notFound("Plan")
	}

	var option *PlanBillingOption
	if req.BillingOptionID != 0 {
		option = c.store.BillingOptionByID(req.BillingOptionID)
		if option == nil || option.PlanID != plan.ID {
			return notFound("Billing option")
		}
	}

	quantity := 1
	if req.Quantity > 0 {
		quantity = req.Quantity
	}
	unitPrice := plan.PriceCents
	currency := plan.Currency
	if option != nil {
		unitPrice = option.PriceCents
		currency = option.Currency
	}
	if currency == "" {
		currency = "USD"
	}
	total := unitPrice * int64(quantity)

	method := req.PaymentMethod
	if method == "" {
		method = MethodBalance
	}
	isBalance := method == MethodBalance || total == 0
	isExternal := method == MethodExternal && total > 0
	isManual := method == MethodManual

	now := c.store.NowMillis()
	order := &Order{
		ID:            c.store.NextID(),
		Number:        c.store.NextOrderNumber(),
		UserID:        u.ID,
		PlanID:        plan.ID,
		Status:        OrderPending,
		PaymentStatus: PaymentPending,
		PaymentMethod: method,
		TotalCents:    total,
		Currency:      currency,
		CreatedAt:     now,
		UpdatedAt:     now,
		Payments:      []OrderPayment{},
		Refunds:       []OrderRefund{},
	}
	order.Items = []OrderItem{{
		ID:             c.store.NextID(),
		OrderID:        order.ID,
		ItemType:       "plan",
		ItemID:         plan.ID,
		Name:           plan.Name,
		Quantity:       quantity,
		UnitPriceCents: unitPrice,
		Currency:       currency,
		SubtotalCents:  total,
		CreatedAt:      now,
	}}

	switch {
	case isBalance:
		order.Status = OrderPaid
		order.PaymentStatus = PaymentPaid
		order.PaidAt = now
		order.Payments = append(order.Payments, OrderPayment{
			ID:          c.store.NextID(),
			OrderID:     order.ID,
			Method:      method,
			Status:      PaymentPaid,
			AmountCents: total,
			Currency:    currency,
			CreatedAt:   now,
		})
	case isExternal:
		// Channels are addressed by code; the numeric id is an older
		// request shape still accepted.
		channel := c.store.ChannelByCode(req.PaymentChannel)
		if channel == nil {
			channel = c.store.ChannelByID(req.ChannelID)
		}
		if channel == nil {
			for _, ch := range c.store.Channels {
				if ch.Enabled {
					channel = ch
					break
				}
			}
		}
		provider := ""
		if channel != nil {
			provider = channel.Provider
		}
		order.PaymentIntentID = fmt.Sprintf("intent_%d", order.ID)
		order.Payments = append(order.Payments, OrderPayment{
			ID:          c.store.NextID(),
			OrderID:     order.ID,
			Provider:    provider,
			Method:      method,
			IntentID:    order.PaymentIntentID,
			Status:      PaymentPending,
			AmountCents: total,
			Currency:    currency,
			Metadata: map[string]any{
				"pay_url": fmt.Sprintf("https://example.com/pay/%d", order.ID),
				"qr_code": fmt.Sprintf("https://example.com/qr/%d.png", order.ID),
			},
			CreatedAt: now,
		})
	case isManual:
		order.Payments = append(order.Payments, OrderPayment{
			ID:          c.store.NextID(),
			OrderID:     order.ID,
			Method:      method,
			Status:      PaymentPending,
			AmountCents: total,
			Currency:    currency,
			CreatedAt:   now,
		})
	}

	c.store.Orders = append([]*Order{order}, c.store.Orders...)
	return http.StatusOK, map[string]any{
		"order":   c.store.orderView(order),
		"balance": c.store.balanceSnapshot(u),
	}
}

func ownOrder(c *Call) (*Order, bool) {
	o := c.store.OrderByID(c.ID("id"))
	if o == nil || o.UserID != c.store.Session.ID {
		return nil, false
	}
	return o, true
}

func getUserOrder(c *Call) (int, any) {
	o, ok := ownOrder(c)
	if !ok {
		return notFound("Order")
	}
	return http.StatusOK, map[string]any{
		"order":   c.store.orderView(o),
		"balance": c.store.balanceSnapshot(c.store.Session),
	}
}

func getOrderPaymentStatus(c *Call) (int, any) {
	o, ok := ownOrder(c)
	if !ok {
		return notFound("Order")
	}
	updatedAt := o.UpdatedAt
	if updatedAt == 0 {
		updatedAt = o.CreatedAt
	}
	return http.StatusOK, map[string]any{
		"order_id":                o.ID,
		"status":                  o.Status,
		"payment_status":          o.PaymentStatus,
		"payment_method":          o.PaymentMethod,
		"payment_intent_id":       o.PaymentIntentID,
		"payment_reference":       o.PaymentReference,
		"payment_failure_code":    o.PaymentFailureCode,
		"payment_failure_message": o.PaymentFailureMessage,
		"paid_at":                 o.PaidAt,
		"cancelled_at":            o.CancelledAt,
		"refunded_cents":          o.RefundedCents,
		"refunded_at":             o.RefundedAt,
		"updated_at":              updatedAt,
	}
}

func cancelUserOrder(c *Call) (int, any) {
	o, ok := ownOrder(c)
	if !ok {
		return notFound("Order")
	}
	// Cancelling twice is a no-op, not an error.
	if o.Status != OrderCancelled {
		o.Status = OrderCancelled
		o.CancelledAt = c.store.NowMillis()
		o.UpdatedAt = o.CancelledAt
	}
	return http.StatusOK, map[string]any{
		"order":   c.store.orderView(o),
		"balance": c.store.balanceSnapshot(c.store.Session),
	}
}
