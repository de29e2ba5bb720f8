package panel

import (
	"fmt"
	"net/http"

	"github.com/zeronetwork/panelmock/internal/id"
	"github.com/zeronetwork/panelmock/pkg/query"
)

func adminListOrders(c *Call) (int, any) {
	views := []Order{}
	for _, o := range c.store.Orders {
		views = append(views, c.store.orderView(o))
	}
	page, perPage := query.Page(c.Query)
	rows, meta := query.Slice(views, page, perPage)
	return http.StatusOK, map[string]any{"orders": rows, "pagination": meta}
}

func adminGetOrder(c *Call) (int, any) {
	o := c.store.OrderByID(c.ID("id"))
	if o == nil {
		return notFound("Order")
	}
	return http.StatusOK, map[string]any{"order": c.store.orderView(o)}
}

func adminPayOrder(c *Call) (int, any) {
	o := c.store.OrderByID(c.ID("id"))
	if o == nil {
		return notFound("Order")
	}
	var req PayOrderRequest
	if err := c.Decode(&req); err != nil {
		return fail(err)
	}
	now := c.store.NowMillis()
	o.Status = OrderPaid
	o.PaymentStatus = PaymentPaid
	if req.PaymentMethod != "" {
		o.PaymentMethod = req.PaymentMethod
	}
	o.PaidAt = now
	o.UpdatedAt = now
	o.Payments = append(o.Payments, OrderPayment{
		ID:          c.store.NextID(),
		OrderID:     o.ID,
		Method:      o.PaymentMethod,
		Status:      PaymentPaid,
		AmountCents: o.TotalCents,
		Currency:    o.Currency,
		Reference:   req.Reference,
		CreatedAt:   now,
	})
	return http.StatusOK, map[string]any{"order": c.store.orderView(o)}
}

func adminCancelOrder(c *Call) (int, any) {
	o := c.store.OrderByID(c.ID("id"))
	if o == nil {
		return notFound("Order")
	}
	var req CancelOrderRequest
	if err := c.Decode(&req); err != nil {
		return fail(err)
	}
	if o.Status != OrderCancelled {
		o.Status = OrderCancelled
		o.CancelledAt = c.store.NowMillis()
		o.UpdatedAt = o.CancelledAt
	}
	if req.Reason != "" {
		o.CancellationReason = req.Reason
	}
	return http.StatusOK, map[string]any{"order": c.store.orderView(o)}
}

// adminRefundOrder applies a partial or full refund. The refundable
// ceiling is total minus what was already refunded; crossing it is a
// validation failure, reaching it exactly flips the order to fully
// refunded.
func adminRefundOrder(c *Call) (int, any) {
	o := c.store.OrderByID(c.ID("id"))
	if o == nil {
		return notFound("Order")
	}
	var req RefundOrderRequest
	if err := c.Decode(&req); err != nil {
		return fail(err)
	}
	if req.AmountCents <= 0 {
		return badRequest("Refund amount must be greater than 0")
	}
	max := o.TotalCents - o.RefundedCents
	if req.AmountCents > max {
		return badRequest(fmt.Sprintf("Refund amount exceeds maximum refundable: %d", max))
	}
	now := c.store.NowMillis()
	o.Refunds = append(o.Refunds, OrderRefund{
		ID:          c.store.NextID(),
		OrderID:     o.ID,
		AmountCents: req.AmountCents,
		Reason:      req.Reason,
		Reference:   id.Reference("REF"),
		CreatedAt:   now,
	})
	o.RefundedCents += req.AmountCents
	if o.RefundedCents == o.TotalCents {
		o.Status = OrderFullyRefunded
		o.RefundedAt = now
	} else {
		o.Status = OrderPartiallyRefunded
	}
	o.UpdatedAt = now
	return http.StatusOK, map[string]any{"order": c.store.orderView(o)}
}

func adminReconcilePayment(c *Call) (int, any) {
	var req ReconcileRequest
	if err := c.Decode(&req); err != nil {
		return fail(err)
	}
	o := c.store.OrderByID(req.OrderID)
	if o == nil {
		return notFound("Order")
	}
	return http.StatusOK, map[string]any{"order": c.store.orderView(o)}
}
