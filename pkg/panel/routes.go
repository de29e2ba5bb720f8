package panel

import "net/http"

// routeTable builds the ordered route list. Order matters: literal
// segments such as status/sync must come before a sibling {id}
// pattern for the same method, or the literal would be captured as an
// id. First match wins.
func (e *Engine) routeTable() []route {
	p := e.prefix
	a := e.adminPrefix

	var routes []route
	add := func(method, pattern string, auth bool, fn HandlerFunc) {
		routes = append(routes, route{method: method, pattern: pattern, auth: auth, fn: fn})
	}
	get := func(pattern string, auth bool, fn HandlerFunc) { add(http.MethodGet, pattern, auth, fn) }
	post := func(pattern string, auth bool, fn HandlerFunc) { add(http.MethodPost, pattern, auth, fn) }
	patch := func(pattern string, auth bool, fn HandlerFunc) { add(http.MethodPatch, pattern, auth, fn) }
	del := func(pattern string, auth bool, fn HandlerFunc) { add(http.MethodDelete, pattern, auth, fn) }

	// Authentication.
	post(p+"/auth/login", false, login)
	post(p+"/auth/register", false, register)
	post(p+"/auth/verify", false, verifyEmail)
	post(p+"/auth/forgot", false, forgotPassword)
	post(p+"/auth/reset", false, resetPassword)
	post(p+"/auth/refresh", true, refreshSession)
	post(p+"/auth/logout", true, logout)

	// Self-service account. The /user/profile and /user/balance
	// aliases predate the account/ namespace and are kept for old
	// clients.
	get(p+"/user/account/profile", true, getProfile)
	patch(p+"/user/account/profile", true, updateProfile)
	get(p+"/user/profile", true, getProfile)
	patch(p+"/user/profile", true, updateProfile)
	post(p+"/user/account/password", true, changePassword)
	post(p+"/user/account/credentials/rotate", true, rotateOwnCredential)
	post(p+"/user/account/email/code", true, sendEmailCode)
	post(p+"/user/account/email", true, changeEmail)
	get(p+"/user/account/balance", true, getBalance)
	get(p+"/user/balance", true, getBalance)

	// Self-service resources. The storefront reads (nodes, plans,
	// announcements, payment channels) serve without a session so the
	// shop renders for anonymous visitors.
	get(p+"/user/nodes", false, listUserNodes)
	get(p+"/user/subscriptions", true, listUserSubscriptions)
	get(p+"/user/subscriptions/{id}/preview", true, previewSubscription)
	post(p+"/user/subscriptions/{id}/template", true, selectSubscriptionTemplate)
	get(p+"/user/subscriptions/{id}/traffic", true, getSubscriptionTraffic)
	get(p+"/user/plans", false, listUserPlans)
	get(p+"/user/announcements", false, listUserAnnouncements)
	get(p+"/user/payment-channels", false, listUserPaymentChannels)
	get(p+"/user/orders", true, listUserOrders)
	post(p+"/user/orders", true, createOrder)
	get(p+"/user/orders/{id}", true, getUserOrder)
	get(p+"/user/orders/{id}/payment-status", true, getOrderPaymentStatus)
	post(p+"/user/orders/{id}/cancel", true, cancelUserOrder)

	// Public surface.
	get(p+"/ping", false, ping)
	get(p+"/plans", false, listPublicPlans)
	get(p+"/announcements", false, listPublicAnnouncements)
	get(p+"/nodes", false, listPublicNodes)

	// Admin.
	get(a+"/dashboard", true, adminDashboard)

	get(a+"/users", true, adminListUsers)
	post(a+"/users", true, adminCreateUser)
	patch(a+"/users/{id}/status", true, adminUpdateUserStatus)
	patch(a+"/users/{id}/roles", true, adminUpdateUserRoles)
	post(a+"/users/{id}/reset-password", true, adminResetUserPassword)
	post(a+"/users/{id}/force-logout", true, adminForceLogout)
	post(a+"/users/{id}/credentials/rotate", true, adminRotateUserCredential)

	get(a+"/subscriptions", true, adminListSubscriptions)
	post(a+"/subscriptions", true, adminCreateSubscription)
	get(a+"/subscriptions/{id}", true, adminGetSubscription)
	patch(a+"/subscriptions/{id}", true, adminUpdateSubscription)
	post(a+"/subscriptions/{id}/disable", true, adminDisableSubscription)
	post(a+"/subscriptions/{id}/extend", true, adminExtendSubscription)

	get(a+"/plans", true, adminListPlans)
	post(a+"/plans", true, adminCreatePlan)
	get(a+"/plans/{id}", true, adminGetPlan)
	patch(a+"/plans/{id}", true, adminUpdatePlan)
	get(a+"/plans/{id}/billing-options", true, adminListBillingOptions)
	post(a+"/plans/{id}/billing-options", true, adminCreateBillingOption)
	patch(a+"/plans/{id}/billing-options/{option_id}", true, adminUpdateBillingOption)

	get(a+"/payment-channels", true, adminListChannels)
	post(a+"/payment-channels", true, adminCreateChannel)
	get(a+"/payment-channels/{id}", true, adminGetChannel)
	patch(a+"/payment-channels/{id}", true, adminUpdateChannel)

	get(a+"/coupons", true, adminListCoupons)
	post(a+"/coupons", true, adminCreateCoupon)
	patch(a+"/coupons/{id}", true, adminUpdateCoupon)
	del(a+"/coupons/{id}", true, adminDeleteCoupon)

	get(a+"/announcements", true, adminListAnnouncements)
	post(a+"/announcements", true, adminCreateAnnouncement)
	patch(a+"/announcements/{id}", true, adminUpdateAnnouncement)
	post(a+"/announcements/{id}/publish", true, adminPublishAnnouncement)

	// Template routes exist under both the canonical
	// subscription-templates path and the older templates alias.
	for _, base := range []string{a + "/subscription-templates", a + "/templates"} {
		get(base, true, adminListTemplates)
		post(base, true, adminCreateTemplate)
		patch(base+"/{id}", true, adminUpdateTemplate)
		post(base+"/{id}/publish", true, adminPublishTemplate)
		get(base+"/{id}/history", true, adminTemplateHistory)
	}

	get(a+"/orders", true, adminListOrders)
	post(a+"/orders/payments/reconcile", true, adminReconcilePayment)
	get(a+"/orders/{id}", true, adminGetOrder)
	post(a+"/orders/{id}/pay", true, adminPayOrder)
	post(a+"/orders/{id}/cancel", true, adminCancelOrder)
	post(a+"/orders/{id}/refund", true, adminRefundOrder)

	get(a+"/site-settings", true, adminGetSiteSettings)
	patch(a+"/site-settings", true, adminUpdateSiteSettings)
	get(a+"/security-settings", true, adminGetSecuritySettings)
	patch(a+"/security-settings", true, adminUpdateSecuritySettings)

	get(a+"/audit-logs", true, adminListAuditLogs)
	get(a+"/audit-logs/export", true, adminExportAuditLogs)

	get(a+"/protocol-entries", true, adminListEntries)
	post(a+"/protocol-entries", true, adminCreateEntry)
	patch(a+"/protocol-entries/{id}", true, adminUpdateEntry)
	del(a+"/protocol-entries/{id}", true, adminDeleteEntry)

	get(a+"/protocol-bindings", true, adminListBindings)
	post(a+"/protocol-bindings", true, adminCreateBinding)
	post(a+"/protocol-bindings/status/sync", true, adminSyncBindingStatuses)
	post(a+"/protocol-bindings/sync", true, adminBulkSyncBindings)
	post(a+"/protocol-bindings/{id}/sync", true, adminSyncBinding)
	patch(a+"/protocol-bindings/{id}", true, adminUpdateBinding)
	del(a+"/protocol-bindings/{id}", true, adminDeleteBinding)

	get(a+"/nodes", true, adminListNodes)
	post(a+"/nodes", true, adminCreateNode)
	post(a+"/nodes/status/sync", true, adminSyncNodeStatuses)
	get(a+"/nodes/{id}", true, adminGetNode)
	patch(a+"/nodes/{id}", true, adminUpdateNode)
	del(a+"/nodes/{id}", true, adminDeleteNode)
	post(a+"/nodes/{id}/disable", true, adminDisableNode)
	get(a+"/nodes/{id}/kernels", true, adminListNodeKernels)
	post(a+"/nodes/{id}/kernels/sync", true, adminSyncNodeKernels)

	return routes
}
