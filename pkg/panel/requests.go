package panel

// Request payloads. Update requests use pointer fields so a handler
// can tell "absent" from "explicit zero" when merging into the stored
// record.

// LoginRequest is the credentials payload for password login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest creates a new account.
type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
	InviteCode  string `json:"invite_code"`
}

// VerifyEmailRequest confirms a signup verification code.
type VerifyEmailRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

// ForgotPasswordRequest starts a password reset.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest completes a password reset.
type ResetPasswordRequest struct {
	Email    string `json:"email"`
	Code     string `json:"code"`
	Password string `json:"password"`
}

// UpdateProfileRequest edits the caller's own profile.
type UpdateProfileRequest struct {
	DisplayName *string `json:"display_name"`
}

// ChangePasswordRequest rotates the caller's password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// ChangeEmailRequest rebinds the caller's email address.
type ChangeEmailRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

// CreateOrderRequest places an order for a plan.
type CreateOrderRequest struct {
	PlanID          int64  `json:"plan_id"`
	BillingOptionID int64  `json:"billing_option_id"`
	Quantity        int    `json:"quantity"`
	PaymentMethod   string `json:"payment_method"`
	PaymentChannel  string `json:"payment_channel"`
	ChannelID       int64  `json:"channel_id"`
	CouponCode      string `json:"coupon_code"`
}

// SelectTemplateRequest picks a config template for a subscription.
type SelectTemplateRequest struct {
	TemplateID int64 `json:"template_id"`
}

// CreateUserRequest creates an account via the admin surface.
type CreateUserRequest struct {
	Email         string   `json:"email"`
	Password      string   `json:"password"`
	DisplayName   string   `json:"display_name"`
	Roles         []string `json:"roles"`
	Status        *int     `json:"status"`
	EmailVerified bool     `json:"email_verified"`
}

// UpdateUserStatusRequest flips an account's status.
type UpdateUserStatusRequest struct {
	Status int `json:"status"`
}

// UpdateUserRolesRequest replaces an account's role set.
type UpdateUserRolesRequest struct {
	Roles []string `json:"roles"`
}

// AdminResetPasswordRequest sets a user's password directly.
type AdminResetPasswordRequest struct {
	Password string `json:"password"`
}

// CreateSubscriptionRequest provisions a subscription for a user.
type CreateSubscriptionRequest struct {
	UserID               int64   `json:"user_id"`
	Name                 string  `json:"name"`
	PlanName             string  `json:"plan_name"`
	PlanID               int64   `json:"plan_id"`
	Status               *int    `json:"status"`
	TemplateID           int64   `json:"template_id"`
	AvailableTemplateIDs []int64 `json:"available_template_ids"`
	Token                string  `json:"token"`
	ExpiresAt            int64   `json:"expires_at"`
	TrafficTotalBytes    int64   `json:"traffic_total_bytes"`
	TrafficUsedBytes     *int64  `json:"traffic_used_bytes"`
	DevicesLimit         int     `json:"devices_limit"`
}

// UpdateSubscriptionRequest edits a subscription in place.
type UpdateSubscriptionRequest struct {
	Name              *string `json:"name"`
	PlanName          *string `json:"plan_name"`
	PlanID            *int64  `json:"plan_id"`
	Status            *int    `json:"status"`
	TemplateID        *int64  `json:"template_id"`
	ExpiresAt         *int64  `json:"expires_at"`
	TrafficTotalBytes *int64  `json:"traffic_total_bytes"`
	TrafficUsedBytes  *int64  `json:"traffic_used_bytes"`
	DevicesLimit      *int    `json:"devices_limit"`
}

// ExtendSubscriptionRequest pushes a subscription's expiry forward.
// An explicit expires_at wins over the relative durations.
type ExtendSubscriptionRequest struct {
	ExpiresAt   *int64 `json:"expires_at"`
	ExtendDays  *int64 `json:"extend_days"`
	ExtendHours *int64 `json:"extend_hours"`
}

// CreatePlanRequest creates a plan.
type CreatePlanRequest struct {
	Name              string   `json:"name"`
	Slug              string   `json:"slug"`
	Description       string   `json:"description"`
	PriceCents        int64    `json:"price_cents"`
	Currency          string   `json:"currency"`
	DurationDays      int      `json:"duration_days"`
	TrafficLimitBytes int64    `json:"traffic_limit_bytes"`
	DeviceLimit       int      `json:"device_limit"`
	Tags              []string `json:"tags"`
	Features          []string `json:"features"`
	BindingIDs        []int64  `json:"binding_ids"`
	Status            *int     `json:"status"`
	IsVisible         *bool    `json:"is_visible"`
	SortOrder         int      `json:"sort_order"`
}

// UpdatePlanRequest edits a plan in place.
type UpdatePlanRequest struct {
	Name              *string   `json:"name"`
	Slug              *string   `json:"slug"`
	Description       *string   `json:"description"`
	PriceCents        *int64    `json:"price_cents"`
	Currency          *string   `json:"currency"`
	DurationDays      *int      `json:"duration_days"`
	TrafficLimitBytes *int64    `json:"traffic_limit_bytes"`
	DeviceLimit       *int      `json:"device_limit"`
	Tags              *[]string `json:"tags"`
	Features          *[]string `json:"features"`
	BindingIDs        *[]int64  `json:"binding_ids"`
	Status            *int      `json:"status"`
	IsVisible         *bool     `json:"is_visible"`
	SortOrder         *int      `json:"sort_order"`
}

// CreateBillingOptionRequest adds a billing variant to a plan.
type CreateBillingOptionRequest struct {
	Name          string `json:"name"`
	DurationValue int    `json:"duration_value"`
	DurationUnit  string `json:"duration_unit"`
	PriceCents    int64  `json:"price_cents"`
	Currency      string `json:"currency"`
	SortOrder     *int   `json:"sort_order"`
	Status        *int   `json:"status"`
	Visible       *bool  `json:"visible"`
}

// UpdateBillingOptionRequest edits a billing variant in place.
type UpdateBillingOptionRequest struct {
	Name          *string `json:"name"`
	DurationValue *int    `json:"duration_value"`
	DurationUnit  *string `json:"duration_unit"`
	PriceCents    *int64  `json:"price_cents"`
	Currency      *string `json:"currency"`
	SortOrder     *int    `json:"sort_order"`
	Status        *int    `json:"status"`
	Visible       *bool   `json:"visible"`
}

// CreatePaymentChannelRequest registers a payment gateway.
type CreatePaymentChannelRequest struct {
	Name      string         `json:"name"`
	Code      string         `json:"code"`
	Provider  string         `json:"provider"`
	Enabled   *bool          `json:"enabled"`
	SortOrder *int           `json:"sort_order"`
	Config    map[string]any `json:"config"`
}

// UpdatePaymentChannelRequest edits a payment gateway in place.
type UpdatePaymentChannelRequest struct {
	Name      *string         `json:"name"`
	Code      *string         `json:"code"`
	Provider  *string         `json:"provider"`
	Enabled   *bool           `json:"enabled"`
	SortOrder *int            `json:"sort_order"`
	Config    *map[string]any `json:"config"`
}

// CreateCouponRequest creates a discount code.
type CreateCouponRequest struct {
	Code                  string `json:"code"`
	Name                  string `json:"name"`
	Description           string `json:"description"`
	Status                *int   `json:"status"`
	DiscountType          string `json:"discount_type"`
	DiscountValue         int64  `json:"discount_value"`
	Currency              string `json:"currency"`
	MaxRedemptions        int    `json:"max_redemptions"`
	MaxRedemptionsPerUser int    `json:"max_redemptions_per_user"`
	MinOrderCents         int64  `json:"min_order_cents"`
	StartsAt              int64  `json:"starts_at"`
	EndsAt                int64  `json:"ends_at"`
}

// UpdateCouponRequest edits a coupon in place.
type UpdateCouponRequest struct {
	Code                  *string `json:"code"`
	Name                  *string `json:"name"`
	Description           *string `json:"description"`
	Status                *int    `json:"status"`
	DiscountType          *string `json:"discount_type"`
	DiscountValue         *int64  `json:"discount_value"`
	Currency              *string `json:"currency"`
	MaxRedemptions        *int    `json:"max_redemptions"`
	MaxRedemptionsPerUser *int    `json:"max_redemptions_per_user"`
	MinOrderCents         *int64  `json:"min_order_cents"`
	StartsAt              *int64  `json:"starts_at"`
	EndsAt                *int64  `json:"ends_at"`
}

// CreateAnnouncementRequest creates a draft announcement.
type CreateAnnouncementRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
	Audience string `json:"audience"`
	Priority int    `json:"priority"`
	IsPinned bool   `json:"is_pinned"`
}

// UpdateAnnouncementRequest edits an announcement in place.
type UpdateAnnouncementRequest struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	Category *string `json:"category"`
	Audience *string `json:"audience"`
	Priority *int    `json:"priority"`
	IsPinned *bool   `json:"is_pinned"`
	Status   *int    `json:"status"`
}

// PublishAnnouncementRequest publishes a draft, optionally with an
// expiry (ms).
type PublishAnnouncementRequest struct {
	ExpiresAt int64 `json:"expires_at"`
}

// CreateTemplateRequest creates an unpublished template.
type CreateTemplateRequest struct {
	Name        string                      `json:"name"`
	Description string                      `json:"description"`
	ClientType  string                      `json:"client_type"`
	Format      string                      `json:"format"`
	Content     string                      `json:"content"`
	Variables   map[string]TemplateVariable `json:"variables"`
	IsDefault   *bool                       `json:"is_default"`
}

// UpdateTemplateRequest edits a template's draft state. Edits never
// touch the version; only publishing bumps it.
type UpdateTemplateRequest struct {
	Name        *string                      `json:"name"`
	Description *string                      `json:"description"`
	Format      *string                      `json:"format"`
	Content     *string                      `json:"content"`
	Variables   *map[string]TemplateVariable `json:"variables"`
	IsDefault   *bool                        `json:"is_default"`
}

// PublishTemplateRequest snapshots a template into its history.
type PublishTemplateRequest struct {
	Changelog string `json:"changelog"`
	Operator  string `json:"operator"`
}

// PayOrderRequest marks an order paid via the admin surface.
type PayOrderRequest struct {
	PaymentMethod string `json:"payment_method"`
	Reference     string `json:"reference"`
}

// CancelOrderRequest cancels an order.
type CancelOrderRequest struct {
	Reason string `json:"reason"`
}

// RefundOrderRequest refunds part or all of a paid order.
type RefundOrderRequest struct {
	AmountCents int64  `json:"amount_cents"`
	Reason      string `json:"reason"`
}

// ReconcileRequest re-checks one order against its payment provider.
type ReconcileRequest struct {
	OrderID int64 `json:"order_id"`
}

// UpdateSiteSettingsRequest edits the site singleton.
type UpdateSiteSettingsRequest struct {
	Name    *string `json:"name"`
	LogoURL *string `json:"logo_url"`
}

// UpdateSecuritySettingsRequest edits the security singleton. The
// legacy enable_api and signature_algorithm aliases are still accepted
// on input.
type UpdateSecuritySettingsRequest struct {
	ThirdPartyAPIEnabled *bool   `json:"third_party_api_enabled"`
	EnableAPI            *bool   `json:"enable_api"`
	APIKey               *string `json:"api_key"`
	APISecret            *string `json:"api_secret"`
	EncryptionAlgorithm  *string `json:"encryption_algorithm"`
	SignatureAlgorithm   *string `json:"signature_algorithm"`
	NonceTTLSeconds      *int    `json:"nonce_ttl_seconds"`
}

// CreateNodeRequest registers an edge node.
type CreateNodeRequest struct {
	Name              string   `json:"name"`
	Region            string   `json:"region"`
	Country           string   `json:"country"`
	ISP               string   `json:"isp"`
	Status            *int     `json:"status"`
	Tags              []string `json:"tags"`
	CapacityMbps      int      `json:"capacity_mbps"`
	Description       string   `json:"description"`
	AccessAddress     string   `json:"access_address"`
	ControlEndpoint   string   `json:"control_endpoint"`
	StatusSyncEnabled *bool    `json:"status_sync_enabled"`
}

// UpdateNodeRequest edits a node in place. The control_token,
// control_access_key, and control_secret_key fields are accepted so
// clients can send them, but handlers discard them: credentials are
// write-only and the stored Node has nowhere to hold them.
type UpdateNodeRequest struct {
	Name              *string   `json:"name"`
	Region            *string   `json:"region"`
	Country           *string   `json:"country"`
	ISP               *string   `json:"isp"`
	Status            *int      `json:"status"`
	Tags              *[]string `json:"tags"`
	CapacityMbps      *int      `json:"capacity_mbps"`
	Description       *string   `json:"description"`
	AccessAddress     *string   `json:"access_address"`
	ControlEndpoint   *string   `json:"control_endpoint"`
	StatusSyncEnabled *bool     `json:"status_sync_enabled"`
	ControlToken      *string   `json:"control_token"`
	ControlAccessKey  *string   `json:"control_access_key"`
	ControlSecretKey  *string   `json:"control_secret_key"`
}

// NodeStatusSyncRequest names the nodes to probe.
type NodeStatusSyncRequest struct {
	NodeIDs []int64 `json:"node_ids"`
}

// KernelSyncRequest optionally narrows a kernel sync to one protocol.
type KernelSyncRequest struct {
	Protocol string `json:"protocol"`
}

// CreateBindingRequest creates a protocol binding on a node.
type CreateBindingRequest struct {
	Name        string         `json:"name"`
	NodeID      int64          `json:"node_id"`
	Protocol    string         `json:"protocol"`
	Role        string         `json:"role"`
	KernelID    string         `json:"kernel_id"`
	Listen      string         `json:"listen"`
	Connect     string         `json:"connect"`
	AccessPort  int            `json:"access_port"`
	Status      *int           `json:"status"`
	Tags        []string       `json:"tags"`
	Description string         `json:"description"`
	Profile     map[string]any `json:"profile"`
	Metadata    map[string]any `json:"metadata"`
}

// UpdateBindingRequest edits a binding in place.
type UpdateBindingRequest struct {
	Name        *string         `json:"name"`
	NodeID      *int64          `json:"node_id"`
	Protocol    *string         `json:"protocol"`
	Role        *string         `json:"role"`
	KernelID    *string         `json:"kernel_id"`
	Listen      *string         `json:"listen"`
	Connect     *string         `json:"connect"`
	AccessPort  *int            `json:"access_port"`
	Status      *int            `json:"status"`
	Tags        *[]string       `json:"tags"`
	Description *string         `json:"description"`
	Profile     *map[string]any `json:"profile"`
}

// BindingSyncRequest selects bindings for a bulk sync, by binding id
// first, then by node id, else all.
type BindingSyncRequest struct {
	BindingIDs []int64 `json:"binding_ids"`
	NodeIDs    []int64 `json:"node_ids"`
}

// CreateEntryRequest publishes an entry point for a binding.
type CreateEntryRequest struct {
	Name         string         `json:"name"`
	BindingID    int64          `json:"binding_id"`
	Protocol     string         `json:"protocol"`
	Status       *int           `json:"status"`
	EntryAddress string         `json:"entry_address"`
	EntryPort    int            `json:"entry_port"`
	Tags         []string       `json:"tags"`
	Description  string         `json:"description"`
	Profile      map[string]any `json:"profile"`
}

// UpdateEntryRequest edits an entry in place.
type UpdateEntryRequest struct {
	Name         *string         `json:"name"`
	Protocol     *string         `json:"protocol"`
	Status       *int            `json:"status"`
	EntryAddress *string         `json:"entry_address"`
	EntryPort    *int            `json:"entry_port"`
	Tags         *[]string       `json:"tags"`
	Description  *string         `json:"description"`
	Profile      *map[string]any `json:"profile"`
}
