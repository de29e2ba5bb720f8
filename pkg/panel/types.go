// Package panel implements an in-memory REST emulation engine for a
// VPN subscription panel: an entity store, a route table, and endpoint
// handlers that reproduce the wire contract of the real backend.
//
// Timestamp units are part of the wire contract and differ per entity:
// unless a field says otherwise, timestamps are Unix milliseconds.
// Coupon validity windows, audit log entries, kernel/binding sync
// stamps, traffic observations, and credential metadata use Unix
// seconds. Each field below is declared with its unit; conversion
// happens once where values enter the store, never by magnitude
// guessing.
package panel

// Entity status codes. The numeric values are the wire contract.
const (
	// Generic enabled/disabled style statuses (users, subscriptions,
	// bindings, entries, coupons, announcements drafts).
	StatusActive   = 1
	StatusInactive = 2

	// Plans and billing options use 2 for "on sale".
	PlanStatusActive = 2

	// Announcements: 1 draft, 2 published.
	AnnouncementDraft     = 1
	AnnouncementPublished = 2

	// Nodes: 1 online, 2 degraded, 3 maintenance, 4 disabled.
	NodeOnline      = 1
	NodeDegraded    = 2
	NodeMaintenance = 3
	NodeDisabled    = 4

	// Kernels and binding sync state: 1 pending, 2 synced.
	SyncPending = 1
	SyncDone    = 2
)

// OrderStatus is the closed set of order lifecycle states.
type OrderStatus int

// Order lifecycle states.
const (
	OrderPending           OrderStatus = 1
	OrderPaid              OrderStatus = 2
	OrderCancelled         OrderStatus = 4
	OrderPartiallyRefunded OrderStatus = 5
	OrderFullyRefunded     OrderStatus = 6
)

// PaymentStatus is the closed set of payment states.
type PaymentStatus int

// Payment states.
const (
	PaymentPending PaymentStatus = 1
	PaymentPaid    PaymentStatus = 2
)

// Payment methods accepted on order creation.
const (
	MethodBalance  = "balance"
	MethodExternal = "external"
	MethodManual   = "manual"
)

// User is an account record. Users are never hard-deleted.
type User struct {
	ID                  int64    `json:"id"`
	Email               string   `json:"email"`
	DisplayName         string   `json:"display_name"`
	Role                string   `json:"role,omitempty"`
	Roles               []string `json:"roles,omitempty"`
	Status              int      `json:"status"`
	BalanceCents        int64    `json:"balance_cents"`
	EmailVerifiedAt     int64    `json:"email_verified_at,omitempty"`
	FailedLoginAttempts int      `json:"failed_login_attempts"`
	LockedUntil         int64    `json:"locked_until,omitempty"`
	LastLoginAt         int64    `json:"last_login_at,omitempty"`
	CreatedAt           int64    `json:"created_at"`
	UpdatedAt           int64    `json:"updated_at"`
}

// Plan is a purchasable subscription plan.
type Plan struct {
	ID                int64    `json:"id"`
	Name              string   `json:"name"`
	Slug              string   `json:"slug,omitempty"`
	Description       string   `json:"description,omitempty"`
	PriceCents        int64    `json:"price_cents"`
	Currency          string   `json:"currency"`
	DurationDays      int      `json:"duration_days,omitempty"`
	TrafficLimitBytes int64    `json:"traffic_limit_bytes,omitempty"`
	DeviceLimit       int      `json:"device_limit,omitempty"`
	Tags              []string `json:"tags,omitempty"`
	Features          []string `json:"features,omitempty"`
	BindingIDs        []int64  `json:"binding_ids,omitempty"`
	Status            int      `json:"status"`
	IsVisible         bool     `json:"is_visible"`
	SortOrder         int      `json:"sort_order,omitempty"`
	CreatedAt         int64    `json:"created_at"`
	UpdatedAt         int64    `json:"updated_at"`
}

// PlanBillingOption is an alternate priced duration variant of a plan.
// plan_id is a back-reference; the plan does not hold option IDs.
type PlanBillingOption struct {
	ID            int64  `json:"id"`
	PlanID        int64  `json:"plan_id"`
	Name          string `json:"name,omitempty"`
	DurationValue int    `json:"duration_value"`
	DurationUnit  string `json:"duration_unit"`
	PriceCents    int64  `json:"price_cents"`
	Currency      string `json:"currency"`
	SortOrder     int    `json:"sort_order"`
	Status        int    `json:"status"`
	Visible       bool   `json:"visible"`
	CreatedAt     int64  `json:"created_at"`
	UpdatedAt     int64  `json:"updated_at"`
}

// Subscription is a user's provisioned access. plan_id is referential:
// the plan may change or disappear independently.
type Subscription struct {
	ID                   int64
	UserID               int64
	Name                 string
	PlanName             string
	PlanID               int64
	Status               int
	TemplateID           int64
	AvailableTemplateIDs []int64
	Token                string
	SubscribeURL         string
	SubscriptionURL      string
	StartedAt            int64 // ms
	ExpiresAt            int64 // ms
	TrafficTotalBytes    int64
	TrafficUsedBytes     int64
	DeviceCount          int
	DeviceLimit          int
	CreatedAt            int64 // ms
	UpdatedAt            int64 // ms
}

// Order is a purchase with an attached payment/refund history.
// refunded_cents never exceeds total_cents.
type Order struct {
	ID                    int64          `json:"id"`
	Number                string         `json:"number"`
	UserID                int64          `json:"user_id"`
	User                  *User          `json:"user,omitempty"`
	PlanID                int64          `json:"plan_id,omitempty"`
	Plan                  *Plan          `json:"plan,omitempty"`
	Status                OrderStatus    `json:"status"`
	PaymentStatus         PaymentStatus  `json:"payment_status"`
	PaymentMethod         string         `json:"payment_method,omitempty"`
	PaymentIntentID       string         `json:"payment_intent_id,omitempty"`
	PaymentReference      string         `json:"payment_reference,omitempty"`
	PaymentFailureCode    string         `json:"payment_failure_code,omitempty"`
	PaymentFailureMessage string         `json:"payment_failure_message,omitempty"`
	TotalCents            int64          `json:"total_cents"`
	RefundedCents         int64          `json:"refunded_cents,omitempty"`
	Currency              string         `json:"currency"`
	CancellationReason    string         `json:"cancellation_reason,omitempty"`
	CreatedAt             int64          `json:"created_at"`
	UpdatedAt             int64          `json:"updated_at"`
	PaidAt                int64          `json:"paid_at,omitempty"`
	CancelledAt           int64          `json:"cancelled_at,omitempty"`
	RefundedAt            int64          `json:"refunded_at,omitempty"`
	Items                 []OrderItem    `json:"items,omitempty"`
	Payments              []OrderPayment `json:"payments"`
	Refunds               []OrderRefund  `json:"refunds"`
}

// OrderItem is one purchased line of an order.
type OrderItem struct {
	ID             int64  `json:"id"`
	OrderID        int64  `json:"order_id"`
	ItemType       string `json:"item_type"`
	ItemID         int64  `json:"item_id"`
	Name           string `json:"name"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	Currency       string `json:"currency"`
	SubtotalCents  int64  `json:"subtotal_cents"`
	CreatedAt      int64  `json:"created_at"`
}

// OrderPayment is one payment attempt on an order. The list only grows.
type OrderPayment struct {
	ID          int64          `json:"id"`
	OrderID     int64          `json:"order_id"`
	Provider    string         `json:"provider,omitempty"`
	Method      string         `json:"method"`
	IntentID    string         `json:"intent_id,omitempty"`
	Status      PaymentStatus  `json:"status"`
	AmountCents int64          `json:"amount_cents"`
	Currency    string         `json:"currency"`
	Reference   string         `json:"reference,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	CreatedAt   int64          `json:"created_at"`
}

// OrderRefund is one successful refund on an order. Append-only.
type OrderRefund struct {
	ID          int64  `json:"id"`
	OrderID     int64  `json:"order_id"`
	AmountCents int64  `json:"amount_cents"`
	Reason      string `json:"reason,omitempty"`
	Reference   string `json:"reference"`
	CreatedAt   int64  `json:"created_at"`
}

// Announcement is a site notice with a draft/published lifecycle.
type Announcement struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	Category    string `json:"category,omitempty"`
	Audience    string `json:"audience,omitempty"`
	Priority    int    `json:"priority,omitempty"`
	IsPinned    bool   `json:"is_pinned"`
	Status      int    `json:"status"`
	PublishedAt int64  `json:"published_at,omitempty"`
	ExpiresAt   int64  `json:"expires_at,omitempty"`
	CreatedAt   int64  `json:"created_at"`
	UpdatedAt   int64  `json:"updated_at"`
}

// Coupon is a discount code. starts_at/ends_at are Unix seconds.
type Coupon struct {
	ID                    int64  `json:"id"`
	Code                  string `json:"code"`
	Name                  string `json:"name"`
	Description           string `json:"description,omitempty"`
	Status                int    `json:"status"`
	DiscountType          string `json:"discount_type"`
	DiscountValue         int64  `json:"discount_value"`
	Currency              string `json:"currency,omitempty"`
	MaxRedemptions        int    `json:"max_redemptions,omitempty"`
	MaxRedemptionsPerUser int    `json:"max_redemptions_per_user,omitempty"`
	MinOrderCents         int64  `json:"min_order_cents,omitempty"`
	StartsAt              int64  `json:"starts_at,omitempty"` // seconds
	EndsAt                int64  `json:"ends_at,omitempty"`   // seconds
	CreatedAt             int64  `json:"created_at"`
	UpdatedAt             int64  `json:"updated_at"`
}

// NodeKernel is a protocol process deployed on a node.
// last_synced_at is Unix seconds.
type NodeKernel struct {
	Protocol     string `json:"protocol"`
	Endpoint     string `json:"endpoint,omitempty"`
	Revision     string `json:"revision,omitempty"`
	Status       int    `json:"status"`
	LastSyncedAt int64  `json:"last_synced_at,omitempty"` // seconds
}

// Node is an edge server. Control-plane credentials are accepted on
// write but never stored, so they can never leak into a response.
// last_synced_at is Unix seconds; created_at/updated_at are ms.
type Node struct {
	ID                int64        `json:"id"`
	Name              string       `json:"name"`
	Location          string       `json:"location,omitempty"`
	Region            string       `json:"region,omitempty"`
	Country           string       `json:"country,omitempty"`
	ISP               string       `json:"isp,omitempty"`
	Status            int          `json:"status"`
	Protocols         []string     `json:"protocols,omitempty"`
	Tags              []string     `json:"tags"`
	CapacityMbps      int          `json:"capacity_mbps,omitempty"`
	Description       string       `json:"description,omitempty"`
	AccessAddress     string       `json:"access_address,omitempty"`
	ControlEndpoint   string       `json:"control_endpoint,omitempty"`
	StatusSyncEnabled bool         `json:"status_sync_enabled"`
	LoadPercent       int          `json:"load_percent"`
	OnlineUserCount   int          `json:"online_user_count"`
	TrafficRateMbps   int          `json:"traffic_rate_mbps"`
	LastSyncedAt      int64        `json:"last_synced_at,omitempty"` // seconds
	CreatedAt         int64        `json:"created_at"`
	UpdatedAt         int64        `json:"updated_at"`
	Kernels           []NodeKernel `json:"kernels"`
}

// ProtocolBinding is a protocol listener tied to exactly one node.
// node_id is referential; deleting the node does not cascade.
// last_synced_at/last_heartbeat_at are Unix seconds.
type ProtocolBinding struct {
	ID              int64          `json:"id"`
	Name            string         `json:"name,omitempty"`
	NodeID          int64          `json:"node_id"`
	NodeName        string         `json:"node_name,omitempty"`
	Protocol        string         `json:"protocol"`
	Role            string         `json:"role"`
	KernelID        string         `json:"kernel_id,omitempty"`
	Listen          string         `json:"listen,omitempty"`
	Connect         string         `json:"connect,omitempty"`
	AccessPort      int            `json:"access_port,omitempty"`
	Status          int            `json:"status"`
	SyncStatus      int            `json:"sync_status"`
	HealthStatus    int            `json:"health_status,omitempty"`
	Tags            []string       `json:"tags"`
	Description     string         `json:"description,omitempty"`
	Profile         map[string]any `json:"profile,omitempty"`
	Metadata        map[string]any `json:"metadata,omitempty"`
	LastSyncedAt    int64          `json:"last_synced_at,omitempty"`    // seconds
	LastHeartbeatAt int64          `json:"last_heartbeat_at,omitempty"` // seconds
	LastSyncError   string         `json:"last_sync_error,omitempty"`
	CreatedAt       int64          `json:"created_at"`
	UpdatedAt       int64          `json:"updated_at"`
}

// ProtocolEntry is a public entry point multiplexed onto a binding.
// binding_id is referential.
type ProtocolEntry struct {
	ID            int64          `json:"id"`
	Name          string         `json:"name,omitempty"`
	BindingID     int64          `json:"binding_id"`
	BindingName   string         `json:"binding_name,omitempty"`
	NodeID        int64          `json:"node_id,omitempty"`
	NodeName      string         `json:"node_name,omitempty"`
	Protocol      string         `json:"protocol,omitempty"`
	Status        int            `json:"status"`
	BindingStatus int            `json:"binding_status,omitempty"`
	HealthStatus  int            `json:"health_status,omitempty"`
	EntryAddress  string         `json:"entry_address"`
	EntryPort     int            `json:"entry_port"`
	Tags          []string       `json:"tags"`
	Description   string         `json:"description,omitempty"`
	Profile       map[string]any `json:"profile,omitempty"`
	CreatedAt     int64          `json:"created_at"`
	UpdatedAt     int64          `json:"updated_at"`
}

// TemplateVariable describes one variable in a template's schema.
type TemplateVariable struct {
	Type     string `json:"type"`
	Required bool   `json:"required,omitempty"`
	Default  any    `json:"default,omitempty"`
}

// Template is a subscription config template. Version is a plain
// integer internally; legacy "v3"-style strings are parsed once at
// ingestion (see ParseTemplateVersion).
type Template struct {
	ID              int64                       `json:"id"`
	Name            string                      `json:"name"`
	Description     string                      `json:"description,omitempty"`
	ClientType      string                      `json:"client_type,omitempty"`
	Format          string                      `json:"format,omitempty"`
	Content         string                      `json:"content,omitempty"`
	Variables       map[string]TemplateVariable `json:"variables,omitempty"`
	Version         int                         `json:"version"`
	IsDefault       bool                        `json:"is_default"`
	IsPublished     bool                        `json:"is_published"`
	PublishedAt     int64                       `json:"published_at,omitempty"`
	LastPublishedBy string                      `json:"last_published_by,omitempty"`
	CreatedAt       int64                       `json:"created_at,omitempty"`
	UpdatedAt       int64                       `json:"updated_at"`
}

// TemplateHistoryEntry is one immutable publish record.
type TemplateHistoryEntry struct {
	Version     int                         `json:"version"`
	Changelog   string                      `json:"changelog,omitempty"`
	PublishedAt int64                       `json:"published_at"`
	PublishedBy string                      `json:"published_by"`
	Variables   map[string]TemplateVariable `json:"variables,omitempty"`
}

// PaymentChannel is a configured payment gateway. Config may embed
// templated URLs with {{placeholder}} tokens; the engine stores and
// returns them verbatim, it never interpolates.
type PaymentChannel struct {
	ID        int64          `json:"id"`
	Name      string         `json:"name"`
	Code      string         `json:"code"`
	Provider  string         `json:"provider,omitempty"`
	Enabled   bool           `json:"enabled"`
	SortOrder int            `json:"sort_order"`
	Config    map[string]any `json:"config,omitempty"`
	CreatedAt int64          `json:"created_at"`
	UpdatedAt int64          `json:"updated_at"`
}

// SiteSettings is a singleton record.
type SiteSettings struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	LogoURL   string `json:"logo_url,omitempty"`
	CreatedAt int64  `json:"created_at"`
	UpdatedAt int64  `json:"updated_at"`
}

// SecuritySettings is a singleton record.
type SecuritySettings struct {
	ID                   int64  `json:"id"`
	ThirdPartyAPIEnabled bool   `json:"third_party_api_enabled"`
	APIKey               string `json:"api_key"`
	APISecret            string `json:"api_secret"`
	EncryptionAlgorithm  string `json:"encryption_algorithm"`
	NonceTTLSeconds      int    `json:"nonce_ttl_seconds"`
	CreatedAt            int64  `json:"created_at"`
	UpdatedAt            int64  `json:"updated_at"`
}

// AuditLog is one append-only audit trail entry (created_at in seconds).
type AuditLog struct {
	ID           int64          `json:"id"`
	ActorID      int64          `json:"actor_id"`
	ActorEmail   string         `json:"actor_email,omitempty"`
	ActorRoles   []string       `json:"actor_roles,omitempty"`
	Action       string         `json:"action"`
	ResourceType string         `json:"resource_type"`
	ResourceID   string         `json:"resource_id"`
	SourceIP     string         `json:"source_ip,omitempty"`
	Metadata     map[string]any `json:"metadata,omitempty"`
	CreatedAt    int64          `json:"created_at"` // seconds
}

// TrafficRecord is one simulated usage sample (observed_at in seconds).
type TrafficRecord struct {
	ID           int64   `json:"id"`
	Protocol     string  `json:"protocol"`
	NodeID       int64   `json:"node_id"`
	BindingID    int64   `json:"binding_id"`
	BytesUp      int64   `json:"bytes_up"`
	BytesDown    int64   `json:"bytes_down"`
	RawBytes     int64   `json:"raw_bytes"`
	ChargedBytes int64   `json:"charged_bytes"`
	Multiplier   float64 `json:"multiplier"`
	ObservedAt   int64   `json:"observed_at"` // seconds
}

// CredentialSummary describes a freshly rotated credential
// (timestamps in seconds).
type CredentialSummary struct {
	Version    int   `json:"version"`
	Status     int   `json:"status"`
	IssuedAt   int64 `json:"issued_at"`    // seconds
	LastSeenAt int64 `json:"last_seen_at"` // seconds
}

// BindingSyncResult is one per-binding outcome of a sync operation
// (synced_at in seconds).
type BindingSyncResult struct {
	BindingID int64  `json:"binding_id"`
	Status    int    `json:"status"`
	Message   string `json:"message"`
	SyncedAt  int64  `json:"synced_at"` // seconds
}

// NodeSyncResult is one per-node outcome of a bulk sync operation
// (synced_at in seconds).
type NodeSyncResult struct {
	NodeID   int64  `json:"node_id"`
	Status   int    `json:"status"`
	Message  string `json:"message"`
	SyncedAt int64  `json:"synced_at"` // seconds
	Updated  int    `json:"updated,omitempty"`
}

// Sync result statuses for bulk operations: 1 ok, 3 skipped because
// the target is administratively disabled, 4 failed.
const (
	SyncResultOK       = 1
	SyncResultSkipped  = 3
	SyncResultFailed   = 4
	SyncResultDegraded = 2
)
