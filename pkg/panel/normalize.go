package panel

import (
	"fmt"
	"strconv"
	"strings"
)

// Response normalizers. Raw store records carry legacy field
// irregularities (a singular role next to a roles list, "v3"-style
// version strings on input, aliased security flags); every read path
// goes through one of these views so clients always see the canonical
// shape. All normalizers are idempotent.

// normalizeUser promotes the legacy singular role into the roles list
// and keeps both in sync. Mutates in place and returns the same
// pointer.
func normalizeUser(u *User) *User {
	if len(u.Roles) == 0 {
		if u.Role != "" {
			u.Roles = []string{u.Role}
		} else {
			u.Roles = []string{"user"}
		}
	}
	u.Role = u.Roles[0]
	if u.Status == 0 {
		u.Status = StatusActive
	}
	return u
}

// ProfileView is the self-service account shape. It exposes no
// balance, roles, or login counters.
type ProfileView struct {
	ID              int64  `json:"id"`
	Email           string `json:"email"`
	DisplayName     string `json:"display_name"`
	Status          int    `json:"status"`
	EmailVerifiedAt int64  `json:"email_verified_at,omitempty"`
	CreatedAt       int64  `json:"created_at"`
	UpdatedAt       int64  `json:"updated_at"`
}

func profileView(u *User) ProfileView {
	return ProfileView{
		ID:              u.ID,
		Email:           u.Email,
		DisplayName:     u.DisplayName,
		Status:          u.Status,
		EmailVerifiedAt: u.EmailVerifiedAt,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}

// PlanView is a plan with its visible billing options attached.
type PlanView struct {
	Plan
	BillingOptions []*PlanBillingOption `json:"billing_options"`
}

// planView attaches billing options to a plan. When publicOnly is set,
// only active visible options are included.
func (s *Store) planView(p *Plan, publicOnly bool) PlanView {
	opts := []*PlanBillingOption{}
	for _, o := range s.BillingOpts {
		if o.PlanID != p.ID {
			continue
		}
		if publicOnly && (o.Status != PlanStatusActive || !o.Visible) {
			continue
		}
		opts = append(opts, o)
	}
	return PlanView{Plan: *p, BillingOptions: opts}
}

// orderView returns a copy of the order with its user and plan joined.
// Missing referents stay nil.
func (s *Store) orderView(o *Order) Order {
	view := *o
	view.User = s.UserByID(o.UserID)
	if view.User != nil {
		view.User = normalizeUser(view.User)
	}
	if o.PlanID != 0 {
		view.Plan = s.PlanByID(o.PlanID)
	}
	return view
}

// SubscriptionSummary is the self-service subscription shape.
type SubscriptionSummary struct {
	ID                   int64   `json:"id"`
	Name                 string  `json:"name"`
	PlanName             string  `json:"plan_name,omitempty"`
	PlanID               int64   `json:"plan_id,omitempty"`
	Status               int     `json:"status"`
	TemplateID           int64   `json:"template_id,omitempty"`
	AvailableTemplateIDs []int64 `json:"available_template_ids"`
	Token                string  `json:"token,omitempty"`
	SubscriptionURL      string  `json:"subscription_url,omitempty"`
	SubscribeURL         string  `json:"subscribe_url,omitempty"`
	ExpiresAt            int64   `json:"expires_at,omitempty"`
	TrafficTotalBytes    int64   `json:"traffic_total_bytes"`
	TrafficUsedBytes     int64   `json:"traffic_used_bytes"`
	DevicesLimit         int     `json:"devices_limit"`
	LastRefreshedAt      int64   `json:"last_refreshed_at,omitempty"`
}

func (s *Store) subscriptionSummary(sub *Subscription) SubscriptionSummary {
	plan := s.PlanByID(sub.PlanID)
	name := sub.Name
	if name == "" && plan != nil {
		name = plan.Name
	}
	if name == "" {
		name = fmt.Sprintf("Subscription %d", sub.ID)
	}
	planName := sub.PlanName
	if planName == "" && plan != nil {
		planName = plan.Name
	}
	templateID := sub.TemplateID
	if templateID == 0 && len(s.Templates) > 0 {
		templateID = s.Templates[0].ID
	}
	available := sub.AvailableTemplateIDs
	if len(available) == 0 {
		for _, t := range s.Templates {
			available = append(available, t.ID)
		}
	}
	return SubscriptionSummary{
		ID:                   sub.ID,
		Name:                 name,
		PlanName:             planName,
		PlanID:               sub.PlanID,
		Status:               sub.Status,
		TemplateID:           templateID,
		AvailableTemplateIDs: available,
		Token:                subscriptionToken(sub),
		SubscriptionURL:      sub.SubscriptionURL,
		SubscribeURL:         sub.SubscribeURL,
		ExpiresAt:            sub.ExpiresAt,
		TrafficTotalBytes:    sub.TrafficTotalBytes,
		TrafficUsedBytes:     sub.TrafficUsedBytes,
		DevicesLimit:         sub.DeviceLimit,
		LastRefreshedAt:      sub.UpdatedAt,
	}
}

// subscriptionToken falls back to the last path segment of the
// subscribe URL when no explicit token is stored.
func subscriptionToken(sub *Subscription) string {
	if sub.Token != "" {
		return sub.Token
	}
	if sub.SubscribeURL == "" {
		return ""
	}
	parts := strings.Split(strings.TrimRight(sub.SubscribeURL, "/"), "/")
	return parts[len(parts)-1]
}

// SubscriptionOwner is the user snippet nested in admin subscription
// rows.
type SubscriptionOwner struct {
	ID          int64  `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
}

// AdminSubscriptionView is the admin-facing subscription shape.
type AdminSubscriptionView struct {
	ID                   int64              `json:"id"`
	UserID               int64              `json:"user_id"`
	User                 *SubscriptionOwner `json:"user,omitempty"`
	Name                 string             `json:"name"`
	PlanName             string             `json:"plan_name"`
	PlanID               int64              `json:"plan_id,omitempty"`
	Status               int                `json:"status"`
	TemplateID           int64              `json:"template_id,omitempty"`
	AvailableTemplateIDs []int64            `json:"available_template_ids,omitempty"`
	Token                string             `json:"token,omitempty"`
	ExpiresAt            int64              `json:"expires_at,omitempty"`
	TrafficTotalBytes    int64              `json:"traffic_total_bytes"`
	TrafficUsedBytes     int64              `json:"traffic_used_bytes"`
	DevicesLimit         int                `json:"devices_limit"`
	CreatedAt            int64              `json:"created_at"`
	UpdatedAt            int64              `json:"updated_at"`
}

func (s *Store) adminSubscriptionView(sub *Subscription) AdminSubscriptionView {
	view := AdminSubscriptionView{
		ID:                   sub.ID,
		UserID:               sub.UserID,
		Name:                 sub.Name,
		PlanName:             sub.PlanName,
		PlanID:               sub.PlanID,
		Status:               sub.Status,
		TemplateID:           sub.TemplateID,
		AvailableTemplateIDs: sub.AvailableTemplateIDs,
		Token:                subscriptionToken(sub),
		ExpiresAt:            sub.ExpiresAt,
		TrafficTotalBytes:    sub.TrafficTotalBytes,
		TrafficUsedBytes:     sub.TrafficUsedBytes,
		DevicesLimit:         sub.DeviceLimit,
		CreatedAt:            sub.CreatedAt,
		UpdatedAt:            sub.UpdatedAt,
	}
	if view.Name == "" {
		view.Name = fmt.Sprintf("Subscription %d", sub.ID)
	}
	if view.PlanName == "" {
		if plan := s.PlanByID(sub.PlanID); plan != nil {
			view.PlanName = plan.Name
		} else {
			view.PlanName = "-"
		}
	}
	if u := s.UserByID(sub.UserID); u != nil {
		view.User = &SubscriptionOwner{ID: u.ID, Email: u.Email, DisplayName: u.DisplayName}
	}
	return view
}

// KernelStatus is the per-protocol kernel snippet in the user node
// view.
type KernelStatus struct {
	Protocol     string `json:"protocol"`
	Status       int    `json:"status"`
	LastSyncedAt int64  `json:"last_synced_at,omitempty"`
}

// BindingStatus is the per-binding snippet in the user node view.
type BindingStatus struct {
	BindingID       int64  `json:"binding_id"`
	Protocol        string `json:"protocol"`
	Role            string `json:"role"`
	Status          int    `json:"status"`
	HealthStatus    int    `json:"health_status,omitempty"`
	LastHeartbeatAt int64  `json:"last_heartbeat_at,omitempty"`
}

// UserNodeView is the redacted node shape shown to end users. It
// carries no control endpoint, addresses, or load metrics.
type UserNodeView struct {
	ID               int64           `json:"id"`
	Name             string          `json:"name"`
	Region           string          `json:"region,omitempty"`
	Country          string          `json:"country,omitempty"`
	ISP              string          `json:"isp,omitempty"`
	Status           int             `json:"status"`
	Tags             []string        `json:"tags"`
	CapacityMbps     int             `json:"capacity_mbps,omitempty"`
	Description      string          `json:"description,omitempty"`
	LastSyncedAt     int64           `json:"last_synced_at,omitempty"`
	UpdatedAt        int64           `json:"updated_at"`
	KernelStatuses   []KernelStatus  `json:"kernel_statuses"`
	ProtocolStatuses []BindingStatus `json:"protocol_statuses"`
}

func (s *Store) userNodeView(n *Node) UserNodeView {
	view := UserNodeView{
		ID:               n.ID,
		Name:             n.Name,
		Region:           n.Region,
		Country:          n.Country,
		ISP:              n.ISP,
		Status:           n.Status,
		Tags:             n.Tags,
		CapacityMbps:     n.CapacityMbps,
		Description:      n.Description,
		LastSyncedAt:     n.LastSyncedAt,
		UpdatedAt:        n.UpdatedAt,
		KernelStatuses:   []KernelStatus{},
		ProtocolStatuses: []BindingStatus{},
	}
	for _, k := range n.Kernels {
		view.KernelStatuses = append(view.KernelStatuses, KernelStatus{
			Protocol:     k.Protocol,
			Status:       k.Status,
			LastSyncedAt: k.LastSyncedAt,
		})
	}
	for _, b := range s.BindingsByNode(n.ID) {
		view.ProtocolStatuses = append(view.ProtocolStatuses, BindingStatus{
			BindingID:       b.ID,
			Protocol:        b.Protocol,
			Role:            b.Role,
			Status:          b.Status,
			HealthStatus:    b.HealthStatus,
			LastHeartbeatAt: b.LastHeartbeatAt,
		})
	}
	return view
}

// BalanceSnapshot is the compact balance block attached to order
// responses.
type BalanceSnapshot struct {
	UserID       int64  `json:"user_id"`
	BalanceCents int64  `json:"balance_cents"`
	Currency     string `json:"currency"`
	UpdatedAt    int64  `json:"updated_at"`
}

func (s *Store) balanceSnapshot(u *User) BalanceSnapshot {
	return BalanceSnapshot{
		UserID:       u.ID,
		BalanceCents: u.BalanceCents,
		Currency:     "USD",
		UpdatedAt:    s.NowMillis(),
	}
}

// BalanceTransaction is one synthesized ledger row derived from an
// order.
type BalanceTransaction struct {
	ID                int64  `json:"id"`
	EntryType         string `json:"entry_type"`
	AmountCents       int64  `json:"amount_cents"`
	Currency          string `json:"currency"`
	BalanceAfterCents int64  `json:"balance_after_cents"`
	Reference         string `json:"reference"`
	Description       string `json:"description"`
	CreatedAt         int64  `json:"created_at"`
}

func balanceTransaction(o *Order, balanceAfter int64) BalanceTransaction {
	entryType := "pending"
	if o.Status == OrderPaid {
		entryType = "debit"
	}
	return BalanceTransaction{
		ID:                o.ID,
		EntryType:         entryType,
		AmountCents:       o.TotalCents,
		Currency:          o.Currency,
		BalanceAfterCents: balanceAfter,
		Reference:         o.Number,
		Description:       "Order " + o.Number,
		CreatedAt:         o.CreatedAt,
	}
}

// SecurityView resolves the legacy enable_api and signature_algorithm
// aliases into the canonical fields.
type SecurityView struct {
	ID                   int64  `json:"id"`
	ThirdPartyAPIEnabled bool   `json:"third_party_api_enabled"`
	APIKey               string `json:"api_key"`
	APISecret            string `json:"api_secret"`
	EncryptionAlgorithm  string `json:"encryption_algorithm"`
	NonceTTLSeconds      int    `json:"nonce_ttl_seconds"`
	CreatedAt            int64  `json:"created_at"`
	UpdatedAt            int64  `json:"updated_at"`
}

func securityView(sec *SecuritySettings) SecurityView {
	algo := sec.EncryptionAlgorithm
	if algo == "" {
		algo = "HMAC-SHA256"
	}
	return SecurityView{
		ID:                   sec.ID,
		ThirdPartyAPIEnabled: sec.ThirdPartyAPIEnabled,
		APIKey:               sec.APIKey,
		APISecret:            sec.APISecret,
		EncryptionAlgorithm:  algo,
		NonceTTLSeconds:      sec.NonceTTLSeconds,
		CreatedAt:            sec.CreatedAt,
		UpdatedAt:            sec.UpdatedAt,
	}
}

// ChannelSummary is the public payment channel shape. Secrets inside
// the config are the operator's concern; the public list still
// excludes timestamps and the enabled flag.
type ChannelSummary struct {
	ID        int64          `json:"id"`
	Name      string         `json:"name"`
	Code      string         `json:"code"`
	Provider  string         `json:"provider,omitempty"`
	SortOrder int            `json:"sort_order"`
	Config    map[string]any `json:"config,omitempty"`
}

func channelSummary(c *PaymentChannel) ChannelSummary {
	return ChannelSummary{
		ID:        c.ID,
		Name:      c.Name,
		Code:      c.Code,
		Provider:  c.Provider,
		SortOrder: c.SortOrder,
		Config:    c.Config,
	}
}

// ParseTemplateVersion coerces a legacy version value into a positive
// integer. Accepts "3", "v3", and bare integers; anything unparseable
// or non-positive becomes 1.
func ParseTemplateVersion(v any) int {
	switch t := v.(type) {
	case int:
		if t > 0 {
			return t
		}
	case float64:
		if t > 0 {
			return int(t)
		}
	case string:
		raw := strings.TrimPrefix(strings.TrimSpace(t), "v")
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			return n
		}
	}
	return 1
}

// normalizeTemplate guarantees a positive version. Mutates in place
// and returns the same pointer.
func normalizeTemplate(t *Template) *Template {
	if t.Version < 1 {
		t.Version = 1
	}
	return t
}
