package panel

import "time"

const gib = int64(1024 * 1024 * 1024)

// seed loads the development dataset. All timestamps are derived from
// the store clock so relative ages stay stable across restarts.
func (s *Store) seed() {
	now := s.now()
	ms := func(ago time.Duration) int64 { return now.Add(-ago).UnixMilli() }
	sec := func(ago time.Duration) int64 { return now.Add(-ago).Unix() }
	msIn := func(ahead time.Duration) int64 { return now.Add(ahead).UnixMilli() }
	secIn := func(ahead time.Duration) int64 { return now.Add(ahead).Unix() }
	day := 24 * time.Hour

	s.Users = []*User{
		{
			ID: 1, Email: "user@example.com", DisplayName: "Test User",
			Role: "user", Roles: []string{"user"}, Status: StatusActive,
			BalanceCents: 100000, EmailVerifiedAt: ms(20 * day),
			LastLoginAt: ms(2 * day), CreatedAt: ms(30 * day), UpdatedAt: ms(0),
		},
		{
			ID: 2, Email: "admin@example.com", DisplayName: "Admin User",
			Role: "admin", Roles: []string{"admin"}, Status: StatusActive,
			BalanceCents: 0, EmailVerifiedAt: ms(80 * day),
			FailedLoginAttempts: 1, LastLoginAt: ms(6 * time.Hour),
			CreatedAt: ms(90 * day), UpdatedAt: ms(0),
		},
		{
			ID: 3, Email: "admin@demo.com", DisplayName: "Demo Admin",
			Role: "admin", Roles: []string{"admin"}, Status: StatusActive,
			BalanceCents: 0, EmailVerifiedAt: ms(10 * day),
			LastLoginAt: ms(12 * time.Hour), CreatedAt: ms(30 * day), UpdatedAt: ms(0),
		},
		{
			ID: 4, Email: "user@demo.com", DisplayName: "Demo User",
			Role: "user", Roles: []string{"user"}, Status: StatusActive,
			BalanceCents: 50000, EmailVerifiedAt: ms(8 * day),
			LastLoginAt: ms(5 * day), CreatedAt: ms(20 * day), UpdatedAt: ms(0),
		},
	}

	s.Plans = []*Plan{
		{
			ID: 1, Name: "Starter Plan", Slug: "starter",
			Description: "Perfect for beginners and light usage",
			PriceCents:  999, Currency: "USD", DurationDays: 30,
			TrafficLimitBytes: 50 * gib, DeviceLimit: 3,
			Tags:     []string{"popular", "starter"},
			Features: []string{"High-speed connection", "Email support", "Basic encryption"},
			BindingIDs: []int64{1, 3}, Status: PlanStatusActive, IsVisible: true,
			SortOrder: 1, CreatedAt: ms(60 * day), UpdatedAt: ms(5 * day),
		},
		{
			ID: 2, Name: "Professional Plan", Slug: "professional",
			Description: "Great for professionals and small teams",
			PriceCents:  2999, Currency: "USD", DurationDays: 30,
			TrafficLimitBytes: 200 * gib, DeviceLimit: 10,
			Tags: []string{"recommended", "professional"},
			Features: []string{
				"Ultra high-speed connection", "Priority support",
				"Advanced encryption", "Multiple protocols", "No throttling",
			},
			BindingIDs: []int64{1, 2, 3, 4}, Status: PlanStatusActive, IsVisible: true,
			SortOrder: 2, CreatedAt: ms(60 * day), UpdatedAt: ms(2 * day),
		},
		{
			ID: 3, Name: "Enterprise Plan", Slug: "enterprise",
			Description: "Unlimited power for enterprises",
			PriceCents:  9999, Currency: "USD", DurationDays: 30,
			TrafficLimitBytes: 1024 * gib, DeviceLimit: 50,
			Tags: []string{"enterprise", "unlimited"},
			Features: []string{
				"Unlimited bandwidth", "24/7 dedicated support",
				"Enterprise encryption", "Custom protocols", "Dedicated IP",
				"SLA guarantee",
			},
			BindingIDs: []int64{1, 2, 3, 4, 5}, Status: PlanStatusActive, IsVisible: true,
			SortOrder: 3, CreatedAt: ms(60 * day), UpdatedAt: ms(1 * day),
		},
	}

	s.BillingOpts = []*PlanBillingOption{
		{
			ID: 1, PlanID: 1, Name: "Monthly", DurationValue: 1, DurationUnit: "month",
			PriceCents: 999, Currency: "USD", SortOrder: 1, Status: PlanStatusActive,
			Visible: true, CreatedAt: ms(40 * day), UpdatedAt: ms(10 * day),
		},
		{
			ID: 2, PlanID: 2, Name: "Annual", DurationValue: 1, DurationUnit: "year",
			PriceCents: 29999, Currency: "USD", SortOrder: 1, Status: PlanStatusActive,
			Visible: true, CreatedAt: ms(40 * day), UpdatedAt: ms(10 * day),
		},
		{
			ID: 3, PlanID: 3, Name: "Quarterly", DurationValue: 3, DurationUnit: "month",
			PriceCents: 12999, Currency: "USD", SortOrder: 1, Status: PlanStatusActive,
			Visible: true, CreatedAt: ms(40 * day), UpdatedAt: ms(10 * day),
		},
	}

	s.Subscriptions = []*Subscription{
		{
			ID: 1, UserID: 1, PlanID: 2, Status: StatusActive, TemplateID: 1,
			Token: "abc123", StartedAt: ms(10 * day), ExpiresAt: msIn(20 * day),
			TrafficUsedBytes: 50 * gib, TrafficTotalBytes: 200 * gib,
			DeviceCount: 3, DeviceLimit: 10,
			SubscribeURL: "https://example.com/subscribe/abc123",
			CreatedAt:    ms(10 * day), UpdatedAt: ms(0),
		},
	}

	s.Orders = []*Order{
		{
			ID: 1, Number: "ORD-2024-001", UserID: 1, PlanID: 2,
			Status: OrderPaid, PaymentStatus: PaymentPaid, PaymentMethod: MethodBalance,
			TotalCents: 2999, Currency: "USD",
			CreatedAt:  ms(10 * day), UpdatedAt: ms(10 * day), PaidAt: ms(10 * day),
			Payments: []OrderPayment{
				{
					ID: 1, OrderID: 1, Method: MethodBalance, Status: PaymentPaid,
					AmountCents: 2999, Currency: "USD", CreatedAt: ms(10 * day),
				},
			},
			Refunds: []OrderRefund{},
		},
		{
			ID: 2, Number: "ORD-2024-002", UserID: 1, PlanID: 1,
			Status: OrderPending, PaymentStatus: PaymentPending,
			TotalCents: 999, Currency: "USD",
			CreatedAt:  ms(2 * time.Hour), UpdatedAt: ms(2 * time.Hour),
			Payments:   []OrderPayment{}, Refunds: []OrderRefund{},
		},
	}

	s.Announcements = []*Announcement{
		{
			ID: 1, Title: "Welcome to Zero Network Panel",
			Content:  "We are excited to welcome you to our platform. Get started by exploring our plans and subscribing to one that fits your needs.",
			Category: "feature", Audience: "all", Priority: 1, IsPinned: true,
			Status: AnnouncementPublished, PublishedAt: ms(5 * day),
			CreatedAt: ms(5 * day), UpdatedAt: ms(5 * day),
		},
		{
			ID: 2, Title: "Scheduled Maintenance - December 26, 2024",
			Content:  "We will be performing scheduled maintenance on December 26, 2024 from 02:00 to 04:00 UTC. Services may be temporarily unavailable during this time.",
			Category: "maintenance", Audience: "all", Priority: 2,
			Status: AnnouncementPublished, PublishedAt: ms(1 * day),
			ExpiresAt: msIn(2 * day), CreatedAt: ms(2 * day), UpdatedAt: ms(1 * day),
		},
		{
			ID: 3, Title: "New Features Released",
			Content:  "Check out our latest features including advanced traffic analytics, multi-device support, and improved connection speeds.",
			Category: "feature", Audience: "user", Priority: 3,
			Status: AnnouncementDraft, CreatedAt: ms(12 * time.Hour), UpdatedAt: ms(1 * time.Hour),
		},
	}

	s.Coupons = []*Coupon{
		{
			ID: 1, Code: "WELCOME10", Name: "新用户优惠", Description: "首单立减 10%",
			Status: StatusActive, DiscountType: "percent", DiscountValue: 1000,
			MaxRedemptions: 1000, MaxRedemptionsPerUser: 1, MinOrderCents: 500,
			StartsAt: sec(7 * day), EndsAt: secIn(30 * day),
			CreatedAt: ms(10 * day), UpdatedAt: ms(2 * day),
		},
		{
			ID: 2, Code: "VIP50", Name: "VIP 专享优惠", Description: "VIP 会员立减 50 美元",
			Status: StatusActive, DiscountType: "fixed", DiscountValue: 5000,
			Currency: "USD", MaxRedemptions: 200, MaxRedemptionsPerUser: 1,
			MinOrderCents: 20000, StartsAt: sec(3 * day), EndsAt: secIn(14 * day),
			CreatedAt: ms(5 * day), UpdatedAt: ms(1 * day),
		},
	}

	s.Nodes = []*Node{
		{
			ID: 1, Name: "US West - Los Angeles", Location: "Los Angeles, CA",
			Region: "us-west", Country: "United States", ISP: "Cloudflare",
			Status: NodeOnline, Protocols: []string{"vless", "vmess", "trojan"},
			Tags: []string{}, CapacityMbps: 1000,
			Description:   "West coast node with high bandwidth",
			AccessAddress: "la-edge.example.com",
			ControlEndpoint: "https://kernel-la.example.com/api",
			StatusSyncEnabled: true, LoadPercent: 45, OnlineUserCount: 234,
			TrafficRateMbps: 1250, LastSyncedAt: sec(5 * time.Minute),
			CreatedAt: ms(90 * day), UpdatedAt: ms(5 * time.Minute),
			Kernels: []NodeKernel{
				{Protocol: "vless", Endpoint: "vless://example.com:443", Revision: "v1.8.0", Status: SyncDone, LastSyncedAt: sec(5 * time.Minute)},
				{Protocol: "vmess", Endpoint: "vmess://example.com:444", Revision: "v1.7.5", Status: SyncDone, LastSyncedAt: sec(5 * time.Minute)},
				{Protocol: "trojan", Endpoint: "trojan://example.com:445", Revision: "v1.16.0", Status: SyncDone, LastSyncedAt: sec(5 * time.Minute)},
			},
		},
		{
			ID: 2, Name: "US East - New York", Location: "New York, NY",
			Region: "us-east", Country: "United States", ISP: "DigitalOcean",
			Status: NodeOnline, Protocols: []string{"vless", "ss"},
			Tags: []string{}, CapacityMbps: 2000,
			Description:   "East coast node optimized for low latency",
			AccessAddress: "ny-edge.example.com",
			ControlEndpoint: "https://kernel-ny.example.com/api",
			StatusSyncEnabled: true, LoadPercent: 62, OnlineUserCount: 456,
			TrafficRateMbps: 2100, LastSyncedAt: sec(3 * time.Minute),
			CreatedAt: ms(90 * day), UpdatedAt: ms(3 * time.Minute),
			Kernels: []NodeKernel{
				{Protocol: "vless", Endpoint: "vless://ny.example.com:443", Revision: "v1.8.0", Status: SyncDone, LastSyncedAt: sec(3 * time.Minute)},
				{Protocol: "ss", Endpoint: "ss://ny.example.com:8388", Revision: "v1.15.2", Status: SyncDone, LastSyncedAt: sec(3 * time.Minute)},
			},
		},
		{
			ID: 3, Name: "EU - Frankfurt", Location: "Frankfurt, Germany",
			Region: "eu-central", Country: "Germany", ISP: "Hetzner",
			Status: NodeOnline, Protocols: []string{"trojan", "hysteria"},
			Tags: []string{}, CapacityMbps: 1500,
			Description:   "European node with GDPR compliance",
			AccessAddress: "de-edge.example.com",
			ControlEndpoint: "https://kernel-de.example.com/api",
			StatusSyncEnabled: false, LoadPercent: 38, OnlineUserCount: 189,
			TrafficRateMbps: 980, LastSyncedAt: sec(2 * time.Minute),
			CreatedAt: ms(80 * day), UpdatedAt: ms(2 * time.Minute),
			Kernels: []NodeKernel{
				{Protocol: "trojan", Endpoint: "trojan://de.example.com:443", Revision: "v1.16.0", Status: SyncDone, LastSyncedAt: sec(2 * time.Minute)},
				{Protocol: "hysteria", Endpoint: "hysteria://de.example.com:36712", Revision: "v2.0.3", Status: SyncDone, LastSyncedAt: sec(2 * time.Minute)},
			},
		},
		{
			ID: 4, Name: "Asia - Singapore", Location: "Singapore",
			Region: "asia-southeast", Country: "Singapore", ISP: "AWS",
			Status: NodeMaintenance, Protocols: []string{"vless"},
			Tags: []string{}, CapacityMbps: 800,
			Description:   "Asian node under maintenance",
			AccessAddress: "sg-edge.example.com",
			ControlEndpoint: "https://kernel-sg.example.com/api",
			StatusSyncEnabled: true, LastSyncedAt: sec(time.Hour),
			CreatedAt: ms(70 * day), UpdatedAt: ms(1 * time.Minute),
			Kernels: []NodeKernel{
				{Protocol: "vless", Endpoint: "vless://sg.example.com:443", Revision: "v1.8.0", Status: SyncPending, LastSyncedAt: sec(time.Hour)},
			},
		},
	}

	s.Bindings = []*ProtocolBinding{
		{
			ID: 1, Name: "LA vless", NodeID: 1, NodeName: "US West - Los Angeles",
			Protocol: "vless", Role: "listener", KernelID: "vless-la", AccessPort: 443,
			Status: StatusActive, SyncStatus: SyncDone, HealthStatus: 1,
			Tags: []string{}, Profile: map[string]any{"transport": "grpc", "tls": true},
			LastSyncedAt: sec(5 * time.Minute),
			CreatedAt:    ms(70 * day), UpdatedAt: ms(5 * time.Minute),
		},
		{
			ID: 2, Name: "LA vmess", NodeID: 1, NodeName: "US West - Los Angeles",
			Protocol: "vmess", Role: "listener", KernelID: "vmess-la", AccessPort: 8443,
			Status: StatusActive, SyncStatus: SyncDone, HealthStatus: 1,
			Tags: []string{}, Profile: map[string]any{"transport": "ws", "tls": true},
			LastSyncedAt: sec(5 * time.Minute),
			CreatedAt:    ms(70 * day), UpdatedAt: ms(5 * time.Minute),
		},
		{
			ID: 3, Name: "NY vless", NodeID: 2, NodeName: "US East - New York",
			Protocol: "vless", Role: "listener", KernelID: "vless-ny", AccessPort: 443,
			Status: StatusActive, SyncStatus: SyncDone, HealthStatus: 1,
			Tags: []string{}, Profile: map[string]any{"transport": "tcp", "tls": true},
			LastSyncedAt: sec(3 * time.Minute),
			CreatedAt:    ms(60 * day), UpdatedAt: ms(3 * time.Minute),
		},
		{
			ID: 4, Name: "DE trojan", NodeID: 3, NodeName: "EU - Frankfurt",
			Protocol: "trojan", Role: "listener", KernelID: "trojan-de", AccessPort: 443,
			Status: StatusActive, SyncStatus: SyncDone, HealthStatus: 1,
			Tags: []string{}, Profile: map[string]any{"transport": "tcp", "tls": true},
			LastSyncedAt: sec(2 * time.Minute),
			CreatedAt:    ms(55 * day), UpdatedAt: ms(2 * time.Minute),
		},
		{
			ID: 5, Name: "SG vless", NodeID: 4, NodeName: "Asia - Singapore",
			Protocol: "vless", Role: "listener", KernelID: "vless-sg", AccessPort: 443,
			Status: StatusInactive, SyncStatus: SyncPending, HealthStatus: 2,
			Tags: []string{}, Profile: map[string]any{"transport": "grpc", "tls": true},
			LastSyncedAt: sec(time.Hour),
			CreatedAt:    ms(50 * day), UpdatedAt: ms(time.Hour),
		},
	}

	s.Entries = []*ProtocolEntry{
		{
			ID: 1, Name: "LA vless entry", BindingID: 1, BindingName: "LA vless",
			NodeID: 1, NodeName: "US West - Los Angeles", Protocol: "vless",
			Status: StatusActive, BindingStatus: 1, HealthStatus: 1,
			EntryAddress: "la-edge.example.com", EntryPort: 443,
			Tags: []string{"edge"}, Description: "LA public entry",
			CreatedAt: ms(20 * day), UpdatedAt: ms(5 * day),
		},
		{
			ID: 2, Name: "NY vless entry", BindingID: 3, BindingName: "NY vless",
			NodeID: 2, NodeName: "US East - New York", Protocol: "vless",
			Status: StatusActive, BindingStatus: 1, HealthStatus: 1,
			EntryAddress: "ny-edge.example.com", EntryPort: 443,
			Tags: []string{"edge"}, Description: "NY public entry",
			CreatedAt: ms(15 * day), UpdatedAt: ms(2 * day),
		},
	}

	s.Templates = []*Template{
		{
			ID: 1, Name: "Clash Premium", ClientType: "clash", Format: "yaml",
			Version: 3, IsDefault: true, IsPublished: true,
			PublishedAt: ms(30 * day), CreatedAt: ms(60 * day), UpdatedAt: ms(30 * day),
		},
		{
			ID: 2, Name: "V2Ray Standard", ClientType: "v2ray", Format: "json",
			Version: 1, IsPublished: true,
			PublishedAt: ms(20 * day), CreatedAt: ms(50 * day), UpdatedAt: ms(20 * day),
		},
		{
			ID: 3, Name: "Shadowsocks Basic", ClientType: "shadowsocks", Format: "json",
			Version: 1, CreatedAt: ms(10 * day), UpdatedAt: ms(1 * day),
		},
	}

	s.TemplateHistory = map[int64][]TemplateHistoryEntry{
		1: {
			{Version: 3, Changelog: "Updated configuration format", PublishedAt: ms(30 * day), PublishedBy: "Mock Operator"},
			{Version: 2, Changelog: "Added new protocol support", PublishedAt: ms(45 * day), PublishedBy: "Mock Operator"},
		},
		2: {
			{Version: 1, Changelog: "Initial release", PublishedAt: ms(20 * day), PublishedBy: "Mock Operator"},
		},
	}

	s.Channels = []*PaymentChannel{
		{
			ID: 1, Name: "Stripe Checkout", Code: "stripe_checkout", Provider: "stripe",
			Enabled: true, SortOrder: 1,
			Config: map[string]any{
				"mode":       "http",
				"notify_url": "https://example.com/api/v1/payments/callback?order_id={{order_id}}&payment_id={{payment_id}}",
				"return_url": "https://example.com/orders/{{order_number}}",
				"http": map[string]any{
					"endpoint":  "https://gateway.example.com/pay",
					"method":    "POST",
					"body_type": "json",
					"headers":   map[string]any{"Content-Type": "application/json"},
					"payload": map[string]any{
						"order_no":   "{{order_number}}",
						"amount":     "{{amount}}",
						"notify_url": "{{notify_url}}",
						"return_url": "{{return_url}}",
					},
				},
				"response": map[string]any{
					"pay_url":   "data.pay_url",
					"qr_code":   "data.qr_code",
					"reference": "data.reference",
				},
			},
			CreatedAt: ms(35 * day), UpdatedAt: ms(7 * day),
		},
		{
			ID: 2, Name: "Manual Transfer", Code: "manual_transfer", Provider: "offline",
			Enabled: false, SortOrder: 2,
			Config: map[string]any{
				"mode":         "manual",
				"instructions": "Bank transfer or offline settlement.",
			},
			CreatedAt: ms(20 * day), UpdatedAt: ms(3 * day),
		},
	}

	s.Site = &SiteSettings{
		ID: 1, Name: "Zero Network Panel", LogoURL: "https://example.com/logo.svg",
		CreatedAt: ms(120 * day), UpdatedAt: ms(2 * day),
	}

	s.Security = &SecuritySettings{
		ID: 1, ThirdPartyAPIEnabled: false, APIKey: "", APISecret: "",
		EncryptionAlgorithm: "aes-256-gcm", NonceTTLSeconds: 300,
		CreatedAt: ms(120 * day), UpdatedAt: ms(7 * day),
	}

	s.AuditLogs = []*AuditLog{
		{
			ID: 1, ActorID: 2, ActorEmail: "admin@example.com", ActorRoles: []string{"admin"},
			Action: "plan.update", ResourceType: "plan", ResourceID: "2",
			SourceIP: "203.0.113.10",
			Metadata: map[string]any{"field": "price_cents", "from": 1999, "to": 2999},
			CreatedAt: sec(3 * day),
		},
		{
			ID: 2, ActorID: 2, ActorEmail: "admin@example.com", ActorRoles: []string{"admin"},
			Action: "coupon.create", ResourceType: "coupon", ResourceID: "1",
			SourceIP: "203.0.113.11",
			Metadata: map[string]any{"code": "WELCOME10"},
			CreatedAt: sec(2 * day),
		},
		{
			ID: 3, ActorID: 2, ActorEmail: "admin@example.com", ActorRoles: []string{"admin"},
			Action: "node.sync", ResourceType: "node", ResourceID: "1",
			SourceIP: "203.0.113.12",
			Metadata: map[string]any{"protocol": "vless"},
			CreatedAt: sec(6 * time.Hour),
		},
	}
}
