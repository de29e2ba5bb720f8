package panel

import (
	"time"

	"github.com/zeronetwork/panelmock/internal/id"
)

// Store holds every entity collection plus the engine's book-keeping
// state. It carries no lock of its own: the Engine serializes all
// access, so handlers read and write Store fields directly.
type Store struct {
	Users         []*User
	Plans         []*Plan
	BillingOpts   []*PlanBillingOption
	Subscriptions []*Subscription
	Orders        []*Order
	Announcements []*Announcement
	Coupons       []*Coupon
	Nodes         []*Node
	Bindings      []*ProtocolBinding
	Entries       []*ProtocolEntry
	Templates     []*Template
	Channels      []*PaymentChannel
	AuditLogs     []*AuditLog
	Site          *SiteSettings
	Security      *SecuritySettings

	// Session is the currently authenticated user, nil when logged out.
	Session *User

	// TemplateHistory maps template id to its publish records, newest
	// first.
	TemplateHistory map[int64][]TemplateHistoryEntry

	ids    *id.Sequence
	orders *id.OrderNumbers

	credentialVersion int

	// traffic caches the generated per-subscription usage records so
	// repeated queries see a stable dataset.
	traffic map[int64][]TrafficRecord

	// now is swappable for deterministic tests.
	now func() time.Time
}

// NewStore returns a store populated with the development dataset.
func NewStore() *Store {
	s := &Store{now: time.Now}
	s.Reset()
	return s
}

// SetClock replaces the store's time source. Intended for tests.
func (s *Store) SetClock(now func() time.Time) {
	if now != nil {
		s.now = now
	}
}

// Reset discards all state and reloads the seed dataset. The session
// is cleared.
func (s *Store) Reset() {
	s.ids = id.NewSequence(1000)
	s.orders = id.NewOrderNumbers(s.now().Year(), 100)
	s.credentialVersion = 3
	s.traffic = make(map[int64][]TrafficRecord)
	s.Session = nil
	s.seed()
}

// NextID returns the next synthetic entity id.
func (s *Store) NextID() int64 { return s.ids.Next() }

// NextOrderNumber returns the next human-readable order number.
func (s *Store) NextOrderNumber() string { return s.orders.Next() }

// NextCredentialVersion advances and returns the credential counter.
func (s *Store) NextCredentialVersion() int {
	s.credentialVersion++
	return s.credentialVersion
}

// NowMillis returns the current time as Unix milliseconds.
func (s *Store) NowMillis() int64 { return s.now().UnixMilli() }

// NowSeconds returns the current time as Unix seconds.
func (s *Store) NowSeconds() int64 { return s.now().Unix() }

func (s *Store) UserByID(id int64) *User {
	for _, u := range s.Users {
		if u.ID == id {
			return u
		}
	}
	return nil
}

func (s *Store) UserByEmail(email string) *User {
	for _, u := range s.Users {
		if u.Email == email {
			return u
		}
	}
	return nil
}

func (s *Store) PlanByID(id int64) *Plan {
	for _, p := range s.Plans {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (s *Store) BillingOptionByID(id int64) *PlanBillingOption {
	for _, o := range s.BillingOpts {
		if o.ID == id {
			return o
		}
	}
	return nil
}

func (s *Store) SubscriptionByID(id int64) *Subscription {
	for _, sub := range s.Subscriptions {
		if sub.ID == id {
			return sub
		}
	}
	return nil
}

func (s *Store) OrderByID(id int64) *Order {
	for _, o := range s.Orders {
		if o.ID == id {
			return o
		}
	}
	return nil
}

func (s *Store) AnnouncementByID(id int64) *Announcement {
	for _, a := range s.Announcements {
		if a.ID == id {
			return a
		}
	}
	return nil
}

func (s *Store) CouponByID(id int64) *Coupon {
	for _, c := range s.Coupons {
		if c.ID == id {
			return c
		}
	}
	return nil
}

func (s *Store) CouponByCode(code string) *Coupon {
	for _, c := range s.Coupons {
		if c.Code == code {
			return c
		}
	}
	return nil
}

func (s *Store) NodeByID(id int64) *Node {
	for _, n := range s.Nodes {
		if n.ID == id {
			return n
		}
	}
	return nil
}

func (s *Store) BindingByID(id int64) *ProtocolBinding {
	for _, b := range s.Bindings {
		if b.ID == id {
			return b
		}
	}
	return nil
}

// BindingsByNode returns the bindings attached to a node, in store
// order.
func (s *Store) BindingsByNode(nodeID int64) []*ProtocolBinding {
	var out []*ProtocolBinding
	for _, b := range s.Bindings {
		if b.NodeID == nodeID {
			out = append(out, b)
		}
	}
	return out
}

func (s *Store) EntryByID(id int64) *ProtocolEntry {
	for _, e := range s.Entries {
		if e.ID == id {
			return e
		}
	}
	return nil
}

func (s *Store) TemplateByID(id int64) *Template {
	for _, t := range s.Templates {
		if t.ID == id {
			return t
		}
	}
	return nil
}

func (s *Store) ChannelByID(id int64) *PaymentChannel {
	for _, c := range s.Channels {
		if c.ID == id {
			return c
		}
	}
	return nil
}

func (s *Store) ChannelByCode(code string) *PaymentChannel {
	for _, c := range s.Channels {
		if c.Code == code {
			return c
		}
	}
	return nil
}

// OrdersByUser returns a user's orders in store order (newest first,
// since new orders are prepended).
func (s *Store) OrdersByUser(userID int64) []*Order {
	var out []*Order
	for _, o := range s.Orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out
}

// SubscriptionsByUser returns a user's subscriptions in store order.
func (s *Store) SubscriptionsByUser(userID int64) []*Subscription {
	var out []*Subscription
	for _, sub := range s.Subscriptions {
		if sub.UserID == userID {
			out = append(out, sub)
		}
	}
	return out
}
