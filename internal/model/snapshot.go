package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// UserTier is the loyalty tier shown on the profile header.
type UserTier string

const (
	TierAurora UserTier = "Aurora"
	TierLumen  UserTier = "Lumen"
	TierNebula UserTier = "Nebula"
)

// Currency is an ISO 4217 code.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyMXN Currency = "MXN"
)

// AccountType classifies the user's deposit accounts. Values are the
// user-facing Spanish labels carried all the way to the presentation layer.
type AccountType string

const (
	AccountTypeCurrent    AccountType = "Cuenta Corriente"
	AccountTypeSavings    AccountType = "Cuenta de Ahorro"
	AccountTypeInvestment AccountType = "Inversión"
)

// CardBrand identifies the card network.
type CardBrand string

const (
	BrandVisa       CardBrand = "Visa"
	BrandMastercard CardBrand = "Mastercard"
	BrandAmex       CardBrand = "Amex"
)

// CardStatus is the lifecycle state of a credit card.
type CardStatus string

const (
	CardActive  CardStatus = "Activa"
	CardBlocked CardStatus = "Bloqueada"
)

// ActivityCategory classifies entries in the recent-activity feed.
type ActivityCategory string

const (
	ActivityPayment  ActivityCategory = "Pago"
	ActivityIncome   ActivityCategory = "Ingreso"
	ActivityCard     ActivityCategory = "Tarjeta"
	ActivityTransfer ActivityCategory = "Transferencia"
)

// NotificationCategory classifies inbox notifications.
type NotificationCategory string

const (
	NotificationSecurity     NotificationCategory = "security"
	NotificationPayment      NotificationCategory = "payment"
	NotificationAnnouncement NotificationCategory = "announcement"
)

// UserProfile is the header block of the dashboard. Notifications holds the
// unread count and must stay in sync with the notification list; use
// Snapshot.SyncUnread after any notification mutation.
type UserProfile struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Tier          UserTier  `json:"tier"`
	LastLogin     time.Time `json:"lastLogin"`
	Notifications int       `json:"notifications"`
}

// Account is a deposit account summary.
type Account struct {
	ID       string          `json:"id"`
	Type     AccountType     `json:"type"`
	Number   string          `json:"number"`
	Balance  decimal.Decimal `json:"balance"`
	Currency Currency        `json:"currency"`
}

// Card is a credit card summary. Available never exceeds Limit; a blocked
// card has Available forced to zero.
type Card struct {
	ID        string          `json:"id"`
	Label     string          `json:"label"`
	Brand     CardBrand       `json:"brand"`
	LastFour  string          `json:"lastFour"`
	Limit     decimal.Decimal `json:"limit"`
	Available decimal.Decimal `json:"available"`
	Status    CardStatus      `json:"status"`
}

// ActivityItem is one row of the recent-activity feed. Amount is signed:
// negative for debits, positive for income.
type ActivityItem struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Amount      decimal.Decimal  `json:"amount"`
	Currency    Currency         `json:"currency"`
	Timestamp   time.Time        `json:"timestamp"`
	Category    ActivityCategory `json:"category"`
	AccountID   string           `json:"accountId,omitempty"`
}

// Contact is a saved transfer beneficiary. LastTransferAt is the zero time
// until the first transfer to the contact.
type Contact struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	Bank               string          `json:"bank"`
	AccountNumber      string          `json:"accountNumber"`
	AvatarColor        string          `json:"avatarColor"`
	Nickname           string          `json:"nickname,omitempty"`
	LastTransferAmount decimal.Decimal `json:"lastTransferAmount"`
	LastTransferAt     time.Time       `json:"lastTransferAt"`
}

// NotificationItem is one inbox notification. Read is monotonic: it moves
// false to true and is never reverted.
type NotificationItem struct {
	ID        string               `json:"id"`
	Title     string               `json:"title"`
	Detail    string               `json:"detail"`
	CreatedAt time.Time            `json:"createdAt"`
	Category  NotificationCategory `json:"category"`
	Read      bool                 `json:"read"`
}

// Snapshot is the aggregate root: the complete point-in-time view of the
// user's banking state. Callers outside the gateway must treat it as
// immutable; every mutation produces a fresh Snapshot.
type Snapshot struct {
	User           UserProfile        `json:"user"`
	Accounts       []Account          `json:"accounts"`
	Cards          []Card             `json:"cards"`
	RecentActivity []ActivityItem     `json:"recentActivity"`
	Contacts       []Contact          `json:"contacts"`
	Notifications  []NotificationItem `json:"notifications"`
}

// Clone returns a structurally independent deep copy.
func (s Snapshot) Clone() Snapshot {
	out := s
	out.Accounts = append([]Account(nil), s.Accounts...)
	out.Cards = append([]Card(nil), s.Cards...)
	out.RecentActivity = append([]ActivityItem(nil), s.RecentActivity...)
	out.Contacts = append([]Contact(nil), s.Contacts...)
	out.Notifications = append([]NotificationItem(nil), s.Notifications...)
	return out
}

// Account returns a pointer to the account with the given ID, or nil.
func (s *Snapshot) Account(id string) *Account {
	for i := range s.Accounts {
		if s.Accounts[i].ID == id {
			return &s.Accounts[i]
		}
	}
	return nil
}

// Card returns a pointer to the card with the given ID, or nil.
func (s *Snapshot) Card(id string) *Card {
	for i := range s.Cards {
		if s.Cards[i].ID == id {
			return &s.Cards[i]
		}
	}
	return nil
}

// Contact returns a pointer to the contact with the given ID, or nil.
func (s *Snapshot) Contact(id string) *Contact {
	for i := range s.Contacts {
		if s.Contacts[i].ID == id {
			return &s.Contacts[i]
		}
	}
	return nil
}

// Notification returns a pointer to the notification with the given ID, or nil.
func (s *Snapshot) Notification(id string) *NotificationItem {
	for i := range s.Notifications {
		if s.Notifications[i].ID == id {
			return &s.Notifications[i]
		}
	}
	return nil
}

// UnreadNotifications counts notifications with Read == false.
func (s *Snapshot) UnreadNotifications() int {
	n := 0
	for _, item := range s.Notifications {
		if !item.Read {
			n++
		}
	}
	return n
}

// SyncUnread recomputes the profile's unread counter from the notification
// list. Must be called after every notification mutation.
func (s *Snapshot) SyncUnread() {
	s.User.Notifications = s.UnreadNotifications()
}
