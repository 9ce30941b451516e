package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSnapshot() Snapshot {
	return Snapshot{
		User: UserProfile{ID: "user-001", Name: "Valeria", Tier: TierAurora},
		Accounts: []Account{
			{ID: "acc-001", Type: AccountTypeCurrent, Balance: decimal.RequireFromString("1500.50"), Currency: CurrencyUSD},
		},
		Cards: []Card{
			{ID: "card-001", Label: "Aurora", Limit: decimal.RequireFromString("1000"), Available: decimal.RequireFromString("400"), Status: CardActive},
		},
		Contacts: []Contact{
			{ID: "contact-001", Name: "Jorge"},
		},
		Notifications: []NotificationItem{
			{ID: "ntf-001", Title: "Uno", Read: false},
			{ID: "ntf-002", Title: "Dos", Read: true},
			{ID: "ntf-003", Title: "Tres", Read: false},
		},
	}
}

func TestSnapshotClone_Independent(t *testing.T) {
	original := sampleSnapshot()
	clone := original.Clone()

	clone.Accounts[0].Balance = decimal.Zero
	clone.Cards[0].Status = CardBlocked
	clone.Notifications[0].Read = true
	clone.User.Name = "Otra"

	assert.True(t, original.Accounts[0].Balance.Equal(decimal.RequireFromString("1500.50")))
	assert.Equal(t, CardActive, original.Cards[0].Status)
	assert.False(t, original.Notifications[0].Read)
	assert.Equal(t, "Valeria", original.User.Name)
}

func TestSnapshotLookups(t *testing.T) {
	snap := sampleSnapshot()

	require.NotNil(t, snap.Account("acc-001"))
	assert.Nil(t, snap.Account("acc-999"))

	require.NotNil(t, snap.Card("card-001"))
	assert.Nil(t, snap.Card("card-999"))

	require.NotNil(t, snap.Contact("contact-001"))
	assert.Nil(t, snap.Contact("contact-999"))

	require.NotNil(t, snap.Notification("ntf-002"))
	assert.Nil(t, snap.Notification("ntf-999"))

	// Lookups return pointers into the snapshot, so mutations stick.
	snap.Card("card-001").Status = CardBlocked
	assert.Equal(t, CardBlocked, snap.Cards[0].Status)
}

func TestSyncUnread(t *testing.T) {
	snap := sampleSnapshot()
	snap.SyncUnread()
	assert.Equal(t, 2, snap.User.Notifications)

	snap.Notifications[0].Read = true
	snap.SyncUnread()
	assert.Equal(t, 1, snap.User.Notifications)
}
