package gateway

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aurorabank/lumen/internal/model"
)

func TestPayCreditCard_AppliesPayment(t *testing.T) {
	sim := newTestSimulator()

	result, err := sim.PerformOperation(context.Background(), model.PayCardPayload{
		CardID:    "card-aurora",
		AccountID: "acc-001",
		Amount:    dec("500"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Pago aplicado a la tarjeta seleccionada.", result.Response.Message)

	snap := result.Snapshot
	card := snap.Card("card-aurora")
	require.NotNil(t, card)
	assert.True(t, card.Available.Equal(dec("14750")), "available = %s", card.Available)

	account := snap.Account("acc-001")
	require.NotNil(t, account)
	assert.True(t, account.Balance.Equal(dec("15340.25")), "balance = %s", account.Balance)

	entry := snap.RecentActivity[0]
	assert.True(t, entry.Amount.Equal(dec("-500")))
	assert.Equal(t, model.ActivityPayment, entry.Category)
	assert.Equal(t, "Pago a Aurora Signature", entry.Title)
	assert.Equal(t, "acc-001", entry.AccountID)

	assert.Equal(t, "Pago registrado", snap.Notifications[0].Title)
	assert.Equal(t, model.NotificationPayment, snap.Notifications[0].Category)
}

func TestPayCreditCard_ClampStillDebitsFullAmount(t *testing.T) {
	sim := newTestSimulator()

	// 14250 + 4000 exceeds the 18000 limit: available clamps to the limit
	// but the account is debited the full payment.
	result, err := sim.PerformOperation(context.Background(), model.PayCardPayload{
		CardID:    "card-aurora",
		AccountID: "acc-001",
		Amount:    dec("4000"),
	})
	require.NoError(t, err)

	snap := result.Snapshot
	assert.True(t, snap.Card("card-aurora").Available.Equal(dec("18000")))
	assert.True(t, snap.Account("acc-001").Balance.Equal(dec("11840.25")))
}

func TestPayCreditCard_AtLimitSkipsDebit(t *testing.T) {
	sim := newTestSimulator()

	// Saturate the card first, then pay again: no credit is absorbed, so the
	// second payment does not touch the account.
	_, err := sim.PerformOperation(context.Background(), model.PayCardPayload{
		CardID: "card-aurora", AccountID: "acc-001", Amount: dec("4000"),
	})
	require.NoError(t, err)

	result, err := sim.PerformOperation(context.Background(), model.PayCardPayload{
		CardID: "card-aurora", AccountID: "acc-001", Amount: dec("100"),
	})
	require.NoError(t, err)

	snap := result.Snapshot
	assert.True(t, snap.Card("card-aurora").Available.Equal(dec("18000")))
	assert.True(t, snap.Account("acc-001").Balance.Equal(dec("11840.25")))
	// The activity entry is still recorded.
	assert.True(t, snap.RecentActivity[0].Amount.Equal(dec("-100")))
}

func TestPayCreditCard_DefaultsCardAccountAndAmount(t *testing.T) {
	sim := newTestSimulator()

	result, err := sim.PerformOperation(context.Background(), model.PayCardPayload{})
	require.NoError(t, err)

	snap := result.Snapshot
	// First card and first account are used, with the default amount of 320.
	assert.True(t, snap.Card("card-aurora").Available.Equal(dec("14570")))
	assert.True(t, snap.Account("acc-001").Balance.Equal(dec("15520.25")))
	assert.True(t, snap.RecentActivity[0].Amount.Equal(dec("-320")))
}

func TestLockCard_BlocksAndZeroesAvailable(t *testing.T) {
	sim := newTestSimulator()

	result, err := sim.PerformOperation(context.Background(), model.LockCardPayload{CardID: "card-aurora"})
	require.NoError(t, err)
	assert.Equal(t, "Tarjeta bloqueada temporalmente.", result.Response.Message)

	card := result.Snapshot.Card("card-aurora")
	require.NotNil(t, card)
	assert.Equal(t, model.CardBlocked, card.Status)
	assert.True(t, card.Available.IsZero())

	assert.Equal(t, model.ActivityCard, result.Snapshot.RecentActivity[0].Category)
	assert.True(t, result.Snapshot.RecentActivity[0].Amount.IsZero())
	assert.Equal(t, model.NotificationSecurity, result.Snapshot.Notifications[0].Category)
}

func TestRequestIncrease_RaisesLimitAndAvailable(t *testing.T) {
	sim := newTestSimulator()

	result, err := sim.PerformOperation(context.Background(), model.IncreasePayload{CardID: "card-aurora"})
	require.NoError(t, err)

	card := result.Snapshot.Card("card-aurora")
	assert.True(t, card.Limit.Equal(dec("19000")))
	// Available grows by 80% of the increment.
	assert.True(t, card.Available.Equal(dec("15050")))
	assert.Equal(t, model.NotificationAnnouncement, result.Snapshot.Notifications[0].Category)
}

func TestSetTravelNotice_OnlyAppendsEntries(t *testing.T) {
	sim := newTestSimulator()

	result, err := sim.PerformOperation(context.Background(), model.TravelNoticePayload{
		CardID: "card-lumen",
		Notes:  "CDMX y Bogotá",
	})
	require.NoError(t, err)

	snap := result.Snapshot
	// No balances or limits move.
	assert.True(t, snap.Card("card-lumen").Available.Equal(dec("9600")))
	assert.True(t, snap.Account("acc-001").Balance.Equal(dec("15840.25")))

	entry := snap.RecentActivity[0]
	assert.Equal(t, "Aviso de viaje para Lumen Travel", entry.Title)
	assert.Equal(t, "CDMX y Bogotá", entry.Description)
	assert.True(t, entry.Amount.IsZero())
}

func TestScheduleTransfer_MovesMoneyAndUpdatesContact(t *testing.T) {
	sim := newTestSimulator()

	result, err := sim.PerformOperation(context.Background(), model.TransferPayload{
		AccountID: "acc-001",
		ContactID: "contact-jorge",
		Amount:    dec("300"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Transferencia enviada con éxito.", result.Response.Message)

	snap := result.Snapshot
	assert.True(t, snap.Account("acc-001").Balance.Equal(dec("15540.25")))

	contact := snap.Contact("contact-jorge")
	require.NotNil(t, contact)
	assert.True(t, contact.LastTransferAmount.Equal(dec("300")))
	assert.Equal(t, testClock(), contact.LastTransferAt)

	entry := snap.RecentActivity[0]
	assert.Equal(t, model.ActivityTransfer, entry.Category)
	assert.True(t, entry.Amount.Equal(dec("-300")))
	assert.Equal(t, "Transferencia a Jorge M.", entry.Title)
	assert.Equal(t, "acc-001", entry.AccountID)
}

func TestScheduleTransfer_UnknownContactFailsDeterministically(t *testing.T) {
	// Even with guaranteed random failure, the business error wins.
	sim := newTestSimulator(WithFailureRate(1))

	before, err := sim.FetchSnapshot(context.Background())
	require.NoError(t, err)

	_, err = sim.PerformOperation(context.Background(), model.TransferPayload{
		AccountID: "acc-001",
		ContactID: "contact-nadie",
		Amount:    dec("300"),
	})
	var gerr *model.GatewayError
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, CodeTransferInvalid, gerr.Code)
	assert.Equal(t, "No fue posible validar la cuenta o el contacto seleccionado.", gerr.Message)

	after, err := sim.FetchSnapshot(context.Background())
	require.NoError(t, err)
	assert.True(t, after.Account("acc-001").Balance.Equal(before.Account("acc-001").Balance))
	assert.Len(t, after.RecentActivity, len(before.RecentActivity))
}

func TestScheduleTransfer_UnknownAccountFails(t *testing.T) {
	sim := newTestSimulator()

	_, err := sim.PerformOperation(context.Background(), model.TransferPayload{
		AccountID: "acc-999",
		ContactID: "contact-jorge",
	})
	var gerr *model.GatewayError
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, CodeTransferInvalid, gerr.Code)
}

func TestScheduleTransfer_DefaultsAccountContactAndAmount(t *testing.T) {
	sim := newTestSimulator()

	result, err := sim.PerformOperation(context.Background(), model.TransferPayload{})
	require.NoError(t, err)

	snap := result.Snapshot
	assert.True(t, snap.Account("acc-001").Balance.Equal(dec("15320.25")))
	assert.True(t, snap.Contact("contact-jorge").LastTransferAmount.Equal(dec("520")))
}

func TestAcknowledgeNotification_MarksReadAndRecounts(t *testing.T) {
	sim := newTestSimulator()

	result, err := sim.PerformOperation(context.Background(), model.AcknowledgePayload{NotificationID: "ntf-security"})
	require.NoError(t, err)

	snap := result.Snapshot
	require.NotNil(t, snap.Notification("ntf-security"))
	assert.True(t, snap.Notification("ntf-security").Read)
	assert.Equal(t, 1, snap.User.Notifications)
	assert.Equal(t, "Notificación revisada", snap.RecentActivity[0].Title)
}

func TestAcknowledgeNotification_AlreadyReadIsIdempotent(t *testing.T) {
	sim := newTestSimulator()

	// ntf-payment starts read in the seed data.
	result, err := sim.PerformOperation(context.Background(), model.AcknowledgePayload{NotificationID: "ntf-payment"})
	require.NoError(t, err)

	snap := result.Snapshot
	assert.True(t, snap.Notification("ntf-payment").Read)
	assert.Equal(t, 2, snap.User.Notifications)
}

func TestAcknowledgeNotification_MissingIDFailsDeterministically(t *testing.T) {
	sim := newTestSimulator(WithFailureRate(1))

	_, err := sim.PerformOperation(context.Background(), model.AcknowledgePayload{NotificationID: "ntf-fantasma"})
	var gerr *model.GatewayError
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, CodeNotificationMissing, gerr.Code)
	assert.Equal(t, "La notificación ya no se encuentra disponible.", gerr.Message)
}

func TestFeeds_CappedAtTwelveNewestFirst(t *testing.T) {
	sim := newTestSimulator()

	for i := 0; i < 20; i++ {
		_, err := sim.PerformOperation(context.Background(), model.TravelNoticePayload{CardID: "card-aurora"})
		require.NoError(t, err)
	}

	snap, err := sim.FetchSnapshot(context.Background())
	require.NoError(t, err)
	assert.Len(t, snap.RecentActivity, 12)
	assert.Len(t, snap.Notifications, 12)
	assert.Equal(t, "Aviso de viaje para Aurora Signature", snap.RecentActivity[0].Title)
	assert.Equal(t, "Aviso de viaje activo", snap.Notifications[0].Title)
	// Entries appended later carry higher generated IDs.
	assert.Greater(t, snap.RecentActivity[0].ID, snap.RecentActivity[1].ID)
}
