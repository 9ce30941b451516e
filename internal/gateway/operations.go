package gateway

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/aurorabank/lumen/internal/format"
	"github.com/aurorabank/lumen/internal/model"
)

// Activity and notification feeds keep at most this many entries,
// newest first; older entries are silently evicted.
const maxFeedEntries = 12

var (
	defaultPaymentAmount  = decimal.NewFromInt(320)
	defaultTransferAmount = decimal.NewFromInt(520)
	increaseIncrement     = decimal.NewFromInt(1000)
	increaseShare         = decimal.RequireFromString("0.8")
)

// validate raises the deterministic business-rule failures. It runs before
// the random unavailability gate so these rejections are never masked.
func (s *Simulator) validate(payload model.OperationPayload, req *model.OperationRequest) error {
	switch p := payload.(type) {
	case model.TransferPayload:
		if s.resolveAccount(p.AccountID) == nil || s.resolveContact(p.ContactID) == nil {
			return &model.GatewayError{
				Code:    CodeTransferInvalid,
				Message: "No fue posible validar la cuenta o el contacto seleccionado.",
				Details: req,
			}
		}
	case model.AcknowledgePayload:
		if p.NotificationID == "" || s.state.Notification(p.NotificationID) == nil {
			return &model.GatewayError{
				Code:    CodeNotificationMissing,
				Message: "La notificación ya no se encuentra disponible.",
				Details: req,
			}
		}
	}
	return nil
}

// apply mutates server-side state for a validated payload and returns the
// user-facing success message.
func (s *Simulator) apply(payload model.OperationPayload) string {
	switch p := payload.(type) {
	case model.PayCardPayload:
		return s.applyPayCard(p)
	case model.LockCardPayload:
		return s.applyLockCard(p)
	case model.TransferPayload:
		return s.applyTransfer(p)
	case model.IncreasePayload:
		return s.applyIncrease(p)
	case model.TravelNoticePayload:
		return s.applyTravelNotice(p)
	case model.AcknowledgePayload:
		return s.applyAcknowledge(p)
	}
	return "Operación procesada."
}

func (s *Simulator) applyPayCard(p model.PayCardPayload) string {
	const message = "Pago aplicado a la tarjeta seleccionada."
	card := s.resolveCard(p.CardID)
	if card == nil {
		return message
	}

	amount := p.Amount
	if amount.IsZero() {
		amount = defaultPaymentAmount
	}

	// The payment is clamped so available credit never exceeds the limit.
	newAvailable := decimal.Min(card.Limit, card.Available.Add(amount))
	delta := newAvailable.Sub(card.Available)
	card.Available = newAvailable.Round(2)

	s.pushActivity(model.ActivityItem{
		ID:          s.newID(),
		Title:       "Pago a " + card.Label,
		Description: notesOr(p.Notes, "Pago realizado desde tu cuenta principal"),
		Amount:      amount.Abs().Neg(),
		Currency:    model.CurrencyUSD,
		Timestamp:   s.now(),
		Category:    model.ActivityPayment,
		AccountID:   s.resolveAccountID(p.AccountID),
	})

	// The paying account is debited the full amount whenever any portion of
	// the payment was absorbed, even if the clamp swallowed part of it.
	if delta.IsPositive() {
		if account := s.resolveAccount(p.AccountID); account != nil {
			account.Balance = account.Balance.Sub(amount).Round(2)
		}
	}

	s.pushNotification(model.NotificationItem{
		ID:        s.newID(),
		Title:     "Pago registrado",
		Detail:    fmt.Sprintf("Se aplicó un pago de %s a %s.", format.Currency(amount, model.CurrencyUSD), card.Label),
		CreatedAt: s.now(),
		Category:  model.NotificationPayment,
	})
	return message
}

func (s *Simulator) applyLockCard(p model.LockCardPayload) string {
	const message = "Tarjeta bloqueada temporalmente."
	card := s.resolveCard(p.CardID)
	if card == nil {
		return message
	}

	card.Status = model.CardBlocked
	card.Available = decimal.Zero

	s.pushActivity(model.ActivityItem{
		ID:          s.newID(),
		Title:       "Bloqueo de " + card.Label,
		Description: "Reporte temporal solicitado desde la app",
		Currency:    model.CurrencyUSD,
		Timestamp:   s.now(),
		Category:    model.ActivityCard,
		AccountID:   p.AccountID,
	})
	s.pushNotification(model.NotificationItem{
		ID:        s.newID(),
		Title:     "Tarjeta bloqueada",
		Detail:    card.Label + " se bloqueó temporalmente. Puedes desbloquearla cuando lo requieras.",
		CreatedAt: s.now(),
		Category:  model.NotificationSecurity,
	})
	return message
}

func (s *Simulator) applyTransfer(p model.TransferPayload) string {
	const message = "Transferencia enviada con éxito."
	account := s.resolveAccount(p.AccountID)
	contact := s.resolveContact(p.ContactID)

	amount := p.Amount
	if amount.IsZero() {
		amount = defaultTransferAmount
	}

	account.Balance = account.Balance.Sub(amount).Round(2)
	contact.LastTransferAmount = amount
	contact.LastTransferAt = s.now()

	display := contact.Nickname
	if display == "" {
		display = contact.Name
	}

	s.pushActivity(model.ActivityItem{
		ID:          s.newID(),
		Title:       "Transferencia a " + display,
		Description: notesOr(p.Notes, contact.Bank+" · "+contact.AccountNumber),
		Amount:      amount.Abs().Neg(),
		Currency:    account.Currency,
		Timestamp:   s.now(),
		Category:    model.ActivityTransfer,
		AccountID:   account.ID,
	})
	s.pushNotification(model.NotificationItem{
		ID:        s.newID(),
		Title:     "Transferencia emitida",
		Detail:    fmt.Sprintf("Enviaste %s a %s.", format.Currency(amount, account.Currency), contact.Name),
		CreatedAt: s.now(),
		Category:  model.NotificationPayment,
	})
	return message
}

func (s *Simulator) applyIncrease(p model.IncreasePayload) string {
	const message = "Solicitud de aumento enviada al equipo de riesgo."
	card := s.resolveCard(p.CardID)
	if card == nil {
		return message
	}

	card.Limit = card.Limit.Add(increaseIncrement).Round(2)
	card.Available = card.Available.Add(increaseIncrement.Mul(increaseShare)).Round(2)

	s.pushActivity(model.ActivityItem{
		ID:          s.newID(),
		Title:       "Solicitud de aumento para " + card.Label,
		Description: "En revisión por el equipo de riesgo",
		Currency:    model.CurrencyUSD,
		Timestamp:   s.now(),
		Category:    model.ActivityCard,
		AccountID:   p.AccountID,
	})
	s.pushNotification(model.NotificationItem{
		ID:        s.newID(),
		Title:     "Solicitud recibida",
		Detail:    "Estamos evaluando tu solicitud de aumento de línea. Te notificaremos la respuesta.",
		CreatedAt: s.now(),
		Category:  model.NotificationAnnouncement,
	})
	return message
}

func (s *Simulator) applyTravelNotice(p model.TravelNoticePayload) string {
	const message = "Aviso de viaje registrado. ¡Buen viaje!"
	card := s.resolveCard(p.CardID)
	if card == nil {
		return message
	}

	s.pushActivity(model.ActivityItem{
		ID:          s.newID(),
		Title:       "Aviso de viaje para " + card.Label,
		Description: notesOr(p.Notes, "Habilitado para nuevos destinos"),
		Currency:    model.CurrencyUSD,
		Timestamp:   s.now(),
		Category:    model.ActivityCard,
		AccountID:   p.AccountID,
	})
	s.pushNotification(model.NotificationItem{
		ID:        s.newID(),
		Title:     "Aviso de viaje activo",
		Detail:    "Tus tarjetas estarán listas para operar en los destinos seleccionados por los próximos 30 días.",
		CreatedAt: s.now(),
		Category:  model.NotificationAnnouncement,
	})
	return message
}

func (s *Simulator) applyAcknowledge(p model.AcknowledgePayload) string {
	const message = "Notificación archivada."
	notification := s.state.Notification(p.NotificationID)

	// Re-acknowledging an already-read notification is an idempotent success.
	notification.Read = true
	s.state.SyncUnread()

	s.pushActivity(model.ActivityItem{
		ID:          s.newID(),
		Title:       "Notificación revisada",
		Description: notification.Title,
		Currency:    model.CurrencyUSD,
		Timestamp:   s.now(),
		Category:    model.ActivityIncome,
	})
	return message
}

// resolveCard returns the requested card, or the first card when id is
// empty. An unknown explicit id resolves to nil.
func (s *Simulator) resolveCard(id string) *model.Card {
	if id != "" {
		return s.state.Card(id)
	}
	if len(s.state.Cards) == 0 {
		return nil
	}
	return &s.state.Cards[0]
}

func (s *Simulator) resolveAccount(id string) *model.Account {
	if id != "" {
		return s.state.Account(id)
	}
	if len(s.state.Accounts) == 0 {
		return nil
	}
	return &s.state.Accounts[0]
}

func (s *Simulator) resolveAccountID(id string) string {
	if account := s.resolveAccount(id); account != nil {
		return account.ID
	}
	return ""
}

func (s *Simulator) resolveContact(id string) *model.Contact {
	if id != "" {
		return s.state.Contact(id)
	}
	if len(s.state.Contacts) == 0 {
		return nil
	}
	return &s.state.Contacts[0]
}

func (s *Simulator) pushActivity(entry model.ActivityItem) {
	s.state.RecentActivity = prepend(entry, s.state.RecentActivity)
}

func (s *Simulator) pushNotification(entry model.NotificationItem) {
	s.state.Notifications = prepend(entry, s.state.Notifications)
	s.state.SyncUnread()
}

func prepend[T any](entry T, list []T) []T {
	out := make([]T, 0, len(list)+1)
	out = append(out, entry)
	out = append(out, list...)
	if len(out) > maxFeedEntries {
		out = out[:maxFeedEntries]
	}
	return out
}

func notesOr(notes, fallback string) string {
	if strings.TrimSpace(notes) == "" {
		return fallback
	}
	return notes
}
