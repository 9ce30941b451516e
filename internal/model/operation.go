package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// OperationKind names a discrete banking action. The enumeration is closed:
// the gateway rejects anything else.
type OperationKind string

const (
	OpPayCreditCard           OperationKind = "payCreditCard"
	OpLockCard                OperationKind = "lockCard"
	OpScheduleTransfer        OperationKind = "scheduleTransfer"
	OpRequestIncrease         OperationKind = "requestIncrease"
	OpSetTravelNotice         OperationKind = "setTravelNotice"
	OpAcknowledgeNotification OperationKind = "acknowledgeNotification"
)

// OperationKinds returns the closed enumeration in catalog order.
func OperationKinds() []OperationKind {
	return []OperationKind{
		OpPayCreditCard,
		OpLockCard,
		OpScheduleTransfer,
		OpRequestIncrease,
		OpSetTravelNotice,
		OpAcknowledgeNotification,
	}
}

// Valid reports whether k is one of the supported operation kinds.
func (k OperationKind) Valid() bool {
	switch k {
	case OpPayCreditCard, OpLockCard, OpScheduleTransfer,
		OpRequestIncrease, OpSetTravelNotice, OpAcknowledgeNotification:
		return true
	}
	return false
}

// OperationPayload is the tagged union of per-kind operation parameters.
// Exactly one payload type exists per OperationKind; each carries only the
// fields its operation reads. Wire produces the loose transport shape for
// echoing in responses and errors.
type OperationPayload interface {
	OperationKind() OperationKind
	Wire() OperationRequest
}

// PayCardPayload applies a payment to a credit card. A zero Amount means the
// gateway's default payment amount. Empty CardID/AccountID resolve to the
// first card/account.
type PayCardPayload struct {
	CardID    string
	AccountID string
	Amount    decimal.Decimal
	Notes     string
}

// OperationKind implements OperationPayload.
func (p PayCardPayload) OperationKind() OperationKind { return OpPayCreditCard }

// Wire implements OperationPayload.
func (p PayCardPayload) Wire() OperationRequest {
	return OperationRequest{CardID: p.CardID, AccountID: p.AccountID, Amount: p.Amount, Notes: p.Notes}
}

// LockCardPayload blocks a card temporarily.
type LockCardPayload struct {
	CardID    string
	AccountID string
}

// OperationKind implements OperationPayload.
func (p LockCardPayload) OperationKind() OperationKind { return OpLockCard }

// Wire implements OperationPayload.
func (p LockCardPayload) Wire() OperationRequest {
	return OperationRequest{CardID: p.CardID, AccountID: p.AccountID}
}

// TransferPayload sends money to a saved contact. A zero Amount means the
// gateway's default transfer amount.
type TransferPayload struct {
	AccountID string
	ContactID string
	Amount    decimal.Decimal
	Notes     string
}

// OperationKind implements OperationPayload.
func (p TransferPayload) OperationKind() OperationKind { return OpScheduleTransfer }

// Wire implements OperationPayload.
func (p TransferPayload) Wire() OperationRequest {
	return OperationRequest{AccountID: p.AccountID, ContactID: p.ContactID, Amount: p.Amount, Notes: p.Notes}
}

// IncreasePayload asks for a credit limit increase on a card.
type IncreasePayload struct {
	CardID    string
	AccountID string
}

// OperationKind implements OperationPayload.
func (p IncreasePayload) OperationKind() OperationKind { return OpRequestIncrease }

// Wire implements OperationPayload.
func (p IncreasePayload) Wire() OperationRequest {
	return OperationRequest{CardID: p.CardID, AccountID: p.AccountID}
}

// TravelNoticePayload registers a travel notice for a card.
type TravelNoticePayload struct {
	CardID    string
	AccountID string
	Notes     string
}

// OperationKind implements OperationPayload.
func (p TravelNoticePayload) OperationKind() OperationKind { return OpSetTravelNotice }

// Wire implements OperationPayload.
func (p TravelNoticePayload) Wire() OperationRequest {
	return OperationRequest{CardID: p.CardID, AccountID: p.AccountID, Notes: p.Notes}
}

// AcknowledgePayload marks a notification as read.
type AcknowledgePayload struct {
	NotificationID string
}

// OperationKind implements OperationPayload.
func (p AcknowledgePayload) OperationKind() OperationKind { return OpAcknowledgeNotification }

// Wire implements OperationPayload.
func (p AcknowledgePayload) Wire() OperationRequest {
	return OperationRequest{NotificationID: p.NotificationID}
}

// OperationRequest is the loose transport shape: the union of every field any
// operation kind might need. It exists only at the wire boundary; Payload
// resolves it into the typed union exactly once.
type OperationRequest struct {
	CardID         string          `json:"cardId,omitempty"`
	AccountID      string          `json:"accountId,omitempty"`
	Amount         decimal.Decimal `json:"amount"`
	Notes          string          `json:"notes,omitempty"`
	ContactID      string          `json:"contactId,omitempty"`
	NotificationID string          `json:"notificationId,omitempty"`
}

// Payload resolves the loose request into the typed payload for kind,
// dropping fields the operation does not read. Unknown kinds are rejected.
func (r OperationRequest) Payload(kind OperationKind) (OperationPayload, error) {
	switch kind {
	case OpPayCreditCard:
		return PayCardPayload{CardID: r.CardID, AccountID: r.AccountID, Amount: r.Amount, Notes: r.Notes}, nil
	case OpLockCard:
		return LockCardPayload{CardID: r.CardID, AccountID: r.AccountID}, nil
	case OpScheduleTransfer:
		return TransferPayload{AccountID: r.AccountID, ContactID: r.ContactID, Amount: r.Amount, Notes: r.Notes}, nil
	case OpRequestIncrease:
		return IncreasePayload{CardID: r.CardID, AccountID: r.AccountID}, nil
	case OpSetTravelNotice:
		return TravelNoticePayload{CardID: r.CardID, AccountID: r.AccountID, Notes: r.Notes}, nil
	case OpAcknowledgeNotification:
		return AcknowledgePayload{NotificationID: r.NotificationID}, nil
	default:
		return nil, fmt.Errorf("unsupported operation kind %q", kind)
	}
}

// ResponseStatus is the outcome marker on an OperationResponse.
type ResponseStatus string

const (
	StatusSuccess ResponseStatus = "success"
	StatusWarning ResponseStatus = "warning"
	StatusFailed  ResponseStatus = "error"
)

// OperationResponse is the gateway's receipt for a completed operation.
// Details echoes the request that produced it.
type OperationResponse struct {
	ID          string           `json:"id"`
	Status      ResponseStatus   `json:"status"`
	Message     string           `json:"message"`
	ProcessedAt time.Time        `json:"processedAt"`
	Details     OperationRequest `json:"details"`
}

// OperationResult pairs the receipt with the fresh post-operation snapshot.
// The snapshot is the caller's only cache-invalidation signal.
type OperationResult struct {
	Response OperationResponse `json:"response"`
	Snapshot Snapshot          `json:"snapshot"`
}

// GatewayError is the structured failure raised by the banking gateway:
// transient unavailability, business-rule rejections, and unsupported kinds
// all share this shape.
type GatewayError struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details *OperationRequest `json:"details,omitempty"`
}

// Error implements the error interface.
func (e *GatewayError) Error() string {
	if e.Code == "" {
		return e.Message
	}
	return fmt.Sprintf("%s (%s)", e.Message, e.Code)
}
