package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperationKind_Valid(t *testing.T) {
	for _, kind := range OperationKinds() {
		assert.True(t, kind.Valid(), kind)
	}
	assert.False(t, OperationKind("closeAccount").Valid())
	assert.False(t, OperationKind("").Valid())
}

func TestOperationRequest_PayloadResolution(t *testing.T) {
	req := OperationRequest{
		CardID:         "card-001",
		AccountID:      "acc-001",
		ContactID:      "contact-001",
		NotificationID: "ntf-001",
		Amount:         decimal.RequireFromString("120.50"),
		Notes:          "nota",
	}

	for _, kind := range OperationKinds() {
		payload, err := req.Payload(kind)
		require.NoError(t, err, kind)
		assert.Equal(t, kind, payload.OperationKind())
	}

	_, err := req.Payload("closeAccount")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported operation kind")
}

func TestOperationRequest_PayloadDropsIrrelevantFields(t *testing.T) {
	req := OperationRequest{
		CardID:         "card-001",
		ContactID:      "contact-001",
		NotificationID: "ntf-001",
		Notes:          "nota",
	}

	payload, err := req.Payload(OpAcknowledgeNotification)
	require.NoError(t, err)

	// Only the notification ID survives the boundary.
	wire := payload.Wire()
	assert.Equal(t, "ntf-001", wire.NotificationID)
	assert.Empty(t, wire.CardID)
	assert.Empty(t, wire.ContactID)
	assert.Empty(t, wire.Notes)
}

func TestGatewayError_Error(t *testing.T) {
	err := &GatewayError{Code: "gateway/unavailable", Message: "sin servicio"}
	assert.Equal(t, "sin servicio (gateway/unavailable)", err.Error())

	bare := &GatewayError{Message: "sin servicio"}
	assert.Equal(t, "sin servicio", bare.Error())
}
