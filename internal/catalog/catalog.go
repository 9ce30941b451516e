// Package catalog describes the banking operations the dashboard offers:
// presentation metadata only, no behavior.
package catalog

import "github.com/aurorabank/lumen/internal/model"

// Descriptor is the presentation card for one operation kind.
type Descriptor struct {
	Kind         model.OperationKind `json:"key"`
	Title        string              `json:"title"`
	Description  string              `json:"description"`
	Accent       string              `json:"accent"`
	Icon         string              `json:"icon"`
	RequiresCard bool                `json:"requiresCard,omitempty"`
}

// Acknowledging notifications is triggered from the inbox, not from the
// operation grid, so it has no descriptor here.
var descriptors = []Descriptor{
	{
		Kind:         model.OpPayCreditCard,
		Title:        "Aplicar pago",
		Description:  "Acredita un pago inmediato a tu tarjeta y libera saldo al instante.",
		Accent:       "linear-gradient(135deg, #1b84c6, #35c1ff)",
		Icon:         "💠",
		RequiresCard: true,
	},
	{
		Kind:         model.OpLockCard,
		Title:        "Bloqueo temporal",
		Description:  "Suspende compras por pérdida o robo y protege tus fondos.",
		Accent:       "linear-gradient(135deg, #f0b429, #f97316)",
		Icon:         "🛡️",
		RequiresCard: true,
	},
	{
		Kind:         model.OpRequestIncrease,
		Title:        "Solicitar aumento",
		Description:  "Envía una evaluación de línea de crédito con un clic.",
		Accent:       "linear-gradient(135deg, #22b07d, #0ea86f)",
		Icon:         "📈",
		RequiresCard: true,
	},
	{
		Kind:         model.OpSetTravelNotice,
		Title:        "Aviso de viaje",
		Description:  "Activa tus tarjetas para nuevos destinos y horarios.",
		Accent:       "linear-gradient(135deg, #3b82f6, #0ea5e9)",
		Icon:         "🗺️",
		RequiresCard: true,
	},
	{
		Kind:        model.OpScheduleTransfer,
		Title:       "Transferir a contacto",
		Description: "Envía fondos a un beneficiario registrado de manera inmediata.",
		Accent:      "linear-gradient(135deg, #2563eb, #1e3a8a)",
		Icon:        "📆",
	},
}

// All returns the operation descriptors in display order.
func All() []Descriptor {
	return append([]Descriptor(nil), descriptors...)
}

// Get returns the descriptor for an operation kind.
func Get(kind model.OperationKind) (Descriptor, bool) {
	for _, d := range descriptors {
		if d.Kind == kind {
			return d, true
		}
	}
	return Descriptor{}, false
}
