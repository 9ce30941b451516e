package gateway

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/aurorabank/lumen/internal/model"
)

// defaultSnapshot is the reference dataset the simulator is seeded with.
func defaultSnapshot() model.Snapshot {
	return model.Snapshot{
		User: model.UserProfile{
			ID:        "user-001",
			Name:      "Valeria Hernández",
			Tier:      model.TierAurora,
			LastLogin: utc(2024, 5, 26, 18, 23),
		},
		Accounts: []model.Account{
			{
				ID:       "acc-001",
				Type:     model.AccountTypeCurrent,
				Number:   "001-456789-00",
				Balance:  dec("15840.25"),
				Currency: model.CurrencyUSD,
			},
			{
				ID:       "acc-002",
				Type:     model.AccountTypeSavings,
				Number:   "001-456789-01",
				Balance:  dec("21450.00"),
				Currency: model.CurrencyUSD,
			},
			{
				ID:       "acc-003",
				Type:     model.AccountTypeInvestment,
				Number:   "001-456789-INV",
				Balance:  dec("52670.90"),
				Currency: model.CurrencyUSD,
			},
		},
		Cards: []model.Card{
			{
				ID:        "card-aurora",
				Label:     "Aurora Signature",
				Brand:     model.BrandVisa,
				LastFour:  "4821",
				Limit:     dec("18000"),
				Available: dec("14250"),
				Status:    model.CardActive,
			},
			{
				ID:        "card-lumen",
				Label:     "Lumen Travel",
				Brand:     model.BrandMastercard,
				LastFour:  "3391",
				Limit:     dec("12000"),
				Available: dec("9600"),
				Status:    model.CardActive,
			},
		},
		RecentActivity: []model.ActivityItem{
			{
				ID:          "act-001",
				Title:       "Pago a Aurora Signature",
				Description: "Pago puntual de tarjeta",
				Amount:      dec("-640.50"),
				Currency:    model.CurrencyUSD,
				Timestamp:   utc(2024, 5, 25, 10, 15),
				Category:    model.ActivityPayment,
				AccountID:   "acc-001",
			},
			{
				ID:          "act-002",
				Title:       "Transferencia recibida",
				Description: "Jorge Maldonado",
				Amount:      dec("1800"),
				Currency:    model.CurrencyUSD,
				Timestamp:   utc(2024, 5, 24, 16, 45),
				Category:    model.ActivityIncome,
				AccountID:   "acc-002",
			},
			{
				ID:          "act-003",
				Title:       "Compra en Lumen Travel",
				Description: "Vuelo Ciudad de México",
				Amount:      dec("-420.75"),
				Currency:    model.CurrencyUSD,
				Timestamp:   utc(2024, 5, 22, 19, 22),
				Category:    model.ActivityCard,
				AccountID:   "acc-001",
			},
			{
				ID:          "act-004",
				Title:       "Inversión automática",
				Description: "Aurora Index Growth",
				Amount:      dec("-600"),
				Currency:    model.CurrencyUSD,
				Timestamp:   utc(2024, 5, 20, 8, 0),
				Category:    model.ActivityTransfer,
				AccountID:   "acc-002",
			},
		},
		Contacts: []model.Contact{
			{
				ID:                 "contact-jorge",
				Name:               "Jorge Maldonado",
				Bank:               "Banco del Sol",
				AccountNumber:      "00123456789",
				AvatarColor:        "#0f6fbb",
				Nickname:           "Jorge M.",
				LastTransferAmount: dec("280"),
				LastTransferAt:     utc(2024, 5, 20, 13, 45),
			},
			{
				ID:                 "contact-adriana",
				Name:               "Adriana Campos",
				Bank:               "Financiera Horizonte",
				AccountNumber:      "00987654321",
				AvatarColor:        "#0b8b6d",
				Nickname:           "Ahorro Vivienda",
				LastTransferAmount: dec("1200"),
				LastTransferAt:     utc(2024, 5, 18, 9, 12),
			},
			{
				ID:                 "contact-empresa",
				Name:               "Aurora Consulting",
				Bank:               "Banco Aurora",
				AccountNumber:      "001001002003",
				AvatarColor:        "#a17214",
				Nickname:           "Oficina",
				LastTransferAmount: dec("3000"),
				LastTransferAt:     utc(2024, 5, 10, 8, 0),
			},
		},
		Notifications: []model.NotificationItem{
			{
				ID:        "ntf-security",
				Title:     "Nuevo dispositivo autorizado",
				Detail:    "Has iniciado sesión desde un equipo Windows en Ciudad de México.",
				CreatedAt: utc(2024, 5, 26, 8, 15),
				Category:  model.NotificationSecurity,
			},
			{
				ID:        "ntf-payment",
				Title:     "Pago programado confirmado",
				Detail:    "Tu pago automático de tarjeta Aurora Signature fue aplicado.",
				CreatedAt: utc(2024, 5, 24, 6, 0),
				Category:  model.NotificationPayment,
				Read:      true,
			},
			{
				ID:        "ntf-invest",
				Title:     "Rendimiento semanal",
				Detail:    "Tu portafolio Aurora Index Growth tuvo un rendimiento del 2.3% esta semana.",
				CreatedAt: utc(2024, 5, 23, 9, 30),
				Category:  model.NotificationAnnouncement,
			},
		},
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func utc(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
}
