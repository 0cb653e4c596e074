package stats

import (
	"math"

	"github.com/mussol-barber/booking-api/internal/domain/booking"
	"github.com/mussol-barber/booking-api/internal/models"
)

type Summary struct {
	TotalRevenue          float64 `json:"totalRevenue"`
	TotalAppointments     int     `json:"totalAppointments"`
	ConfirmedAppointments int     `json:"confirmedAppointments"`
	PendingAppointments   int     `json:"pendingAppointments"`
	TotalBarbers          int     `json:"totalBarbers"`
	TotalServices         int     `json:"totalServices"`
	PlatformFee           float64 `json:"platformFee"`
}

// Compute agrega as três listas num snapshot. Nada é persistido nem
// cacheado; o resultado reflete o conteúdo das listas no momento da
// chamada.
//
// A receita soma total_price de TODOS os agendamentos, cancelados
// incluídos — comportamento herdado, mantido até alguém confirmar a
// intenção.
func Compute(
	appointments []models.Appointment,
	services []models.Service,
	barbers []models.Barber,
	platformFee float64,
) Summary {

	var revenue float64
	var confirmed, pending int

	for _, ap := range appointments {
		revenue += ap.TotalPrice

		switch booking.Status(ap.Status) {
		case booking.StatusConfirmed:
			confirmed++
		case booking.StatusPending:
			pending++
		}
	}

	return Summary{
		TotalRevenue:          math.Round(revenue*100) / 100,
		TotalAppointments:     len(appointments),
		ConfirmedAppointments: confirmed,
		PendingAppointments:   pending,
		TotalBarbers:          len(barbers),
		TotalServices:         len(services),
		PlatformFee:           platformFee,
	}
}
