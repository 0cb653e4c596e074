package booking

import (
	"time"

	"github.com/mussol-barber/booking-api/internal/models"
)

type Slot struct {
	Time     string `json:"time"`
	Occupied bool   `json:"occupied"`
}

// OccupiedTimes varre a lista completa de agendamentos e devolve os
// horários (HH:MM) já tomados para um barbeiro num dia. Agendamentos
// cancelados liberam o horário; datas zeradas são ignoradas.
//
// Função pura sobre a lista; O(agendamentos) — dataset de uma barbearia
// só, não precisa de índice.
func OccupiedTimes(
	appointments []models.Appointment,
	barberID string,
	day time.Time,
) map[string]bool {

	loc := day.Location()
	occupied := make(map[string]bool)

	for _, ap := range appointments {
		if ap.BarberID != barberID {
			continue
		}
		if Status(ap.Status) == StatusCancelled {
			continue
		}
		if ap.Date.IsZero() {
			continue
		}

		at := ap.Date.In(loc)
		if at.Year() != day.Year() || at.Month() != day.Month() || at.Day() != day.Day() {
			continue
		}

		occupied[at.Format("15:04")] = true
	}

	return occupied
}

// SlotsFor cruza a grade fixa de horários com os já ocupados.
//
// A checagem é apenas consultiva: nada aqui (nem na criação) serializa
// duas reservas concorrentes no mesmo horário.
func SlotsFor(
	appointments []models.Appointment,
	barberID string,
	day time.Time,
	slotTimes []string,
) []Slot {

	occupied := OccupiedTimes(appointments, barberID, day)

	slots := make([]Slot, 0, len(slotTimes))
	for _, t := range slotTimes {
		slots = append(slots, Slot{
			Time:     t,
			Occupied: occupied[t],
		})
	}

	return slots
}
