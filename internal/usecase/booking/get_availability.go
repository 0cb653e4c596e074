package booking

import (
	"context"
	"time"

	domain "github.com/mussol-barber/booking-api/internal/domain/booking"
	"github.com/mussol-barber/booking-api/internal/httperr"
)

type GetAvailability struct {
	repo      domain.Repository
	slotTimes []string
}

func NewGetAvailability(repo domain.Repository, slotTimes []string) *GetAvailability {
	return &GetAvailability{
		repo:      repo,
		slotTimes: slotTimes,
	}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	barberID string,
	day time.Time,
) ([]domain.Slot, error) {

	if _, err := uc.repo.GetBarber(ctx, barberID); err != nil {
		return nil, httperr.ErrBusiness("barber_not_found")
	}

	// lista integral, sem query incremental
	appointments, err := uc.repo.ListAppointments(ctx)
	if err != nil {
		return nil, err
	}

	return domain.SlotsFor(appointments, barberID, day, uc.slotTimes), nil
}
