package booking

import (
	"context"

	domain "github.com/mussol-barber/booking-api/internal/domain/booking"
	"github.com/mussol-barber/booking-api/internal/domain/stats"
)

type GetStats struct {
	repo        domain.Repository
	platformFee float64
}

func NewGetStats(repo domain.Repository, platformFee float64) *GetStats {
	return &GetStats{
		repo:        repo,
		platformFee: platformFee,
	}
}

// Execute monta o resumo do painel a cada chamada. As três leituras são
// independentes, sem transação; uma mutação no meio pode render um
// snapshot não atômico entre as fontes.
func (uc *GetStats) Execute(ctx context.Context) (*stats.Summary, error) {

	appointments, err := uc.repo.ListAppointments(ctx)
	if err != nil {
		return nil, err
	}

	services, err := uc.repo.ListServices(ctx)
	if err != nil {
		return nil, err
	}

	barbers, err := uc.repo.ListBarbers(ctx)
	if err != nil {
		return nil, err
	}

	summary := stats.Compute(appointments, services, barbers, uc.platformFee)
	return &summary, nil
}
