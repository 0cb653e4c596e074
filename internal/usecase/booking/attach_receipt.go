package booking

import (
	"context"

	"github.com/mussol-barber/booking-api/internal/audit"
	domain "github.com/mussol-barber/booking-api/internal/domain/booking"
	"github.com/mussol-barber/booking-api/internal/httperr"
	"github.com/mussol-barber/booking-api/internal/models"
)

type AttachReceipt struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewAttachReceipt(
	repo domain.Repository,
	auditD *audit.Dispatcher,
) *AttachReceipt {
	return &AttachReceipt{
		repo:  repo,
		audit: auditD,
	}
}

// Execute grava a URL do comprovante no agendamento. O status não muda
// aqui; confirmar é ação separada da equipe depois de conferir o
// comprovante.
func (uc *AttachReceipt) Execute(
	ctx context.Context,
	appointmentID string,
	url string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	domain.AttachReceipt(ap, url)

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "receipt_attached",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
