package booking

import (
	"context"
	"time"

	"github.com/mussol-barber/booking-api/internal/audit"
	domain "github.com/mussol-barber/booking-api/internal/domain/booking"
	"github.com/mussol-barber/booking-api/internal/httperr"
	"github.com/mussol-barber/booking-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ServiceID string
	BarberID  string

	Date string // YYYY-MM-DD
	Time string // HH:mm

	CustomerName  string
	CustomerPhone string

	// total enviado pelo cliente; quando ausente o servidor cota
	// preço do serviço + taxa de plataforma
	TotalPrice *float64

	PaymentReceiptURL string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo        domain.Repository
	audit       *audit.Dispatcher
	location    *time.Location
	platformFee float64
}

func NewCreateAppointment(
	repo domain.Repository,
	auditD *audit.Dispatcher,
	location *time.Location,
	platformFee float64,
) *CreateAppointment {
	return &CreateAppointment{
		repo:        repo,
		audit:       auditD,
		location:    location,
		platformFee: platformFee,
	}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	if _, err := uc.repo.GetBarber(ctx, in.BarberID); err != nil {
		return nil, httperr.ErrBusiness("barber_not_found")
	}

	date, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		uc.location,
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	total := domain.QuoteTotal(service.Price, uc.platformFee)
	if in.TotalPrice != nil {
		total = *in.TotalPrice
	}

	// nenhuma checagem de colisão aqui: a disponibilidade é consultiva,
	// lida no cliente na hora de renderizar a grade
	ap := &models.Appointment{
		ServiceID:         in.ServiceID,
		BarberID:          in.BarberID,
		Date:              date,
		CustomerName:      in.CustomerName,
		CustomerPhone:     in.CustomerPhone,
		Status:            string(domain.InitialStatus(in.PaymentReceiptURL != "")),
		TotalPrice:        total,
		PaymentReceiptURL: in.PaymentReceiptURL,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
