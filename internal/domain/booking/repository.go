package booking

import (
	"context"

	"github.com/mussol-barber/booking-api/internal/models"
)

type Repository interface {
	// -------- Catalog --------
	GetService(ctx context.Context, id string) (*models.Service, error)
	GetBarber(ctx context.Context, id string) (*models.Barber, error)
	ListServices(ctx context.Context) ([]models.Service, error)
	ListBarbers(ctx context.Context) ([]models.Barber, error)

	CreateService(ctx context.Context, service *models.Service) error
	UpdateService(ctx context.Context, service *models.Service) error
	DeleteService(ctx context.Context, id string) error

	CreateBarber(ctx context.Context, barber *models.Barber) error
	UpdateBarber(ctx context.Context, barber *models.Barber) error
	DeleteBarber(ctx context.Context, id string) error

	// -------- Barber ↔ Service --------
	ListBarberServiceIDs(ctx context.Context, barberID string) ([]string, error)
	ReplaceBarberServices(ctx context.Context, barberID string, serviceIDs []string) error

	// remove o serviço do conjunto de todos os barbeiros; sem linhas já é
	// um no-op
	PruneServiceAssociations(ctx context.Context, serviceID string) error

	// -------- Appointment --------
	CreateAppointment(ctx context.Context, ap *models.Appointment) error
	GetAppointment(ctx context.Context, id string) (*models.Appointment, error)
	UpdateAppointment(ctx context.Context, ap *models.Appointment) error

	// lista integral, sem filtro; a disponibilidade e as estatísticas
	// trabalham sobre o conjunto completo
	ListAppointments(ctx context.Context) ([]models.Appointment, error)
}
