package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/mussol-barber/booking-api/internal/domain/booking"
	"github.com/mussol-barber/booking-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Catalog
// --------------------------------------------------

func (r *BookingGormRepository) GetService(
	ctx context.Context,
	id string,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&service).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *BookingGormRepository) GetBarber(
	ctx context.Context,
	id string,
) (*models.Barber, error) {

	var barber models.Barber
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&barber).Error; err != nil {
		return nil, err
	}
	return &barber, nil
}

func (r *BookingGormRepository) ListServices(
	ctx context.Context,
) ([]models.Service, error) {

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *BookingGormRepository) ListBarbers(
	ctx context.Context,
) ([]models.Barber, error) {

	var barbers []models.Barber
	if err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&barbers).Error; err != nil {
		return nil, err
	}
	return barbers, nil
}

func (r *BookingGormRepository) CreateService(
	ctx context.Context,
	service *models.Service,
) error {
	return r.db.WithContext(ctx).Create(service).Error
}

func (r *BookingGormRepository) UpdateService(
	ctx context.Context,
	service *models.Service,
) error {
	return r.db.WithContext(ctx).Save(service).Error
}

func (r *BookingGormRepository) DeleteService(
	ctx context.Context,
	id string,
) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Service{}).Error
}

func (r *BookingGormRepository) CreateBarber(
	ctx context.Context,
	barber *models.Barber,
) error {
	return r.db.WithContext(ctx).Create(barber).Error
}

func (r *BookingGormRepository) UpdateBarber(
	ctx context.Context,
	barber *models.Barber,
) error {
	return r.db.WithContext(ctx).Save(barber).Error
}

func (r *BookingGormRepository) DeleteBarber(
	ctx context.Context,
	id string,
) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Barber{}).Error
}

// --------------------------------------------------
// Barber ↔ Service
// --------------------------------------------------

func (r *BookingGormRepository) ListBarberServiceIDs(
	ctx context.Context,
	barberID string,
) ([]string, error) {

	var ids []string
	err := r.db.WithContext(ctx).
		Model(&models.BarberService{}).
		Where("barber_id = ?", barberID).
		Pluck("service_id", &ids).Error

	if ids == nil {
		ids = []string{}
	}
	return ids, err
}

// ReplaceBarberServices troca o conjunto inteiro: apaga e reinsere. Sem
// transação; uma falha no meio pode deixar o conjunto pela metade.
func (r *BookingGormRepository) ReplaceBarberServices(
	ctx context.Context,
	barberID string,
	serviceIDs []string,
) error {

	if err := r.db.WithContext(ctx).
		Where("barber_id = ?", barberID).
		Delete(&models.BarberService{}).Error; err != nil {
		return err
	}

	for _, sid := range serviceIDs {
		assoc := models.BarberService{
			BarberID:  barberID,
			ServiceID: sid,
		}
		if err := r.db.WithContext(ctx).Create(&assoc).Error; err != nil {
			return err
		}
	}

	return nil
}

func (r *BookingGormRepository) PruneServiceAssociations(
	ctx context.Context,
	serviceID string,
) error {
	return r.db.WithContext(ctx).
		Where("service_id = ?", serviceID).
		Delete(&models.BarberService{}).Error
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *BookingGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *BookingGormRepository) GetAppointment(
	ctx context.Context,
	id string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&ap).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *BookingGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *BookingGormRepository) ListAppointments(
	ctx context.Context,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Order("date ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
