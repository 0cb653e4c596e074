package booking

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	domain "github.com/mussol-barber/booking-api/internal/domain/booking"
	"github.com/mussol-barber/booking-api/internal/httperr"
	"github.com/mussol-barber/booking-api/internal/models"
)

// ======================================================
// MOCK REPOSITORY
// ======================================================

type mockRepository struct {
	services       map[string]*models.Service
	barbers        map[string]*models.Barber
	appointments   map[string]*models.Appointment
	barberServices map[string][]string
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		services:       make(map[string]*models.Service),
		barbers:        make(map[string]*models.Barber),
		appointments:   make(map[string]*models.Appointment),
		barberServices: make(map[string][]string),
	}
}

func (m *mockRepository) GetService(_ context.Context, id string) (*models.Service, error) {
	if s, ok := m.services[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRepository) GetBarber(_ context.Context, id string) (*models.Barber, error) {
	if b, ok := m.barbers[id]; ok {
		return b, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRepository) ListServices(_ context.Context) ([]models.Service, error) {
	out := make([]models.Service, 0, len(m.services))
	for _, s := range m.services {
		out = append(out, *s)
	}
	return out, nil
}

func (m *mockRepository) ListBarbers(_ context.Context) ([]models.Barber, error) {
	out := make([]models.Barber, 0, len(m.barbers))
	for _, b := range m.barbers {
		out = append(out, *b)
	}
	return out, nil
}

func (m *mockRepository) CreateService(_ context.Context, s *models.Service) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	stored := *s
	m.services[s.ID] = &stored
	return nil
}

func (m *mockRepository) UpdateService(_ context.Context, s *models.Service) error {
	stored := *s
	m.services[s.ID] = &stored
	return nil
}

func (m *mockRepository) DeleteService(_ context.Context, id string) error {
	delete(m.services, id)
	return nil
}

func (m *mockRepository) CreateBarber(_ context.Context, b *models.Barber) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	stored := *b
	m.barbers[b.ID] = &stored
	return nil
}

func (m *mockRepository) UpdateBarber(_ context.Context, b *models.Barber) error {
	stored := *b
	m.barbers[b.ID] = &stored
	return nil
}

func (m *mockRepository) DeleteBarber(_ context.Context, id string) error {
	delete(m.barbers, id)
	return nil
}

func (m *mockRepository) ListBarberServiceIDs(_ context.Context, barberID string) ([]string, error) {
	ids := m.barberServices[barberID]
	out := make([]string, 0, len(ids))
	out = append(out, ids...)
	return out, nil
}

func (m *mockRepository) ReplaceBarberServices(_ context.Context, barberID string, serviceIDs []string) error {
	m.barberServices[barberID] = append([]string(nil), serviceIDs...)
	return nil
}

func (m *mockRepository) PruneServiceAssociations(_ context.Context, serviceID string) error {
	for barberID, ids := range m.barberServices {
		kept := ids[:0]
		for _, id := range ids {
			if id != serviceID {
				kept = append(kept, id)
			}
		}
		m.barberServices[barberID] = kept
	}
	return nil
}

func (m *mockRepository) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	if ap.ID == "" {
		ap.ID = uuid.NewString()
	}
	stored := *ap
	m.appointments[ap.ID] = &stored
	return nil
}

func (m *mockRepository) GetAppointment(_ context.Context, id string) (*models.Appointment, error) {
	if ap, ok := m.appointments[id]; ok {
		cp := *ap
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRepository) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	stored := *ap
	m.appointments[ap.ID] = &stored
	return nil
}

func (m *mockRepository) ListAppointments(_ context.Context) ([]models.Appointment, error) {
	out := make([]models.Appointment, 0, len(m.appointments))
	for _, ap := range m.appointments {
		out = append(out, *ap)
	}
	return out, nil
}

var _ domain.Repository = (*mockRepository)(nil)

// ======================================================
// FIXTURES
// ======================================================

var testLoc = func() *time.Location {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		panic(err)
	}
	return loc
}()

func seedCatalog(repo *mockRepository) (serviceID, barberID string) {
	serviceID = uuid.NewString()
	barberID = uuid.NewString()

	repo.services[serviceID] = &models.Service{
		ID:          serviceID,
		Name:        "Corte masculino",
		Price:       40,
		DurationMin: 45,
	}
	repo.barbers[barberID] = &models.Barber{
		ID:   barberID,
		Name: "Matheus",
	}
	return serviceID, barberID
}

// ======================================================
// CREATE
// ======================================================

func TestCreateAppointment(t *testing.T) {
	repo := newMockRepository()
	serviceID, barberID := seedCatalog(repo)

	uc := NewCreateAppointment(repo, nil, testLoc, 8.90)

	ap, err := uc.Execute(context.Background(), CreateAppointmentInput{
		ServiceID:     serviceID,
		BarberID:      barberID,
		Date:          "2024-06-01",
		Time:          "14:00",
		CustomerName:  "João",
		CustomerPhone: "+55 11 99999-0000",
	})

	require.NoError(t, err)
	require.NotNil(t, ap)

	assert.Equal(t, 48.90, ap.TotalPrice)
	assert.Equal(t, string(domain.StatusConfirmed), ap.Status)
	assert.Equal(t, "14:00", ap.Date.In(testLoc).Format("15:04"))
	assert.Equal(t, "2024-06-01", ap.Date.In(testLoc).Format("2006-01-02"))

	_, ok := repo.appointments[ap.ID]
	require.True(t, ok)
}

func TestCreateAppointmentWithReceiptStartsPending(t *testing.T) {
	repo := newMockRepository()
	serviceID, barberID := seedCatalog(repo)

	uc := NewCreateAppointment(repo, nil, testLoc, 8.90)

	ap, err := uc.Execute(context.Background(), CreateAppointmentInput{
		ServiceID:         serviceID,
		BarberID:          barberID,
		Date:              "2024-06-01",
		Time:              "10:00",
		CustomerName:      "Maria",
		CustomerPhone:     "11988887777",
		PaymentReceiptURL: "https://cdn.example.com/uploads/receipts/x/1-pix.jpg",
	})

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), ap.Status)
}

func TestCreateAppointmentClientTotalWins(t *testing.T) {
	repo := newMockRepository()
	serviceID, barberID := seedCatalog(repo)

	uc := NewCreateAppointment(repo, nil, testLoc, 8.90)

	total := 50.0
	ap, err := uc.Execute(context.Background(), CreateAppointmentInput{
		ServiceID:     serviceID,
		BarberID:      barberID,
		Date:          "2024-06-01",
		Time:          "10:00",
		CustomerName:  "Maria",
		CustomerPhone: "11988887777",
		TotalPrice:    &total,
	})

	require.NoError(t, err)
	assert.Equal(t, 50.0, ap.TotalPrice)
}

func TestCreateAppointmentTotalFrozenAfterPriceChange(t *testing.T) {
	repo := newMockRepository()
	serviceID, barberID := seedCatalog(repo)

	uc := NewCreateAppointment(repo, nil, testLoc, 8.90)

	ap, err := uc.Execute(context.Background(), CreateAppointmentInput{
		ServiceID:     serviceID,
		BarberID:      barberID,
		Date:          "2024-06-01",
		Time:          "14:00",
		CustomerName:  "João",
		CustomerPhone: "11988887777",
	})
	require.NoError(t, err)

	// edição posterior do preço do serviço não mexe no total gravado
	repo.services[serviceID].Price = 60

	stored, err := repo.GetAppointment(context.Background(), ap.ID)
	require.NoError(t, err)
	assert.Equal(t, 48.90, stored.TotalPrice)
}

func TestCreateAppointmentValidation(t *testing.T) {
	repo := newMockRepository()
	serviceID, barberID := seedCatalog(repo)

	uc := NewCreateAppointment(repo, nil, testLoc, 8.90)

	t.Run("unknown service", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), CreateAppointmentInput{
			ServiceID:     uuid.NewString(),
			BarberID:      barberID,
			Date:          "2024-06-01",
			Time:          "14:00",
			CustomerName:  "João",
			CustomerPhone: "11988887777",
		})
		assert.True(t, httperr.IsBusiness(err, "service_not_found"))
	})

	t.Run("unknown barber", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), CreateAppointmentInput{
			ServiceID:     serviceID,
			BarberID:      uuid.NewString(),
			Date:          "2024-06-01",
			Time:          "14:00",
			CustomerName:  "João",
			CustomerPhone: "11988887777",
		})
		assert.True(t, httperr.IsBusiness(err, "barber_not_found"))
	})

	t.Run("bad date", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), CreateAppointmentInput{
			ServiceID:     serviceID,
			BarberID:      barberID,
			Date:          "01/06/2024",
			Time:          "14:00",
			CustomerName:  "João",
			CustomerPhone: "11988887777",
		})
		assert.True(t, httperr.IsBusiness(err, "invalid_date_or_time"))
	})
}

// ======================================================
// STATUS
// ======================================================

func TestChangeStatus(t *testing.T) {
	repo := newMockRepository()
	uc := NewChangeStatus(repo, nil)

	ap := &models.Appointment{ID: uuid.NewString(), Status: "pending"}
	repo.appointments[ap.ID] = ap

	updated, err := uc.Execute(context.Background(), nil, ap.ID, domain.StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, "confirmed", updated.Status)

	updated, err = uc.Execute(context.Background(), nil, ap.ID, domain.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, "completed", updated.Status)
}

func TestChangeStatusRejectsIllegalJumps(t *testing.T) {
	repo := newMockRepository()
	uc := NewChangeStatus(repo, nil)

	t.Run("terminal stays terminal", func(t *testing.T) {
		ap := &models.Appointment{ID: uuid.NewString(), Status: "cancelled"}
		repo.appointments[ap.ID] = ap

		_, err := uc.Execute(context.Background(), nil, ap.ID, domain.StatusConfirmed)
		assert.True(t, httperr.IsBusiness(err, "invalid_state"))
		assert.Equal(t, "cancelled", repo.appointments[ap.ID].Status)
	})

	t.Run("pending cannot complete", func(t *testing.T) {
		ap := &models.Appointment{ID: uuid.NewString(), Status: "pending"}
		repo.appointments[ap.ID] = ap

		_, err := uc.Execute(context.Background(), nil, ap.ID, domain.StatusCompleted)
		assert.True(t, httperr.IsBusiness(err, "invalid_state"))
	})

	t.Run("unknown appointment", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), nil, uuid.NewString(), domain.StatusConfirmed)
		assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
	})
}

// ======================================================
// RECEIPT
// ======================================================

func TestAttachReceiptKeepsStatus(t *testing.T) {
	repo := newMockRepository()
	uc := NewAttachReceipt(repo, nil)

	ap := &models.Appointment{ID: uuid.NewString(), Status: "pending"}
	repo.appointments[ap.ID] = ap

	url := "https://cdn.example.com/uploads/receipts/x/1-pix.jpg"
	updated, err := uc.Execute(context.Background(), ap.ID, url)

	require.NoError(t, err)
	assert.Equal(t, url, updated.PaymentReceiptURL)
	assert.Equal(t, "pending", updated.Status, "attaching a receipt never confirms by itself")
}

// ======================================================
// AVAILABILITY
// ======================================================

func TestGetAvailability(t *testing.T) {
	repo := newMockRepository()
	_, barberID := seedCatalog(repo)

	existing := &models.Appointment{
		ID:       uuid.NewString(),
		BarberID: barberID,
		Status:   "confirmed",
		Date:     mustParse("2024-06-01 14:00"),
	}
	repo.appointments[existing.ID] = existing

	uc := NewGetAvailability(repo, []string{"14:00", "14:30"})

	day := mustParse("2024-06-01 00:00")
	slots, err := uc.Execute(context.Background(), barberID, day)
	require.NoError(t, err)
	require.Len(t, slots, 2)

	assert.Equal(t, domain.Slot{Time: "14:00", Occupied: true}, slots[0])
	assert.Equal(t, domain.Slot{Time: "14:30", Occupied: false}, slots[1])
}

func TestGetAvailabilityUnknownBarber(t *testing.T) {
	repo := newMockRepository()
	uc := NewGetAvailability(repo, []string{"14:00"})

	_, err := uc.Execute(context.Background(), uuid.NewString(), mustParse("2024-06-01 00:00"))
	assert.True(t, httperr.IsBusiness(err, "barber_not_found"))
}

func mustParse(s string) time.Time {
	t, err := time.ParseInLocation("2006-01-02 15:04", s, testLoc)
	if err != nil {
		panic(err)
	}
	return t
}

// ======================================================
// STATS
// ======================================================

func TestGetStats(t *testing.T) {
	repo := newMockRepository()
	seedCatalog(repo)

	for _, ap := range []*models.Appointment{
		{ID: uuid.NewString(), Status: "confirmed", TotalPrice: 48.90},
		{ID: uuid.NewString(), Status: "cancelled", TotalPrice: 48.90},
	} {
		repo.appointments[ap.ID] = ap
	}

	uc := NewGetStats(repo, 8.90)

	summary, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 97.80, summary.TotalRevenue)
	assert.Equal(t, 2, summary.TotalAppointments)
	assert.Equal(t, 1, summary.ConfirmedAppointments)
	assert.Equal(t, 0, summary.PendingAppointments)
	assert.Equal(t, 1, summary.TotalBarbers)
	assert.Equal(t, 1, summary.TotalServices)
	assert.Equal(t, 8.90, summary.PlatformFee)
}
