package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/mussol-barber/booking-api/internal/domain/booking"
	"github.com/mussol-barber/booking-api/internal/httperr"
	"github.com/mussol-barber/booking-api/internal/httpresp"
	"github.com/mussol-barber/booking-api/internal/middleware"
	"github.com/mussol-barber/booking-api/internal/models"
	"github.com/mussol-barber/booking-api/internal/ratelimit"
	ucBooking "github.com/mussol-barber/booking-api/internal/usecase/booking"
	"github.com/mussol-barber/booking-api/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	db           *gorm.DB
	location     *time.Location
	createUC     *ucBooking.CreateAppointment
	statusUC     *ucBooking.ChangeStatus
	availability *ucBooking.GetAvailability
	limiter      *ratelimit.Limiter
}

func NewAppointmentHandler(
	db *gorm.DB,
	location *time.Location,
	createUC *ucBooking.CreateAppointment,
	statusUC *ucBooking.ChangeStatus,
	availability *ucBooking.GetAvailability,
	limiter *ratelimit.Limiter,
) *AppointmentHandler {
	return &AppointmentHandler{
		db:           db,
		location:     location,
		createUC:     createUC,
		statusUC:     statusUC,
		availability: availability,
		limiter:      limiter,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ServiceID string `json:"serviceId" binding:"required"`
	BarberID  string `json:"barberId" binding:"required"`

	Date string `json:"date" binding:"required"` // YYYY-MM-DD
	Time string `json:"time" binding:"required"` // HH:mm

	CustomerName  string `json:"customerName" binding:"required"`
	CustomerPhone string `json:"customerPhone" binding:"required"`

	TotalPrice        *float64 `json:"totalPrice,omitempty" binding:"omitempty,gte=0"`
	PaymentReceiptURL string   `json:"paymentReceiptUrl"`
}

type UpdateAppointmentRequest struct {
	Status            *string `json:"status,omitempty"`
	CustomerName      *string `json:"customerName,omitempty"`
	CustomerPhone     *string `json:"customerPhone,omitempty"`
	PaymentReceiptURL *string `json:"paymentReceiptUrl,omitempty"`
	Date              *string `json:"date,omitempty"` // YYYY-MM-DD
	Time              *string `json:"time,omitempty"` // HH:mm
}

// ======================================================
// CREATE (fluxo público de reserva)
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, err.Error())
		return
	}

	if !validators.IsPhoneValid(req.CustomerPhone) {
		httperr.BadRequest(c, "invalid_phone", "Telefone inválido.")
		return
	}

	if !h.limiter.Allow(c.Request.Context(), req.CustomerPhone) {
		httperr.Write(c, http.StatusTooManyRequests, "too_many_bookings", "Muitas tentativas; aguarde um pouco.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateAppointmentInput{
		ServiceID:         req.ServiceID,
		BarberID:          req.BarberID,
		Date:              req.Date,
		Time:              req.Time,
		CustomerName:      req.CustomerName,
		CustomerPhone:     req.CustomerPhone,
		TotalPrice:        req.TotalPrice,
		PaymentReceiptURL: req.PaymentReceiptURL,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "service_not_found"):
			httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
		case httperr.IsBusiness(err, "barber_not_found"):
			httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
		case httperr.IsBusiness(err, "invalid_date_or_time"):
			httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
		default:
			httperr.Internal(c, "failed_to_create_appointment", "Erro ao criar agendamento.")
		}
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// LIST / GET
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	var aps []models.Appointment
	if err := h.db.Order("date ASC").Find(&aps).Error; err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	httpresp.OK(c, aps)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var ap models.Appointment
	if err := h.db.Where("id = ?", id).First(&ap).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_appointment", "Erro ao buscar agendamento.")
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// UPDATE (painel)
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, err.Error())
		return
	}

	// transições de status passam pela máquina; o resto é edição direta
	if req.Status != nil {
		userID := actorID(c)

		ap, err := h.statusUC.Execute(
			c.Request.Context(),
			userID,
			id,
			domain.Status(*req.Status),
		)
		if err != nil {
			switch {
			case httperr.IsBusiness(err, "appointment_not_found"):
				httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
			case httperr.IsBusiness(err, "invalid_status"):
				httperr.BadRequest(c, "invalid_status", "Status desconhecido.")
			case httperr.IsBusiness(err, "invalid_state"):
				httperr.BadRequest(c, "invalid_state", "Transição de status não permitida.")
			default:
				httperr.Internal(c, "failed_to_update_appointment", "Erro ao atualizar agendamento.")
			}
			return
		}

		if !hasFieldEdits(req) {
			httpresp.OK(c, ap)
			return
		}
	}

	var ap models.Appointment
	if err := h.db.Where("id = ?", id).First(&ap).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_appointment", "Erro ao buscar agendamento.")
		return
	}

	if req.CustomerName != nil {
		ap.CustomerName = *req.CustomerName
	}
	if req.CustomerPhone != nil {
		if !validators.IsPhoneValid(*req.CustomerPhone) {
			httperr.BadRequest(c, "invalid_phone", "Telefone inválido.")
			return
		}
		ap.CustomerPhone = *req.CustomerPhone
	}
	if req.PaymentReceiptURL != nil {
		ap.PaymentReceiptURL = *req.PaymentReceiptURL
	}
	if req.Date != nil || req.Time != nil {
		dateStr := ap.Date.In(h.location).Format("2006-01-02")
		timeStr := ap.Date.In(h.location).Format("15:04")
		if req.Date != nil {
			dateStr = *req.Date
		}
		if req.Time != nil {
			timeStr = *req.Time
		}

		date, err := time.ParseInLocation("2006-01-02 15:04", dateStr+" "+timeStr, h.location)
		if err != nil {
			httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
			return
		}
		ap.Date = date
	}

	if err := h.db.Save(&ap).Error; err != nil {
		httperr.Internal(c, "failed_to_update_appointment", "Erro ao atualizar agendamento.")
		return
	}

	httpresp.OK(c, ap)
}

func hasFieldEdits(req UpdateAppointmentRequest) bool {
	return req.CustomerName != nil ||
		req.CustomerPhone != nil ||
		req.PaymentReceiptURL != nil ||
		req.Date != nil ||
		req.Time != nil
}

func actorID(c *gin.Context) *string {
	if v, ok := c.Get(middleware.ContextUserID); ok {
		if id, ok := v.(string); ok && id != "" {
			return &id
		}
	}
	return nil
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	var ap models.Appointment
	if err := h.db.Where("id = ?", id).First(&ap).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_appointment", "Erro ao buscar agendamento.")
		return
	}

	if err := h.db.Delete(&ap).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_appointment", "Erro ao remover agendamento.")
		return
	}

	httpresp.NoContent(c)
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *AppointmentHandler) Availability(c *gin.Context) {
	barberID := c.Query("barberId")
	dateStr := c.Query("date")

	if barberID == "" || dateStr == "" {
		httperr.BadRequest(c, "missing_params", "Barbeiro e data obrigatórios.")
		return
	}

	day, err := time.ParseInLocation("2006-01-02", dateStr, h.location)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	slots, err := h.availability.Execute(c.Request.Context(), barberID, day)
	if err != nil {
		if httperr.IsBusiness(err, "barber_not_found") {
			httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_availability", "Erro ao consultar disponibilidade.")
		return
	}

	httpresp.OK(c, gin.H{
		"barberId": barberID,
		"date":     dateStr,
		"slots":    slots,
	})
}
