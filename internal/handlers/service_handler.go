package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/mussol-barber/booking-api/internal/domain/booking"
	"github.com/mussol-barber/booking-api/internal/httperr"
	"github.com/mussol-barber/booking-api/internal/httpresp"
	"github.com/mussol-barber/booking-api/internal/models"
)

type ServiceHandler struct {
	repo domain.Repository
}

func NewServiceHandler(repo domain.Repository) *ServiceHandler {
	return &ServiceHandler{repo: repo}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	DurationMin int      `json:"duration" binding:"required,min=1"`
	PaymentLink string   `json:"paymentLink"`
}

type UpdateServiceRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty" binding:"omitempty,gte=0"`
	DurationMin *int     `json:"duration,omitempty" binding:"omitempty,min=1"`
	PaymentLink *string  `json:"paymentLink,omitempty"`
	QRCodeURL   *string  `json:"qrCodeUrl,omitempty"`
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	services, err := h.repo.ListServices(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	httpresp.OK(c, services)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	id := c.Param("id")

	service, err := h.repo.GetService(c.Request.Context(), id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_service", "Erro ao buscar serviço.")
		return
	}

	httpresp.OK(c, service)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, err.Error())
		return
	}

	service := models.Service{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		DurationMin: req.DurationMin,
		PaymentLink: req.PaymentLink,
	}

	if err := h.repo.CreateService(c.Request.Context(), &service); err != nil {
		httperr.Internal(c, "failed_to_create_service", "Erro ao criar serviço.")
		return
	}

	httpresp.Created(c, service)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id := c.Param("id")

	service, err := h.repo.GetService(c.Request.Context(), id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_service", "Erro ao buscar serviço.")
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, err.Error())
		return
	}

	if req.Name != nil {
		service.Name = *req.Name
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.Price != nil {
		// totais já gravados em agendamentos não são recalculados
		service.Price = *req.Price
	}
	if req.DurationMin != nil {
		service.DurationMin = *req.DurationMin
	}
	if req.PaymentLink != nil {
		service.PaymentLink = *req.PaymentLink
	}
	if req.QRCodeURL != nil {
		service.QRCodeURL = *req.QRCodeURL
	}

	if err := h.repo.UpdateService(c.Request.Context(), service); err != nil {
		httperr.Internal(c, "failed_to_update_service", "Erro ao atualizar serviço.")
		return
	}

	httpresp.OK(c, service)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if _, err := h.repo.GetService(c.Request.Context(), id); err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_service", "Erro ao buscar serviço.")
		return
	}

	// poda as associações antes do serviço; idempotente quando já não
	// existem linhas
	if err := h.repo.PruneServiceAssociations(c.Request.Context(), id); err != nil {
		httperr.Internal(c, "failed_to_delete_service", "Erro ao remover serviço.")
		return
	}

	if err := h.repo.DeleteService(c.Request.Context(), id); err != nil {
		httperr.Internal(c, "failed_to_delete_service", "Erro ao remover serviço.")
		return
	}

	httpresp.NoContent(c)
}
