package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/mussol-barber/booking-api/internal/domain/booking"
	"github.com/mussol-barber/booking-api/internal/httperr"
	"github.com/mussol-barber/booking-api/internal/httpresp"
	"github.com/mussol-barber/booking-api/internal/models"
)

type BarberHandler struct {
	repo domain.Repository
}

func NewBarberHandler(repo domain.Repository) *BarberHandler {
	return &BarberHandler{repo: repo}
}

// --------- Requests / Responses ---------

type CreateBarberRequest struct {
	Name       string   `json:"name" binding:"required"`
	Avatar     string   `json:"avatar"`
	ServiceIDs []string `json:"serviceIds"`
}

type UpdateBarberRequest struct {
	Name       *string   `json:"name,omitempty"`
	Avatar     *string   `json:"avatar,omitempty"`
	ServiceIDs *[]string `json:"serviceIds,omitempty"`
}

// BarberResponse expõe o barbeiro com o conjunto de serviços que ele
// executa, guardado na tabela de junção.
type BarberResponse struct {
	models.Barber
	ServiceIDs []string `json:"serviceIds"`
}

// --------- Handlers ---------

func (h *BarberHandler) List(c *gin.Context) {
	barbers, err := h.repo.ListBarbers(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Erro ao listar barbeiros.")
		return
	}

	out := make([]BarberResponse, 0, len(barbers))
	for _, b := range barbers {
		ids, err := h.repo.ListBarberServiceIDs(c.Request.Context(), b.ID)
		if err != nil {
			httperr.Internal(c, "failed_to_list_barbers", "Erro ao listar barbeiros.")
			return
		}
		out = append(out, BarberResponse{Barber: b, ServiceIDs: ids})
	}

	httpresp.OK(c, out)
}

func (h *BarberHandler) Get(c *gin.Context) {
	id := c.Param("id")

	barber, err := h.repo.GetBarber(c.Request.Context(), id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_barber", "Erro ao buscar barbeiro.")
		return
	}

	ids, err := h.repo.ListBarberServiceIDs(c.Request.Context(), barber.ID)
	if err != nil {
		httperr.Internal(c, "failed_to_get_barber", "Erro ao buscar barbeiro.")
		return
	}

	httpresp.OK(c, BarberResponse{Barber: *barber, ServiceIDs: ids})
}

func (h *BarberHandler) Create(c *gin.Context) {
	var req CreateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, err.Error())
		return
	}

	barber := models.Barber{
		Name:   req.Name,
		Avatar: req.Avatar,
	}

	if err := h.repo.CreateBarber(c.Request.Context(), &barber); err != nil {
		httperr.Internal(c, "failed_to_create_barber", "Erro ao criar barbeiro.")
		return
	}

	if len(req.ServiceIDs) > 0 {
		if err := h.repo.ReplaceBarberServices(c.Request.Context(), barber.ID, req.ServiceIDs); err != nil {
			httperr.Internal(c, "failed_to_set_barber_services", "Erro ao vincular serviços.")
			return
		}
	}

	ids := req.ServiceIDs
	if ids == nil {
		ids = []string{}
	}

	httpresp.Created(c, BarberResponse{Barber: barber, ServiceIDs: ids})
}

func (h *BarberHandler) Update(c *gin.Context) {
	id := c.Param("id")

	barber, err := h.repo.GetBarber(c.Request.Context(), id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_barber", "Erro ao buscar barbeiro.")
		return
	}

	var req UpdateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, err.Error())
		return
	}

	if req.Name != nil {
		barber.Name = *req.Name
	}
	if req.Avatar != nil {
		barber.Avatar = *req.Avatar
	}

	if err := h.repo.UpdateBarber(c.Request.Context(), barber); err != nil {
		httperr.Internal(c, "failed_to_update_barber", "Erro ao atualizar barbeiro.")
		return
	}

	if req.ServiceIDs != nil {
		if err := h.repo.ReplaceBarberServices(c.Request.Context(), barber.ID, *req.ServiceIDs); err != nil {
			httperr.Internal(c, "failed_to_set_barber_services", "Erro ao vincular serviços.")
			return
		}
	}

	ids, err := h.repo.ListBarberServiceIDs(c.Request.Context(), barber.ID)
	if err != nil {
		httperr.Internal(c, "failed_to_get_barber", "Erro ao buscar barbeiro.")
		return
	}

	httpresp.OK(c, BarberResponse{Barber: *barber, ServiceIDs: ids})
}

func (h *BarberHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if _, err := h.repo.GetBarber(c.Request.Context(), id); err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_barber", "Erro ao buscar barbeiro.")
		return
	}

	if err := h.repo.ReplaceBarberServices(c.Request.Context(), id, nil); err != nil {
		httperr.Internal(c, "failed_to_delete_barber", "Erro ao remover barbeiro.")
		return
	}

	if err := h.repo.DeleteBarber(c.Request.Context(), id); err != nil {
		httperr.Internal(c, "failed_to_delete_barber", "Erro ao remover barbeiro.")
		return
	}

	httpresp.NoContent(c)
}
