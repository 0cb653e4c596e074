package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/mussol-barber/booking-api/internal/httperr"
	"github.com/mussol-barber/booking-api/internal/httpresp"
	ucBooking "github.com/mussol-barber/booking-api/internal/usecase/booking"
)

type StatsHandler struct {
	statsUC *ucBooking.GetStats
}

func NewStatsHandler(statsUC *ucBooking.GetStats) *StatsHandler {
	return &StatsHandler{statsUC: statsUC}
}

func (h *StatsHandler) Get(c *gin.Context) {
	summary, err := h.statsUC.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_get_stats", "Erro ao calcular estatísticas.")
		return
	}

	httpresp.OK(c, summary)
}
