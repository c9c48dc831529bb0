package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetDashboard é a leitura pública do painel: uma linha por unidade com a
// camada de pendentes, mais o resumo de ponto de equilíbrio. Aceita o filtro
// opcional ?block=.
func (h *Handler) GetDashboard(c *gin.Context) {
	block := c.Query("block")

	ctx := c.Request.Context()
	overview, err := h.DashboardService.GetOverview(ctx, block)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, overview)
}
