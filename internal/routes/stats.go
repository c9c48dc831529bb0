package routes

import (
	"net/http"

	"Rateio/internal/contracts"
	domaincontracts "Rateio/internal/domain/contracts"
	appErrors "Rateio/internal/errors"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetStats(c *gin.Context) {
	ctx := c.Request.Context()
	entity, err := h.StatsService.Get(ctx)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.StatsResponse{Stats: entity})
}

func (h *Handler) RecomputeStats(c *gin.Context) {
	ctx := c.Request.Context()
	entity, err := h.StatsService.Recompute(ctx)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.DashboardService.Invalidate(ctx)
	c.JSON(http.StatusOK, contracts.StatsResponse{Stats: entity})
}

func (h *Handler) SetOverride(c *gin.Context) {
	var body contracts.OverrideRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	req := domaincontracts.OverrideRequest{Enabled: body.Enabled, Target: body.Target}

	ctx := c.Request.Context()
	if err := h.StatsService.SetOverride(ctx, &req); err != nil {
		h.respondError(c, err)
		return
	}

	h.DashboardService.Invalidate(ctx)
	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Alvo manual atualizado com sucesso"})
}

func (h *Handler) SetUnclaimed(c *gin.Context) {
	var body contracts.UnclaimedRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	req := domaincontracts.UnclaimedRequest{Amount: body.Amount}

	ctx := c.Request.Context()
	if err := h.StatsService.SetUnclaimed(ctx, &req); err != nil {
		h.respondError(c, err)
		return
	}

	h.DashboardService.Invalidate(ctx)
	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Valor não reivindicado atualizado com sucesso"})
}
