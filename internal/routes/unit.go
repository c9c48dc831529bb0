package routes

import (
	"net/http"

	"Rateio/internal/contracts"
	domaincontracts "Rateio/internal/domain/contracts"
	appErrors "Rateio/internal/errors"

	"github.com/gin-gonic/gin"
)

func (h *Handler) SeedUnits(c *gin.Context) {
	ctx := c.Request.Context()
	created, err := h.UnitService.Seed(ctx)
	if err != nil {
		h.respondError(c, err)
		return
	}

	message := "Unidades já existiam, nada foi criado"
	if created > 0 {
		message = "Unidades criadas com sucesso"
	}
	c.JSON(http.StatusOK, contracts.UnitSeedResponse{Created: created, Message: message})
}

func (h *Handler) ListUnits(c *gin.Context) {
	block := c.Query("block")

	ctx := c.Request.Context()
	units, err := h.UnitService.ListUnits(ctx, block)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.UnitListResponse{Units: units, Total: len(units)})
}

func (h *Handler) GetUnit(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		h.respondError(c, appErrors.NewValidationError("id", "é obrigatório"))
		return
	}

	ctx := c.Request.Context()
	entity, err := h.UnitService.GetUnitById(ctx, id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.UnitResponse{Unit: entity})
}

func (h *Handler) UpdateUnit(c *gin.Context) {
	var body contracts.UnitUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	id := c.Param("id")
	if id == "" {
		h.respondError(c, appErrors.NewValidationError("id", "é obrigatório"))
		return
	}

	req := domaincontracts.UnitUpdateRequest{
		Id:            id,
		OwnerName:     body.OwnerName,
		IsHighlighted: body.IsHighlighted,
		PublicNote:    body.PublicNote,
	}

	ctx := c.Request.Context()
	if err := h.UnitService.UpdateUnit(ctx, &req); err != nil {
		h.respondError(c, err)
		return
	}

	h.DashboardService.Invalidate(ctx)
	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Unidade atualizada com sucesso"})
}
