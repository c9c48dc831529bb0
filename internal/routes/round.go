package routes

import (
	"net/http"

	"Rateio/internal/contracts"
	domaincontracts "Rateio/internal/domain/contracts"
	appErrors "Rateio/internal/errors"
	"Rateio/internal/pkg"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateRound(c *gin.Context) {
	var body contracts.RoundCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	startDate, err := parseDate("start_date", body.StartDate)
	if err != nil {
		h.respondError(c, err)
		return
	}

	req := domaincontracts.RoundCreateRequest{
		Title:     body.Title,
		Target:    body.Target,
		StartDate: startDate,
		UnitIds:   body.UnitIds,
		Remarks:   body.Remarks,
	}

	ctx := c.Request.Context()
	entity, err := h.RoundService.CreateRound(ctx, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.RoundResponse{Round: entity})
}

func (h *Handler) UpdateRound(c *gin.Context) {
	var body contracts.RoundUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	roundID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	startDate, err := parseDate("start_date", body.StartDate)
	if err != nil {
		h.respondError(c, err)
		return
	}

	req := domaincontracts.RoundUpdateRequest{
		Id:        roundID,
		Title:     body.Title,
		Target:    body.Target,
		StartDate: startDate,
		UnitIds:   body.UnitIds,
		Remarks:   body.Remarks,
	}

	ctx := c.Request.Context()
	if err := h.RoundService.UpdateRound(ctx, &req); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Rodada atualizada com sucesso"})
}

func (h *Handler) ListRounds(c *gin.Context) {
	ctx := c.Request.Context()
	rounds, err := h.RoundService.ListRounds(ctx)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.RoundListResponse{Rounds: rounds, Total: len(rounds)})
}

func (h *Handler) GetRound(c *gin.Context) {
	roundID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	ctx := c.Request.Context()
	entity, err := h.RoundService.GetRoundById(ctx, roundID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.RoundResponse{Round: entity})
}

func (h *Handler) GetRoundProgress(c *gin.Context) {
	roundID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	ctx := c.Request.Context()
	progress, err := h.RoundService.GetProgress(ctx, roundID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.RoundProgressResponse{Progress: progress})
}

func (h *Handler) DeleteRound(c *gin.Context) {
	roundID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	ctx := c.Request.Context()
	if err := h.RoundService.DeleteRound(ctx, roundID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Rodada removida com sucesso"})
}
