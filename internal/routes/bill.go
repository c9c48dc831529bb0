package routes

import (
	"net/http"

	"Rateio/internal/contracts"
	domaincontracts "Rateio/internal/domain/contracts"
	appErrors "Rateio/internal/errors"

	"github.com/gin-gonic/gin"
)

func (h *Handler) SaveBill(c *gin.Context) {
	var body contracts.BillUpsertRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	issueDate, err := parseDate("issue_date", body.IssueDate)
	if err != nil {
		h.respondError(c, err)
		return
	}

	req := domaincontracts.BillUpsertRequest{
		Month:     body.Month,
		Year:      body.Year,
		Amount:    body.Amount,
		IssueDate: issueDate,
	}

	ctx := c.Request.Context()
	entity, err := h.BillService.SaveBill(ctx, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.DashboardService.Invalidate(ctx)
	c.JSON(http.StatusOK, contracts.BillResponse{Bill: entity})
}

func (h *Handler) ListBills(c *gin.Context) {
	ctx := c.Request.Context()
	bills, err := h.BillService.ListBills(ctx)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.BillListResponse{Bills: bills, Total: len(bills)})
}

func (h *Handler) GetBill(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		h.respondError(c, appErrors.NewValidationError("id", "é obrigatório"))
		return
	}

	ctx := c.Request.Context()
	entity, err := h.BillService.GetBillById(ctx, id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.BillResponse{Bill: entity})
}

func (h *Handler) DeleteBill(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		h.respondError(c, appErrors.NewValidationError("id", "é obrigatório"))
		return
	}

	ctx := c.Request.Context()
	if err := h.BillService.DeleteBill(ctx, id); err != nil {
		h.respondError(c, err)
		return
	}

	h.DashboardService.Invalidate(ctx)
	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Conta removida com sucesso"})
}
