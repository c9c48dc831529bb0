package routes

import (
	"errors"
	"io"
	"net/http"

	"Rateio/internal/contracts"
	domaincontracts "Rateio/internal/domain/contracts"
	"Rateio/internal/domain/payment"
	appErrors "Rateio/internal/errors"
	"Rateio/internal/pkg"

	"github.com/gin-gonic/gin"
)

const maxReceiptSize = 10 << 20 // 10 MB

// readReceipt extrai o arquivo "receipt" do formulário multipart, se houver.
func readReceipt(c *gin.Context) (*domaincontracts.ReceiptFile, error) {
	header, err := c.FormFile("receipt")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, appErrors.ErrBadRequest.WithError(err)
	}

	if header.Size > maxReceiptSize {
		return nil, appErrors.NewValidationError("receipt", "arquivo excede o limite de 10MB")
	}

	file, err := header.Open()
	if err != nil {
		return nil, appErrors.ErrBadRequest.WithError(err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, appErrors.ErrBadRequest.WithError(err)
	}

	return &domaincontracts.ReceiptFile{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

// SubmitPayment é a rota pública de submissão: qualquer morador registra o
// próprio pagamento, que entra na fila de pendentes até a aprovação.
func (h *Handler) SubmitPayment(c *gin.Context) {
	var body contracts.PaymentSubmitRequest
	if err := c.ShouldBind(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	date, err := parseDate("date", body.Date)
	if err != nil {
		h.respondError(c, err)
		return
	}

	receipt, err := readReceipt(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	req := domaincontracts.PaymentSubmitRequest{
		UnitId:    body.UnitId,
		Amount:    body.Amount,
		Date:      date,
		Reference: body.Reference,
		Receipt:   receipt,
	}

	ctx := c.Request.Context()
	entity, err := h.PaymentService.SubmitPayment(ctx, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.DashboardService.Invalidate(ctx)
	c.JSON(http.StatusCreated, contracts.PendingResponse{Pending: entity})
}

// CreatePayment é o lançamento direto do administrador: entra já aprovado.
func (h *Handler) CreatePayment(c *gin.Context) {
	var body contracts.PaymentSubmitRequest
	if err := c.ShouldBind(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	date, err := parseDate("date", body.Date)
	if err != nil {
		h.respondError(c, err)
		return
	}

	receipt, err := readReceipt(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	req := domaincontracts.PaymentCreateRequest{
		UnitId:    body.UnitId,
		Amount:    body.Amount,
		Date:      date,
		Reference: body.Reference,
		Receipt:   receipt,
	}

	ctx := c.Request.Context()
	entity, err := h.PaymentService.CreatePayment(ctx, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.DashboardService.Invalidate(ctx)
	c.JSON(http.StatusCreated, contracts.PaymentResponse{Payment: entity})
}

func (h *Handler) ListPayments(c *gin.Context) {
	filters := &payment.PaymentFilters{}
	if unitID := c.Query("unit_id"); unitID != "" {
		filters.UnitId = &unitID
	}
	if from := c.Query("from"); from != "" {
		parsed, err := parseDate("from", from)
		if err != nil {
			h.respondError(c, err)
			return
		}
		filters.From = &parsed
	}
	if to := c.Query("to"); to != "" {
		parsed, err := parseDate("to", to)
		if err != nil {
			h.respondError(c, err)
			return
		}
		filters.To = &parsed
	}

	pagination := h.parsePagination(c)

	ctx := c.Request.Context()
	payments, total, err := h.PaymentService.ListPayments(ctx, filters, pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response := pkg.NewPaginatedResponse(payments, pagination.Page, pagination.Limit, total)
	c.JSON(http.StatusOK, response)
}

func (h *Handler) GetPayment(c *gin.Context) {
	paymentID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	ctx := c.Request.Context()
	entity, err := h.PaymentService.GetPaymentById(ctx, paymentID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.PaymentResponse{Payment: entity})
}

// DeletePayment tira o pagamento do conjunto ativo e o move para o arquivo,
// estornando o total da unidade.
func (h *Handler) DeletePayment(c *gin.Context) {
	paymentID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	ctx := c.Request.Context()
	archived, err := h.PaymentService.DeletePayment(ctx, paymentID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.DashboardService.Invalidate(ctx)
	c.JSON(http.StatusOK, contracts.ArchivedResponse{Archived: archived})
}

func (h *Handler) ListPending(c *gin.Context) {
	ctx := c.Request.Context()
	pending, err := h.PaymentService.ListPending(ctx)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.PendingListResponse{Pending: pending, Total: len(pending)})
}

func (h *Handler) UpdatePending(c *gin.Context) {
	var body contracts.PendingUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	pendingID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	req := domaincontracts.PendingUpdateRequest{
		Id:        pendingID,
		Amount:    body.Amount,
		Reference: body.Reference,
	}

	ctx := c.Request.Context()
	if err := h.PaymentService.UpdatePending(ctx, &req); err != nil {
		h.respondError(c, err)
		return
	}

	h.DashboardService.Invalidate(ctx)
	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Pagamento pendente atualizado com sucesso"})
}

func (h *Handler) ApprovePayment(c *gin.Context) {
	var body contracts.ApproveRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	pendingID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	req := domaincontracts.ApproveRequest{
		PendingId: pendingID,
		Amount:    body.Amount,
		Reference: body.Reference,
	}

	ctx := c.Request.Context()
	approved, err := h.PaymentService.Approve(ctx, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.DashboardService.Invalidate(ctx)
	c.JSON(http.StatusOK, contracts.PaymentResponse{Payment: approved})
}

func (h *Handler) RejectPayment(c *gin.Context) {
	var body contracts.RejectRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	pendingID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	req := domaincontracts.RejectRequest{
		PendingId: pendingID,
		Reason:    body.Reason,
	}

	ctx := c.Request.Context()
	if err := h.PaymentService.Reject(ctx, &req); err != nil {
		h.respondError(c, err)
		return
	}

	h.DashboardService.Invalidate(ctx)
	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Pagamento rejeitado com sucesso"})
}

func (h *Handler) ListArchived(c *gin.Context) {
	pagination := h.parsePagination(c)

	ctx := c.Request.Context()
	archived, total, err := h.PaymentService.ListArchived(ctx, pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response := pkg.NewPaginatedResponse(archived, pagination.Page, pagination.Limit, total)
	c.JSON(http.StatusOK, response)
}

func (h *Handler) PurgeArchived(c *gin.Context) {
	archiveID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	ctx := c.Request.Context()
	if err := h.PaymentService.Purge(ctx, archiveID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Registro removido definitivamente do arquivo"})
}
