package routes

import (
	"time"

	"Rateio/internal/domain/auth"
	"Rateio/internal/domain/bill"
	"Rateio/internal/domain/dashboard"
	"Rateio/internal/domain/payment"
	"Rateio/internal/domain/round"
	"Rateio/internal/domain/stats"
	"Rateio/internal/domain/unit"
	appErrors "Rateio/internal/errors"
	"Rateio/internal/logger"
	"Rateio/internal/middleware"
	"Rateio/internal/pkg"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	AuthService      *auth.Service
	JwtService       *middleware.JwtService
	UnitService      *unit.Service
	BillService      *bill.Service
	StatsService     *stats.Service
	PaymentService   *payment.Service
	RoundService     *round.Service
	DashboardService *dashboard.Service
}

func (h *Handler) parsePagination(c *gin.Context) *pkg.PaginationParams {
	page := c.DefaultQuery("page", "1")
	limit := c.DefaultQuery("limit", "20")

	var pageNum, limitNum int
	if p, err := pkg.ParseInt(page); err == nil && p > 0 {
		pageNum = p
	} else {
		pageNum = 1
	}

	if l, err := pkg.ParseInt(limit); err == nil && l > 0 {
		limitNum = l
	} else {
		limitNum = 20
	}

	return &pkg.PaginationParams{
		Page:  pageNum,
		Limit: limitNum,
	}
}

// parseDate aceita datas no formato YYYY-MM-DD, o único que circula na API.
func parseDate(field, value string) (time.Time, error) {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, appErrors.NewValidationError(field, "deve estar no formato YYYY-MM-DD")
	}
	return parsed, nil
}

func (h *Handler) respondError(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	event := logger.Error().Str("code", appErr.Code).Str("path", c.FullPath())
	if appErr.Err != nil {
		event = event.Err(appErr.Err)
	}
	event.Msg("request_error")
	payload := gin.H{
		"error":   appErr.Code,
		"message": appErr.Message,
	}
	if len(appErr.Details) > 0 {
		payload["details"] = appErr.Details
	}
	c.JSON(appErr.StatusCode, payload)
}
