package fx

import (
	"time"

	"Rateio/internal/domain/auth"
	"Rateio/internal/domain/bill"
	"Rateio/internal/domain/dashboard"
	"Rateio/internal/domain/payment"
	"Rateio/internal/domain/round"
	"Rateio/internal/domain/stats"
	"Rateio/internal/domain/unit"
	"Rateio/internal/middleware"
	"Rateio/internal/routes"

	"go.uber.org/fx"
)

// RoutesModule fornece o handler e os rate limiters
var RoutesModule = fx.Module("routes",
	fx.Provide(
		newHandler,
		newPublicRateLimiter,
	),
)

func newHandler(
	authSvc *auth.Service,
	jwtSvc *middleware.JwtService,
	unitSvc *unit.Service,
	billSvc *bill.Service,
	statsSvc *stats.Service,
	paymentSvc *payment.Service,
	roundSvc *round.Service,
	dashboardSvc *dashboard.Service,
) *routes.Handler {
	return &routes.Handler{
		AuthService:      authSvc,
		JwtService:       jwtSvc,
		UnitService:      unitSvc,
		BillService:      billSvc,
		StatsService:     statsSvc,
		PaymentService:   paymentSvc,
		RoundService:     roundSvc,
		DashboardService: dashboardSvc,
	}
}

func newPublicRateLimiter() *middleware.RateLimiter {
	return middleware.NewRateLimiter(100, time.Minute)
}
