package fx

import (
	"context"
	"net/http"

	"Rateio/config"
	"Rateio/internal/logger"
	"Rateio/internal/middleware"
	"Rateio/internal/routes"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

// ServerModule fornece a configuração do servidor HTTP
var ServerModule = fx.Module("server",
	fx.Provide(
		newRouter,
	),
	fx.Invoke(
		setupRoutes,
	),
)

func newRouter(cfg *config.Config) *gin.Engine {
	if cfg.App.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	return gin.Default()
}

func setupRoutes(
	lc fx.Lifecycle,
	cfg *config.Config,
	router *gin.Engine,
	handler *routes.Handler,
	jwtSvc *middleware.JwtService,
	publicRateLimiter *middleware.RateLimiter,
) {
	router.Use(middleware.CORSMiddleware())

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Rotas públicas: painel, cadastro das unidades, rodadas e a submissão de
	// pagamentos dos moradores. Tudo sob rate limit por IP.
	public := router.Group("/api")
	public.Use(middleware.RateLimit(publicRateLimiter))
	{
		public.POST("/auth/login", handler.Authenticate)
		public.GET("/dashboard", handler.GetDashboard)
		public.GET("/units", handler.ListUnits)
		public.GET("/units/:id", handler.GetUnit)
		public.GET("/rounds", handler.ListRounds)
		public.GET("/rounds/:id", handler.GetRound)
		public.GET("/rounds/:id/progress", handler.GetRoundProgress)
		public.POST("/payments/submit", handler.SubmitPayment)
	}

	private := router.Group("/api")
	private.Use(middleware.AuthMiddleware(jwtSvc))
	{
		units := private.Group("/units")
		{
			units.POST("/seed", handler.SeedUnits)
			units.PATCH("/:id", handler.UpdateUnit)
		}

		bills := private.Group("/bills")
		{
			bills.PUT("", handler.SaveBill)
			bills.GET("", handler.ListBills)
			bills.GET("/:id", handler.GetBill)
			bills.DELETE("/:id", handler.DeleteBill)
		}

		statsGroup := private.Group("/stats")
		{
			statsGroup.GET("", handler.GetStats)
			statsGroup.POST("/recompute", handler.RecomputeStats)
			statsGroup.PUT("/override", handler.SetOverride)
			statsGroup.PUT("/unclaimed", handler.SetUnclaimed)
		}

		payments := private.Group("/payments")
		{
			payments.POST("", handler.CreatePayment)
			payments.GET("", handler.ListPayments)
			payments.GET("/:id", handler.GetPayment)
			payments.DELETE("/:id", handler.DeletePayment)
		}

		pending := private.Group("/pending")
		{
			pending.GET("", handler.ListPending)
			pending.PATCH("/:id", handler.UpdatePending)
			pending.POST("/:id/approve", handler.ApprovePayment)
			pending.POST("/:id/reject", handler.RejectPayment)
		}

		archive := private.Group("/archive")
		{
			archive.GET("", handler.ListArchived)
			archive.DELETE("/:id", handler.PurgeArchived)
		}

		rounds := private.Group("/rounds")
		{
			rounds.POST("", handler.CreateRound)
			rounds.PATCH("/:id", handler.UpdateRound)
			rounds.DELETE("/:id", handler.DeleteRound)
		}
	}

	serverAddr := ":" + cfg.Server.Port
	logger.Info().
		Str("address", serverAddr).
		Str("environment", cfg.App.Environment).
		Msg("Servidor iniciando")

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := router.Run(serverAddr); err != nil {
					logger.Fatal().Err(err).Msg("Falha ao iniciar servidor")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info().Msg("Servidor parando...")
			return nil
		},
	})
}
