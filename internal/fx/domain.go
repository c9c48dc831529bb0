package fx

import (
	"context"

	"Rateio/config"
	"Rateio/internal/domain/auth"
	"Rateio/internal/domain/bill"
	"Rateio/internal/domain/dashboard"
	"Rateio/internal/domain/payment"
	"Rateio/internal/domain/round"
	"Rateio/internal/domain/stats"
	"Rateio/internal/domain/unit"
	"Rateio/internal/infrastructure"
	"Rateio/internal/logger"
	"Rateio/internal/storage"

	goredis "github.com/go-redis/redis/v8"
	"go.uber.org/fx"
)

// DomainModule fornece todos os services do domínio
var DomainModule = fx.Module("domain",
	fx.Provide(
		newAuthService,
		newUnitService,
		newBillService,
		newStatsService,
		newReceiptUploaders,
		newPaymentService,
		newRoundService,
		newOverviewCache,
		newDashboardService,
	),
	fx.Invoke(
		// As unidades são fixas e semeadas no boot.
		seedUnits,
	),
)

func seedUnits(unitSvc *unit.Service) error {
	_, err := unitSvc.Seed(context.Background())
	return err
}

func newAuthService(cfg *config.Config) *auth.Service {
	return auth.NewService(cfg)
}

func newUnitService(repo *infrastructure.UnitRepository, cfg *config.Config) *unit.Service {
	return unit.NewService(repo, cfg.App.UnitCount)
}

func newBillService(repo *infrastructure.BillRepository) *bill.Service {
	return bill.NewService(repo)
}

func newStatsService(
	repo *infrastructure.StatsRepository,
	unitRepo *infrastructure.UnitRepository,
	cfg *config.Config,
) *stats.Service {
	return stats.NewService(repo, unitRepo, cfg.App.UnitCount)
}

func newReceiptUploaders(cfg *config.Config) (storage.Uploaders, error) {
	switch cfg.Drive.Mode {
	case "drive":
		driveUploader, err := storage.NewDriveUploader(context.Background(), cfg.Drive)
		if err != nil {
			return storage.Uploaders{}, err
		}
		uploaders := storage.Uploaders{Public: driveUploader, Admin: driveUploader}
		if cfg.Drive.ScriptURL != "" {
			// A rota sem login nunca usa a credencial de serviço.
			uploaders.Public = storage.NewProxyUploader(cfg.Drive.ScriptURL, cfg.Drive.FolderID)
		}
		return uploaders, nil
	case "proxy":
		proxyUploader := storage.NewProxyUploader(cfg.Drive.ScriptURL, cfg.Drive.FolderID)
		return storage.Uploaders{Public: proxyUploader, Admin: proxyUploader}, nil
	default:
		logger.Info().Msg("Armazenamento de comprovantes desabilitado (DRIVE_MODE=disabled)")
		return storage.Uploaders{}, nil
	}
}

func newPaymentService(
	repo *infrastructure.PaymentRepository,
	unitRepo *infrastructure.UnitRepository,
	uploaders storage.Uploaders,
) *payment.Service {
	return payment.NewService(repo, unitRepo, uploaders.Public, uploaders.Admin)
}

func newRoundService(
	repo *infrastructure.RoundRepository,
	paymentRepo *infrastructure.PaymentRepository,
	unitRepo *infrastructure.UnitRepository,
) *round.Service {
	return round.NewService(repo, paymentRepo, unitRepo)
}

func newOverviewCache(redisClient *goredis.Client, cfg *config.Config) *dashboard.OverviewCache {
	return dashboard.NewOverviewCache(redisClient, cfg.Redis.CacheTTL)
}

func newDashboardService(
	unitRepo *infrastructure.UnitRepository,
	paymentRepo *infrastructure.PaymentRepository,
	statsSvc *stats.Service,
	cache *dashboard.OverviewCache,
) *dashboard.Service {
	return dashboard.NewService(unitRepo, paymentRepo, statsSvc, cache)
}
