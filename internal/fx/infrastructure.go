package fx

import (
	"Rateio/config"
	"Rateio/internal/infrastructure"

	goredis "github.com/go-redis/redis/v8"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var InfrastructureModule = fx.Module("infrastructure",
	fx.Provide(
		newDatabase,
		newRedisClient,
		newUnitRepository,
		newBillRepository,
		newStatsRepository,
		newPaymentRepository,
		newRoundRepository,
	),
)

func newDatabase(cfg *config.Config) (*gorm.DB, error) {
	return infrastructure.NewDb(cfg)
}

func newRedisClient(cfg *config.Config) *goredis.Client {
	return infrastructure.NewRedisClient(cfg)
}

func newUnitRepository(db *gorm.DB) *infrastructure.UnitRepository {
	return &infrastructure.UnitRepository{DB: db}
}

func newBillRepository(db *gorm.DB, cfg *config.Config) *infrastructure.BillRepository {
	return &infrastructure.BillRepository{DB: db, UnitCount: cfg.App.UnitCount}
}

func newStatsRepository(db *gorm.DB) *infrastructure.StatsRepository {
	return &infrastructure.StatsRepository{DB: db}
}

func newPaymentRepository(db *gorm.DB) *infrastructure.PaymentRepository {
	return &infrastructure.PaymentRepository{DB: db}
}

func newRoundRepository(db *gorm.DB) *infrastructure.RoundRepository {
	return &infrastructure.RoundRepository{DB: db}
}
