package infrastructure

import (
	"Rateio/config"
	"Rateio/internal/domain/bill"
	"Rateio/internal/domain/payment"
	"Rateio/internal/domain/round"
	"Rateio/internal/domain/stats"
	"Rateio/internal/domain/unit"
	"Rateio/internal/logger"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewDb(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.Error().
			Err(err).
			Str("host", cfg.Database.Host).
			Int("port", cfg.Database.Port).
			Str("database", cfg.Database.DBName).
			Msg("Falha ao conectar ao banco de dados")
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Error().Err(err).Msg("Falha ao obter instância do banco de dados")
		return nil, err
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	logger.Info().
		Str("host", cfg.Database.Host).
		Int("port", cfg.Database.Port).
		Str("database", cfg.Database.DBName).
		Msg("Conexão com banco de dados estabelecida com sucesso")

	if err := runMigrations(db); err != nil {
		return nil, err
	}

	return db, nil
}

func runMigrations(db *gorm.DB) error {
	logger.Info().Msg("Executando migrations...")

	entities := []interface{}{
		&unit.Unit{},
		&bill.Bill{},
		&stats.GlobalStats{},
		&payment.Payment{},
		&payment.PendingPayment{},
		&payment.ArchivedPayment{},
		&round.CollectionRound{},
	}

	for _, entity := range entities {
		if err := db.AutoMigrate(entity); err != nil {
			logger.Error().
				Err(err).
				Str("entity", getEntityName(entity)).
				Msg("Erro ao migrar entidade")
			return err
		}
	}

	logger.Info().Msg("Migrations executadas com sucesso!")
	return nil
}

func getEntityName(entity interface{}) string {
	switch entity.(type) {
	case *unit.Unit:
		return "Unit"
	case *bill.Bill:
		return "Bill"
	case *stats.GlobalStats:
		return "GlobalStats"
	case *payment.Payment:
		return "Payment"
	case *payment.PendingPayment:
		return "PendingPayment"
	case *payment.ArchivedPayment:
		return "ArchivedPayment"
	case *round.CollectionRound:
		return "CollectionRound"
	default:
		return "Unknown"
	}
}
