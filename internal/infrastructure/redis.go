package infrastructure

import (
	"context"
	"time"

	"Rateio/config"
	"Rateio/internal/logger"

	goredis "github.com/go-redis/redis/v8"
)

// NewRedisClient devolve nil quando o Redis está desabilitado na configuração;
// os consumidores tratam client nil como cache só em memória.
func NewRedisClient(cfg *config.Config) *goredis.Client {
	if !cfg.Redis.Enabled {
		logger.Info().Msg("Redis desabilitado; cache do painel fica só em memória")
		return nil
	}

	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("Redis indisponível; seguindo sem a camada remota de cache")
		return nil
	}

	logger.Info().Str("addr", cfg.Redis.Addr).Msg("Conexão com Redis estabelecida")
	return client
}
