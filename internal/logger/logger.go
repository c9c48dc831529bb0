package logger

import (
	"os"
	"time"

	"Rateio/config"

	"github.com/rs/zerolog"
)

var log zerolog.Logger

func init() {
	// Logger padrão até Init ser chamado pelo módulo de configuração
	log = zerolog.New(os.Stdout).With().Timestamp().Logger()
}

// Init configura o logger global de acordo com o ambiente: console colorido
// em desenvolvimento, JSON em produção.
func Init(cfg *config.Config) {
	zerolog.TimeFieldFormat = time.RFC3339

	if cfg.App.Environment == "development" {
		output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}
		log = zerolog.New(output).With().Timestamp().Str("app", cfg.App.Name).Logger()
		log = log.Level(zerolog.DebugLevel)
		return
	}

	log = zerolog.New(os.Stdout).With().Timestamp().Str("app", cfg.App.Name).Logger()
	log = log.Level(zerolog.InfoLevel)
}

func Debug() *zerolog.Event {
	return log.Debug()
}

func Info() *zerolog.Event {
	return log.Info()
}

func Warn() *zerolog.Event {
	return log.Warn()
}

func Error() *zerolog.Event {
	return log.Error()
}

func Fatal() *zerolog.Event {
	return log.Fatal()
}
